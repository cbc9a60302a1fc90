package templates

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/movekit/movekit/pkg/errors"
)

func TestNewRegistryEmbedded(t *testing.T) {
	reg, err := NewRegistry("")
	require.NoError(t, err)

	assert.Len(t, reg.All(), 4)
}

func TestGetKnownTemplates(t *testing.T) {
	reg, err := NewRegistry("")
	require.NoError(t, err)

	for _, id := range []string{Boilerplate, NFTMinting, TokenMinting, ClickerGame} {
		tmpl, err := reg.Get(id)
		require.NoError(t, err, "template %s should resolve", id)
		assert.Equal(t, id, tmpl.ID)
		assert.NotEmpty(t, tmpl.DisplayName)
		assert.NotEmpty(t, tmpl.Dir)
	}
}

func TestGetUnknownTemplate(t *testing.T) {
	reg, err := NewRegistry("")
	require.NoError(t, err)

	_, err = reg.Get("no-such-template")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrTemplateNotFound))
}

func TestSigningVariantsFlag(t *testing.T) {
	reg, err := NewRegistry("")
	require.NoError(t, err)

	clicker, err := reg.Get(ClickerGame)
	require.NoError(t, err)
	assert.True(t, clicker.SigningVariants)

	boilerplate, err := reg.Get(Boilerplate)
	require.NoError(t, err)
	assert.False(t, boilerplate.SigningVariants)
}

func TestOnDiskCatalogOverride(t *testing.T) {
	root := t.TempDir()
	override := `templates:
  - id: custom-template
    display_name: Custom
    dir: custom
`
	require.NoError(t, os.WriteFile(filepath.Join(root, "templates.yaml"), []byte(override), 0644))

	reg, err := NewRegistry(root)
	require.NoError(t, err)

	assert.Len(t, reg.All(), 1)

	tmpl, err := reg.Get("custom-template")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "custom"), tmpl.Path(root))
	assert.Equal(t, filepath.Join(root, "custom", "README.md"), tmpl.DocPath(root))
}
