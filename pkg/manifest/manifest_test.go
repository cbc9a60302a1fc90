package manifest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/movekit/movekit/pkg/errors"
)

const sampleManifest = `{
  "name": "clicker-game",
  "version": "0.1.0",
  "dependencies": {
    "@aptos-labs/ts-sdk": "^1.27.0",
    "@aptos-labs/wallet-adapter-react": "^3.7.0",
    "react": "^18.3.1"
  },
  "devDependencies": {
    "typescript": "^5.4.5",
    "vite": "^5.2.0"
  }
}
`

func writeSample(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "package.json")
	require.NoError(t, os.WriteFile(path, []byte(sampleManifest), 0644))
	return path
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "package.json"))
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrManifestParse))
}

func TestLoadInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "package.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	_, err := Load(path)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrManifestParse))
}

func TestHasDependency(t *testing.T) {
	m, err := Load(writeSample(t))
	require.NoError(t, err)

	assert.True(t, m.HasDependency("@aptos-labs/wallet-adapter-react"))
	assert.True(t, m.HasDependency("vite"))
	assert.False(t, m.HasDependency("lodash"))
}

func TestRemoveDependency(t *testing.T) {
	path := writeSample(t)
	m, err := Load(path)
	require.NoError(t, err)

	assert.True(t, m.RemoveDependency("@aptos-labs/wallet-adapter-react"))
	assert.False(t, m.RemoveDependency("@aptos-labs/wallet-adapter-react"))
	require.NoError(t, m.Write())

	reloaded, err := Load(path)
	require.NoError(t, err)
	assert.False(t, reloaded.HasDependency("@aptos-labs/wallet-adapter-react"))
	assert.True(t, reloaded.HasDependency("@aptos-labs/ts-sdk"))
	assert.True(t, reloaded.HasDependency("react"))
	assert.True(t, reloaded.HasDependency("typescript"))
}

func TestWriteDeterministic(t *testing.T) {
	path := writeSample(t)

	m, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, m.Write())

	first, err := os.ReadFile(path)
	require.NoError(t, err)

	m, err = Load(path)
	require.NoError(t, err)
	require.NoError(t, m.Write())

	second, err := os.ReadFile(path)
	require.NoError(t, err)

	assert.Equal(t, string(first), string(second))
	assert.True(t, len(first) > 0 && first[len(first)-1] == '\n')
}
