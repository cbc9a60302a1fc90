package installer

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/movekit/movekit/pkg/errors"
)

func TestCommandInstallerSuccess(t *testing.T) {
	dir := t.TempDir()
	inst := NewCommandInstaller("sh", []string{"-c", "touch installed.marker"})

	require.NoError(t, inst.Install(context.Background(), dir))

	_, err := os.Stat(filepath.Join(dir, "installed.marker"))
	assert.NoError(t, err, "installer should run inside the project dir")
}

func TestCommandInstallerFailure(t *testing.T) {
	inst := NewCommandInstaller("sh", []string{"-c", "exit 3"})

	err := inst.Install(context.Background(), t.TempDir())
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInstallFailed))
}

func TestCommandInstallerMissingBinary(t *testing.T) {
	inst := NewCommandInstaller("definitely-not-a-real-pm", nil)

	err := inst.Install(context.Background(), t.TempDir())
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInstallFailed))
}

func TestNopInstaller(t *testing.T) {
	assert.NoError(t, NopInstaller{}.Install(context.Background(), t.TempDir()))
}
