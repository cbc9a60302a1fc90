// Package installer runs dependency installation inside a freshly scaffolded
// project directory.
package installer

import (
	"context"
	"os/exec"

	"github.com/movekit/movekit/pkg/errors"
	"github.com/movekit/movekit/pkg/logging"
)

// Installer installs a scaffolded project's dependencies
type Installer interface {
	Install(ctx context.Context, dir string) error
}

// CommandInstaller shells out to a package manager (npm by default)
type CommandInstaller struct {
	Command string
	Args    []string
}

// NewCommandInstaller creates an installer for the given package-manager
// command and arguments
func NewCommandInstaller(command string, args []string) *CommandInstaller {
	return &CommandInstaller{Command: command, Args: args}
}

// Install runs the configured command with the project dir as working
// directory. Retry and backoff are the package manager's business, not ours.
func (i *CommandInstaller) Install(ctx context.Context, dir string) error {
	logger := logging.GetLogger("installer")
	logger.Info().
		Str("command", i.Command).
		Strs("args", i.Args).
		Str("dir", dir).
		Msg("Installing dependencies")

	cmd := exec.CommandContext(ctx, i.Command, i.Args...)
	cmd.Dir = dir

	out, err := cmd.CombinedOutput()
	if len(out) > 0 {
		logger.Debug().Str("output", string(out)).Msg("Installer output")
	}
	if err != nil {
		return errors.Wrapf(err, errors.ErrInstallFailed,
			"%s failed in %s", i.Command, dir)
	}

	logger.Info().Str("dir", dir).Msg("Dependencies installed")
	return nil
}

// NopInstaller skips installation entirely (--skip-install)
type NopInstaller struct{}

// Install does nothing
func (NopInstaller) Install(ctx context.Context, dir string) error {
	logger := logging.GetLogger("installer")
	logger.Debug().Str("dir", dir).Msg("Skipping dependency installation")
	return nil
}
