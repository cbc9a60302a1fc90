// Package scaffold implements the project scaffolding pipeline: template
// materialization, variant resolution, environment-file synthesis, and the
// hand-off to dependency installation and telemetry.
package scaffold

import (
	"context"
	"os"
	"path/filepath"

	"github.com/movekit/movekit/pkg/account"
	"github.com/movekit/movekit/pkg/errors"
	"github.com/movekit/movekit/pkg/installer"
	"github.com/movekit/movekit/pkg/logging"
	"github.com/movekit/movekit/pkg/style"
	"github.com/movekit/movekit/pkg/telemetry"
	"github.com/movekit/movekit/pkg/templates"
	"github.com/movekit/movekit/pkg/types"
)

// Pipeline sequences one scaffold run. All collaborators are injected so the
// account, installer, and telemetry boundaries stay replaceable.
type Pipeline struct {
	Registry      *templates.Registry
	TemplatesRoot string
	Provisioner   account.Provisioner
	Installer     installer.Installer
	Reporter      telemetry.Reporter
}

// Run executes the pipeline for one selection. It never panics and never
// propagates an error out-of-band: every failure is reported on the active
// progress indicator, logged, and returned inside the Result. On failure the
// target directory keeps whatever was produced; there is no rollback.
func (p *Pipeline) Run(ctx context.Context, sel types.Selections) *types.Result {
	logger := logging.GetLogger("scaffold")
	res := &types.Result{ProjectName: sel.ProjectName}

	fail := func(step *style.Step, err error) *types.Result {
		step.Fail(err.Error())
		logger.Error().Err(err).Str("project", sel.ProjectName).Msg("Scaffolding failed")
		res.Err = err
		return res
	}

	step := style.StartStep("Creating project directory")

	tmpl, err := p.Registry.Get(sel.TemplateID)
	if err != nil {
		return fail(step, err)
	}

	cwd, err := os.Getwd()
	if err != nil {
		return fail(step, errors.Wrap(err, errors.ErrDirCreate, "failed to resolve working directory"))
	}
	targetDir := filepath.Join(cwd, sel.ProjectName)
	res.TargetDir = targetDir

	// MkdirAll keeps creation idempotent; an existing directory is not an
	// error, and consumers must not assume it was empty.
	if err := os.MkdirAll(targetDir, 0755); err != nil {
		return fail(step, errors.Wrapf(err, errors.ErrDirCreate,
			"failed to create target directory %s", targetDir))
	}
	step.Success("Project directory created")

	step = style.StartStep("Copying template files")
	if err := Materialize(tmpl.Path(p.TemplatesRoot), targetDir); err != nil {
		return fail(step, err)
	}
	step.Success("Template files copied")

	// Variant edits must complete before env generation: the env file may
	// carry variant-specific placeholder keys.
	step = style.StartStep("Customizing template")
	extraEnv, err := ResolveVariants(targetDir, sel)
	if err != nil {
		return fail(step, err)
	}
	step.Success("Template customized")

	step = style.StartStep("Creating module publisher account")
	if err := GenerateEnvFile(ctx, targetDir, sel, p.Provisioner, extraEnv); err != nil {
		return fail(step, err)
	}
	step.Success("Module publisher account created")

	step = style.StartStep("Installing dependencies")
	if err := p.Installer.Install(ctx, targetDir); err != nil {
		return fail(step, err)
	}
	step.Success("Dependencies installed")

	p.Reporter.Record(ctx, telemetry.NewEvent("create", sel))

	style.Summary(sel.ProjectName, targetDir, tmpl.DocURL)
	logger.Info().Str("target", targetDir).Msg("Scaffolding complete")

	return res
}
