package main

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/movekit/movekit/pkg/account"
	"github.com/movekit/movekit/pkg/config"
	"github.com/movekit/movekit/pkg/installer"
	"github.com/movekit/movekit/pkg/scaffold"
	"github.com/movekit/movekit/pkg/telemetry"
	"github.com/movekit/movekit/pkg/types"
)

func newCreateCmd() *cobra.Command {
	var (
		name         string
		templateID   string
		network      string
		framework    string
		signing      string
		templatesDir string
		skipInstall  bool
		noTelemetry  bool
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Scaffold a new dapp project from a template",
		Example: `  movekit create --template boilerplate-template --name my-dapp
  movekit create --template clicker-game-tg-mini-app-template --signing explicit`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			reg, root, err := loadRegistry(cfg, templatesDir)
			if err != nil {
				return err
			}

			if name == "" {
				name = cfg.Project.DefaultName
			}

			sel := types.Selections{
				ProjectName:   name,
				TemplateID:    templateID,
				Network:       types.Network(network),
				Framework:     types.Framework(framework),
				SigningOption: types.SigningOption(signing),
			}

			var inst installer.Installer = installer.NewCommandInstaller(
				cfg.Installer.Command, cfg.Installer.Args)
			if skipInstall || cfg.Installer.Skip {
				inst = installer.NopInstaller{}
			}

			var reporter telemetry.Reporter = telemetry.NewHTTPReporter(cfg.Telemetry.Endpoint)
			if noTelemetry || cfg.Telemetry.Disabled {
				reporter = telemetry.NopReporter{}
			}

			pipeline := &scaffold.Pipeline{
				Registry:      reg,
				TemplatesRoot: root,
				Provisioner:   account.NewLocalProvisioner(),
				Installer:     inst,
				Reporter:      reporter,
			}

			// Failures were already reported on the progress indicators; the
			// result only decides the exit code.
			if res := pipeline.Run(cmd.Context(), sel); res.Failed() {
				os.Exit(1)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Project name (default from config)")
	cmd.Flags().StringVar(&templateID, "template", "", "Template identifier")
	cmd.Flags().StringVar(&network, "network", string(types.NetworkDevnet), "Target network (mainnet, testnet, devnet)")
	cmd.Flags().StringVar(&framework, "framework", string(types.FrameworkVite), "Frontend framework baked into the template")
	cmd.Flags().StringVar(&signing, "signing", "", "Signing option for templates that offer one (explicit, seamless)")
	cmd.Flags().StringVar(&templatesDir, "templates-dir", "", "Override the templates root directory")
	cmd.Flags().BoolVar(&skipInstall, "skip-install", false, "Skip dependency installation")
	cmd.Flags().BoolVar(&noTelemetry, "no-telemetry", false, "Disable the telemetry event")
	_ = cmd.MarkFlagRequired("template")

	return cmd
}

// defaultTemplatesRoot resolves the templates directory shipped next to the
// movekit executable
func defaultTemplatesRoot() string {
	exe, err := os.Executable()
	if err != nil {
		return "templates"
	}
	return filepath.Join(filepath.Dir(exe), "templates")
}
