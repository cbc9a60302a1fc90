package main

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/movekit/movekit/pkg/config"
	"github.com/movekit/movekit/pkg/style"
	"github.com/movekit/movekit/pkg/templates"
)

func newTemplatesCmd() *cobra.Command {
	var templatesDir string

	cmd := &cobra.Command{
		Use:   "templates",
		Short: "List the available project templates",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			reg, _, err := loadRegistry(cfg, templatesDir)
			if err != nil {
				return err
			}

			pterm.Println(style.TitleStyle.Sprint("Available templates"))
			pterm.Println()
			for _, t := range reg.All() {
				pterm.Println(pterm.Info.Prefix.Text + " " + pterm.Bold.Sprint(t.DisplayName))
				pterm.Println("   " + style.MutedStyle.Sprint(t.ID))
				if t.DocURL != "" {
					pterm.Println("   " + style.MutedStyle.Sprint(t.DocURL))
				}
				pterm.Println()
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&templatesDir, "templates-dir", "", "Override the templates root directory")
	return cmd
}

// loadRegistry resolves the templates root (flag, config, executable-relative
// fallback) and loads the catalog
func loadRegistry(cfg *config.Config, flagRoot string) (*templates.Registry, string, error) {
	root := flagRoot
	if root == "" {
		root = cfg.Templates.Root
	}
	if root == "" {
		root = defaultTemplatesRoot()
	}

	reg, err := templates.NewRegistry(root)
	if err != nil {
		return nil, "", err
	}
	return reg, root, nil
}
