package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/movekit/movekit/pkg/config"
)

func newDocsCmd() *cobra.Command {
	var templatesDir string

	cmd := &cobra.Command{
		Use:   "docs <template>",
		Short: "Show the documentation bundled with a template",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			reg, root, err := loadRegistry(cfg, templatesDir)
			if err != nil {
				return err
			}

			tmpl, err := reg.Get(args[0])
			if err != nil {
				return err
			}

			raw, err := os.ReadFile(tmpl.DocPath(root))
			if err != nil {
				// No bundled doc; at least point at the hosted one
				if tmpl.DocURL != "" {
					fmt.Fprintf(cmd.OutOrStdout(), "Documentation: %s\n", tmpl.DocURL)
					return nil
				}
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), renderMarkdown(string(raw)))
			return nil
		},
	}

	cmd.Flags().StringVar(&templatesDir, "templates-dir", "", "Override the templates root directory")
	return cmd
}

// renderMarkdown renders with glamour on capable terminals and passes the
// text through unchanged when output is piped or colorless
func renderMarkdown(content string) string {
	if !isatty.IsTerminal(os.Stdout.Fd()) || termenv.ColorProfile() == termenv.Ascii {
		return content
	}

	renderer, err := glamour.NewTermRenderer(glamour.WithAutoStyle())
	if err != nil {
		return content
	}
	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}
	return rendered
}
