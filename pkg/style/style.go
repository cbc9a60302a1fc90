// Package style centralizes the pterm styling used by movekit's console
// output: pipeline step spinners and the final summary panel.
package style

import (
	"github.com/pterm/pterm"
)

// Shared styles
var (
	TitleStyle = pterm.NewStyle(pterm.FgCyan, pterm.Bold)
	MutedStyle = pterm.NewStyle(pterm.FgGray)
	PathStyle  = pterm.NewStyle(pterm.FgLightBlue)
)

// Step wraps one active pipeline progress indicator
type Step struct {
	spinner *pterm.SpinnerPrinter
	message string
}

// StartStep begins a spinner for one pipeline step
func StartStep(message string) *Step {
	spinner, err := pterm.DefaultSpinner.Start(message)
	if err != nil {
		// Spinner creation only fails on exotic terminals; degrade to plain lines
		pterm.Info.Println(message)
		spinner = nil
	}
	return &Step{spinner: spinner, message: message}
}

// Success marks the step done
func (s *Step) Success(message string) {
	if s.spinner != nil {
		s.spinner.Success(message)
		return
	}
	pterm.Success.Println(message)
}

// Fail marks the step failed with the error's message
func (s *Step) Fail(message string) {
	if s.spinner != nil {
		s.spinner.Fail(message)
		return
	}
	pterm.Error.Println(message)
}

// Summary prints the post-scaffold next steps
func Summary(projectName, targetDir, docURL string) {
	pterm.Println()
	pterm.Println(TitleStyle.Sprint("Project created successfully"))
	pterm.Println()
	pterm.Println("  " + PathStyle.Sprint(targetDir))
	pterm.Println()
	pterm.Println("Next steps:")
	pterm.Println("  cd " + projectName)
	pterm.Println("  npm run dev")
	if docURL != "" {
		pterm.Println()
		pterm.Println(MutedStyle.Sprint("Docs: " + docURL))
	}
}
