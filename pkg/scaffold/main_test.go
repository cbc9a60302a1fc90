package scaffold

import (
	"os"
	"testing"

	"github.com/pterm/pterm"
)

func TestMain(m *testing.M) {
	// Keep spinners out of test output
	pterm.DisableOutput()
	os.Exit(m.Run())
}
