package report

import (
	"os"

	"github.com/pterm/pterm"
)

// SessionSaved reports that a session was written to the store.
func SessionSaved(name string, total, arrows int) {
	pterm.Success.Printfln("session %q saved: %d points over %d arrows", name, total, arrows)
}

// Error prints err.
func Error(err error) {
	pterm.Error.Println(err)
}

// Quit prints err and exits the process.
func Quit(err error) {
	pterm.Error.Println(err)
	os.Exit(1)
}
