// Package style centralizes terminal output styling for dotstow.
package style

import (
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/pterm/pterm"
)

// Styles used across command output
var (
	TitleStyle   = pterm.NewStyle(pterm.FgLightCyan, pterm.Bold)
	SuccessStyle = pterm.NewStyle(pterm.FgGreen)
	WarningStyle = pterm.NewStyle(pterm.FgYellow)
	ErrorStyle   = pterm.NewStyle(pterm.FgRed, pterm.Bold)
	MutedStyle   = pterm.NewStyle(pterm.FgGray)
)

// Init disables color when stdout is not a terminal
func Init() {
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		pterm.DisableColor()
	}
}

// Bold renders s in bold
func Bold(s string) string {
	return pterm.Bold.Sprint(s)
}

// Indent indents every line of s by level*2 spaces
func Indent(s string, level int) string {
	prefix := strings.Repeat("  ", level)
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = prefix + line
		}
	}
	return strings.Join(lines, "\n")
}
