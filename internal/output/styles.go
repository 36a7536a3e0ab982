package output

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Styles holds the lipgloss styles used for stderr messages
var Styles = struct {
	Warning lipgloss.Style
	Danger  lipgloss.Style
}{
	Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true), // Orange
	Danger:  lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true), // Red
}

// IsTerminal reports whether w is a terminal
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Prefix renders a message prefix such as "Warning:", styled only when the
// destination is a terminal.
func Prefix(w io.Writer, style lipgloss.Style, text string) string {
	if !IsTerminal(w) {
		return text
	}
	return style.Render(text)
}
