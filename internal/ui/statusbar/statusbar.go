package statusbar

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/riordanpawley/toastbar/internal/types"
	"github.com/riordanpawley/toastbar/internal/ui/styles"
)

// StatusBar represents the status bar at the bottom of the TUI
type StatusBar struct {
	mode     types.Mode
	width    int
	styles   *styles.Styles
	bindings []key.Binding
	info     string
}

// New creates a new StatusBar with the given mode, width, and styles
func New(mode types.Mode, width int, styles *styles.Styles) StatusBar {
	return StatusBar{
		mode:   mode,
		width:  width,
		styles: styles,
	}
}

// WithBindings sets the key bindings shown as hints
func (sb StatusBar) WithBindings(bindings ...key.Binding) StatusBar {
	sb.bindings = bindings
	return sb
}

// WithInfo sets the text shown at the right edge
func (sb StatusBar) WithInfo(info string) StatusBar {
	sb.info = info
	return sb
}

// Render renders the status bar as a string
func (sb StatusBar) Render() string {
	// Mode badge
	modeBadge := sb.styles.StatusMode.Render(sb.mode.String())

	// Keybinding hints
	hints := GetHints(sb.bindings)
	hintsRendered := sb.styles.StatusHint.Render(hints)

	// Combine mode badge and hints with separator
	var content string
	if hints != "" {
		separator := sb.styles.StatusHint.Render(" │ ")
		content = lipgloss.JoinHorizontal(lipgloss.Left, modeBadge, separator, hintsRendered)
	} else {
		content = modeBadge
	}

	// status bar padding takes one cell on each side
	inner := max(0, sb.width-2)
	if sb.info != "" {
		info := sb.styles.StatusInfo.Render(sb.info)
		// hints give way to the info
		room := max(0, inner-lipgloss.Width(info)-1)
		if lipgloss.Width(content) > room {
			content = ansi.Truncate(content, room, "…")
		}
		if gap := inner - lipgloss.Width(content) - lipgloss.Width(info); gap > 0 {
			content = lipgloss.JoinHorizontal(lipgloss.Left, content, lipgloss.NewStyle().Width(gap).Render(""), info)
		}
	}
	// never wrap onto a second line
	content = ansi.Truncate(content, inner, "…")

	// Apply status bar style and fill width
	return sb.styles.StatusBar.Width(sb.width).Render(content)
}
