package overlay

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/riordanpawley/toastbar/internal/ui/styles"
)

// Styles holds all overlay-specific styles
type Styles struct {
	// Overlay is the base overlay container style
	Overlay lipgloss.Style
	// Title is the overlay title style
	Title lipgloss.Style
	// MenuItem is the default menu item style
	MenuItem lipgloss.Style
	// MenuItemActive is the highlighted/selected menu item style
	MenuItemActive lipgloss.Style
	// MenuKey is the style for keybinding hints
	MenuKey lipgloss.Style
	// MenuHeader is the style for menu section headers
	MenuHeader lipgloss.Style
	// Footer is the style for overlay footer text
	Footer lipgloss.Style
}

// New creates overlay styles for the default flavor
func New() *Styles {
	return FromPalette(styles.Macchiato)
}

// FromPalette creates overlay styles for one flavor
func FromPalette(p styles.Palette) *Styles {
	return &Styles{
		Overlay: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(p.Surface2).
			Background(p.Base).
			Padding(1, 2),

		Title: lipgloss.NewStyle().
			Foreground(p.Text).
			Bold(true).
			MarginBottom(1),

		MenuItem: lipgloss.NewStyle().
			Foreground(p.Text),

		MenuItemActive: lipgloss.NewStyle().
			Foreground(p.Blue).
			Bold(true),

		MenuKey: lipgloss.NewStyle().
			Foreground(p.Yellow).
			Bold(true),

		MenuHeader: lipgloss.NewStyle().
			Foreground(p.Blue).
			Bold(true),

		Footer: lipgloss.NewStyle().
			Foreground(p.Subtext0).
			MarginTop(1),
	}
}
