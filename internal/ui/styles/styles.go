package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// ToastBarColors are the colors a toast bar paints with. The bar blends
// them toward Host while it fades.
type ToastBarColors struct {
	Host       lipgloss.Color
	Surface    lipgloss.Color
	Border     lipgloss.Color
	Text       lipgloss.Color
	Icon       lipgloss.Color
	Divider    lipgloss.Color
	Action     lipgloss.Color
	ActionText lipgloss.Color
}

// Styles holds all the UI styles
type Styles struct {
	Palette Palette

	// Mailbox list
	ListTitle        lipgloss.Style
	ItemTitle        lipgloss.Style
	ItemDesc         lipgloss.Style
	ItemSelected     lipgloss.Style
	ItemSelectedDesc lipgloss.Style
	Empty            lipgloss.Style

	// Status bar
	StatusBar   lipgloss.Style
	StatusMode  lipgloss.Style
	StatusHint  lipgloss.Style
	StatusInfo  lipgloss.Style
	StatusError lipgloss.Style

	// Toast bar
	ToastBar ToastBarColors
}

// New creates a new Styles instance with the Catppuccin Macchiato theme
func New() *Styles {
	return FromPalette(Macchiato)
}

// FromPalette builds the styles for one flavor
func FromPalette(p Palette) *Styles {
	return &Styles{
		Palette: p,

		ListTitle: lipgloss.NewStyle().
			Foreground(p.Base).
			Background(p.Mauve).
			Bold(true).
			Padding(0, 1),

		ItemTitle: lipgloss.NewStyle().
			Foreground(p.Text).
			Padding(0, 0, 0, 2),

		ItemDesc: lipgloss.NewStyle().
			Foreground(p.Overlay1).
			Padding(0, 0, 0, 2),

		ItemSelected: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(p.Blue).
			Foreground(p.Blue).
			Bold(true).
			Padding(0, 0, 0, 1),

		ItemSelectedDesc: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(p.Blue).
			Foreground(p.Lavender).
			Padding(0, 0, 0, 1),

		Empty: lipgloss.NewStyle().
			Foreground(p.Overlay0).
			Italic(true),

		StatusBar: lipgloss.NewStyle().
			Background(p.Surface0).
			Foreground(p.Subtext0).
			Padding(0, 1),

		StatusMode: lipgloss.NewStyle().
			Background(p.Blue).
			Foreground(p.Base).
			Bold(true).
			Padding(0, 1),

		StatusHint: lipgloss.NewStyle().
			Foreground(p.Overlay1),

		StatusInfo: lipgloss.NewStyle().
			Foreground(p.Subtext0),

		StatusError: lipgloss.NewStyle().
			Foreground(p.Red).
			Bold(true),

		ToastBar: ToastBarColors{
			Host:       p.Base,
			Surface:    p.Surface0,
			Border:     p.Surface2,
			Text:       p.Text,
			Icon:       p.Peach,
			Divider:    p.Overlay0,
			Action:     p.Surface1,
			ActionText: p.Lavender,
		},
	}
}
