package overlay

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// KeyCategory is a titled group of bindings
type KeyCategory struct {
	Name     string
	Bindings []key.Binding
}

// HelpOverlay displays keybinding reference
type HelpOverlay struct {
	styles     *Styles
	help       help.Model
	categories []KeyCategory
	scroll     int
	maxScroll  int
	viewHeight int
}

// NewHelpOverlay creates a help overlay listing the given categories
func NewHelpOverlay(s *Styles, categories ...KeyCategory) *HelpOverlay {
	if s == nil {
		s = New()
	}
	h := help.New()
	h.Styles.FullKey = s.MenuKey
	h.Styles.FullDesc = s.MenuItem
	h.FullSeparator = "    "
	return &HelpOverlay{
		styles:     s,
		help:       h,
		categories: categories,
		viewHeight: 14,
	}
}

// Init initializes the overlay
func (h *HelpOverlay) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (h *HelpOverlay) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "q", "?":
			return h, func() tea.Msg { return CloseOverlayMsg{} }

		case "j", "down":
			if h.scroll < h.maxScroll {
				h.scroll++
			}
			return h, nil

		case "k", "up":
			if h.scroll > 0 {
				h.scroll--
			}
			return h, nil

		case "g":
			h.scroll = 0
			return h, nil

		case "G":
			h.scroll = h.maxScroll
			return h, nil
		}
	}

	return h, nil
}

// View renders the help overlay
func (h *HelpOverlay) View() string {
	var content strings.Builder
	for i, cat := range h.categories {
		if i > 0 {
			content.WriteString("\n")
		}
		content.WriteString(h.styles.MenuHeader.Render(cat.Name + ":"))
		content.WriteString("\n")
		// a single column lists one binding per row
		for _, line := range strings.Split(h.help.FullHelpView([][]key.Binding{cat.Bindings}), "\n") {
			if strings.TrimSpace(line) == "" {
				continue
			}
			content.WriteString("  " + line + "\n")
		}
	}

	lines := strings.Split(strings.TrimRight(content.String(), "\n"), "\n")
	totalLines := len(lines)
	h.maxScroll = max(0, totalLines-h.viewHeight)
	h.scroll = min(h.scroll, h.maxScroll)

	end := min(h.scroll+h.viewHeight, totalLines)
	result := strings.Join(lines[h.scroll:end], "\n")

	if h.maxScroll > 0 {
		scrollInfo := h.styles.Footer.Render(
			lipgloss.JoinHorizontal(
				lipgloss.Left,
				"[",
				h.styles.MenuKey.Render("j/k"),
				" to scroll, ",
				h.styles.MenuKey.Render("g/G"),
				" to jump]",
			),
		)
		result += "\n" + scrollInfo
	}

	return result
}

// Title returns the overlay title
func (h *HelpOverlay) Title() string {
	return "Help"
}

// Size returns the overlay dimensions
func (h *HelpOverlay) Size() (width, height int) {
	return 44, h.viewHeight + 4
}
