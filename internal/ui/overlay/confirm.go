package overlay

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// ConfirmDialog asks a yes/no question before an action that cannot be
// undone from a toast
type ConfirmDialog struct {
	purpose  string
	title    string
	message  string
	styles   *Styles
	keys     confirmKeys
	selected bool // true = Yes, false = No
}

// ConfirmResult is the SelectionMsg value a ConfirmDialog sends
type ConfirmResult struct {
	Confirmed bool
}

type confirmKeys struct {
	Yes   key.Binding
	No    key.Binding
	Enter key.Binding
	Left  key.Binding
	Right key.Binding
}

func defaultConfirmKeys() confirmKeys {
	return confirmKeys{
		Yes:   key.NewBinding(key.WithKeys("y", "Y")),
		No:    key.NewBinding(key.WithKeys("n", "N", "esc")),
		Enter: key.NewBinding(key.WithKeys("enter")),
		Left:  key.NewBinding(key.WithKeys("left", "h")),
		Right: key.NewBinding(key.WithKeys("right", "l", "tab")),
	}
}

// NewConfirmDialog creates a dialog whose answer is sent as a SelectionMsg
// keyed by purpose
func NewConfirmDialog(purpose, title, message string, s *Styles) *ConfirmDialog {
	if s == nil {
		s = New()
	}
	return &ConfirmDialog{
		purpose: purpose,
		title:   title,
		message: message,
		styles:  s,
		keys:    defaultConfirmKeys(),
	}
}

// Init initializes the dialog
func (c *ConfirmDialog) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (c *ConfirmDialog) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	switch {
	case key.Matches(keyMsg, c.keys.Yes):
		return c, c.answer(true)
	case key.Matches(keyMsg, c.keys.No):
		return c, c.answer(false)
	case key.Matches(keyMsg, c.keys.Enter):
		return c, c.answer(c.selected)
	case key.Matches(keyMsg, c.keys.Left):
		c.selected = false
	case key.Matches(keyMsg, c.keys.Right):
		c.selected = true
	}
	return c, nil
}

func (c *ConfirmDialog) answer(yes bool) tea.Cmd {
	return func() tea.Msg {
		return SelectionMsg{Key: c.purpose, Value: ConfirmResult{Confirmed: yes}}
	}
}

// View renders the dialog
func (c *ConfirmDialog) View() string {
	var b strings.Builder

	if c.message != "" {
		b.WriteString(c.styles.MenuItem.Render(c.message))
		b.WriteString("\n\n")
	}

	yesStyle := c.styles.MenuItem
	noStyle := c.styles.MenuItem
	if c.selected {
		yesStyle = c.styles.MenuItemActive
	} else {
		noStyle = c.styles.MenuItemActive
	}

	b.WriteString(yesStyle.Render("[Y] Yes") + "    " + noStyle.Render("[N] No"))
	b.WriteString("\n\n")
	b.WriteString(c.styles.Footer.Render("← → / Tab: Switch • Enter: Confirm • Esc: Cancel"))

	return b.String()
}

// Title returns the dialog title
func (c *ConfirmDialog) Title() string {
	return c.title
}

// Size returns the dialog dimensions
func (c *ConfirmDialog) Size() (width, height int) {
	messageLines := len(strings.Split(c.message, "\n"))
	return 56, messageLines + 6
}
