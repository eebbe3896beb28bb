package toastbar

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the bar's key bindings
type KeyMap struct {
	Action key.Binding
}

// DefaultKeyMap clicks the action button with u or ctrl+z
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Action: key.NewBinding(
			key.WithKeys("u", "ctrl+z"),
			key.WithHelp("u", "undo"),
		),
	}
}
