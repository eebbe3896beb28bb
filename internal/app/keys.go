package app

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
)

// KeyMap holds the mailbox key bindings. The toast's undo binding lives
// with the toast bar.
type KeyMap struct {
	Archive    key.Binding
	Delete     key.Binding
	MarkRead   key.Binding
	EmptyTrash key.Binding
	Help       key.Binding
	Quit       key.Binding
	ForceQuit  key.Binding
}

// DefaultKeyMap returns the default bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Archive: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "archive"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d", "delete"),
			key.WithHelp("d", "delete"),
		),
		MarkRead: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "mark read"),
		),
		EmptyTrash: key.NewBinding(
			key.WithKeys("X"),
			key.WithHelp("X", "empty trash"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		// works while filtering too
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
		),
	}
}

// listKeyMap keeps the list's navigation but frees the letters the mailbox
// uses
func listKeyMap() list.KeyMap {
	km := list.DefaultKeyMap()
	km.PrevPage = key.NewBinding(
		key.WithKeys("left", "pgup"),
		key.WithHelp("←/pgup", "prev page"),
	)
	km.NextPage = key.NewBinding(
		key.WithKeys("right", "pgdown"),
		key.WithHelp("→/pgdn", "next page"),
	)
	km.Quit.SetEnabled(false)
	km.ForceQuit.SetEnabled(false)
	km.ShowFullHelp.SetEnabled(false)
	km.CloseFullHelp.SetEnabled(false)
	return km
}
