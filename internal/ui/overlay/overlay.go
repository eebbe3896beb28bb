// Package overlay contains the modal overlays drawn over the mailbox.
package overlay

import tea "github.com/charmbracelet/bubbletea"

// Overlay represents a modal overlay component
type Overlay interface {
	tea.Model
	Title() string
	Size() (width, height int)
}

// CloseOverlayMsg signals that the overlay should be closed
type CloseOverlayMsg struct{}

// SelectionMsg is sent when an overlay finishes with a choice. Key names
// the overlay's purpose so the host can route the result.
type SelectionMsg struct {
	Key   string
	Value any
}
