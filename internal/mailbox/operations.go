package mailbox

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
)

// Operation kinds
const (
	KindArchive  = "archive"
	KindDelete   = "delete"
	KindMarkRead = "mark-read"
)

// ChangedMsg reports a store change made by a toast operation. Err is set
// when the change failed.
type ChangedMsg struct {
	Op  string
	ID  string
	Err error
}

func changed(op, id string, err error) tea.Cmd {
	return func() tea.Msg {
		return ChangedMsg{Op: op, ID: id, Err: err}
	}
}

// Undo reverses an archive or delete when the toast's action is clicked. It
// handles the click itself rather than leaving it to the host.
type Undo struct {
	kind  string
	store *Store
	id    string
	// finalize runs when the toast goes away without an undo
	finalize func(id string) error
}

// NewUndoArchive undoes archiving id
func NewUndoArchive(store *Store, id string) *Undo {
	return &Undo{kind: KindArchive, store: store, id: id}
}

// NewUndoDelete undoes deleting id. If the toast times out the message is
// purged from the trash.
func NewUndoDelete(store *Store, id string) *Undo {
	return &Undo{kind: KindDelete, store: store, id: id, finalize: store.Purge}
}

// Kind implements toastbar.Operation
func (u *Undo) Kind() string { return u.kind }

// MessageID returns the message the operation acts on
func (u *Undo) MessageID() string { return u.id }

// ShouldTakeOnActionClickedPrecedence implements toastbar.PrecedenceClaimer
func (u *Undo) ShouldTakeOnActionClickedPrecedence() bool { return true }

// OnActionClicked restores the message
func (u *Undo) OnActionClicked(ctx context.Context) tea.Cmd {
	if ctx.Err() != nil {
		return nil
	}
	return changed("undo-"+u.kind, u.id, u.store.Restore(u.id))
}

// OnToastBarTimeout makes the change permanent
func (u *Undo) OnToastBarTimeout(ctx context.Context) tea.Cmd {
	if u.finalize == nil || ctx.Err() != nil {
		return nil
	}
	return changed("finalize-"+u.kind, u.id, u.finalize(u.id))
}

// MarkRead is the operation behind a "marked as read" toast. It leaves the
// action click to the host's listener.
type MarkRead struct {
	ID string
}

// Kind implements toastbar.Operation
func (MarkRead) Kind() string { return KindMarkRead }
