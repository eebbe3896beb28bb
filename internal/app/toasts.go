package app

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/riordanpawley/toastbar/internal/mailbox"
	"github.com/riordanpawley/toastbar/internal/toastbar"
)

// Toast resources
const (
	IconArchive toastbar.ResourceID = iota + 1
	IconDelete
	IconRead
	LabelUndo
)

func resources() toastbar.MapResources {
	return toastbar.MapResources{
		Icons: map[toastbar.ResourceID]string{
			IconArchive: "▤",
			IconDelete:  "✗",
			IconRead:    "✓",
		},
		Strings: map[toastbar.ResourceID]string{
			LabelUndo: "Undo",
		},
	}
}

// listener handles action clicks for operations that leave the click to
// the host
type listener struct {
	store *mailbox.Store
	bar   *toastbar.Bar
}

// OnActionClicked implements toastbar.ActionClickedListener
func (l *listener) OnActionClicked(ctx context.Context) tea.Cmd {
	op, ok := l.bar.Operation().(mailbox.MarkRead)
	if !ok || ctx.Err() != nil {
		return nil
	}
	err := l.store.SetUnread(op.ID, true)
	return func() tea.Msg {
		return mailbox.ChangedMsg{Op: "mark-unread", ID: op.ID, Err: err}
	}
}

func archivedToast(m mailbox.Message, store *mailbox.Store) toastbar.Request {
	return toastbar.Request{
		DescriptionIcon: IconArchive,
		DescriptionText: fmt.Sprintf("Archived %q", m.Subject),
		ShowActionIcon:  true,
		ActionLabel:     LabelUndo,
		ReplaceVisible:  true,
		Operation:       mailbox.NewUndoArchive(store, m.ID),
	}
}

func deletedToast(m mailbox.Message, store *mailbox.Store) toastbar.Request {
	return toastbar.Request{
		DescriptionIcon: IconDelete,
		DescriptionText: fmt.Sprintf("Deleted %q", m.Subject),
		ShowActionIcon:  true,
		ActionLabel:     LabelUndo,
		ReplaceVisible:  true,
		Operation:       mailbox.NewUndoDelete(store, m.ID),
	}
}

// markedReadToast does not interrupt a toast that is already up
func markedReadToast(m mailbox.Message) toastbar.Request {
	return toastbar.Request{
		DescriptionIcon: IconRead,
		DescriptionText: "Marked as read",
		ShowActionIcon:  false,
		ActionLabel:     LabelUndo,
		ReplaceVisible:  false,
		Operation:       mailbox.MarkRead{ID: m.ID},
	}
}
