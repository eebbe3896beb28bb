package toastbar

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
)

// Operation is the action a toast represents, such as undoing an archive.
// What an operation can do is discovered through the optional capability
// interfaces below.
type Operation interface {
	// Kind names the operation for logs and hosts
	Kind() string
}

// ActionClickedListener reacts to the toast's action button
type ActionClickedListener interface {
	OnActionClicked(ctx context.Context) tea.Cmd
}

// ActionClickedFunc adapts a function to ActionClickedListener
type ActionClickedFunc func(ctx context.Context) tea.Cmd

// OnActionClicked calls f
func (f ActionClickedFunc) OnActionClicked(ctx context.Context) tea.Cmd {
	return f(ctx)
}

// TimeoutListener is told when a toast goes away without its action being
// clicked.
type TimeoutListener interface {
	OnToastBarTimeout(ctx context.Context) tea.Cmd
}

// PrecedenceClaimer lets an operation handle action clicks itself instead
// of the listener passed to Show. The claim only counts when the operation
// also implements ActionClickedListener.
type PrecedenceClaimer interface {
	ShouldTakeOnActionClickedPrecedence() bool
}

// takesPrecedence returns the operation's own click handler when it claims
// precedence over the caller's listener.
func takesPrecedence(op Operation) (ActionClickedListener, bool) {
	claimer, ok := op.(PrecedenceClaimer)
	if !ok || !claimer.ShouldTakeOnActionClickedPrecedence() {
		return nil, false
	}
	l, ok := op.(ActionClickedListener)
	return l, ok
}

// opKind is safe on nil operations
func opKind(op Operation) string {
	if op == nil {
		return ""
	}
	return op.Kind()
}
