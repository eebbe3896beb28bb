package overlay

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

// answerOf runs cmd and returns the dialog's result
func answerOf(t *testing.T, cmd tea.Cmd) SelectionMsg {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a command")
	}
	msg, ok := cmd().(SelectionMsg)
	if !ok {
		t.Fatalf("expected SelectionMsg, got %T", cmd())
	}
	return msg
}

func TestNewConfirmDialog(t *testing.T) {
	dialog := NewConfirmDialog("empty-trash", "Empty trash", "Delete 2 messages forever?", nil)

	if dialog.Title() != "Empty trash" {
		t.Errorf("expected title %q, got %q", "Empty trash", dialog.Title())
	}
	if dialog.selected {
		t.Error("expected default selection to be No")
	}
	if dialog.styles == nil {
		t.Error("expected styles to be initialized")
	}

	width, height := dialog.Size()
	if width <= 0 || height < 6 {
		t.Errorf("unexpected size %dx%d", width, height)
	}
}

func TestConfirmDialog_Keys(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want bool
	}{
		{"lowercase y", runeKey('y'), true},
		{"uppercase Y", runeKey('Y'), true},
		{"lowercase n", runeKey('n'), false},
		{"uppercase N", runeKey('N'), false},
		{"escape", tea.KeyMsg{Type: tea.KeyEsc}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dialog := NewConfirmDialog("purpose", "Title", "Message", nil)

			_, cmd := dialog.Update(tt.msg)
			msg := answerOf(t, cmd)

			if msg.Key != "purpose" {
				t.Errorf("expected key %q, got %q", "purpose", msg.Key)
			}
			if got := msg.Value.(ConfirmResult).Confirmed; got != tt.want {
				t.Errorf("Confirmed = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestConfirmDialog_EnterUsesSelection(t *testing.T) {
	dialog := NewConfirmDialog("purpose", "Title", "Message", nil)

	_, cmd := dialog.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if answerOf(t, cmd).Value.(ConfirmResult).Confirmed {
		t.Error("enter on the default selection should answer No")
	}

	dialog.Update(tea.KeyMsg{Type: tea.KeyTab})
	_, cmd = dialog.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if !answerOf(t, cmd).Value.(ConfirmResult).Confirmed {
		t.Error("enter after tab should answer Yes")
	}

	dialog.Update(runeKey('h'))
	if dialog.selected {
		t.Error("h should move the selection back to No")
	}
}

func TestConfirmDialog_IgnoresOtherMessages(t *testing.T) {
	dialog := NewConfirmDialog("purpose", "Title", "Message", nil)

	if _, cmd := dialog.Update(tea.WindowSizeMsg{Width: 10}); cmd != nil {
		t.Error("non-key messages should be ignored")
	}
	if _, cmd := dialog.Update(runeKey('z')); cmd != nil {
		t.Error("unbound keys should be ignored")
	}
}

func TestConfirmDialog_View(t *testing.T) {
	dialog := NewConfirmDialog("purpose", "Title", "Delete forever?", nil)

	view := ansi.Strip(dialog.View())

	for _, want := range []string{"Delete forever?", "[Y] Yes", "[N] No", "Esc: Cancel"} {
		if !strings.Contains(view, want) {
			t.Errorf("view should contain %q, got:\n%s", want, view)
		}
	}
}
