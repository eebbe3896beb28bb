package app

import (
	"github.com/charmbracelet/bubbles/list"
	"github.com/riordanpawley/toastbar/internal/mailbox"
	"github.com/riordanpawley/toastbar/internal/ui/styles"
)

// messageItem adapts a mailbox message to the list
type messageItem struct {
	msg mailbox.Message
}

func (i messageItem) Title() string {
	if i.msg.Unread {
		return "● " + i.msg.Subject
	}
	return "  " + i.msg.Subject
}

func (i messageItem) Description() string {
	return "  " + i.msg.From + " · " + i.msg.Snippet
}

func (i messageItem) FilterValue() string {
	return i.msg.From + " " + i.msg.Subject
}

func toItems(messages []mailbox.Message) []list.Item {
	items := make([]list.Item, len(messages))
	for i, m := range messages {
		items[i] = messageItem{msg: m}
	}
	return items
}

func newDelegate(s *styles.Styles) list.DefaultDelegate {
	d := list.NewDefaultDelegate()
	d.Styles.NormalTitle = s.ItemTitle
	d.Styles.NormalDesc = s.ItemDesc
	d.Styles.SelectedTitle = s.ItemSelected
	d.Styles.SelectedDesc = s.ItemSelectedDesc
	return d
}

func newList(s *styles.Styles, messages []mailbox.Message) list.Model {
	l := list.New(toItems(messages), newDelegate(s), 0, 0)
	l.Title = "Inbox"
	l.Styles.Title = s.ListTitle
	l.Styles.NoItems = s.Empty
	l.KeyMap = listKeyMap()
	l.SetShowHelp(false)
	l.SetStatusBarItemName("message", "messages")
	return l
}
