// Package mailbox is a small in-memory mail store used by the demo host. It
// supports the operations a toast can undo: archive, delete and mark read.
package mailbox

import (
	"time"

	"github.com/google/uuid"
)

// Folder is where a message lives
type Folder string

const (
	FolderInbox   Folder = "inbox"
	FolderArchive Folder = "archive"
	FolderTrash   Folder = "trash"
)

// String returns the display string
func (f Folder) String() string {
	return string(f)
}

// Message is one mail message
type Message struct {
	ID       string
	From     string
	Subject  string
	Snippet  string
	Folder   Folder
	Unread   bool
	Received time.Time
}

// NewMessage creates an unread inbox message with a fresh ID
func NewMessage(from, subject, snippet string, received time.Time) Message {
	return Message{
		ID:       uuid.NewString(),
		From:     from,
		Subject:  subject,
		Snippet:  snippet,
		Folder:   FolderInbox,
		Unread:   true,
		Received: received,
	}
}

// Seed returns a handful of messages received shortly before now
func Seed(now time.Time) []Message {
	type seed struct {
		from, subject, snippet string
		ago                    time.Duration
		read                   bool
	}
	seeds := []seed{
		{"Ana Lima", "Quarterly planning", "Agenda attached, please add your items before Thursday", 5 * time.Minute, false},
		{"Build Bot", "Nightly build passed", "All 412 checks green on main", 42 * time.Minute, true},
		{"Kenji Sato", "Lunch?", "Noodle place downstairs at 12:30", 2 * time.Hour, false},
		{"Billing", "Your invoice is ready", "Invoice #2291 for October is available", 5 * time.Hour, true},
		{"Priya Nair", "Review: toast bar split pill", "Left a couple of comments on the divider clip", 26 * time.Hour, false},
		{"Events", "Meetup next week", "Talks on terminal UIs and animation springs", 3 * 24 * time.Hour, true},
	}

	messages := make([]Message, 0, len(seeds))
	for _, s := range seeds {
		m := NewMessage(s.from, s.subject, s.snippet, now.Add(-s.ago))
		m.Unread = !s.read
		messages = append(messages, m)
	}
	return messages
}
