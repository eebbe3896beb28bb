package mailbox

import (
	"log/slog"
	"sort"
	"sync"
)

// Store holds messages in memory. Deleted messages sit in the trash until
// Purge removes them for good.
type Store struct {
	mu       sync.RWMutex
	messages map[string]*Message
	logger   *slog.Logger
}

// NewStore creates a store holding a copy of messages
func NewStore(messages []Message, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Store{
		messages: make(map[string]*Message, len(messages)),
		logger:   logger,
	}
	for i := range messages {
		m := messages[i]
		s.messages[m.ID] = &m
	}
	return s
}

// Get returns the message with the given ID
func (s *Store) Get(id string) (Message, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	m, ok := s.messages[id]
	if !ok {
		return Message{}, &MailboxError{Op: "get", ID: id, Err: ErrNotFound}
	}
	return *m, nil
}

// List returns the messages in folder, newest first
func (s *Store) List(folder Folder) []Message {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]Message, 0, len(s.messages))
	for _, m := range s.messages {
		if m.Folder == folder {
			result = append(result, *m)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		if result[i].Received.Equal(result[j].Received) {
			return result[i].ID < result[j].ID
		}
		return result[i].Received.After(result[j].Received)
	})
	return result
}

// Archive moves an inbox message to the archive
func (s *Store) Archive(id string) error {
	return s.move("archive", id, FolderInbox, FolderArchive)
}

// Delete moves an inbox message to the trash
func (s *Store) Delete(id string) error {
	return s.move("delete", id, FolderInbox, FolderTrash)
}

// Restore moves an archived or trashed message back to the inbox
func (s *Store) Restore(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.messages[id]
	if !ok {
		return &MailboxError{Op: "restore", ID: id, Err: ErrNotFound}
	}
	if m.Folder == FolderInbox {
		return &MailboxError{Op: "restore", ID: id, Err: ErrWrongFolder}
	}
	s.logger.Debug("message restored", "id", id, "from", m.Folder)
	m.Folder = FolderInbox
	return nil
}

// Purge removes a trashed message permanently
func (s *Store) Purge(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.messages[id]
	if !ok {
		return &MailboxError{Op: "purge", ID: id, Err: ErrNotFound}
	}
	if m.Folder != FolderTrash {
		return &MailboxError{Op: "purge", ID: id, Err: ErrWrongFolder}
	}
	delete(s.messages, id)
	s.logger.Debug("message purged", "id", id)
	return nil
}

// EmptyTrash purges every trashed message and returns how many went
func (s *Store) EmptyTrash() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for id, m := range s.messages {
		if m.Folder == FolderTrash {
			delete(s.messages, id)
			n++
		}
	}
	if n > 0 {
		s.logger.Info("trash emptied", "count", n)
	}
	return n
}

// SetUnread marks a message read or unread
func (s *Store) SetUnread(id string, unread bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.messages[id]
	if !ok {
		return &MailboxError{Op: "mark", ID: id, Err: ErrNotFound}
	}
	m.Unread = unread
	return nil
}

// Len returns the number of stored messages across all folders
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.messages)
}

func (s *Store) move(op, id string, from, to Folder) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.messages[id]
	if !ok {
		return &MailboxError{Op: op, ID: id, Err: ErrNotFound}
	}
	if m.Folder != from {
		return &MailboxError{Op: op, ID: id, Err: ErrWrongFolder}
	}
	m.Folder = to
	s.logger.Debug("message moved", "op", op, "id", id, "to", to)
	return nil
}
