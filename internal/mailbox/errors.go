package mailbox

import (
	"errors"
	"fmt"
)

// Sentinel errors
var (
	ErrNotFound    = errors.New("not found")
	ErrWrongFolder = errors.New("message is not in the expected folder")
)

// MailboxError represents a failed mailbox operation
type MailboxError struct {
	Op  string // Operation: "archive", "delete", "restore", etc.
	ID  string // Optional: message ID
	Err error  // Underlying error
}

func (e *MailboxError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("mailbox %s [%s]: %v", e.Op, e.ID, e.Err)
	}
	return fmt.Sprintf("mailbox %s: %v", e.Op, e.Err)
}

func (e *MailboxError) Unwrap() error {
	return e.Err
}
