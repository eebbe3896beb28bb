package mailbox

import (
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestStore(t *testing.T) (*Store, []Message) {
	t.Helper()
	seeded := Seed(time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC))
	return NewStore(seeded, quietLogger()), seeded
}

func TestSeed(t *testing.T) {
	now := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)
	messages := Seed(now)

	require.NotEmpty(t, messages)
	ids := make(map[string]bool)
	for _, m := range messages {
		assert.Equal(t, FolderInbox, m.Folder)
		assert.True(t, m.Received.Before(now))
		assert.False(t, ids[m.ID], "duplicate id %s", m.ID)
		ids[m.ID] = true
	}
}

func TestStore_ListNewestFirst(t *testing.T) {
	s, seeded := newTestStore(t)

	inbox := s.List(FolderInbox)

	require.Len(t, inbox, len(seeded))
	for i := 1; i < len(inbox); i++ {
		assert.False(t, inbox[i].Received.After(inbox[i-1].Received))
	}
	assert.Empty(t, s.List(FolderArchive))
}

func TestStore_ArchiveAndRestore(t *testing.T) {
	s, seeded := newTestStore(t)
	id := seeded[0].ID

	require.NoError(t, s.Archive(id))
	assert.Len(t, s.List(FolderInbox), len(seeded)-1)
	assert.Len(t, s.List(FolderArchive), 1)

	require.NoError(t, s.Restore(id))
	m, err := s.Get(id)
	require.NoError(t, err)
	assert.Equal(t, FolderInbox, m.Folder)
}

func TestStore_DeleteAndPurge(t *testing.T) {
	s, seeded := newTestStore(t)
	id := seeded[1].ID

	require.NoError(t, s.Delete(id))
	assert.Len(t, s.List(FolderTrash), 1)

	require.NoError(t, s.Purge(id))
	assert.Equal(t, len(seeded)-1, s.Len())

	_, err := s.Get(id)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestStore_Errors(t *testing.T) {
	s, seeded := newTestStore(t)
	inboxID := seeded[0].ID

	tests := []struct {
		name    string
		op      func() error
		wantErr error
		wantOp  string
	}{
		{"archive unknown", func() error { return s.Archive("nope") }, ErrNotFound, "archive"},
		{"delete unknown", func() error { return s.Delete("nope") }, ErrNotFound, "delete"},
		{"restore inbox", func() error { return s.Restore(inboxID) }, ErrWrongFolder, "restore"},
		{"purge inbox", func() error { return s.Purge(inboxID) }, ErrWrongFolder, "purge"},
		{"mark unknown", func() error { return s.SetUnread("nope", true) }, ErrNotFound, "mark"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.op()
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)

			var mbErr *MailboxError
			require.ErrorAs(t, err, &mbErr)
			assert.Equal(t, tt.wantOp, mbErr.Op)
		})
	}
}

func TestStore_ArchiveTwice(t *testing.T) {
	s, seeded := newTestStore(t)
	id := seeded[0].ID

	require.NoError(t, s.Archive(id))
	assert.ErrorIs(t, s.Archive(id), ErrWrongFolder)
}

func TestStore_SetUnread(t *testing.T) {
	s, seeded := newTestStore(t)
	id := seeded[0].ID

	require.NoError(t, s.SetUnread(id, false))
	m, _ := s.Get(id)
	assert.False(t, m.Unread)

	require.NoError(t, s.SetUnread(id, true))
	m, _ = s.Get(id)
	assert.True(t, m.Unread)
}

func TestStore_GetReturnsCopy(t *testing.T) {
	s, seeded := newTestStore(t)
	id := seeded[0].ID

	m, err := s.Get(id)
	require.NoError(t, err)
	m.Subject = "changed"

	again, _ := s.Get(id)
	assert.Equal(t, seeded[0].Subject, again.Subject)
}

func TestMailboxError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  MailboxError
		want string
	}{
		{
			name: "with id",
			err:  MailboxError{Op: "archive", ID: "m-1", Err: ErrNotFound},
			want: "mailbox archive [m-1]: not found",
		},
		{
			name: "without id",
			err:  MailboxError{Op: "list", Err: errors.New("closed")},
			want: "mailbox list: closed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestStore_EmptyTrash(t *testing.T) {
	s, seeded := newTestStore(t)
	require.NoError(t, s.Delete(seeded[0].ID))
	require.NoError(t, s.Delete(seeded[1].ID))
	require.NoError(t, s.Archive(seeded[2].ID))

	assert.Equal(t, 2, s.EmptyTrash())
	assert.Equal(t, len(seeded)-2, s.Len())
	assert.Len(t, s.List(FolderArchive), 1)
	assert.Equal(t, 0, s.EmptyTrash())
}
