package scope

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hymnly133/prizm/pkg/bus"
	"github.com/hymnly133/prizm/pkg/models"
)

func newTestStore(t *testing.T) (*Store, *bus.Bus) {
	t.Helper()
	b := bus.New()
	return NewStore(t.TempDir(), b), b
}

func TestCreateAndGetSession(t *testing.T) {
	s, b := newTestStore(t)
	ctx := context.Background()

	var created []bus.SessionPayload
	b.Subscribe(bus.EventSessionCreated, func(ctx context.Context, payload any) error {
		created = append(created, payload.(bus.SessionPayload))
		return nil
	}, "test")

	sess, err := s.CreateSession(ctx, "online", CreateSessionInput{Title: "hello"})
	require.NoError(t, err)
	assert.Equal(t, models.SessionKindInteractive, sess.Kind)

	got, err := s.GetSession("online", sess.ID)
	require.NoError(t, err)
	assert.Equal(t, "hello", got.Title)

	require.Len(t, created, 1)
	assert.Equal(t, sess.ID, created[0].SessionID)
}

func TestGetSessionNotFound(t *testing.T) {
	s, _ := newTestStore(t)
	_, err := s.GetSession("online", "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSessionSurvivesReload(t *testing.T) {
	b := bus.New()
	dir := t.TempDir()
	s := NewStore(dir, b)
	ctx := context.Background()

	sess, err := s.CreateSession(ctx, "online", CreateSessionInput{})
	require.NoError(t, err)
	require.NoError(t, s.AppendMessage(ctx, "online", sess.ID, &models.AgentMessage{
		ID: "m0", Role: models.RoleUser, CreatedAt: time.Now(),
	}))

	// fresh store over the same directory
	s2 := NewStore(dir, bus.New())
	got, err := s2.GetSession("online", sess.ID)
	require.NoError(t, err)
	require.Len(t, got.Messages, 1)
	assert.Equal(t, "m0", got.Messages[0].ID)
}

func TestInconsistentSessionRejectedAtLoad(t *testing.T) {
	dir := t.TempDir()
	// background kind without bgMeta violates the session shape invariant
	bad := models.AgentSession{
		ID: "sess-bad", Scope: "online", Kind: models.SessionKindBackground,
		Messages: []*models.AgentMessage{}, StartedAt: time.Now(),
	}
	data, err := json.Marshal(&bad)
	require.NoError(t, err)
	sessDir := filepath.Join(dir, "online", ".prizm", "sessions")
	require.NoError(t, os.MkdirAll(sessDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(sessDir, "sess-bad.json"), data, 0o644))

	s := NewStore(dir, bus.New())
	_, err = s.GetSession("online", "sess-bad")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteSessionEmitsEvent(t *testing.T) {
	s, b := newTestStore(t)
	ctx := context.Background()

	sess, err := s.CreateSession(ctx, "online", CreateSessionInput{})
	require.NoError(t, err)

	var deleted []bus.SessionPayload
	b.Subscribe(bus.EventSessionDeleted, func(ctx context.Context, payload any) error {
		deleted = append(deleted, payload.(bus.SessionPayload))
		return nil
	}, "test")

	require.NoError(t, s.DeleteSession(ctx, "online", sess.ID))
	_, err = s.GetSession("online", sess.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	require.Len(t, deleted, 1)

	// idempotent, no second event
	require.NoError(t, s.DeleteSession(ctx, "online", sess.ID))
	assert.Len(t, deleted, 1)
}

func TestTruncateMessagesClampsAndDropsCheckpoints(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	sess, err := s.CreateSession(ctx, "online", CreateSessionInput{})
	require.NoError(t, err)
	for i := 0; i < 6; i++ {
		role := models.RoleUser
		if i%2 == 1 {
			role = models.RoleAssistant
		}
		require.NoError(t, s.AppendMessage(ctx, "online", sess.ID, &models.AgentMessage{
			ID: "m" + string(rune('0'+i)), Role: role, CreatedAt: time.Now(),
		}))
	}
	_, err = s.UpdateSession(ctx, "online", sess.ID, func(sess *models.AgentSession) error {
		sess.Checkpoints = []*models.Checkpoint{
			{ID: "cp-0", SessionID: sess.ID, MessageIndex: 0},
			{ID: "cp-2", SessionID: sess.ID, MessageIndex: 2},
			{ID: "cp-4", SessionID: sess.ID, MessageIndex: 4},
		}
		return nil
	})
	require.NoError(t, err)

	got, err := s.TruncateMessages(ctx, "online", sess.ID, 2)
	require.NoError(t, err)
	assert.Len(t, got.Messages, 2)
	require.Len(t, got.Checkpoints, 1)
	assert.Equal(t, "cp-0", got.Checkpoints[0].ID)

	// clamping: far past the end is a no-op, negative empties
	got, err = s.TruncateMessages(ctx, "online", sess.ID, 99)
	require.NoError(t, err)
	assert.Len(t, got.Messages, 2)
	got, err = s.TruncateMessages(ctx, "online", sess.ID, -1)
	require.NoError(t, err)
	assert.Empty(t, got.Messages)
}

func TestGetSessionReturnsCopy(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	sess, err := s.CreateSession(ctx, "online", CreateSessionInput{Title: "orig"})
	require.NoError(t, err)

	got, err := s.GetSession("online", sess.ID)
	require.NoError(t, err)
	got.Title = "mutated"

	again, err := s.GetSession("online", sess.ID)
	require.NoError(t, err)
	assert.Equal(t, "orig", again.Title)
}

func TestDocumentLifecycle(t *testing.T) {
	s, b := newTestStore(t)
	ctx := context.Background()

	var events []string
	for _, name := range []string{bus.EventDocumentSaved, bus.EventDocumentDeleted} {
		event := name
		b.Subscribe(event, func(ctx context.Context, payload any) error {
			events = append(events, event)
			return nil
		}, "test")
	}

	doc, err := s.CreateDocument(ctx, "online", "Notes", "# hi\n", "sess-1", []string{"a"})
	require.NoError(t, err)

	got, err := s.GetDocument("online", doc.ID)
	require.NoError(t, err)
	assert.Equal(t, "Notes", got.Title)
	assert.Equal(t, "# hi\n", got.Content)
	assert.Equal(t, "sess-1", got.SessionID)

	_, err = s.UpdateDocument(ctx, "online", doc.ID, func(d *Document) error {
		d.Content = "# changed\n"
		return nil
	})
	require.NoError(t, err)

	require.NoError(t, s.DeleteDocument(ctx, "online", doc.ID))
	_, err = s.GetDocument("online", doc.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.Equal(t, []string{bus.EventDocumentSaved, bus.EventDocumentSaved, bus.EventDocumentDeleted}, events)
}

func TestTodoListMutations(t *testing.T) {
	s, b := newTestStore(t)
	ctx := context.Background()

	var mutations []string
	b.Subscribe(bus.EventTodoMutated, func(ctx context.Context, payload any) error {
		mutations = append(mutations, payload.(bus.MutationPayload).Mutation)
		return nil
	}, "test")

	list, err := s.CreateTodoList(ctx, "online", "Groceries", "sess-1")
	require.NoError(t, err)

	list, err = s.AddTodoItem(ctx, "online", list.ID, "milk", "sess-1")
	require.NoError(t, err)
	require.Len(t, list.Items, 1)

	list, err = s.CompleteTodoItem(ctx, "online", list.ID, list.Items[0].ID, "sess-1")
	require.NoError(t, err)
	assert.True(t, list.Items[0].Done)

	assert.Equal(t, []string{"created", "item_added", "item_completed"}, mutations)
}

func TestClipboard(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	_, err := s.AddClipboardEntry(ctx, "online", "snippet", "hello", "sess-1")
	require.NoError(t, err)

	entries, err := s.ListClipboardEntries("online")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "hello", entries[0].Content)

	require.NoError(t, s.DeleteClipboardEntry(ctx, "online", entries[0].ID, "sess-1"))
	entries, err = s.ListClipboardEntries("online")
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestWorkspaceFileOps(t *testing.T) {
	s, b := newTestStore(t)
	ctx := context.Background()

	var ops []bus.FileOperationPayload
	b.Subscribe(bus.EventFileOperation, func(ctx context.Context, payload any) error {
		ops = append(ops, payload.(bus.FileOperationPayload))
		return nil
	}, "test")

	require.NoError(t, s.WriteWorkspaceFile(ctx, "online", "notes/a.txt", "hi", "sess-1"))
	content, err := s.ReadWorkspaceFile("online", "notes/a.txt")
	require.NoError(t, err)
	require.NotNil(t, content)
	assert.Equal(t, "hi", *content)

	require.NoError(t, s.MoveWorkspaceFile(ctx, "online", "notes/a.txt", "notes/b.txt", "sess-1"))
	require.NoError(t, s.DeleteWorkspaceFile(ctx, "online", "notes/b.txt", "sess-1"))

	missing, err := s.ReadWorkspaceFile("online", "notes/b.txt")
	require.NoError(t, err)
	assert.Nil(t, missing)

	require.Len(t, ops, 3)
	assert.Equal(t, "write", ops[0].Operation)
	assert.Equal(t, "move", ops[1].Operation)
	assert.Equal(t, "delete", ops[2].Operation)
}

func TestWorkspacePathEscapesRejected(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	err := s.WriteWorkspaceFile(ctx, "online", "../outside.txt", "x", "")
	// cleaned to /outside.txt inside the root, so this must succeed
	require.NoError(t, err)

	err = s.WriteWorkspaceFile(ctx, "online", ".prizm/sessions/evil.json", "x", "")
	assert.True(t, IsValidationError(err))
}

func TestRestoreWorkspaceFile(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.WriteWorkspaceFile(ctx, "online", "a.txt", "after", "sess-1"))
	require.NoError(t, s.RestoreWorkspaceFile("online", "a.txt", "before"))
	content, err := s.ReadWorkspaceFile("online", "a.txt")
	require.NoError(t, err)
	assert.Equal(t, "before", *content)

	// empty pre-image means the file did not exist before the turn
	require.NoError(t, s.RestoreWorkspaceFile("online", "a.txt", ""))
	missing, err := s.ReadWorkspaceFile("online", "a.txt")
	require.NoError(t, err)
	assert.Nil(t, missing)
}
