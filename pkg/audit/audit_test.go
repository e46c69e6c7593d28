package audit

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hymnly133/prizm/pkg/bus"
	"github.com/hymnly133/prizm/pkg/database"
)

func newTestLog(t *testing.T) (*Log, *bus.Bus) {
	t.Helper()
	db, err := database.NewClient(context.Background(), filepath.Join(t.TempDir(), "prizm.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	b := bus.New()
	t.Cleanup(b.ClearAll)
	return NewLog(db, b), b
}

func TestRecordsToolExecutions(t *testing.T) {
	log, b := newTestLog(t)
	ctx := context.Background()

	b.Emit(ctx, bus.EventToolExecuted, bus.ToolExecutedPayload{
		Scope: "online", SessionID: "sess-1", ToolName: "prizm_file_write",
		Arguments: `{"path":"a.txt"}`, Result: "File written: a.txt", DurationMs: 12,
	})
	b.Emit(ctx, bus.EventToolExecuted, bus.ToolExecutedPayload{
		Scope: "online", SessionID: "sess-1", ToolName: "prizm_exec",
		IsError: true, Result: "exec failed",
	})
	b.Emit(ctx, bus.EventToolExecuted, bus.ToolExecutedPayload{
		Scope: "other", SessionID: "sess-2", ToolName: "prizm_file_write",
	})

	entries, err := log.Recent(ctx, Query{Scope: "online", SessionID: "sess-1"})
	require.NoError(t, err)
	require.Len(t, entries, 2)

	byTool := map[string]*Entry{}
	for _, e := range entries {
		byTool[e.ToolName] = e
	}
	require.Contains(t, byTool, "prizm_file_write")
	assert.Equal(t, `{"path":"a.txt"}`, byTool["prizm_file_write"].Arguments)
	assert.Equal(t, int64(12), byTool["prizm_file_write"].DurationMs)
	require.Contains(t, byTool, "prizm_exec")
	assert.True(t, byTool["prizm_exec"].IsError)
}

func TestRecentFiltersByTool(t *testing.T) {
	log, b := newTestLog(t)
	ctx := context.Background()

	for _, tool := range []string{"prizm_exec", "prizm_exec", "prizm_todo_add"} {
		b.Emit(ctx, bus.EventToolExecuted, bus.ToolExecutedPayload{
			Scope: "online", SessionID: "sess-1", ToolName: tool,
		})
	}

	entries, err := log.Recent(ctx, Query{ToolName: "prizm_exec"})
	require.NoError(t, err)
	assert.Len(t, entries, 2)

	entries, err = log.Recent(ctx, Query{ToolName: "prizm_exec", Limit: 1})
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestIgnoresForeignPayloads(t *testing.T) {
	log, b := newTestLog(t)
	ctx := context.Background()

	b.Emit(ctx, bus.EventToolExecuted, "not a payload struct")

	entries, err := log.Recent(ctx, Query{})
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestPruneRemovesOldEntries(t *testing.T) {
	log, b := newTestLog(t)
	ctx := context.Background()

	b.Emit(ctx, bus.EventToolExecuted, bus.ToolExecutedPayload{
		Scope: "online", ToolName: "prizm_exec",
	})

	n, err := log.Prune(ctx, time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	n, err = log.Prune(ctx, -time.Minute)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}
