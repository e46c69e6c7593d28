package memory

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/philippgille/chromem-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hymnly133/prizm/ent/deduplog"
	"github.com/hymnly133/prizm/ent/memoryentry"
	"github.com/hymnly133/prizm/pkg/database"
)

type scriptedJudge struct {
	verdict string
	calls   int
}

func (j *scriptedJudge) Compare(ctx context.Context, newContent, keptContent string) (string, error) {
	j.calls++
	return j.verdict, nil
}

func newTestWriter(t *testing.T, judge Judge) (*Writer, *database.Client) {
	t.Helper()
	db, err := database.NewClient(context.Background(), filepath.Join(t.TempDir(), "prizm.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	w := NewWriter(db, chromem.NewDB(), NewDeterministicEmbedder(64), judge, 0.25)
	return w, db
}

func TestProcessMemCellInsertsAndRoutes(t *testing.T) {
	w, db := newTestWriter(t, nil)
	ctx := context.Background()

	result, err := w.ProcessMemCell(ctx, MemCell{Memories: []ExtractedMemory{
		{Layer: LayerProfile, Content: "prefers dark mode"},
		{Layer: LayerEpisodic, Content: "debugged the build today"},
		{Layer: LayerEventLog, Content: "tool prizm_exec ran"},
		{Layer: LayerDocument, Content: "doc about deployment"},
	}}, Routing{UserID: "user1", Scope: "online", SessionID: "sess-1"})
	require.NoError(t, err)
	require.Len(t, result.Created, 4)
	assert.Empty(t, result.DedupLogs)

	profile, err := db.MemoryEntry.Query().
		Where(memoryentry.LayerEQ(memoryentry.LayerProfile)).Only(ctx)
	require.NoError(t, err)
	assert.Nil(t, profile.GroupID)

	episodic, err := db.MemoryEntry.Query().
		Where(memoryentry.LayerEQ(memoryentry.LayerEpisodic)).Only(ctx)
	require.NoError(t, err)
	require.NotNil(t, episodic.GroupID)
	assert.Equal(t, "online", *episodic.GroupID)

	eventLog, err := db.MemoryEntry.Query().
		Where(memoryentry.LayerEQ(memoryentry.LayerEventLog)).Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, "online:session:sess-1", *eventLog.GroupID)

	doc, err := db.MemoryEntry.Query().
		Where(memoryentry.LayerEQ(memoryentry.LayerDocument)).Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, "online:docs", *doc.GroupID)
}

func TestDedupSuppressesWithJudgeSame(t *testing.T) {
	judge := &scriptedJudge{verdict: "SAME both describe the user's preferred nickname"}
	w, db := newTestWriter(t, judge)
	ctx := context.Background()
	routing := Routing{UserID: "user1", Scope: "online", SessionID: "sess-1"}

	first, err := w.ProcessMemCell(ctx, MemCell{Memories: []ExtractedMemory{
		{Layer: LayerEpisodic, Content: "user wants nickname boss"},
	}}, routing)
	require.NoError(t, err)
	require.Len(t, first.Created, 1)
	keptID := first.Created[0]

	// identical content embeds identically, distance 0
	second, err := w.ProcessMemCell(ctx, MemCell{Memories: []ExtractedMemory{
		{Layer: LayerEpisodic, Content: "user wants nickname boss"},
	}}, routing)
	require.NoError(t, err)
	assert.Empty(t, second.Created)
	require.Len(t, second.DedupLogs, 1)
	assert.Equal(t, 1, judge.calls)

	n, err := db.MemoryEntry.Query().
		Where(memoryentry.LayerEQ(memoryentry.LayerEpisodic)).Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	logRow, err := db.DedupLog.Get(ctx, second.DedupLogs[0])
	require.NoError(t, err)
	assert.Equal(t, keptID, logRow.KeptMemoryID)
	assert.Contains(t, logRow.LlmReasoning, "SAME")
	assert.False(t, logRow.RolledBack)
}

func TestDedupJudgeDifferentInserts(t *testing.T) {
	judge := &scriptedJudge{verdict: "DIFFERENT the second adds a new constraint"}
	w, _ := newTestWriter(t, judge)
	ctx := context.Background()
	routing := Routing{UserID: "user1", Scope: "online"}

	_, err := w.ProcessMemCell(ctx, MemCell{Memories: []ExtractedMemory{
		{Layer: LayerEpisodic, Content: "user wants nickname boss"},
	}}, routing)
	require.NoError(t, err)

	second, err := w.ProcessMemCell(ctx, MemCell{Memories: []ExtractedMemory{
		{Layer: LayerEpisodic, Content: "user wants nickname boss"},
	}}, routing)
	require.NoError(t, err)
	assert.Len(t, second.Created, 1)
	assert.Empty(t, second.DedupLogs)
}

func TestVectorOnlyFallbackWithoutJudge(t *testing.T) {
	w, _ := newTestWriter(t, nil)
	ctx := context.Background()
	routing := Routing{UserID: "user1", Scope: "online"}

	_, err := w.ProcessMemCell(ctx, MemCell{Memories: []ExtractedMemory{
		{Layer: LayerForesight, Content: "deploy freeze next friday"},
	}}, routing)
	require.NoError(t, err)

	second, err := w.ProcessMemCell(ctx, MemCell{Memories: []ExtractedMemory{
		{Layer: LayerForesight, Content: "deploy freeze next friday"},
	}}, routing)
	require.NoError(t, err)
	assert.Empty(t, second.Created)
	require.Len(t, second.DedupLogs, 1)
}

func TestEventLogNeverDeduped(t *testing.T) {
	w, db := newTestWriter(t, nil)
	ctx := context.Background()
	routing := Routing{UserID: "user1", Scope: "online", SessionID: "sess-1"}

	for i := 0; i < 2; i++ {
		result, err := w.ProcessMemCell(ctx, MemCell{Memories: []ExtractedMemory{
			{Layer: LayerEventLog, Content: "same event text"},
		}}, routing)
		require.NoError(t, err)
		assert.Len(t, result.Created, 1)
	}

	n, err := db.MemoryEntry.Query().
		Where(memoryentry.LayerEQ(memoryentry.LayerEventLog)).Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestUndoDedupIdempotent(t *testing.T) {
	w, db := newTestWriter(t, nil)
	ctx := context.Background()
	routing := Routing{UserID: "user1", Scope: "online"}

	_, err := w.ProcessMemCell(ctx, MemCell{Memories: []ExtractedMemory{
		{Layer: LayerEpisodic, Content: "duplicate fact"},
	}}, routing)
	require.NoError(t, err)
	second, err := w.ProcessMemCell(ctx, MemCell{Memories: []ExtractedMemory{
		{Layer: LayerEpisodic, Content: "duplicate fact"},
	}}, routing)
	require.NoError(t, err)
	require.Len(t, second.DedupLogs, 1)
	logID := second.DedupLogs[0]

	restored, err := w.UndoDedup(ctx, logID)
	require.NoError(t, err)
	require.NotEmpty(t, restored)

	n, err := db.MemoryEntry.Query().
		Where(memoryentry.LayerEQ(memoryentry.LayerEpisodic)).Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	logRow, err := db.DedupLog.Query().Where(deduplog.IDEQ(logID)).Only(ctx)
	require.NoError(t, err)
	assert.True(t, logRow.RolledBack)

	// second undo is a no-op
	again, err := w.UndoDedup(ctx, logID)
	require.NoError(t, err)
	assert.Empty(t, again)
	n, err = db.MemoryEntry.Query().
		Where(memoryentry.LayerEQ(memoryentry.LayerEpisodic)).Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestDeleteByGroup(t *testing.T) {
	w, _ := newTestWriter(t, nil)
	ctx := context.Background()

	_, err := w.ProcessMemCell(ctx, MemCell{Memories: []ExtractedMemory{
		{Layer: LayerEventLog, Content: "a"},
		{Layer: LayerEventLog, Content: "b"},
	}}, Routing{Scope: "online", SessionID: "sess-1"})
	require.NoError(t, err)
	_, err = w.ProcessMemCell(ctx, MemCell{Memories: []ExtractedMemory{
		{Layer: LayerEventLog, Content: "c"},
	}}, Routing{Scope: "online", SessionID: "sess-2"})
	require.NoError(t, err)

	assert.Equal(t, 2, w.DeleteMemoriesByGroupID(ctx, "online:session:sess-1"))
	assert.Equal(t, 1, w.DeleteMemoriesByGroupPrefix(ctx, "online:session:"))
	assert.Equal(t, 0, w.DeleteMemoriesByGroupID(ctx, "online:session:sess-1"))
}

func TestDeleteMemoryAndSearch(t *testing.T) {
	w, _ := newTestWriter(t, nil)
	ctx := context.Background()
	routing := Routing{UserID: "user1", Scope: "online"}

	result, err := w.ProcessMemCell(ctx, MemCell{Memories: []ExtractedMemory{
		{Layer: LayerEpisodic, Content: "the deploy pipeline uses blue green"},
	}}, routing)
	require.NoError(t, err)

	group := "online"
	hits, err := w.Search(ctx, LayerEpisodic, &group, "deploy pipeline", 3)
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, result.Created[0], hits[0].ID)

	require.NoError(t, w.DeleteMemory(ctx, result.Created[0]))
	hits, err = w.Search(ctx, LayerEpisodic, &group, "deploy pipeline", 3)
	require.NoError(t, err)
	assert.Empty(t, hits)

	// deleting a missing id is a no-op
	require.NoError(t, w.DeleteMemory(ctx, "mem-missing"))
}
