// Package memory implements the semantic memory writer: routed inserts
// into layered memory collections with vector-based deduplication, a
// dedup audit log, and rollback support for the chat runtime.
package memory

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/philippgille/chromem-go"

	"github.com/hymnly133/prizm/ent"
	"github.com/hymnly133/prizm/ent/deduplog"
	"github.com/hymnly133/prizm/ent/memoryentry"
	"github.com/hymnly133/prizm/pkg/database"
)

// Memory layers. These mirror the memory_entries.layer enum.
const (
	LayerProfile   = "profile"
	LayerEpisodic  = "episodic"
	LayerForesight = "foresight"
	LayerEventLog  = "event_log"
	LayerDocument  = "document"
)

// ExtractedMemory is one memory produced by an extraction pass.
type ExtractedMemory struct {
	Layer    string
	Content  string
	Metadata map[string]any
}

// MemCell is a batch of extracted memories from one source (a chat round,
// a document, a session summary).
type MemCell struct {
	Memories []ExtractedMemory
}

// Routing carries the identifiers that decide which group a memory lands in.
type Routing struct {
	UserID    string
	Scope     string
	SessionID string
}

// ProcessResult reports what ProcessMemCell did.
type ProcessResult struct {
	Created   []string // memory ids inserted
	DedupLogs []string // dedup log ids for suppressed inserts
}

// Judge decides whether two memory contents describe the same fact. The
// returned reasoning starts with SAME or DIFFERENT.
type Judge interface {
	Compare(ctx context.Context, newContent, keptContent string) (string, error)
}

// Writer routes extracted memories into per-layer vector collections plus
// relational rows, deduplicating non-event-log inserts.
type Writer struct {
	db        *database.Client
	vec       *chromem.DB
	embed     chromem.EmbeddingFunc
	judge     Judge // nil means vector-only dedup
	threshold float32
	now       func() time.Time
}

// NewWriter builds a memory writer. threshold is the maximum vector
// distance (1 - cosine similarity) at which two memories are dedup
// candidates.
func NewWriter(db *database.Client, vec *chromem.DB, embed chromem.EmbeddingFunc, judge Judge, threshold float32) *Writer {
	return &Writer{
		db:        db,
		vec:       vec,
		embed:     embed,
		judge:     judge,
		threshold: threshold,
		now:       time.Now,
	}
}

// groupFor applies the routing rules: profile memories are global (nil
// group), episodic and foresight are scope-wide, event logs are
// per-session, document memories share the scope docs group.
func groupFor(layer string, r Routing) *string {
	switch layer {
	case LayerProfile:
		return nil
	case LayerEventLog:
		g := r.Scope + ":session:" + r.SessionID
		return &g
	case LayerDocument:
		g := r.Scope + ":docs"
		return &g
	default:
		g := r.Scope
		return &g
	}
}

func (w *Writer) collection(layer string) (*chromem.Collection, error) {
	return w.vec.GetOrCreateCollection("memories-"+layer, nil, w.embed)
}

// ProcessMemCell routes and inserts every memory in the cell. Non-event-log
// memories are deduplicated first: if the nearest existing memory in the
// same group is within the distance threshold and the judge (or the
// vector-only fallback) agrees, the insert is suppressed, a dedup log row
// is appended, and the kept row's timestamp is refreshed. Suppressed
// memories never appear in Created.
func (w *Writer) ProcessMemCell(ctx context.Context, cell MemCell, routing Routing) (*ProcessResult, error) {
	result := &ProcessResult{}
	for _, mem := range cell.Memories {
		if mem.Content == "" {
			continue
		}
		group := groupFor(mem.Layer, routing)

		if mem.Layer != LayerEventLog {
			logID, deduped, err := w.dedupCheck(ctx, mem, group, routing)
			if err != nil {
				slog.Warn("Memory dedup check failed, inserting anyway", "layer", mem.Layer, "error", err)
			} else if deduped {
				result.DedupLogs = append(result.DedupLogs, logID)
				continue
			}
		}

		id, err := w.insert(ctx, mem.Layer, mem.Content, mem.Metadata, group, routing.UserID)
		if err != nil {
			return result, err
		}
		result.Created = append(result.Created, id)
	}
	return result, nil
}

// dedupCheck returns (logID, true) when the memory was suppressed.
func (w *Writer) dedupCheck(ctx context.Context, mem ExtractedMemory, group *string, routing Routing) (string, bool, error) {
	col, err := w.collection(mem.Layer)
	if err != nil {
		return "", false, err
	}
	if col.Count() == 0 {
		return "", false, nil
	}
	where := map[string]string{"group_id": groupString(group)}
	hits, err := col.Query(ctx, mem.Content, 1, where, nil)
	if err != nil || len(hits) == 0 {
		return "", false, err
	}
	nearest := hits[0]
	distance := 1 - nearest.Similarity
	if distance > w.threshold {
		return "", false, nil
	}

	reasoning := "vector-only distance match"
	if w.judge != nil {
		verdict, err := w.judge.Compare(ctx, mem.Content, nearest.Content)
		if err != nil {
			return "", false, err
		}
		if !strings.HasPrefix(verdict, "SAME") {
			return "", false, nil
		}
		reasoning = verdict
	}

	logID := "dl-" + uuid.New().String()
	create := w.db.DedupLog.Create().
		SetID(logID).
		SetKeptMemoryID(nearest.ID).
		SetNewMemoryContent(mem.Content).
		SetNewMemoryType(mem.Layer).
		SetKeptMemoryContent(nearest.Content).
		SetVectorDistance(float64(distance)).
		SetLlmReasoning(reasoning).
		SetUserID(routing.UserID)
	if mem.Metadata != nil {
		create.SetNewMemoryMetadata(mem.Metadata)
	}
	if group != nil {
		create.SetGroupID(*group)
	}
	if _, err := create.Save(ctx); err != nil {
		return "", false, fmt.Errorf("writing dedup log: %w", err)
	}

	// Touch the kept row so recency ranking favors it.
	err = w.db.MemoryEntry.UpdateOneID(nearest.ID).
		SetUpdatedAt(w.now()).
		Exec(ctx)
	if err != nil && !ent.IsNotFound(err) {
		slog.Warn("Failed to touch kept memory row", "memory", nearest.ID, "error", err)
	}

	slog.Debug("Memory insert suppressed by dedup",
		"layer", mem.Layer, "kept", nearest.ID, "distance", distance)
	return logID, true, nil
}

func (w *Writer) insert(ctx context.Context, layer, content string, metadata map[string]any, group *string, userID string) (string, error) {
	id := "mem-" + uuid.New().String()
	create := w.db.MemoryEntry.Create().
		SetID(id).
		SetLayer(memoryentry.Layer(layer)).
		SetContent(content).
		SetUserID(userID)
	if metadata != nil {
		create.SetMetadata(metadata)
	}
	if group != nil {
		create.SetGroupID(*group)
	}
	if _, err := create.Save(ctx); err != nil {
		return "", fmt.Errorf("inserting memory row: %w", err)
	}

	col, err := w.collection(layer)
	if err != nil {
		return "", err
	}
	err = col.AddDocument(ctx, chromem.Document{
		ID:      id,
		Content: content,
		Metadata: map[string]string{
			"group_id": groupString(group),
			"user_id":  userID,
			"layer":    layer,
		},
	})
	if err != nil {
		return "", fmt.Errorf("inserting memory vector: %w", err)
	}
	return id, nil
}

// UndoDedup re-inserts the memory a dedup log row suppressed and marks the
// row rolled back. A second call on the same row returns ("", nil):
// idempotent against already-rolled-back rows.
func (w *Writer) UndoDedup(ctx context.Context, logID string) (string, error) {
	row, err := w.db.DedupLog.Query().Where(deduplog.IDEQ(logID)).Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return "", fmt.Errorf("dedup log %s not found", logID)
		}
		return "", err
	}
	if row.RolledBack {
		return "", nil
	}

	id, err := w.insert(ctx, row.NewMemoryType, row.NewMemoryContent, row.NewMemoryMetadata, row.GroupID, row.UserID)
	if err != nil {
		return "", err
	}
	err = w.db.DedupLog.UpdateOneID(logID).SetRolledBack(true).Exec(ctx)
	if err != nil {
		return "", fmt.Errorf("marking dedup log rolled back: %w", err)
	}
	return id, nil
}

// DeleteMemoriesByGroupID removes every memory in a group. A query failure
// deletes nothing and returns 0.
func (w *Writer) DeleteMemoriesByGroupID(ctx context.Context, groupID string) int {
	rows, err := w.db.MemoryEntry.Query().
		Where(memoryentry.GroupIDEQ(groupID)).
		All(ctx)
	if err != nil {
		slog.Warn("Memory group query failed, deleting nothing", "group", groupID, "error", err)
		return 0
	}
	return w.deleteRows(ctx, rows)
}

// DeleteMemoriesByGroupPrefix removes every memory whose group id starts
// with the prefix. A query failure deletes nothing and returns 0.
func (w *Writer) DeleteMemoriesByGroupPrefix(ctx context.Context, prefix string) int {
	rows, err := w.db.MemoryEntry.Query().
		Where(memoryentry.GroupIDHasPrefix(prefix)).
		All(ctx)
	if err != nil {
		slog.Warn("Memory prefix query failed, deleting nothing", "prefix", prefix, "error", err)
		return 0
	}
	return w.deleteRows(ctx, rows)
}

// DeleteMemory removes one memory row and its vector. Used by session
// rollback against memoryRefs.created ids.
func (w *Writer) DeleteMemory(ctx context.Context, id string) error {
	row, err := w.db.MemoryEntry.Query().Where(memoryentry.IDEQ(id)).Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil
		}
		return err
	}
	if err := w.db.MemoryEntry.DeleteOneID(id).Exec(ctx); err != nil {
		return err
	}
	w.deleteVector(ctx, string(row.Layer), id)
	return nil
}

func (w *Writer) deleteRows(ctx context.Context, rows []*ent.MemoryEntry) int {
	n := 0
	for _, row := range rows {
		if err := w.db.MemoryEntry.DeleteOneID(row.ID).Exec(ctx); err != nil {
			slog.Warn("Failed to delete memory row", "memory", row.ID, "error", err)
			continue
		}
		w.deleteVector(ctx, string(row.Layer), row.ID)
		n++
	}
	return n
}

func (w *Writer) deleteVector(ctx context.Context, layer, id string) {
	col, err := w.collection(layer)
	if err != nil {
		return
	}
	if err := col.Delete(ctx, nil, nil, id); err != nil {
		slog.Warn("Failed to delete memory vector", "memory", id, "error", err)
	}
}

// Hit is one memory returned by a search.
type Hit struct {
	ID       string
	Content  string
	Distance float32
}

// Search returns up to k memories of a layer and group nearest to the
// query text, nearest first.
func (w *Writer) Search(ctx context.Context, layer string, group *string, query string, k int) ([]Hit, error) {
	col, err := w.collection(layer)
	if err != nil {
		return nil, err
	}
	if col.Count() == 0 {
		return nil, nil
	}
	if k > col.Count() {
		k = col.Count()
	}
	where := map[string]string{"group_id": groupString(group)}
	results, err := col.Query(ctx, query, k, where, nil)
	if err != nil {
		return nil, err
	}
	hits := make([]Hit, 0, len(results))
	for _, r := range results {
		hits = append(hits, Hit{ID: r.ID, Content: r.Content, Distance: 1 - r.Similarity})
	}
	return hits, nil
}

// ListProfileMemories returns every profile memory for a user, newest
// update first.
func (w *Writer) ListProfileMemories(ctx context.Context, userID string) ([]*ent.MemoryEntry, error) {
	return w.db.MemoryEntry.Query().
		Where(memoryentry.LayerEQ(memoryentry.LayerProfile), memoryentry.UserIDEQ(userID)).
		Order(ent.Desc(memoryentry.FieldUpdatedAt)).
		All(ctx)
}

func groupString(group *string) string {
	if group == nil {
		return ""
	}
	return *group
}
