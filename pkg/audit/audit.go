// Package audit keeps an append-only record of tool executions. It feeds
// from tool:executed events so every caller (interactive chat, background
// sessions, workflows) is recorded without touching the tool path.
package audit

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/hymnly133/prizm/ent"
	"github.com/hymnly133/prizm/ent/auditentry"
	"github.com/hymnly133/prizm/pkg/bus"
	"github.com/hymnly133/prizm/pkg/database"
)

// Entry is one recorded tool execution.
type Entry struct {
	ID         string    `json:"id"`
	Scope      string    `json:"scope"`
	SessionID  string    `json:"sessionId,omitempty"`
	ToolName   string    `json:"toolName"`
	Arguments  string    `json:"arguments,omitempty"`
	Result     string    `json:"result,omitempty"`
	IsError    bool      `json:"isError,omitempty"`
	Action     string    `json:"action,omitempty"`
	DurationMs int64     `json:"durationMs,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Query filters a log listing. Zero values mean no filter.
type Query struct {
	Scope     string
	SessionID string
	ToolName  string
	Limit     int
}

// Log persists and serves audit entries.
type Log struct {
	db *database.Client
}

// NewLog wires the log and subscribes it to tool:executed.
func NewLog(db *database.Client, b *bus.Bus) *Log {
	l := &Log{db: db}
	b.Subscribe(bus.EventToolExecuted, l.record, "audit.record")
	return l
}

// record is the bus handler. Persistence failures are logged and swallowed
// so auditing never fails a tool call.
func (l *Log) record(ctx context.Context, payload any) error {
	p, ok := payload.(bus.ToolExecutedPayload)
	if !ok {
		return nil
	}
	_, err := l.db.AuditEntry.Create().
		SetID("audit-" + uuid.New().String()).
		SetScope(p.Scope).
		SetSessionID(p.SessionID).
		SetToolName(p.ToolName).
		SetArguments(p.Arguments).
		SetResult(p.Result).
		SetIsError(p.IsError).
		SetAction(p.Action).
		SetDurationMs(p.DurationMs).
		Save(ctx)
	if err != nil {
		slog.Error("Failed to persist audit entry",
			"tool", p.ToolName, "scope", p.Scope, "error", err)
	}
	return nil
}

// Recent returns matching entries, newest first. A non-positive limit
// returns up to 100 rows.
func (l *Log) Recent(ctx context.Context, q Query) ([]*Entry, error) {
	query := l.db.AuditEntry.Query()
	if q.Scope != "" {
		query = query.Where(auditentry.ScopeEQ(q.Scope))
	}
	if q.SessionID != "" {
		query = query.Where(auditentry.SessionIDEQ(q.SessionID))
	}
	if q.ToolName != "" {
		query = query.Where(auditentry.ToolNameEQ(q.ToolName))
	}
	limit := q.Limit
	if limit <= 0 {
		limit = 100
	}
	rows, err := query.Order(ent.Desc(auditentry.FieldCreatedAt)).Limit(limit).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("querying audit log: %w", err)
	}
	out := make([]*Entry, 0, len(rows))
	for _, row := range rows {
		out = append(out, &Entry{
			ID:         row.ID,
			Scope:      row.Scope,
			SessionID:  row.SessionID,
			ToolName:   row.ToolName,
			Arguments:  row.Arguments,
			Result:     row.Result,
			IsError:    row.IsError,
			Action:     row.Action,
			DurationMs: row.DurationMs,
			CreatedAt:  row.CreatedAt,
		})
	}
	return out, nil
}

// Prune deletes entries older than the retention window.
func (l *Log) Prune(ctx context.Context, retention time.Duration) (int, error) {
	n, err := l.db.AuditEntry.Delete().
		Where(auditentry.CreatedAtLT(time.Now().Add(-retention))).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("pruning audit log: %w", err)
	}
	return n, nil
}
