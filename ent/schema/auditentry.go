package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AuditEntry holds the schema definition for the AuditEntry entity.
// Append-only record of tool executions, fed from the event bus.
type AuditEntry struct {
	ent.Schema
}

// Fields of the AuditEntry.
func (AuditEntry) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("audit_id").
			Unique().
			Immutable(),
		field.String("scope"),
		field.String("session_id").
			Optional(),
		field.String("tool_name"),
		field.Text("arguments").
			Optional(),
		field.Text("result").
			Optional(),
		field.Bool("is_error").
			Default(false),
		field.String("action").
			Optional().
			Comment("Auxiliary semantics such as force_override"),
		field.Int64("duration_ms").
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the AuditEntry.
func (AuditEntry) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("scope", "session_id"),
		index.Fields("tool_name"),
		index.Fields("created_at"),
	}
}
