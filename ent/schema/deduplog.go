package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// DedupLog holds the schema definition for the DedupLog entity.
// One row per suppressed memory insert; undoDedup re-inserts from it.
type DedupLog struct {
	ent.Schema
}

// Fields of the DedupLog.
func (DedupLog) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("log_id").
			Unique().
			Immutable(),
		field.String("kept_memory_id"),
		field.Text("new_memory_content"),
		field.String("new_memory_type"),
		field.JSON("new_memory_metadata", map[string]any{}).
			Optional(),
		field.Text("kept_memory_content").
			Optional(),
		field.Float("vector_distance"),
		field.Text("llm_reasoning").
			Comment("Contains SAME for judge decisions, vector-only for fallback"),
		field.String("user_id").
			Optional(),
		field.String("group_id").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Bool("rolled_back").
			Default(false),
	}
}

// Indexes of the DedupLog.
func (DedupLog) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("kept_memory_id"),
		index.Fields("group_id"),
		index.Fields("created_at"),
	}
}
