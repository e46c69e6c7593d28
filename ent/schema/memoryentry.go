package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// MemoryEntry holds the schema definition for the MemoryEntry entity.
// Rows mirror the vector store: the vector lives in the embedding
// collection, the authoritative content and routing live here.
type MemoryEntry struct {
	ent.Schema
}

// Fields of the MemoryEntry.
func (MemoryEntry) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("memory_id").
			Unique().
			Immutable(),
		field.String("user_id").
			Optional(),
		field.String("group_id").
			Optional().
			Nillable().
			Comment("Null for profile memories"),
		field.Enum("layer").
			Values("profile", "episodic", "foresight", "event_log", "document"),
		field.Text("content"),
		field.JSON("metadata", map[string]any{}).
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the MemoryEntry.
func (MemoryEntry) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("group_id"),
		index.Fields("layer"),
		index.Fields("user_id"),
		index.Fields("updated_at"),
	}
}
