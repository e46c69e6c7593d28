package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// WorkflowRun holds the schema definition for the WorkflowRun entity.
// One row per workflow execution; step results are stored as JSON.
type WorkflowRun struct {
	ent.Schema
}

// Fields of the WorkflowRun.
func (WorkflowRun) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("run_id").
			Unique().
			Immutable(),
		field.String("scope"),
		field.String("workflow_name"),
		field.Enum("status").
			Values("running", "paused", "completed", "failed", "cancelled").
			Default("running"),
		field.JSON("step_results", map[string]any{}).
			Optional(),
		field.Int("current_step_idx").
			Default(0),
		field.String("resume_token").
			Optional().
			Nillable().
			Sensitive().
			Comment("Set only while status=paused"),
		field.String("approve_prompt").
			Optional().
			Nillable(),
		field.String("error").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the WorkflowRun.
func (WorkflowRun) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("scope", "workflow_name"),
		index.Fields("status"),
		index.Fields("created_at"),
	}
}
