package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Schedule holds the schema definition for the Schedule entity.
// Either a one-shot reminder (remind_at) or a recurring cron job
// (cron_spec); both trigger a background session with the prompt.
type Schedule struct {
	ent.Schema
}

// Fields of the Schedule.
func (Schedule) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("schedule_id").
			Unique().
			Immutable(),
		field.String("scope"),
		field.String("title"),
		field.Text("prompt"),
		field.Time("remind_at").
			Optional().
			Nillable(),
		field.String("cron_spec").
			Optional().
			Comment("Standard 5-field cron expression"),
		field.Bool("enabled").
			Default(true),
		field.Time("last_fired_at").
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

// Indexes of the Schedule.
func (Schedule) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("scope"),
		index.Fields("enabled"),
		index.Fields("remind_at"),
	}
}
