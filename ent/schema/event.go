package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Event holds the schema definition for the Event entity.
type Event struct {
	ent.Schema
}

// Fields of the Event.
func (Event) Fields() []ent.Field {
	return []ent.Field{
		field.String("slug").
			NotEmpty().
			MaxLen(255).
			Unique(),

		field.Time("start_date").
			Optional().
			Nillable(),

		field.Time("end_date").
			Optional().
			Nillable(),

		field.String("url").
			Optional().
			Default(""),

		field.Strings("tags").
			Optional().
			Comment("Workshop tags, e.g. SWC, DC, LC, TTT, cancelled, stalled"),

		field.Bool("open_recruitment").
			Default(false).
			Comment("An instructor recruitment is currently open for this event"),

		field.Int("administrator_id").
			Optional().
			Nillable(),

		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Event.
func (Event) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("administrator", Organization.Type).
			Ref("administered_events").
			Field("administrator_id").
			Unique(),

		edge.To("event_tasks", Task.Type),
	}
}

// Indexes of the Event.
func (Event) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("start_date"),
		index.Fields("end_date"),
	}
}
