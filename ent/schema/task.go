package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Task holds the schema definition for the Task entity. A task ties a person
// to an event in a given role.
type Task struct {
	ent.Schema
}

// Fields of the Task.
func (Task) Fields() []ent.Field {
	return []ent.Field{
		field.Enum("role").
			Values("instructor", "host", "helper", "learner", "supporting_instructor"),

		field.Int("event_id"),

		field.Int("person_id"),

		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Task.
func (Task) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("event", Event.Type).
			Ref("event_tasks").
			Field("event_id").
			Unique().
			Required(),

		edge.From("person", Person.Type).
			Ref("tasks").
			Field("person_id").
			Unique().
			Required(),
	}
}

// Indexes of the Task.
func (Task) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("event_id", "role"),
		index.Fields("event_id", "person_id", "role").Unique(),
	}
}
