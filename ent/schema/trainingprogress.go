package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TrainingProgress holds the schema definition for the TrainingProgress
// entity. One row per person per training requirement.
type TrainingProgress struct {
	ent.Schema
}

// Fields of the TrainingProgress.
func (TrainingProgress) Fields() []ent.Field {
	return []ent.Field{
		field.Enum("requirement").
			Values("training", "get_involved", "welcome", "demo"),

		field.Enum("state").
			Values("passed", "failed", "asked_to_repeat"),

		field.Int("person_id"),

		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the TrainingProgress.
func (TrainingProgress) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("person", Person.Type).
			Ref("training_progresses").
			Field("person_id").
			Unique().
			Required(),
	}
}

// Indexes of the TrainingProgress.
func (TrainingProgress) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("person_id", "requirement"),
	}
}
