package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Person holds the schema definition for the Person entity.
type Person struct {
	ent.Schema
}

// Fields of the Person.
func (Person) Fields() []ent.Field {
	return []ent.Field{
		field.String("personal").
			NotEmpty().
			MaxLen(255),

		field.String("family").
			Optional().
			Default("").
			MaxLen(255),

		field.String("email").
			Optional().
			Default("").
			MaxLen(255).
			Comment("May be empty; recipients without email are skipped"),

		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Person.
func (Person) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("tasks", Task.Type),
		edge.To("awards", Award.Type),
		edge.To("training_progresses", TrainingProgress.Type),
		edge.To("membership_tasks", MembershipTask.Type),
	}
}

// Indexes of the Person.
func (Person) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("email"),
	}
}
