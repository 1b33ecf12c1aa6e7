package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Award holds the schema definition for the Award entity.
type Award struct {
	ent.Schema
}

// Fields of the Award.
func (Award) Fields() []ent.Field {
	return []ent.Field{
		field.String("badge").
			NotEmpty().
			MaxLen(255).
			Comment("Badge name, e.g. instructor"),

		field.Time("awarded").
			Default(time.Now),

		field.Int("person_id"),
	}
}

// Edges of the Award.
func (Award) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("person", Person.Type).
			Ref("awards").
			Field("person_id").
			Unique().
			Required(),
	}
}

// Indexes of the Award.
func (Award) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("person_id", "badge").Unique(),
	}
}
