package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// Organization holds the schema definition for the Organization entity.
type Organization struct {
	ent.Schema
}

// Fields of the Organization.
func (Organization) Fields() []ent.Field {
	return []ent.Field{
		field.String("fullname").
			NotEmpty().
			MaxLen(255),

		field.String("domain").
			NotEmpty().
			MaxLen(255).
			Unique().
			Comment("Identifying domain, e.g. self-organized or carpentries.org"),

		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Organization.
func (Organization) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("administered_events", Event.Type),
	}
}
