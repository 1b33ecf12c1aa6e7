package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// Membership holds the schema definition for the Membership entity.
type Membership struct {
	ent.Schema
}

// Fields of the Membership.
func (Membership) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			NotEmpty().
			MaxLen(255),

		field.Enum("variant").
			Values("bronze", "silver", "gold", "platinum", "alacarte"),

		field.Time("agreement_start"),

		field.Time("agreement_end"),

		field.Int("rolled_from_id").
			Optional().
			Nillable().
			Comment("Membership this one was rolled over from, if any"),

		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Membership.
func (Membership) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("membership_tasks", MembershipTask.Type),
	}
}
