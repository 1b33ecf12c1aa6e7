package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// MembershipTask holds the schema definition for the MembershipTask entity.
// Ties a contact person to a membership in a given role.
type MembershipTask struct {
	ent.Schema
}

// Fields of the MembershipTask.
func (MembershipTask) Fields() []ent.Field {
	return []ent.Field{
		field.Enum("role").
			Values("billing_contact", "programmatic_contact", "persons_of_interest"),

		field.Int("membership_id"),

		field.Int("person_id"),

		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the MembershipTask.
func (MembershipTask) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("membership", Membership.Type).
			Ref("membership_tasks").
			Field("membership_id").
			Unique().
			Required(),

		edge.From("person", Person.Type).
			Ref("membership_tasks").
			Field("person_id").
			Unique().
			Required(),
	}
}

// Indexes of the MembershipTask.
func (MembershipTask) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("membership_id", "role"),
	}
}
