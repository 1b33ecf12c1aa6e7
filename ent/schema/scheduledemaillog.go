package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// ScheduledEmailLog holds the schema definition for the ScheduledEmailLog
// entity. One row per state transition or content update; never updated or
// deleted on its own.
type ScheduledEmailLog struct {
	ent.Schema
}

// Fields of the ScheduledEmailLog.
func (ScheduledEmailLog) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable(),

		field.String("details").
			NotEmpty().
			MaxLen(255).
			Immutable(),

		field.Enum("state_before").
			Values("scheduled", "locked", "running", "succeeded", "failed", "cancelled").
			Optional().
			Immutable(),

		field.Enum("state_after").
			Values("scheduled", "locked", "running", "succeeded", "failed", "cancelled").
			Immutable(),

		field.Int("author_id").
			Optional().
			Nillable().
			Immutable().
			Comment("Person who triggered the change; empty for system actions"),

		field.UUID("scheduled_email_id", uuid.UUID{}).
			Immutable(),

		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the ScheduledEmailLog.
func (ScheduledEmailLog) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("email", ScheduledEmail.Type).
			Ref("logs").
			Field("scheduled_email_id").
			Unique().
			Required().
			Immutable().
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the ScheduledEmailLog.
func (ScheduledEmailLog) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("scheduled_email_id", "created_at"),
	}
}
