package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"

	"github.com/carpentries/mailflow/pkg/models"
)

// ScheduledEmail holds the schema definition for the ScheduledEmail entity.
// Subject, body and headers are materialized copies of the linked template,
// frozen at schedule time and refreshed only through an explicit update.
type ScheduledEmail struct {
	ent.Schema
}

// Fields of the ScheduledEmail.
func (ScheduledEmail) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable(),

		field.Enum("state").
			Values("scheduled", "locked", "running", "succeeded", "failed", "cancelled").
			Default("scheduled"),

		field.Time("scheduled_at").
			Comment("Timestamp of scheduled run; mutated only through reschedule"),

		field.Strings("to_header"),

		field.String("from_header").
			NotEmpty(),

		field.String("reply_to_header").
			Optional().
			Default(""),

		field.Strings("cc_header").
			Optional(),

		field.Strings("bcc_header").
			Optional(),

		field.String("subject").
			NotEmpty().
			MaxLen(255).
			Comment("Subject rendered from template"),

		field.Text("body").
			NotEmpty().
			Comment("Body rendered from template"),

		field.JSON("context_json", map[string]any{}).
			Comment("Snapshot of context variable URIs used for rendering"),

		field.JSON("to_header_context_json", []models.ToHeaderRef{}).
			Comment("Recipient references, so the to header can be re-derived"),

		field.UUID("template_id", uuid.UUID{}).
			Optional().
			Nillable(),

		field.Enum("related_to").
			Values("event", "person", "membership", "award", "task").
			Optional().
			Comment("Kind of the domain object that caused the scheduling"),

		field.Int("related_id").
			Optional().
			Comment("ID of the domain object that caused the scheduling"),

		field.Time("created_at").
			Default(time.Now).
			Immutable(),

		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the ScheduledEmail.
func (ScheduledEmail) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("template", EmailTemplate.Type).
			Ref("scheduled_emails").
			Field("template_id").
			Unique().
			Annotations(entsql.OnDelete(entsql.SetNull)),

		edge.To("logs", ScheduledEmailLog.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),

		edge.To("attachments", EmailAttachment.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the ScheduledEmail.
func (ScheduledEmail) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("state", "scheduled_at"),
		index.Fields("related_to", "related_id"),
	}
}
