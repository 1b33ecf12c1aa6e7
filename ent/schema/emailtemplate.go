package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// EmailTemplate holds the schema definition for the EmailTemplate entity.
type EmailTemplate struct {
	ent.Schema
}

// Fields of the EmailTemplate.
func (EmailTemplate) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable(),

		field.String("name").
			NotEmpty().
			MaxLen(255).
			Unique().
			Comment("Human-readable template name"),

		field.String("signal").
			NotEmpty().
			MaxLen(255).
			Unique().
			Comment("Signal name that queues this template"),

		field.Bool("active").
			Default(true).
			Comment("Inactive templates are never scheduled"),

		field.String("from_header").
			NotEmpty(),

		field.String("reply_to_header").
			Optional().
			Default("").
			Comment("Falls back to from_header when empty"),

		field.Strings("cc_header").
			Optional(),

		field.Strings("bcc_header").
			Optional(),

		field.String("subject").
			NotEmpty().
			MaxLen(255).
			Comment("Template source for the email subject"),

		field.Text("body").
			NotEmpty().
			Comment("Markdown template source for the email body"),

		field.Time("created_at").
			Default(time.Now).
			Immutable(),

		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the EmailTemplate.
func (EmailTemplate) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("scheduled_emails", ScheduledEmail.Type).
			Comment("Emails scheduled from this template"),
	}
}

// Indexes of the EmailTemplate.
func (EmailTemplate) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("signal"),
		index.Fields("active"),
	}
}
