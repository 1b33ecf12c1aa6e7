package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// EmailAttachment holds the schema definition for the EmailAttachment entity.
// Attachment content lives in object storage, never in the database row.
type EmailAttachment struct {
	ent.Schema
}

// Fields of the EmailAttachment.
func (EmailAttachment) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable(),

		field.String("filename").
			NotEmpty().
			MaxLen(255),

		field.String("s3_bucket").
			NotEmpty(),

		field.String("s3_path").
			NotEmpty().
			Comment("Content-addressed path: {email_id}/{uuid}-{filename}"),

		field.String("presigned_url").
			Optional().
			Default(""),

		field.Time("presigned_url_expiration").
			Optional().
			Nillable().
			Comment("Kept alongside the URL for auditability"),

		field.UUID("scheduled_email_id", uuid.UUID{}).
			Immutable(),

		field.Time("created_at").
			Default(time.Now).
			Immutable(),

		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the EmailAttachment.
func (EmailAttachment) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("email", ScheduledEmail.Type).
			Ref("attachments").
			Field("scheduled_email_id").
			Unique().
			Required().
			Immutable().
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}
