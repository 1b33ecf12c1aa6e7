// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/carpentries/mailflow/ent/emailattachment"
	"github.com/carpentries/mailflow/ent/scheduledemail"
	"github.com/google/uuid"
)

// EmailAttachment is the model entity for the EmailAttachment schema.
type EmailAttachment struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// Filename holds the value of the "filename" field.
	Filename string `json:"filename,omitempty"`
	// S3Bucket holds the value of the "s3_bucket" field.
	S3Bucket string `json:"s3_bucket,omitempty"`
	// Content-addressed path: {email_id}/{uuid}-{filename}
	S3Path string `json:"s3_path,omitempty"`
	// PresignedURL holds the value of the "presigned_url" field.
	PresignedURL string `json:"presigned_url,omitempty"`
	// Kept alongside the URL for auditability
	PresignedURLExpiration *time.Time `json:"presigned_url_expiration,omitempty"`
	// ScheduledEmailID holds the value of the "scheduled_email_id" field.
	ScheduledEmailID uuid.UUID `json:"scheduled_email_id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the EmailAttachmentQuery when eager-loading is set.
	Edges        EmailAttachmentEdges `json:"edges"`
	selectValues sql.SelectValues
}

// EmailAttachmentEdges holds the relations/edges for other nodes in the graph.
type EmailAttachmentEdges struct {
	// Email holds the value of the email edge.
	Email *ScheduledEmail `json:"email,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// EmailOrErr returns the Email value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e EmailAttachmentEdges) EmailOrErr() (*ScheduledEmail, error) {
	if e.Email != nil {
		return e.Email, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: scheduledemail.Label}
	}
	return nil, &NotLoadedError{edge: "email"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*EmailAttachment) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case emailattachment.FieldFilename, emailattachment.FieldS3Bucket, emailattachment.FieldS3Path, emailattachment.FieldPresignedURL:
			values[i] = new(sql.NullString)
		case emailattachment.FieldPresignedURLExpiration, emailattachment.FieldCreatedAt, emailattachment.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case emailattachment.FieldID, emailattachment.FieldScheduledEmailID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the EmailAttachment fields.
func (_m *EmailAttachment) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case emailattachment.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case emailattachment.FieldFilename:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field filename", values[i])
			} else if value.Valid {
				_m.Filename = value.String
			}
		case emailattachment.FieldS3Bucket:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field s3_bucket", values[i])
			} else if value.Valid {
				_m.S3Bucket = value.String
			}
		case emailattachment.FieldS3Path:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field s3_path", values[i])
			} else if value.Valid {
				_m.S3Path = value.String
			}
		case emailattachment.FieldPresignedURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field presigned_url", values[i])
			} else if value.Valid {
				_m.PresignedURL = value.String
			}
		case emailattachment.FieldPresignedURLExpiration:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field presigned_url_expiration", values[i])
			} else if value.Valid {
				_m.PresignedURLExpiration = new(time.Time)
				*_m.PresignedURLExpiration = value.Time
			}
		case emailattachment.FieldScheduledEmailID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field scheduled_email_id", values[i])
			} else if value != nil {
				_m.ScheduledEmailID = *value
			}
		case emailattachment.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case emailattachment.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the EmailAttachment.
// This includes values selected through modifiers, order, etc.
func (_m *EmailAttachment) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryEmail queries the "email" edge of the EmailAttachment entity.
func (_m *EmailAttachment) QueryEmail() *ScheduledEmailQuery {
	return NewEmailAttachmentClient(_m.config).QueryEmail(_m)
}

// Update returns a builder for updating this EmailAttachment.
// Note that you need to call EmailAttachment.Unwrap() before calling this method if this EmailAttachment
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *EmailAttachment) Update() *EmailAttachmentUpdateOne {
	return NewEmailAttachmentClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the EmailAttachment entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *EmailAttachment) Unwrap() *EmailAttachment {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: EmailAttachment is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *EmailAttachment) String() string {
	var builder strings.Builder
	builder.WriteString("EmailAttachment(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("filename=")
	builder.WriteString(_m.Filename)
	builder.WriteString(", ")
	builder.WriteString("s3_bucket=")
	builder.WriteString(_m.S3Bucket)
	builder.WriteString(", ")
	builder.WriteString("s3_path=")
	builder.WriteString(_m.S3Path)
	builder.WriteString(", ")
	builder.WriteString("presigned_url=")
	builder.WriteString(_m.PresignedURL)
	builder.WriteString(", ")
	if v := _m.PresignedURLExpiration; v != nil {
		builder.WriteString("presigned_url_expiration=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("scheduled_email_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ScheduledEmailID))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// EmailAttachments is a parsable slice of EmailAttachment.
type EmailAttachments []*EmailAttachment
