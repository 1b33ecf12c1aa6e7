// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/carpentries/mailflow/ent/emailtemplate"
	"github.com/google/uuid"
)

// EmailTemplate is the model entity for the EmailTemplate schema.
type EmailTemplate struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// Human-readable template name
	Name string `json:"name,omitempty"`
	// Signal name that queues this template
	Signal string `json:"signal,omitempty"`
	// Inactive templates are never scheduled
	Active bool `json:"active,omitempty"`
	// FromHeader holds the value of the "from_header" field.
	FromHeader string `json:"from_header,omitempty"`
	// Falls back to from_header when empty
	ReplyToHeader string `json:"reply_to_header,omitempty"`
	// CcHeader holds the value of the "cc_header" field.
	CcHeader []string `json:"cc_header,omitempty"`
	// BccHeader holds the value of the "bcc_header" field.
	BccHeader []string `json:"bcc_header,omitempty"`
	// Template source for the email subject
	Subject string `json:"subject,omitempty"`
	// Markdown template source for the email body
	Body string `json:"body,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the EmailTemplateQuery when eager-loading is set.
	Edges        EmailTemplateEdges `json:"edges"`
	selectValues sql.SelectValues
}

// EmailTemplateEdges holds the relations/edges for other nodes in the graph.
type EmailTemplateEdges struct {
	// Emails scheduled from this template
	ScheduledEmails []*ScheduledEmail `json:"scheduled_emails,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ScheduledEmailsOrErr returns the ScheduledEmails value or an error if the edge
// was not loaded in eager-loading.
func (e EmailTemplateEdges) ScheduledEmailsOrErr() ([]*ScheduledEmail, error) {
	if e.loadedTypes[0] {
		return e.ScheduledEmails, nil
	}
	return nil, &NotLoadedError{edge: "scheduled_emails"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*EmailTemplate) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case emailtemplate.FieldCcHeader, emailtemplate.FieldBccHeader:
			values[i] = new([]byte)
		case emailtemplate.FieldActive:
			values[i] = new(sql.NullBool)
		case emailtemplate.FieldName, emailtemplate.FieldSignal, emailtemplate.FieldFromHeader, emailtemplate.FieldReplyToHeader, emailtemplate.FieldSubject, emailtemplate.FieldBody:
			values[i] = new(sql.NullString)
		case emailtemplate.FieldCreatedAt, emailtemplate.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case emailtemplate.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the EmailTemplate fields.
func (_m *EmailTemplate) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case emailtemplate.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case emailtemplate.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case emailtemplate.FieldSignal:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field signal", values[i])
			} else if value.Valid {
				_m.Signal = value.String
			}
		case emailtemplate.FieldActive:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field active", values[i])
			} else if value.Valid {
				_m.Active = value.Bool
			}
		case emailtemplate.FieldFromHeader:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field from_header", values[i])
			} else if value.Valid {
				_m.FromHeader = value.String
			}
		case emailtemplate.FieldReplyToHeader:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reply_to_header", values[i])
			} else if value.Valid {
				_m.ReplyToHeader = value.String
			}
		case emailtemplate.FieldCcHeader:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field cc_header", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.CcHeader); err != nil {
					return fmt.Errorf("unmarshal field cc_header: %w", err)
				}
			}
		case emailtemplate.FieldBccHeader:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field bcc_header", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.BccHeader); err != nil {
					return fmt.Errorf("unmarshal field bcc_header: %w", err)
				}
			}
		case emailtemplate.FieldSubject:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field subject", values[i])
			} else if value.Valid {
				_m.Subject = value.String
			}
		case emailtemplate.FieldBody:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field body", values[i])
			} else if value.Valid {
				_m.Body = value.String
			}
		case emailtemplate.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case emailtemplate.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the EmailTemplate.
// This includes values selected through modifiers, order, etc.
func (_m *EmailTemplate) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryScheduledEmails queries the "scheduled_emails" edge of the EmailTemplate entity.
func (_m *EmailTemplate) QueryScheduledEmails() *ScheduledEmailQuery {
	return NewEmailTemplateClient(_m.config).QueryScheduledEmails(_m)
}

// Update returns a builder for updating this EmailTemplate.
// Note that you need to call EmailTemplate.Unwrap() before calling this method if this EmailTemplate
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *EmailTemplate) Update() *EmailTemplateUpdateOne {
	return NewEmailTemplateClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the EmailTemplate entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *EmailTemplate) Unwrap() *EmailTemplate {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: EmailTemplate is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *EmailTemplate) String() string {
	var builder strings.Builder
	builder.WriteString("EmailTemplate(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("signal=")
	builder.WriteString(_m.Signal)
	builder.WriteString(", ")
	builder.WriteString("active=")
	builder.WriteString(fmt.Sprintf("%v", _m.Active))
	builder.WriteString(", ")
	builder.WriteString("from_header=")
	builder.WriteString(_m.FromHeader)
	builder.WriteString(", ")
	builder.WriteString("reply_to_header=")
	builder.WriteString(_m.ReplyToHeader)
	builder.WriteString(", ")
	builder.WriteString("cc_header=")
	builder.WriteString(fmt.Sprintf("%v", _m.CcHeader))
	builder.WriteString(", ")
	builder.WriteString("bcc_header=")
	builder.WriteString(fmt.Sprintf("%v", _m.BccHeader))
	builder.WriteString(", ")
	builder.WriteString("subject=")
	builder.WriteString(_m.Subject)
	builder.WriteString(", ")
	builder.WriteString("body=")
	builder.WriteString(_m.Body)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// EmailTemplates is a parsable slice of EmailTemplate.
type EmailTemplates []*EmailTemplate
