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
	"github.com/carpentries/mailflow/ent/scheduledemail"
	"github.com/carpentries/mailflow/pkg/models"
	"github.com/google/uuid"
)

// ScheduledEmail is the model entity for the ScheduledEmail schema.
type ScheduledEmail struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// State holds the value of the "state" field.
	State scheduledemail.State `json:"state,omitempty"`
	// Timestamp of scheduled run; mutated only through reschedule
	ScheduledAt time.Time `json:"scheduled_at,omitempty"`
	// ToHeader holds the value of the "to_header" field.
	ToHeader []string `json:"to_header,omitempty"`
	// FromHeader holds the value of the "from_header" field.
	FromHeader string `json:"from_header,omitempty"`
	// ReplyToHeader holds the value of the "reply_to_header" field.
	ReplyToHeader string `json:"reply_to_header,omitempty"`
	// CcHeader holds the value of the "cc_header" field.
	CcHeader []string `json:"cc_header,omitempty"`
	// BccHeader holds the value of the "bcc_header" field.
	BccHeader []string `json:"bcc_header,omitempty"`
	// Subject rendered from template
	Subject string `json:"subject,omitempty"`
	// Body rendered from template
	Body string `json:"body,omitempty"`
	// Snapshot of context variable URIs used for rendering
	ContextJSON map[string]interface{} `json:"context_json,omitempty"`
	// Recipient references, so the to header can be re-derived
	ToHeaderContextJSON []models.ToHeaderRef `json:"to_header_context_json,omitempty"`
	// TemplateID holds the value of the "template_id" field.
	TemplateID *uuid.UUID `json:"template_id,omitempty"`
	// Kind of the domain object that caused the scheduling
	RelatedTo scheduledemail.RelatedTo `json:"related_to,omitempty"`
	// ID of the domain object that caused the scheduling
	RelatedID int `json:"related_id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ScheduledEmailQuery when eager-loading is set.
	Edges        ScheduledEmailEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ScheduledEmailEdges holds the relations/edges for other nodes in the graph.
type ScheduledEmailEdges struct {
	// Template holds the value of the template edge.
	Template *EmailTemplate `json:"template,omitempty"`
	// Logs holds the value of the logs edge.
	Logs []*ScheduledEmailLog `json:"logs,omitempty"`
	// Attachments holds the value of the attachments edge.
	Attachments []*EmailAttachment `json:"attachments,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// TemplateOrErr returns the Template value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ScheduledEmailEdges) TemplateOrErr() (*EmailTemplate, error) {
	if e.Template != nil {
		return e.Template, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: emailtemplate.Label}
	}
	return nil, &NotLoadedError{edge: "template"}
}

// LogsOrErr returns the Logs value or an error if the edge
// was not loaded in eager-loading.
func (e ScheduledEmailEdges) LogsOrErr() ([]*ScheduledEmailLog, error) {
	if e.loadedTypes[1] {
		return e.Logs, nil
	}
	return nil, &NotLoadedError{edge: "logs"}
}

// AttachmentsOrErr returns the Attachments value or an error if the edge
// was not loaded in eager-loading.
func (e ScheduledEmailEdges) AttachmentsOrErr() ([]*EmailAttachment, error) {
	if e.loadedTypes[2] {
		return e.Attachments, nil
	}
	return nil, &NotLoadedError{edge: "attachments"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ScheduledEmail) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case scheduledemail.FieldTemplateID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case scheduledemail.FieldToHeader, scheduledemail.FieldCcHeader, scheduledemail.FieldBccHeader, scheduledemail.FieldContextJSON, scheduledemail.FieldToHeaderContextJSON:
			values[i] = new([]byte)
		case scheduledemail.FieldRelatedID:
			values[i] = new(sql.NullInt64)
		case scheduledemail.FieldState, scheduledemail.FieldFromHeader, scheduledemail.FieldReplyToHeader, scheduledemail.FieldSubject, scheduledemail.FieldBody, scheduledemail.FieldRelatedTo:
			values[i] = new(sql.NullString)
		case scheduledemail.FieldScheduledAt, scheduledemail.FieldCreatedAt, scheduledemail.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case scheduledemail.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ScheduledEmail fields.
func (_m *ScheduledEmail) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case scheduledemail.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case scheduledemail.FieldState:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field state", values[i])
			} else if value.Valid {
				_m.State = scheduledemail.State(value.String)
			}
		case scheduledemail.FieldScheduledAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field scheduled_at", values[i])
			} else if value.Valid {
				_m.ScheduledAt = value.Time
			}
		case scheduledemail.FieldToHeader:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field to_header", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ToHeader); err != nil {
					return fmt.Errorf("unmarshal field to_header: %w", err)
				}
			}
		case scheduledemail.FieldFromHeader:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field from_header", values[i])
			} else if value.Valid {
				_m.FromHeader = value.String
			}
		case scheduledemail.FieldReplyToHeader:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reply_to_header", values[i])
			} else if value.Valid {
				_m.ReplyToHeader = value.String
			}
		case scheduledemail.FieldCcHeader:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field cc_header", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.CcHeader); err != nil {
					return fmt.Errorf("unmarshal field cc_header: %w", err)
				}
			}
		case scheduledemail.FieldBccHeader:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field bcc_header", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.BccHeader); err != nil {
					return fmt.Errorf("unmarshal field bcc_header: %w", err)
				}
			}
		case scheduledemail.FieldSubject:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field subject", values[i])
			} else if value.Valid {
				_m.Subject = value.String
			}
		case scheduledemail.FieldBody:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field body", values[i])
			} else if value.Valid {
				_m.Body = value.String
			}
		case scheduledemail.FieldContextJSON:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field context_json", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ContextJSON); err != nil {
					return fmt.Errorf("unmarshal field context_json: %w", err)
				}
			}
		case scheduledemail.FieldToHeaderContextJSON:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field to_header_context_json", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ToHeaderContextJSON); err != nil {
					return fmt.Errorf("unmarshal field to_header_context_json: %w", err)
				}
			}
		case scheduledemail.FieldTemplateID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field template_id", values[i])
			} else if value.Valid {
				_m.TemplateID = new(uuid.UUID)
				*_m.TemplateID = *value.S.(*uuid.UUID)
			}
		case scheduledemail.FieldRelatedTo:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field related_to", values[i])
			} else if value.Valid {
				_m.RelatedTo = scheduledemail.RelatedTo(value.String)
			}
		case scheduledemail.FieldRelatedID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field related_id", values[i])
			} else if value.Valid {
				_m.RelatedID = int(value.Int64)
			}
		case scheduledemail.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case scheduledemail.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the ScheduledEmail.
// This includes values selected through modifiers, order, etc.
func (_m *ScheduledEmail) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryTemplate queries the "template" edge of the ScheduledEmail entity.
func (_m *ScheduledEmail) QueryTemplate() *EmailTemplateQuery {
	return NewScheduledEmailClient(_m.config).QueryTemplate(_m)
}

// QueryLogs queries the "logs" edge of the ScheduledEmail entity.
func (_m *ScheduledEmail) QueryLogs() *ScheduledEmailLogQuery {
	return NewScheduledEmailClient(_m.config).QueryLogs(_m)
}

// QueryAttachments queries the "attachments" edge of the ScheduledEmail entity.
func (_m *ScheduledEmail) QueryAttachments() *EmailAttachmentQuery {
	return NewScheduledEmailClient(_m.config).QueryAttachments(_m)
}

// Update returns a builder for updating this ScheduledEmail.
// Note that you need to call ScheduledEmail.Unwrap() before calling this method if this ScheduledEmail
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ScheduledEmail) Update() *ScheduledEmailUpdateOne {
	return NewScheduledEmailClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ScheduledEmail entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ScheduledEmail) Unwrap() *ScheduledEmail {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ScheduledEmail is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ScheduledEmail) String() string {
	var builder strings.Builder
	builder.WriteString("ScheduledEmail(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("state=")
	builder.WriteString(fmt.Sprintf("%v", _m.State))
	builder.WriteString(", ")
	builder.WriteString("scheduled_at=")
	builder.WriteString(_m.ScheduledAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("to_header=")
	builder.WriteString(fmt.Sprintf("%v", _m.ToHeader))
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
	builder.WriteString("context_json=")
	builder.WriteString(fmt.Sprintf("%v", _m.ContextJSON))
	builder.WriteString(", ")
	builder.WriteString("to_header_context_json=")
	builder.WriteString(fmt.Sprintf("%v", _m.ToHeaderContextJSON))
	builder.WriteString(", ")
	if v := _m.TemplateID; v != nil {
		builder.WriteString("template_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("related_to=")
	builder.WriteString(fmt.Sprintf("%v", _m.RelatedTo))
	builder.WriteString(", ")
	builder.WriteString("related_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.RelatedID))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ScheduledEmails is a parsable slice of ScheduledEmail.
type ScheduledEmails []*ScheduledEmail
