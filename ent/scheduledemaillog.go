// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/carpentries/mailflow/ent/scheduledemail"
	"github.com/carpentries/mailflow/ent/scheduledemaillog"
	"github.com/google/uuid"
)

// ScheduledEmailLog is the model entity for the ScheduledEmailLog schema.
type ScheduledEmailLog struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// Details holds the value of the "details" field.
	Details string `json:"details,omitempty"`
	// StateBefore holds the value of the "state_before" field.
	StateBefore scheduledemaillog.StateBefore `json:"state_before,omitempty"`
	// StateAfter holds the value of the "state_after" field.
	StateAfter scheduledemaillog.StateAfter `json:"state_after,omitempty"`
	// Person who triggered the change; empty for system actions
	AuthorID *int `json:"author_id,omitempty"`
	// ScheduledEmailID holds the value of the "scheduled_email_id" field.
	ScheduledEmailID uuid.UUID `json:"scheduled_email_id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ScheduledEmailLogQuery when eager-loading is set.
	Edges        ScheduledEmailLogEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ScheduledEmailLogEdges holds the relations/edges for other nodes in the graph.
type ScheduledEmailLogEdges struct {
	// Email holds the value of the email edge.
	Email *ScheduledEmail `json:"email,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// EmailOrErr returns the Email value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ScheduledEmailLogEdges) EmailOrErr() (*ScheduledEmail, error) {
	if e.Email != nil {
		return e.Email, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: scheduledemail.Label}
	}
	return nil, &NotLoadedError{edge: "email"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ScheduledEmailLog) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case scheduledemaillog.FieldAuthorID:
			values[i] = new(sql.NullInt64)
		case scheduledemaillog.FieldDetails, scheduledemaillog.FieldStateBefore, scheduledemaillog.FieldStateAfter:
			values[i] = new(sql.NullString)
		case scheduledemaillog.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case scheduledemaillog.FieldID, scheduledemaillog.FieldScheduledEmailID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ScheduledEmailLog fields.
func (_m *ScheduledEmailLog) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case scheduledemaillog.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case scheduledemaillog.FieldDetails:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field details", values[i])
			} else if value.Valid {
				_m.Details = value.String
			}
		case scheduledemaillog.FieldStateBefore:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field state_before", values[i])
			} else if value.Valid {
				_m.StateBefore = scheduledemaillog.StateBefore(value.String)
			}
		case scheduledemaillog.FieldStateAfter:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field state_after", values[i])
			} else if value.Valid {
				_m.StateAfter = scheduledemaillog.StateAfter(value.String)
			}
		case scheduledemaillog.FieldAuthorID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field author_id", values[i])
			} else if value.Valid {
				_m.AuthorID = new(int)
				*_m.AuthorID = int(value.Int64)
			}
		case scheduledemaillog.FieldScheduledEmailID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field scheduled_email_id", values[i])
			} else if value != nil {
				_m.ScheduledEmailID = *value
			}
		case scheduledemaillog.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ScheduledEmailLog.
// This includes values selected through modifiers, order, etc.
func (_m *ScheduledEmailLog) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryEmail queries the "email" edge of the ScheduledEmailLog entity.
func (_m *ScheduledEmailLog) QueryEmail() *ScheduledEmailQuery {
	return NewScheduledEmailLogClient(_m.config).QueryEmail(_m)
}

// Update returns a builder for updating this ScheduledEmailLog.
// Note that you need to call ScheduledEmailLog.Unwrap() before calling this method if this ScheduledEmailLog
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ScheduledEmailLog) Update() *ScheduledEmailLogUpdateOne {
	return NewScheduledEmailLogClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ScheduledEmailLog entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ScheduledEmailLog) Unwrap() *ScheduledEmailLog {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ScheduledEmailLog is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ScheduledEmailLog) String() string {
	var builder strings.Builder
	builder.WriteString("ScheduledEmailLog(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("details=")
	builder.WriteString(_m.Details)
	builder.WriteString(", ")
	builder.WriteString("state_before=")
	builder.WriteString(fmt.Sprintf("%v", _m.StateBefore))
	builder.WriteString(", ")
	builder.WriteString("state_after=")
	builder.WriteString(fmt.Sprintf("%v", _m.StateAfter))
	builder.WriteString(", ")
	if v := _m.AuthorID; v != nil {
		builder.WriteString("author_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("scheduled_email_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ScheduledEmailID))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ScheduledEmailLogs is a parsable slice of ScheduledEmailLog.
type ScheduledEmailLogs []*ScheduledEmailLog
