// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/carpentries/mailflow/ent/membership"
)

// Membership is the model entity for the Membership schema.
type Membership struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Variant holds the value of the "variant" field.
	Variant membership.Variant `json:"variant,omitempty"`
	// AgreementStart holds the value of the "agreement_start" field.
	AgreementStart time.Time `json:"agreement_start,omitempty"`
	// AgreementEnd holds the value of the "agreement_end" field.
	AgreementEnd time.Time `json:"agreement_end,omitempty"`
	// Membership this one was rolled over from, if any
	RolledFromID *int `json:"rolled_from_id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the MembershipQuery when eager-loading is set.
	Edges        MembershipEdges `json:"edges"`
	selectValues sql.SelectValues
}

// MembershipEdges holds the relations/edges for other nodes in the graph.
type MembershipEdges struct {
	// MembershipTasks holds the value of the membership_tasks edge.
	MembershipTasks []*MembershipTask `json:"membership_tasks,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// MembershipTasksOrErr returns the MembershipTasks value or an error if the edge
// was not loaded in eager-loading.
func (e MembershipEdges) MembershipTasksOrErr() ([]*MembershipTask, error) {
	if e.loadedTypes[0] {
		return e.MembershipTasks, nil
	}
	return nil, &NotLoadedError{edge: "membership_tasks"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Membership) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case membership.FieldID, membership.FieldRolledFromID:
			values[i] = new(sql.NullInt64)
		case membership.FieldName, membership.FieldVariant:
			values[i] = new(sql.NullString)
		case membership.FieldAgreementStart, membership.FieldAgreementEnd, membership.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Membership fields.
func (_m *Membership) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case membership.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case membership.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case membership.FieldVariant:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field variant", values[i])
			} else if value.Valid {
				_m.Variant = membership.Variant(value.String)
			}
		case membership.FieldAgreementStart:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field agreement_start", values[i])
			} else if value.Valid {
				_m.AgreementStart = value.Time
			}
		case membership.FieldAgreementEnd:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field agreement_end", values[i])
			} else if value.Valid {
				_m.AgreementEnd = value.Time
			}
		case membership.FieldRolledFromID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field rolled_from_id", values[i])
			} else if value.Valid {
				_m.RolledFromID = new(int)
				*_m.RolledFromID = int(value.Int64)
			}
		case membership.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Membership.
// This includes values selected through modifiers, order, etc.
func (_m *Membership) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryMembershipTasks queries the "membership_tasks" edge of the Membership entity.
func (_m *Membership) QueryMembershipTasks() *MembershipTaskQuery {
	return NewMembershipClient(_m.config).QueryMembershipTasks(_m)
}

// Update returns a builder for updating this Membership.
// Note that you need to call Membership.Unwrap() before calling this method if this Membership
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Membership) Update() *MembershipUpdateOne {
	return NewMembershipClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Membership entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Membership) Unwrap() *Membership {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Membership is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Membership) String() string {
	var builder strings.Builder
	builder.WriteString("Membership(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("variant=")
	builder.WriteString(fmt.Sprintf("%v", _m.Variant))
	builder.WriteString(", ")
	builder.WriteString("agreement_start=")
	builder.WriteString(_m.AgreementStart.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("agreement_end=")
	builder.WriteString(_m.AgreementEnd.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.RolledFromID; v != nil {
		builder.WriteString("rolled_from_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Memberships is a parsable slice of Membership.
type Memberships []*Membership
