// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/carpentries/mailflow/ent/membership"
	"github.com/carpentries/mailflow/ent/membershiptask"
	"github.com/carpentries/mailflow/ent/person"
)

// MembershipTask is the model entity for the MembershipTask schema.
type MembershipTask struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Role holds the value of the "role" field.
	Role membershiptask.Role `json:"role,omitempty"`
	// MembershipID holds the value of the "membership_id" field.
	MembershipID int `json:"membership_id,omitempty"`
	// PersonID holds the value of the "person_id" field.
	PersonID int `json:"person_id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the MembershipTaskQuery when eager-loading is set.
	Edges        MembershipTaskEdges `json:"edges"`
	selectValues sql.SelectValues
}

// MembershipTaskEdges holds the relations/edges for other nodes in the graph.
type MembershipTaskEdges struct {
	// Membership holds the value of the membership edge.
	Membership *Membership `json:"membership,omitempty"`
	// Person holds the value of the person edge.
	Person *Person `json:"person,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// MembershipOrErr returns the Membership value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e MembershipTaskEdges) MembershipOrErr() (*Membership, error) {
	if e.Membership != nil {
		return e.Membership, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: membership.Label}
	}
	return nil, &NotLoadedError{edge: "membership"}
}

// PersonOrErr returns the Person value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e MembershipTaskEdges) PersonOrErr() (*Person, error) {
	if e.Person != nil {
		return e.Person, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: person.Label}
	}
	return nil, &NotLoadedError{edge: "person"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*MembershipTask) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case membershiptask.FieldID, membershiptask.FieldMembershipID, membershiptask.FieldPersonID:
			values[i] = new(sql.NullInt64)
		case membershiptask.FieldRole:
			values[i] = new(sql.NullString)
		case membershiptask.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the MembershipTask fields.
func (_m *MembershipTask) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case membershiptask.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case membershiptask.FieldRole:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field role", values[i])
			} else if value.Valid {
				_m.Role = membershiptask.Role(value.String)
			}
		case membershiptask.FieldMembershipID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field membership_id", values[i])
			} else if value.Valid {
				_m.MembershipID = int(value.Int64)
			}
		case membershiptask.FieldPersonID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field person_id", values[i])
			} else if value.Valid {
				_m.PersonID = int(value.Int64)
			}
		case membershiptask.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the MembershipTask.
// This includes values selected through modifiers, order, etc.
func (_m *MembershipTask) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryMembership queries the "membership" edge of the MembershipTask entity.
func (_m *MembershipTask) QueryMembership() *MembershipQuery {
	return NewMembershipTaskClient(_m.config).QueryMembership(_m)
}

// QueryPerson queries the "person" edge of the MembershipTask entity.
func (_m *MembershipTask) QueryPerson() *PersonQuery {
	return NewMembershipTaskClient(_m.config).QueryPerson(_m)
}

// Update returns a builder for updating this MembershipTask.
// Note that you need to call MembershipTask.Unwrap() before calling this method if this MembershipTask
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *MembershipTask) Update() *MembershipTaskUpdateOne {
	return NewMembershipTaskClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the MembershipTask entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *MembershipTask) Unwrap() *MembershipTask {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: MembershipTask is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *MembershipTask) String() string {
	var builder strings.Builder
	builder.WriteString("MembershipTask(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("role=")
	builder.WriteString(fmt.Sprintf("%v", _m.Role))
	builder.WriteString(", ")
	builder.WriteString("membership_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.MembershipID))
	builder.WriteString(", ")
	builder.WriteString("person_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.PersonID))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// MembershipTasks is a parsable slice of MembershipTask.
type MembershipTasks []*MembershipTask
