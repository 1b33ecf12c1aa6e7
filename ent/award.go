// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/carpentries/mailflow/ent/award"
	"github.com/carpentries/mailflow/ent/person"
)

// Award is the model entity for the Award schema.
type Award struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Badge name, e.g. instructor
	Badge string `json:"badge,omitempty"`
	// Awarded holds the value of the "awarded" field.
	Awarded time.Time `json:"awarded,omitempty"`
	// PersonID holds the value of the "person_id" field.
	PersonID int `json:"person_id,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the AwardQuery when eager-loading is set.
	Edges        AwardEdges `json:"edges"`
	selectValues sql.SelectValues
}

// AwardEdges holds the relations/edges for other nodes in the graph.
type AwardEdges struct {
	// Person holds the value of the person edge.
	Person *Person `json:"person,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// PersonOrErr returns the Person value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AwardEdges) PersonOrErr() (*Person, error) {
	if e.Person != nil {
		return e.Person, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: person.Label}
	}
	return nil, &NotLoadedError{edge: "person"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Award) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case award.FieldID, award.FieldPersonID:
			values[i] = new(sql.NullInt64)
		case award.FieldBadge:
			values[i] = new(sql.NullString)
		case award.FieldAwarded:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Award fields.
func (_m *Award) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case award.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case award.FieldBadge:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field badge", values[i])
			} else if value.Valid {
				_m.Badge = value.String
			}
		case award.FieldAwarded:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field awarded", values[i])
			} else if value.Valid {
				_m.Awarded = value.Time
			}
		case award.FieldPersonID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field person_id", values[i])
			} else if value.Valid {
				_m.PersonID = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Award.
// This includes values selected through modifiers, order, etc.
func (_m *Award) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryPerson queries the "person" edge of the Award entity.
func (_m *Award) QueryPerson() *PersonQuery {
	return NewAwardClient(_m.config).QueryPerson(_m)
}

// Update returns a builder for updating this Award.
// Note that you need to call Award.Unwrap() before calling this method if this Award
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Award) Update() *AwardUpdateOne {
	return NewAwardClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Award entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Award) Unwrap() *Award {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Award is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Award) String() string {
	var builder strings.Builder
	builder.WriteString("Award(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("badge=")
	builder.WriteString(_m.Badge)
	builder.WriteString(", ")
	builder.WriteString("awarded=")
	builder.WriteString(_m.Awarded.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("person_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.PersonID))
	builder.WriteByte(')')
	return builder.String()
}

// Awards is a parsable slice of Award.
type Awards []*Award
