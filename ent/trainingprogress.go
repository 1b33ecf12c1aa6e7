// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/carpentries/mailflow/ent/person"
	"github.com/carpentries/mailflow/ent/trainingprogress"
)

// TrainingProgress is the model entity for the TrainingProgress schema.
type TrainingProgress struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Requirement holds the value of the "requirement" field.
	Requirement trainingprogress.Requirement `json:"requirement,omitempty"`
	// State holds the value of the "state" field.
	State trainingprogress.State `json:"state,omitempty"`
	// PersonID holds the value of the "person_id" field.
	PersonID int `json:"person_id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the TrainingProgressQuery when eager-loading is set.
	Edges        TrainingProgressEdges `json:"edges"`
	selectValues sql.SelectValues
}

// TrainingProgressEdges holds the relations/edges for other nodes in the graph.
type TrainingProgressEdges struct {
	// Person holds the value of the person edge.
	Person *Person `json:"person,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// PersonOrErr returns the Person value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e TrainingProgressEdges) PersonOrErr() (*Person, error) {
	if e.Person != nil {
		return e.Person, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: person.Label}
	}
	return nil, &NotLoadedError{edge: "person"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*TrainingProgress) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case trainingprogress.FieldID, trainingprogress.FieldPersonID:
			values[i] = new(sql.NullInt64)
		case trainingprogress.FieldRequirement, trainingprogress.FieldState:
			values[i] = new(sql.NullString)
		case trainingprogress.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the TrainingProgress fields.
func (_m *TrainingProgress) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case trainingprogress.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case trainingprogress.FieldRequirement:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field requirement", values[i])
			} else if value.Valid {
				_m.Requirement = trainingprogress.Requirement(value.String)
			}
		case trainingprogress.FieldState:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field state", values[i])
			} else if value.Valid {
				_m.State = trainingprogress.State(value.String)
			}
		case trainingprogress.FieldPersonID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field person_id", values[i])
			} else if value.Valid {
				_m.PersonID = int(value.Int64)
			}
		case trainingprogress.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the TrainingProgress.
// This includes values selected through modifiers, order, etc.
func (_m *TrainingProgress) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryPerson queries the "person" edge of the TrainingProgress entity.
func (_m *TrainingProgress) QueryPerson() *PersonQuery {
	return NewTrainingProgressClient(_m.config).QueryPerson(_m)
}

// Update returns a builder for updating this TrainingProgress.
// Note that you need to call TrainingProgress.Unwrap() before calling this method if this TrainingProgress
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *TrainingProgress) Update() *TrainingProgressUpdateOne {
	return NewTrainingProgressClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the TrainingProgress entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *TrainingProgress) Unwrap() *TrainingProgress {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: TrainingProgress is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *TrainingProgress) String() string {
	var builder strings.Builder
	builder.WriteString("TrainingProgress(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("requirement=")
	builder.WriteString(fmt.Sprintf("%v", _m.Requirement))
	builder.WriteString(", ")
	builder.WriteString("state=")
	builder.WriteString(fmt.Sprintf("%v", _m.State))
	builder.WriteString(", ")
	builder.WriteString("person_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.PersonID))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// TrainingProgresses is a parsable slice of TrainingProgress.
type TrainingProgresses []*TrainingProgress
