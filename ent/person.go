// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/carpentries/mailflow/ent/person"
)

// Person is the model entity for the Person schema.
type Person struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Personal holds the value of the "personal" field.
	Personal string `json:"personal,omitempty"`
	// Family holds the value of the "family" field.
	Family string `json:"family,omitempty"`
	// May be empty; recipients without email are skipped
	Email string `json:"email,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the PersonQuery when eager-loading is set.
	Edges        PersonEdges `json:"edges"`
	selectValues sql.SelectValues
}

// PersonEdges holds the relations/edges for other nodes in the graph.
type PersonEdges struct {
	// Tasks holds the value of the tasks edge.
	Tasks []*Task `json:"tasks,omitempty"`
	// Awards holds the value of the awards edge.
	Awards []*Award `json:"awards,omitempty"`
	// TrainingProgresses holds the value of the training_progresses edge.
	TrainingProgresses []*TrainingProgress `json:"training_progresses,omitempty"`
	// MembershipTasks holds the value of the membership_tasks edge.
	MembershipTasks []*MembershipTask `json:"membership_tasks,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [4]bool
}

// TasksOrErr returns the Tasks value or an error if the edge
// was not loaded in eager-loading.
func (e PersonEdges) TasksOrErr() ([]*Task, error) {
	if e.loadedTypes[0] {
		return e.Tasks, nil
	}
	return nil, &NotLoadedError{edge: "tasks"}
}

// AwardsOrErr returns the Awards value or an error if the edge
// was not loaded in eager-loading.
func (e PersonEdges) AwardsOrErr() ([]*Award, error) {
	if e.loadedTypes[1] {
		return e.Awards, nil
	}
	return nil, &NotLoadedError{edge: "awards"}
}

// TrainingProgressesOrErr returns the TrainingProgresses value or an error if the edge
// was not loaded in eager-loading.
func (e PersonEdges) TrainingProgressesOrErr() ([]*TrainingProgress, error) {
	if e.loadedTypes[2] {
		return e.TrainingProgresses, nil
	}
	return nil, &NotLoadedError{edge: "training_progresses"}
}

// MembershipTasksOrErr returns the MembershipTasks value or an error if the edge
// was not loaded in eager-loading.
func (e PersonEdges) MembershipTasksOrErr() ([]*MembershipTask, error) {
	if e.loadedTypes[3] {
		return e.MembershipTasks, nil
	}
	return nil, &NotLoadedError{edge: "membership_tasks"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Person) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case person.FieldID:
			values[i] = new(sql.NullInt64)
		case person.FieldPersonal, person.FieldFamily, person.FieldEmail:
			values[i] = new(sql.NullString)
		case person.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Person fields.
func (_m *Person) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case person.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case person.FieldPersonal:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field personal", values[i])
			} else if value.Valid {
				_m.Personal = value.String
			}
		case person.FieldFamily:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field family", values[i])
			} else if value.Valid {
				_m.Family = value.String
			}
		case person.FieldEmail:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field email", values[i])
			} else if value.Valid {
				_m.Email = value.String
			}
		case person.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Person.
// This includes values selected through modifiers, order, etc.
func (_m *Person) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryTasks queries the "tasks" edge of the Person entity.
func (_m *Person) QueryTasks() *TaskQuery {
	return NewPersonClient(_m.config).QueryTasks(_m)
}

// QueryAwards queries the "awards" edge of the Person entity.
func (_m *Person) QueryAwards() *AwardQuery {
	return NewPersonClient(_m.config).QueryAwards(_m)
}

// QueryTrainingProgresses queries the "training_progresses" edge of the Person entity.
func (_m *Person) QueryTrainingProgresses() *TrainingProgressQuery {
	return NewPersonClient(_m.config).QueryTrainingProgresses(_m)
}

// QueryMembershipTasks queries the "membership_tasks" edge of the Person entity.
func (_m *Person) QueryMembershipTasks() *MembershipTaskQuery {
	return NewPersonClient(_m.config).QueryMembershipTasks(_m)
}

// Update returns a builder for updating this Person.
// Note that you need to call Person.Unwrap() before calling this method if this Person
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Person) Update() *PersonUpdateOne {
	return NewPersonClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Person entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Person) Unwrap() *Person {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Person is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Person) String() string {
	var builder strings.Builder
	builder.WriteString("Person(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("personal=")
	builder.WriteString(_m.Personal)
	builder.WriteString(", ")
	builder.WriteString("family=")
	builder.WriteString(_m.Family)
	builder.WriteString(", ")
	builder.WriteString("email=")
	builder.WriteString(_m.Email)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Persons is a parsable slice of Person.
type Persons []*Person
