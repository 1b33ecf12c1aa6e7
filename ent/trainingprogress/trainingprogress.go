// Code generated by ent, DO NOT EDIT.

package trainingprogress

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the trainingprogress type in the database.
	Label = "training_progress"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldRequirement holds the string denoting the requirement field in the database.
	FieldRequirement = "requirement"
	// FieldState holds the string denoting the state field in the database.
	FieldState = "state"
	// FieldPersonID holds the string denoting the person_id field in the database.
	FieldPersonID = "person_id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgePerson holds the string denoting the person edge name in mutations.
	EdgePerson = "person"
	// Table holds the table name of the trainingprogress in the database.
	Table = "training_progresses"
	// PersonTable is the table that holds the person relation/edge.
	PersonTable = "training_progresses"
	// PersonInverseTable is the table name for the Person entity.
	// It exists in this package in order to avoid circular dependency with the "person" package.
	PersonInverseTable = "persons"
	// PersonColumn is the table column denoting the person relation/edge.
	PersonColumn = "person_id"
)

// Columns holds all SQL columns for trainingprogress fields.
var Columns = []string{
	FieldID,
	FieldRequirement,
	FieldState,
	FieldPersonID,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Requirement defines the type for the "requirement" enum field.
type Requirement string

// Requirement values.
const (
	RequirementTraining    Requirement = "training"
	RequirementGetInvolved Requirement = "get_involved"
	RequirementWelcome     Requirement = "welcome"
	RequirementDemo        Requirement = "demo"
)

func (r Requirement) String() string {
	return string(r)
}

// RequirementValidator is a validator for the "requirement" field enum values. It is called by the builders before save.
func RequirementValidator(r Requirement) error {
	switch r {
	case RequirementTraining, RequirementGetInvolved, RequirementWelcome, RequirementDemo:
		return nil
	default:
		return fmt.Errorf("trainingprogress: invalid enum value for requirement field: %q", r)
	}
}

// State defines the type for the "state" enum field.
type State string

// State values.
const (
	StatePassed        State = "passed"
	StateFailed        State = "failed"
	StateAskedToRepeat State = "asked_to_repeat"
)

func (s State) String() string {
	return string(s)
}

// StateValidator is a validator for the "state" field enum values. It is called by the builders before save.
func StateValidator(s State) error {
	switch s {
	case StatePassed, StateFailed, StateAskedToRepeat:
		return nil
	default:
		return fmt.Errorf("trainingprogress: invalid enum value for state field: %q", s)
	}
}

// OrderOption defines the ordering options for the TrainingProgress queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByRequirement orders the results by the requirement field.
func ByRequirement(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRequirement, opts...).ToFunc()
}

// ByState orders the results by the state field.
func ByState(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldState, opts...).ToFunc()
}

// ByPersonID orders the results by the person_id field.
func ByPersonID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPersonID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByPersonField orders the results by person field.
func ByPersonField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newPersonStep(), sql.OrderByField(field, opts...))
	}
}
func newPersonStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(PersonInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, PersonTable, PersonColumn),
	)
}
