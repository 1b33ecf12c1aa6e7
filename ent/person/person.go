// Code generated by ent, DO NOT EDIT.

package person

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the person type in the database.
	Label = "person"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldPersonal holds the string denoting the personal field in the database.
	FieldPersonal = "personal"
	// FieldFamily holds the string denoting the family field in the database.
	FieldFamily = "family"
	// FieldEmail holds the string denoting the email field in the database.
	FieldEmail = "email"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeTasks holds the string denoting the tasks edge name in mutations.
	EdgeTasks = "tasks"
	// EdgeAwards holds the string denoting the awards edge name in mutations.
	EdgeAwards = "awards"
	// EdgeTrainingProgresses holds the string denoting the training_progresses edge name in mutations.
	EdgeTrainingProgresses = "training_progresses"
	// EdgeMembershipTasks holds the string denoting the membership_tasks edge name in mutations.
	EdgeMembershipTasks = "membership_tasks"
	// Table holds the table name of the person in the database.
	Table = "persons"
	// TasksTable is the table that holds the tasks relation/edge.
	TasksTable = "tasks"
	// TasksInverseTable is the table name for the Task entity.
	// It exists in this package in order to avoid circular dependency with the "task" package.
	TasksInverseTable = "tasks"
	// TasksColumn is the table column denoting the tasks relation/edge.
	TasksColumn = "person_id"
	// AwardsTable is the table that holds the awards relation/edge.
	AwardsTable = "awards"
	// AwardsInverseTable is the table name for the Award entity.
	// It exists in this package in order to avoid circular dependency with the "award" package.
	AwardsInverseTable = "awards"
	// AwardsColumn is the table column denoting the awards relation/edge.
	AwardsColumn = "person_id"
	// TrainingProgressesTable is the table that holds the training_progresses relation/edge.
	TrainingProgressesTable = "training_progresses"
	// TrainingProgressesInverseTable is the table name for the TrainingProgress entity.
	// It exists in this package in order to avoid circular dependency with the "trainingprogress" package.
	TrainingProgressesInverseTable = "training_progresses"
	// TrainingProgressesColumn is the table column denoting the training_progresses relation/edge.
	TrainingProgressesColumn = "person_id"
	// MembershipTasksTable is the table that holds the membership_tasks relation/edge.
	MembershipTasksTable = "membership_tasks"
	// MembershipTasksInverseTable is the table name for the MembershipTask entity.
	// It exists in this package in order to avoid circular dependency with the "membershiptask" package.
	MembershipTasksInverseTable = "membership_tasks"
	// MembershipTasksColumn is the table column denoting the membership_tasks relation/edge.
	MembershipTasksColumn = "person_id"
)

// Columns holds all SQL columns for person fields.
var Columns = []string{
	FieldID,
	FieldPersonal,
	FieldFamily,
	FieldEmail,
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
	// PersonalValidator is a validator for the "personal" field. It is called by the builders before save.
	PersonalValidator func(string) error
	// DefaultFamily holds the default value on creation for the "family" field.
	DefaultFamily string
	// FamilyValidator is a validator for the "family" field. It is called by the builders before save.
	FamilyValidator func(string) error
	// DefaultEmail holds the default value on creation for the "email" field.
	DefaultEmail string
	// EmailValidator is a validator for the "email" field. It is called by the builders before save.
	EmailValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the Person queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByPersonal orders the results by the personal field.
func ByPersonal(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPersonal, opts...).ToFunc()
}

// ByFamily orders the results by the family field.
func ByFamily(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFamily, opts...).ToFunc()
}

// ByEmail orders the results by the email field.
func ByEmail(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEmail, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByTasksCount orders the results by tasks count.
func ByTasksCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newTasksStep(), opts...)
	}
}

// ByTasks orders the results by tasks terms.
func ByTasks(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newTasksStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByAwardsCount orders the results by awards count.
func ByAwardsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newAwardsStep(), opts...)
	}
}

// ByAwards orders the results by awards terms.
func ByAwards(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAwardsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByTrainingProgressesCount orders the results by training_progresses count.
func ByTrainingProgressesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newTrainingProgressesStep(), opts...)
	}
}

// ByTrainingProgresses orders the results by training_progresses terms.
func ByTrainingProgresses(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newTrainingProgressesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByMembershipTasksCount orders the results by membership_tasks count.
func ByMembershipTasksCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newMembershipTasksStep(), opts...)
	}
}

// ByMembershipTasks orders the results by membership_tasks terms.
func ByMembershipTasks(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newMembershipTasksStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newTasksStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TasksInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, TasksTable, TasksColumn),
	)
}
func newAwardsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AwardsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, AwardsTable, AwardsColumn),
	)
}
func newTrainingProgressesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TrainingProgressesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, TrainingProgressesTable, TrainingProgressesColumn),
	)
}
func newMembershipTasksStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(MembershipTasksInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, MembershipTasksTable, MembershipTasksColumn),
	)
}
