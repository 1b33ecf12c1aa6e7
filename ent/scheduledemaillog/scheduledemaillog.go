// Code generated by ent, DO NOT EDIT.

package scheduledemaillog

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the scheduledemaillog type in the database.
	Label = "scheduled_email_log"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldDetails holds the string denoting the details field in the database.
	FieldDetails = "details"
	// FieldStateBefore holds the string denoting the state_before field in the database.
	FieldStateBefore = "state_before"
	// FieldStateAfter holds the string denoting the state_after field in the database.
	FieldStateAfter = "state_after"
	// FieldAuthorID holds the string denoting the author_id field in the database.
	FieldAuthorID = "author_id"
	// FieldScheduledEmailID holds the string denoting the scheduled_email_id field in the database.
	FieldScheduledEmailID = "scheduled_email_id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeEmail holds the string denoting the email edge name in mutations.
	EdgeEmail = "email"
	// Table holds the table name of the scheduledemaillog in the database.
	Table = "scheduled_email_logs"
	// EmailTable is the table that holds the email relation/edge.
	EmailTable = "scheduled_email_logs"
	// EmailInverseTable is the table name for the ScheduledEmail entity.
	// It exists in this package in order to avoid circular dependency with the "scheduledemail" package.
	EmailInverseTable = "scheduled_emails"
	// EmailColumn is the table column denoting the email relation/edge.
	EmailColumn = "scheduled_email_id"
)

// Columns holds all SQL columns for scheduledemaillog fields.
var Columns = []string{
	FieldID,
	FieldDetails,
	FieldStateBefore,
	FieldStateAfter,
	FieldAuthorID,
	FieldScheduledEmailID,
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
	// DetailsValidator is a validator for the "details" field. It is called by the builders before save.
	DetailsValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// StateBefore defines the type for the "state_before" enum field.
type StateBefore string

// StateBefore values.
const (
	StateBeforeScheduled StateBefore = "scheduled"
	StateBeforeLocked    StateBefore = "locked"
	StateBeforeRunning   StateBefore = "running"
	StateBeforeSucceeded StateBefore = "succeeded"
	StateBeforeFailed    StateBefore = "failed"
	StateBeforeCancelled StateBefore = "cancelled"
)

func (sb StateBefore) String() string {
	return string(sb)
}

// StateBeforeValidator is a validator for the "state_before" field enum values. It is called by the builders before save.
func StateBeforeValidator(sb StateBefore) error {
	switch sb {
	case StateBeforeScheduled, StateBeforeLocked, StateBeforeRunning, StateBeforeSucceeded, StateBeforeFailed, StateBeforeCancelled:
		return nil
	default:
		return fmt.Errorf("scheduledemaillog: invalid enum value for state_before field: %q", sb)
	}
}

// StateAfter defines the type for the "state_after" enum field.
type StateAfter string

// StateAfter values.
const (
	StateAfterScheduled StateAfter = "scheduled"
	StateAfterLocked    StateAfter = "locked"
	StateAfterRunning   StateAfter = "running"
	StateAfterSucceeded StateAfter = "succeeded"
	StateAfterFailed    StateAfter = "failed"
	StateAfterCancelled StateAfter = "cancelled"
)

func (sa StateAfter) String() string {
	return string(sa)
}

// StateAfterValidator is a validator for the "state_after" field enum values. It is called by the builders before save.
func StateAfterValidator(sa StateAfter) error {
	switch sa {
	case StateAfterScheduled, StateAfterLocked, StateAfterRunning, StateAfterSucceeded, StateAfterFailed, StateAfterCancelled:
		return nil
	default:
		return fmt.Errorf("scheduledemaillog: invalid enum value for state_after field: %q", sa)
	}
}

// OrderOption defines the ordering options for the ScheduledEmailLog queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByDetails orders the results by the details field.
func ByDetails(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDetails, opts...).ToFunc()
}

// ByStateBefore orders the results by the state_before field.
func ByStateBefore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStateBefore, opts...).ToFunc()
}

// ByStateAfter orders the results by the state_after field.
func ByStateAfter(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStateAfter, opts...).ToFunc()
}

// ByAuthorID orders the results by the author_id field.
func ByAuthorID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAuthorID, opts...).ToFunc()
}

// ByScheduledEmailID orders the results by the scheduled_email_id field.
func ByScheduledEmailID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScheduledEmailID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByEmailField orders the results by email field.
func ByEmailField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newEmailStep(), sql.OrderByField(field, opts...))
	}
}
func newEmailStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(EmailInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, EmailTable, EmailColumn),
	)
}
