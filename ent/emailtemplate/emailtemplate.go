// Code generated by ent, DO NOT EDIT.

package emailtemplate

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the emailtemplate type in the database.
	Label = "email_template"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldSignal holds the string denoting the signal field in the database.
	FieldSignal = "signal"
	// FieldActive holds the string denoting the active field in the database.
	FieldActive = "active"
	// FieldFromHeader holds the string denoting the from_header field in the database.
	FieldFromHeader = "from_header"
	// FieldReplyToHeader holds the string denoting the reply_to_header field in the database.
	FieldReplyToHeader = "reply_to_header"
	// FieldCcHeader holds the string denoting the cc_header field in the database.
	FieldCcHeader = "cc_header"
	// FieldBccHeader holds the string denoting the bcc_header field in the database.
	FieldBccHeader = "bcc_header"
	// FieldSubject holds the string denoting the subject field in the database.
	FieldSubject = "subject"
	// FieldBody holds the string denoting the body field in the database.
	FieldBody = "body"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeScheduledEmails holds the string denoting the scheduled_emails edge name in mutations.
	EdgeScheduledEmails = "scheduled_emails"
	// Table holds the table name of the emailtemplate in the database.
	Table = "email_templates"
	// ScheduledEmailsTable is the table that holds the scheduled_emails relation/edge.
	ScheduledEmailsTable = "scheduled_emails"
	// ScheduledEmailsInverseTable is the table name for the ScheduledEmail entity.
	// It exists in this package in order to avoid circular dependency with the "scheduledemail" package.
	ScheduledEmailsInverseTable = "scheduled_emails"
	// ScheduledEmailsColumn is the table column denoting the scheduled_emails relation/edge.
	ScheduledEmailsColumn = "template_id"
)

// Columns holds all SQL columns for emailtemplate fields.
var Columns = []string{
	FieldID,
	FieldName,
	FieldSignal,
	FieldActive,
	FieldFromHeader,
	FieldReplyToHeader,
	FieldCcHeader,
	FieldBccHeader,
	FieldSubject,
	FieldBody,
	FieldCreatedAt,
	FieldUpdatedAt,
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
	// NameValidator is a validator for the "name" field. It is called by the builders before save.
	NameValidator func(string) error
	// SignalValidator is a validator for the "signal" field. It is called by the builders before save.
	SignalValidator func(string) error
	// DefaultActive holds the default value on creation for the "active" field.
	DefaultActive bool
	// FromHeaderValidator is a validator for the "from_header" field. It is called by the builders before save.
	FromHeaderValidator func(string) error
	// DefaultReplyToHeader holds the default value on creation for the "reply_to_header" field.
	DefaultReplyToHeader string
	// SubjectValidator is a validator for the "subject" field. It is called by the builders before save.
	SubjectValidator func(string) error
	// BodyValidator is a validator for the "body" field. It is called by the builders before save.
	BodyValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the EmailTemplate queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// BySignal orders the results by the signal field.
func BySignal(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSignal, opts...).ToFunc()
}

// ByActive orders the results by the active field.
func ByActive(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActive, opts...).ToFunc()
}

// ByFromHeader orders the results by the from_header field.
func ByFromHeader(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFromHeader, opts...).ToFunc()
}

// ByReplyToHeader orders the results by the reply_to_header field.
func ByReplyToHeader(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReplyToHeader, opts...).ToFunc()
}

// BySubject orders the results by the subject field.
func BySubject(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubject, opts...).ToFunc()
}

// ByBody orders the results by the body field.
func ByBody(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBody, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByScheduledEmailsCount orders the results by scheduled_emails count.
func ByScheduledEmailsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newScheduledEmailsStep(), opts...)
	}
}

// ByScheduledEmails orders the results by scheduled_emails terms.
func ByScheduledEmails(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newScheduledEmailsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newScheduledEmailsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ScheduledEmailsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ScheduledEmailsTable, ScheduledEmailsColumn),
	)
}
