// Code generated by ent, DO NOT EDIT.

package scheduledemail

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the scheduledemail type in the database.
	Label = "scheduled_email"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldState holds the string denoting the state field in the database.
	FieldState = "state"
	// FieldScheduledAt holds the string denoting the scheduled_at field in the database.
	FieldScheduledAt = "scheduled_at"
	// FieldToHeader holds the string denoting the to_header field in the database.
	FieldToHeader = "to_header"
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
	// FieldContextJSON holds the string denoting the context_json field in the database.
	FieldContextJSON = "context_json"
	// FieldToHeaderContextJSON holds the string denoting the to_header_context_json field in the database.
	FieldToHeaderContextJSON = "to_header_context_json"
	// FieldTemplateID holds the string denoting the template_id field in the database.
	FieldTemplateID = "template_id"
	// FieldRelatedTo holds the string denoting the related_to field in the database.
	FieldRelatedTo = "related_to"
	// FieldRelatedID holds the string denoting the related_id field in the database.
	FieldRelatedID = "related_id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeTemplate holds the string denoting the template edge name in mutations.
	EdgeTemplate = "template"
	// EdgeLogs holds the string denoting the logs edge name in mutations.
	EdgeLogs = "logs"
	// EdgeAttachments holds the string denoting the attachments edge name in mutations.
	EdgeAttachments = "attachments"
	// Table holds the table name of the scheduledemail in the database.
	Table = "scheduled_emails"
	// TemplateTable is the table that holds the template relation/edge.
	TemplateTable = "scheduled_emails"
	// TemplateInverseTable is the table name for the EmailTemplate entity.
	// It exists in this package in order to avoid circular dependency with the "emailtemplate" package.
	TemplateInverseTable = "email_templates"
	// TemplateColumn is the table column denoting the template relation/edge.
	TemplateColumn = "template_id"
	// LogsTable is the table that holds the logs relation/edge.
	LogsTable = "scheduled_email_logs"
	// LogsInverseTable is the table name for the ScheduledEmailLog entity.
	// It exists in this package in order to avoid circular dependency with the "scheduledemaillog" package.
	LogsInverseTable = "scheduled_email_logs"
	// LogsColumn is the table column denoting the logs relation/edge.
	LogsColumn = "scheduled_email_id"
	// AttachmentsTable is the table that holds the attachments relation/edge.
	AttachmentsTable = "email_attachments"
	// AttachmentsInverseTable is the table name for the EmailAttachment entity.
	// It exists in this package in order to avoid circular dependency with the "emailattachment" package.
	AttachmentsInverseTable = "email_attachments"
	// AttachmentsColumn is the table column denoting the attachments relation/edge.
	AttachmentsColumn = "scheduled_email_id"
)

// Columns holds all SQL columns for scheduledemail fields.
var Columns = []string{
	FieldID,
	FieldState,
	FieldScheduledAt,
	FieldToHeader,
	FieldFromHeader,
	FieldReplyToHeader,
	FieldCcHeader,
	FieldBccHeader,
	FieldSubject,
	FieldBody,
	FieldContextJSON,
	FieldToHeaderContextJSON,
	FieldTemplateID,
	FieldRelatedTo,
	FieldRelatedID,
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

// State defines the type for the "state" enum field.
type State string

// StateScheduled is the default value of the State enum.
const DefaultState = StateScheduled

// State values.
const (
	StateScheduled State = "scheduled"
	StateLocked    State = "locked"
	StateRunning   State = "running"
	StateSucceeded State = "succeeded"
	StateFailed    State = "failed"
	StateCancelled State = "cancelled"
)

func (s State) String() string {
	return string(s)
}

// StateValidator is a validator for the "state" field enum values. It is called by the builders before save.
func StateValidator(s State) error {
	switch s {
	case StateScheduled, StateLocked, StateRunning, StateSucceeded, StateFailed, StateCancelled:
		return nil
	default:
		return fmt.Errorf("scheduledemail: invalid enum value for state field: %q", s)
	}
}

// RelatedTo defines the type for the "related_to" enum field.
type RelatedTo string

// RelatedTo values.
const (
	RelatedToEvent      RelatedTo = "event"
	RelatedToPerson     RelatedTo = "person"
	RelatedToMembership RelatedTo = "membership"
	RelatedToAward      RelatedTo = "award"
	RelatedToTask       RelatedTo = "task"
)

func (rt RelatedTo) String() string {
	return string(rt)
}

// RelatedToValidator is a validator for the "related_to" field enum values. It is called by the builders before save.
func RelatedToValidator(rt RelatedTo) error {
	switch rt {
	case RelatedToEvent, RelatedToPerson, RelatedToMembership, RelatedToAward, RelatedToTask:
		return nil
	default:
		return fmt.Errorf("scheduledemail: invalid enum value for related_to field: %q", rt)
	}
}

// OrderOption defines the ordering options for the ScheduledEmail queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByState orders the results by the state field.
func ByState(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldState, opts...).ToFunc()
}

// ByScheduledAt orders the results by the scheduled_at field.
func ByScheduledAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScheduledAt, opts...).ToFunc()
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

// ByTemplateID orders the results by the template_id field.
func ByTemplateID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTemplateID, opts...).ToFunc()
}

// ByRelatedTo orders the results by the related_to field.
func ByRelatedTo(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRelatedTo, opts...).ToFunc()
}

// ByRelatedID orders the results by the related_id field.
func ByRelatedID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRelatedID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByTemplateField orders the results by template field.
func ByTemplateField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newTemplateStep(), sql.OrderByField(field, opts...))
	}
}

// ByLogsCount orders the results by logs count.
func ByLogsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newLogsStep(), opts...)
	}
}

// ByLogs orders the results by logs terms.
func ByLogs(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newLogsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByAttachmentsCount orders the results by attachments count.
func ByAttachmentsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newAttachmentsStep(), opts...)
	}
}

// ByAttachments orders the results by attachments terms.
func ByAttachments(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAttachmentsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newTemplateStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TemplateInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, TemplateTable, TemplateColumn),
	)
}
func newLogsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(LogsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, LogsTable, LogsColumn),
	)
}
func newAttachmentsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AttachmentsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, AttachmentsTable, AttachmentsColumn),
	)
}
