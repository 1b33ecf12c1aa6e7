// Code generated by ent, DO NOT EDIT.

package event

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the event type in the database.
	Label = "event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSlug holds the string denoting the slug field in the database.
	FieldSlug = "slug"
	// FieldStartDate holds the string denoting the start_date field in the database.
	FieldStartDate = "start_date"
	// FieldEndDate holds the string denoting the end_date field in the database.
	FieldEndDate = "end_date"
	// FieldURL holds the string denoting the url field in the database.
	FieldURL = "url"
	// FieldTags holds the string denoting the tags field in the database.
	FieldTags = "tags"
	// FieldOpenRecruitment holds the string denoting the open_recruitment field in the database.
	FieldOpenRecruitment = "open_recruitment"
	// FieldAdministratorID holds the string denoting the administrator_id field in the database.
	FieldAdministratorID = "administrator_id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeAdministrator holds the string denoting the administrator edge name in mutations.
	EdgeAdministrator = "administrator"
	// EdgeEventTasks holds the string denoting the event_tasks edge name in mutations.
	EdgeEventTasks = "event_tasks"
	// Table holds the table name of the event in the database.
	Table = "events"
	// AdministratorTable is the table that holds the administrator relation/edge.
	AdministratorTable = "events"
	// AdministratorInverseTable is the table name for the Organization entity.
	// It exists in this package in order to avoid circular dependency with the "organization" package.
	AdministratorInverseTable = "organizations"
	// AdministratorColumn is the table column denoting the administrator relation/edge.
	AdministratorColumn = "administrator_id"
	// EventTasksTable is the table that holds the event_tasks relation/edge.
	EventTasksTable = "tasks"
	// EventTasksInverseTable is the table name for the Task entity.
	// It exists in this package in order to avoid circular dependency with the "task" package.
	EventTasksInverseTable = "tasks"
	// EventTasksColumn is the table column denoting the event_tasks relation/edge.
	EventTasksColumn = "event_id"
)

// Columns holds all SQL columns for event fields.
var Columns = []string{
	FieldID,
	FieldSlug,
	FieldStartDate,
	FieldEndDate,
	FieldURL,
	FieldTags,
	FieldOpenRecruitment,
	FieldAdministratorID,
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
	// SlugValidator is a validator for the "slug" field. It is called by the builders before save.
	SlugValidator func(string) error
	// DefaultURL holds the default value on creation for the "url" field.
	DefaultURL string
	// DefaultOpenRecruitment holds the default value on creation for the "open_recruitment" field.
	DefaultOpenRecruitment bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the Event queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySlug orders the results by the slug field.
func BySlug(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSlug, opts...).ToFunc()
}

// ByStartDate orders the results by the start_date field.
func ByStartDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartDate, opts...).ToFunc()
}

// ByEndDate orders the results by the end_date field.
func ByEndDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEndDate, opts...).ToFunc()
}

// ByURL orders the results by the url field.
func ByURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldURL, opts...).ToFunc()
}

// ByOpenRecruitment orders the results by the open_recruitment field.
func ByOpenRecruitment(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOpenRecruitment, opts...).ToFunc()
}

// ByAdministratorID orders the results by the administrator_id field.
func ByAdministratorID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAdministratorID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByAdministratorField orders the results by administrator field.
func ByAdministratorField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAdministratorStep(), sql.OrderByField(field, opts...))
	}
}

// ByEventTasksCount orders the results by event_tasks count.
func ByEventTasksCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newEventTasksStep(), opts...)
	}
}

// ByEventTasks orders the results by event_tasks terms.
func ByEventTasks(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newEventTasksStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newAdministratorStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AdministratorInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, AdministratorTable, AdministratorColumn),
	)
}
func newEventTasksStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(EventTasksInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, EventTasksTable, EventTasksColumn),
	)
}
