// Code generated by ent, DO NOT EDIT.

package membership

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the membership type in the database.
	Label = "membership"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldVariant holds the string denoting the variant field in the database.
	FieldVariant = "variant"
	// FieldAgreementStart holds the string denoting the agreement_start field in the database.
	FieldAgreementStart = "agreement_start"
	// FieldAgreementEnd holds the string denoting the agreement_end field in the database.
	FieldAgreementEnd = "agreement_end"
	// FieldRolledFromID holds the string denoting the rolled_from_id field in the database.
	FieldRolledFromID = "rolled_from_id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeMembershipTasks holds the string denoting the membership_tasks edge name in mutations.
	EdgeMembershipTasks = "membership_tasks"
	// Table holds the table name of the membership in the database.
	Table = "memberships"
	// MembershipTasksTable is the table that holds the membership_tasks relation/edge.
	MembershipTasksTable = "membership_tasks"
	// MembershipTasksInverseTable is the table name for the MembershipTask entity.
	// It exists in this package in order to avoid circular dependency with the "membershiptask" package.
	MembershipTasksInverseTable = "membership_tasks"
	// MembershipTasksColumn is the table column denoting the membership_tasks relation/edge.
	MembershipTasksColumn = "membership_id"
)

// Columns holds all SQL columns for membership fields.
var Columns = []string{
	FieldID,
	FieldName,
	FieldVariant,
	FieldAgreementStart,
	FieldAgreementEnd,
	FieldRolledFromID,
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
	// NameValidator is a validator for the "name" field. It is called by the builders before save.
	NameValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Variant defines the type for the "variant" enum field.
type Variant string

// Variant values.
const (
	VariantBronze   Variant = "bronze"
	VariantSilver   Variant = "silver"
	VariantGold     Variant = "gold"
	VariantPlatinum Variant = "platinum"
	VariantAlacarte Variant = "alacarte"
)

func (v Variant) String() string {
	return string(v)
}

// VariantValidator is a validator for the "variant" field enum values. It is called by the builders before save.
func VariantValidator(v Variant) error {
	switch v {
	case VariantBronze, VariantSilver, VariantGold, VariantPlatinum, VariantAlacarte:
		return nil
	default:
		return fmt.Errorf("membership: invalid enum value for variant field: %q", v)
	}
}

// OrderOption defines the ordering options for the Membership queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByVariant orders the results by the variant field.
func ByVariant(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVariant, opts...).ToFunc()
}

// ByAgreementStart orders the results by the agreement_start field.
func ByAgreementStart(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAgreementStart, opts...).ToFunc()
}

// ByAgreementEnd orders the results by the agreement_end field.
func ByAgreementEnd(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAgreementEnd, opts...).ToFunc()
}

// ByRolledFromID orders the results by the rolled_from_id field.
func ByRolledFromID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRolledFromID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
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
func newMembershipTasksStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(MembershipTasksInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, MembershipTasksTable, MembershipTasksColumn),
	)
}
