// Code generated by ent, DO NOT EDIT.

package emailattachment

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the emailattachment type in the database.
	Label = "email_attachment"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldFilename holds the string denoting the filename field in the database.
	FieldFilename = "filename"
	// FieldS3Bucket holds the string denoting the s3_bucket field in the database.
	FieldS3Bucket = "s3_bucket"
	// FieldS3Path holds the string denoting the s3_path field in the database.
	FieldS3Path = "s3_path"
	// FieldPresignedURL holds the string denoting the presigned_url field in the database.
	FieldPresignedURL = "presigned_url"
	// FieldPresignedURLExpiration holds the string denoting the presigned_url_expiration field in the database.
	FieldPresignedURLExpiration = "presigned_url_expiration"
	// FieldScheduledEmailID holds the string denoting the scheduled_email_id field in the database.
	FieldScheduledEmailID = "scheduled_email_id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeEmail holds the string denoting the email edge name in mutations.
	EdgeEmail = "email"
	// Table holds the table name of the emailattachment in the database.
	Table = "email_attachments"
	// EmailTable is the table that holds the email relation/edge.
	EmailTable = "email_attachments"
	// EmailInverseTable is the table name for the ScheduledEmail entity.
	// It exists in this package in order to avoid circular dependency with the "scheduledemail" package.
	EmailInverseTable = "scheduled_emails"
	// EmailColumn is the table column denoting the email relation/edge.
	EmailColumn = "scheduled_email_id"
)

// Columns holds all SQL columns for emailattachment fields.
var Columns = []string{
	FieldID,
	FieldFilename,
	FieldS3Bucket,
	FieldS3Path,
	FieldPresignedURL,
	FieldPresignedURLExpiration,
	FieldScheduledEmailID,
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
	// FilenameValidator is a validator for the "filename" field. It is called by the builders before save.
	FilenameValidator func(string) error
	// S3BucketValidator is a validator for the "s3_bucket" field. It is called by the builders before save.
	S3BucketValidator func(string) error
	// S3PathValidator is a validator for the "s3_path" field. It is called by the builders before save.
	S3PathValidator func(string) error
	// DefaultPresignedURL holds the default value on creation for the "presigned_url" field.
	DefaultPresignedURL string
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the EmailAttachment queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByFilename orders the results by the filename field.
func ByFilename(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFilename, opts...).ToFunc()
}

// ByS3Bucket orders the results by the s3_bucket field.
func ByS3Bucket(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldS3Bucket, opts...).ToFunc()
}

// ByS3Path orders the results by the s3_path field.
func ByS3Path(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldS3Path, opts...).ToFunc()
}

// ByPresignedURL orders the results by the presigned_url field.
func ByPresignedURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPresignedURL, opts...).ToFunc()
}

// ByPresignedURLExpiration orders the results by the presigned_url_expiration field.
func ByPresignedURLExpiration(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPresignedURLExpiration, opts...).ToFunc()
}

// ByScheduledEmailID orders the results by the scheduled_email_id field.
func ByScheduledEmailID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScheduledEmailID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
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
