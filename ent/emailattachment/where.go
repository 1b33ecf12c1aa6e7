// Code generated by ent, DO NOT EDIT.

package emailattachment

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/carpentries/mailflow/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.EmailAttachment {
	return predicate.EmailAttachment(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.EmailAttachment {
	return predicate.EmailAttachment(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.EmailAttachment {
	return predicate.EmailAttachment(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.EmailAttachment {
	return predicate.EmailAttachment(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.EmailAttachment {
	return predicate.EmailAttachment(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.EmailAttachment {
	return predicate.EmailAttachment(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.EmailAttachment {
	return predicate.EmailAttachment(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.EmailAttachment {
	return predicate.EmailAttachment(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.EmailAttachment {
	return predicate.EmailAttachment(sql.FieldLTE(FieldID, id))
}

// Filename applies equality check predicate on the "filename" field. It's identical to FilenameEQ.
func Filename(v string) predicate.EmailAttachment {
	return predicate.EmailAttachment(sql.FieldEQ(FieldFilename, v))
}

// S3Bucket applies equality check predicate on the "s3_bucket" field. It's identical to S3BucketEQ.
func S3Bucket(v string) predicate.EmailAttachment {
	return predicate.EmailAttachment(sql.FieldEQ(FieldS3Bucket, v))
}

// S3Path applies equality check predicate on the "s3_path" field. It's identical to S3PathEQ.
func S3Path(v string) predicate.EmailAttachment {
	return predicate.EmailAttachment(sql.FieldEQ(FieldS3Path, v))
}

// PresignedURL applies equality check predicate on the "presigned_url" field. It's identical to PresignedURLEQ.
func PresignedURL(v string) predicate.EmailAttachment {
	return predicate.EmailAttachment(sql.FieldEQ(FieldPresignedURL, v))
}

// PresignedURLExpiration applies equality check predicate on the "presigned_url_expiration" field. It's identical to PresignedURLExpirationEQ.
func PresignedURLExpiration(v time.Time) predicate.EmailAttachment {
	return predicate.EmailAttachment(sql.FieldEQ(FieldPresignedURLExpiration, v))
}

// ScheduledEmailID applies equality check predicate on the "scheduled_email_id" field. It's identical to ScheduledEmailIDEQ.
func ScheduledEmailID(v uuid.UUID) predicate.EmailAttachment {
	return predicate.EmailAttachment(sql.FieldEQ(FieldScheduledEmailID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.EmailAttachment {
	return predicate.EmailAttachment(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.EmailAttachment {
	return predicate.EmailAttachment(sql.FieldEQ(FieldUpdatedAt, v))
}

// FilenameEQ applies the EQ predicate on the "filename" field.
func FilenameEQ(v string) predicate.EmailAttachment {
	return predicate.EmailAttachment(sql.FieldEQ(FieldFilename, v))
}

// FilenameNEQ applies the NEQ predicate on the "filename" field.
func FilenameNEQ(v string) predicate.EmailAttachment {
	return predicate.EmailAttachment(sql.FieldNEQ(FieldFilename, v))
}

// FilenameIn applies the In predicate on the "filename" field.
func FilenameIn(vs ...string) predicate.EmailAttachment {
	return predicate.EmailAttachment(sql.FieldIn(FieldFilename, vs...))
}

// FilenameNotIn applies the NotIn predicate on the "filename" field.
func FilenameNotIn(vs ...string) predicate.EmailAttachment {
	return predicate.EmailAttachment(sql.FieldNotIn(FieldFilename, vs...))
}

// FilenameGT applies the GT predicate on the "filename" field.
func FilenameGT(v string) predicate.EmailAttachment {
	return predicate.EmailAttachment(sql.FieldGT(FieldFilename, v))
}

// FilenameGTE applies the GTE predicate on the "filename" field.
func FilenameGTE(v string) predicate.EmailAttachment {
	return predicate.EmailAttachment(sql.FieldGTE(FieldFilename, v))
}

// FilenameLT applies the LT predicate on the "filename" field.
func FilenameLT(v string) predicate.EmailAttachment {
	return predicate.EmailAttachment(sql.FieldLT(FieldFilename, v))
}

// FilenameLTE applies the LTE predicate on the "filename" field.
func FilenameLTE(v string) predicate.EmailAttachment {
	return predicate.EmailAttachment(sql.FieldLTE(FieldFilename, v))
}

// FilenameContains applies the Contains predicate on the "filename" field.
func FilenameContains(v string) predicate.EmailAttachment {
	return predicate.EmailAttachment(sql.FieldContains(FieldFilename, v))
}

// FilenameHasPrefix applies the HasPrefix predicate on the "filename" field.
func FilenameHasPrefix(v string) predicate.EmailAttachment {
	return predicate.EmailAttachment(sql.FieldHasPrefix(FieldFilename, v))
}

// FilenameHasSuffix applies the HasSuffix predicate on the "filename" field.
func FilenameHasSuffix(v string) predicate.EmailAttachment {
	return predicate.EmailAttachment(sql.FieldHasSuffix(FieldFilename, v))
}

// FilenameEqualFold applies the EqualFold predicate on the "filename" field.
func FilenameEqualFold(v string) predicate.EmailAttachment {
	return predicate.EmailAttachment(sql.FieldEqualFold(FieldFilename, v))
}

// FilenameContainsFold applies the ContainsFold predicate on the "filename" field.
func FilenameContainsFold(v string) predicate.EmailAttachment {
	return predicate.EmailAttachment(sql.FieldContainsFold(FieldFilename, v))
}

// S3BucketEQ applies the EQ predicate on the "s3_bucket" field.
func S3BucketEQ(v string) predicate.EmailAttachment {
	return predicate.EmailAttachment(sql.FieldEQ(FieldS3Bucket, v))
}

// S3BucketNEQ applies the NEQ predicate on the "s3_bucket" field.
func S3BucketNEQ(v string) predicate.EmailAttachment {
	return predicate.EmailAttachment(sql.FieldNEQ(FieldS3Bucket, v))
}

// S3BucketIn applies the In predicate on the "s3_bucket" field.
func S3BucketIn(vs ...string) predicate.EmailAttachment {
	return predicate.EmailAttachment(sql.FieldIn(FieldS3Bucket, vs...))
}

// S3BucketNotIn applies the NotIn predicate on the "s3_bucket" field.
func S3BucketNotIn(vs ...string) predicate.EmailAttachment {
	return predicate.EmailAttachment(sql.FieldNotIn(FieldS3Bucket, vs...))
}

// S3BucketGT applies the GT predicate on the "s3_bucket" field.
func S3BucketGT(v string) predicate.EmailAttachment {
	return predicate.EmailAttachment(sql.FieldGT(FieldS3Bucket, v))
}

// S3BucketGTE applies the GTE predicate on the "s3_bucket" field.
func S3BucketGTE(v string) predicate.EmailAttachment {
	return predicate.EmailAttachment(sql.FieldGTE(FieldS3Bucket, v))
}

// S3BucketLT applies the LT predicate on the "s3_bucket" field.
func S3BucketLT(v string) predicate.EmailAttachment {
	return predicate.EmailAttachment(sql.FieldLT(FieldS3Bucket, v))
}

// S3BucketLTE applies the LTE predicate on the "s3_bucket" field.
func S3BucketLTE(v string) predicate.EmailAttachment {
	return predicate.EmailAttachment(sql.FieldLTE(FieldS3Bucket, v))
}

// S3BucketContains applies the Contains predicate on the "s3_bucket" field.
func S3BucketContains(v string) predicate.EmailAttachment {
	return predicate.EmailAttachment(sql.FieldContains(FieldS3Bucket, v))
}

// S3BucketHasPrefix applies the HasPrefix predicate on the "s3_bucket" field.
func S3BucketHasPrefix(v string) predicate.EmailAttachment {
	return predicate.EmailAttachment(sql.FieldHasPrefix(FieldS3Bucket, v))
}

// S3BucketHasSuffix applies the HasSuffix predicate on the "s3_bucket" field.
func S3BucketHasSuffix(v string) predicate.EmailAttachment {
	return predicate.EmailAttachment(sql.FieldHasSuffix(FieldS3Bucket, v))
}

// S3BucketEqualFold applies the EqualFold predicate on the "s3_bucket" field.
func S3BucketEqualFold(v string) predicate.EmailAttachment {
	return predicate.EmailAttachment(sql.FieldEqualFold(FieldS3Bucket, v))
}

// S3BucketContainsFold applies the ContainsFold predicate on the "s3_bucket" field.
func S3BucketContainsFold(v string) predicate.EmailAttachment {
	return predicate.EmailAttachment(sql.FieldContainsFold(FieldS3Bucket, v))
}

// S3PathEQ applies the EQ predicate on the "s3_path" field.
func S3PathEQ(v string) predicate.EmailAttachment {
	return predicate.EmailAttachment(sql.FieldEQ(FieldS3Path, v))
}

// S3PathNEQ applies the NEQ predicate on the "s3_path" field.
func S3PathNEQ(v string) predicate.EmailAttachment {
	return predicate.EmailAttachment(sql.FieldNEQ(FieldS3Path, v))
}

// S3PathIn applies the In predicate on the "s3_path" field.
func S3PathIn(vs ...string) predicate.EmailAttachment {
	return predicate.EmailAttachment(sql.FieldIn(FieldS3Path, vs...))
}

// S3PathNotIn applies the NotIn predicate on the "s3_path" field.
func S3PathNotIn(vs ...string) predicate.EmailAttachment {
	return predicate.EmailAttachment(sql.FieldNotIn(FieldS3Path, vs...))
}

// S3PathGT applies the GT predicate on the "s3_path" field.
func S3PathGT(v string) predicate.EmailAttachment {
	return predicate.EmailAttachment(sql.FieldGT(FieldS3Path, v))
}

// S3PathGTE applies the GTE predicate on the "s3_path" field.
func S3PathGTE(v string) predicate.EmailAttachment {
	return predicate.EmailAttachment(sql.FieldGTE(FieldS3Path, v))
}

// S3PathLT applies the LT predicate on the "s3_path" field.
func S3PathLT(v string) predicate.EmailAttachment {
	return predicate.EmailAttachment(sql.FieldLT(FieldS3Path, v))
}

// S3PathLTE applies the LTE predicate on the "s3_path" field.
func S3PathLTE(v string) predicate.EmailAttachment {
	return predicate.EmailAttachment(sql.FieldLTE(FieldS3Path, v))
}

// S3PathContains applies the Contains predicate on the "s3_path" field.
func S3PathContains(v string) predicate.EmailAttachment {
	return predicate.EmailAttachment(sql.FieldContains(FieldS3Path, v))
}

// S3PathHasPrefix applies the HasPrefix predicate on the "s3_path" field.
func S3PathHasPrefix(v string) predicate.EmailAttachment {
	return predicate.EmailAttachment(sql.FieldHasPrefix(FieldS3Path, v))
}

// S3PathHasSuffix applies the HasSuffix predicate on the "s3_path" field.
func S3PathHasSuffix(v string) predicate.EmailAttachment {
	return predicate.EmailAttachment(sql.FieldHasSuffix(FieldS3Path, v))
}

// S3PathEqualFold applies the EqualFold predicate on the "s3_path" field.
func S3PathEqualFold(v string) predicate.EmailAttachment {
	return predicate.EmailAttachment(sql.FieldEqualFold(FieldS3Path, v))
}

// S3PathContainsFold applies the ContainsFold predicate on the "s3_path" field.
func S3PathContainsFold(v string) predicate.EmailAttachment {
	return predicate.EmailAttachment(sql.FieldContainsFold(FieldS3Path, v))
}

// PresignedURLEQ applies the EQ predicate on the "presigned_url" field.
func PresignedURLEQ(v string) predicate.EmailAttachment {
	return predicate.EmailAttachment(sql.FieldEQ(FieldPresignedURL, v))
}

// PresignedURLNEQ applies the NEQ predicate on the "presigned_url" field.
func PresignedURLNEQ(v string) predicate.EmailAttachment {
	return predicate.EmailAttachment(sql.FieldNEQ(FieldPresignedURL, v))
}

// PresignedURLIn applies the In predicate on the "presigned_url" field.
func PresignedURLIn(vs ...string) predicate.EmailAttachment {
	return predicate.EmailAttachment(sql.FieldIn(FieldPresignedURL, vs...))
}

// PresignedURLNotIn applies the NotIn predicate on the "presigned_url" field.
func PresignedURLNotIn(vs ...string) predicate.EmailAttachment {
	return predicate.EmailAttachment(sql.FieldNotIn(FieldPresignedURL, vs...))
}

// PresignedURLGT applies the GT predicate on the "presigned_url" field.
func PresignedURLGT(v string) predicate.EmailAttachment {
	return predicate.EmailAttachment(sql.FieldGT(FieldPresignedURL, v))
}

// PresignedURLGTE applies the GTE predicate on the "presigned_url" field.
func PresignedURLGTE(v string) predicate.EmailAttachment {
	return predicate.EmailAttachment(sql.FieldGTE(FieldPresignedURL, v))
}

// PresignedURLLT applies the LT predicate on the "presigned_url" field.
func PresignedURLLT(v string) predicate.EmailAttachment {
	return predicate.EmailAttachment(sql.FieldLT(FieldPresignedURL, v))
}

// PresignedURLLTE applies the LTE predicate on the "presigned_url" field.
func PresignedURLLTE(v string) predicate.EmailAttachment {
	return predicate.EmailAttachment(sql.FieldLTE(FieldPresignedURL, v))
}

// PresignedURLContains applies the Contains predicate on the "presigned_url" field.
func PresignedURLContains(v string) predicate.EmailAttachment {
	return predicate.EmailAttachment(sql.FieldContains(FieldPresignedURL, v))
}

// PresignedURLHasPrefix applies the HasPrefix predicate on the "presigned_url" field.
func PresignedURLHasPrefix(v string) predicate.EmailAttachment {
	return predicate.EmailAttachment(sql.FieldHasPrefix(FieldPresignedURL, v))
}

// PresignedURLHasSuffix applies the HasSuffix predicate on the "presigned_url" field.
func PresignedURLHasSuffix(v string) predicate.EmailAttachment {
	return predicate.EmailAttachment(sql.FieldHasSuffix(FieldPresignedURL, v))
}

// PresignedURLIsNil applies the IsNil predicate on the "presigned_url" field.
func PresignedURLIsNil() predicate.EmailAttachment {
	return predicate.EmailAttachment(sql.FieldIsNull(FieldPresignedURL))
}

// PresignedURLNotNil applies the NotNil predicate on the "presigned_url" field.
func PresignedURLNotNil() predicate.EmailAttachment {
	return predicate.EmailAttachment(sql.FieldNotNull(FieldPresignedURL))
}

// PresignedURLEqualFold applies the EqualFold predicate on the "presigned_url" field.
func PresignedURLEqualFold(v string) predicate.EmailAttachment {
	return predicate.EmailAttachment(sql.FieldEqualFold(FieldPresignedURL, v))
}

// PresignedURLContainsFold applies the ContainsFold predicate on the "presigned_url" field.
func PresignedURLContainsFold(v string) predicate.EmailAttachment {
	return predicate.EmailAttachment(sql.FieldContainsFold(FieldPresignedURL, v))
}

// PresignedURLExpirationEQ applies the EQ predicate on the "presigned_url_expiration" field.
func PresignedURLExpirationEQ(v time.Time) predicate.EmailAttachment {
	return predicate.EmailAttachment(sql.FieldEQ(FieldPresignedURLExpiration, v))
}

// PresignedURLExpirationNEQ applies the NEQ predicate on the "presigned_url_expiration" field.
func PresignedURLExpirationNEQ(v time.Time) predicate.EmailAttachment {
	return predicate.EmailAttachment(sql.FieldNEQ(FieldPresignedURLExpiration, v))
}

// PresignedURLExpirationIn applies the In predicate on the "presigned_url_expiration" field.
func PresignedURLExpirationIn(vs ...time.Time) predicate.EmailAttachment {
	return predicate.EmailAttachment(sql.FieldIn(FieldPresignedURLExpiration, vs...))
}

// PresignedURLExpirationNotIn applies the NotIn predicate on the "presigned_url_expiration" field.
func PresignedURLExpirationNotIn(vs ...time.Time) predicate.EmailAttachment {
	return predicate.EmailAttachment(sql.FieldNotIn(FieldPresignedURLExpiration, vs...))
}

// PresignedURLExpirationGT applies the GT predicate on the "presigned_url_expiration" field.
func PresignedURLExpirationGT(v time.Time) predicate.EmailAttachment {
	return predicate.EmailAttachment(sql.FieldGT(FieldPresignedURLExpiration, v))
}

// PresignedURLExpirationGTE applies the GTE predicate on the "presigned_url_expiration" field.
func PresignedURLExpirationGTE(v time.Time) predicate.EmailAttachment {
	return predicate.EmailAttachment(sql.FieldGTE(FieldPresignedURLExpiration, v))
}

// PresignedURLExpirationLT applies the LT predicate on the "presigned_url_expiration" field.
func PresignedURLExpirationLT(v time.Time) predicate.EmailAttachment {
	return predicate.EmailAttachment(sql.FieldLT(FieldPresignedURLExpiration, v))
}

// PresignedURLExpirationLTE applies the LTE predicate on the "presigned_url_expiration" field.
func PresignedURLExpirationLTE(v time.Time) predicate.EmailAttachment {
	return predicate.EmailAttachment(sql.FieldLTE(FieldPresignedURLExpiration, v))
}

// PresignedURLExpirationIsNil applies the IsNil predicate on the "presigned_url_expiration" field.
func PresignedURLExpirationIsNil() predicate.EmailAttachment {
	return predicate.EmailAttachment(sql.FieldIsNull(FieldPresignedURLExpiration))
}

// PresignedURLExpirationNotNil applies the NotNil predicate on the "presigned_url_expiration" field.
func PresignedURLExpirationNotNil() predicate.EmailAttachment {
	return predicate.EmailAttachment(sql.FieldNotNull(FieldPresignedURLExpiration))
}

// ScheduledEmailIDEQ applies the EQ predicate on the "scheduled_email_id" field.
func ScheduledEmailIDEQ(v uuid.UUID) predicate.EmailAttachment {
	return predicate.EmailAttachment(sql.FieldEQ(FieldScheduledEmailID, v))
}

// ScheduledEmailIDNEQ applies the NEQ predicate on the "scheduled_email_id" field.
func ScheduledEmailIDNEQ(v uuid.UUID) predicate.EmailAttachment {
	return predicate.EmailAttachment(sql.FieldNEQ(FieldScheduledEmailID, v))
}

// ScheduledEmailIDIn applies the In predicate on the "scheduled_email_id" field.
func ScheduledEmailIDIn(vs ...uuid.UUID) predicate.EmailAttachment {
	return predicate.EmailAttachment(sql.FieldIn(FieldScheduledEmailID, vs...))
}

// ScheduledEmailIDNotIn applies the NotIn predicate on the "scheduled_email_id" field.
func ScheduledEmailIDNotIn(vs ...uuid.UUID) predicate.EmailAttachment {
	return predicate.EmailAttachment(sql.FieldNotIn(FieldScheduledEmailID, vs...))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.EmailAttachment {
	return predicate.EmailAttachment(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.EmailAttachment {
	return predicate.EmailAttachment(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.EmailAttachment {
	return predicate.EmailAttachment(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.EmailAttachment {
	return predicate.EmailAttachment(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.EmailAttachment {
	return predicate.EmailAttachment(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.EmailAttachment {
	return predicate.EmailAttachment(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.EmailAttachment {
	return predicate.EmailAttachment(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.EmailAttachment {
	return predicate.EmailAttachment(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.EmailAttachment {
	return predicate.EmailAttachment(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.EmailAttachment {
	return predicate.EmailAttachment(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.EmailAttachment {
	return predicate.EmailAttachment(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.EmailAttachment {
	return predicate.EmailAttachment(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.EmailAttachment {
	return predicate.EmailAttachment(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.EmailAttachment {
	return predicate.EmailAttachment(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.EmailAttachment {
	return predicate.EmailAttachment(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.EmailAttachment {
	return predicate.EmailAttachment(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasEmail applies the HasEdge predicate on the "email" edge.
func HasEmail() predicate.EmailAttachment {
	return predicate.EmailAttachment(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, EmailTable, EmailColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasEmailWith applies the HasEdge predicate on the "email" edge with a given conditions (other predicates).
func HasEmailWith(preds ...predicate.ScheduledEmail) predicate.EmailAttachment {
	return predicate.EmailAttachment(func(s *sql.Selector) {
		step := newEmailStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.EmailAttachment) predicate.EmailAttachment {
	return predicate.EmailAttachment(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.EmailAttachment) predicate.EmailAttachment {
	return predicate.EmailAttachment(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.EmailAttachment) predicate.EmailAttachment {
	return predicate.EmailAttachment(sql.NotPredicates(p))
}
