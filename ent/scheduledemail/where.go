// Code generated by ent, DO NOT EDIT.

package scheduledemail

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/carpentries/mailflow/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.ScheduledEmail {
	return predicate.ScheduledEmail(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.ScheduledEmail {
	return predicate.ScheduledEmail(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.ScheduledEmail {
	return predicate.ScheduledEmail(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.ScheduledEmail {
	return predicate.ScheduledEmail(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.ScheduledEmail {
	return predicate.ScheduledEmail(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.ScheduledEmail {
	return predicate.ScheduledEmail(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.ScheduledEmail {
	return predicate.ScheduledEmail(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.ScheduledEmail {
	return predicate.ScheduledEmail(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.ScheduledEmail {
	return predicate.ScheduledEmail(sql.FieldLTE(FieldID, id))
}

// ScheduledAt applies equality check predicate on the "scheduled_at" field. It's identical to ScheduledAtEQ.
func ScheduledAt(v time.Time) predicate.ScheduledEmail {
	return predicate.ScheduledEmail(sql.FieldEQ(FieldScheduledAt, v))
}

// FromHeader applies equality check predicate on the "from_header" field. It's identical to FromHeaderEQ.
func FromHeader(v string) predicate.ScheduledEmail {
	return predicate.ScheduledEmail(sql.FieldEQ(FieldFromHeader, v))
}

// ReplyToHeader applies equality check predicate on the "reply_to_header" field. It's identical to ReplyToHeaderEQ.
func ReplyToHeader(v string) predicate.ScheduledEmail {
	return predicate.ScheduledEmail(sql.FieldEQ(FieldReplyToHeader, v))
}

// Subject applies equality check predicate on the "subject" field. It's identical to SubjectEQ.
func Subject(v string) predicate.ScheduledEmail {
	return predicate.ScheduledEmail(sql.FieldEQ(FieldSubject, v))
}

// Body applies equality check predicate on the "body" field. It's identical to BodyEQ.
func Body(v string) predicate.ScheduledEmail {
	return predicate.ScheduledEmail(sql.FieldEQ(FieldBody, v))
}

// TemplateID applies equality check predicate on the "template_id" field. It's identical to TemplateIDEQ.
func TemplateID(v uuid.UUID) predicate.ScheduledEmail {
	return predicate.ScheduledEmail(sql.FieldEQ(FieldTemplateID, v))
}

// RelatedID applies equality check predicate on the "related_id" field. It's identical to RelatedIDEQ.
func RelatedID(v int) predicate.ScheduledEmail {
	return predicate.ScheduledEmail(sql.FieldEQ(FieldRelatedID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ScheduledEmail {
	return predicate.ScheduledEmail(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.ScheduledEmail {
	return predicate.ScheduledEmail(sql.FieldEQ(FieldUpdatedAt, v))
}

// StateEQ applies the EQ predicate on the "state" field.
func StateEQ(v State) predicate.ScheduledEmail {
	return predicate.ScheduledEmail(sql.FieldEQ(FieldState, v))
}

// StateNEQ applies the NEQ predicate on the "state" field.
func StateNEQ(v State) predicate.ScheduledEmail {
	return predicate.ScheduledEmail(sql.FieldNEQ(FieldState, v))
}

// StateIn applies the In predicate on the "state" field.
func StateIn(vs ...State) predicate.ScheduledEmail {
	return predicate.ScheduledEmail(sql.FieldIn(FieldState, vs...))
}

// StateNotIn applies the NotIn predicate on the "state" field.
func StateNotIn(vs ...State) predicate.ScheduledEmail {
	return predicate.ScheduledEmail(sql.FieldNotIn(FieldState, vs...))
}

// ScheduledAtEQ applies the EQ predicate on the "scheduled_at" field.
func ScheduledAtEQ(v time.Time) predicate.ScheduledEmail {
	return predicate.ScheduledEmail(sql.FieldEQ(FieldScheduledAt, v))
}

// ScheduledAtNEQ applies the NEQ predicate on the "scheduled_at" field.
func ScheduledAtNEQ(v time.Time) predicate.ScheduledEmail {
	return predicate.ScheduledEmail(sql.FieldNEQ(FieldScheduledAt, v))
}

// ScheduledAtIn applies the In predicate on the "scheduled_at" field.
func ScheduledAtIn(vs ...time.Time) predicate.ScheduledEmail {
	return predicate.ScheduledEmail(sql.FieldIn(FieldScheduledAt, vs...))
}

// ScheduledAtNotIn applies the NotIn predicate on the "scheduled_at" field.
func ScheduledAtNotIn(vs ...time.Time) predicate.ScheduledEmail {
	return predicate.ScheduledEmail(sql.FieldNotIn(FieldScheduledAt, vs...))
}

// ScheduledAtGT applies the GT predicate on the "scheduled_at" field.
func ScheduledAtGT(v time.Time) predicate.ScheduledEmail {
	return predicate.ScheduledEmail(sql.FieldGT(FieldScheduledAt, v))
}

// ScheduledAtGTE applies the GTE predicate on the "scheduled_at" field.
func ScheduledAtGTE(v time.Time) predicate.ScheduledEmail {
	return predicate.ScheduledEmail(sql.FieldGTE(FieldScheduledAt, v))
}

// ScheduledAtLT applies the LT predicate on the "scheduled_at" field.
func ScheduledAtLT(v time.Time) predicate.ScheduledEmail {
	return predicate.ScheduledEmail(sql.FieldLT(FieldScheduledAt, v))
}

// ScheduledAtLTE applies the LTE predicate on the "scheduled_at" field.
func ScheduledAtLTE(v time.Time) predicate.ScheduledEmail {
	return predicate.ScheduledEmail(sql.FieldLTE(FieldScheduledAt, v))
}

// FromHeaderEQ applies the EQ predicate on the "from_header" field.
func FromHeaderEQ(v string) predicate.ScheduledEmail {
	return predicate.ScheduledEmail(sql.FieldEQ(FieldFromHeader, v))
}

// FromHeaderNEQ applies the NEQ predicate on the "from_header" field.
func FromHeaderNEQ(v string) predicate.ScheduledEmail {
	return predicate.ScheduledEmail(sql.FieldNEQ(FieldFromHeader, v))
}

// FromHeaderIn applies the In predicate on the "from_header" field.
func FromHeaderIn(vs ...string) predicate.ScheduledEmail {
	return predicate.ScheduledEmail(sql.FieldIn(FieldFromHeader, vs...))
}

// FromHeaderNotIn applies the NotIn predicate on the "from_header" field.
func FromHeaderNotIn(vs ...string) predicate.ScheduledEmail {
	return predicate.ScheduledEmail(sql.FieldNotIn(FieldFromHeader, vs...))
}

// FromHeaderGT applies the GT predicate on the "from_header" field.
func FromHeaderGT(v string) predicate.ScheduledEmail {
	return predicate.ScheduledEmail(sql.FieldGT(FieldFromHeader, v))
}

// FromHeaderGTE applies the GTE predicate on the "from_header" field.
func FromHeaderGTE(v string) predicate.ScheduledEmail {
	return predicate.ScheduledEmail(sql.FieldGTE(FieldFromHeader, v))
}

// FromHeaderLT applies the LT predicate on the "from_header" field.
func FromHeaderLT(v string) predicate.ScheduledEmail {
	return predicate.ScheduledEmail(sql.FieldLT(FieldFromHeader, v))
}

// FromHeaderLTE applies the LTE predicate on the "from_header" field.
func FromHeaderLTE(v string) predicate.ScheduledEmail {
	return predicate.ScheduledEmail(sql.FieldLTE(FieldFromHeader, v))
}

// FromHeaderContains applies the Contains predicate on the "from_header" field.
func FromHeaderContains(v string) predicate.ScheduledEmail {
	return predicate.ScheduledEmail(sql.FieldContains(FieldFromHeader, v))
}

// FromHeaderHasPrefix applies the HasPrefix predicate on the "from_header" field.
func FromHeaderHasPrefix(v string) predicate.ScheduledEmail {
	return predicate.ScheduledEmail(sql.FieldHasPrefix(FieldFromHeader, v))
}

// FromHeaderHasSuffix applies the HasSuffix predicate on the "from_header" field.
func FromHeaderHasSuffix(v string) predicate.ScheduledEmail {
	return predicate.ScheduledEmail(sql.FieldHasSuffix(FieldFromHeader, v))
}

// FromHeaderEqualFold applies the EqualFold predicate on the "from_header" field.
func FromHeaderEqualFold(v string) predicate.ScheduledEmail {
	return predicate.ScheduledEmail(sql.FieldEqualFold(FieldFromHeader, v))
}

// FromHeaderContainsFold applies the ContainsFold predicate on the "from_header" field.
func FromHeaderContainsFold(v string) predicate.ScheduledEmail {
	return predicate.ScheduledEmail(sql.FieldContainsFold(FieldFromHeader, v))
}

// ReplyToHeaderEQ applies the EQ predicate on the "reply_to_header" field.
func ReplyToHeaderEQ(v string) predicate.ScheduledEmail {
	return predicate.ScheduledEmail(sql.FieldEQ(FieldReplyToHeader, v))
}

// ReplyToHeaderNEQ applies the NEQ predicate on the "reply_to_header" field.
func ReplyToHeaderNEQ(v string) predicate.ScheduledEmail {
	return predicate.ScheduledEmail(sql.FieldNEQ(FieldReplyToHeader, v))
}

// ReplyToHeaderIn applies the In predicate on the "reply_to_header" field.
func ReplyToHeaderIn(vs ...string) predicate.ScheduledEmail {
	return predicate.ScheduledEmail(sql.FieldIn(FieldReplyToHeader, vs...))
}

// ReplyToHeaderNotIn applies the NotIn predicate on the "reply_to_header" field.
func ReplyToHeaderNotIn(vs ...string) predicate.ScheduledEmail {
	return predicate.ScheduledEmail(sql.FieldNotIn(FieldReplyToHeader, vs...))
}

// ReplyToHeaderGT applies the GT predicate on the "reply_to_header" field.
func ReplyToHeaderGT(v string) predicate.ScheduledEmail {
	return predicate.ScheduledEmail(sql.FieldGT(FieldReplyToHeader, v))
}

// ReplyToHeaderGTE applies the GTE predicate on the "reply_to_header" field.
func ReplyToHeaderGTE(v string) predicate.ScheduledEmail {
	return predicate.ScheduledEmail(sql.FieldGTE(FieldReplyToHeader, v))
}

// ReplyToHeaderLT applies the LT predicate on the "reply_to_header" field.
func ReplyToHeaderLT(v string) predicate.ScheduledEmail {
	return predicate.ScheduledEmail(sql.FieldLT(FieldReplyToHeader, v))
}

// ReplyToHeaderLTE applies the LTE predicate on the "reply_to_header" field.
func ReplyToHeaderLTE(v string) predicate.ScheduledEmail {
	return predicate.ScheduledEmail(sql.FieldLTE(FieldReplyToHeader, v))
}

// ReplyToHeaderContains applies the Contains predicate on the "reply_to_header" field.
func ReplyToHeaderContains(v string) predicate.ScheduledEmail {
	return predicate.ScheduledEmail(sql.FieldContains(FieldReplyToHeader, v))
}

// ReplyToHeaderHasPrefix applies the HasPrefix predicate on the "reply_to_header" field.
func ReplyToHeaderHasPrefix(v string) predicate.ScheduledEmail {
	return predicate.ScheduledEmail(sql.FieldHasPrefix(FieldReplyToHeader, v))
}

// ReplyToHeaderHasSuffix applies the HasSuffix predicate on the "reply_to_header" field.
func ReplyToHeaderHasSuffix(v string) predicate.ScheduledEmail {
	return predicate.ScheduledEmail(sql.FieldHasSuffix(FieldReplyToHeader, v))
}

// ReplyToHeaderIsNil applies the IsNil predicate on the "reply_to_header" field.
func ReplyToHeaderIsNil() predicate.ScheduledEmail {
	return predicate.ScheduledEmail(sql.FieldIsNull(FieldReplyToHeader))
}

// ReplyToHeaderNotNil applies the NotNil predicate on the "reply_to_header" field.
func ReplyToHeaderNotNil() predicate.ScheduledEmail {
	return predicate.ScheduledEmail(sql.FieldNotNull(FieldReplyToHeader))
}

// ReplyToHeaderEqualFold applies the EqualFold predicate on the "reply_to_header" field.
func ReplyToHeaderEqualFold(v string) predicate.ScheduledEmail {
	return predicate.ScheduledEmail(sql.FieldEqualFold(FieldReplyToHeader, v))
}

// ReplyToHeaderContainsFold applies the ContainsFold predicate on the "reply_to_header" field.
func ReplyToHeaderContainsFold(v string) predicate.ScheduledEmail {
	return predicate.ScheduledEmail(sql.FieldContainsFold(FieldReplyToHeader, v))
}

// CcHeaderIsNil applies the IsNil predicate on the "cc_header" field.
func CcHeaderIsNil() predicate.ScheduledEmail {
	return predicate.ScheduledEmail(sql.FieldIsNull(FieldCcHeader))
}

// CcHeaderNotNil applies the NotNil predicate on the "cc_header" field.
func CcHeaderNotNil() predicate.ScheduledEmail {
	return predicate.ScheduledEmail(sql.FieldNotNull(FieldCcHeader))
}

// BccHeaderIsNil applies the IsNil predicate on the "bcc_header" field.
func BccHeaderIsNil() predicate.ScheduledEmail {
	return predicate.ScheduledEmail(sql.FieldIsNull(FieldBccHeader))
}

// BccHeaderNotNil applies the NotNil predicate on the "bcc_header" field.
func BccHeaderNotNil() predicate.ScheduledEmail {
	return predicate.ScheduledEmail(sql.FieldNotNull(FieldBccHeader))
}

// SubjectEQ applies the EQ predicate on the "subject" field.
func SubjectEQ(v string) predicate.ScheduledEmail {
	return predicate.ScheduledEmail(sql.FieldEQ(FieldSubject, v))
}

// SubjectNEQ applies the NEQ predicate on the "subject" field.
func SubjectNEQ(v string) predicate.ScheduledEmail {
	return predicate.ScheduledEmail(sql.FieldNEQ(FieldSubject, v))
}

// SubjectIn applies the In predicate on the "subject" field.
func SubjectIn(vs ...string) predicate.ScheduledEmail {
	return predicate.ScheduledEmail(sql.FieldIn(FieldSubject, vs...))
}

// SubjectNotIn applies the NotIn predicate on the "subject" field.
func SubjectNotIn(vs ...string) predicate.ScheduledEmail {
	return predicate.ScheduledEmail(sql.FieldNotIn(FieldSubject, vs...))
}

// SubjectGT applies the GT predicate on the "subject" field.
func SubjectGT(v string) predicate.ScheduledEmail {
	return predicate.ScheduledEmail(sql.FieldGT(FieldSubject, v))
}

// SubjectGTE applies the GTE predicate on the "subject" field.
func SubjectGTE(v string) predicate.ScheduledEmail {
	return predicate.ScheduledEmail(sql.FieldGTE(FieldSubject, v))
}

// SubjectLT applies the LT predicate on the "subject" field.
func SubjectLT(v string) predicate.ScheduledEmail {
	return predicate.ScheduledEmail(sql.FieldLT(FieldSubject, v))
}

// SubjectLTE applies the LTE predicate on the "subject" field.
func SubjectLTE(v string) predicate.ScheduledEmail {
	return predicate.ScheduledEmail(sql.FieldLTE(FieldSubject, v))
}

// SubjectContains applies the Contains predicate on the "subject" field.
func SubjectContains(v string) predicate.ScheduledEmail {
	return predicate.ScheduledEmail(sql.FieldContains(FieldSubject, v))
}

// SubjectHasPrefix applies the HasPrefix predicate on the "subject" field.
func SubjectHasPrefix(v string) predicate.ScheduledEmail {
	return predicate.ScheduledEmail(sql.FieldHasPrefix(FieldSubject, v))
}

// SubjectHasSuffix applies the HasSuffix predicate on the "subject" field.
func SubjectHasSuffix(v string) predicate.ScheduledEmail {
	return predicate.ScheduledEmail(sql.FieldHasSuffix(FieldSubject, v))
}

// SubjectEqualFold applies the EqualFold predicate on the "subject" field.
func SubjectEqualFold(v string) predicate.ScheduledEmail {
	return predicate.ScheduledEmail(sql.FieldEqualFold(FieldSubject, v))
}

// SubjectContainsFold applies the ContainsFold predicate on the "subject" field.
func SubjectContainsFold(v string) predicate.ScheduledEmail {
	return predicate.ScheduledEmail(sql.FieldContainsFold(FieldSubject, v))
}

// BodyEQ applies the EQ predicate on the "body" field.
func BodyEQ(v string) predicate.ScheduledEmail {
	return predicate.ScheduledEmail(sql.FieldEQ(FieldBody, v))
}

// BodyNEQ applies the NEQ predicate on the "body" field.
func BodyNEQ(v string) predicate.ScheduledEmail {
	return predicate.ScheduledEmail(sql.FieldNEQ(FieldBody, v))
}

// BodyIn applies the In predicate on the "body" field.
func BodyIn(vs ...string) predicate.ScheduledEmail {
	return predicate.ScheduledEmail(sql.FieldIn(FieldBody, vs...))
}

// BodyNotIn applies the NotIn predicate on the "body" field.
func BodyNotIn(vs ...string) predicate.ScheduledEmail {
	return predicate.ScheduledEmail(sql.FieldNotIn(FieldBody, vs...))
}

// BodyGT applies the GT predicate on the "body" field.
func BodyGT(v string) predicate.ScheduledEmail {
	return predicate.ScheduledEmail(sql.FieldGT(FieldBody, v))
}

// BodyGTE applies the GTE predicate on the "body" field.
func BodyGTE(v string) predicate.ScheduledEmail {
	return predicate.ScheduledEmail(sql.FieldGTE(FieldBody, v))
}

// BodyLT applies the LT predicate on the "body" field.
func BodyLT(v string) predicate.ScheduledEmail {
	return predicate.ScheduledEmail(sql.FieldLT(FieldBody, v))
}

// BodyLTE applies the LTE predicate on the "body" field.
func BodyLTE(v string) predicate.ScheduledEmail {
	return predicate.ScheduledEmail(sql.FieldLTE(FieldBody, v))
}

// BodyContains applies the Contains predicate on the "body" field.
func BodyContains(v string) predicate.ScheduledEmail {
	return predicate.ScheduledEmail(sql.FieldContains(FieldBody, v))
}

// BodyHasPrefix applies the HasPrefix predicate on the "body" field.
func BodyHasPrefix(v string) predicate.ScheduledEmail {
	return predicate.ScheduledEmail(sql.FieldHasPrefix(FieldBody, v))
}

// BodyHasSuffix applies the HasSuffix predicate on the "body" field.
func BodyHasSuffix(v string) predicate.ScheduledEmail {
	return predicate.ScheduledEmail(sql.FieldHasSuffix(FieldBody, v))
}

// BodyEqualFold applies the EqualFold predicate on the "body" field.
func BodyEqualFold(v string) predicate.ScheduledEmail {
	return predicate.ScheduledEmail(sql.FieldEqualFold(FieldBody, v))
}

// BodyContainsFold applies the ContainsFold predicate on the "body" field.
func BodyContainsFold(v string) predicate.ScheduledEmail {
	return predicate.ScheduledEmail(sql.FieldContainsFold(FieldBody, v))
}

// TemplateIDEQ applies the EQ predicate on the "template_id" field.
func TemplateIDEQ(v uuid.UUID) predicate.ScheduledEmail {
	return predicate.ScheduledEmail(sql.FieldEQ(FieldTemplateID, v))
}

// TemplateIDNEQ applies the NEQ predicate on the "template_id" field.
func TemplateIDNEQ(v uuid.UUID) predicate.ScheduledEmail {
	return predicate.ScheduledEmail(sql.FieldNEQ(FieldTemplateID, v))
}

// TemplateIDIn applies the In predicate on the "template_id" field.
func TemplateIDIn(vs ...uuid.UUID) predicate.ScheduledEmail {
	return predicate.ScheduledEmail(sql.FieldIn(FieldTemplateID, vs...))
}

// TemplateIDNotIn applies the NotIn predicate on the "template_id" field.
func TemplateIDNotIn(vs ...uuid.UUID) predicate.ScheduledEmail {
	return predicate.ScheduledEmail(sql.FieldNotIn(FieldTemplateID, vs...))
}

// TemplateIDIsNil applies the IsNil predicate on the "template_id" field.
func TemplateIDIsNil() predicate.ScheduledEmail {
	return predicate.ScheduledEmail(sql.FieldIsNull(FieldTemplateID))
}

// TemplateIDNotNil applies the NotNil predicate on the "template_id" field.
func TemplateIDNotNil() predicate.ScheduledEmail {
	return predicate.ScheduledEmail(sql.FieldNotNull(FieldTemplateID))
}

// RelatedToEQ applies the EQ predicate on the "related_to" field.
func RelatedToEQ(v RelatedTo) predicate.ScheduledEmail {
	return predicate.ScheduledEmail(sql.FieldEQ(FieldRelatedTo, v))
}

// RelatedToNEQ applies the NEQ predicate on the "related_to" field.
func RelatedToNEQ(v RelatedTo) predicate.ScheduledEmail {
	return predicate.ScheduledEmail(sql.FieldNEQ(FieldRelatedTo, v))
}

// RelatedToIn applies the In predicate on the "related_to" field.
func RelatedToIn(vs ...RelatedTo) predicate.ScheduledEmail {
	return predicate.ScheduledEmail(sql.FieldIn(FieldRelatedTo, vs...))
}

// RelatedToNotIn applies the NotIn predicate on the "related_to" field.
func RelatedToNotIn(vs ...RelatedTo) predicate.ScheduledEmail {
	return predicate.ScheduledEmail(sql.FieldNotIn(FieldRelatedTo, vs...))
}

// RelatedToIsNil applies the IsNil predicate on the "related_to" field.
func RelatedToIsNil() predicate.ScheduledEmail {
	return predicate.ScheduledEmail(sql.FieldIsNull(FieldRelatedTo))
}

// RelatedToNotNil applies the NotNil predicate on the "related_to" field.
func RelatedToNotNil() predicate.ScheduledEmail {
	return predicate.ScheduledEmail(sql.FieldNotNull(FieldRelatedTo))
}

// RelatedIDEQ applies the EQ predicate on the "related_id" field.
func RelatedIDEQ(v int) predicate.ScheduledEmail {
	return predicate.ScheduledEmail(sql.FieldEQ(FieldRelatedID, v))
}

// RelatedIDNEQ applies the NEQ predicate on the "related_id" field.
func RelatedIDNEQ(v int) predicate.ScheduledEmail {
	return predicate.ScheduledEmail(sql.FieldNEQ(FieldRelatedID, v))
}

// RelatedIDIn applies the In predicate on the "related_id" field.
func RelatedIDIn(vs ...int) predicate.ScheduledEmail {
	return predicate.ScheduledEmail(sql.FieldIn(FieldRelatedID, vs...))
}

// RelatedIDNotIn applies the NotIn predicate on the "related_id" field.
func RelatedIDNotIn(vs ...int) predicate.ScheduledEmail {
	return predicate.ScheduledEmail(sql.FieldNotIn(FieldRelatedID, vs...))
}

// RelatedIDGT applies the GT predicate on the "related_id" field.
func RelatedIDGT(v int) predicate.ScheduledEmail {
	return predicate.ScheduledEmail(sql.FieldGT(FieldRelatedID, v))
}

// RelatedIDGTE applies the GTE predicate on the "related_id" field.
func RelatedIDGTE(v int) predicate.ScheduledEmail {
	return predicate.ScheduledEmail(sql.FieldGTE(FieldRelatedID, v))
}

// RelatedIDLT applies the LT predicate on the "related_id" field.
func RelatedIDLT(v int) predicate.ScheduledEmail {
	return predicate.ScheduledEmail(sql.FieldLT(FieldRelatedID, v))
}

// RelatedIDLTE applies the LTE predicate on the "related_id" field.
func RelatedIDLTE(v int) predicate.ScheduledEmail {
	return predicate.ScheduledEmail(sql.FieldLTE(FieldRelatedID, v))
}

// RelatedIDIsNil applies the IsNil predicate on the "related_id" field.
func RelatedIDIsNil() predicate.ScheduledEmail {
	return predicate.ScheduledEmail(sql.FieldIsNull(FieldRelatedID))
}

// RelatedIDNotNil applies the NotNil predicate on the "related_id" field.
func RelatedIDNotNil() predicate.ScheduledEmail {
	return predicate.ScheduledEmail(sql.FieldNotNull(FieldRelatedID))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ScheduledEmail {
	return predicate.ScheduledEmail(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ScheduledEmail {
	return predicate.ScheduledEmail(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ScheduledEmail {
	return predicate.ScheduledEmail(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ScheduledEmail {
	return predicate.ScheduledEmail(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ScheduledEmail {
	return predicate.ScheduledEmail(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ScheduledEmail {
	return predicate.ScheduledEmail(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ScheduledEmail {
	return predicate.ScheduledEmail(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ScheduledEmail {
	return predicate.ScheduledEmail(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.ScheduledEmail {
	return predicate.ScheduledEmail(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.ScheduledEmail {
	return predicate.ScheduledEmail(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.ScheduledEmail {
	return predicate.ScheduledEmail(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.ScheduledEmail {
	return predicate.ScheduledEmail(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.ScheduledEmail {
	return predicate.ScheduledEmail(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.ScheduledEmail {
	return predicate.ScheduledEmail(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.ScheduledEmail {
	return predicate.ScheduledEmail(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.ScheduledEmail {
	return predicate.ScheduledEmail(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasTemplate applies the HasEdge predicate on the "template" edge.
func HasTemplate() predicate.ScheduledEmail {
	return predicate.ScheduledEmail(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, TemplateTable, TemplateColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTemplateWith applies the HasEdge predicate on the "template" edge with a given conditions (other predicates).
func HasTemplateWith(preds ...predicate.EmailTemplate) predicate.ScheduledEmail {
	return predicate.ScheduledEmail(func(s *sql.Selector) {
		step := newTemplateStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasLogs applies the HasEdge predicate on the "logs" edge.
func HasLogs() predicate.ScheduledEmail {
	return predicate.ScheduledEmail(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, LogsTable, LogsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasLogsWith applies the HasEdge predicate on the "logs" edge with a given conditions (other predicates).
func HasLogsWith(preds ...predicate.ScheduledEmailLog) predicate.ScheduledEmail {
	return predicate.ScheduledEmail(func(s *sql.Selector) {
		step := newLogsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasAttachments applies the HasEdge predicate on the "attachments" edge.
func HasAttachments() predicate.ScheduledEmail {
	return predicate.ScheduledEmail(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, AttachmentsTable, AttachmentsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAttachmentsWith applies the HasEdge predicate on the "attachments" edge with a given conditions (other predicates).
func HasAttachmentsWith(preds ...predicate.EmailAttachment) predicate.ScheduledEmail {
	return predicate.ScheduledEmail(func(s *sql.Selector) {
		step := newAttachmentsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ScheduledEmail) predicate.ScheduledEmail {
	return predicate.ScheduledEmail(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ScheduledEmail) predicate.ScheduledEmail {
	return predicate.ScheduledEmail(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ScheduledEmail) predicate.ScheduledEmail {
	return predicate.ScheduledEmail(sql.NotPredicates(p))
}
