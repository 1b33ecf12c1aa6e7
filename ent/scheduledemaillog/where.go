// Code generated by ent, DO NOT EDIT.

package scheduledemaillog

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/carpentries/mailflow/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.ScheduledEmailLog {
	return predicate.ScheduledEmailLog(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.ScheduledEmailLog {
	return predicate.ScheduledEmailLog(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.ScheduledEmailLog {
	return predicate.ScheduledEmailLog(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.ScheduledEmailLog {
	return predicate.ScheduledEmailLog(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.ScheduledEmailLog {
	return predicate.ScheduledEmailLog(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.ScheduledEmailLog {
	return predicate.ScheduledEmailLog(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.ScheduledEmailLog {
	return predicate.ScheduledEmailLog(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.ScheduledEmailLog {
	return predicate.ScheduledEmailLog(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.ScheduledEmailLog {
	return predicate.ScheduledEmailLog(sql.FieldLTE(FieldID, id))
}

// Details applies equality check predicate on the "details" field. It's identical to DetailsEQ.
func Details(v string) predicate.ScheduledEmailLog {
	return predicate.ScheduledEmailLog(sql.FieldEQ(FieldDetails, v))
}

// AuthorID applies equality check predicate on the "author_id" field. It's identical to AuthorIDEQ.
func AuthorID(v int) predicate.ScheduledEmailLog {
	return predicate.ScheduledEmailLog(sql.FieldEQ(FieldAuthorID, v))
}

// ScheduledEmailID applies equality check predicate on the "scheduled_email_id" field. It's identical to ScheduledEmailIDEQ.
func ScheduledEmailID(v uuid.UUID) predicate.ScheduledEmailLog {
	return predicate.ScheduledEmailLog(sql.FieldEQ(FieldScheduledEmailID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ScheduledEmailLog {
	return predicate.ScheduledEmailLog(sql.FieldEQ(FieldCreatedAt, v))
}

// DetailsEQ applies the EQ predicate on the "details" field.
func DetailsEQ(v string) predicate.ScheduledEmailLog {
	return predicate.ScheduledEmailLog(sql.FieldEQ(FieldDetails, v))
}

// DetailsNEQ applies the NEQ predicate on the "details" field.
func DetailsNEQ(v string) predicate.ScheduledEmailLog {
	return predicate.ScheduledEmailLog(sql.FieldNEQ(FieldDetails, v))
}

// DetailsIn applies the In predicate on the "details" field.
func DetailsIn(vs ...string) predicate.ScheduledEmailLog {
	return predicate.ScheduledEmailLog(sql.FieldIn(FieldDetails, vs...))
}

// DetailsNotIn applies the NotIn predicate on the "details" field.
func DetailsNotIn(vs ...string) predicate.ScheduledEmailLog {
	return predicate.ScheduledEmailLog(sql.FieldNotIn(FieldDetails, vs...))
}

// DetailsGT applies the GT predicate on the "details" field.
func DetailsGT(v string) predicate.ScheduledEmailLog {
	return predicate.ScheduledEmailLog(sql.FieldGT(FieldDetails, v))
}

// DetailsGTE applies the GTE predicate on the "details" field.
func DetailsGTE(v string) predicate.ScheduledEmailLog {
	return predicate.ScheduledEmailLog(sql.FieldGTE(FieldDetails, v))
}

// DetailsLT applies the LT predicate on the "details" field.
func DetailsLT(v string) predicate.ScheduledEmailLog {
	return predicate.ScheduledEmailLog(sql.FieldLT(FieldDetails, v))
}

// DetailsLTE applies the LTE predicate on the "details" field.
func DetailsLTE(v string) predicate.ScheduledEmailLog {
	return predicate.ScheduledEmailLog(sql.FieldLTE(FieldDetails, v))
}

// DetailsContains applies the Contains predicate on the "details" field.
func DetailsContains(v string) predicate.ScheduledEmailLog {
	return predicate.ScheduledEmailLog(sql.FieldContains(FieldDetails, v))
}

// DetailsHasPrefix applies the HasPrefix predicate on the "details" field.
func DetailsHasPrefix(v string) predicate.ScheduledEmailLog {
	return predicate.ScheduledEmailLog(sql.FieldHasPrefix(FieldDetails, v))
}

// DetailsHasSuffix applies the HasSuffix predicate on the "details" field.
func DetailsHasSuffix(v string) predicate.ScheduledEmailLog {
	return predicate.ScheduledEmailLog(sql.FieldHasSuffix(FieldDetails, v))
}

// DetailsEqualFold applies the EqualFold predicate on the "details" field.
func DetailsEqualFold(v string) predicate.ScheduledEmailLog {
	return predicate.ScheduledEmailLog(sql.FieldEqualFold(FieldDetails, v))
}

// DetailsContainsFold applies the ContainsFold predicate on the "details" field.
func DetailsContainsFold(v string) predicate.ScheduledEmailLog {
	return predicate.ScheduledEmailLog(sql.FieldContainsFold(FieldDetails, v))
}

// StateBeforeEQ applies the EQ predicate on the "state_before" field.
func StateBeforeEQ(v StateBefore) predicate.ScheduledEmailLog {
	return predicate.ScheduledEmailLog(sql.FieldEQ(FieldStateBefore, v))
}

// StateBeforeNEQ applies the NEQ predicate on the "state_before" field.
func StateBeforeNEQ(v StateBefore) predicate.ScheduledEmailLog {
	return predicate.ScheduledEmailLog(sql.FieldNEQ(FieldStateBefore, v))
}

// StateBeforeIn applies the In predicate on the "state_before" field.
func StateBeforeIn(vs ...StateBefore) predicate.ScheduledEmailLog {
	return predicate.ScheduledEmailLog(sql.FieldIn(FieldStateBefore, vs...))
}

// StateBeforeNotIn applies the NotIn predicate on the "state_before" field.
func StateBeforeNotIn(vs ...StateBefore) predicate.ScheduledEmailLog {
	return predicate.ScheduledEmailLog(sql.FieldNotIn(FieldStateBefore, vs...))
}

// StateBeforeIsNil applies the IsNil predicate on the "state_before" field.
func StateBeforeIsNil() predicate.ScheduledEmailLog {
	return predicate.ScheduledEmailLog(sql.FieldIsNull(FieldStateBefore))
}

// StateBeforeNotNil applies the NotNil predicate on the "state_before" field.
func StateBeforeNotNil() predicate.ScheduledEmailLog {
	return predicate.ScheduledEmailLog(sql.FieldNotNull(FieldStateBefore))
}

// StateAfterEQ applies the EQ predicate on the "state_after" field.
func StateAfterEQ(v StateAfter) predicate.ScheduledEmailLog {
	return predicate.ScheduledEmailLog(sql.FieldEQ(FieldStateAfter, v))
}

// StateAfterNEQ applies the NEQ predicate on the "state_after" field.
func StateAfterNEQ(v StateAfter) predicate.ScheduledEmailLog {
	return predicate.ScheduledEmailLog(sql.FieldNEQ(FieldStateAfter, v))
}

// StateAfterIn applies the In predicate on the "state_after" field.
func StateAfterIn(vs ...StateAfter) predicate.ScheduledEmailLog {
	return predicate.ScheduledEmailLog(sql.FieldIn(FieldStateAfter, vs...))
}

// StateAfterNotIn applies the NotIn predicate on the "state_after" field.
func StateAfterNotIn(vs ...StateAfter) predicate.ScheduledEmailLog {
	return predicate.ScheduledEmailLog(sql.FieldNotIn(FieldStateAfter, vs...))
}

// AuthorIDEQ applies the EQ predicate on the "author_id" field.
func AuthorIDEQ(v int) predicate.ScheduledEmailLog {
	return predicate.ScheduledEmailLog(sql.FieldEQ(FieldAuthorID, v))
}

// AuthorIDNEQ applies the NEQ predicate on the "author_id" field.
func AuthorIDNEQ(v int) predicate.ScheduledEmailLog {
	return predicate.ScheduledEmailLog(sql.FieldNEQ(FieldAuthorID, v))
}

// AuthorIDIn applies the In predicate on the "author_id" field.
func AuthorIDIn(vs ...int) predicate.ScheduledEmailLog {
	return predicate.ScheduledEmailLog(sql.FieldIn(FieldAuthorID, vs...))
}

// AuthorIDNotIn applies the NotIn predicate on the "author_id" field.
func AuthorIDNotIn(vs ...int) predicate.ScheduledEmailLog {
	return predicate.ScheduledEmailLog(sql.FieldNotIn(FieldAuthorID, vs...))
}

// AuthorIDGT applies the GT predicate on the "author_id" field.
func AuthorIDGT(v int) predicate.ScheduledEmailLog {
	return predicate.ScheduledEmailLog(sql.FieldGT(FieldAuthorID, v))
}

// AuthorIDGTE applies the GTE predicate on the "author_id" field.
func AuthorIDGTE(v int) predicate.ScheduledEmailLog {
	return predicate.ScheduledEmailLog(sql.FieldGTE(FieldAuthorID, v))
}

// AuthorIDLT applies the LT predicate on the "author_id" field.
func AuthorIDLT(v int) predicate.ScheduledEmailLog {
	return predicate.ScheduledEmailLog(sql.FieldLT(FieldAuthorID, v))
}

// AuthorIDLTE applies the LTE predicate on the "author_id" field.
func AuthorIDLTE(v int) predicate.ScheduledEmailLog {
	return predicate.ScheduledEmailLog(sql.FieldLTE(FieldAuthorID, v))
}

// AuthorIDIsNil applies the IsNil predicate on the "author_id" field.
func AuthorIDIsNil() predicate.ScheduledEmailLog {
	return predicate.ScheduledEmailLog(sql.FieldIsNull(FieldAuthorID))
}

// AuthorIDNotNil applies the NotNil predicate on the "author_id" field.
func AuthorIDNotNil() predicate.ScheduledEmailLog {
	return predicate.ScheduledEmailLog(sql.FieldNotNull(FieldAuthorID))
}

// ScheduledEmailIDEQ applies the EQ predicate on the "scheduled_email_id" field.
func ScheduledEmailIDEQ(v uuid.UUID) predicate.ScheduledEmailLog {
	return predicate.ScheduledEmailLog(sql.FieldEQ(FieldScheduledEmailID, v))
}

// ScheduledEmailIDNEQ applies the NEQ predicate on the "scheduled_email_id" field.
func ScheduledEmailIDNEQ(v uuid.UUID) predicate.ScheduledEmailLog {
	return predicate.ScheduledEmailLog(sql.FieldNEQ(FieldScheduledEmailID, v))
}

// ScheduledEmailIDIn applies the In predicate on the "scheduled_email_id" field.
func ScheduledEmailIDIn(vs ...uuid.UUID) predicate.ScheduledEmailLog {
	return predicate.ScheduledEmailLog(sql.FieldIn(FieldScheduledEmailID, vs...))
}

// ScheduledEmailIDNotIn applies the NotIn predicate on the "scheduled_email_id" field.
func ScheduledEmailIDNotIn(vs ...uuid.UUID) predicate.ScheduledEmailLog {
	return predicate.ScheduledEmailLog(sql.FieldNotIn(FieldScheduledEmailID, vs...))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ScheduledEmailLog {
	return predicate.ScheduledEmailLog(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ScheduledEmailLog {
	return predicate.ScheduledEmailLog(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ScheduledEmailLog {
	return predicate.ScheduledEmailLog(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ScheduledEmailLog {
	return predicate.ScheduledEmailLog(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ScheduledEmailLog {
	return predicate.ScheduledEmailLog(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ScheduledEmailLog {
	return predicate.ScheduledEmailLog(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ScheduledEmailLog {
	return predicate.ScheduledEmailLog(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ScheduledEmailLog {
	return predicate.ScheduledEmailLog(sql.FieldLTE(FieldCreatedAt, v))
}

// HasEmail applies the HasEdge predicate on the "email" edge.
func HasEmail() predicate.ScheduledEmailLog {
	return predicate.ScheduledEmailLog(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, EmailTable, EmailColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasEmailWith applies the HasEdge predicate on the "email" edge with a given conditions (other predicates).
func HasEmailWith(preds ...predicate.ScheduledEmail) predicate.ScheduledEmailLog {
	return predicate.ScheduledEmailLog(func(s *sql.Selector) {
		step := newEmailStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ScheduledEmailLog) predicate.ScheduledEmailLog {
	return predicate.ScheduledEmailLog(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ScheduledEmailLog) predicate.ScheduledEmailLog {
	return predicate.ScheduledEmailLog(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ScheduledEmailLog) predicate.ScheduledEmailLog {
	return predicate.ScheduledEmailLog(sql.NotPredicates(p))
}
