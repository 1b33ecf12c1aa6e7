// Code generated by ent, DO NOT EDIT.

package membership

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/carpentries/mailflow/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Membership {
	return predicate.Membership(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Membership {
	return predicate.Membership(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Membership {
	return predicate.Membership(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Membership {
	return predicate.Membership(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Membership {
	return predicate.Membership(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Membership {
	return predicate.Membership(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Membership {
	return predicate.Membership(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Membership {
	return predicate.Membership(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Membership {
	return predicate.Membership(sql.FieldLTE(FieldID, id))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Membership {
	return predicate.Membership(sql.FieldEQ(FieldName, v))
}

// AgreementStart applies equality check predicate on the "agreement_start" field. It's identical to AgreementStartEQ.
func AgreementStart(v time.Time) predicate.Membership {
	return predicate.Membership(sql.FieldEQ(FieldAgreementStart, v))
}

// AgreementEnd applies equality check predicate on the "agreement_end" field. It's identical to AgreementEndEQ.
func AgreementEnd(v time.Time) predicate.Membership {
	return predicate.Membership(sql.FieldEQ(FieldAgreementEnd, v))
}

// RolledFromID applies equality check predicate on the "rolled_from_id" field. It's identical to RolledFromIDEQ.
func RolledFromID(v int) predicate.Membership {
	return predicate.Membership(sql.FieldEQ(FieldRolledFromID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Membership {
	return predicate.Membership(sql.FieldEQ(FieldCreatedAt, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Membership {
	return predicate.Membership(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Membership {
	return predicate.Membership(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Membership {
	return predicate.Membership(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Membership {
	return predicate.Membership(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Membership {
	return predicate.Membership(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Membership {
	return predicate.Membership(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Membership {
	return predicate.Membership(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Membership {
	return predicate.Membership(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Membership {
	return predicate.Membership(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Membership {
	return predicate.Membership(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Membership {
	return predicate.Membership(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Membership {
	return predicate.Membership(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Membership {
	return predicate.Membership(sql.FieldContainsFold(FieldName, v))
}

// VariantEQ applies the EQ predicate on the "variant" field.
func VariantEQ(v Variant) predicate.Membership {
	return predicate.Membership(sql.FieldEQ(FieldVariant, v))
}

// VariantNEQ applies the NEQ predicate on the "variant" field.
func VariantNEQ(v Variant) predicate.Membership {
	return predicate.Membership(sql.FieldNEQ(FieldVariant, v))
}

// VariantIn applies the In predicate on the "variant" field.
func VariantIn(vs ...Variant) predicate.Membership {
	return predicate.Membership(sql.FieldIn(FieldVariant, vs...))
}

// VariantNotIn applies the NotIn predicate on the "variant" field.
func VariantNotIn(vs ...Variant) predicate.Membership {
	return predicate.Membership(sql.FieldNotIn(FieldVariant, vs...))
}

// AgreementStartEQ applies the EQ predicate on the "agreement_start" field.
func AgreementStartEQ(v time.Time) predicate.Membership {
	return predicate.Membership(sql.FieldEQ(FieldAgreementStart, v))
}

// AgreementStartNEQ applies the NEQ predicate on the "agreement_start" field.
func AgreementStartNEQ(v time.Time) predicate.Membership {
	return predicate.Membership(sql.FieldNEQ(FieldAgreementStart, v))
}

// AgreementStartIn applies the In predicate on the "agreement_start" field.
func AgreementStartIn(vs ...time.Time) predicate.Membership {
	return predicate.Membership(sql.FieldIn(FieldAgreementStart, vs...))
}

// AgreementStartNotIn applies the NotIn predicate on the "agreement_start" field.
func AgreementStartNotIn(vs ...time.Time) predicate.Membership {
	return predicate.Membership(sql.FieldNotIn(FieldAgreementStart, vs...))
}

// AgreementStartGT applies the GT predicate on the "agreement_start" field.
func AgreementStartGT(v time.Time) predicate.Membership {
	return predicate.Membership(sql.FieldGT(FieldAgreementStart, v))
}

// AgreementStartGTE applies the GTE predicate on the "agreement_start" field.
func AgreementStartGTE(v time.Time) predicate.Membership {
	return predicate.Membership(sql.FieldGTE(FieldAgreementStart, v))
}

// AgreementStartLT applies the LT predicate on the "agreement_start" field.
func AgreementStartLT(v time.Time) predicate.Membership {
	return predicate.Membership(sql.FieldLT(FieldAgreementStart, v))
}

// AgreementStartLTE applies the LTE predicate on the "agreement_start" field.
func AgreementStartLTE(v time.Time) predicate.Membership {
	return predicate.Membership(sql.FieldLTE(FieldAgreementStart, v))
}

// AgreementEndEQ applies the EQ predicate on the "agreement_end" field.
func AgreementEndEQ(v time.Time) predicate.Membership {
	return predicate.Membership(sql.FieldEQ(FieldAgreementEnd, v))
}

// AgreementEndNEQ applies the NEQ predicate on the "agreement_end" field.
func AgreementEndNEQ(v time.Time) predicate.Membership {
	return predicate.Membership(sql.FieldNEQ(FieldAgreementEnd, v))
}

// AgreementEndIn applies the In predicate on the "agreement_end" field.
func AgreementEndIn(vs ...time.Time) predicate.Membership {
	return predicate.Membership(sql.FieldIn(FieldAgreementEnd, vs...))
}

// AgreementEndNotIn applies the NotIn predicate on the "agreement_end" field.
func AgreementEndNotIn(vs ...time.Time) predicate.Membership {
	return predicate.Membership(sql.FieldNotIn(FieldAgreementEnd, vs...))
}

// AgreementEndGT applies the GT predicate on the "agreement_end" field.
func AgreementEndGT(v time.Time) predicate.Membership {
	return predicate.Membership(sql.FieldGT(FieldAgreementEnd, v))
}

// AgreementEndGTE applies the GTE predicate on the "agreement_end" field.
func AgreementEndGTE(v time.Time) predicate.Membership {
	return predicate.Membership(sql.FieldGTE(FieldAgreementEnd, v))
}

// AgreementEndLT applies the LT predicate on the "agreement_end" field.
func AgreementEndLT(v time.Time) predicate.Membership {
	return predicate.Membership(sql.FieldLT(FieldAgreementEnd, v))
}

// AgreementEndLTE applies the LTE predicate on the "agreement_end" field.
func AgreementEndLTE(v time.Time) predicate.Membership {
	return predicate.Membership(sql.FieldLTE(FieldAgreementEnd, v))
}

// RolledFromIDEQ applies the EQ predicate on the "rolled_from_id" field.
func RolledFromIDEQ(v int) predicate.Membership {
	return predicate.Membership(sql.FieldEQ(FieldRolledFromID, v))
}

// RolledFromIDNEQ applies the NEQ predicate on the "rolled_from_id" field.
func RolledFromIDNEQ(v int) predicate.Membership {
	return predicate.Membership(sql.FieldNEQ(FieldRolledFromID, v))
}

// RolledFromIDIn applies the In predicate on the "rolled_from_id" field.
func RolledFromIDIn(vs ...int) predicate.Membership {
	return predicate.Membership(sql.FieldIn(FieldRolledFromID, vs...))
}

// RolledFromIDNotIn applies the NotIn predicate on the "rolled_from_id" field.
func RolledFromIDNotIn(vs ...int) predicate.Membership {
	return predicate.Membership(sql.FieldNotIn(FieldRolledFromID, vs...))
}

// RolledFromIDGT applies the GT predicate on the "rolled_from_id" field.
func RolledFromIDGT(v int) predicate.Membership {
	return predicate.Membership(sql.FieldGT(FieldRolledFromID, v))
}

// RolledFromIDGTE applies the GTE predicate on the "rolled_from_id" field.
func RolledFromIDGTE(v int) predicate.Membership {
	return predicate.Membership(sql.FieldGTE(FieldRolledFromID, v))
}

// RolledFromIDLT applies the LT predicate on the "rolled_from_id" field.
func RolledFromIDLT(v int) predicate.Membership {
	return predicate.Membership(sql.FieldLT(FieldRolledFromID, v))
}

// RolledFromIDLTE applies the LTE predicate on the "rolled_from_id" field.
func RolledFromIDLTE(v int) predicate.Membership {
	return predicate.Membership(sql.FieldLTE(FieldRolledFromID, v))
}

// RolledFromIDIsNil applies the IsNil predicate on the "rolled_from_id" field.
func RolledFromIDIsNil() predicate.Membership {
	return predicate.Membership(sql.FieldIsNull(FieldRolledFromID))
}

// RolledFromIDNotNil applies the NotNil predicate on the "rolled_from_id" field.
func RolledFromIDNotNil() predicate.Membership {
	return predicate.Membership(sql.FieldNotNull(FieldRolledFromID))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Membership {
	return predicate.Membership(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Membership {
	return predicate.Membership(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Membership {
	return predicate.Membership(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Membership {
	return predicate.Membership(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Membership {
	return predicate.Membership(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Membership {
	return predicate.Membership(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Membership {
	return predicate.Membership(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Membership {
	return predicate.Membership(sql.FieldLTE(FieldCreatedAt, v))
}

// HasMembershipTasks applies the HasEdge predicate on the "membership_tasks" edge.
func HasMembershipTasks() predicate.Membership {
	return predicate.Membership(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, MembershipTasksTable, MembershipTasksColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasMembershipTasksWith applies the HasEdge predicate on the "membership_tasks" edge with a given conditions (other predicates).
func HasMembershipTasksWith(preds ...predicate.MembershipTask) predicate.Membership {
	return predicate.Membership(func(s *sql.Selector) {
		step := newMembershipTasksStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Membership) predicate.Membership {
	return predicate.Membership(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Membership) predicate.Membership {
	return predicate.Membership(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Membership) predicate.Membership {
	return predicate.Membership(sql.NotPredicates(p))
}
