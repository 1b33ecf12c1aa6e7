// Code generated by ent, DO NOT EDIT.

package membershiptask

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/carpentries/mailflow/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.MembershipTask {
	return predicate.MembershipTask(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.MembershipTask {
	return predicate.MembershipTask(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.MembershipTask {
	return predicate.MembershipTask(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.MembershipTask {
	return predicate.MembershipTask(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.MembershipTask {
	return predicate.MembershipTask(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.MembershipTask {
	return predicate.MembershipTask(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.MembershipTask {
	return predicate.MembershipTask(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.MembershipTask {
	return predicate.MembershipTask(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.MembershipTask {
	return predicate.MembershipTask(sql.FieldLTE(FieldID, id))
}

// MembershipID applies equality check predicate on the "membership_id" field. It's identical to MembershipIDEQ.
func MembershipID(v int) predicate.MembershipTask {
	return predicate.MembershipTask(sql.FieldEQ(FieldMembershipID, v))
}

// PersonID applies equality check predicate on the "person_id" field. It's identical to PersonIDEQ.
func PersonID(v int) predicate.MembershipTask {
	return predicate.MembershipTask(sql.FieldEQ(FieldPersonID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.MembershipTask {
	return predicate.MembershipTask(sql.FieldEQ(FieldCreatedAt, v))
}

// RoleEQ applies the EQ predicate on the "role" field.
func RoleEQ(v Role) predicate.MembershipTask {
	return predicate.MembershipTask(sql.FieldEQ(FieldRole, v))
}

// RoleNEQ applies the NEQ predicate on the "role" field.
func RoleNEQ(v Role) predicate.MembershipTask {
	return predicate.MembershipTask(sql.FieldNEQ(FieldRole, v))
}

// RoleIn applies the In predicate on the "role" field.
func RoleIn(vs ...Role) predicate.MembershipTask {
	return predicate.MembershipTask(sql.FieldIn(FieldRole, vs...))
}

// RoleNotIn applies the NotIn predicate on the "role" field.
func RoleNotIn(vs ...Role) predicate.MembershipTask {
	return predicate.MembershipTask(sql.FieldNotIn(FieldRole, vs...))
}

// MembershipIDEQ applies the EQ predicate on the "membership_id" field.
func MembershipIDEQ(v int) predicate.MembershipTask {
	return predicate.MembershipTask(sql.FieldEQ(FieldMembershipID, v))
}

// MembershipIDNEQ applies the NEQ predicate on the "membership_id" field.
func MembershipIDNEQ(v int) predicate.MembershipTask {
	return predicate.MembershipTask(sql.FieldNEQ(FieldMembershipID, v))
}

// MembershipIDIn applies the In predicate on the "membership_id" field.
func MembershipIDIn(vs ...int) predicate.MembershipTask {
	return predicate.MembershipTask(sql.FieldIn(FieldMembershipID, vs...))
}

// MembershipIDNotIn applies the NotIn predicate on the "membership_id" field.
func MembershipIDNotIn(vs ...int) predicate.MembershipTask {
	return predicate.MembershipTask(sql.FieldNotIn(FieldMembershipID, vs...))
}

// PersonIDEQ applies the EQ predicate on the "person_id" field.
func PersonIDEQ(v int) predicate.MembershipTask {
	return predicate.MembershipTask(sql.FieldEQ(FieldPersonID, v))
}

// PersonIDNEQ applies the NEQ predicate on the "person_id" field.
func PersonIDNEQ(v int) predicate.MembershipTask {
	return predicate.MembershipTask(sql.FieldNEQ(FieldPersonID, v))
}

// PersonIDIn applies the In predicate on the "person_id" field.
func PersonIDIn(vs ...int) predicate.MembershipTask {
	return predicate.MembershipTask(sql.FieldIn(FieldPersonID, vs...))
}

// PersonIDNotIn applies the NotIn predicate on the "person_id" field.
func PersonIDNotIn(vs ...int) predicate.MembershipTask {
	return predicate.MembershipTask(sql.FieldNotIn(FieldPersonID, vs...))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.MembershipTask {
	return predicate.MembershipTask(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.MembershipTask {
	return predicate.MembershipTask(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.MembershipTask {
	return predicate.MembershipTask(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.MembershipTask {
	return predicate.MembershipTask(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.MembershipTask {
	return predicate.MembershipTask(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.MembershipTask {
	return predicate.MembershipTask(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.MembershipTask {
	return predicate.MembershipTask(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.MembershipTask {
	return predicate.MembershipTask(sql.FieldLTE(FieldCreatedAt, v))
}

// HasMembership applies the HasEdge predicate on the "membership" edge.
func HasMembership() predicate.MembershipTask {
	return predicate.MembershipTask(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, MembershipTable, MembershipColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasMembershipWith applies the HasEdge predicate on the "membership" edge with a given conditions (other predicates).
func HasMembershipWith(preds ...predicate.Membership) predicate.MembershipTask {
	return predicate.MembershipTask(func(s *sql.Selector) {
		step := newMembershipStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasPerson applies the HasEdge predicate on the "person" edge.
func HasPerson() predicate.MembershipTask {
	return predicate.MembershipTask(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, PersonTable, PersonColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasPersonWith applies the HasEdge predicate on the "person" edge with a given conditions (other predicates).
func HasPersonWith(preds ...predicate.Person) predicate.MembershipTask {
	return predicate.MembershipTask(func(s *sql.Selector) {
		step := newPersonStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.MembershipTask) predicate.MembershipTask {
	return predicate.MembershipTask(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.MembershipTask) predicate.MembershipTask {
	return predicate.MembershipTask(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.MembershipTask) predicate.MembershipTask {
	return predicate.MembershipTask(sql.NotPredicates(p))
}
