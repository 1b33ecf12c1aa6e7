// Code generated by ent, DO NOT EDIT.

package award

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/carpentries/mailflow/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Award {
	return predicate.Award(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Award {
	return predicate.Award(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Award {
	return predicate.Award(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Award {
	return predicate.Award(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Award {
	return predicate.Award(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Award {
	return predicate.Award(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Award {
	return predicate.Award(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Award {
	return predicate.Award(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Award {
	return predicate.Award(sql.FieldLTE(FieldID, id))
}

// Badge applies equality check predicate on the "badge" field. It's identical to BadgeEQ.
func Badge(v string) predicate.Award {
	return predicate.Award(sql.FieldEQ(FieldBadge, v))
}

// Awarded applies equality check predicate on the "awarded" field. It's identical to AwardedEQ.
func Awarded(v time.Time) predicate.Award {
	return predicate.Award(sql.FieldEQ(FieldAwarded, v))
}

// PersonID applies equality check predicate on the "person_id" field. It's identical to PersonIDEQ.
func PersonID(v int) predicate.Award {
	return predicate.Award(sql.FieldEQ(FieldPersonID, v))
}

// BadgeEQ applies the EQ predicate on the "badge" field.
func BadgeEQ(v string) predicate.Award {
	return predicate.Award(sql.FieldEQ(FieldBadge, v))
}

// BadgeNEQ applies the NEQ predicate on the "badge" field.
func BadgeNEQ(v string) predicate.Award {
	return predicate.Award(sql.FieldNEQ(FieldBadge, v))
}

// BadgeIn applies the In predicate on the "badge" field.
func BadgeIn(vs ...string) predicate.Award {
	return predicate.Award(sql.FieldIn(FieldBadge, vs...))
}

// BadgeNotIn applies the NotIn predicate on the "badge" field.
func BadgeNotIn(vs ...string) predicate.Award {
	return predicate.Award(sql.FieldNotIn(FieldBadge, vs...))
}

// BadgeGT applies the GT predicate on the "badge" field.
func BadgeGT(v string) predicate.Award {
	return predicate.Award(sql.FieldGT(FieldBadge, v))
}

// BadgeGTE applies the GTE predicate on the "badge" field.
func BadgeGTE(v string) predicate.Award {
	return predicate.Award(sql.FieldGTE(FieldBadge, v))
}

// BadgeLT applies the LT predicate on the "badge" field.
func BadgeLT(v string) predicate.Award {
	return predicate.Award(sql.FieldLT(FieldBadge, v))
}

// BadgeLTE applies the LTE predicate on the "badge" field.
func BadgeLTE(v string) predicate.Award {
	return predicate.Award(sql.FieldLTE(FieldBadge, v))
}

// BadgeContains applies the Contains predicate on the "badge" field.
func BadgeContains(v string) predicate.Award {
	return predicate.Award(sql.FieldContains(FieldBadge, v))
}

// BadgeHasPrefix applies the HasPrefix predicate on the "badge" field.
func BadgeHasPrefix(v string) predicate.Award {
	return predicate.Award(sql.FieldHasPrefix(FieldBadge, v))
}

// BadgeHasSuffix applies the HasSuffix predicate on the "badge" field.
func BadgeHasSuffix(v string) predicate.Award {
	return predicate.Award(sql.FieldHasSuffix(FieldBadge, v))
}

// BadgeEqualFold applies the EqualFold predicate on the "badge" field.
func BadgeEqualFold(v string) predicate.Award {
	return predicate.Award(sql.FieldEqualFold(FieldBadge, v))
}

// BadgeContainsFold applies the ContainsFold predicate on the "badge" field.
func BadgeContainsFold(v string) predicate.Award {
	return predicate.Award(sql.FieldContainsFold(FieldBadge, v))
}

// AwardedEQ applies the EQ predicate on the "awarded" field.
func AwardedEQ(v time.Time) predicate.Award {
	return predicate.Award(sql.FieldEQ(FieldAwarded, v))
}

// AwardedNEQ applies the NEQ predicate on the "awarded" field.
func AwardedNEQ(v time.Time) predicate.Award {
	return predicate.Award(sql.FieldNEQ(FieldAwarded, v))
}

// AwardedIn applies the In predicate on the "awarded" field.
func AwardedIn(vs ...time.Time) predicate.Award {
	return predicate.Award(sql.FieldIn(FieldAwarded, vs...))
}

// AwardedNotIn applies the NotIn predicate on the "awarded" field.
func AwardedNotIn(vs ...time.Time) predicate.Award {
	return predicate.Award(sql.FieldNotIn(FieldAwarded, vs...))
}

// AwardedGT applies the GT predicate on the "awarded" field.
func AwardedGT(v time.Time) predicate.Award {
	return predicate.Award(sql.FieldGT(FieldAwarded, v))
}

// AwardedGTE applies the GTE predicate on the "awarded" field.
func AwardedGTE(v time.Time) predicate.Award {
	return predicate.Award(sql.FieldGTE(FieldAwarded, v))
}

// AwardedLT applies the LT predicate on the "awarded" field.
func AwardedLT(v time.Time) predicate.Award {
	return predicate.Award(sql.FieldLT(FieldAwarded, v))
}

// AwardedLTE applies the LTE predicate on the "awarded" field.
func AwardedLTE(v time.Time) predicate.Award {
	return predicate.Award(sql.FieldLTE(FieldAwarded, v))
}

// PersonIDEQ applies the EQ predicate on the "person_id" field.
func PersonIDEQ(v int) predicate.Award {
	return predicate.Award(sql.FieldEQ(FieldPersonID, v))
}

// PersonIDNEQ applies the NEQ predicate on the "person_id" field.
func PersonIDNEQ(v int) predicate.Award {
	return predicate.Award(sql.FieldNEQ(FieldPersonID, v))
}

// PersonIDIn applies the In predicate on the "person_id" field.
func PersonIDIn(vs ...int) predicate.Award {
	return predicate.Award(sql.FieldIn(FieldPersonID, vs...))
}

// PersonIDNotIn applies the NotIn predicate on the "person_id" field.
func PersonIDNotIn(vs ...int) predicate.Award {
	return predicate.Award(sql.FieldNotIn(FieldPersonID, vs...))
}

// HasPerson applies the HasEdge predicate on the "person" edge.
func HasPerson() predicate.Award {
	return predicate.Award(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, PersonTable, PersonColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasPersonWith applies the HasEdge predicate on the "person" edge with a given conditions (other predicates).
func HasPersonWith(preds ...predicate.Person) predicate.Award {
	return predicate.Award(func(s *sql.Selector) {
		step := newPersonStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Award) predicate.Award {
	return predicate.Award(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Award) predicate.Award {
	return predicate.Award(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Award) predicate.Award {
	return predicate.Award(sql.NotPredicates(p))
}
