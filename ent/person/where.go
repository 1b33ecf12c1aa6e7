// Code generated by ent, DO NOT EDIT.

package person

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/carpentries/mailflow/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Person {
	return predicate.Person(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Person {
	return predicate.Person(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Person {
	return predicate.Person(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Person {
	return predicate.Person(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Person {
	return predicate.Person(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Person {
	return predicate.Person(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Person {
	return predicate.Person(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Person {
	return predicate.Person(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Person {
	return predicate.Person(sql.FieldLTE(FieldID, id))
}

// Personal applies equality check predicate on the "personal" field. It's identical to PersonalEQ.
func Personal(v string) predicate.Person {
	return predicate.Person(sql.FieldEQ(FieldPersonal, v))
}

// Family applies equality check predicate on the "family" field. It's identical to FamilyEQ.
func Family(v string) predicate.Person {
	return predicate.Person(sql.FieldEQ(FieldFamily, v))
}

// Email applies equality check predicate on the "email" field. It's identical to EmailEQ.
func Email(v string) predicate.Person {
	return predicate.Person(sql.FieldEQ(FieldEmail, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Person {
	return predicate.Person(sql.FieldEQ(FieldCreatedAt, v))
}

// PersonalEQ applies the EQ predicate on the "personal" field.
func PersonalEQ(v string) predicate.Person {
	return predicate.Person(sql.FieldEQ(FieldPersonal, v))
}

// PersonalNEQ applies the NEQ predicate on the "personal" field.
func PersonalNEQ(v string) predicate.Person {
	return predicate.Person(sql.FieldNEQ(FieldPersonal, v))
}

// PersonalIn applies the In predicate on the "personal" field.
func PersonalIn(vs ...string) predicate.Person {
	return predicate.Person(sql.FieldIn(FieldPersonal, vs...))
}

// PersonalNotIn applies the NotIn predicate on the "personal" field.
func PersonalNotIn(vs ...string) predicate.Person {
	return predicate.Person(sql.FieldNotIn(FieldPersonal, vs...))
}

// PersonalGT applies the GT predicate on the "personal" field.
func PersonalGT(v string) predicate.Person {
	return predicate.Person(sql.FieldGT(FieldPersonal, v))
}

// PersonalGTE applies the GTE predicate on the "personal" field.
func PersonalGTE(v string) predicate.Person {
	return predicate.Person(sql.FieldGTE(FieldPersonal, v))
}

// PersonalLT applies the LT predicate on the "personal" field.
func PersonalLT(v string) predicate.Person {
	return predicate.Person(sql.FieldLT(FieldPersonal, v))
}

// PersonalLTE applies the LTE predicate on the "personal" field.
func PersonalLTE(v string) predicate.Person {
	return predicate.Person(sql.FieldLTE(FieldPersonal, v))
}

// PersonalContains applies the Contains predicate on the "personal" field.
func PersonalContains(v string) predicate.Person {
	return predicate.Person(sql.FieldContains(FieldPersonal, v))
}

// PersonalHasPrefix applies the HasPrefix predicate on the "personal" field.
func PersonalHasPrefix(v string) predicate.Person {
	return predicate.Person(sql.FieldHasPrefix(FieldPersonal, v))
}

// PersonalHasSuffix applies the HasSuffix predicate on the "personal" field.
func PersonalHasSuffix(v string) predicate.Person {
	return predicate.Person(sql.FieldHasSuffix(FieldPersonal, v))
}

// PersonalEqualFold applies the EqualFold predicate on the "personal" field.
func PersonalEqualFold(v string) predicate.Person {
	return predicate.Person(sql.FieldEqualFold(FieldPersonal, v))
}

// PersonalContainsFold applies the ContainsFold predicate on the "personal" field.
func PersonalContainsFold(v string) predicate.Person {
	return predicate.Person(sql.FieldContainsFold(FieldPersonal, v))
}

// FamilyEQ applies the EQ predicate on the "family" field.
func FamilyEQ(v string) predicate.Person {
	return predicate.Person(sql.FieldEQ(FieldFamily, v))
}

// FamilyNEQ applies the NEQ predicate on the "family" field.
func FamilyNEQ(v string) predicate.Person {
	return predicate.Person(sql.FieldNEQ(FieldFamily, v))
}

// FamilyIn applies the In predicate on the "family" field.
func FamilyIn(vs ...string) predicate.Person {
	return predicate.Person(sql.FieldIn(FieldFamily, vs...))
}

// FamilyNotIn applies the NotIn predicate on the "family" field.
func FamilyNotIn(vs ...string) predicate.Person {
	return predicate.Person(sql.FieldNotIn(FieldFamily, vs...))
}

// FamilyGT applies the GT predicate on the "family" field.
func FamilyGT(v string) predicate.Person {
	return predicate.Person(sql.FieldGT(FieldFamily, v))
}

// FamilyGTE applies the GTE predicate on the "family" field.
func FamilyGTE(v string) predicate.Person {
	return predicate.Person(sql.FieldGTE(FieldFamily, v))
}

// FamilyLT applies the LT predicate on the "family" field.
func FamilyLT(v string) predicate.Person {
	return predicate.Person(sql.FieldLT(FieldFamily, v))
}

// FamilyLTE applies the LTE predicate on the "family" field.
func FamilyLTE(v string) predicate.Person {
	return predicate.Person(sql.FieldLTE(FieldFamily, v))
}

// FamilyContains applies the Contains predicate on the "family" field.
func FamilyContains(v string) predicate.Person {
	return predicate.Person(sql.FieldContains(FieldFamily, v))
}

// FamilyHasPrefix applies the HasPrefix predicate on the "family" field.
func FamilyHasPrefix(v string) predicate.Person {
	return predicate.Person(sql.FieldHasPrefix(FieldFamily, v))
}

// FamilyHasSuffix applies the HasSuffix predicate on the "family" field.
func FamilyHasSuffix(v string) predicate.Person {
	return predicate.Person(sql.FieldHasSuffix(FieldFamily, v))
}

// FamilyIsNil applies the IsNil predicate on the "family" field.
func FamilyIsNil() predicate.Person {
	return predicate.Person(sql.FieldIsNull(FieldFamily))
}

// FamilyNotNil applies the NotNil predicate on the "family" field.
func FamilyNotNil() predicate.Person {
	return predicate.Person(sql.FieldNotNull(FieldFamily))
}

// FamilyEqualFold applies the EqualFold predicate on the "family" field.
func FamilyEqualFold(v string) predicate.Person {
	return predicate.Person(sql.FieldEqualFold(FieldFamily, v))
}

// FamilyContainsFold applies the ContainsFold predicate on the "family" field.
func FamilyContainsFold(v string) predicate.Person {
	return predicate.Person(sql.FieldContainsFold(FieldFamily, v))
}

// EmailEQ applies the EQ predicate on the "email" field.
func EmailEQ(v string) predicate.Person {
	return predicate.Person(sql.FieldEQ(FieldEmail, v))
}

// EmailNEQ applies the NEQ predicate on the "email" field.
func EmailNEQ(v string) predicate.Person {
	return predicate.Person(sql.FieldNEQ(FieldEmail, v))
}

// EmailIn applies the In predicate on the "email" field.
func EmailIn(vs ...string) predicate.Person {
	return predicate.Person(sql.FieldIn(FieldEmail, vs...))
}

// EmailNotIn applies the NotIn predicate on the "email" field.
func EmailNotIn(vs ...string) predicate.Person {
	return predicate.Person(sql.FieldNotIn(FieldEmail, vs...))
}

// EmailGT applies the GT predicate on the "email" field.
func EmailGT(v string) predicate.Person {
	return predicate.Person(sql.FieldGT(FieldEmail, v))
}

// EmailGTE applies the GTE predicate on the "email" field.
func EmailGTE(v string) predicate.Person {
	return predicate.Person(sql.FieldGTE(FieldEmail, v))
}

// EmailLT applies the LT predicate on the "email" field.
func EmailLT(v string) predicate.Person {
	return predicate.Person(sql.FieldLT(FieldEmail, v))
}

// EmailLTE applies the LTE predicate on the "email" field.
func EmailLTE(v string) predicate.Person {
	return predicate.Person(sql.FieldLTE(FieldEmail, v))
}

// EmailContains applies the Contains predicate on the "email" field.
func EmailContains(v string) predicate.Person {
	return predicate.Person(sql.FieldContains(FieldEmail, v))
}

// EmailHasPrefix applies the HasPrefix predicate on the "email" field.
func EmailHasPrefix(v string) predicate.Person {
	return predicate.Person(sql.FieldHasPrefix(FieldEmail, v))
}

// EmailHasSuffix applies the HasSuffix predicate on the "email" field.
func EmailHasSuffix(v string) predicate.Person {
	return predicate.Person(sql.FieldHasSuffix(FieldEmail, v))
}

// EmailIsNil applies the IsNil predicate on the "email" field.
func EmailIsNil() predicate.Person {
	return predicate.Person(sql.FieldIsNull(FieldEmail))
}

// EmailNotNil applies the NotNil predicate on the "email" field.
func EmailNotNil() predicate.Person {
	return predicate.Person(sql.FieldNotNull(FieldEmail))
}

// EmailEqualFold applies the EqualFold predicate on the "email" field.
func EmailEqualFold(v string) predicate.Person {
	return predicate.Person(sql.FieldEqualFold(FieldEmail, v))
}

// EmailContainsFold applies the ContainsFold predicate on the "email" field.
func EmailContainsFold(v string) predicate.Person {
	return predicate.Person(sql.FieldContainsFold(FieldEmail, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Person {
	return predicate.Person(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Person {
	return predicate.Person(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Person {
	return predicate.Person(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Person {
	return predicate.Person(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Person {
	return predicate.Person(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Person {
	return predicate.Person(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Person {
	return predicate.Person(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Person {
	return predicate.Person(sql.FieldLTE(FieldCreatedAt, v))
}

// HasTasks applies the HasEdge predicate on the "tasks" edge.
func HasTasks() predicate.Person {
	return predicate.Person(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, TasksTable, TasksColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTasksWith applies the HasEdge predicate on the "tasks" edge with a given conditions (other predicates).
func HasTasksWith(preds ...predicate.Task) predicate.Person {
	return predicate.Person(func(s *sql.Selector) {
		step := newTasksStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasAwards applies the HasEdge predicate on the "awards" edge.
func HasAwards() predicate.Person {
	return predicate.Person(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, AwardsTable, AwardsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAwardsWith applies the HasEdge predicate on the "awards" edge with a given conditions (other predicates).
func HasAwardsWith(preds ...predicate.Award) predicate.Person {
	return predicate.Person(func(s *sql.Selector) {
		step := newAwardsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasTrainingProgresses applies the HasEdge predicate on the "training_progresses" edge.
func HasTrainingProgresses() predicate.Person {
	return predicate.Person(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, TrainingProgressesTable, TrainingProgressesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTrainingProgressesWith applies the HasEdge predicate on the "training_progresses" edge with a given conditions (other predicates).
func HasTrainingProgressesWith(preds ...predicate.TrainingProgress) predicate.Person {
	return predicate.Person(func(s *sql.Selector) {
		step := newTrainingProgressesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasMembershipTasks applies the HasEdge predicate on the "membership_tasks" edge.
func HasMembershipTasks() predicate.Person {
	return predicate.Person(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, MembershipTasksTable, MembershipTasksColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasMembershipTasksWith applies the HasEdge predicate on the "membership_tasks" edge with a given conditions (other predicates).
func HasMembershipTasksWith(preds ...predicate.MembershipTask) predicate.Person {
	return predicate.Person(func(s *sql.Selector) {
		step := newMembershipTasksStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Person) predicate.Person {
	return predicate.Person(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Person) predicate.Person {
	return predicate.Person(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Person) predicate.Person {
	return predicate.Person(sql.NotPredicates(p))
}
