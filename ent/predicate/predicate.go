// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Award is the predicate function for award builders.
type Award func(*sql.Selector)

// EmailAttachment is the predicate function for emailattachment builders.
type EmailAttachment func(*sql.Selector)

// EmailTemplate is the predicate function for emailtemplate builders.
type EmailTemplate func(*sql.Selector)

// Event is the predicate function for event builders.
type Event func(*sql.Selector)

// Membership is the predicate function for membership builders.
type Membership func(*sql.Selector)

// MembershipTask is the predicate function for membershiptask builders.
type MembershipTask func(*sql.Selector)

// Organization is the predicate function for organization builders.
type Organization func(*sql.Selector)

// Person is the predicate function for person builders.
type Person func(*sql.Selector)

// ScheduledEmail is the predicate function for scheduledemail builders.
type ScheduledEmail func(*sql.Selector)

// ScheduledEmailLog is the predicate function for scheduledemaillog builders.
type ScheduledEmailLog func(*sql.Selector)

// Task is the predicate function for task builders.
type Task func(*sql.Selector)

// TrainingProgress is the predicate function for trainingprogress builders.
type TrainingProgress func(*sql.Selector)
