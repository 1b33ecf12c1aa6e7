package actions

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carpentries/mailflow/ent"
	"github.com/carpentries/mailflow/ent/membershiptask"
	"github.com/carpentries/mailflow/ent/scheduledemail"
	"github.com/carpentries/mailflow/pkg/emails"
	"github.com/carpentries/mailflow/pkg/emails/signals"
	"github.com/carpentries/mailflow/pkg/emails/strategy"
	"github.com/carpentries/mailflow/pkg/flags"
	"github.com/carpentries/mailflow/pkg/relations"
	"github.com/carpentries/mailflow/pkg/templateengine"
)

func newTestRunner(t *testing.T, client *ent.Client) *Runner {
	ctrl := emails.NewController(client, templateengine.NewGoTemplateEngine(), emails.Options{})
	fixed := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	return NewRunnerWithClock(ctrl, flags.New(true, nil, nil), nil, nil,
		func() time.Time { return fixed })
}

func TestRunner_EvaluateSchedulesBadgeEmail(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()
	ctx := context.Background()

	runner := newTestRunner(t, client)
	createSignalTemplate(t, client, signals.InstructorBadgeAwarded,
		"Congratulations {{.person.personal}}", "Well done!")
	_, ref := createAwardFixture(t, client)

	decision, outcome, err := runner.Evaluate(ctx, signals.InstructorBadgeAwarded, ref)
	require.NoError(t, err)
	assert.Equal(t, strategy.DecisionCreate, decision)
	assert.Equal(t, OutcomeScheduled, outcome)

	email, err := client.ScheduledEmail.Query().Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Congratulations Grace", email.Subject)
	assert.Equal(t, scheduledemail.StateScheduled, email.State)

	// Re-evaluating while the email is pending refreshes it in place.
	decision, outcome, err = runner.Evaluate(ctx, signals.InstructorBadgeAwarded, ref)
	require.NoError(t, err)
	assert.Equal(t, strategy.DecisionUpdate, decision)
	assert.Equal(t, OutcomeUpdated, outcome)

	count, err := client.ScheduledEmail.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestRunner_EvaluateNoopForNonInstructorBadge(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()
	ctx := context.Background()

	runner := newTestRunner(t, client)
	createSignalTemplate(t, client, signals.InstructorBadgeAwarded, "Subject", "Body")

	person, err := client.Person.Create().
		SetPersonal("Tim").
		SetFamily("Berners-Lee").
		SetEmail("tim@example.org").
		Save(ctx)
	require.NoError(t, err)
	award, err := client.Award.Create().
		SetBadge("trainer").
		SetPersonID(person.ID).
		Save(ctx)
	require.NoError(t, err)

	decision, outcome, err := runner.Evaluate(ctx, signals.InstructorBadgeAwarded,
		relations.Ref{Kind: relations.KindAward, ID: award.ID})
	require.NoError(t, err)
	assert.Equal(t, strategy.DecisionNoop, decision)
	assert.Equal(t, OutcomeNone, outcome)

	count, err := client.ScheduledEmail.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestRunner_EvaluateUnknownSignal(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()

	runner := newTestRunner(t, client)

	_, _, err := runner.Evaluate(context.Background(), "no_such_signal",
		relations.Ref{Kind: relations.KindAward, ID: 1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no handler registered")
}

func TestRunner_EvaluateWrongTargetKind(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()

	runner := newTestRunner(t, client)

	_, _, err := runner.Evaluate(context.Background(), signals.InstructorBadgeAwarded,
		relations.Ref{Kind: relations.KindEvent, ID: 1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "targets award objects")
}

func TestRunner_EvaluateMissingTarget(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()

	runner := newTestRunner(t, client)

	_, _, err := runner.Evaluate(context.Background(), signals.InstructorBadgeAwarded,
		relations.Ref{Kind: relations.KindAward, ID: 9999})
	require.Error(t, err)
	assert.True(t, ent.IsNotFound(err))
}

func TestRunner_EvaluateMembershipSignal(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()
	ctx := context.Background()

	runner := newTestRunner(t, client)
	createSignalTemplate(t, client, signals.NewMembershipOnboarding,
		"Welcome {{.membership.name}}", "Hello!")

	person, err := client.Person.Create().
		SetPersonal("Mary").
		SetFamily("Jackson").
		SetEmail("mary@example.org").
		Save(ctx)
	require.NoError(t, err)

	membership, err := client.Membership.Create().
		SetName("NASA Langley").
		SetVariant("gold").
		SetAgreementStart(time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)).
		SetAgreementEnd(time.Date(2027, 2, 1, 0, 0, 0, 0, time.UTC)).
		Save(ctx)
	require.NoError(t, err)

	_, err = client.MembershipTask.Create().
		SetRole(membershiptask.RoleBillingContact).
		SetMembershipID(membership.ID).
		SetPersonID(person.ID).
		Save(ctx)
	require.NoError(t, err)

	decision, outcome, err := runner.Evaluate(ctx, signals.NewMembershipOnboarding,
		relations.Ref{Kind: relations.KindMembership, ID: membership.ID})
	require.NoError(t, err)
	assert.Equal(t, strategy.DecisionCreate, decision)
	assert.Equal(t, OutcomeScheduled, outcome)

	email, err := client.ScheduledEmail.Query().Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Welcome NASA Langley", email.Subject)
	assert.Equal(t, []string{"mary@example.org"}, email.ToHeader)
}
