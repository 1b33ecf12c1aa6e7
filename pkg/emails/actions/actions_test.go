package actions

import (
	"context"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carpentries/mailflow/ent"
	"github.com/carpentries/mailflow/ent/enttest"
	"github.com/carpentries/mailflow/ent/scheduledemail"
	"github.com/carpentries/mailflow/ent/task"
	"github.com/carpentries/mailflow/pkg/emails"
	"github.com/carpentries/mailflow/pkg/emails/signals"
	"github.com/carpentries/mailflow/pkg/emails/strategy"
	"github.com/carpentries/mailflow/pkg/flags"
	"github.com/carpentries/mailflow/pkg/relations"
	"github.com/carpentries/mailflow/pkg/templateengine"
)

// setupTestDB creates an in-memory SQLite database for testing
func setupTestDB(t *testing.T) *ent.Client {
	opts := []enttest.Option{
		enttest.WithOptions(ent.Log(t.Log)),
	}

	client := enttest.Open(t, "sqlite3", "file:ent?mode=memory&cache=shared&_fk=1", opts...)
	return client
}

func newTestExecutor(t *testing.T, client *ent.Client, enabled bool) (*Executor, *emails.Controller) {
	ctrl := emails.NewController(client, templateengine.NewGoTemplateEngine(), emails.Options{})
	ff := flags.New(enabled, nil, nil)
	fixed := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	exec := NewExecutorWithClock(ctrl, ff, nil, nil, func() time.Time { return fixed })
	return exec, ctrl
}

func createSignalTemplate(t *testing.T, client *ent.Client, signal, subject, body string) *ent.EmailTemplate {
	tmpl, err := client.EmailTemplate.Create().
		SetName("Template for " + signal).
		SetSignal(signal).
		SetFromHeader("team@example.org").
		SetSubject(subject).
		SetBody(body).
		Save(context.Background())
	require.NoError(t, err)
	return tmpl
}

func createAwardFixture(t *testing.T, client *ent.Client) (*ent.Award, relations.Ref) {
	ctx := context.Background()
	person, err := client.Person.Create().
		SetPersonal("Grace").
		SetFamily("Hopper").
		SetEmail("grace@example.org").
		Save(ctx)
	require.NoError(t, err)

	award, err := client.Award.Create().
		SetBadge("instructor").
		SetPersonID(person.ID).
		Save(ctx)
	require.NoError(t, err)

	return award, relations.Ref{Kind: relations.KindAward, ID: award.ID}
}

func TestDefaultRegistry_CoversAllSignals(t *testing.T) {
	registry := DefaultRegistry()

	for _, signal := range signals.All() {
		handler, ok := registry[signal]
		require.True(t, ok, "missing handler for %s", signal)
		assert.Equal(t, signal, handler.Signal())
	}
	assert.Len(t, registry, len(signals.All()))
}

func TestExecutor_Create(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()
	ctx := context.Background()

	exec, _ := newTestExecutor(t, client, true)
	createSignalTemplate(t, client, signals.InstructorBadgeAwarded,
		"Congratulations {{.person.personal}}", "Well done, {{.person.personal}}!")
	_, ref := createAwardFixture(t, client)

	outcome, err := exec.Run(ctx, strategy.DecisionCreate, BadgeAwardedHandler{}, ref)
	require.NoError(t, err)
	assert.Equal(t, OutcomeScheduled, outcome)

	email, err := client.ScheduledEmail.Query().Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Congratulations Grace", email.Subject)
	assert.Equal(t, []string{"grace@example.org"}, email.ToHeader)
	assert.Equal(t, scheduledemail.RelatedToAward, email.RelatedTo)
	assert.Equal(t, ref.ID, email.RelatedID)
	// Immediate emails go out after the cancellation grace period
	assert.Equal(t, time.Date(2026, 3, 1, 13, 0, 0, 0, time.UTC), email.ScheduledAt.UTC())
}

func TestExecutor_CreateMissingTemplateIsSkipped(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()
	ctx := context.Background()

	exec, _ := newTestExecutor(t, client, true)
	_, ref := createAwardFixture(t, client)

	outcome, err := exec.Run(ctx, strategy.DecisionCreate, BadgeAwardedHandler{}, ref)
	require.NoError(t, err)
	assert.Equal(t, OutcomeMissingTemplate, outcome)

	count, err := client.ScheduledEmail.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestExecutor_CreateMissingRecipientsIsSkipped(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()
	ctx := context.Background()

	exec, _ := newTestExecutor(t, client, true)
	createSignalTemplate(t, client, signals.InstructorBadgeAwarded, "Subject", "Body")

	// The awardee has no email address, so there is nobody to send to
	person, err := client.Person.Create().
		SetPersonal("Grace").
		SetFamily("Hopper").
		Save(ctx)
	require.NoError(t, err)
	award, err := client.Award.Create().
		SetBadge("instructor").
		SetPersonID(person.ID).
		Save(ctx)
	require.NoError(t, err)

	outcome, err := exec.Run(ctx, strategy.DecisionCreate, BadgeAwardedHandler{},
		relations.Ref{Kind: relations.KindAward, ID: award.ID})
	require.NoError(t, err)
	assert.Equal(t, OutcomeMissingRecipients, outcome)

	count, err := client.ScheduledEmail.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestExecutor_DisabledModuleSkipsEverything(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()
	ctx := context.Background()

	exec, _ := newTestExecutor(t, client, false)
	createSignalTemplate(t, client, signals.InstructorBadgeAwarded, "Subject", "Body")
	_, ref := createAwardFixture(t, client)

	outcome, err := exec.Run(ctx, strategy.DecisionCreate, BadgeAwardedHandler{}, ref)
	require.NoError(t, err)
	assert.Equal(t, OutcomeNone, outcome)

	count, err := client.ScheduledEmail.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestExecutor_Update(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()
	ctx := context.Background()

	exec, _ := newTestExecutor(t, client, true)
	tmpl := createSignalTemplate(t, client, signals.InstructorBadgeAwarded,
		"Congratulations {{.person.personal}}", "Well done!")
	_, ref := createAwardFixture(t, client)

	_, err := exec.Run(ctx, strategy.DecisionCreate, BadgeAwardedHandler{}, ref)
	require.NoError(t, err)

	// A template edit is only picked up by an explicit update
	_, err = tmpl.Update().SetSubject("Welcome aboard, {{.person.personal}}").Save(ctx)
	require.NoError(t, err)

	outcome, err := exec.Run(ctx, strategy.DecisionUpdate, BadgeAwardedHandler{}, ref)
	require.NoError(t, err)
	assert.Equal(t, OutcomeUpdated, outcome)

	email, err := client.ScheduledEmail.Query().Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Welcome aboard, Grace", email.Subject)
	assert.Equal(t, scheduledemail.StateScheduled, email.State)
}

func TestExecutor_UpdateWithoutMatchIsHarmless(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()
	ctx := context.Background()

	exec, _ := newTestExecutor(t, client, true)
	createSignalTemplate(t, client, signals.InstructorBadgeAwarded, "Subject", "Body")
	_, ref := createAwardFixture(t, client)

	outcome, err := exec.Run(ctx, strategy.DecisionUpdate, BadgeAwardedHandler{}, ref)
	require.NoError(t, err)
	assert.Equal(t, OutcomeNone, outcome)

	count, err := client.ScheduledEmail.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestExecutor_CancelCancelsAllPending(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()
	ctx := context.Background()

	exec, ctrl := newTestExecutor(t, client, true)
	createSignalTemplate(t, client, signals.InstructorBadgeAwarded, "Subject", "Body")
	_, ref := createAwardFixture(t, client)

	_, err := exec.Run(ctx, strategy.DecisionCreate, BadgeAwardedHandler{}, ref)
	require.NoError(t, err)

	outcome, err := exec.Run(ctx, strategy.DecisionCancel, BadgeAwardedHandler{}, ref)
	require.NoError(t, err)
	assert.Equal(t, OutcomeCancelled, outcome)

	email, err := client.ScheduledEmail.Query().Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, scheduledemail.StateCancelled, email.State)

	// Audit trail records the cancellation
	logs, err := ctrl.EmailLogs(ctx, email.ID)
	require.NoError(t, err)
	require.NotEmpty(t, logs)
	assert.Equal(t, "Email was cancelled", logs[0].Details)
}

func TestExecutor_NoopDoesNothing(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()
	ctx := context.Background()

	exec, _ := newTestExecutor(t, client, true)
	_, ref := createAwardFixture(t, client)

	outcome, err := exec.Run(ctx, strategy.DecisionNoop, BadgeAwardedHandler{}, ref)
	require.NoError(t, err)
	assert.Equal(t, OutcomeNone, outcome)

	count, err := client.ScheduledEmail.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestExecutor_UnknownDecision(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()

	exec, _ := newTestExecutor(t, client, true)
	_, ref := createAwardFixture(t, client)

	_, err := exec.Run(context.Background(), strategy.Decision(42), BadgeAwardedHandler{}, ref)
	assert.ErrorIs(t, err, strategy.ErrUnknownDecision)
}

func TestOffsetOr(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	base := time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)

	assert.Equal(t, base.Add(-24*time.Hour), offsetOr(&base, -24*time.Hour, now))
	assert.Equal(t, now.Add(OneHour), offsetOr(nil, time.Hour, now))
}

func TestTrainingApproaching_Lifecycle(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()
	ctx := context.Background()

	fixed := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	ctrl := emails.NewController(client, templateengine.NewGoTemplateEngine(), emails.Options{})
	exec := NewExecutorWithClock(ctrl, flags.New(true, nil, nil), nil, nil, func() time.Time { return fixed })
	strategies := strategy.NewWithClock(client, func() time.Time { return fixed })

	createSignalTemplate(t, client, signals.InstructorTrainingApproaching,
		"Training starts {{.event.start_date}}", "See you at {{.event.slug}}!")

	start := fixed.AddDate(0, 2, 0)
	event, err := client.Event.Create().
		SetSlug("2026-05-01-ttt-online").
		SetTags([]string{"TTT"}).
		SetStartDate(start).
		Save(ctx)
	require.NoError(t, err)

	var trainerIDs []int
	for _, address := range []string{"t1@example.org", "t2@example.org"} {
		trainer, err := client.Person.Create().
			SetPersonal("Trainer").
			SetEmail(address).
			Save(ctx)
		require.NoError(t, err)
		trainerTask, err := client.Task.Create().
			SetRole(task.RoleInstructor).
			SetEventID(event.ID).
			SetPersonID(trainer.ID).
			Save(ctx)
		require.NoError(t, err)
		trainerIDs = append(trainerIDs, trainerTask.ID)
	}

	ref := relations.Ref{Kind: relations.KindEvent, ID: event.ID}

	// Two trainers and a future start: the reminder gets scheduled
	decision, err := strategies.InstructorTrainingApproaching(ctx, event)
	require.NoError(t, err)
	require.Equal(t, strategy.DecisionCreate, decision)
	outcome, err := exec.Run(ctx, decision, TrainingApproachingHandler{}, ref)
	require.NoError(t, err)
	assert.Equal(t, OutcomeScheduled, outcome)

	email, err := client.ScheduledEmail.Query().Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Training starts 2026-05-01", email.Subject)
	assert.Equal(t, []string{"t1@example.org", "t2@example.org"}, email.ToHeader)
	assert.Equal(t, start.AddDate(0, 0, -30), email.ScheduledAt.UTC())

	// Re-evaluating with no domain change refreshes the same row in place:
	// still one email, identical content.
	decision, err = strategies.InstructorTrainingApproaching(ctx, event)
	require.NoError(t, err)
	require.Equal(t, strategy.DecisionUpdate, decision)
	outcome, err = exec.Run(ctx, decision, TrainingApproachingHandler{}, ref)
	require.NoError(t, err)
	assert.Equal(t, OutcomeUpdated, outcome)

	unchanged, err := client.ScheduledEmail.Query().Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, email.ID, unchanged.ID)
	assert.Equal(t, email.Subject, unchanged.Subject)
	assert.Equal(t, email.ToHeader, unchanged.ToHeader)
	assert.Equal(t, email.ScheduledAt.UTC(), unchanged.ScheduledAt.UTC())

	// Start date moves: the pending email is recomputed, not duplicated
	newStart := fixed.AddDate(0, 3, 0)
	event, err = event.Update().SetStartDate(newStart).Save(ctx)
	require.NoError(t, err)

	decision, err = strategies.InstructorTrainingApproaching(ctx, event)
	require.NoError(t, err)
	require.Equal(t, strategy.DecisionUpdate, decision)
	outcome, err = exec.Run(ctx, decision, TrainingApproachingHandler{}, ref)
	require.NoError(t, err)
	assert.Equal(t, OutcomeUpdated, outcome)

	email, err = client.ScheduledEmail.Query().Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Training starts 2026-06-01", email.Subject)
	assert.Equal(t, newStart.AddDate(0, 0, -30), email.ScheduledAt.UTC())

	// A trainer drops out: conditions no longer hold, the email is cancelled
	require.NoError(t, client.Task.DeleteOneID(trainerIDs[0]).Exec(ctx))

	decision, err = strategies.InstructorTrainingApproaching(ctx, event)
	require.NoError(t, err)
	require.Equal(t, strategy.DecisionCancel, decision)
	outcome, err = exec.Run(ctx, decision, TrainingApproachingHandler{}, ref)
	require.NoError(t, err)
	assert.Equal(t, OutcomeCancelled, outcome)

	email, err = client.ScheduledEmail.Query().Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, scheduledemail.StateCancelled, email.State)

	// Another evaluation after the cancel is a pure no-op: the conditions
	// still fail and no pending email exists, so nothing moves.
	decision, err = strategies.InstructorTrainingApproaching(ctx, event)
	require.NoError(t, err)
	require.Equal(t, strategy.DecisionNoop, decision)
	outcome, err = exec.Run(ctx, decision, TrainingApproachingHandler{}, ref)
	require.NoError(t, err)
	assert.Equal(t, OutcomeNone, outcome)

	count, err := client.ScheduledEmail.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
	email, err = client.ScheduledEmail.Query().Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, scheduledemail.StateCancelled, email.State)
}
