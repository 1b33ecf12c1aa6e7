package emails

import (
	"context"
	"fmt"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carpentries/mailflow/ent"
	"github.com/carpentries/mailflow/ent/enttest"
	"github.com/carpentries/mailflow/ent/scheduledemail"
	"github.com/carpentries/mailflow/ent/scheduledemaillog"
	"github.com/carpentries/mailflow/pkg/attachments"
	"github.com/carpentries/mailflow/pkg/models"
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

func newTestController(client *ent.Client, opts Options) *Controller {
	return NewController(client, templateengine.NewGoTemplateEngine(), opts)
}

func createTestTemplate(t *testing.T, client *ent.Client, signal, subject, body string) *ent.EmailTemplate {
	tmpl, err := client.EmailTemplate.Create().
		SetName("Template for " + signal).
		SetSignal(signal).
		SetActive(true).
		SetFromHeader("team@example.org").
		SetReplyToHeader("replies@example.org").
		SetCcHeader([]string{"cc@example.org"}).
		SetSubject(subject).
		SetBody(body).
		Save(context.Background())
	require.NoError(t, err)
	return tmpl
}

func createTestPerson(t *testing.T, client *ent.Client, personal, email string) *ent.Person {
	p, err := client.Person.Create().
		SetPersonal(personal).
		SetFamily("Tester").
		SetEmail(email).
		Save(context.Background())
	require.NoError(t, err)
	return p
}

func paramsForPerson(signal string, p *ent.Person, at time.Time) ScheduleParams {
	return ScheduleParams{
		Signal: signal,
		ContextJSON: map[string]any{
			"person": relations.ModelURI("person", p.ID),
		},
		ScheduledAt: at,
		ToHeader:    []string{p.Email},
		ToHeaderContextJSON: []models.ToHeaderRef{
			{APIURI: relations.ModelURI("person", p.ID), Property: "email"},
		},
		Related: relations.Ref{Kind: relations.KindPerson, ID: p.ID},
	}
}

func TestScheduleEmail(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()

	createTestTemplate(t, client, "welcome", "Hello {{ .person.personal }}", "Hi {{ .person.name }}!")
	person := createTestPerson(t, client, "Ada", "ada@example.org")

	ctrl := newTestController(client, Options{})
	ctx := context.Background()

	at := time.Now().Add(time.Hour)
	email, err := ctrl.ScheduleEmail(ctx, paramsForPerson("welcome", person, at))
	require.NoError(t, err)

	assert.Equal(t, scheduledemail.StateScheduled, email.State)
	assert.Equal(t, "Hello Ada", email.Subject)
	assert.Equal(t, "Hi Ada Tester!", email.Body)
	assert.Equal(t, "team@example.org", email.FromHeader)
	assert.Equal(t, "replies@example.org", email.ReplyToHeader)
	assert.Equal(t, []string{"cc@example.org"}, email.CcHeader)
	assert.Equal(t, []string{"ada@example.org"}, email.ToHeader)
	assert.Equal(t, scheduledemail.RelatedToPerson, email.RelatedTo)
	assert.Equal(t, person.ID, email.RelatedID)
	require.NotNil(t, email.TemplateID)

	logs, err := ctrl.EmailLogs(ctx, email.ID)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Contains(t, logs[0].Details, "Email scheduled to run at")
	assert.Equal(t, scheduledemaillog.StateAfterScheduled, logs[0].StateAfter)
	assert.Empty(t, logs[0].StateBefore)
	assert.Nil(t, logs[0].AuthorID)
}

func TestScheduleEmail_MissingTemplate(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()

	person := createTestPerson(t, client, "Ada", "ada@example.org")

	ctrl := newTestController(client, Options{})
	ctx := context.Background()

	_, err := ctrl.ScheduleEmail(ctx, paramsForPerson("no_such_signal", person, time.Now()))
	require.ErrorIs(t, err, ErrMissingTemplate)

	// Nothing half-written
	count, err := client.ScheduledEmail.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
	count, err = client.ScheduledEmailLog.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestScheduleEmail_InactiveTemplate(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()

	tmpl := createTestTemplate(t, client, "welcome", "Hello", "Hi")
	_, err := tmpl.Update().SetActive(false).Save(context.Background())
	require.NoError(t, err)
	person := createTestPerson(t, client, "Ada", "ada@example.org")

	ctrl := newTestController(client, Options{})

	_, err = ctrl.ScheduleEmail(context.Background(), paramsForPerson("welcome", person, time.Now()))
	assert.ErrorIs(t, err, ErrMissingTemplate)
}

func TestScheduleEmail_MissingRecipients(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()

	createTestTemplate(t, client, "welcome", "Hello", "Hi")
	person := createTestPerson(t, client, "Ada", "ada@example.org")

	ctrl := newTestController(client, Options{})
	ctx := context.Background()

	p := paramsForPerson("welcome", person, time.Now())
	p.ToHeader = nil
	_, err := ctrl.ScheduleEmail(ctx, p)
	require.ErrorIs(t, err, ErrMissingRecipients)

	p = paramsForPerson("welcome", person, time.Now())
	p.ToHeaderContextJSON = nil
	_, err = ctrl.ScheduleEmail(ctx, p)
	require.ErrorIs(t, err, ErrMissingRecipients)

	count, err := client.ScheduledEmail.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestScheduleEmail_SnapshotFrozen(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()

	tmpl := createTestTemplate(t, client, "welcome", "Old subject", "Old body")
	person := createTestPerson(t, client, "Ada", "ada@example.org")

	ctrl := newTestController(client, Options{})
	ctx := context.Background()

	email, err := ctrl.ScheduleEmail(ctx, paramsForPerson("welcome", person, time.Now()))
	require.NoError(t, err)

	// Editing the template must not touch the already scheduled email.
	_, err = tmpl.Update().SetSubject("New subject").SetBody("New body").Save(ctx)
	require.NoError(t, err)

	reloaded, err := ctrl.GetEmail(ctx, email.ID)
	require.NoError(t, err)
	assert.Equal(t, "Old subject", reloaded.Subject)
	assert.Equal(t, "Old body", reloaded.Body)
}

func TestUpdateScheduledEmail_RefreshesFromTemplate(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()

	tmpl := createTestTemplate(t, client, "welcome", "Old subject", "Old body")
	person := createTestPerson(t, client, "Ada", "ada@example.org")

	ctrl := newTestController(client, Options{})
	ctx := context.Background()

	email, err := ctrl.ScheduleEmail(ctx, paramsForPerson("welcome", person, time.Now()))
	require.NoError(t, err)

	_, err = tmpl.Update().SetSubject("New subject for {{ .person.personal }}").Save(ctx)
	require.NoError(t, err)

	newAt := time.Now().Add(48 * time.Hour)
	updated, err := ctrl.UpdateScheduledEmail(ctx, email, paramsForPerson("welcome", person, newAt))
	require.NoError(t, err)

	assert.Equal(t, "New subject for Ada", updated.Subject)
	assert.Equal(t, scheduledemail.StateScheduled, updated.State)
	assert.WithinDuration(t, newAt, updated.ScheduledAt, time.Second)

	logs, err := ctrl.EmailLogs(ctx, email.ID)
	require.NoError(t, err)
	require.Len(t, logs, 2)
	assert.Equal(t, "Email was updated", logs[0].Details)
	assert.Equal(t, scheduledemaillog.StateBeforeScheduled, logs[0].StateBefore)
	assert.Equal(t, scheduledemaillog.StateAfterScheduled, logs[0].StateAfter)
}

func TestUpdatePendingEmail_Multiplicity(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()

	createTestTemplate(t, client, "welcome", "Subject {{ .person.personal }}", "Body")
	person := createTestPerson(t, client, "Ada", "ada@example.org")
	ref := relations.Ref{Kind: relations.KindPerson, ID: person.ID}

	ctrl := newTestController(client, Options{})
	ctx := context.Background()

	// No pending email yet: nothing matched, nothing written
	updated, matched, err := ctrl.UpdatePendingEmail(ctx, "welcome", ref, paramsForPerson("welcome", person, time.Now()))
	require.NoError(t, err)
	assert.Zero(t, matched)
	assert.Nil(t, updated)

	// Exactly one pending email: updated
	first, err := ctrl.ScheduleEmail(ctx, paramsForPerson("welcome", person, time.Now()))
	require.NoError(t, err)

	newAt := time.Now().Add(72 * time.Hour)
	updated, matched, err = ctrl.UpdatePendingEmail(ctx, "welcome", ref, paramsForPerson("welcome", person, newAt))
	require.NoError(t, err)
	assert.Equal(t, 1, matched)
	require.NotNil(t, updated)
	assert.WithinDuration(t, newAt, updated.ScheduledAt, time.Second)

	// Two pending emails: ambiguous, no write
	_, err = ctrl.ScheduleEmail(ctx, paramsForPerson("welcome", person, time.Now()))
	require.NoError(t, err)

	evenLater := time.Now().Add(96 * time.Hour)
	updated, matched, err = ctrl.UpdatePendingEmail(ctx, "welcome", ref, paramsForPerson("welcome", person, evenLater))
	require.NoError(t, err)
	assert.Equal(t, 2, matched)
	assert.Nil(t, updated)

	reloaded, err := ctrl.GetEmail(ctx, first.ID)
	require.NoError(t, err)
	assert.WithinDuration(t, newAt, reloaded.ScheduledAt, time.Second)
}

func TestUpdatePendingEmail_IgnoresNonScheduledStates(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()

	createTestTemplate(t, client, "welcome", "Subject", "Body")
	person := createTestPerson(t, client, "Ada", "ada@example.org")
	ref := relations.Ref{Kind: relations.KindPerson, ID: person.ID}

	ctrl := newTestController(client, Options{})
	ctx := context.Background()

	email, err := ctrl.ScheduleEmail(ctx, paramsForPerson("welcome", person, time.Now()))
	require.NoError(t, err)
	_, err = ctrl.CancelEmail(ctx, email, nil)
	require.NoError(t, err)

	_, matched, err := ctrl.UpdatePendingEmail(ctx, "welcome", ref, paramsForPerson("welcome", person, time.Now()))
	require.NoError(t, err)
	assert.Zero(t, matched)
}

func TestRescheduleEmail_ResurrectsCancelled(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()

	createTestTemplate(t, client, "welcome", "Subject", "Body")
	person := createTestPerson(t, client, "Ada", "ada@example.org")

	ctrl := newTestController(client, Options{})
	ctx := context.Background()

	email, err := ctrl.ScheduleEmail(ctx, paramsForPerson("welcome", person, time.Now()))
	require.NoError(t, err)

	cancelled, err := ctrl.CancelEmail(ctx, email, nil)
	require.NoError(t, err)
	assert.Equal(t, scheduledemail.StateCancelled, cancelled.State)

	at := time.Now().Add(24 * time.Hour)
	revived, err := ctrl.RescheduleEmail(ctx, cancelled, at, nil)
	require.NoError(t, err)
	assert.Equal(t, scheduledemail.StateScheduled, revived.State)
	assert.WithinDuration(t, at, revived.ScheduledAt, time.Second)

	logs, err := ctrl.EmailLogs(ctx, email.ID)
	require.NoError(t, err)
	require.Len(t, logs, 3)
	assert.Contains(t, logs[0].Details, "Email rescheduled to run at")
	assert.Equal(t, scheduledemaillog.StateBeforeCancelled, logs[0].StateBefore)
	assert.Equal(t, scheduledemaillog.StateAfterScheduled, logs[0].StateAfter)
}

func TestRescheduleEmail_KeepsStateWhenNotCancelled(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()

	createTestTemplate(t, client, "welcome", "Subject", "Body")
	person := createTestPerson(t, client, "Ada", "ada@example.org")

	ctrl := newTestController(client, Options{})
	ctx := context.Background()

	email, err := ctrl.ScheduleEmail(ctx, paramsForPerson("welcome", person, time.Now()))
	require.NoError(t, err)

	at := time.Now().Add(24 * time.Hour)
	rescheduled, err := ctrl.RescheduleEmail(ctx, email, at, nil)
	require.NoError(t, err)
	assert.Equal(t, scheduledemail.StateScheduled, rescheduled.State)
}

func TestStateTransitions_WriteLogs(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()

	createTestTemplate(t, client, "welcome", "Subject", "Body")
	person := createTestPerson(t, client, "Ada", "ada@example.org")

	ctrl := newTestController(client, Options{})
	ctx := context.Background()

	email, err := ctrl.ScheduleEmail(ctx, paramsForPerson("welcome", person, time.Now()))
	require.NoError(t, err)

	locked, err := ctrl.LockEmail(ctx, email, "", nil)
	require.NoError(t, err)
	assert.Equal(t, scheduledemail.StateLocked, locked.State)

	author := 42
	succeeded, err := ctrl.SucceedEmail(ctx, locked, "", &author)
	require.NoError(t, err)
	assert.Equal(t, scheduledemail.StateSucceeded, succeeded.State)

	logs, err := ctrl.EmailLogs(ctx, email.ID)
	require.NoError(t, err)
	require.Len(t, logs, 3)
	assert.Equal(t, "Email was sent successfully", logs[0].Details)
	require.NotNil(t, logs[0].AuthorID)
	assert.Equal(t, 42, *logs[0].AuthorID)
	assert.Equal(t, "Email was locked for sending", logs[1].Details)
	assert.Nil(t, logs[1].AuthorID)
}

func TestFailEmail_EscalatesAfterMaxAttempts(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()

	createTestTemplate(t, client, "welcome", "Subject", "Body")
	person := createTestPerson(t, client, "Ada", "ada@example.org")

	ctrl := newTestController(client, Options{MaxFailedAttempts: 3, FailedLogWindowFactor: 2})
	ctx := context.Background()

	email, err := ctrl.ScheduleEmail(ctx, paramsForPerson("welcome", person, time.Now()))
	require.NoError(t, err)

	// Two delivery attempts fail but stay retryable
	current := email
	for attempt := 1; attempt <= 2; attempt++ {
		locked, err := ctrl.LockEmail(ctx, current, "", nil)
		require.NoError(t, err)
		current, err = ctrl.FailEmail(ctx, locked, fmt.Sprintf("attempt %d timed out", attempt), nil)
		require.NoError(t, err)
		assert.Equal(t, scheduledemail.StateFailed, current.State, "attempt %d", attempt)
	}

	// The third failure crosses the threshold and auto-cancels
	locked, err := ctrl.LockEmail(ctx, current, "", nil)
	require.NoError(t, err)
	final, err := ctrl.FailEmail(ctx, locked, "attempt 3 timed out", nil)
	require.NoError(t, err)
	assert.Equal(t, scheduledemail.StateCancelled, final.State)

	logs, err := ctrl.EmailLogs(ctx, email.ID)
	require.NoError(t, err)
	assert.Equal(t, "Email was cancelled automatically after 3 failed attempts", logs[0].Details)
	assert.Equal(t, scheduledemaillog.StateBeforeFailed, logs[0].StateBefore)
	assert.Equal(t, scheduledemaillog.StateAfterCancelled, logs[0].StateAfter)
}

func TestFailEmail_OldFailuresOutsideWindow(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()

	createTestTemplate(t, client, "welcome", "Subject", "Body")
	person := createTestPerson(t, client, "Ada", "ada@example.org")

	// Window of 2*2 = 4 recent log rows
	ctrl := newTestController(client, Options{MaxFailedAttempts: 2, FailedLogWindowFactor: 2})
	ctx := context.Background()

	email, err := ctrl.ScheduleEmail(ctx, paramsForPerson("welcome", person, time.Now()))
	require.NoError(t, err)

	// One old failure, then a successful-looking retry cycle pushes it out of
	// the window before the next failure.
	failed, err := ctrl.FailEmail(ctx, email, "first failure", nil)
	require.NoError(t, err)

	rescheduled, err := ctrl.RescheduleEmail(ctx, failed, time.Now(), nil)
	require.NoError(t, err)
	locked, err := ctrl.LockEmail(ctx, rescheduled, "", nil)
	require.NoError(t, err)
	rescheduled, err = ctrl.RescheduleEmail(ctx, locked, time.Now(), nil)
	require.NoError(t, err)

	final, err := ctrl.FailEmail(ctx, rescheduled, "second failure", nil)
	require.NoError(t, err)
	assert.Equal(t, scheduledemail.StateFailed, final.State,
		"failures outside the log window must not count toward escalation")
}

func TestFailEmail_RescheduleRowsDoNotCountAsFailures(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()

	createTestTemplate(t, client, "welcome", "Subject", "Body")
	person := createTestPerson(t, client, "Ada", "ada@example.org")

	ctrl := newTestController(client, Options{MaxFailedAttempts: 3, FailedLogWindowFactor: 2})
	ctx := context.Background()

	email, err := ctrl.ScheduleEmail(ctx, paramsForPerson("welcome", person, time.Now()))
	require.NoError(t, err)

	// First delivery attempt fails
	locked, err := ctrl.LockEmail(ctx, email, "", nil)
	require.NoError(t, err)
	failed, err := ctrl.FailEmail(ctx, locked, "first failure", nil)
	require.NoError(t, err)

	// Operator reschedules the failed email twice. These audit rows carry
	// state_before = state_after = failed and are not delivery attempts.
	failed, err = ctrl.RescheduleEmail(ctx, failed, time.Now(), nil)
	require.NoError(t, err)
	failed, err = ctrl.RescheduleEmail(ctx, failed, time.Now(), nil)
	require.NoError(t, err)

	// The second genuine failure leaves the email retryable: only two of the
	// three allowed attempts have been spent.
	locked, err = ctrl.LockEmail(ctx, failed, "", nil)
	require.NoError(t, err)
	final, err := ctrl.FailEmail(ctx, locked, "second failure", nil)
	require.NoError(t, err)
	assert.Equal(t, scheduledemail.StateFailed, final.State,
		"reschedule log rows must not count toward escalation")
}

func TestDueEmails(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()

	createTestTemplate(t, client, "welcome", "Subject", "Body")
	person := createTestPerson(t, client, "Ada", "ada@example.org")

	ctrl := newTestController(client, Options{})
	ctx := context.Background()
	now := time.Now()

	pastFirst, err := ctrl.ScheduleEmail(ctx, paramsForPerson("welcome", person, now.Add(-2*time.Hour)))
	require.NoError(t, err)
	pastSecond, err := ctrl.ScheduleEmail(ctx, paramsForPerson("welcome", person, now.Add(-time.Hour)))
	require.NoError(t, err)
	_, err = ctrl.ScheduleEmail(ctx, paramsForPerson("welcome", person, now.Add(time.Hour)))
	require.NoError(t, err)

	// A past failed email is still due; a past cancelled one is not
	failedEmail, err := ctrl.ScheduleEmail(ctx, paramsForPerson("welcome", person, now.Add(-30*time.Minute)))
	require.NoError(t, err)
	_, err = ctrl.FailEmail(ctx, failedEmail, "", nil)
	require.NoError(t, err)

	cancelledEmail, err := ctrl.ScheduleEmail(ctx, paramsForPerson("welcome", person, now.Add(-30*time.Minute)))
	require.NoError(t, err)
	_, err = ctrl.CancelEmail(ctx, cancelledEmail, nil)
	require.NoError(t, err)

	due, err := ctrl.DueEmails(ctx, now, 0)
	require.NoError(t, err)
	require.Len(t, due, 3)
	assert.Equal(t, pastFirst.ID, due[0].ID)
	assert.Equal(t, pastSecond.ID, due[1].ID)

	limited, err := ctrl.DueEmails(ctx, now, 1)
	require.NoError(t, err)
	require.Len(t, limited, 1)
	assert.Equal(t, pastFirst.ID, limited[0].ID)
}

func TestFindForSignal(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()

	createTestTemplate(t, client, "welcome", "Subject", "Body")
	createTestTemplate(t, client, "other", "Subject", "Body")
	person := createTestPerson(t, client, "Ada", "ada@example.org")
	other := createTestPerson(t, client, "Grace", "grace@example.org")
	ref := relations.Ref{Kind: relations.KindPerson, ID: person.ID}

	ctrl := newTestController(client, Options{})
	ctx := context.Background()

	mine, err := ctrl.ScheduleEmail(ctx, paramsForPerson("welcome", person, time.Now()))
	require.NoError(t, err)
	_, err = ctrl.ScheduleEmail(ctx, paramsForPerson("welcome", other, time.Now()))
	require.NoError(t, err)
	_, err = ctrl.ScheduleEmail(ctx, paramsForPerson("other", person, time.Now()))
	require.NoError(t, err)

	found, err := ctrl.FindForSignal(ctx, "welcome", ref)
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, mine.ID, found[0].ID)

	// State filter
	_, err = ctrl.CancelEmail(ctx, mine, nil)
	require.NoError(t, err)
	found, err = ctrl.FindForSignal(ctx, "welcome", ref, scheduledemail.StateScheduled)
	require.NoError(t, err)
	assert.Empty(t, found)
}

func TestFindDuplicates(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()

	createTestTemplate(t, client, "welcome", "Subject", "Body")
	person := createTestPerson(t, client, "Ada", "ada@example.org")
	other := createTestPerson(t, client, "Grace", "grace@example.org")

	ctrl := newTestController(client, Options{})
	ctx := context.Background()

	_, err := ctrl.ScheduleEmail(ctx, paramsForPerson("welcome", person, time.Now()))
	require.NoError(t, err)
	_, err = ctrl.ScheduleEmail(ctx, paramsForPerson("welcome", person, time.Now()))
	require.NoError(t, err)
	_, err = ctrl.ScheduleEmail(ctx, paramsForPerson("welcome", other, time.Now()))
	require.NoError(t, err)

	groups, err := ctrl.FindDuplicates(ctx)
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, relations.Ref{Kind: relations.KindPerson, ID: person.ID}, groups[0].Related)
	assert.Len(t, groups[0].Emails, 2)
}

func TestAddAttachment(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()

	createTestTemplate(t, client, "welcome", "Subject", "Body")
	person := createTestPerson(t, client, "Ada", "ada@example.org")

	storage := attachments.NewMemoryStorage()
	ctrl := newTestController(client, Options{Storage: storage, Bucket: "test-bucket"})
	ctx := context.Background()

	email, err := ctrl.ScheduleEmail(ctx, paramsForPerson("welcome", person, time.Now()))
	require.NoError(t, err)

	content := []byte("certificate data")
	attachment, err := ctrl.AddAttachment(ctx, email, "certificate.pdf", content)
	require.NoError(t, err)

	assert.Equal(t, "certificate.pdf", attachment.Filename)
	assert.Equal(t, "test-bucket", attachment.S3Bucket)
	assert.Contains(t, attachment.S3Path, email.ID.String())
	assert.Contains(t, attachment.S3Path, "certificate.pdf")
	assert.Equal(t, email.ID, attachment.ScheduledEmailID)

	stored, ok := storage.Get("test-bucket", attachment.S3Path)
	require.True(t, ok)
	assert.Equal(t, content, stored)

	logs, err := ctrl.EmailLogs(ctx, email.ID)
	require.NoError(t, err)
	require.Len(t, logs, 2)
	assert.Equal(t, `Attachment "certificate.pdf" added`, logs[0].Details)

	// Presigned URL
	presigned, err := ctrl.GeneratePresignedURL(ctx, attachment, time.Hour)
	require.NoError(t, err)
	assert.NotEmpty(t, presigned.PresignedURL)
	require.NotNil(t, presigned.PresignedURLExpiration)
	assert.True(t, presigned.PresignedURLExpiration.After(time.Now()))
}

func TestAddAttachment_StorageNotConfigured(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()

	createTestTemplate(t, client, "welcome", "Subject", "Body")
	person := createTestPerson(t, client, "Ada", "ada@example.org")

	ctrl := newTestController(client, Options{})
	ctx := context.Background()

	email, err := ctrl.ScheduleEmail(ctx, paramsForPerson("welcome", person, time.Now()))
	require.NoError(t, err)

	_, err = ctrl.AddAttachment(ctx, email, "certificate.pdf", []byte("data"))
	assert.ErrorIs(t, err, ErrStorageNotConfigured)
}
