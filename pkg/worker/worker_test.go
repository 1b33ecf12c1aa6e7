package worker

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"
	"unicode/utf8"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carpentries/mailflow/ent"
	"github.com/carpentries/mailflow/ent/enttest"
	"github.com/carpentries/mailflow/ent/scheduledemail"
	"github.com/carpentries/mailflow/pkg/emails"
	"github.com/carpentries/mailflow/pkg/emails/signals"
	"github.com/carpentries/mailflow/pkg/mailer"
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

// stubSender records deliveries instead of sending them.
type stubSender struct {
	mu   sync.Mutex
	sent []mailer.Message
	err  error
}

func (s *stubSender) Send(_ context.Context, msg mailer.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.sent = append(s.sent, msg)
	return nil
}

func (s *stubSender) messages() []mailer.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]mailer.Message(nil), s.sent...)
}

func newTestController(client *ent.Client) *emails.Controller {
	return emails.NewController(client, templateengine.NewGoTemplateEngine(), emails.Options{})
}

// scheduleDueEmail plants an email whose run time has already passed.
func scheduleDueEmail(t *testing.T, client *ent.Client, ctrl *emails.Controller) (*ent.ScheduledEmail, *ent.Person) {
	ctx := context.Background()

	_, err := client.EmailTemplate.Query().Only(ctx)
	if ent.IsNotFound(err) {
		_, err = client.EmailTemplate.Create().
			SetName("Badge congratulations").
			SetSignal(signals.InstructorBadgeAwarded).
			SetFromHeader("team@example.org").
			SetReplyToHeader("replies@example.org").
			SetSubject("Congratulations {{.person.personal}}").
			SetBody("Well done, {{.person.personal}}!").
			Save(ctx)
		require.NoError(t, err)
	}

	person, err := client.Person.Create().
		SetPersonal("Ada").
		SetFamily("Lovelace").
		SetEmail("ada@example.org").
		Save(ctx)
	require.NoError(t, err)

	email, err := ctrl.ScheduleEmail(ctx, emails.ScheduleParams{
		Signal: signals.InstructorBadgeAwarded,
		ContextJSON: map[string]any{
			"person": relations.ModelURI(string(relations.KindPerson), person.ID),
		},
		ScheduledAt: time.Now().Add(-time.Minute),
		ToHeader:    []string{person.Email},
		ToHeaderContextJSON: []models.ToHeaderRef{
			{APIURI: relations.ModelURI(string(relations.KindPerson), person.ID), Property: "email"},
		},
		Related: relations.Ref{Kind: relations.KindPerson, ID: person.ID},
	})
	require.NoError(t, err)
	return email, person
}

func TestRunOnce_DeliversDueEmail(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()
	ctx := context.Background()

	ctrl := newTestController(client)
	sender := &stubSender{}
	w := New(ctrl, sender, Options{SendsPerMinute: 600})

	email, _ := scheduleDueEmail(t, client, ctrl)

	require.NoError(t, w.RunOnce(ctx))

	messages := sender.messages()
	require.Len(t, messages, 1)
	assert.Equal(t, "team@example.org", messages[0].From)
	assert.Equal(t, "replies@example.org", messages[0].ReplyTo)
	assert.Equal(t, []string{"ada@example.org"}, messages[0].To)
	assert.Equal(t, "Congratulations Ada", messages[0].Subject)

	delivered, err := client.ScheduledEmail.Get(ctx, email.ID)
	require.NoError(t, err)
	assert.Equal(t, scheduledemail.StateSucceeded, delivered.State)

	logs, err := ctrl.EmailLogs(ctx, email.ID)
	require.NoError(t, err)
	require.Len(t, logs, 3)
	assert.Equal(t, "Email sent to 1 recipient(s)", logs[0].Details)
	assert.Equal(t, "Email was locked for sending", logs[1].Details)
}

func TestRunOnce_NothingDue(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()
	ctx := context.Background()

	ctrl := newTestController(client)
	sender := &stubSender{}
	w := New(ctrl, sender, Options{})

	email, _ := scheduleDueEmail(t, client, ctrl)
	_, err := ctrl.RescheduleEmail(ctx, email, time.Now().Add(time.Hour), nil)
	require.NoError(t, err)

	require.NoError(t, w.RunOnce(ctx))
	assert.Empty(t, sender.messages())
}

func TestRunOnce_SenderFailureMarksEmailFailed(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()
	ctx := context.Background()

	ctrl := newTestController(client)
	sender := &stubSender{err: errors.New("smtp connection refused")}
	w := New(ctrl, sender, Options{SendsPerMinute: 600, MaxSendRetries: 1})

	email, _ := scheduleDueEmail(t, client, ctrl)

	require.NoError(t, w.RunOnce(ctx))

	failed, err := client.ScheduledEmail.Get(ctx, email.ID)
	require.NoError(t, err)
	assert.Equal(t, scheduledemail.StateFailed, failed.State)

	logs, err := ctrl.EmailLogs(ctx, email.ID)
	require.NoError(t, err)
	require.NotEmpty(t, logs)
	assert.Contains(t, logs[0].Details, "Delivery failed")
	assert.Contains(t, logs[0].Details, "smtp connection refused")
}

func TestRunOnce_RecipientsRefreshedAtSendTime(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()
	ctx := context.Background()

	ctrl := newTestController(client)
	sender := &stubSender{}
	w := New(ctrl, sender, Options{SendsPerMinute: 600})

	_, person := scheduleDueEmail(t, client, ctrl)

	// Address changed between scheduling and delivery
	_, err := person.Update().SetEmail("ada.lovelace@example.org").Save(ctx)
	require.NoError(t, err)

	require.NoError(t, w.RunOnce(ctx))

	messages := sender.messages()
	require.Len(t, messages, 1)
	assert.Equal(t, []string{"ada.lovelace@example.org"}, messages[0].To)
}

func TestRunOnce_NoResolvableRecipients(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()
	ctx := context.Background()

	ctrl := newTestController(client)
	sender := &stubSender{}
	w := New(ctrl, sender, Options{SendsPerMinute: 600})

	email, person := scheduleDueEmail(t, client, ctrl)

	_, err := person.Update().SetEmail("").Save(ctx)
	require.NoError(t, err)

	require.NoError(t, w.RunOnce(ctx))
	assert.Empty(t, sender.messages())

	failed, err := client.ScheduledEmail.Get(ctx, email.ID)
	require.NoError(t, err)
	assert.Equal(t, scheduledemail.StateFailed, failed.State)

	logs, err := ctrl.EmailLogs(ctx, email.ID)
	require.NoError(t, err)
	require.NotEmpty(t, logs)
	assert.Equal(t, "No recipients resolved at send time", logs[0].Details)
}

func TestRunOnce_FailedEmailIsRetriedNextPoll(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()
	ctx := context.Background()

	ctrl := newTestController(client)
	sender := &stubSender{err: errors.New("temporary outage")}
	w := New(ctrl, sender, Options{SendsPerMinute: 600, MaxSendRetries: 1})

	email, _ := scheduleDueEmail(t, client, ctrl)

	require.NoError(t, w.RunOnce(ctx))

	// The outage clears and the next poll delivers
	sender.mu.Lock()
	sender.err = nil
	sender.mu.Unlock()

	require.NoError(t, w.RunOnce(ctx))

	delivered, err := client.ScheduledEmail.Get(ctx, email.ID)
	require.NoError(t, err)
	assert.Equal(t, scheduledemail.StateSucceeded, delivered.State)
	assert.Len(t, sender.messages(), 1)
}

func TestTruncate_KeepsRuneBoundaries(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 255))

	exact := strings.Repeat("a", 255)
	assert.Equal(t, exact, truncate(exact, 255))

	// A multi-byte rune straddling the cap is dropped whole, never split.
	long := strings.Repeat("a", 254) + "é"
	got := truncate(long, 255)
	assert.Equal(t, strings.Repeat("a", 254), got)
	assert.True(t, utf8.ValidString(got))
	assert.LessOrEqual(t, len(got), 255)
}
