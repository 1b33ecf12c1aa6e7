// Package worker drains due scheduled emails and delivers them.
package worker

import (
	"context"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/cenkalti/backoff/v4"
	"github.com/robfig/cron/v3"
	"golang.org/x/time/rate"

	"github.com/carpentries/mailflow/ent"
	"github.com/carpentries/mailflow/ent/scheduledemail"
	"github.com/carpentries/mailflow/pkg/emails"
	"github.com/carpentries/mailflow/pkg/logger"
	"github.com/carpentries/mailflow/pkg/mailer"
	"github.com/carpentries/mailflow/pkg/metrics"
	"github.com/carpentries/mailflow/pkg/relations"
)

// Options configures a Worker.
type Options struct {
	// PollSchedule is a robfig/cron spec, e.g. "@every 1m".
	PollSchedule string

	// SendsPerMinute paces deliveries across a batch.
	SendsPerMinute int

	// MaxSendRetries bounds the in-process retry window for one delivery.
	// Exhausting it marks the email failed; the next poll picks it up again
	// until the failure escalation cancels it.
	MaxSendRetries int

	// ClaimBatchLimit caps how many due emails one poll claims.
	ClaimBatchLimit int

	// DefaultFrom is used when an email carries no from header of its own.
	DefaultFrom string

	Metrics *metrics.Metrics
	Logger  logger.Logger
}

// Worker polls for due emails on a cron schedule and walks each one through
// lock, deliver, succeed-or-fail.
type Worker struct {
	ctrl    *emails.Controller
	sender  mailer.Sender
	cron    *cron.Cron
	limiter *rate.Limiter
	m       *metrics.Metrics
	log     logger.Logger

	schedule    string
	maxRetries  int
	batchLimit  int
	defaultFrom string
}

// New creates a worker.
func New(ctrl *emails.Controller, sender mailer.Sender, opts Options) *Worker {
	if opts.PollSchedule == "" {
		opts.PollSchedule = "@every 1m"
	}
	if opts.SendsPerMinute <= 0 {
		opts.SendsPerMinute = 60
	}
	if opts.MaxSendRetries <= 0 {
		opts.MaxSendRetries = 3
	}
	if opts.ClaimBatchLimit <= 0 {
		opts.ClaimBatchLimit = 50
	}
	if opts.Logger == nil {
		opts.Logger = logger.Default()
	}

	return &Worker{
		ctrl:        ctrl,
		sender:      sender,
		cron:        cron.New(),
		limiter:     rate.NewLimiter(rate.Limit(float64(opts.SendsPerMinute)/60.0), 1),
		m:           opts.Metrics,
		log:         opts.Logger,
		schedule:    opts.PollSchedule,
		maxRetries:  opts.MaxSendRetries,
		batchLimit:  opts.ClaimBatchLimit,
		defaultFrom: opts.DefaultFrom,
	}
}

// Setup registers the poll job on the cron scheduler.
func (w *Worker) Setup() error {
	_, err := w.cron.AddFunc(w.schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
		defer cancel()

		if err := w.RunOnce(ctx); err != nil {
			w.log.Error("poll run failed", "error", err)
		}
	})
	if err != nil {
		return fmt.Errorf("failed to register poll job: %w", err)
	}

	w.log.Info("✅ Worker poll job configured", "schedule", w.schedule,
		"batch_limit", w.batchLimit, "max_send_retries", w.maxRetries)
	return nil
}

// Start starts the cron scheduler.
func (w *Worker) Start() {
	w.log.Info("🚀 Starting worker scheduler...")
	w.cron.Start()
}

// Stop stops the cron scheduler and waits for a running poll to finish.
func (w *Worker) Stop() {
	w.log.Info("🛑 Stopping worker scheduler...")
	<-w.cron.Stop().Done()
}

// RunOnce claims one batch of due emails and processes each in turn.
func (w *Worker) RunOnce(ctx context.Context) error {
	due, err := w.ctrl.DueEmails(ctx, time.Now(), w.batchLimit)
	if err != nil {
		return fmt.Errorf("failed to list due emails: %w", err)
	}
	if w.m != nil {
		w.m.RecordBatch(len(due))
	}
	if len(due) == 0 {
		return nil
	}

	w.log.Info("processing due emails", "count", len(due))
	for _, email := range due {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		w.process(ctx, email)
	}
	return nil
}

// process walks one email through the delivery cycle. Failures are recorded
// on the email itself, never returned: one broken email must not block the
// rest of the batch.
func (w *Worker) process(ctx context.Context, email *ent.ScheduledEmail) {
	locked, err := w.ctrl.LockEmail(ctx, email, "", nil)
	if err != nil {
		// Most likely another worker claimed it first.
		w.log.Warn("failed to lock email, skipping", "email_id", email.ID, "error", err)
		return
	}

	// Recipients are re-derived at send time so address changes made after
	// scheduling still take effect.
	to, err := relations.ResolveToHeader(ctx, w.ctrl.Client(), locked.ToHeaderContextJSON)
	if err != nil {
		w.fail(ctx, locked, fmt.Sprintf("Failed to resolve recipients: %v", err))
		return
	}
	if len(to) == 0 {
		w.fail(ctx, locked, "No recipients resolved at send time")
		return
	}

	from := locked.FromHeader
	if from == "" {
		from = w.defaultFrom
	}
	msg := mailer.Message{
		From:    from,
		ReplyTo: locked.ReplyToHeader,
		To:      to,
		Cc:      locked.CcHeader,
		Bcc:     locked.BccHeader,
		Subject: locked.Subject,
		Body:    locked.Body,
	}

	if err := w.limiter.Wait(ctx); err != nil {
		w.fail(ctx, locked, fmt.Sprintf("Interrupted before delivery: %v", err))
		return
	}

	start := time.Now()
	if err := w.sendWithRetry(ctx, msg); err != nil {
		w.fail(ctx, locked, fmt.Sprintf("Delivery failed: %v", err))
		return
	}
	duration := time.Since(start)

	if _, err := w.ctrl.SucceedEmail(ctx, locked,
		fmt.Sprintf("Email sent to %d recipient(s)", len(to)), nil); err != nil {
		w.log.Error("failed to record delivery", "email_id", locked.ID, "error", err)
		return
	}
	if w.m != nil {
		w.m.RecordSent(duration)
	}
	w.log.Info("email delivered", "email_id", locked.ID,
		"recipients", len(to), "duration", duration)
}

// sendWithRetry delivers one message with exponential backoff between
// attempts.
func (w *Worker) sendWithRetry(ctx context.Context, msg mailer.Message) error {
	operation := func() error {
		return w.sender.Send(ctx, msg)
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 500 * time.Millisecond

	return backoff.Retry(operation,
		backoff.WithContext(backoff.WithMaxRetries(b, uint64(w.maxRetries)), ctx))
}

// fail records a failed attempt. The controller auto-cancels after repeated
// failures.
func (w *Worker) fail(ctx context.Context, email *ent.ScheduledEmail, details string) {
	details = truncate(details, 255)

	failed, err := w.ctrl.FailEmail(ctx, email, details, nil)
	if err != nil {
		w.log.Error("failed to record failure", "email_id", email.ID, "error", err)
		return
	}
	if w.m != nil {
		w.m.RecordFailed()
		if failed.State == scheduledemail.StateCancelled {
			w.m.RecordEscalated()
		}
	}
	w.log.Warn("email delivery failed", "email_id", email.ID,
		"state", failed.State, "details", details)
}

// truncate caps s at max bytes without splitting a UTF-8 rune.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	cut := s[:max]
	for len(cut) > 0 && !utf8.ValidString(cut) {
		cut = cut[:len(cut)-1]
	}
	return cut
}
