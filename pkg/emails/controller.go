package emails

import (
	"context"
	"fmt"
	"time"

	"github.com/carpentries/mailflow/ent"
	"github.com/carpentries/mailflow/ent/emailtemplate"
	"github.com/carpentries/mailflow/ent/scheduledemail"
	"github.com/carpentries/mailflow/ent/scheduledemaillog"
	"github.com/carpentries/mailflow/pkg/attachments"
	"github.com/carpentries/mailflow/pkg/logger"
	"github.com/carpentries/mailflow/pkg/models"
	"github.com/carpentries/mailflow/pkg/relations"
	"github.com/carpentries/mailflow/pkg/templateengine"
	"github.com/google/uuid"
)

// Controller is the sole authorized mutator of ScheduledEmail and
// ScheduledEmailLog rows. Every operation commits one business mutation plus
// one audit log row in a single transaction, or errors before any write.
type Controller struct {
	client                *ent.Client
	engine                templateengine.Engine
	storage               attachments.Storage
	bucket                string
	log                   logger.Logger
	maxFailedAttempts     int
	failedLogWindowFactor int
	rowLocking            bool
}

// Options holds optional Controller configuration.
type Options struct {
	// Storage and Bucket back attachment content; may be left unset when
	// attachments are not used.
	Storage attachments.Storage
	Bucket  string

	Logger logger.Logger

	// MaxFailedAttempts is the failure count at which a failed email is
	// auto-cancelled. Defaults to 3.
	MaxFailedAttempts int

	// FailedLogWindowFactor sizes the recent-log window scanned by the
	// escalation check: each delivery attempt writes a lock entry and a fail
	// entry, hence the default factor of 2.
	FailedLogWindowFactor int

	// RowLocking applies SELECT ... FOR UPDATE when claiming pending emails.
	// Requires a backend that supports row locks; leave off for SQLite.
	RowLocking bool
}

// NewController creates an email controller.
func NewController(client *ent.Client, engine templateengine.Engine, opts Options) *Controller {
	if opts.Logger == nil {
		opts.Logger = logger.Default()
	}
	if opts.MaxFailedAttempts <= 0 {
		opts.MaxFailedAttempts = 3
	}
	if opts.FailedLogWindowFactor <= 0 {
		opts.FailedLogWindowFactor = 2
	}
	return &Controller{
		client:                client,
		engine:                engine,
		storage:               opts.Storage,
		bucket:                opts.Bucket,
		log:                   opts.Logger,
		maxFailedAttempts:     opts.MaxFailedAttempts,
		failedLogWindowFactor: opts.FailedLogWindowFactor,
		rowLocking:            opts.RowLocking,
	}
}

// ScheduleParams carries everything needed to schedule or update one email.
type ScheduleParams struct {
	Signal              string
	ContextJSON         map[string]any
	ScheduledAt         time.Time
	ToHeader            []string
	ToHeaderContextJSON []models.ToHeaderRef
	Related             relations.Ref
	AuthorID            *int
}

func (p ScheduleParams) validateRecipients() error {
	if len(p.ToHeader) == 0 || len(p.ToHeaderContextJSON) == 0 {
		return ErrMissingRecipients
	}
	return nil
}

// withTx runs fn inside a transaction, rolling back on error.
func (c *Controller) withTx(ctx context.Context, fn func(tx *ent.Tx) error) error {
	tx, err := c.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() {
		if v := recover(); v != nil {
			_ = tx.Rollback()
			panic(v)
		}
	}()
	if err := fn(tx); err != nil {
		if rerr := tx.Rollback(); rerr != nil {
			err = fmt.Errorf("%w: rolling back transaction: %v", err, rerr)
		}
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// ScheduleEmail creates a new scheduled email for the given signal. The
// subject and body are rendered from the active template and frozen; later
// template edits do not affect this email until an explicit update.
func (c *Controller) ScheduleEmail(ctx context.Context, p ScheduleParams) (*ent.ScheduledEmail, error) {
	if err := p.validateRecipients(); err != nil {
		return nil, err
	}

	var scheduled *ent.ScheduledEmail
	err := c.withTx(ctx, func(tx *ent.Tx) error {
		tmpl, err := tx.EmailTemplate.Query().
			Where(
				emailtemplate.Signal(p.Signal),
				emailtemplate.Active(true),
			).
			Only(ctx)
		if err != nil {
			if ent.IsNotFound(err) {
				return fmt.Errorf("%w: %s", ErrMissingTemplate, p.Signal)
			}
			return fmt.Errorf("failed to look up template: %w", err)
		}

		subject, body, err := c.render(ctx, tx, tmpl, p.ContextJSON)
		if err != nil {
			return err
		}

		create := tx.ScheduledEmail.Create().
			SetScheduledAt(p.ScheduledAt).
			SetToHeader(p.ToHeader).
			SetFromHeader(tmpl.FromHeader).
			SetReplyToHeader(tmpl.ReplyToHeader).
			SetCcHeader(tmpl.CcHeader).
			SetBccHeader(tmpl.BccHeader).
			SetSubject(subject).
			SetBody(body).
			SetContextJSON(p.ContextJSON).
			SetToHeaderContextJSON(p.ToHeaderContextJSON).
			SetTemplateID(tmpl.ID)
		if p.Related.Kind != "" {
			create = create.
				SetRelatedTo(scheduledemail.RelatedTo(p.Related.Kind)).
				SetRelatedID(p.Related.ID)
		}
		email, err := create.Save(ctx)
		if err != nil {
			return fmt.Errorf("failed to create scheduled email: %w", err)
		}

		details := fmt.Sprintf("Email scheduled to run at %s",
			p.ScheduledAt.UTC().Format(time.RFC3339))
		if _, err := tx.ScheduledEmailLog.Create().
			SetDetails(details).
			SetStateAfter(scheduledemaillog.StateAfterScheduled).
			SetNillableAuthorID(p.AuthorID).
			SetScheduledEmailID(email.ID).
			Save(ctx); err != nil {
			return fmt.Errorf("failed to write log entry: %w", err)
		}

		scheduled = email
		return nil
	})
	if err != nil {
		return nil, err
	}

	c.log.Info("email scheduled",
		"signal", p.Signal, "email_id", scheduled.ID, "scheduled_at", p.ScheduledAt)
	return scheduled, nil
}

// UpdateScheduledEmail recomputes a pending email's content and schedule.
// The subject and body are re-rendered from the current template content, so
// template edits propagate to not-yet-sent emails on update. The state is
// left unchanged.
func (c *Controller) UpdateScheduledEmail(ctx context.Context, email *ent.ScheduledEmail, p ScheduleParams) (*ent.ScheduledEmail, error) {
	if err := p.validateRecipients(); err != nil {
		return nil, err
	}
	if email.TemplateID == nil {
		return nil, fmt.Errorf("%w: email %s has no linked template", ErrMissingTemplate, email.ID)
	}

	var updated *ent.ScheduledEmail
	err := c.withTx(ctx, func(tx *ent.Tx) error {
		var err error
		updated, err = c.updateTx(ctx, tx, email, p)
		return err
	})
	if err != nil {
		return nil, err
	}

	c.log.Info("email updated", "email_id", updated.ID, "scheduled_at", p.ScheduledAt)
	return updated, nil
}

// UpdatePendingEmail finds the pending (scheduled-state) email for the given
// signal and target and updates it, all in one transaction. With RowLocking
// enabled the row is locked for the duration. The returned count is how many
// pending emails matched; no write happens unless it is exactly one.
func (c *Controller) UpdatePendingEmail(ctx context.Context, signal string, ref relations.Ref, p ScheduleParams) (*ent.ScheduledEmail, int, error) {
	if err := p.validateRecipients(); err != nil {
		return nil, 0, err
	}

	var (
		updated *ent.ScheduledEmail
		matched int
	)
	err := c.withTx(ctx, func(tx *ent.Tx) error {
		query := tx.ScheduledEmail.Query().
			Where(
				scheduledemail.HasTemplateWith(emailtemplate.Signal(signal)),
				scheduledemail.RelatedToEQ(scheduledemail.RelatedTo(ref.Kind)),
				scheduledemail.RelatedID(ref.ID),
				scheduledemail.StateEQ(scheduledemail.StateScheduled),
			)
		if c.rowLocking {
			query = query.ForUpdate()
		}

		pending, err := query.All(ctx)
		if err != nil {
			return fmt.Errorf("failed to query pending emails: %w", err)
		}
		matched = len(pending)
		if matched != 1 {
			return nil
		}

		updated, err = c.updateTx(ctx, tx, pending[0], p)
		return err
	})
	if err != nil {
		return nil, 0, err
	}
	return updated, matched, nil
}

// updateTx re-renders the email from its current template and writes the new
// content plus its log row on the given transaction.
func (c *Controller) updateTx(ctx context.Context, tx *ent.Tx, email *ent.ScheduledEmail, p ScheduleParams) (*ent.ScheduledEmail, error) {
	if email.TemplateID == nil {
		return nil, fmt.Errorf("%w: email %s has no linked template", ErrMissingTemplate, email.ID)
	}

	tmpl, err := tx.EmailTemplate.Get(ctx, *email.TemplateID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: email %s has no linked template", ErrMissingTemplate, email.ID)
		}
		return nil, fmt.Errorf("failed to look up template: %w", err)
	}

	subject, body, err := c.render(ctx, tx, tmpl, p.ContextJSON)
	if err != nil {
		return nil, err
	}

	updated, err := tx.ScheduledEmail.UpdateOneID(email.ID).
		SetScheduledAt(p.ScheduledAt).
		SetToHeader(p.ToHeader).
		SetFromHeader(tmpl.FromHeader).
		SetReplyToHeader(tmpl.ReplyToHeader).
		SetCcHeader(tmpl.CcHeader).
		SetBccHeader(tmpl.BccHeader).
		SetSubject(subject).
		SetBody(body).
		SetContextJSON(p.ContextJSON).
		SetToHeaderContextJSON(p.ToHeaderContextJSON).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update scheduled email: %w", err)
	}

	if _, err := tx.ScheduledEmailLog.Create().
		SetDetails("Email was updated").
		SetStateBefore(scheduledemaillog.StateBefore(updated.State)).
		SetStateAfter(scheduledemaillog.StateAfter(updated.State)).
		SetNillableAuthorID(p.AuthorID).
		SetScheduledEmailID(updated.ID).
		Save(ctx); err != nil {
		return nil, fmt.Errorf("failed to write log entry: %w", err)
	}
	return updated, nil
}

// RescheduleEmail changes only the scheduled timestamp. A cancelled email is
// brought back to the scheduled state; this is the only path that resurrects
// a cancelled email. Any other state is left unchanged.
func (c *Controller) RescheduleEmail(ctx context.Context, email *ent.ScheduledEmail, at time.Time, authorID *int) (*ent.ScheduledEmail, error) {
	var updated *ent.ScheduledEmail
	err := c.withTx(ctx, func(tx *ent.Tx) error {
		before := email.State
		after := before
		update := tx.ScheduledEmail.UpdateOneID(email.ID).SetScheduledAt(at)
		if before == scheduledemail.StateCancelled {
			after = scheduledemail.StateScheduled
			update = update.SetState(after)
		}

		var err error
		updated, err = update.Save(ctx)
		if err != nil {
			return fmt.Errorf("failed to reschedule email: %w", err)
		}

		details := fmt.Sprintf("Email rescheduled to run at %s", at.UTC().Format(time.RFC3339))
		if _, err := tx.ScheduledEmailLog.Create().
			SetDetails(details).
			SetStateBefore(scheduledemaillog.StateBefore(before)).
			SetStateAfter(scheduledemaillog.StateAfter(after)).
			SetNillableAuthorID(authorID).
			SetScheduledEmailID(updated.ID).
			Save(ctx); err != nil {
			return fmt.Errorf("failed to write log entry: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// ChangeState is the generic state-transition primitive. The mutation and its
// log row commit atomically.
func (c *Controller) ChangeState(ctx context.Context, email *ent.ScheduledEmail, newState scheduledemail.State, details string, authorID *int) (*ent.ScheduledEmail, error) {
	var updated *ent.ScheduledEmail
	err := c.withTx(ctx, func(tx *ent.Tx) error {
		var err error
		updated, err = changeStateTx(ctx, tx, email.ID, email.State, newState, details, authorID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// CancelEmail flips the email to the cancelled state. Cancellation is
// logical; nothing is deleted.
func (c *Controller) CancelEmail(ctx context.Context, email *ent.ScheduledEmail, authorID *int) (*ent.ScheduledEmail, error) {
	return c.ChangeState(ctx, email, scheduledemail.StateCancelled, "Email was cancelled", authorID)
}

// LockEmail flips the email to the locked state. The worker locks an email
// before attempting delivery to prevent a double send.
func (c *Controller) LockEmail(ctx context.Context, email *ent.ScheduledEmail, details string, authorID *int) (*ent.ScheduledEmail, error) {
	if details == "" {
		details = "Email was locked for sending"
	}
	return c.ChangeState(ctx, email, scheduledemail.StateLocked, details, authorID)
}

// SucceedEmail flips the email to the succeeded state.
func (c *Controller) SucceedEmail(ctx context.Context, email *ent.ScheduledEmail, details string, authorID *int) (*ent.ScheduledEmail, error) {
	if details == "" {
		details = "Email was sent successfully"
	}
	return c.ChangeState(ctx, email, scheduledemail.StateSucceeded, details, authorID)
}

// FailEmail flips the email to the failed state, then counts failed
// transitions among the most recent FailedLogWindowFactor*MaxFailedAttempts
// log rows. At the threshold the email is auto-cancelled, bounding retry
// loops without external bookkeeping.
func (c *Controller) FailEmail(ctx context.Context, email *ent.ScheduledEmail, details string, authorID *int) (*ent.ScheduledEmail, error) {
	if details == "" {
		details = "Email failed to send"
	}

	var updated *ent.ScheduledEmail
	escalated := false
	err := c.withTx(ctx, func(tx *ent.Tx) error {
		var err error
		updated, err = changeStateTx(ctx, tx, email.ID, email.State, scheduledemail.StateFailed, details, authorID)
		if err != nil {
			return err
		}

		window := c.failedLogWindowFactor * c.maxFailedAttempts
		recent, err := tx.ScheduledEmailLog.Query().
			Where(scheduledemaillog.ScheduledEmailID(email.ID)).
			Order(ent.Desc(scheduledemaillog.FieldCreatedAt)).
			Limit(window).
			All(ctx)
		if err != nil {
			return fmt.Errorf("failed to query recent log entries: %w", err)
		}

		// Only genuine fail transitions count. Audit rows written while the
		// email already sits in the failed state (reschedules, updates) carry
		// state_before = state_after = failed and are not delivery attempts.
		failures := 0
		for _, entry := range recent {
			if entry.StateAfter == scheduledemaillog.StateAfterFailed &&
				entry.StateBefore != scheduledemaillog.StateBeforeFailed {
				failures++
			}
		}

		if failures >= c.maxFailedAttempts {
			cancelDetails := fmt.Sprintf(
				"Email was cancelled automatically after %d failed attempts", failures)
			updated, err = changeStateTx(ctx, tx, email.ID, scheduledemail.StateFailed,
				scheduledemail.StateCancelled, cancelDetails, nil)
			if err != nil {
				return err
			}
			escalated = true
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if escalated {
		c.log.Warn("email auto-cancelled after repeated failures", "email_id", email.ID)
	}
	return updated, nil
}

// render builds the render context from the snapshot and renders subject and
// body from the template source.
func (c *Controller) render(ctx context.Context, tx *ent.Tx, tmpl *ent.EmailTemplate, contextJSON map[string]any) (subject, body string, err error) {
	renderCtx, err := relations.BuildContext(ctx, tx.Client(), contextJSON)
	if err != nil {
		return "", "", fmt.Errorf("failed to build render context: %w", err)
	}

	subject, err = c.engine.Render(tmpl.Subject, renderCtx)
	if err != nil {
		return "", "", fmt.Errorf("failed to render subject: %w", err)
	}
	body, err = c.engine.Render(tmpl.Body, renderCtx)
	if err != nil {
		return "", "", fmt.Errorf("failed to render body: %w", err)
	}
	return subject, body, nil
}

func changeStateTx(ctx context.Context, tx *ent.Tx, emailID uuid.UUID, before, after scheduledemail.State, details string, authorID *int) (*ent.ScheduledEmail, error) {
	updated, err := tx.ScheduledEmail.UpdateOneID(emailID).
		SetState(after).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to change email state: %w", err)
	}

	if _, err := tx.ScheduledEmailLog.Create().
		SetDetails(details).
		SetStateBefore(scheduledemaillog.StateBefore(before)).
		SetStateAfter(scheduledemaillog.StateAfter(after)).
		SetNillableAuthorID(authorID).
		SetScheduledEmailID(updated.ID).
		Save(ctx); err != nil {
		return nil, fmt.Errorf("failed to write log entry: %w", err)
	}

	return updated, nil
}
