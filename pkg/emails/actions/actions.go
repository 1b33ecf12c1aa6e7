// Package actions turns strategy decisions into controller calls. Each
// signal has a Handler that knows how to assemble scheduling parameters for
// its target object; the Executor dispatches decisions to the controller.
package actions

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/carpentries/mailflow/ent"
	"github.com/carpentries/mailflow/ent/scheduledemail"
	"github.com/carpentries/mailflow/pkg/emails"
	"github.com/carpentries/mailflow/pkg/emails/strategy"
	"github.com/carpentries/mailflow/pkg/flags"
	"github.com/carpentries/mailflow/pkg/logger"
	"github.com/carpentries/mailflow/pkg/metrics"
	"github.com/carpentries/mailflow/pkg/relations"
)

// OneHour is the delay applied to emails that should go out "immediately".
// The gap leaves room for a human to cancel a mistaken trigger.
const OneHour = time.Hour

// Handler assembles scheduling parameters for one signal.
type Handler interface {
	// Signal returns the signal name this handler serves.
	Signal() string

	// Target returns the kind of domain object this handler operates on.
	Target() relations.Kind

	// Params builds the scheduling parameters for the given target.
	Params(ctx context.Context, client *ent.Client, ref relations.Ref, now time.Time) (emails.ScheduleParams, error)
}

// Executor applies strategy decisions through the email controller.
type Executor struct {
	ctrl  *emails.Controller
	flags *flags.FeatureFlags
	m     *metrics.Metrics
	log   logger.Logger
	now   func() time.Time
}

// NewExecutor creates an Executor. Metrics may be nil.
func NewExecutor(ctrl *emails.Controller, ff *flags.FeatureFlags, m *metrics.Metrics, log logger.Logger) *Executor {
	if log == nil {
		log = logger.Default()
	}
	return &Executor{ctrl: ctrl, flags: ff, m: m, log: log, now: time.Now}
}

// NewExecutorWithClock creates an Executor with a fixed clock source.
func NewExecutorWithClock(ctrl *emails.Controller, ff *flags.FeatureFlags, m *metrics.Metrics, log logger.Logger, now func() time.Time) *Executor {
	e := NewExecutor(ctrl, ff, m, log)
	e.now = now
	return e
}

// Outcome reports what executing a decision actually did, so the caller can
// surface it to the triggering user. A decision alone is not enough: a create
// can end in a missing-template skip, and a cancel can find nothing pending.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeScheduled
	OutcomeUpdated
	OutcomeCancelled
	OutcomeMissingTemplate
	OutcomeMissingRecipients
)

func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "none"
	case OutcomeScheduled:
		return "scheduled"
	case OutcomeUpdated:
		return "updated"
	case OutcomeCancelled:
		return "cancelled"
	case OutcomeMissingTemplate:
		return "missing_template"
	case OutcomeMissingRecipients:
		return "missing_recipients"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// Run executes one decision for one target and reports what happened. When
// the email module is disabled the decision is skipped with a log line.
// Missing templates and missing recipients are logged as warnings, not
// errors: both are data problems an admin fixes, and the next trigger
// re-evaluates from scratch.
func (e *Executor) Run(ctx context.Context, decision strategy.Decision, h Handler, ref relations.Ref) (Outcome, error) {
	if e.flags != nil && !e.flags.EmailModule(ctx) {
		e.log.Info("email module disabled, skipping",
			"signal", h.Signal(), "decision", decision.String())
		return OutcomeNone, nil
	}

	switch decision {
	case strategy.DecisionNoop:
		e.log.Debug("no action for signal", "signal", h.Signal(), "target", ref)
		return OutcomeNone, nil
	case strategy.DecisionCreate:
		return e.create(ctx, h, ref)
	case strategy.DecisionUpdate:
		return e.update(ctx, h, ref)
	case strategy.DecisionCancel:
		return e.cancel(ctx, h, ref)
	default:
		return OutcomeNone, fmt.Errorf("%w: %s", strategy.ErrUnknownDecision, decision)
	}
}

func (e *Executor) create(ctx context.Context, h Handler, ref relations.Ref) (Outcome, error) {
	p, err := h.Params(ctx, e.ctrl.Client(), ref, e.now())
	if err != nil {
		return OutcomeNone, fmt.Errorf("failed to build params for %s: %w", h.Signal(), err)
	}

	if _, err := e.ctrl.ScheduleEmail(ctx, p); err != nil {
		if skipped, ok := e.skippable(err, h.Signal()); ok {
			return skipped, nil
		}
		return OutcomeNone, err
	}
	if e.m != nil {
		e.m.RecordScheduled(h.Signal())
	}
	return OutcomeScheduled, nil
}

func (e *Executor) update(ctx context.Context, h Handler, ref relations.Ref) (Outcome, error) {
	p, err := h.Params(ctx, e.ctrl.Client(), ref, e.now())
	if err != nil {
		return OutcomeNone, fmt.Errorf("failed to build params for %s: %w", h.Signal(), err)
	}

	_, matched, err := e.ctrl.UpdatePendingEmail(ctx, h.Signal(), ref, p)
	if err != nil {
		if skipped, ok := e.skippable(err, h.Signal()); ok {
			return skipped, nil
		}
		return OutcomeNone, err
	}
	switch {
	case matched == 0:
		e.log.Warn("no scheduled email to update", "signal", h.Signal(), "target", ref)
		return OutcomeNone, nil
	case matched > 1:
		e.log.Warn("multiple scheduled emails match, skipping update",
			"signal", h.Signal(), "target", ref, "matched", matched)
		return OutcomeNone, nil
	}
	if e.m != nil {
		e.m.RecordUpdated(h.Signal())
	}
	return OutcomeUpdated, nil
}

func (e *Executor) cancel(ctx context.Context, h Handler, ref relations.Ref) (Outcome, error) {
	pending, err := e.ctrl.FindForSignal(ctx, h.Signal(), ref, scheduledemail.StateScheduled)
	if err != nil {
		return OutcomeNone, err
	}

	for _, email := range pending {
		if _, err := e.ctrl.CancelEmail(ctx, email, nil); err != nil {
			return OutcomeNone, err
		}
		if e.m != nil {
			e.m.RecordCancelled(h.Signal())
		}
	}
	if len(pending) == 0 {
		return OutcomeNone, nil
	}
	return OutcomeCancelled, nil
}

func (e *Executor) skippable(err error, signal string) (Outcome, bool) {
	switch {
	case errors.Is(err, emails.ErrMissingTemplate):
		e.log.Warn("no active template for signal", "signal", signal)
		return OutcomeMissingTemplate, true
	case errors.Is(err, emails.ErrMissingRecipients):
		e.log.Warn("no recipients for signal", "signal", signal)
		return OutcomeMissingRecipients, true
	}
	return OutcomeNone, false
}
