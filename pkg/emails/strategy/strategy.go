// Package strategy decides what to do with automated emails when domain
// objects change. Each strategy inspects current database state and returns
// exactly one decision; executing the decision is the action layer's job.
package strategy

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/carpentries/mailflow/ent"
	"github.com/carpentries/mailflow/ent/emailtemplate"
	"github.com/carpentries/mailflow/ent/scheduledemail"
	"github.com/carpentries/mailflow/pkg/relations"
)

// Decision is the outcome of a strategy evaluation.
type Decision int

const (
	DecisionNoop Decision = iota
	DecisionCreate
	DecisionUpdate
	DecisionCancel
)

// ErrUnknownDecision is returned by the runner for a decision value it has no
// dispatch entry for.
var ErrUnknownDecision = errors.New("unknown strategy decision")

func (d Decision) String() string {
	switch d {
	case DecisionNoop:
		return "noop"
	case DecisionCreate:
		return "create"
	case DecisionUpdate:
		return "update"
	case DecisionCancel:
		return "cancel"
	default:
		return fmt.Sprintf("decision(%d)", int(d))
	}
}

// decide maps the (email exists, email should exist) pair to a decision.
// The mapping is total: every combination yields exactly one decision.
func decide(exists, should bool) Decision {
	switch {
	case !exists && should:
		return DecisionCreate
	case exists && !should:
		return DecisionCancel
	case exists && should:
		return DecisionUpdate
	default:
		return DecisionNoop
	}
}

// Strategies evaluates scheduling decisions against the database.
type Strategies struct {
	client *ent.Client
	now    func() time.Time
}

// New creates a Strategies bound to the given client.
func New(client *ent.Client) *Strategies {
	return &Strategies{client: client, now: time.Now}
}

// NewWithClock creates a Strategies with a fixed clock source.
func NewWithClock(client *ent.Client, now func() time.Time) *Strategies {
	return &Strategies{client: client, now: now}
}

// emailExists reports whether a pending email for signal and target exists.
// Only the scheduled state counts: locked, running and terminal emails are
// out of the strategies' hands.
func (s *Strategies) emailExists(ctx context.Context, signal string, ref relations.Ref) (bool, error) {
	exists, err := s.client.ScheduledEmail.Query().
		Where(
			scheduledemail.HasTemplateWith(emailtemplate.Signal(signal)),
			scheduledemail.RelatedToEQ(scheduledemail.RelatedTo(ref.Kind)),
			scheduledemail.RelatedID(ref.ID),
			scheduledemail.StateEQ(scheduledemail.StateScheduled),
		).
		Exist(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to check for scheduled email: %w", err)
	}
	return exists, nil
}
