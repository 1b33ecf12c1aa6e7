package actions

import (
	"context"
	"fmt"
	"time"

	"github.com/carpentries/mailflow/ent"
	"github.com/carpentries/mailflow/pkg/emails"
	"github.com/carpentries/mailflow/pkg/emails/signals"
	"github.com/carpentries/mailflow/pkg/emails/strategy"
	"github.com/carpentries/mailflow/pkg/flags"
	"github.com/carpentries/mailflow/pkg/logger"
	"github.com/carpentries/mailflow/pkg/metrics"
	"github.com/carpentries/mailflow/pkg/relations"
)

// Runner evaluates a signal's strategy against the current domain state and
// executes the resulting decision. Domain mutations call this once per
// affected signal; the evaluation is idempotent, so over-triggering is safe.
type Runner struct {
	client     *ent.Client
	strategies *strategy.Strategies
	registry   Registry
	exec       *Executor
	m          *metrics.Metrics
	log        logger.Logger
}

// NewRunner creates a Runner over the default signal registry. Metrics may
// be nil.
func NewRunner(ctrl *emails.Controller, ff *flags.FeatureFlags, m *metrics.Metrics, log logger.Logger) *Runner {
	if log == nil {
		log = logger.Default()
	}
	return &Runner{
		client:     ctrl.Client(),
		strategies: strategy.New(ctrl.Client()),
		registry:   DefaultRegistry(),
		exec:       NewExecutor(ctrl, ff, m, log),
		m:          m,
		log:        log,
	}
}

// NewRunnerWithClock creates a Runner with a fixed clock source.
func NewRunnerWithClock(ctrl *emails.Controller, ff *flags.FeatureFlags, m *metrics.Metrics, log logger.Logger, now func() time.Time) *Runner {
	r := NewRunner(ctrl, ff, m, log)
	r.strategies = strategy.NewWithClock(ctrl.Client(), now)
	r.exec = NewExecutorWithClock(ctrl, ff, m, log, now)
	return r
}

// Evaluate runs one signal's strategy for one target and applies the
// decision. The decision reports what the strategy chose; the outcome
// reports what actually happened, including the skip cases the triggering
// user needs to hear about (missing template, missing recipients).
func (r *Runner) Evaluate(ctx context.Context, signal string, ref relations.Ref) (strategy.Decision, Outcome, error) {
	h, ok := r.registry[signal]
	if !ok {
		return strategy.DecisionNoop, OutcomeNone, fmt.Errorf("no handler registered for signal %q", signal)
	}
	if ref.Kind != h.Target() {
		return strategy.DecisionNoop, OutcomeNone, fmt.Errorf("signal %s targets %s objects, got %s",
			signal, h.Target(), ref.Kind)
	}

	decision, err := r.decide(ctx, signal, ref)
	if err != nil {
		return strategy.DecisionNoop, OutcomeNone, err
	}
	if r.m != nil {
		r.m.RecordStrategyRun(signal, decision.String())
	}

	r.log.Debug("strategy evaluated", "signal", signal, "target", ref, "decision", decision.String())
	outcome, err := r.exec.Run(ctx, decision, h, ref)
	return decision, outcome, err
}

func (r *Runner) decide(ctx context.Context, signal string, ref relations.Ref) (strategy.Decision, error) {
	switch signal {
	case signals.InstructorBadgeAwarded:
		award, err := r.client.Award.Get(ctx, ref.ID)
		if err != nil {
			return strategy.DecisionNoop, fmt.Errorf("failed to load award: %w", err)
		}
		return r.strategies.InstructorBadgeAwarded(ctx, award)

	case signals.InstructorTaskCreatedForWorkshop:
		t, err := r.client.Task.Get(ctx, ref.ID)
		if err != nil {
			return strategy.DecisionNoop, fmt.Errorf("failed to load task: %w", err)
		}
		return r.strategies.InstructorTaskCreatedForWorkshop(ctx, t)

	case signals.InstructorTrainingCompletedNotBadged:
		person, err := r.client.Person.Get(ctx, ref.ID)
		if err != nil {
			return strategy.DecisionNoop, fmt.Errorf("failed to load person: %w", err)
		}
		return r.strategies.InstructorTrainingCompletedNotBadged(ctx, person)

	case signals.InstructorTrainingApproaching,
		signals.HostInstructorsIntroduction,
		signals.RecruitHelpers,
		signals.PostWorkshop7Days,
		signals.AskForWebsite,
		signals.NewSelfOrganisedWorkshop:
		event, err := r.client.Event.Get(ctx, ref.ID)
		if err != nil {
			return strategy.DecisionNoop, fmt.Errorf("failed to load event: %w", err)
		}
		return r.eventStrategy(ctx, signal, event)

	case signals.NewMembershipOnboarding,
		signals.MembershipQuarterly3Months,
		signals.MembershipQuarterly6Months,
		signals.MembershipQuarterly9Months:
		m, err := r.client.Membership.Get(ctx, ref.ID)
		if err != nil {
			return strategy.DecisionNoop, fmt.Errorf("failed to load membership: %w", err)
		}
		return r.membershipStrategy(ctx, signal, m)

	default:
		return strategy.DecisionNoop, fmt.Errorf("no strategy for signal %q", signal)
	}
}

func (r *Runner) eventStrategy(ctx context.Context, signal string, event *ent.Event) (strategy.Decision, error) {
	switch signal {
	case signals.InstructorTrainingApproaching:
		return r.strategies.InstructorTrainingApproaching(ctx, event)
	case signals.HostInstructorsIntroduction:
		return r.strategies.HostInstructorsIntroduction(ctx, event)
	case signals.RecruitHelpers:
		return r.strategies.RecruitHelpers(ctx, event)
	case signals.PostWorkshop7Days:
		return r.strategies.PostWorkshop7Days(ctx, event)
	case signals.AskForWebsite:
		return r.strategies.AskForWebsite(ctx, event)
	default:
		return r.strategies.NewSelfOrganisedWorkshop(ctx, event)
	}
}

func (r *Runner) membershipStrategy(ctx context.Context, signal string, m *ent.Membership) (strategy.Decision, error) {
	switch signal {
	case signals.NewMembershipOnboarding:
		return r.strategies.NewMembershipOnboarding(ctx, m)
	case signals.MembershipQuarterly3Months:
		return r.strategies.MembershipQuarterly3Months(ctx, m)
	case signals.MembershipQuarterly6Months:
		return r.strategies.MembershipQuarterly6Months(ctx, m)
	default:
		return r.strategies.MembershipQuarterly9Months(ctx, m)
	}
}
