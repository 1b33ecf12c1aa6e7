package strategy

import (
	"context"
	"time"

	"github.com/carpentries/mailflow/ent"
	"github.com/carpentries/mailflow/ent/task"
	"github.com/carpentries/mailflow/pkg/emails/signals"
	"github.com/carpentries/mailflow/pkg/relations"
)

// HostInstructorsIntroduction introduces hosts and instructors of a
// centrally-organised workshop to each other, once the roster is settled.
func (s *Strategies) HostInstructorsIntroduction(ctx context.Context, event *ent.Event) (Decision, error) {
	ref := relations.Ref{Kind: relations.KindEvent, ID: event.ID}
	exists, err := s.emailExists(ctx, signals.HostInstructorsIntroduction, ref)
	if err != nil {
		return DecisionNoop, err
	}

	self, err := s.selfOrganised(ctx, event)
	if err != nil {
		return DecisionNoop, err
	}
	hosts, err := s.countRole(ctx, event.ID, task.RoleHost)
	if err != nil {
		return DecisionNoop, err
	}
	instructors, err := s.countRole(ctx, event.ID, task.RoleInstructor)
	if err != nil {
		return DecisionNoop, err
	}

	should := !self &&
		!event.OpenRecruitment &&
		startsAfter(event, s.now().Add(7*24*time.Hour)) &&
		eventActive(event) &&
		hasCarpentriesTag(event) &&
		hosts >= 1 &&
		instructors >= 2
	return decide(exists, should), nil
}

// RecruitHelpers asks hosts and instructors to find helpers for a workshop
// that has none yet, while there is still enough lead time.
func (s *Strategies) RecruitHelpers(ctx context.Context, event *ent.Event) (Decision, error) {
	ref := relations.Ref{Kind: relations.KindEvent, ID: event.ID}
	exists, err := s.emailExists(ctx, signals.RecruitHelpers, ref)
	if err != nil {
		return DecisionNoop, err
	}

	self, err := s.selfOrganised(ctx, event)
	if err != nil {
		return DecisionNoop, err
	}
	hosts, err := s.countRole(ctx, event.ID, task.RoleHost)
	if err != nil {
		return DecisionNoop, err
	}
	instructors, err := s.countRole(ctx, event.ID, task.RoleInstructor)
	if err != nil {
		return DecisionNoop, err
	}
	helpers, err := s.countRole(ctx, event.ID, task.RoleHelper)
	if err != nil {
		return DecisionNoop, err
	}

	should := !self &&
		startsAfter(event, s.now().Add(14*24*time.Hour)) &&
		eventActive(event) &&
		hosts >= 1 &&
		instructors >= 1 &&
		helpers == 0
	return decide(exists, should), nil
}

// PostWorkshop7Days thanks hosts and instructors after a workshop ends and
// asks for survey results.
func (s *Strategies) PostWorkshop7Days(ctx context.Context, event *ent.Event) (Decision, error) {
	ref := relations.Ref{Kind: relations.KindEvent, ID: event.ID}
	exists, err := s.emailExists(ctx, signals.PostWorkshop7Days, ref)
	if err != nil {
		return DecisionNoop, err
	}

	hosts, err := s.countRole(ctx, event.ID, task.RoleHost)
	if err != nil {
		return DecisionNoop, err
	}
	instructors, err := s.countRole(ctx, event.ID, task.RoleInstructor)
	if err != nil {
		return DecisionNoop, err
	}

	should := event.AdministratorID != nil &&
		!hasTag(event, TagCLDT) &&
		endsAfter(event, s.now()) &&
		eventActive(event) &&
		hasCarpentriesTag(event) &&
		hosts >= 1 &&
		instructors >= 1
	return decide(exists, should), nil
}

// AskForWebsite asks instructors of an upcoming workshop to set up the
// workshop website when none is linked yet.
func (s *Strategies) AskForWebsite(ctx context.Context, event *ent.Event) (Decision, error) {
	ref := relations.Ref{Kind: relations.KindEvent, ID: event.ID}
	exists, err := s.emailExists(ctx, signals.AskForWebsite, ref)
	if err != nil {
		return DecisionNoop, err
	}

	instructors, err := s.countRole(ctx, event.ID, task.RoleInstructor)
	if err != nil {
		return DecisionNoop, err
	}

	should := startsAfter(event, s.now()) &&
		eventActive(event) &&
		event.AdministratorID != nil &&
		event.URL == "" &&
		instructors >= 1 &&
		hasCarpentriesTag(event)
	return decide(exists, should), nil
}

// NewSelfOrganisedWorkshop welcomes the organisers of a freshly submitted
// self-organised workshop.
func (s *Strategies) NewSelfOrganisedWorkshop(ctx context.Context, event *ent.Event) (Decision, error) {
	ref := relations.Ref{Kind: relations.KindEvent, ID: event.ID}
	exists, err := s.emailExists(ctx, signals.NewSelfOrganisedWorkshop, ref)
	if err != nil {
		return DecisionNoop, err
	}

	self, err := s.selfOrganised(ctx, event)
	if err != nil {
		return DecisionNoop, err
	}

	should := self &&
		eventActive(event) &&
		hasCarpentriesTag(event)
	return decide(exists, should), nil
}
