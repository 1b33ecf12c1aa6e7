package strategy

import (
	"context"
	"fmt"

	"github.com/carpentries/mailflow/ent"
	"github.com/carpentries/mailflow/ent/task"
	"github.com/carpentries/mailflow/ent/trainingprogress"
	"github.com/carpentries/mailflow/pkg/emails/signals"
	"github.com/carpentries/mailflow/pkg/relations"
)

// InstructorBadge is the badge name that triggers the badge-awarded email.
const InstructorBadge = "instructor"

// InstructorBadgeAwarded congratulates a person on receiving the instructor
// badge.
func (s *Strategies) InstructorBadgeAwarded(ctx context.Context, award *ent.Award) (Decision, error) {
	ref := relations.Ref{Kind: relations.KindAward, ID: award.ID}
	exists, err := s.emailExists(ctx, signals.InstructorBadgeAwarded, ref)
	if err != nil {
		return DecisionNoop, err
	}

	should := award.Badge == InstructorBadge
	return decide(exists, should), nil
}

// InstructorTaskCreatedForWorkshop confirms an instructor's assignment to a
// live Carpentries workshop.
func (s *Strategies) InstructorTaskCreatedForWorkshop(ctx context.Context, t *ent.Task) (Decision, error) {
	ref := relations.Ref{Kind: relations.KindTask, ID: t.ID}
	exists, err := s.emailExists(ctx, signals.InstructorTaskCreatedForWorkshop, ref)
	if err != nil {
		return DecisionNoop, err
	}

	should := false
	if t.Role == task.RoleInstructor || t.Role == task.RoleSupportingInstructor {
		event, err := s.client.Event.Get(ctx, t.EventID)
		if err != nil {
			return DecisionNoop, fmt.Errorf("failed to load event for task: %w", err)
		}
		should = eventActive(event) && hasCarpentriesTag(event)
	}
	return decide(exists, should), nil
}

// InstructorTrainingApproaching reminds trainers about an upcoming
// instructor training (TTT) event. It requires at least two instructors and
// a start date in the future.
func (s *Strategies) InstructorTrainingApproaching(ctx context.Context, event *ent.Event) (Decision, error) {
	ref := relations.Ref{Kind: relations.KindEvent, ID: event.ID}
	exists, err := s.emailExists(ctx, signals.InstructorTrainingApproaching, ref)
	if err != nil {
		return DecisionNoop, err
	}

	instructors, err := s.countRole(ctx, event.ID, task.RoleInstructor)
	if err != nil {
		return DecisionNoop, err
	}

	should := hasTag(event, TagTTT) &&
		instructors >= 2 &&
		startsAfter(event, s.now())
	return decide(exists, should), nil
}

// InstructorTrainingCompletedNotBadged nudges a trainee who passed the
// training but has not yet completed every remaining checkout requirement.
func (s *Strategies) InstructorTrainingCompletedNotBadged(ctx context.Context, person *ent.Person) (Decision, error) {
	ref := relations.Ref{Kind: relations.KindPerson, ID: person.ID}
	exists, err := s.emailExists(ctx, signals.InstructorTrainingCompletedNotBadged, ref)
	if err != nil {
		return DecisionNoop, err
	}

	passed, err := s.passedRequirements(ctx, person.ID)
	if err != nil {
		return DecisionNoop, err
	}

	should := passed[trainingprogress.RequirementTraining] &&
		!(passed[trainingprogress.RequirementGetInvolved] &&
			passed[trainingprogress.RequirementWelcome] &&
			passed[trainingprogress.RequirementDemo])
	return decide(exists, should), nil
}

func (s *Strategies) passedRequirements(ctx context.Context, personID int) (map[trainingprogress.Requirement]bool, error) {
	rows, err := s.client.TrainingProgress.Query().
		Where(
			trainingprogress.PersonID(personID),
			trainingprogress.StateEQ(trainingprogress.StatePassed),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query training progress: %w", err)
	}

	passed := make(map[trainingprogress.Requirement]bool, len(rows))
	for _, row := range rows {
		passed[row.Requirement] = true
	}
	return passed, nil
}
