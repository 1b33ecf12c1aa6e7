package actions

import (
	"context"
	"fmt"
	"time"

	"github.com/carpentries/mailflow/ent"
	"github.com/carpentries/mailflow/ent/task"
	"github.com/carpentries/mailflow/ent/trainingprogress"
	"github.com/carpentries/mailflow/pkg/emails"
	"github.com/carpentries/mailflow/pkg/emails/signals"
	"github.com/carpentries/mailflow/pkg/relations"
)

// BadgeAwardedHandler congratulates a person on a fresh instructor badge.
type BadgeAwardedHandler struct{}

func (BadgeAwardedHandler) Signal() string         { return signals.InstructorBadgeAwarded }
func (BadgeAwardedHandler) Target() relations.Kind { return relations.KindAward }

func (BadgeAwardedHandler) Params(ctx context.Context, client *ent.Client, ref relations.Ref, now time.Time) (emails.ScheduleParams, error) {
	award, err := client.Award.Get(ctx, ref.ID)
	if err != nil {
		return emails.ScheduleParams{}, fmt.Errorf("failed to load award: %w", err)
	}
	recipient, err := client.Person.Get(ctx, award.PersonID)
	if err != nil {
		return emails.ScheduleParams{}, fmt.Errorf("failed to load person: %w", err)
	}

	to, refs := recipients([]*ent.Person{recipient})
	return emails.ScheduleParams{
		Signal: signals.InstructorBadgeAwarded,
		ContextJSON: map[string]any{
			"award":  relations.ModelURI(string(relations.KindAward), award.ID),
			"person": relations.ModelURI(string(relations.KindPerson), recipient.ID),
		},
		ScheduledAt:         now.Add(OneHour),
		ToHeader:            to,
		ToHeaderContextJSON: refs,
		Related:             ref,
	}, nil
}

// TaskCreatedHandler confirms an instructor's workshop assignment.
type TaskCreatedHandler struct{}

func (TaskCreatedHandler) Signal() string         { return signals.InstructorTaskCreatedForWorkshop }
func (TaskCreatedHandler) Target() relations.Kind { return relations.KindTask }

func (TaskCreatedHandler) Params(ctx context.Context, client *ent.Client, ref relations.Ref, now time.Time) (emails.ScheduleParams, error) {
	t, err := client.Task.Get(ctx, ref.ID)
	if err != nil {
		return emails.ScheduleParams{}, fmt.Errorf("failed to load task: %w", err)
	}
	recipient, err := client.Person.Get(ctx, t.PersonID)
	if err != nil {
		return emails.ScheduleParams{}, fmt.Errorf("failed to load person: %w", err)
	}

	to, refs := recipients([]*ent.Person{recipient})
	return emails.ScheduleParams{
		Signal: signals.InstructorTaskCreatedForWorkshop,
		ContextJSON: map[string]any{
			"task":   relations.ModelURI(string(relations.KindTask), t.ID),
			"person": relations.ModelURI(string(relations.KindPerson), recipient.ID),
			"event":  relations.ModelURI(string(relations.KindEvent), t.EventID),
		},
		ScheduledAt:         now.Add(OneHour),
		ToHeader:            to,
		ToHeaderContextJSON: refs,
		Related:             ref,
	}, nil
}

// TrainingApproachingHandler reminds trainers a month before the training
// starts.
type TrainingApproachingHandler struct{}

func (TrainingApproachingHandler) Signal() string         { return signals.InstructorTrainingApproaching }
func (TrainingApproachingHandler) Target() relations.Kind { return relations.KindEvent }

func (TrainingApproachingHandler) Params(ctx context.Context, client *ent.Client, ref relations.Ref, now time.Time) (emails.ScheduleParams, error) {
	event, err := client.Event.Get(ctx, ref.ID)
	if err != nil {
		return emails.ScheduleParams{}, fmt.Errorf("failed to load event: %w", err)
	}
	instructors, err := eventPersons(ctx, client, event.ID, task.RoleInstructor)
	if err != nil {
		return emails.ScheduleParams{}, err
	}

	to, refs := recipients(instructors)
	return emails.ScheduleParams{
		Signal: signals.InstructorTrainingApproaching,
		ContextJSON: map[string]any{
			"event":       relations.ModelURI(string(relations.KindEvent), event.ID),
			"instructors": personURIs(instructors),
		},
		ScheduledAt:         offsetOr(event.StartDate, -30*24*time.Hour, now),
		ToHeader:            to,
		ToHeaderContextJSON: refs,
		Related:             ref,
	}, nil
}

// TrainingCompletedHandler nudges a trainee two months after passing the
// training without finishing checkout.
type TrainingCompletedHandler struct{}

func (TrainingCompletedHandler) Signal() string {
	return signals.InstructorTrainingCompletedNotBadged
}
func (TrainingCompletedHandler) Target() relations.Kind { return relations.KindPerson }

func (TrainingCompletedHandler) Params(ctx context.Context, client *ent.Client, ref relations.Ref, now time.Time) (emails.ScheduleParams, error) {
	trainee, err := client.Person.Get(ctx, ref.ID)
	if err != nil {
		return emails.ScheduleParams{}, fmt.Errorf("failed to load person: %w", err)
	}

	var completedAt *time.Time
	passed, err := client.TrainingProgress.Query().
		Where(
			trainingprogress.PersonID(trainee.ID),
			trainingprogress.RequirementEQ(trainingprogress.RequirementTraining),
			trainingprogress.StateEQ(trainingprogress.StatePassed),
		).
		Order(ent.Desc(trainingprogress.FieldCreatedAt)).
		First(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return emails.ScheduleParams{}, fmt.Errorf("failed to load training progress: %w", err)
	}
	if passed != nil {
		completedAt = &passed.CreatedAt
	}

	to, refs := recipients([]*ent.Person{trainee})
	return emails.ScheduleParams{
		Signal: signals.InstructorTrainingCompletedNotBadged,
		ContextJSON: map[string]any{
			"person": relations.ModelURI(string(relations.KindPerson), trainee.ID),
		},
		ScheduledAt:         offsetOr(completedAt, 60*24*time.Hour, now),
		ToHeader:            to,
		ToHeaderContextJSON: refs,
		Related:             ref,
	}, nil
}
