package actions

import (
	"context"
	"fmt"
	"time"

	"github.com/carpentries/mailflow/ent"
	"github.com/carpentries/mailflow/ent/task"
	"github.com/carpentries/mailflow/pkg/emails"
	"github.com/carpentries/mailflow/pkg/emails/signals"
	"github.com/carpentries/mailflow/pkg/relations"
)

// workshopParams assembles the common event-centric parameters: hosts and
// instructors as recipients, event plus rosters in the context.
func workshopParams(ctx context.Context, client *ent.Client, signal string, ref relations.Ref, scheduledAt func(*ent.Event) time.Time, roles ...task.Role) (emails.ScheduleParams, error) {
	event, err := client.Event.Get(ctx, ref.ID)
	if err != nil {
		return emails.ScheduleParams{}, fmt.Errorf("failed to load event: %w", err)
	}

	people, err := eventPersons(ctx, client, event.ID, roles...)
	if err != nil {
		return emails.ScheduleParams{}, err
	}
	hosts, err := eventPersons(ctx, client, event.ID, task.RoleHost)
	if err != nil {
		return emails.ScheduleParams{}, err
	}
	instructors, err := eventPersons(ctx, client, event.ID, task.RoleInstructor)
	if err != nil {
		return emails.ScheduleParams{}, err
	}

	to, refs := recipients(people)
	return emails.ScheduleParams{
		Signal: signal,
		ContextJSON: map[string]any{
			"event":       relations.ModelURI(string(relations.KindEvent), event.ID),
			"hosts":       personURIs(hosts),
			"instructors": personURIs(instructors),
		},
		ScheduledAt:         scheduledAt(event),
		ToHeader:            to,
		ToHeaderContextJSON: refs,
		Related:             ref,
	}, nil
}

// HostInstructorsIntroductionHandler introduces the workshop roster to each
// other.
type HostInstructorsIntroductionHandler struct{}

func (HostInstructorsIntroductionHandler) Signal() string {
	return signals.HostInstructorsIntroduction
}
func (HostInstructorsIntroductionHandler) Target() relations.Kind { return relations.KindEvent }

func (HostInstructorsIntroductionHandler) Params(ctx context.Context, client *ent.Client, ref relations.Ref, now time.Time) (emails.ScheduleParams, error) {
	return workshopParams(ctx, client, signals.HostInstructorsIntroduction, ref,
		func(*ent.Event) time.Time { return now.Add(OneHour) },
		task.RoleHost, task.RoleInstructor)
}

// RecruitHelpersHandler asks the roster to find helpers three weeks before
// the workshop.
type RecruitHelpersHandler struct{}

func (RecruitHelpersHandler) Signal() string         { return signals.RecruitHelpers }
func (RecruitHelpersHandler) Target() relations.Kind { return relations.KindEvent }

func (RecruitHelpersHandler) Params(ctx context.Context, client *ent.Client, ref relations.Ref, now time.Time) (emails.ScheduleParams, error) {
	return workshopParams(ctx, client, signals.RecruitHelpers, ref,
		func(e *ent.Event) time.Time { return offsetOr(e.StartDate, -21*24*time.Hour, now) },
		task.RoleHost, task.RoleInstructor)
}

// PostWorkshopHandler follows up a week after the workshop ends.
type PostWorkshopHandler struct{}

func (PostWorkshopHandler) Signal() string         { return signals.PostWorkshop7Days }
func (PostWorkshopHandler) Target() relations.Kind { return relations.KindEvent }

func (PostWorkshopHandler) Params(ctx context.Context, client *ent.Client, ref relations.Ref, now time.Time) (emails.ScheduleParams, error) {
	return workshopParams(ctx, client, signals.PostWorkshop7Days, ref,
		func(e *ent.Event) time.Time { return offsetOr(e.EndDate, 7*24*time.Hour, now) },
		task.RoleHost, task.RoleInstructor)
}

// AskForWebsiteHandler asks instructors for the workshop website a month
// before the start.
type AskForWebsiteHandler struct{}

func (AskForWebsiteHandler) Signal() string         { return signals.AskForWebsite }
func (AskForWebsiteHandler) Target() relations.Kind { return relations.KindEvent }

func (AskForWebsiteHandler) Params(ctx context.Context, client *ent.Client, ref relations.Ref, now time.Time) (emails.ScheduleParams, error) {
	return workshopParams(ctx, client, signals.AskForWebsite, ref,
		func(e *ent.Event) time.Time { return offsetOr(e.StartDate, -30*24*time.Hour, now) },
		task.RoleInstructor)
}

// SelfOrganisedHandler welcomes a newly submitted self-organised workshop.
type SelfOrganisedHandler struct{}

func (SelfOrganisedHandler) Signal() string         { return signals.NewSelfOrganisedWorkshop }
func (SelfOrganisedHandler) Target() relations.Kind { return relations.KindEvent }

func (SelfOrganisedHandler) Params(ctx context.Context, client *ent.Client, ref relations.Ref, now time.Time) (emails.ScheduleParams, error) {
	return workshopParams(ctx, client, signals.NewSelfOrganisedWorkshop, ref,
		func(*ent.Event) time.Time { return now.Add(OneHour) },
		task.RoleHost, task.RoleInstructor)
}
