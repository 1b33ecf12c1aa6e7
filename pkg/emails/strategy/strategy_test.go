package strategy

import (
	"context"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carpentries/mailflow/ent"
	"github.com/carpentries/mailflow/ent/emailtemplate"
	"github.com/carpentries/mailflow/ent/enttest"
	"github.com/carpentries/mailflow/ent/membershiptask"
	"github.com/carpentries/mailflow/ent/scheduledemail"
	"github.com/carpentries/mailflow/ent/task"
	"github.com/carpentries/mailflow/ent/trainingprogress"
	"github.com/carpentries/mailflow/pkg/emails/signals"
	"github.com/carpentries/mailflow/pkg/models"
	"github.com/carpentries/mailflow/pkg/relations"
)

// setupTestDB creates an in-memory SQLite database for testing
func setupTestDB(t *testing.T) *ent.Client {
	opts := []enttest.Option{
		enttest.WithOptions(ent.Log(t.Log)),
	}

	client := enttest.Open(t, "sqlite3", "file:ent?mode=memory&cache=shared&_fk=1", opts...)
	return client
}

// ensureTemplate creates the template backing a signal if none exists yet.
func ensureTemplate(t *testing.T, client *ent.Client, signal string) *ent.EmailTemplate {
	ctx := context.Background()
	existing, err := client.EmailTemplate.Query().
		Where(emailtemplate.Signal(signal)).
		Only(ctx)
	if err == nil {
		return existing
	}
	require.True(t, ent.IsNotFound(err))

	tmpl, err := client.EmailTemplate.Create().
		SetName("Template for " + signal).
		SetSignal(signal).
		SetFromHeader("team@example.org").
		SetSubject("Subject").
		SetBody("Body").
		Save(ctx)
	require.NoError(t, err)
	return tmpl
}

// createPendingEmail plants a scheduled-state email for signal and target.
func createPendingEmail(t *testing.T, client *ent.Client, signal string, ref relations.Ref) *ent.ScheduledEmail {
	tmpl := ensureTemplate(t, client, signal)
	email, err := client.ScheduledEmail.Create().
		SetScheduledAt(time.Now().Add(time.Hour)).
		SetToHeader([]string{"someone@example.org"}).
		SetFromHeader("team@example.org").
		SetSubject("Subject").
		SetBody("Body").
		SetContextJSON(map[string]any{}).
		SetToHeaderContextJSON([]models.ToHeaderRef{{APIURI: "api:person#1", Property: "email"}}).
		SetTemplateID(tmpl.ID).
		SetRelatedTo(scheduledemail.RelatedTo(ref.Kind)).
		SetRelatedID(ref.ID).
		Save(context.Background())
	require.NoError(t, err)
	return email
}

func createPerson(t *testing.T, client *ent.Client, email string) *ent.Person {
	p, err := client.Person.Create().
		SetPersonal("Test").
		SetFamily("Person").
		SetEmail(email).
		Save(context.Background())
	require.NoError(t, err)
	return p
}

type eventParams struct {
	tags    []string
	start   *time.Time
	end     *time.Time
	url     string
	adminID *int
	openRec bool
}

func createEvent(t *testing.T, client *ent.Client, slug string, p eventParams) *ent.Event {
	create := client.Event.Create().
		SetSlug(slug).
		SetTags(p.tags).
		SetURL(p.url).
		SetOpenRecruitment(p.openRec)
	if p.start != nil {
		create = create.SetStartDate(*p.start)
	}
	if p.end != nil {
		create = create.SetEndDate(*p.end)
	}
	if p.adminID != nil {
		create = create.SetAdministratorID(*p.adminID)
	}
	event, err := create.Save(context.Background())
	require.NoError(t, err)
	return event
}

func addTask(t *testing.T, client *ent.Client, eventID int, role task.Role) {
	person := createPerson(t, client, "")
	_, err := client.Task.Create().
		SetRole(role).
		SetEventID(eventID).
		SetPersonID(person.ID).
		Save(context.Background())
	require.NoError(t, err)
}

func createOrg(t *testing.T, client *ent.Client, name, domain string) *ent.Organization {
	org, err := client.Organization.Create().
		SetFullname(name).
		SetDomain(domain).
		Save(context.Background())
	require.NoError(t, err)
	return org
}

func timePtr(t time.Time) *time.Time { return &t }
func intPtr(i int) *int              { return &i }

func TestDecide_Totality(t *testing.T) {
	tests := []struct {
		name     string
		exists   bool
		should   bool
		expected Decision
	}{
		{"absent and unwanted", false, false, DecisionNoop},
		{"absent and wanted", false, true, DecisionCreate},
		{"present and unwanted", true, false, DecisionCancel},
		{"present and wanted", true, true, DecisionUpdate},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, decide(tt.exists, tt.should))
		})
	}
}

func TestInstructorBadgeAwarded(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()
	ctx := context.Background()

	person := createPerson(t, client, "badged@example.org")
	s := New(client)

	instructorAward, err := client.Award.Create().
		SetBadge("instructor").
		SetPersonID(person.ID).
		Save(ctx)
	require.NoError(t, err)

	decision, err := s.InstructorBadgeAwarded(ctx, instructorAward)
	require.NoError(t, err)
	assert.Equal(t, DecisionCreate, decision)

	// Other badges never trigger the email
	trainerAward, err := client.Award.Create().
		SetBadge("trainer").
		SetPersonID(person.ID).
		Save(ctx)
	require.NoError(t, err)

	decision, err = s.InstructorBadgeAwarded(ctx, trainerAward)
	require.NoError(t, err)
	assert.Equal(t, DecisionNoop, decision)

	// With a pending email the decision flips to update
	createPendingEmail(t, client, signals.InstructorBadgeAwarded,
		relations.Ref{Kind: relations.KindAward, ID: instructorAward.ID})

	decision, err = s.InstructorBadgeAwarded(ctx, instructorAward)
	require.NoError(t, err)
	assert.Equal(t, DecisionUpdate, decision)
}

func TestInstructorTaskCreatedForWorkshop(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()
	ctx := context.Background()

	now := time.Now()
	live := createEvent(t, client, "live-workshop", eventParams{
		tags:  []string{"SWC"},
		start: timePtr(now.AddDate(0, 0, 10)),
	})
	stalled := createEvent(t, client, "stalled-workshop", eventParams{
		tags: []string{"SWC", TagStalled},
	})
	person := createPerson(t, client, "instructor@example.org")

	s := New(client)

	instructorTask, err := client.Task.Create().
		SetRole(task.RoleInstructor).
		SetEventID(live.ID).
		SetPersonID(person.ID).
		Save(ctx)
	require.NoError(t, err)

	decision, err := s.InstructorTaskCreatedForWorkshop(ctx, instructorTask)
	require.NoError(t, err)
	assert.Equal(t, DecisionCreate, decision)

	// Learner tasks are ignored
	learnerTask, err := client.Task.Create().
		SetRole(task.RoleLearner).
		SetEventID(live.ID).
		SetPersonID(person.ID).
		Save(ctx)
	require.NoError(t, err)

	decision, err = s.InstructorTaskCreatedForWorkshop(ctx, learnerTask)
	require.NoError(t, err)
	assert.Equal(t, DecisionNoop, decision)

	// Stalled events do not qualify
	stalledTask, err := client.Task.Create().
		SetRole(task.RoleInstructor).
		SetEventID(stalled.ID).
		SetPersonID(person.ID).
		Save(ctx)
	require.NoError(t, err)

	decision, err = s.InstructorTaskCreatedForWorkshop(ctx, stalledTask)
	require.NoError(t, err)
	assert.Equal(t, DecisionNoop, decision)
}

func TestInstructorTrainingApproaching_Lifecycle(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()
	ctx := context.Background()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	s := NewWithClock(client, func() time.Time { return now })

	training := createEvent(t, client, "ttt-training", eventParams{
		tags:  []string{TagTTT},
		start: timePtr(now.AddDate(0, 2, 0)),
	})
	ref := relations.Ref{Kind: relations.KindEvent, ID: training.ID}

	// Only one instructor so far: nothing to do
	addTask(t, client, training.ID, task.RoleInstructor)
	decision, err := s.InstructorTrainingApproaching(ctx, training)
	require.NoError(t, err)
	assert.Equal(t, DecisionNoop, decision)

	// Second instructor joins: create
	addTask(t, client, training.ID, task.RoleInstructor)
	decision, err = s.InstructorTrainingApproaching(ctx, training)
	require.NoError(t, err)
	assert.Equal(t, DecisionCreate, decision)

	// Email pending and conditions still hold: update
	createPendingEmail(t, client, signals.InstructorTrainingApproaching, ref)
	decision, err = s.InstructorTrainingApproaching(ctx, training)
	require.NoError(t, err)
	assert.Equal(t, DecisionUpdate, decision)

	// Training moved to the past: cancel the pending email
	past, err := training.Update().SetStartDate(now.AddDate(0, -1, 0)).Save(ctx)
	require.NoError(t, err)
	decision, err = s.InstructorTrainingApproaching(ctx, past)
	require.NoError(t, err)
	assert.Equal(t, DecisionCancel, decision)
}

func TestInstructorTrainingCompletedNotBadged(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()
	ctx := context.Background()

	s := New(client)

	trainee := createPerson(t, client, "trainee@example.org")
	_, err := client.TrainingProgress.Create().
		SetRequirement(trainingprogress.RequirementTraining).
		SetState(trainingprogress.StatePassed).
		SetPersonID(trainee.ID).
		Save(ctx)
	require.NoError(t, err)

	decision, err := s.InstructorTrainingCompletedNotBadged(ctx, trainee)
	require.NoError(t, err)
	assert.Equal(t, DecisionCreate, decision)

	// Completing every checkout requirement turns the nudge off
	for _, req := range []trainingprogress.Requirement{
		trainingprogress.RequirementGetInvolved,
		trainingprogress.RequirementWelcome,
		trainingprogress.RequirementDemo,
	} {
		_, err := client.TrainingProgress.Create().
			SetRequirement(req).
			SetState(trainingprogress.StatePassed).
			SetPersonID(trainee.ID).
			Save(ctx)
		require.NoError(t, err)
	}

	decision, err = s.InstructorTrainingCompletedNotBadged(ctx, trainee)
	require.NoError(t, err)
	assert.Equal(t, DecisionNoop, decision)

	// Someone who never passed the training is not nudged either
	fresh := createPerson(t, client, "fresh@example.org")
	decision, err = s.InstructorTrainingCompletedNotBadged(ctx, fresh)
	require.NoError(t, err)
	assert.Equal(t, DecisionNoop, decision)
}

func TestHostInstructorsIntroduction(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()
	ctx := context.Background()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	s := NewWithClock(client, func() time.Time { return now })

	selfOrg := createOrg(t, client, "Self-Organized", SelfOrganisedDomain)
	central := createOrg(t, client, "The Carpentries", "carpentries.org")

	ready := createEvent(t, client, "ready-workshop", eventParams{
		tags:    []string{"SWC"},
		start:   timePtr(now.AddDate(0, 1, 0)),
		adminID: intPtr(central.ID),
	})
	addTask(t, client, ready.ID, task.RoleHost)
	addTask(t, client, ready.ID, task.RoleInstructor)
	addTask(t, client, ready.ID, task.RoleInstructor)

	decision, err := s.HostInstructorsIntroduction(ctx, ready)
	require.NoError(t, err)
	assert.Equal(t, DecisionCreate, decision)

	// Self-organised workshops introduce themselves
	selfEvent := createEvent(t, client, "self-workshop", eventParams{
		tags:    []string{"SWC"},
		start:   timePtr(now.AddDate(0, 1, 0)),
		adminID: intPtr(selfOrg.ID),
	})
	addTask(t, client, selfEvent.ID, task.RoleHost)
	addTask(t, client, selfEvent.ID, task.RoleInstructor)
	addTask(t, client, selfEvent.ID, task.RoleInstructor)

	decision, err = s.HostInstructorsIntroduction(ctx, selfEvent)
	require.NoError(t, err)
	assert.Equal(t, DecisionNoop, decision)

	// An open recruitment means the roster is not settled yet
	recruiting := createEvent(t, client, "recruiting-workshop", eventParams{
		tags:    []string{"SWC"},
		start:   timePtr(now.AddDate(0, 1, 0)),
		adminID: intPtr(central.ID),
		openRec: true,
	})
	addTask(t, client, recruiting.ID, task.RoleHost)
	addTask(t, client, recruiting.ID, task.RoleInstructor)
	addTask(t, client, recruiting.ID, task.RoleInstructor)

	decision, err = s.HostInstructorsIntroduction(ctx, recruiting)
	require.NoError(t, err)
	assert.Equal(t, DecisionNoop, decision)

	// Less than a week of lead time is too late
	tooSoon := createEvent(t, client, "soon-workshop", eventParams{
		tags:    []string{"SWC"},
		start:   timePtr(now.AddDate(0, 0, 3)),
		adminID: intPtr(central.ID),
	})
	addTask(t, client, tooSoon.ID, task.RoleHost)
	addTask(t, client, tooSoon.ID, task.RoleInstructor)
	addTask(t, client, tooSoon.ID, task.RoleInstructor)

	decision, err = s.HostInstructorsIntroduction(ctx, tooSoon)
	require.NoError(t, err)
	assert.Equal(t, DecisionNoop, decision)
}

func TestRecruitHelpers(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()
	ctx := context.Background()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	s := NewWithClock(client, func() time.Time { return now })

	event := createEvent(t, client, "helperless-workshop", eventParams{
		tags:  []string{"DC"},
		start: timePtr(now.AddDate(0, 1, 0)),
	})
	addTask(t, client, event.ID, task.RoleHost)
	addTask(t, client, event.ID, task.RoleInstructor)

	decision, err := s.RecruitHelpers(ctx, event)
	require.NoError(t, err)
	assert.Equal(t, DecisionCreate, decision)

	// A pending email plus a recruited helper cancels the nudge
	createPendingEmail(t, client, signals.RecruitHelpers,
		relations.Ref{Kind: relations.KindEvent, ID: event.ID})
	addTask(t, client, event.ID, task.RoleHelper)

	decision, err = s.RecruitHelpers(ctx, event)
	require.NoError(t, err)
	assert.Equal(t, DecisionCancel, decision)
}

func TestPostWorkshop7Days(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()
	ctx := context.Background()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	s := NewWithClock(client, func() time.Time { return now })

	admin := createOrg(t, client, "The Carpentries", "carpentries.org")

	event := createEvent(t, client, "running-workshop", eventParams{
		tags:    []string{"LC"},
		start:   timePtr(now.AddDate(0, 0, 1)),
		end:     timePtr(now.AddDate(0, 0, 3)),
		adminID: intPtr(admin.ID),
	})
	addTask(t, client, event.ID, task.RoleHost)
	addTask(t, client, event.ID, task.RoleInstructor)

	decision, err := s.PostWorkshop7Days(ctx, event)
	require.NoError(t, err)
	assert.Equal(t, DecisionCreate, decision)

	// CLDT events have their own follow-up flow
	cldt := createEvent(t, client, "cldt-workshop", eventParams{
		tags:    []string{"LC", TagCLDT},
		end:     timePtr(now.AddDate(0, 0, 3)),
		adminID: intPtr(admin.ID),
	})
	addTask(t, client, cldt.ID, task.RoleHost)
	addTask(t, client, cldt.ID, task.RoleInstructor)

	decision, err = s.PostWorkshop7Days(ctx, cldt)
	require.NoError(t, err)
	assert.Equal(t, DecisionNoop, decision)

	// Already over: too late to schedule
	over := createEvent(t, client, "finished-workshop", eventParams{
		tags:    []string{"LC"},
		end:     timePtr(now.AddDate(0, 0, -3)),
		adminID: intPtr(admin.ID),
	})
	addTask(t, client, over.ID, task.RoleHost)
	addTask(t, client, over.ID, task.RoleInstructor)

	decision, err = s.PostWorkshop7Days(ctx, over)
	require.NoError(t, err)
	assert.Equal(t, DecisionNoop, decision)
}

func TestAskForWebsite(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()
	ctx := context.Background()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	s := NewWithClock(client, func() time.Time { return now })

	admin := createOrg(t, client, "The Carpentries", "carpentries.org")

	missing := createEvent(t, client, "siteless-workshop", eventParams{
		tags:    []string{"SWC"},
		start:   timePtr(now.AddDate(0, 1, 0)),
		adminID: intPtr(admin.ID),
	})
	addTask(t, client, missing.ID, task.RoleInstructor)

	decision, err := s.AskForWebsite(ctx, missing)
	require.NoError(t, err)
	assert.Equal(t, DecisionCreate, decision)

	// Linking the website with a pending email cancels the nudge
	createPendingEmail(t, client, signals.AskForWebsite,
		relations.Ref{Kind: relations.KindEvent, ID: missing.ID})
	linked, err := missing.Update().SetURL("https://example.org/workshop").Save(ctx)
	require.NoError(t, err)

	decision, err = s.AskForWebsite(ctx, linked)
	require.NoError(t, err)
	assert.Equal(t, DecisionCancel, decision)
}

func TestNewSelfOrganisedWorkshop(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()
	ctx := context.Background()

	s := New(client)

	selfOrg := createOrg(t, client, "Self-Organized", SelfOrganisedDomain)
	central := createOrg(t, client, "The Carpentries", "carpentries.org")

	selfEvent := createEvent(t, client, "self-workshop", eventParams{
		tags:    []string{"SWC"},
		adminID: intPtr(selfOrg.ID),
	})
	decision, err := s.NewSelfOrganisedWorkshop(ctx, selfEvent)
	require.NoError(t, err)
	assert.Equal(t, DecisionCreate, decision)

	centralEvent := createEvent(t, client, "central-workshop", eventParams{
		tags:    []string{"SWC"},
		adminID: intPtr(central.ID),
	})
	decision, err = s.NewSelfOrganisedWorkshop(ctx, centralEvent)
	require.NoError(t, err)
	assert.Equal(t, DecisionNoop, decision)
}

func TestNewMembershipOnboarding(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()
	ctx := context.Background()

	s := New(client)
	now := time.Now()

	fresh, err := client.Membership.Create().
		SetName("Fresh Membership").
		SetVariant("gold").
		SetAgreementStart(now).
		SetAgreementEnd(now.AddDate(1, 0, 0)).
		Save(ctx)
	require.NoError(t, err)

	// No contacts yet: nobody to onboard
	decision, err := s.NewMembershipOnboarding(ctx, fresh)
	require.NoError(t, err)
	assert.Equal(t, DecisionNoop, decision)

	contact := createPerson(t, client, "billing@example.org")
	_, err = client.MembershipTask.Create().
		SetRole(membershiptask.RoleBillingContact).
		SetMembershipID(fresh.ID).
		SetPersonID(contact.ID).
		Save(ctx)
	require.NoError(t, err)

	decision, err = s.NewMembershipOnboarding(ctx, fresh)
	require.NoError(t, err)
	assert.Equal(t, DecisionCreate, decision)

	// Rollovers skip onboarding
	rolled, err := client.Membership.Create().
		SetName("Rolled Membership").
		SetVariant("silver").
		SetAgreementStart(now).
		SetAgreementEnd(now.AddDate(1, 0, 0)).
		SetRolledFromID(fresh.ID).
		Save(ctx)
	require.NoError(t, err)
	_, err = client.MembershipTask.Create().
		SetRole(membershiptask.RoleProgrammaticContact).
		SetMembershipID(rolled.ID).
		SetPersonID(contact.ID).
		Save(ctx)
	require.NoError(t, err)

	decision, err = s.NewMembershipOnboarding(ctx, rolled)
	require.NoError(t, err)
	assert.Equal(t, DecisionNoop, decision)
}

func TestMembershipQuarterly(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()
	ctx := context.Background()

	s := New(client)
	now := time.Now()

	contact := createPerson(t, client, "contact@example.org")

	// A full-year membership fits all three checkpoints
	yearLong, err := client.Membership.Create().
		SetName("Year Membership").
		SetVariant("gold").
		SetAgreementStart(now).
		SetAgreementEnd(now.AddDate(1, 0, 0)).
		Save(ctx)
	require.NoError(t, err)
	_, err = client.MembershipTask.Create().
		SetRole(membershiptask.RoleBillingContact).
		SetMembershipID(yearLong.ID).
		SetPersonID(contact.ID).
		Save(ctx)
	require.NoError(t, err)

	for name, fn := range map[string]func(context.Context, *ent.Membership) (Decision, error){
		"3 months": s.MembershipQuarterly3Months,
		"6 months": s.MembershipQuarterly6Months,
		"9 months": s.MembershipQuarterly9Months,
	} {
		decision, err := fn(ctx, yearLong)
		require.NoError(t, err, name)
		assert.Equal(t, DecisionCreate, decision, name)
	}

	// A five-month agreement only reaches the first checkpoint
	short, err := client.Membership.Create().
		SetName("Short Membership").
		SetVariant("alacarte").
		SetAgreementStart(now).
		SetAgreementEnd(now.AddDate(0, 5, 0)).
		Save(ctx)
	require.NoError(t, err)
	_, err = client.MembershipTask.Create().
		SetRole(membershiptask.RoleProgrammaticContact).
		SetMembershipID(short.ID).
		SetPersonID(contact.ID).
		Save(ctx)
	require.NoError(t, err)

	decision, err := s.MembershipQuarterly3Months(ctx, short)
	require.NoError(t, err)
	assert.Equal(t, DecisionCreate, decision)

	decision, err = s.MembershipQuarterly6Months(ctx, short)
	require.NoError(t, err)
	assert.Equal(t, DecisionNoop, decision)

	decision, err = s.MembershipQuarterly9Months(ctx, short)
	require.NoError(t, err)
	assert.Equal(t, DecisionNoop, decision)
}
