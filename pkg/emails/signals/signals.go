// Package signals names every automated-email trigger in the system. A
// signal ties together a template, a strategy and an action handler; dispatch
// is a static table, resolved at startup.
package signals

// Signal names. Each active EmailTemplate is bound to exactly one of these.
const (
	InstructorBadgeAwarded                = "instructor_badge_awarded"
	InstructorTaskCreatedForWorkshop      = "instructor_task_created_for_workshop"
	InstructorTrainingApproaching         = "instructor_training_approaching"
	InstructorTrainingCompletedNotBadged  = "instructor_training_completed_not_badged"
	NewMembershipOnboarding               = "new_membership_onboarding"
	HostInstructorsIntroduction           = "host_instructors_introduction"
	RecruitHelpers                        = "recruit_helpers"
	PostWorkshop7Days                     = "post_workshop_7days"
	AskForWebsite                         = "ask_for_website"
	NewSelfOrganisedWorkshop              = "new_self_organised_workshop"
	MembershipQuarterly3Months            = "membership_quarterly_3_months"
	MembershipQuarterly6Months            = "membership_quarterly_6_months"
	MembershipQuarterly9Months            = "membership_quarterly_9_months"
)

// All returns every known signal name. Template validation and seeding
// iterate over this list.
func All() []string {
	return []string{
		InstructorBadgeAwarded,
		InstructorTaskCreatedForWorkshop,
		InstructorTrainingApproaching,
		InstructorTrainingCompletedNotBadged,
		NewMembershipOnboarding,
		HostInstructorsIntroduction,
		RecruitHelpers,
		PostWorkshop7Days,
		AskForWebsite,
		NewSelfOrganisedWorkshop,
		MembershipQuarterly3Months,
		MembershipQuarterly6Months,
		MembershipQuarterly9Months,
	}
}

// Known reports whether name is a recognized signal.
func Known(name string) bool {
	for _, s := range All() {
		if s == name {
			return true
		}
	}
	return false
}
