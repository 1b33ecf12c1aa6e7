package actions

import "github.com/carpentries/mailflow/pkg/emails/signals"

// Registry maps signal names to their handlers. Dispatch is a static table
// built at startup; adding a signal means adding a handler here and a
// template in the database.
type Registry map[string]Handler

// DefaultRegistry returns the full dispatch table.
func DefaultRegistry() Registry {
	return Registry{
		signals.InstructorBadgeAwarded:               BadgeAwardedHandler{},
		signals.InstructorTaskCreatedForWorkshop:     TaskCreatedHandler{},
		signals.InstructorTrainingApproaching:        TrainingApproachingHandler{},
		signals.InstructorTrainingCompletedNotBadged: TrainingCompletedHandler{},
		signals.NewMembershipOnboarding:              MembershipOnboardingHandler{},
		signals.HostInstructorsIntroduction:          HostInstructorsIntroductionHandler{},
		signals.RecruitHelpers:                       RecruitHelpersHandler{},
		signals.PostWorkshop7Days:                    PostWorkshopHandler{},
		signals.AskForWebsite:                        AskForWebsiteHandler{},
		signals.NewSelfOrganisedWorkshop:             SelfOrganisedHandler{},
		signals.MembershipQuarterly3Months:           NewMembershipQuarterlyHandler(signals.MembershipQuarterly3Months, 3),
		signals.MembershipQuarterly6Months:           NewMembershipQuarterlyHandler(signals.MembershipQuarterly6Months, 6),
		signals.MembershipQuarterly9Months:           NewMembershipQuarterlyHandler(signals.MembershipQuarterly9Months, 9),
	}
}
