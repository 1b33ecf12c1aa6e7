package actions

import (
	"context"
	"fmt"
	"time"

	"github.com/carpentries/mailflow/ent"
	"github.com/carpentries/mailflow/pkg/emails"
	"github.com/carpentries/mailflow/pkg/emails/signals"
	"github.com/carpentries/mailflow/pkg/relations"
)

func membershipParams(ctx context.Context, client *ent.Client, signal string, ref relations.Ref, scheduledAt func(*ent.Membership) time.Time) (emails.ScheduleParams, error) {
	m, err := client.Membership.Get(ctx, ref.ID)
	if err != nil {
		return emails.ScheduleParams{}, fmt.Errorf("failed to load membership: %w", err)
	}

	contacts, err := membershipContacts(ctx, client, m.ID)
	if err != nil {
		return emails.ScheduleParams{}, err
	}

	to, refs := recipients(contacts)
	return emails.ScheduleParams{
		Signal: signal,
		ContextJSON: map[string]any{
			"membership": relations.ModelURI(string(relations.KindMembership), m.ID),
			"contacts":   personURIs(contacts),
		},
		ScheduledAt:         scheduledAt(m),
		ToHeader:            to,
		ToHeaderContextJSON: refs,
		Related:             ref,
	}, nil
}

// MembershipOnboardingHandler welcomes a new membership's contacts.
type MembershipOnboardingHandler struct{}

func (MembershipOnboardingHandler) Signal() string         { return signals.NewMembershipOnboarding }
func (MembershipOnboardingHandler) Target() relations.Kind { return relations.KindMembership }

func (MembershipOnboardingHandler) Params(ctx context.Context, client *ent.Client, ref relations.Ref, now time.Time) (emails.ScheduleParams, error) {
	return membershipParams(ctx, client, signals.NewMembershipOnboarding, ref,
		func(*ent.Membership) time.Time { return now.Add(OneHour) })
}

// MembershipQuarterlyHandler checks in with membership contacts a fixed
// number of months into the agreement.
type MembershipQuarterlyHandler struct {
	signal string
	months int
}

// NewMembershipQuarterlyHandler builds the quarterly handler for one
// checkpoint: 3, 6 or 9 months.
func NewMembershipQuarterlyHandler(signal string, months int) MembershipQuarterlyHandler {
	return MembershipQuarterlyHandler{signal: signal, months: months}
}

func (h MembershipQuarterlyHandler) Signal() string       { return h.signal }
func (MembershipQuarterlyHandler) Target() relations.Kind { return relations.KindMembership }

func (h MembershipQuarterlyHandler) Params(ctx context.Context, client *ent.Client, ref relations.Ref, now time.Time) (emails.ScheduleParams, error) {
	return membershipParams(ctx, client, h.signal, ref,
		func(m *ent.Membership) time.Time { return m.AgreementStart.AddDate(0, h.months, 0) })
}
