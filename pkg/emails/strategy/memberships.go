package strategy

import (
	"context"
	"fmt"

	"github.com/carpentries/mailflow/ent"
	"github.com/carpentries/mailflow/ent/membershiptask"
	"github.com/carpentries/mailflow/pkg/emails/signals"
	"github.com/carpentries/mailflow/pkg/relations"
)

// NewMembershipOnboarding welcomes a brand-new membership. Rolled-over
// memberships are excluded: their contacts already went through onboarding.
func (s *Strategies) NewMembershipOnboarding(ctx context.Context, m *ent.Membership) (Decision, error) {
	ref := relations.Ref{Kind: relations.KindMembership, ID: m.ID}
	exists, err := s.emailExists(ctx, signals.NewMembershipOnboarding, ref)
	if err != nil {
		return DecisionNoop, err
	}

	contacts, err := s.countContacts(ctx, m.ID)
	if err != nil {
		return DecisionNoop, err
	}

	should := m.RolledFromID == nil && contacts >= 1
	return decide(exists, should), nil
}

// MembershipQuarterly3Months checks in with membership contacts three months
// into the agreement.
func (s *Strategies) MembershipQuarterly3Months(ctx context.Context, m *ent.Membership) (Decision, error) {
	return s.membershipQuarterly(ctx, m, signals.MembershipQuarterly3Months, 3)
}

// MembershipQuarterly6Months checks in with membership contacts six months
// into the agreement.
func (s *Strategies) MembershipQuarterly6Months(ctx context.Context, m *ent.Membership) (Decision, error) {
	return s.membershipQuarterly(ctx, m, signals.MembershipQuarterly6Months, 6)
}

// MembershipQuarterly9Months checks in with membership contacts nine months
// into the agreement.
func (s *Strategies) MembershipQuarterly9Months(ctx context.Context, m *ent.Membership) (Decision, error) {
	return s.membershipQuarterly(ctx, m, signals.MembershipQuarterly9Months, 9)
}

// membershipQuarterly schedules a quarterly check-in when the checkpoint
// still falls inside the agreement period and someone is there to receive it.
func (s *Strategies) membershipQuarterly(ctx context.Context, m *ent.Membership, signal string, months int) (Decision, error) {
	ref := relations.Ref{Kind: relations.KindMembership, ID: m.ID}
	exists, err := s.emailExists(ctx, signal, ref)
	if err != nil {
		return DecisionNoop, err
	}

	contacts, err := s.countContacts(ctx, m.ID)
	if err != nil {
		return DecisionNoop, err
	}

	checkpoint := m.AgreementStart.AddDate(0, months, 0)
	should := !checkpoint.After(m.AgreementEnd) && contacts >= 1
	return decide(exists, should), nil
}

// countContacts returns how many billing or programmatic contacts the
// membership has. Persons of interest are not emailed.
func (s *Strategies) countContacts(ctx context.Context, membershipID int) (int, error) {
	n, err := s.client.MembershipTask.Query().
		Where(
			membershiptask.MembershipID(membershipID),
			membershiptask.RoleIn(
				membershiptask.RoleBillingContact,
				membershiptask.RoleProgrammaticContact,
			),
		).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count membership contacts: %w", err)
	}
	return n, nil
}
