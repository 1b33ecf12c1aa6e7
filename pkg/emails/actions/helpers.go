package actions

import (
	"context"
	"fmt"
	"time"

	"github.com/carpentries/mailflow/ent"
	"github.com/carpentries/mailflow/ent/membershiptask"
	"github.com/carpentries/mailflow/ent/person"
	"github.com/carpentries/mailflow/ent/task"
	"github.com/carpentries/mailflow/pkg/models"
	"github.com/carpentries/mailflow/pkg/relations"
)

// eventPersons returns the distinct people holding any of the given roles on
// the event, ordered by id for stable output.
func eventPersons(ctx context.Context, client *ent.Client, eventID int, roles ...task.Role) ([]*ent.Person, error) {
	people, err := client.Person.Query().
		Where(person.HasTasksWith(
			task.EventID(eventID),
			task.RoleIn(roles...),
		)).
		Order(ent.Asc(person.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query event people: %w", err)
	}
	return people, nil
}

// membershipContacts returns the billing and programmatic contacts of a
// membership.
func membershipContacts(ctx context.Context, client *ent.Client, membershipID int) ([]*ent.Person, error) {
	people, err := client.Person.Query().
		Where(person.HasMembershipTasksWith(
			membershiptask.MembershipID(membershipID),
			membershiptask.RoleIn(
				membershiptask.RoleBillingContact,
				membershiptask.RoleProgrammaticContact,
			),
		)).
		Order(ent.Asc(person.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query membership contacts: %w", err)
	}
	return people, nil
}

// recipients derives the to header and its re-derivable references from a
// set of people. People without an email address stay in the references but
// not in the header.
func recipients(people []*ent.Person) (to []string, refs []models.ToHeaderRef) {
	for _, p := range people {
		refs = append(refs, models.ToHeaderRef{
			APIURI:   relations.ModelURI(string(relations.KindPerson), p.ID),
			Property: "email",
		})
		if p.Email != "" {
			to = append(to, p.Email)
		}
	}
	return to, refs
}

// personURIs returns context URIs for a set of people.
func personURIs(people []*ent.Person) []any {
	uris := make([]any, 0, len(people))
	for _, p := range people {
		uris = append(uris, relations.ModelURI(string(relations.KindPerson), p.ID))
	}
	return uris
}

// offsetOr returns base plus offset when base is known, and the immediate
// fallback otherwise.
func offsetOr(base *time.Time, offset time.Duration, now time.Time) time.Time {
	if base == nil {
		return now.Add(OneHour)
	}
	return base.Add(offset)
}
