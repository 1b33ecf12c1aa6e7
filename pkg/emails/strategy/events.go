package strategy

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/carpentries/mailflow/ent"
	"github.com/carpentries/mailflow/ent/organization"
	"github.com/carpentries/mailflow/ent/task"
)

// Tags with scheduling significance.
const (
	TagTTT          = "TTT"
	TagCLDT         = "CLDT"
	TagCancelled    = "cancelled"
	TagStalled      = "stalled"
	TagUnresponsive = "unresponsive"
)

// SelfOrganisedDomain is the administrator domain marking a self-organised
// workshop.
const SelfOrganisedDomain = "self-organized"

var carpentriesTags = []string{"SWC", "DC", "LC"}

func hasTag(event *ent.Event, tag string) bool {
	return slices.Contains(event.Tags, tag)
}

// eventActive reports whether the event is still live: not cancelled, not
// stalled, not unresponsive.
func eventActive(event *ent.Event) bool {
	return !hasTag(event, TagCancelled) &&
		!hasTag(event, TagStalled) &&
		!hasTag(event, TagUnresponsive)
}

func hasCarpentriesTag(event *ent.Event) bool {
	for _, t := range carpentriesTags {
		if hasTag(event, t) {
			return true
		}
	}
	return false
}

func startsAfter(event *ent.Event, t time.Time) bool {
	return event.StartDate != nil && event.StartDate.After(t)
}

func endsAfter(event *ent.Event, t time.Time) bool {
	return event.EndDate != nil && event.EndDate.After(t)
}

// selfOrganised reports whether the event is administered by the
// self-organised pseudo-organization.
func (s *Strategies) selfOrganised(ctx context.Context, event *ent.Event) (bool, error) {
	if event.AdministratorID == nil {
		return false, nil
	}
	self, err := s.client.Organization.Query().
		Where(
			organization.ID(*event.AdministratorID),
			organization.Domain(SelfOrganisedDomain),
		).
		Exist(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to check event administrator: %w", err)
	}
	return self, nil
}

// countRole returns how many tasks of the given role the event has.
func (s *Strategies) countRole(ctx context.Context, eventID int, role task.Role) (int, error) {
	n, err := s.client.Task.Query().
		Where(task.EventID(eventID), task.RoleEQ(role)).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count %s tasks: %w", role, err)
	}
	return n, nil
}
