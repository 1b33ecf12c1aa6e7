package emails

import (
	"context"
	"fmt"
	"time"

	"github.com/carpentries/mailflow/ent"
	"github.com/carpentries/mailflow/ent/emailtemplate"
	"github.com/carpentries/mailflow/ent/scheduledemail"
	"github.com/carpentries/mailflow/ent/scheduledemaillog"
	"github.com/carpentries/mailflow/pkg/relations"
	"github.com/google/uuid"
)

// FindForSignal returns the scheduled emails created for a signal and domain
// object, optionally filtered to a set of states. Strategies use this to
// decide between creating, updating and cancelling.
func (c *Controller) FindForSignal(ctx context.Context, signal string, ref relations.Ref, states ...scheduledemail.State) ([]*ent.ScheduledEmail, error) {
	query := c.client.ScheduledEmail.Query().
		Where(
			scheduledemail.HasTemplateWith(emailtemplate.Signal(signal)),
			scheduledemail.RelatedToEQ(scheduledemail.RelatedTo(ref.Kind)),
			scheduledemail.RelatedID(ref.ID),
		)
	if len(states) > 0 {
		query = query.Where(scheduledemail.StateIn(states...))
	}

	found, err := query.Order(ent.Asc(scheduledemail.FieldCreatedAt)).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query scheduled emails for signal %s: %w", signal, err)
	}
	return found, nil
}

// DueEmails returns emails whose run time has passed and that are still
// sendable, oldest first. Failed emails are included so the worker retries
// them until the escalation check cancels the loop.
func (c *Controller) DueEmails(ctx context.Context, now time.Time, limit int) ([]*ent.ScheduledEmail, error) {
	query := c.client.ScheduledEmail.Query().
		Where(
			scheduledemail.StateIn(scheduledemail.StateScheduled, scheduledemail.StateFailed),
			scheduledemail.ScheduledAtLTE(now),
		).
		Order(ent.Asc(scheduledemail.FieldScheduledAt))
	if limit > 0 {
		query = query.Limit(limit)
	}

	due, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query due emails: %w", err)
	}
	return due, nil
}

// GetEmail loads one scheduled email by ID.
func (c *Controller) GetEmail(ctx context.Context, id uuid.UUID) (*ent.ScheduledEmail, error) {
	email, err := c.client.ScheduledEmail.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get scheduled email: %w", err)
	}
	return email, nil
}

// EmailLogs returns the audit history of one email, newest first.
func (c *Controller) EmailLogs(ctx context.Context, id uuid.UUID) ([]*ent.ScheduledEmailLog, error) {
	logs, err := c.client.ScheduledEmailLog.Query().
		Where(scheduledemaillog.ScheduledEmailID(id)).
		Order(ent.Desc(scheduledemaillog.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query email logs: %w", err)
	}
	return logs, nil
}

// DuplicateGroup is a set of pending emails that share a template and a
// target object. More than one member means something double-scheduled.
type DuplicateGroup struct {
	TemplateID uuid.UUID             `json:"template_id"`
	Related    relations.Ref         `json:"related"`
	Emails     []*ent.ScheduledEmail `json:"emails"`
}

// FindDuplicates lists groups of pending emails with more than one member.
// Operators use this to clean up after double-scheduling bugs.
func (c *Controller) FindDuplicates(ctx context.Context) ([]DuplicateGroup, error) {
	pending, err := c.client.ScheduledEmail.Query().
		Where(scheduledemail.StateEQ(scheduledemail.StateScheduled)).
		Order(ent.Asc(scheduledemail.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query pending emails: %w", err)
	}

	type key struct {
		templateID uuid.UUID
		relatedTo  scheduledemail.RelatedTo
		relatedID  int
	}
	groups := make(map[key][]*ent.ScheduledEmail)
	order := make([]key, 0)
	for _, email := range pending {
		if email.TemplateID == nil {
			continue
		}
		k := key{*email.TemplateID, email.RelatedTo, email.RelatedID}
		if _, seen := groups[k]; !seen {
			order = append(order, k)
		}
		groups[k] = append(groups[k], email)
	}

	duplicates := make([]DuplicateGroup, 0)
	for _, k := range order {
		members := groups[k]
		if len(members) < 2 {
			continue
		}
		duplicates = append(duplicates, DuplicateGroup{
			TemplateID: k.templateID,
			Related:    relations.Ref{Kind: relations.Kind(k.relatedTo), ID: k.relatedID},
			Emails:     members,
		})
	}
	return duplicates, nil
}

// Client exposes the underlying ent client for read-only use by strategies
// and handlers. All writes go through Controller methods.
func (c *Controller) Client() *ent.Client {
	return c.client
}
