// Package templates manages the email template store.
package templates

import (
	"context"
	"fmt"

	"github.com/carpentries/mailflow/ent"
	"github.com/carpentries/mailflow/ent/emailtemplate"
	"github.com/carpentries/mailflow/pkg/emails/signals"
	"github.com/carpentries/mailflow/pkg/logger"
	"github.com/carpentries/mailflow/pkg/templateengine"
	"github.com/google/uuid"
)

// Service provides template CRUD with per-field syntax validation. Saving a
// template with broken syntax would poison every future scheduling for its
// signal, so both subject and body are validated on every write.
type Service struct {
	client *ent.Client
	engine templateengine.Engine
	log    logger.Logger
}

// NewService creates a template service.
func NewService(client *ent.Client, engine templateengine.Engine, log logger.Logger) *Service {
	if log == nil {
		log = logger.Default()
	}
	return &Service{client: client, engine: engine, log: log}
}

// CreateParams holds the fields of a new template.
type CreateParams struct {
	Name          string
	Signal        string
	Active        bool
	FromHeader    string
	ReplyToHeader string
	CcHeader      []string
	BccHeader     []string
	Subject       string
	Body          string
}

// UpdateParams holds partial template updates; nil fields are left as-is.
type UpdateParams struct {
	Name          *string
	Active        *bool
	FromHeader    *string
	ReplyToHeader *string
	CcHeader      []string
	BccHeader     []string
	Subject       *string
	Body          *string
}

func (s *Service) validate(signal string, subject, body *string) error {
	if signal != "" && !signals.Known(signal) {
		return fmt.Errorf("unknown signal %q", signal)
	}
	if subject != nil {
		if err := s.engine.Validate(*subject); err != nil {
			return fmt.Errorf("invalid subject template: %w", err)
		}
	}
	if body != nil {
		if err := s.engine.Validate(*body); err != nil {
			return fmt.Errorf("invalid body template: %w", err)
		}
	}
	return nil
}

// Create stores a new template after validating its signal and syntax.
func (s *Service) Create(ctx context.Context, p CreateParams) (*ent.EmailTemplate, error) {
	if err := s.validate(p.Signal, &p.Subject, &p.Body); err != nil {
		return nil, err
	}

	tmpl, err := s.client.EmailTemplate.Create().
		SetName(p.Name).
		SetSignal(p.Signal).
		SetActive(p.Active).
		SetFromHeader(p.FromHeader).
		SetReplyToHeader(p.ReplyToHeader).
		SetCcHeader(p.CcHeader).
		SetBccHeader(p.BccHeader).
		SetSubject(p.Subject).
		SetBody(p.Body).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create template: %w", err)
	}

	s.log.Info("template created", "template_id", tmpl.ID, "signal", tmpl.Signal)
	return tmpl, nil
}

// Get loads one template by ID.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*ent.EmailTemplate, error) {
	tmpl, err := s.client.EmailTemplate.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get template: %w", err)
	}
	return tmpl, nil
}

// List returns templates, optionally only active ones, ordered by name.
func (s *Service) List(ctx context.Context, activeOnly bool) ([]*ent.EmailTemplate, error) {
	query := s.client.EmailTemplate.Query()
	if activeOnly {
		query = query.Where(emailtemplate.Active(true))
	}

	found, err := query.Order(ent.Asc(emailtemplate.FieldName)).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list templates: %w", err)
	}
	return found, nil
}

// Update applies a partial update after validating any new syntax. The
// signal binding is immutable; rebinding a template to another signal would
// silently reroute pending emails.
func (s *Service) Update(ctx context.Context, id uuid.UUID, p UpdateParams) (*ent.EmailTemplate, error) {
	if err := s.validate("", p.Subject, p.Body); err != nil {
		return nil, err
	}

	update := s.client.EmailTemplate.UpdateOneID(id)
	if p.Name != nil {
		update = update.SetName(*p.Name)
	}
	if p.Active != nil {
		update = update.SetActive(*p.Active)
	}
	if p.FromHeader != nil {
		update = update.SetFromHeader(*p.FromHeader)
	}
	if p.ReplyToHeader != nil {
		update = update.SetReplyToHeader(*p.ReplyToHeader)
	}
	if p.CcHeader != nil {
		update = update.SetCcHeader(p.CcHeader)
	}
	if p.BccHeader != nil {
		update = update.SetBccHeader(p.BccHeader)
	}
	if p.Subject != nil {
		update = update.SetSubject(*p.Subject)
	}
	if p.Body != nil {
		update = update.SetBody(*p.Body)
	}

	tmpl, err := update.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update template: %w", err)
	}

	s.log.Info("template updated", "template_id", tmpl.ID)
	return tmpl, nil
}

// Delete removes a template. Scheduled emails keep their rendered content;
// their template link is nulled out by the schema's on-delete rule.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.client.EmailTemplate.DeleteOneID(id).Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return err
		}
		return fmt.Errorf("failed to delete template: %w", err)
	}

	s.log.Info("template deleted", "template_id", id)
	return nil
}
