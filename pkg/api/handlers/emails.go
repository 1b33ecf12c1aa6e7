package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/carpentries/mailflow/ent"
	"github.com/carpentries/mailflow/ent/scheduledemail"
	"github.com/carpentries/mailflow/pkg/emails"
	"github.com/carpentries/mailflow/pkg/metrics"
	"github.com/carpentries/mailflow/pkg/models"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ScheduledEmailHandler handles scheduled email requests
type ScheduledEmailHandler struct {
	ctrl *emails.Controller
	m    *metrics.Metrics
}

// NewScheduledEmailHandler creates a new scheduled email handler
func NewScheduledEmailHandler(ctrl *emails.Controller, m *metrics.Metrics) *ScheduledEmailHandler {
	return &ScheduledEmailHandler{ctrl: ctrl, m: m}
}

// StateChangeRequest carries the optional audit fields of a state change
type StateChangeRequest struct {
	Details  string `json:"details" validate:"max=255"`
	AuthorID *int   `json:"author_id,omitempty"`
}

// RescheduleRequest carries the new run time
type RescheduleRequest struct {
	ScheduledAt time.Time `json:"scheduled_at" validate:"required"`
	AuthorID    *int      `json:"author_id,omitempty"`
}

// ScheduledEmailResponse represents a scheduled email in API responses
type ScheduledEmailResponse struct {
	ID                  string               `json:"id"`
	State               string               `json:"state"`
	ScheduledAt         time.Time            `json:"scheduled_at"`
	ToHeader            []string             `json:"to_header"`
	FromHeader          string               `json:"from_header"`
	ReplyToHeader       string               `json:"reply_to_header,omitempty"`
	CcHeader            []string             `json:"cc_header,omitempty"`
	BccHeader           []string             `json:"bcc_header,omitempty"`
	Subject             string               `json:"subject"`
	Body                string               `json:"body"`
	ContextJSON         map[string]any       `json:"context_json"`
	ToHeaderContextJSON []models.ToHeaderRef `json:"to_header_context_json"`
	TemplateID          *string              `json:"template_id,omitempty"`
	RelatedTo           string               `json:"related_to,omitempty"`
	RelatedID           int                  `json:"related_id,omitempty"`
	CreatedAt           time.Time            `json:"created_at"`
	UpdatedAt           time.Time            `json:"updated_at"`
}

// LogResponse represents one audit log entry
type LogResponse struct {
	ID          string    `json:"id"`
	Details     string    `json:"details"`
	StateBefore string    `json:"state_before,omitempty"`
	StateAfter  string    `json:"state_after"`
	AuthorID    *int      `json:"author_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func toEmailResponse(e *ent.ScheduledEmail) ScheduledEmailResponse {
	resp := ScheduledEmailResponse{
		ID:                  e.ID.String(),
		State:               string(e.State),
		ScheduledAt:         e.ScheduledAt,
		ToHeader:            e.ToHeader,
		FromHeader:          e.FromHeader,
		ReplyToHeader:       e.ReplyToHeader,
		CcHeader:            e.CcHeader,
		BccHeader:           e.BccHeader,
		Subject:             e.Subject,
		Body:                e.Body,
		ContextJSON:         e.ContextJSON,
		ToHeaderContextJSON: e.ToHeaderContextJSON,
		RelatedTo:           string(e.RelatedTo),
		RelatedID:           e.RelatedID,
		CreatedAt:           e.CreatedAt,
		UpdatedAt:           e.UpdatedAt,
	}
	if e.TemplateID != nil {
		id := e.TemplateID.String()
		resp.TemplateID = &id
	}
	return resp
}

func toLogResponse(l *ent.ScheduledEmailLog) LogResponse {
	return LogResponse{
		ID:          l.ID.String(),
		Details:     l.Details,
		StateBefore: string(l.StateBefore),
		StateAfter:  string(l.StateAfter),
		AuthorID:    l.AuthorID,
		CreatedAt:   l.CreatedAt,
	}
}

func (h *ScheduledEmailHandler) emailFromParam(c echo.Context) (*ent.ScheduledEmail, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, map[string]string{
			"error": "invalid email id",
		})
	}

	email, err := h.ctrl.GetEmail(c.Request().Context(), id)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusNotFound, map[string]string{
			"error": "scheduled email not found",
		})
	}
	return email, nil
}

// List godoc
// @Summary List scheduled emails
// @Tags ScheduledEmails
// @Produce json
// @Param state query string false "Filter by state (scheduled, locked, running, succeeded, failed, cancelled)"
// @Success 200 {object} map[string]interface{} "Scheduled emails with total count"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /scheduled-emails [get]
func (h *ScheduledEmailHandler) List(c echo.Context) error {
	ctx := c.Request().Context()

	query := h.ctrl.Client().ScheduledEmail.Query()
	if state := c.QueryParam("state"); state != "" {
		s := scheduledemail.State(state)
		if err := scheduledemail.StateValidator(s); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, map[string]string{
				"error":   "invalid state filter",
				"message": err.Error(),
			})
		}
		query = query.Where(scheduledemail.StateEQ(s))
	}

	found, err := query.Order(ent.Desc(scheduledemail.FieldScheduledAt)).All(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, map[string]string{
			"error":   "failed to list scheduled emails",
			"message": err.Error(),
		})
	}

	responses := make([]ScheduledEmailResponse, 0, len(found))
	for _, e := range found {
		responses = append(responses, toEmailResponse(e))
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"scheduled_emails": responses,
		"total":            len(responses),
	})
}

// Get godoc
// @Summary Get a scheduled email
// @Tags ScheduledEmails
// @Produce json
// @Param id path string true "Scheduled email ID"
// @Success 200 {object} ScheduledEmailResponse "Scheduled email"
// @Failure 404 {object} map[string]string "Not found"
// @Router /scheduled-emails/{id} [get]
func (h *ScheduledEmailHandler) Get(c echo.Context) error {
	email, err := h.emailFromParam(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toEmailResponse(email))
}

// Logs godoc
// @Summary Get the audit history of a scheduled email
// @Tags ScheduledEmails
// @Produce json
// @Param id path string true "Scheduled email ID"
// @Success 200 {object} map[string]interface{} "Log entries, newest first"
// @Failure 404 {object} map[string]string "Not found"
// @Router /scheduled-emails/{id}/logs [get]
func (h *ScheduledEmailHandler) Logs(c echo.Context) error {
	email, err := h.emailFromParam(c)
	if err != nil {
		return err
	}

	logs, err := h.ctrl.EmailLogs(c.Request().Context(), email.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, map[string]string{
			"error":   "failed to fetch logs",
			"message": err.Error(),
		})
	}

	responses := make([]LogResponse, 0, len(logs))
	for _, l := range logs {
		responses = append(responses, toLogResponse(l))
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"logs":  responses,
		"total": len(responses),
	})
}

// Due godoc
// @Summary List due emails
// @Description Returns sendable emails (scheduled or failed) whose run time has passed, oldest first
// @Tags ScheduledEmails
// @Produce json
// @Param limit query int false "Maximum number of emails"
// @Success 200 {object} map[string]interface{} "Due emails"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /scheduled-emails/due [get]
func (h *ScheduledEmailHandler) Due(c echo.Context) error {
	ctx := c.Request().Context()

	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			return echo.NewHTTPError(http.StatusBadRequest, map[string]string{
				"error": "invalid limit",
			})
		}
		limit = parsed
	}

	due, err := h.ctrl.DueEmails(ctx, time.Now(), limit)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, map[string]string{
			"error":   "failed to list due emails",
			"message": err.Error(),
		})
	}

	responses := make([]ScheduledEmailResponse, 0, len(due))
	for _, e := range due {
		responses = append(responses, toEmailResponse(e))
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"scheduled_emails": responses,
		"total":            len(responses),
	})
}

func (h *ScheduledEmailHandler) changeState(c echo.Context, change func(*ent.ScheduledEmail, StateChangeRequest) (*ent.ScheduledEmail, error)) error {
	email, err := h.emailFromParam(c)
	if err != nil {
		return err
	}

	var req StateChangeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]string{
			"error":   "invalid request",
			"message": err.Error(),
		})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	updated, err := change(email, req)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, map[string]string{
			"error":   "failed to change email state",
			"message": err.Error(),
		})
	}

	return c.JSON(http.StatusOK, toEmailResponse(updated))
}

// Lock godoc
// @Summary Lock a scheduled email for sending
// @Tags ScheduledEmails
// @Accept json
// @Produce json
// @Param id path string true "Scheduled email ID"
// @Param request body StateChangeRequest false "Audit details"
// @Success 200 {object} ScheduledEmailResponse "Updated email"
// @Failure 404 {object} map[string]string "Not found"
// @Router /scheduled-emails/{id}/lock [post]
func (h *ScheduledEmailHandler) Lock(c echo.Context) error {
	return h.changeState(c, func(email *ent.ScheduledEmail, req StateChangeRequest) (*ent.ScheduledEmail, error) {
		return h.ctrl.LockEmail(c.Request().Context(), email, req.Details, req.AuthorID)
	})
}

// Succeed godoc
// @Summary Mark a scheduled email as sent
// @Tags ScheduledEmails
// @Accept json
// @Produce json
// @Param id path string true "Scheduled email ID"
// @Param request body StateChangeRequest false "Audit details"
// @Success 200 {object} ScheduledEmailResponse "Updated email"
// @Failure 404 {object} map[string]string "Not found"
// @Router /scheduled-emails/{id}/succeed [post]
func (h *ScheduledEmailHandler) Succeed(c echo.Context) error {
	return h.changeState(c, func(email *ent.ScheduledEmail, req StateChangeRequest) (*ent.ScheduledEmail, error) {
		updated, err := h.ctrl.SucceedEmail(c.Request().Context(), email, req.Details, req.AuthorID)
		if err == nil && h.m != nil {
			h.m.RecordSent(0)
		}
		return updated, err
	})
}

// Fail godoc
// @Summary Mark a scheduled email as failed
// @Description Records the failure; repeated failures auto-cancel the email
// @Tags ScheduledEmails
// @Accept json
// @Produce json
// @Param id path string true "Scheduled email ID"
// @Param request body StateChangeRequest false "Audit details"
// @Success 200 {object} ScheduledEmailResponse "Updated email"
// @Failure 404 {object} map[string]string "Not found"
// @Router /scheduled-emails/{id}/fail [post]
func (h *ScheduledEmailHandler) Fail(c echo.Context) error {
	return h.changeState(c, func(email *ent.ScheduledEmail, req StateChangeRequest) (*ent.ScheduledEmail, error) {
		updated, err := h.ctrl.FailEmail(c.Request().Context(), email, req.Details, req.AuthorID)
		if err == nil && h.m != nil {
			h.m.RecordFailed()
			if updated.State == scheduledemail.StateCancelled {
				h.m.RecordEscalated()
			}
		}
		return updated, err
	})
}

// Cancel godoc
// @Summary Cancel a scheduled email
// @Tags ScheduledEmails
// @Accept json
// @Produce json
// @Param id path string true "Scheduled email ID"
// @Param request body StateChangeRequest false "Audit details"
// @Success 200 {object} ScheduledEmailResponse "Updated email"
// @Failure 404 {object} map[string]string "Not found"
// @Router /scheduled-emails/{id}/cancel [post]
func (h *ScheduledEmailHandler) Cancel(c echo.Context) error {
	return h.changeState(c, func(email *ent.ScheduledEmail, req StateChangeRequest) (*ent.ScheduledEmail, error) {
		return h.ctrl.CancelEmail(c.Request().Context(), email, req.AuthorID)
	})
}

// Reschedule godoc
// @Summary Reschedule a scheduled email
// @Description Changes the run time. A cancelled email is brought back to scheduled.
// @Tags ScheduledEmails
// @Accept json
// @Produce json
// @Param id path string true "Scheduled email ID"
// @Param request body RescheduleRequest true "New run time"
// @Success 200 {object} ScheduledEmailResponse "Updated email"
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 404 {object} map[string]string "Not found"
// @Router /scheduled-emails/{id}/reschedule [post]
func (h *ScheduledEmailHandler) Reschedule(c echo.Context) error {
	email, err := h.emailFromParam(c)
	if err != nil {
		return err
	}

	var req RescheduleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]string{
			"error":   "invalid request",
			"message": err.Error(),
		})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	updated, err := h.ctrl.RescheduleEmail(c.Request().Context(), email, req.ScheduledAt, req.AuthorID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, map[string]string{
			"error":   "failed to reschedule email",
			"message": err.Error(),
		})
	}

	return c.JSON(http.StatusOK, toEmailResponse(updated))
}

// Duplicates godoc
// @Summary List duplicate pending emails
// @Description Lists groups of pending emails sharing a template and target so operators can clean up after double-scheduling
// @Tags ScheduledEmails
// @Produce json
// @Success 200 {object} map[string]interface{} "Duplicate groups"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /scheduled-emails/duplicates [get]
func (h *ScheduledEmailHandler) Duplicates(c echo.Context) error {
	groups, err := h.ctrl.FindDuplicates(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, map[string]string{
			"error":   "failed to list duplicates",
			"message": err.Error(),
		})
	}

	type group struct {
		TemplateID string                   `json:"template_id"`
		RelatedTo  string                   `json:"related_to"`
		RelatedID  int                      `json:"related_id"`
		Emails     []ScheduledEmailResponse `json:"emails"`
	}
	responses := make([]group, 0, len(groups))
	for _, g := range groups {
		members := make([]ScheduledEmailResponse, 0, len(g.Emails))
		for _, e := range g.Emails {
			members = append(members, toEmailResponse(e))
		}
		responses = append(responses, group{
			TemplateID: g.TemplateID.String(),
			RelatedTo:  string(g.Related.Kind),
			RelatedID:  g.Related.ID,
			Emails:     members,
		})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"duplicates": responses,
		"total":      len(responses),
	})
}
