package handlers

import (
	"net/http"

	"github.com/carpentries/mailflow/ent"
	"github.com/carpentries/mailflow/pkg/templates"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// TemplateHandler handles email template requests
type TemplateHandler struct {
	service *templates.Service
}

// NewTemplateHandler creates a new template handler
func NewTemplateHandler(service *templates.Service) *TemplateHandler {
	return &TemplateHandler{service: service}
}

// CreateTemplateRequest represents a create template request
type CreateTemplateRequest struct {
	Name          string   `json:"name" validate:"required,min=1,max=255"`
	Signal        string   `json:"signal" validate:"required"`
	Active        bool     `json:"active"`
	FromHeader    string   `json:"from_header" validate:"required,email"`
	ReplyToHeader string   `json:"reply_to_header" validate:"omitempty,email"`
	CcHeader      []string `json:"cc_header" validate:"dive,email"`
	BccHeader     []string `json:"bcc_header" validate:"dive,email"`
	Subject       string   `json:"subject" validate:"required,max=255"`
	Body          string   `json:"body" validate:"required"`
}

// UpdateTemplateRequest represents a partial template update
type UpdateTemplateRequest struct {
	Name          *string  `json:"name,omitempty" validate:"omitempty,min=1,max=255"`
	Active        *bool    `json:"active,omitempty"`
	FromHeader    *string  `json:"from_header,omitempty" validate:"omitempty,email"`
	ReplyToHeader *string  `json:"reply_to_header,omitempty" validate:"omitempty,email"`
	CcHeader      []string `json:"cc_header,omitempty" validate:"omitempty,dive,email"`
	BccHeader     []string `json:"bcc_header,omitempty" validate:"omitempty,dive,email"`
	Subject       *string  `json:"subject,omitempty" validate:"omitempty,max=255"`
	Body          *string  `json:"body,omitempty"`
}

// TemplateResponse represents a template in API responses
type TemplateResponse struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Signal        string   `json:"signal"`
	Active        bool     `json:"active"`
	FromHeader    string   `json:"from_header"`
	ReplyToHeader string   `json:"reply_to_header"`
	CcHeader      []string `json:"cc_header"`
	BccHeader     []string `json:"bcc_header"`
	Subject       string   `json:"subject"`
	Body          string   `json:"body"`
	CreatedAt     string   `json:"created_at"`
	UpdatedAt     string   `json:"updated_at"`
}

func toTemplateResponse(t *ent.EmailTemplate) TemplateResponse {
	return TemplateResponse{
		ID:            t.ID.String(),
		Name:          t.Name,
		Signal:        t.Signal,
		Active:        t.Active,
		FromHeader:    t.FromHeader,
		ReplyToHeader: t.ReplyToHeader,
		CcHeader:      t.CcHeader,
		BccHeader:     t.BccHeader,
		Subject:       t.Subject,
		Body:          t.Body,
		CreatedAt:     t.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:     t.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

// Create godoc
// @Summary Create an email template
// @Description Create a template bound to a signal. Subject and body syntax are validated before saving.
// @Tags Templates
// @Accept json
// @Produce json
// @Param request body CreateTemplateRequest true "Template fields"
// @Success 201 {object} TemplateResponse "Created template"
// @Failure 400 {object} map[string]string "Invalid request, unknown signal or broken template syntax"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /email-templates [post]
func (h *TemplateHandler) Create(c echo.Context) error {
	ctx := c.Request().Context()

	var req CreateTemplateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]string{
			"error":   "invalid request",
			"message": err.Error(),
		})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	tmpl, err := h.service.Create(ctx, templates.CreateParams{
		Name:          req.Name,
		Signal:        req.Signal,
		Active:        req.Active,
		FromHeader:    req.FromHeader,
		ReplyToHeader: req.ReplyToHeader,
		CcHeader:      req.CcHeader,
		BccHeader:     req.BccHeader,
		Subject:       req.Subject,
		Body:          req.Body,
	})
	if err != nil {
		if ent.IsConstraintError(err) {
			return echo.NewHTTPError(http.StatusConflict, map[string]string{
				"error":   "template conflict",
				"message": err.Error(),
			})
		}
		return echo.NewHTTPError(http.StatusBadRequest, map[string]string{
			"error":   "failed to create template",
			"message": err.Error(),
		})
	}

	return c.JSON(http.StatusCreated, toTemplateResponse(tmpl))
}

// List godoc
// @Summary List email templates
// @Description Returns all templates, optionally only active ones
// @Tags Templates
// @Produce json
// @Param active query bool false "Only active templates"
// @Success 200 {object} map[string]interface{} "Templates with total count"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /email-templates [get]
func (h *TemplateHandler) List(c echo.Context) error {
	ctx := c.Request().Context()
	activeOnly := c.QueryParam("active") == "true"

	found, err := h.service.List(ctx, activeOnly)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, map[string]string{
			"error":   "failed to list templates",
			"message": err.Error(),
		})
	}

	responses := make([]TemplateResponse, 0, len(found))
	for _, t := range found {
		responses = append(responses, toTemplateResponse(t))
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"templates": responses,
		"total":     len(responses),
	})
}

// Get godoc
// @Summary Get an email template
// @Tags Templates
// @Produce json
// @Param id path string true "Template ID"
// @Success 200 {object} TemplateResponse "Template"
// @Failure 404 {object} map[string]string "Template not found"
// @Router /email-templates/{id} [get]
func (h *TemplateHandler) Get(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]string{
			"error": "invalid template id",
		})
	}

	tmpl, err := h.service.Get(ctx, id)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, map[string]string{
			"error": "template not found",
		})
	}

	return c.JSON(http.StatusOK, toTemplateResponse(tmpl))
}

// Update godoc
// @Summary Update an email template
// @Description Partial update. New subject or body syntax is validated before saving; the signal binding cannot change.
// @Tags Templates
// @Accept json
// @Produce json
// @Param id path string true "Template ID"
// @Param request body UpdateTemplateRequest true "Fields to update"
// @Success 200 {object} TemplateResponse "Updated template"
// @Failure 400 {object} map[string]string "Invalid request or broken template syntax"
// @Failure 404 {object} map[string]string "Template not found"
// @Router /email-templates/{id} [patch]
func (h *TemplateHandler) Update(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]string{
			"error": "invalid template id",
		})
	}

	var req UpdateTemplateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]string{
			"error":   "invalid request",
			"message": err.Error(),
		})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	tmpl, err := h.service.Update(ctx, id, templates.UpdateParams{
		Name:          req.Name,
		Active:        req.Active,
		FromHeader:    req.FromHeader,
		ReplyToHeader: req.ReplyToHeader,
		CcHeader:      req.CcHeader,
		BccHeader:     req.BccHeader,
		Subject:       req.Subject,
		Body:          req.Body,
	})
	if err != nil {
		if ent.IsNotFound(err) {
			return echo.NewHTTPError(http.StatusNotFound, map[string]string{
				"error": "template not found",
			})
		}
		return echo.NewHTTPError(http.StatusBadRequest, map[string]string{
			"error":   "failed to update template",
			"message": err.Error(),
		})
	}

	return c.JSON(http.StatusOK, toTemplateResponse(tmpl))
}

// Delete godoc
// @Summary Delete an email template
// @Description Deletes a template. Existing scheduled emails keep their rendered content and lose only the template link.
// @Tags Templates
// @Produce json
// @Param id path string true "Template ID"
// @Success 200 {object} map[string]string "Deleted"
// @Failure 404 {object} map[string]string "Template not found"
// @Router /email-templates/{id} [delete]
func (h *TemplateHandler) Delete(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]string{
			"error": "invalid template id",
		})
	}

	if err := h.service.Delete(ctx, id); err != nil {
		if ent.IsNotFound(err) {
			return echo.NewHTTPError(http.StatusNotFound, map[string]string{
				"error": "template not found",
			})
		}
		return echo.NewHTTPError(http.StatusInternalServerError, map[string]string{
			"error":   "failed to delete template",
			"message": err.Error(),
		})
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "template deleted",
	})
}
