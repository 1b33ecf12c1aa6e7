package handlers

import (
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/carpentries/mailflow/ent"
	"github.com/carpentries/mailflow/ent/emailattachment"
	"github.com/carpentries/mailflow/pkg/emails"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// maxAttachmentSize caps uploads at 10 MB.
const maxAttachmentSize = 10 << 20

// AttachmentHandler handles email attachment requests
type AttachmentHandler struct {
	ctrl *emails.Controller
}

// NewAttachmentHandler creates a new attachment handler
func NewAttachmentHandler(ctrl *emails.Controller) *AttachmentHandler {
	return &AttachmentHandler{ctrl: ctrl}
}

// AttachmentResponse represents an attachment in API responses
type AttachmentResponse struct {
	ID                     string     `json:"id"`
	Filename               string     `json:"filename"`
	S3Bucket               string     `json:"s3_bucket"`
	S3Path                 string     `json:"s3_path"`
	PresignedURL           string     `json:"presigned_url,omitempty"`
	PresignedURLExpiration *time.Time `json:"presigned_url_expiration,omitempty"`
	ScheduledEmailID       string     `json:"scheduled_email_id"`
	CreatedAt              time.Time  `json:"created_at"`
}

func toAttachmentResponse(a *ent.EmailAttachment) AttachmentResponse {
	return AttachmentResponse{
		ID:                     a.ID.String(),
		Filename:               a.Filename,
		S3Bucket:               a.S3Bucket,
		S3Path:                 a.S3Path,
		PresignedURL:           a.PresignedURL,
		PresignedURLExpiration: a.PresignedURLExpiration,
		ScheduledEmailID:       a.ScheduledEmailID.String(),
		CreatedAt:              a.CreatedAt,
	}
}

// Upload godoc
// @Summary Attach a file to a scheduled email
// @Description Stores the file in object storage and records the attachment against the email
// @Tags Attachments
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Scheduled email ID"
// @Param file formData file true "File to attach"
// @Success 201 {object} AttachmentResponse "Created attachment"
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 404 {object} map[string]string "Not found"
// @Failure 503 {object} map[string]string "Storage not configured"
// @Router /scheduled-emails/{id}/attachments [post]
func (h *AttachmentHandler) Upload(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]string{
			"error": "invalid email id",
		})
	}

	email, err := h.ctrl.GetEmail(ctx, id)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, map[string]string{
			"error": "scheduled email not found",
		})
	}

	header, err := c.FormFile("file")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]string{
			"error": "missing file field",
		})
	}
	if header.Size > maxAttachmentSize {
		return echo.NewHTTPError(http.StatusRequestEntityTooLarge, map[string]string{
			"error": "file exceeds the 10 MB attachment limit",
		})
	}

	src, err := header.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]string{
			"error":   "failed to read file",
			"message": err.Error(),
		})
	}
	defer src.Close()

	content, err := io.ReadAll(io.LimitReader(src, maxAttachmentSize))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]string{
			"error":   "failed to read file",
			"message": err.Error(),
		})
	}

	attachment, err := h.ctrl.AddAttachment(ctx, email, header.Filename, content)
	if err != nil {
		if errors.Is(err, emails.ErrStorageNotConfigured) {
			return echo.NewHTTPError(http.StatusServiceUnavailable, map[string]string{
				"error": "attachment storage not configured",
			})
		}
		return echo.NewHTTPError(http.StatusInternalServerError, map[string]string{
			"error":   "failed to store attachment",
			"message": err.Error(),
		})
	}

	return c.JSON(http.StatusCreated, toAttachmentResponse(attachment))
}

// List godoc
// @Summary List attachments of a scheduled email
// @Tags Attachments
// @Produce json
// @Param id path string true "Scheduled email ID"
// @Success 200 {object} map[string]interface{} "Attachments"
// @Failure 404 {object} map[string]string "Not found"
// @Router /scheduled-emails/{id}/attachments [get]
func (h *AttachmentHandler) List(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]string{
			"error": "invalid email id",
		})
	}

	found, err := h.ctrl.Client().EmailAttachment.Query().
		Where(emailattachment.ScheduledEmailID(id)).
		Order(ent.Asc(emailattachment.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, map[string]string{
			"error":   "failed to list attachments",
			"message": err.Error(),
		})
	}

	responses := make([]AttachmentResponse, 0, len(found))
	for _, a := range found {
		responses = append(responses, toAttachmentResponse(a))
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"attachments": responses,
		"total":       len(responses),
	})
}

// PresignedURLRequest carries the optional URL lifetime
type PresignedURLRequest struct {
	ExpiresInSeconds int `json:"expires_in_seconds" validate:"omitempty,min=60,max=604800"`
}

// Presign godoc
// @Summary Generate a download URL for an attachment
// @Description Creates a time-limited presigned URL and caches it on the attachment row
// @Tags Attachments
// @Accept json
// @Produce json
// @Param id path string true "Attachment ID"
// @Param request body PresignedURLRequest false "URL lifetime, defaults to 1 hour"
// @Success 200 {object} AttachmentResponse "Attachment with fresh URL"
// @Failure 404 {object} map[string]string "Not found"
// @Failure 503 {object} map[string]string "Storage not configured"
// @Router /attachments/{id}/presigned-url [post]
func (h *AttachmentHandler) Presign(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]string{
			"error": "invalid attachment id",
		})
	}

	attachment, err := h.ctrl.Client().EmailAttachment.Get(ctx, id)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, map[string]string{
			"error": "attachment not found",
		})
	}

	var req PresignedURLRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]string{
			"error":   "invalid request",
			"message": err.Error(),
		})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	ttl := time.Hour
	if req.ExpiresInSeconds > 0 {
		ttl = time.Duration(req.ExpiresInSeconds) * time.Second
	}

	updated, err := h.ctrl.GeneratePresignedURL(ctx, attachment, ttl)
	if err != nil {
		if errors.Is(err, emails.ErrStorageNotConfigured) {
			return echo.NewHTTPError(http.StatusServiceUnavailable, map[string]string{
				"error": "attachment storage not configured",
			})
		}
		return echo.NewHTTPError(http.StatusInternalServerError, map[string]string{
			"error":   "failed to generate presigned URL",
			"message": err.Error(),
		})
	}

	return c.JSON(http.StatusOK, toAttachmentResponse(updated))
}
