package handlers

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carpentries/mailflow/pkg/attachments"
)

// multipartContext builds an echo context carrying one uploaded file.
func multipartContext(t *testing.T, e *echo.Echo, field, filename string, content []byte) (echo.Context, *httptest.ResponseRecorder) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/", &buf)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAttachmentHandler_Upload(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()

	storage := attachments.NewMemoryStorage()
	ctrl := newTestController(client, storage)
	h := NewAttachmentHandler(ctrl)
	e := newTestEcho()

	email := scheduleTestEmail(t, client, ctrl)

	c, rec := multipartContext(t, e, "file", "certificate.pdf", []byte("%PDF-1.4 fake"))
	c.SetParamNames("id")
	c.SetParamValues(email.ID.String())
	require.NoError(t, h.Upload(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp AttachmentResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "certificate.pdf", resp.Filename)
	assert.Equal(t, "test-bucket", resp.S3Bucket)
	assert.Contains(t, resp.S3Path, email.ID.String())
	assert.Equal(t, email.ID.String(), resp.ScheduledEmailID)

	stored, ok := storage.Get("test-bucket", resp.S3Path)
	require.True(t, ok)
	assert.Equal(t, []byte("%PDF-1.4 fake"), stored)
}

func TestAttachmentHandler_Upload_Errors(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()

	ctrl := newTestController(client, attachments.NewMemoryStorage())
	h := NewAttachmentHandler(ctrl)
	e := newTestEcho()

	email := scheduleTestEmail(t, client, ctrl)

	// Unknown email
	c, _ := multipartContext(t, e, "file", "x.txt", []byte("x"))
	c.SetParamNames("id")
	c.SetParamValues(uuid.NewString())
	err := h.Upload(c)
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, httpCode(t, err))

	// Wrong form field name
	c, _ = multipartContext(t, e, "document", "x.txt", []byte("x"))
	c.SetParamNames("id")
	c.SetParamValues(email.ID.String())
	err = h.Upload(c)
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, httpCode(t, err))
}

func TestAttachmentHandler_Upload_StorageNotConfigured(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()

	ctrl := newTestController(client, nil)
	h := NewAttachmentHandler(ctrl)
	e := newTestEcho()

	email := scheduleTestEmail(t, client, ctrl)

	c, _ := multipartContext(t, e, "file", "x.txt", []byte("x"))
	c.SetParamNames("id")
	c.SetParamValues(email.ID.String())
	err := h.Upload(c)
	require.Error(t, err)
	assert.Equal(t, http.StatusServiceUnavailable, httpCode(t, err))
}

func TestAttachmentHandler_List(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()

	ctrl := newTestController(client, attachments.NewMemoryStorage())
	h := NewAttachmentHandler(ctrl)
	e := newTestEcho()

	email := scheduleTestEmail(t, client, ctrl)
	for _, name := range []string{"first.txt", "second.txt"} {
		c, _ := multipartContext(t, e, "file", name, []byte(name))
		c.SetParamNames("id")
		c.SetParamValues(email.ID.String())
		require.NoError(t, h.Upload(c))
	}

	c, rec := jsonContext(e, http.MethodGet, "")
	c.SetParamNames("id")
	c.SetParamValues(email.ID.String())
	require.NoError(t, h.List(c))

	var resp struct {
		Attachments []AttachmentResponse `json:"attachments"`
		Total       int                  `json:"total"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, 2, resp.Total)
	assert.Equal(t, "first.txt", resp.Attachments[0].Filename)
	assert.Equal(t, "second.txt", resp.Attachments[1].Filename)
}

func TestAttachmentHandler_Presign(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()

	ctrl := newTestController(client, attachments.NewMemoryStorage())
	h := NewAttachmentHandler(ctrl)
	e := newTestEcho()

	email := scheduleTestEmail(t, client, ctrl)
	c, rec := multipartContext(t, e, "file", "report.csv", []byte("a,b"))
	c.SetParamNames("id")
	c.SetParamValues(email.ID.String())
	require.NoError(t, h.Upload(c))

	var uploaded AttachmentResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &uploaded))

	c, rec = jsonContext(e, http.MethodPost, `{"expires_in_seconds": 120}`)
	c.SetParamNames("id")
	c.SetParamValues(uploaded.ID)
	require.NoError(t, h.Presign(c))

	var resp AttachmentResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.PresignedURL)
	require.NotNil(t, resp.PresignedURLExpiration)
	assert.True(t, resp.PresignedURLExpiration.After(time.Now()))

	// Lifetime below the allowed minimum
	c, _ = jsonContext(e, http.MethodPost, `{"expires_in_seconds": 5}`)
	c.SetParamNames("id")
	c.SetParamValues(uploaded.ID)
	err := h.Presign(c)
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, httpCode(t, err))

	// Unknown attachment
	c, _ = jsonContext(e, http.MethodPost, "")
	c.SetParamNames("id")
	c.SetParamValues(uuid.NewString())
	err = h.Presign(c)
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, httpCode(t, err))
}
