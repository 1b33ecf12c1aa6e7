package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carpentries/mailflow/pkg/emails/signals"
)

func TestTemplateHandler_Create(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()

	e := newTestEcho()
	h := NewTemplateHandler(newTemplateService(client))

	body := `{
		"name": "Badge congratulations",
		"signal": "` + signals.InstructorBadgeAwarded + `",
		"active": true,
		"from_header": "team@example.org",
		"subject": "Congratulations {{.person.personal}}",
		"body": "Well done!"
	}`
	c, rec := jsonContext(e, http.MethodPost, body)

	require.NoError(t, h.Create(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp TemplateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Badge congratulations", resp.Name)
	assert.Equal(t, signals.InstructorBadgeAwarded, resp.Signal)
	assert.True(t, resp.Active)
	assert.NotEmpty(t, resp.ID)
}

func TestTemplateHandler_Create_Invalid(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()

	e := newTestEcho()
	h := NewTemplateHandler(newTemplateService(client))

	tests := []struct {
		name string
		body string
		code int
	}{
		{
			name: "missing required fields",
			body: `{"name": "No subject"}`,
			code: http.StatusBadRequest,
		},
		{
			name: "unknown signal",
			body: `{"name": "X", "signal": "nope", "from_header": "team@example.org", "subject": "S", "body": "B"}`,
			code: http.StatusBadRequest,
		},
		{
			name: "broken subject syntax",
			body: `{"name": "X", "signal": "` + signals.RecruitHelpers + `", "from_header": "team@example.org", "subject": "{{.broken", "body": "B"}`,
			code: http.StatusBadRequest,
		},
		{
			name: "invalid from header",
			body: `{"name": "X", "signal": "` + signals.RecruitHelpers + `", "from_header": "not-an-email", "subject": "S", "body": "B"}`,
			code: http.StatusBadRequest,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := jsonContext(e, http.MethodPost, tt.body)
			err := h.Create(c)
			require.Error(t, err)
			assert.Equal(t, tt.code, httpCode(t, err))
		})
	}
}

func TestTemplateHandler_Create_DuplicateSignal(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()

	e := newTestEcho()
	h := NewTemplateHandler(newTemplateService(client))

	body := `{"name": "First", "signal": "` + signals.AskForWebsite + `", "from_header": "team@example.org", "subject": "S", "body": "B"}`
	c, _ := jsonContext(e, http.MethodPost, body)
	require.NoError(t, h.Create(c))

	// Same signal, different name: the one-template-per-signal rule holds
	body = `{"name": "Second", "signal": "` + signals.AskForWebsite + `", "from_header": "team@example.org", "subject": "S", "body": "B"}`
	c, _ = jsonContext(e, http.MethodPost, body)
	err := h.Create(c)
	require.Error(t, err)
	assert.Equal(t, http.StatusConflict, httpCode(t, err))
}

func TestTemplateHandler_List(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()

	e := newTestEcho()
	svc := newTemplateService(client)
	h := NewTemplateHandler(svc)

	c, _ := jsonContext(e, http.MethodPost, `{"name": "Only one", "signal": "`+signals.RecruitHelpers+`", "active": true, "from_header": "team@example.org", "subject": "S", "body": "B"}`)
	require.NoError(t, h.Create(c))

	c, rec := jsonContext(e, http.MethodGet, "")
	require.NoError(t, h.List(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Templates []TemplateResponse `json:"templates"`
		Total     int                `json:"total"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Total)
	require.Len(t, resp.Templates, 1)
	assert.Equal(t, "Only one", resp.Templates[0].Name)
}

func TestTemplateHandler_GetUpdateDelete(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()

	e := newTestEcho()
	h := NewTemplateHandler(newTemplateService(client))

	c, rec := jsonContext(e, http.MethodPost, `{"name": "Lifecycle", "signal": "`+signals.PostWorkshop7Days+`", "from_header": "team@example.org", "subject": "S", "body": "B"}`)
	require.NoError(t, h.Create(c))
	var created TemplateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	// Get
	c, rec = jsonContext(e, http.MethodGet, "")
	c.SetParamNames("id")
	c.SetParamValues(created.ID)
	require.NoError(t, h.Get(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	// Patch
	c, rec = jsonContext(e, http.MethodPatch, `{"subject": "Updated subject"}`)
	c.SetParamNames("id")
	c.SetParamValues(created.ID)
	require.NoError(t, h.Update(c))
	var updated TemplateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	assert.Equal(t, "Updated subject", updated.Subject)
	assert.Equal(t, created.Body, updated.Body)

	// Delete
	c, rec = jsonContext(e, http.MethodDelete, "")
	c.SetParamNames("id")
	c.SetParamValues(created.ID)
	require.NoError(t, h.Delete(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	// Gone now
	c, _ = jsonContext(e, http.MethodGet, "")
	c.SetParamNames("id")
	c.SetParamValues(created.ID)
	err := h.Get(c)
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, httpCode(t, err))
}

func TestTemplateHandler_InvalidID(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()

	e := newTestEcho()
	h := NewTemplateHandler(newTemplateService(client))

	c, _ := jsonContext(e, http.MethodGet, "")
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")
	err := h.Get(c)
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, httpCode(t, err))

	c, _ = jsonContext(e, http.MethodGet, "")
	c.SetParamNames("id")
	c.SetParamValues(uuid.NewString())
	err = h.Get(c)
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, httpCode(t, err))
}
