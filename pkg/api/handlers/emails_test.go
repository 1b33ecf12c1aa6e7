package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carpentries/mailflow/ent/scheduledemail"
	"github.com/carpentries/mailflow/pkg/metrics"
)

func TestScheduledEmailHandler_List(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()

	ctrl := newTestController(client, nil)
	h := NewScheduledEmailHandler(ctrl, nil)
	e := newTestEcho()

	scheduleTestEmail(t, client, ctrl)
	scheduleTestEmail(t, client, ctrl)

	c, rec := jsonContext(e, http.MethodGet, "")
	require.NoError(t, h.List(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		ScheduledEmails []ScheduledEmailResponse `json:"scheduled_emails"`
		Total           int                      `json:"total"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Total)
}

func TestScheduledEmailHandler_ListStateFilter(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()

	ctrl := newTestController(client, nil)
	h := NewScheduledEmailHandler(ctrl, nil)
	e := newTestEcho()

	email := scheduleTestEmail(t, client, ctrl)
	scheduleTestEmail(t, client, ctrl)
	_, err := ctrl.CancelEmail(context.Background(), email, nil)
	require.NoError(t, err)

	c, rec := jsonContext(e, http.MethodGet, "")
	c.QueryParams().Set("state", "cancelled")
	require.NoError(t, h.List(c))

	var resp struct {
		ScheduledEmails []ScheduledEmailResponse `json:"scheduled_emails"`
		Total           int                      `json:"total"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, 1, resp.Total)
	assert.Equal(t, "cancelled", resp.ScheduledEmails[0].State)

	// Unknown state values are rejected, not silently ignored
	c, _ = jsonContext(e, http.MethodGet, "")
	c.QueryParams().Set("state", "sent")
	err = h.List(c)
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, httpCode(t, err))
}

func TestScheduledEmailHandler_Get(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()

	ctrl := newTestController(client, nil)
	h := NewScheduledEmailHandler(ctrl, nil)
	e := newTestEcho()

	email := scheduleTestEmail(t, client, ctrl)

	c, rec := jsonContext(e, http.MethodGet, "")
	c.SetParamNames("id")
	c.SetParamValues(email.ID.String())
	require.NoError(t, h.Get(c))

	var resp ScheduledEmailResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, email.ID.String(), resp.ID)
	assert.Equal(t, "Hello Ada", resp.Subject)
	assert.Equal(t, []string{"ada@example.org"}, resp.ToHeader)

	// Bad and unknown IDs
	c, _ = jsonContext(e, http.MethodGet, "")
	c.SetParamNames("id")
	c.SetParamValues("nope")
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

func TestScheduledEmailHandler_Logs(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()

	ctrl := newTestController(client, nil)
	h := NewScheduledEmailHandler(ctrl, nil)
	e := newTestEcho()

	email := scheduleTestEmail(t, client, ctrl)
	_, err := ctrl.CancelEmail(context.Background(), email, nil)
	require.NoError(t, err)

	c, rec := jsonContext(e, http.MethodGet, "")
	c.SetParamNames("id")
	c.SetParamValues(email.ID.String())
	require.NoError(t, h.Logs(c))

	var resp struct {
		Logs  []LogResponse `json:"logs"`
		Total int           `json:"total"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, 2, resp.Total)
	// Newest first
	assert.Equal(t, "Email was cancelled", resp.Logs[0].Details)
	assert.Contains(t, resp.Logs[1].Details, "Email scheduled to run at")
}

func TestScheduledEmailHandler_StateChanges(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()

	ctrl := newTestController(client, nil)
	h := NewScheduledEmailHandler(ctrl, metrics.New())
	e := newTestEcho()

	email := scheduleTestEmail(t, client, ctrl)

	// Lock with an author attribution
	c, rec := jsonContext(e, http.MethodPost, `{"author_id": 7}`)
	c.SetParamNames("id")
	c.SetParamValues(email.ID.String())
	require.NoError(t, h.Lock(c))

	var resp ScheduledEmailResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "locked", resp.State)

	// Succeed with custom details
	c, rec = jsonContext(e, http.MethodPost, `{"details": "Delivered via provider X"}`)
	c.SetParamNames("id")
	c.SetParamValues(email.ID.String())
	require.NoError(t, h.Succeed(c))
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "succeeded", resp.State)

	updated, err := client.ScheduledEmail.Get(context.Background(), email.ID)
	require.NoError(t, err)
	assert.Equal(t, scheduledemail.StateSucceeded, updated.State)

	logs, err := ctrl.EmailLogs(context.Background(), email.ID)
	require.NoError(t, err)
	require.Len(t, logs, 3)
	assert.Equal(t, "Delivered via provider X", logs[0].Details)
	require.NotNil(t, logs[1].AuthorID)
	assert.Equal(t, 7, *logs[1].AuthorID)
}

func TestScheduledEmailHandler_Fail(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()

	ctrl := newTestController(client, nil)
	h := NewScheduledEmailHandler(ctrl, metrics.New())
	e := newTestEcho()

	email := scheduleTestEmail(t, client, ctrl)

	c, _ := jsonContext(e, http.MethodPost, "")
	c.SetParamNames("id")
	c.SetParamValues(email.ID.String())
	require.NoError(t, h.Lock(c))

	c, rec := jsonContext(e, http.MethodPost, `{"details": "SMTP timeout"}`)
	c.SetParamNames("id")
	c.SetParamValues(email.ID.String())
	require.NoError(t, h.Fail(c))

	var resp ScheduledEmailResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "failed", resp.State)
}

func TestScheduledEmailHandler_Reschedule(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()

	ctrl := newTestController(client, nil)
	h := NewScheduledEmailHandler(ctrl, nil)
	e := newTestEcho()

	email := scheduleTestEmail(t, client, ctrl)
	newTime := time.Now().Add(48 * time.Hour).UTC().Truncate(time.Second)

	c, rec := jsonContext(e, http.MethodPost, `{"scheduled_at": "`+newTime.Format(time.RFC3339)+`"}`)
	c.SetParamNames("id")
	c.SetParamValues(email.ID.String())
	require.NoError(t, h.Reschedule(c))

	var resp ScheduledEmailResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, newTime.Equal(resp.ScheduledAt))
	assert.Equal(t, "scheduled", resp.State)

	// A missing run time is a validation error
	c, _ = jsonContext(e, http.MethodPost, `{}`)
	c.SetParamNames("id")
	c.SetParamValues(email.ID.String())
	err := h.Reschedule(c)
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, httpCode(t, err))
}

func TestScheduledEmailHandler_Due(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()

	ctrl := newTestController(client, nil)
	h := NewScheduledEmailHandler(ctrl, nil)
	e := newTestEcho()

	// One due, one future
	due := scheduleTestEmail(t, client, ctrl)
	_, err := ctrl.RescheduleEmail(context.Background(), due, time.Now().Add(-time.Hour), nil)
	require.NoError(t, err)
	scheduleTestEmail(t, client, ctrl)

	c, rec := jsonContext(e, http.MethodGet, "")
	require.NoError(t, h.Due(c))

	var resp struct {
		ScheduledEmails []ScheduledEmailResponse `json:"scheduled_emails"`
		Total           int                      `json:"total"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, 1, resp.Total)
	assert.Equal(t, due.ID.String(), resp.ScheduledEmails[0].ID)

	c, _ = jsonContext(e, http.MethodGet, "")
	c.QueryParams().Set("limit", "minus one")
	err = h.Due(c)
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, httpCode(t, err))
}

func TestScheduledEmailHandler_Duplicates(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()

	ctrl := newTestController(client, nil)
	h := NewScheduledEmailHandler(ctrl, nil)
	e := newTestEcho()

	// scheduleTestEmail targets a fresh person each time, so duplicate a
	// single email's target by hand.
	first := scheduleTestEmail(t, client, ctrl)
	_, err := client.ScheduledEmail.Create().
		SetScheduledAt(first.ScheduledAt).
		SetToHeader(first.ToHeader).
		SetFromHeader(first.FromHeader).
		SetSubject(first.Subject).
		SetBody(first.Body).
		SetContextJSON(first.ContextJSON).
		SetToHeaderContextJSON(first.ToHeaderContextJSON).
		SetNillableTemplateID(first.TemplateID).
		SetRelatedTo(first.RelatedTo).
		SetRelatedID(first.RelatedID).
		Save(context.Background())
	require.NoError(t, err)

	c, rec := jsonContext(e, http.MethodGet, "")
	require.NoError(t, h.Duplicates(c))

	var resp struct {
		Duplicates []struct {
			TemplateID string                   `json:"template_id"`
			RelatedTo  string                   `json:"related_to"`
			RelatedID  int                      `json:"related_id"`
			Emails     []ScheduledEmailResponse `json:"emails"`
		} `json:"duplicates"`
		Total int `json:"total"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, 1, resp.Total)
	assert.Equal(t, "person", resp.Duplicates[0].RelatedTo)
	assert.Len(t, resp.Duplicates[0].Emails, 2)
}
