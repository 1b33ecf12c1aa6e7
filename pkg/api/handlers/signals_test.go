package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carpentries/mailflow/ent"
	"github.com/carpentries/mailflow/pkg/emails/actions"
	"github.com/carpentries/mailflow/pkg/emails/signals"
	"github.com/carpentries/mailflow/pkg/flags"
)

func newSignalHandler(client *ent.Client) *SignalHandler {
	ctrl := newTestController(client, nil)
	runner := actions.NewRunner(ctrl, flags.New(true, nil, nil), nil, nil)
	return NewSignalHandler(runner)
}

func createInstructorAward(t *testing.T, client *ent.Client) int {
	ctx := context.Background()

	person, err := client.Person.Create().
		SetPersonal("Grace").
		SetFamily("Hopper").
		SetEmail("grace@example.org").
		Save(ctx)
	require.NoError(t, err)

	award, err := client.Award.Create().
		SetBadge("instructor").
		SetPersonID(person.ID).
		Save(ctx)
	require.NoError(t, err)
	return award.ID
}

func TestSignals_List(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()

	e := newTestEcho()
	h := newSignalHandler(client)

	c, rec := jsonContext(e, http.MethodGet, "")
	require.NoError(t, h.List(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Signals []struct {
			Signal string `json:"signal"`
			Target string `json:"target"`
		} `json:"signals"`
		Total int `json:"total"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, len(signals.All()), resp.Total)

	targets := make(map[string]string, len(resp.Signals))
	for _, s := range resp.Signals {
		targets[s.Signal] = s.Target
	}
	assert.Equal(t, "award", targets[signals.InstructorBadgeAwarded])
	assert.Equal(t, "event", targets[signals.RecruitHelpers])
	assert.Equal(t, "membership", targets[signals.NewMembershipOnboarding])
}

func TestSignals_Evaluate(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()
	ctx := context.Background()

	e := newTestEcho()
	h := newSignalHandler(client)

	_, err := client.EmailTemplate.Create().
		SetName("Instructor badge").
		SetSignal(signals.InstructorBadgeAwarded).
		SetFromHeader("team@example.org").
		SetSubject("Congratulations {{.person.personal}}").
		SetBody("Well done!").
		Save(ctx)
	require.NoError(t, err)
	awardID := createInstructorAward(t, client)

	c, rec := jsonContext(e, http.MethodPost,
		`{"related_to":"award","related_id":`+strconv.Itoa(awardID)+`}`)
	c.SetParamNames("signal")
	c.SetParamValues(signals.InstructorBadgeAwarded)

	require.NoError(t, h.Evaluate(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp EvaluateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, signals.InstructorBadgeAwarded, resp.Signal)
	assert.Equal(t, "create", resp.Decision)
	assert.Equal(t, "scheduled", resp.Outcome)

	email, err := client.ScheduledEmail.Query().Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Congratulations Grace", email.Subject)
}

func TestSignals_Evaluate_MissingTemplateReported(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()
	ctx := context.Background()

	e := newTestEcho()
	h := newSignalHandler(client)
	awardID := createInstructorAward(t, client)

	// No template exists for the signal: the evaluation succeeds but the
	// caller is told nothing was scheduled.
	c, rec := jsonContext(e, http.MethodPost,
		`{"related_to":"award","related_id":`+strconv.Itoa(awardID)+`}`)
	c.SetParamNames("signal")
	c.SetParamValues(signals.InstructorBadgeAwarded)

	require.NoError(t, h.Evaluate(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp EvaluateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "create", resp.Decision)
	assert.Equal(t, "missing_template", resp.Outcome)

	count, err := client.ScheduledEmail.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestSignals_Evaluate_Errors(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()

	e := newTestEcho()
	h := newSignalHandler(client)
	awardID := createInstructorAward(t, client)

	t.Run("unknown signal", func(t *testing.T) {
		c, _ := jsonContext(e, http.MethodPost,
			`{"related_to":"award","related_id":`+strconv.Itoa(awardID)+`}`)
		c.SetParamNames("signal")
		c.SetParamValues("no_such_signal")
		assert.Equal(t, http.StatusNotFound, httpCode(t, h.Evaluate(c)))
	})

	t.Run("wrong target kind", func(t *testing.T) {
		c, _ := jsonContext(e, http.MethodPost,
			`{"related_to":"event","related_id":`+strconv.Itoa(awardID)+`}`)
		c.SetParamNames("signal")
		c.SetParamValues(signals.InstructorBadgeAwarded)
		assert.Equal(t, http.StatusBadRequest, httpCode(t, h.Evaluate(c)))
	})

	t.Run("missing target", func(t *testing.T) {
		c, _ := jsonContext(e, http.MethodPost, `{"related_to":"award","related_id":9999}`)
		c.SetParamNames("signal")
		c.SetParamValues(signals.InstructorBadgeAwarded)
		assert.Equal(t, http.StatusNotFound, httpCode(t, h.Evaluate(c)))
	})

	t.Run("missing related id", func(t *testing.T) {
		c, _ := jsonContext(e, http.MethodPost, `{"related_to":"award"}`)
		c.SetParamNames("signal")
		c.SetParamValues(signals.InstructorBadgeAwarded)
		assert.Equal(t, http.StatusBadRequest, httpCode(t, h.Evaluate(c)))
	})
}
