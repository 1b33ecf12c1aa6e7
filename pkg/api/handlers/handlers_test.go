package handlers

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"

	"github.com/carpentries/mailflow/ent"
	"github.com/carpentries/mailflow/ent/enttest"
	"github.com/carpentries/mailflow/pkg/api"
	"github.com/carpentries/mailflow/pkg/attachments"
	"github.com/carpentries/mailflow/pkg/emails"
	"github.com/carpentries/mailflow/pkg/emails/signals"
	"github.com/carpentries/mailflow/pkg/models"
	"github.com/carpentries/mailflow/pkg/relations"
	"github.com/carpentries/mailflow/pkg/templateengine"
	"github.com/carpentries/mailflow/pkg/templates"
)

// setupTestDB creates an in-memory SQLite database for testing
func setupTestDB(t *testing.T) *ent.Client {
	opts := []enttest.Option{
		enttest.WithOptions(ent.Log(t.Log)),
	}

	client := enttest.Open(t, "sqlite3", "file:ent?mode=memory&cache=shared&_fk=1", opts...)
	return client
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = api.NewValidator()
	return e
}

func newTestController(client *ent.Client, storage attachments.Storage) *emails.Controller {
	return emails.NewController(client, templateengine.NewGoTemplateEngine(), emails.Options{
		Storage: storage,
		Bucket:  "test-bucket",
	})
}

func newTemplateService(client *ent.Client) *templates.Service {
	return templates.NewService(client, templateengine.NewGoTemplateEngine(), nil)
}

// jsonContext builds an echo context carrying a JSON body.
func jsonContext(e *echo.Echo, method, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, "/", strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

// scheduleTestEmail plants a rendered scheduled email through the controller.
func scheduleTestEmail(t *testing.T, client *ent.Client, ctrl *emails.Controller) *ent.ScheduledEmail {
	ctx := context.Background()

	_, err := client.EmailTemplate.Query().Only(ctx)
	if ent.IsNotFound(err) {
		_, err = client.EmailTemplate.Create().
			SetName("Welcome email").
			SetSignal(signals.InstructorBadgeAwarded).
			SetFromHeader("team@example.org").
			SetSubject("Hello {{.person.personal}}").
			SetBody("Hi {{.person.personal}}!").
			Save(ctx)
		require.NoError(t, err)
	}

	person, err := client.Person.Create().
		SetPersonal("Ada").
		SetFamily("Lovelace").
		SetEmail("ada@example.org").
		Save(ctx)
	require.NoError(t, err)

	email, err := ctrl.ScheduleEmail(ctx, emails.ScheduleParams{
		Signal: signals.InstructorBadgeAwarded,
		ContextJSON: map[string]any{
			"person": relations.ModelURI(string(relations.KindPerson), person.ID),
		},
		ScheduledAt: time.Now().Add(time.Hour),
		ToHeader:    []string{person.Email},
		ToHeaderContextJSON: []models.ToHeaderRef{
			{APIURI: relations.ModelURI(string(relations.KindPerson), person.ID), Property: "email"},
		},
		Related: relations.Ref{Kind: relations.KindPerson, ID: person.ID},
	})
	require.NoError(t, err)
	return email
}

// httpCode extracts the status code from a handler error.
func httpCode(t *testing.T, err error) int {
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok, "expected *echo.HTTPError, got %T", err)
	return he.Code
}
