package templates

import (
	"context"
	"testing"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carpentries/mailflow/ent"
	"github.com/carpentries/mailflow/ent/enttest"
	"github.com/carpentries/mailflow/pkg/emails/signals"
	"github.com/carpentries/mailflow/pkg/templateengine"
)

// setupTestDB creates an in-memory SQLite database for testing
func setupTestDB(t *testing.T) *ent.Client {
	opts := []enttest.Option{
		enttest.WithOptions(ent.Log(t.Log)),
	}

	client := enttest.Open(t, "sqlite3", "file:ent?mode=memory&cache=shared&_fk=1", opts...)
	return client
}

func newTestService(client *ent.Client) *Service {
	return NewService(client, templateengine.NewGoTemplateEngine(), nil)
}

func validParams() CreateParams {
	return CreateParams{
		Name:       "Welcome instructors",
		Signal:     signals.InstructorBadgeAwarded,
		Active:     true,
		FromHeader: "team@example.org",
		Subject:    "Congratulations {{.person.personal}}",
		Body:       "Hi {{.person.personal}}, welcome to the community!",
	}
}

func TestCreateTemplate(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()

	svc := newTestService(client)

	tmpl, err := svc.Create(context.Background(), validParams())
	require.NoError(t, err)
	assert.Equal(t, "Welcome instructors", tmpl.Name)
	assert.Equal(t, signals.InstructorBadgeAwarded, tmpl.Signal)
	assert.True(t, tmpl.Active)
	assert.NotEqual(t, uuid.Nil, tmpl.ID)
}

func TestCreateTemplate_UnknownSignal(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()

	svc := newTestService(client)

	p := validParams()
	p.Signal = "not_a_real_signal"

	_, err := svc.Create(context.Background(), p)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown signal")
}

func TestCreateTemplate_InvalidSyntax(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()

	svc := newTestService(client)
	ctx := context.Background()

	p := validParams()
	p.Subject = "Hello {{.person.personal"
	_, err := svc.Create(ctx, p)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid subject template")

	p = validParams()
	p.Body = "Hi {{range}}"
	_, err = svc.Create(ctx, p)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid body template")

	// Nothing was persisted
	count, err := client.EmailTemplate.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestUpdateTemplate(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()

	svc := newTestService(client)
	ctx := context.Background()

	tmpl, err := svc.Create(ctx, validParams())
	require.NoError(t, err)

	name := "Renamed template"
	inactive := false
	subject := "New subject"

	updated, err := svc.Update(ctx, tmpl.ID, UpdateParams{
		Name:    &name,
		Active:  &inactive,
		Subject: &subject,
	})
	require.NoError(t, err)
	assert.Equal(t, "Renamed template", updated.Name)
	assert.False(t, updated.Active)
	assert.Equal(t, "New subject", updated.Subject)
	// Untouched fields survive a partial update
	assert.Equal(t, tmpl.Body, updated.Body)
	assert.Equal(t, tmpl.Signal, updated.Signal)
}

func TestUpdateTemplate_InvalidSyntaxRejected(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()

	svc := newTestService(client)
	ctx := context.Background()

	tmpl, err := svc.Create(ctx, validParams())
	require.NoError(t, err)

	broken := "{{.unclosed"
	_, err = svc.Update(ctx, tmpl.ID, UpdateParams{Body: &broken})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid body template")

	// Stored template is untouched
	stored, err := svc.Get(ctx, tmpl.ID)
	require.NoError(t, err)
	assert.Equal(t, tmpl.Body, stored.Body)
}

func TestUpdateTemplate_NotFound(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()

	svc := newTestService(client)

	name := "whatever"
	_, err := svc.Update(context.Background(), uuid.New(), UpdateParams{Name: &name})
	assert.True(t, ent.IsNotFound(err))
}

func TestListTemplates(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()

	svc := newTestService(client)
	ctx := context.Background()

	active := validParams()
	active.Name = "Active template"
	_, err := svc.Create(ctx, active)
	require.NoError(t, err)

	inactive := validParams()
	inactive.Name = "Dormant template"
	inactive.Signal = signals.RecruitHelpers
	inactive.Active = false
	_, err = svc.Create(ctx, inactive)
	require.NoError(t, err)

	all, err := svc.List(ctx, false)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Active template", all[0].Name)
	assert.Equal(t, "Dormant template", all[1].Name)

	activeOnly, err := svc.List(ctx, true)
	require.NoError(t, err)
	require.Len(t, activeOnly, 1)
	assert.Equal(t, "Active template", activeOnly[0].Name)
}

func TestDeleteTemplate(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()

	svc := newTestService(client)
	ctx := context.Background()

	tmpl, err := svc.Create(ctx, validParams())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, tmpl.ID))

	_, err = svc.Get(ctx, tmpl.ID)
	assert.True(t, ent.IsNotFound(err))

	err = svc.Delete(ctx, tmpl.ID)
	assert.True(t, ent.IsNotFound(err))
}
