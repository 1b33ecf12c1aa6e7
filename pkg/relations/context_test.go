package relations

import (
	"context"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carpentries/mailflow/ent"
	"github.com/carpentries/mailflow/ent/enttest"
	"github.com/carpentries/mailflow/pkg/models"
)

// setupTestDB creates an in-memory SQLite database for testing
func setupTestDB(t *testing.T) *ent.Client {
	opts := []enttest.Option{
		enttest.WithOptions(ent.Log(t.Log)),
	}

	client := enttest.Open(t, "sqlite3", "file:ent?mode=memory&cache=shared&_fk=1", opts...)
	return client
}

func TestParseModelURI(t *testing.T) {
	model, id, err := ParseModelURI("api:person#42")
	require.NoError(t, err)
	assert.Equal(t, "person", model)
	assert.Equal(t, 42, id)

	for _, uri := range []string{"person#42", "api:#42", "api:person", "api:person#x"} {
		_, _, err := ParseModelURI(uri)
		assert.Error(t, err, uri)
	}
}

func TestParseScalarURI(t *testing.T) {
	tests := []struct {
		uri      string
		expected any
	}{
		{"value:str#hello", "hello"},
		{"value:int#7", 7},
		{"value:float#2.5", 2.5},
		{"value:bool#True", true},
		{"value:bool#false", false},
		{"value:none#", nil},
	}
	for _, tt := range tests {
		t.Run(tt.uri, func(t *testing.T) {
			parsed, err := ParseScalarURI(tt.uri)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, parsed)
		})
	}

	parsed, err := ParseScalarURI("value:date#2026-05-01T00:00:00Z")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC), parsed)

	_, err = ParseScalarURI("value:uuid#whatever")
	assert.Error(t, err)
}

func TestURIRoundTrip(t *testing.T) {
	model, id, err := ParseModelURI(ModelURI("event", 9))
	require.NoError(t, err)
	assert.Equal(t, "event", model)
	assert.Equal(t, 9, id)

	parsed, err := ParseScalarURI(ScalarURI("str", "x"))
	require.NoError(t, err)
	assert.Equal(t, "x", parsed)

	parsed, err = ParseScalarURI(NoneURI())
	require.NoError(t, err)
	assert.Nil(t, parsed)
}

func TestBuildContext(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()
	ctx := context.Background()

	person, err := client.Person.Create().
		SetPersonal("Ada").
		SetFamily("Lovelace").
		SetEmail("ada@example.org").
		Save(ctx)
	require.NoError(t, err)

	start := time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)
	event, err := client.Event.Create().
		SetSlug("2026-09-14-oxford").
		SetTags([]string{"SWC"}).
		SetURL("https://example.org/oxford").
		SetStartDate(start).
		Save(ctx)
	require.NoError(t, err)

	result, err := BuildContext(ctx, client, map[string]any{
		"person":   ModelURI("person", person.ID),
		"event":    ModelURI("event", event.ID),
		"deadline": ScalarURI("str", "next Friday"),
		"helpers":  []any{ModelURI("person", person.ID)},
	})
	require.NoError(t, err)

	personFields, ok := result["person"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Ada", personFields["personal"])
	assert.Equal(t, "Ada Lovelace", personFields["name"])
	assert.Equal(t, "ada@example.org", personFields["email"])

	eventFields, ok := result["event"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "2026-09-14-oxford", eventFields["slug"])
	assert.Equal(t, "2026-09-14", eventFields["start_date"])
	_, hasEnd := eventFields["end_date"]
	assert.False(t, hasEnd)

	assert.Equal(t, "next Friday", result["deadline"])

	helpers, ok := result["helpers"].([]any)
	require.True(t, ok)
	require.Len(t, helpers, 1)
}

func TestBuildContext_DanglingReference(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()

	_, err := BuildContext(context.Background(), client, map[string]any{
		"person": ModelURI("person", 9999),
	})
	assert.Error(t, err)
}

func TestResolveToHeader(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()
	ctx := context.Background()

	withEmail, err := client.Person.Create().
		SetPersonal("Grace").
		SetEmail("grace@example.org").
		Save(ctx)
	require.NoError(t, err)

	withoutEmail, err := client.Person.Create().
		SetPersonal("Anon").
		Save(ctx)
	require.NoError(t, err)

	addresses, err := ResolveToHeader(ctx, client, []models.ToHeaderRef{
		{APIURI: ModelURI("person", withEmail.ID), Property: "email"},
		{APIURI: ModelURI("person", withoutEmail.ID), Property: "email"},
	})
	require.NoError(t, err)
	// People without an address are skipped, not errored on
	assert.Equal(t, []string{"grace@example.org"}, addresses)
}
