package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validEventPayload() map[string]string {
	return map[string]string{
		"title":     "Go Conference",
		"venue":     "City Hall",
		"startDate": "2025-06-01",
		"endDate":   "2025-06-02",
		"startTime": "10:00",
		"endTime":   "18:00",
		"cost":      "500",
	}
}

// adminToken signs up an admin through the API and returns its bearer token.
func adminToken(t *testing.T, env *testEnv, email string) string {
	t.Helper()
	w := env.do(t, http.MethodPost, "/api/admin/signup", map[string]string{
		"name":     "Boss",
		"email":    email,
		"password": "longenough",
	}, nil)
	require.Equal(t, http.StatusCreated, w.Code)
	token, _ := decodeBody(t, w)["token"].(string)
	require.NotEmpty(t, token)
	return token
}

func TestCreateEventRequiresAuth(t *testing.T) {
	env := newTestEnv(t, nil)

	w := env.do(t, http.MethodPost, "/api/admin/create_event", validEventPayload(), nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Empty(t, env.events.events)
}

func TestCreateEventRejectsUserToken(t *testing.T) {
	env := newTestEnv(t, nil)

	token, err := env.tokens.Generate("jane@example.com", "User")
	require.NoError(t, err)

	w := env.do(t, http.MethodPost, "/api/admin/create_event", validEventPayload(), map[string]string{
		"Authorization": "Bearer " + token,
	})
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Empty(t, env.events.events)
}

func TestCreateEventOwnerFromToken(t *testing.T) {
	env := newTestEnv(t, nil)
	token := adminToken(t, env, "boss@example.com")

	// Payload tries to claim a different owner; the claims win.
	payload := validEventPayload()
	payload["admin_email"] = "intruder@example.com"

	w := env.do(t, http.MethodPost, "/api/admin/create_event", payload, map[string]string{
		"Authorization": "Bearer " + token,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "Event created successfully", decodeBody(t, w)["message"])

	require.Len(t, env.events.events, 1)
	assert.Equal(t, "boss@example.com", env.events.events[0].AdminEmail)
}

func TestCreateEventChronologicalOrder(t *testing.T) {
	env := newTestEnv(t, nil)
	token := adminToken(t, env, "boss@example.com")

	payload := validEventPayload()
	payload["startDate"] = "2025-06-02"
	payload["endDate"] = "2025-06-01"

	w := env.do(t, http.MethodPost, "/api/admin/create_event", payload, map[string]string{
		"Authorization": "Bearer " + token,
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Start date must be before end date", decodeBody(t, w)["error"])
	assert.Empty(t, env.events.events)
}

func TestGetEventsEmpty(t *testing.T) {
	env := newTestEnv(t, nil)

	w := env.do(t, http.MethodGet, "/api/events", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}

func TestGetEventByID(t *testing.T) {
	env := newTestEnv(t, nil)
	token := adminToken(t, env, "boss@example.com")

	w := env.do(t, http.MethodPost, "/api/admin/create_event", validEventPayload(), map[string]string{
		"Authorization": "Bearer " + token,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = env.do(t, http.MethodGet, "/api/user/events/1", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, float64(1), body["_id"])
	assert.Equal(t, "Go Conference", body["title"])
	assert.Equal(t, "boss@example.com", body["admin_email"])

	w = env.do(t, http.MethodGet, "/api/user/events/99", nil, nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Event not found", decodeBody(t, w)["error"])

	w = env.do(t, http.MethodGet, "/api/user/events/abc", nil, nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid event ID", decodeBody(t, w)["error"])
}

func TestAdminEventsListsOnlyOwn(t *testing.T) {
	env := newTestEnv(t, nil)
	tokenA := adminToken(t, env, "a@example.com")
	tokenB := adminToken(t, env, "b@example.com")

	for _, token := range []string{tokenA, tokenA, tokenB} {
		w := env.do(t, http.MethodPost, "/api/admin/create_event", validEventPayload(), map[string]string{
			"Authorization": "Bearer " + token,
		})
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := env.do(t, http.MethodGet, "/api/admin/admin_events", nil, map[string]string{
		"Authorization": "Bearer " + tokenA,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var events []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &events))
	require.Len(t, events, 2)
	for _, e := range events {
		assert.Equal(t, "a@example.com", e["admin_email"])
	}
}

func TestAIDescriptionStripsMarkdown(t *testing.T) {
	env := newTestEnv(t, &fakeGenerator{response: "# Big Event\n\nCome see **amazing** things!"})

	w := env.do(t, http.MethodPost, "/api/admin/ai_description", map[string]string{
		"title":      "Big Event",
		"venue":      "City Hall",
		"start_date": "2025-06-01",
		"end_date":   "2025-06-02",
		"start_time": "10:00",
		"end_time":   "18:00",
		"cost":       "500",
	}, nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Big Event\n\nCome see amazing things!", decodeBody(t, w)["description"])
}

func TestAIDescriptionMissingField(t *testing.T) {
	env := newTestEnv(t, &fakeGenerator{response: "ok"})

	w := env.do(t, http.MethodPost, "/api/admin/ai_description", map[string]string{
		"title": "Big Event",
	}, nil)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "All event details are required to generate a description", decodeBody(t, w)["error"])
}

func TestAIDescriptionGeneratorFailure(t *testing.T) {
	env := newTestEnv(t, &fakeGenerator{err: errors.New("upstream down")})

	w := env.do(t, http.MethodPost, "/api/admin/ai_description", map[string]string{
		"title":      "Big Event",
		"venue":      "City Hall",
		"start_date": "2025-06-01",
		"end_date":   "2025-06-02",
		"start_time": "10:00",
		"end_time":   "18:00",
		"cost":       "500",
	}, nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
