package handler

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/eventhive/eventhive_api/internal/auth"
	"github.com/eventhive/eventhive_api/internal/middleware"
	"github.com/eventhive/eventhive_api/internal/models"
	"github.com/eventhive/eventhive_api/internal/service"
)

// In-memory stores and a canned generator backing the handler tests.

type fakeAdminStore struct {
	admins  map[string]*models.Admin
	lookups int
}

func (s *fakeAdminStore) GetByEmail(email string) (*models.Admin, error) {
	s.lookups++
	if a, ok := s.admins[email]; ok {
		return a, nil
	}
	return nil, sql.ErrNoRows
}

func (s *fakeAdminStore) Create(admin *models.Admin) error {
	admin.ID = len(s.admins) + 1
	admin.CreatedAt = time.Now()
	s.admins[admin.Email] = admin
	return nil
}

type fakeUserStore struct {
	users   map[string]*models.User
	lookups int
}

func (s *fakeUserStore) GetByEmail(email string) (*models.User, error) {
	s.lookups++
	if u, ok := s.users[email]; ok {
		return u, nil
	}
	return nil, sql.ErrNoRows
}

func (s *fakeUserStore) Create(user *models.User) error {
	user.ID = len(s.users) + 1
	user.CreatedAt = time.Now()
	s.users[user.Email] = user
	return nil
}

type fakeEventStore struct {
	events []*models.Event
}

func (s *fakeEventStore) Create(event *models.Event) error {
	event.ID = len(s.events) + 1
	event.CreatedAt = time.Now()
	s.events = append(s.events, event)
	return nil
}

func (s *fakeEventStore) GetByID(id int) (*models.Event, error) {
	for _, e := range s.events {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (s *fakeEventStore) List() ([]*models.Event, error) {
	return s.events, nil
}

func (s *fakeEventStore) ListByAdminEmail(email string) ([]*models.Event, error) {
	var out []*models.Event
	for _, e := range s.events {
		if e.AdminEmail == email {
			out = append(out, e)
		}
	}
	return out, nil
}

type fakeGenerator struct {
	response string
	err      error
}

func (g *fakeGenerator) Generate(context.Context, string) (string, error) {
	return g.response, g.err
}

type testEnv struct {
	router *gin.Engine
	admins *fakeAdminStore
	users  *fakeUserStore
	events *fakeEventStore
	tokens *auth.JWTManager
}

// newTestEnv wires handlers onto the production route table with fake
// stores and no Redis.
func newTestEnv(t *testing.T, gen service.Generator) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	admins := &fakeAdminStore{admins: make(map[string]*models.Admin)}
	users := &fakeUserStore{users: make(map[string]*models.User)}
	events := &fakeEventStore{}
	tokens := auth.NewJWTManager("test-secret", 2*time.Hour)

	authSvc := service.NewAuthService(admins, users, tokens)
	eventSvc := service.NewEventService(events, nil)
	descriptionSvc := service.NewDescriptionService(gen)

	authHandler := NewAuthHandler(authSvc)
	eventHandler := NewEventHandler(eventSvc, descriptionSvc)
	jwtMw := middleware.NewJWTMiddleware(tokens)

	router := gin.New()
	router.HandleMethodNotAllowed = true
	router.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "Method not allowed"})
	})

	api := router.Group("/api")
	api.POST("/signin", authHandler.SignIn)
	api.POST("/signup", authHandler.UserSignUp)
	api.GET("/events", eventHandler.GetEvents)
	api.GET("/user/events/:id", eventHandler.GetEventByID)

	admin := api.Group("/admin")
	admin.POST("/signin", authHandler.AdminSignIn)
	admin.POST("/signup", authHandler.AdminSignUp)
	admin.POST("/ai_description", eventHandler.AIDescription)

	protected := admin.Group("")
	protected.Use(jwtMw.Handle(), jwtMw.RequireAdmin())
	protected.POST("/create_event", eventHandler.CreateEvent)
	protected.GET("/admin_events", eventHandler.AdminEvents)

	return &testEnv{router: router, admins: admins, users: users, events: events, tokens: tokens}
}

// seedAdmin registers an admin directly in the fake store.
func (e *testEnv) seedAdmin(t *testing.T, email, password string) {
	t.Helper()
	hash, err := auth.HashPassword(password)
	require.NoError(t, err)
	e.admins.admins[email] = &models.Admin{Email: email, Name: "Boss", PasswordHash: hash, Role: "Admin"}
}

func (e *testEnv) do(t *testing.T, method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}
