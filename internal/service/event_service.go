package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/eventhive/eventhive_api/internal/models"
	"github.com/eventhive/eventhive_api/internal/validation"
)

// EventStore is the event persistence surface.
type EventStore interface {
	Create(event *models.Event) error
	GetByID(id int) (*models.Event, error)
	List() ([]*models.Event, error)
	ListByAdminEmail(email string) ([]*models.Event, error)
}

// EventCache is the read cache for public event queries. Cache failures
// are never fatal; reads fall back to the store.
type EventCache interface {
	GetAll(ctx context.Context) ([]*models.Event, error)
	SetAll(ctx context.Context, events []*models.Event) error
	GetByID(ctx context.Context, id int) (*models.Event, error)
	SetByID(ctx context.Context, event *models.Event) error
	InvalidateAll(ctx context.Context) error
}

// CreateEventRequest is the create_event payload. Field names follow the
// admin dashboard form.
type CreateEventRequest struct {
	Title       string `json:"title"`
	Venue       string `json:"venue"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	Cost        string `json:"cost"`
	Description string `json:"description"`
	ImageBase64 string `json:"image_base64"`
}

// EventService handles event creation and retrieval.
type EventService struct {
	events EventStore
	cache  EventCache
}

// NewEventService constructs an EventService.
func NewEventService(events EventStore, cache EventCache) *EventService {
	return &EventService{events: events, cache: cache}
}

// CreateEvent validates the payload and persists a new event owned by
// adminEmail. The creation timestamp is server-assigned.
func (s *EventService) CreateEvent(ctx context.Context, req *CreateEventRequest, adminEmail string) (*models.Event, error) {
	if err := validation.ValidateEventFields(validation.EventFields{
		Title:       req.Title,
		Venue:       req.Venue,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		ImageBase64: req.ImageBase64,
	}); err != nil {
		return nil, badRequest(err.Error())
	}

	event := &models.Event{
		Title:       req.Title,
		Venue:       req.Venue,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Cost:        req.Cost,
		Description: req.Description,
		ImageBase64: req.ImageBase64,
		AdminEmail:  adminEmail,
	}
	if err := s.events.Create(event); err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.InvalidateAll(ctx); err != nil {
			log.Warn().Err(err).Msg("Failed to invalidate events cache")
		}
	}

	log.Info().Int("event_id", event.ID).Str("admin_email", adminEmail).Msg("Event created")
	return event, nil
}

// ListEvents returns all events, serving from the cache when possible.
func (s *EventService) ListEvents(ctx context.Context) ([]*models.Event, error) {
	if s.cache != nil {
		if events, err := s.cache.GetAll(ctx); err == nil {
			return events, nil
		}
	}

	events, err := s.events.List()
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetAll(ctx, events); err != nil {
			log.Warn().Err(err).Msg("Failed to prime events cache")
		}
	}
	return events, nil
}

// GetEvent returns a single event by id, serving from the cache when possible.
func (s *EventService) GetEvent(ctx context.Context, id int) (*models.Event, error) {
	if s.cache != nil {
		if event, err := s.cache.GetByID(ctx, id); err == nil {
			return event, nil
		}
	}

	event, err := s.events.GetByID(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetByID(ctx, event); err != nil {
			log.Warn().Err(err).Msg("Failed to cache event")
		}
	}
	return event, nil
}

// ListEventsByAdmin returns events created by the given admin email.
// Per-admin listings are not cached; they are low-traffic dashboard reads.
func (s *EventService) ListEventsByAdmin(email string) ([]*models.Event, error) {
	return s.events.ListByAdminEmail(email)
}

// RefreshCache re-primes the full events listing. Called by the cache
// refresh worker.
func (s *EventService) RefreshCache(ctx context.Context) error {
	if s.cache == nil {
		return nil
	}
	events, err := s.events.List()
	if err != nil {
		return err
	}
	return s.cache.SetAll(ctx, events)
}
