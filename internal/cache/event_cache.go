package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/eventhive/eventhive_api/internal/models"
)

// EventCache caches the public event listing and per-event reads in Redis.
// Writes go through the repository; the cache is invalidated on create and
// re-primed by the refresh worker.
type EventCache struct {
	redis *RedisClient
	ttl   time.Duration
}

// NewEventCache creates a new EventCache with the given entry TTL.
func NewEventCache(redis *RedisClient, ttl time.Duration) *EventCache {
	return &EventCache{redis: redis, ttl: ttl}
}

const keyAllEvents = "events:all"

func keyEventByID(id int) string {
	return fmt.Sprintf("events:id:%d", id)
}

// SetAll stores the full event listing.
func (c *EventCache) SetAll(ctx context.Context, events []*models.Event) error {
	jsonData, err := json.Marshal(events)
	if err != nil {
		return fmt.Errorf("failed to marshal events: %w", err)
	}
	return c.redis.Set(ctx, keyAllEvents, string(jsonData), c.ttl)
}

// GetAll retrieves the cached event listing. A cache miss surfaces as an
// error from the underlying client; callers fall back to the repository.
func (c *EventCache) GetAll(ctx context.Context) ([]*models.Event, error) {
	jsonData, err := c.redis.Get(ctx, keyAllEvents)
	if err != nil {
		return nil, err
	}

	var events []*models.Event
	if err := json.Unmarshal([]byte(jsonData), &events); err != nil {
		return nil, fmt.Errorf("failed to unmarshal events: %w", err)
	}
	return events, nil
}

// SetByID stores a single event.
func (c *EventCache) SetByID(ctx context.Context, event *models.Event) error {
	jsonData, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}
	return c.redis.Set(ctx, keyEventByID(event.ID), string(jsonData), c.ttl)
}

// GetByID retrieves a cached event by id.
func (c *EventCache) GetByID(ctx context.Context, id int) (*models.Event, error) {
	jsonData, err := c.redis.Get(ctx, keyEventByID(id))
	if err != nil {
		return nil, err
	}

	var event models.Event
	if err := json.Unmarshal([]byte(jsonData), &event); err != nil {
		return nil, fmt.Errorf("failed to unmarshal event: %w", err)
	}
	return &event, nil
}

// InvalidateAll drops the listing key so the next read repopulates it.
func (c *EventCache) InvalidateAll(ctx context.Context) error {
	return c.redis.Delete(ctx, keyAllEvents)
}
