package repository

import (
	"github.com/jmoiron/sqlx"

	"github.com/eventhive/eventhive_api/internal/models"
)

// EventRepository provides data access methods for the events table.
type EventRepository struct {
	db *sqlx.DB
}

// NewEventRepository creates a new EventRepository.
func NewEventRepository(db *sqlx.DB) *EventRepository {
	return &EventRepository{db: db}
}

const eventColumns = `id, title, venue, start_date, end_date, start_time, end_time,
	cost, description, image_base64, admin_email, created_at`

// Create inserts a new event and fills in the generated id and timestamp.
func (r *EventRepository) Create(event *models.Event) error {
	query := `
		INSERT INTO events (title, venue, start_date, end_date, start_time, end_time,
			cost, description, image_base64, admin_email)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at
	`
	return r.db.QueryRow(query,
		event.Title,
		event.Venue,
		event.StartDate,
		event.EndDate,
		event.StartTime,
		event.EndTime,
		event.Cost,
		event.Description,
		event.ImageBase64,
		event.AdminEmail,
	).Scan(&event.ID, &event.CreatedAt)
}

// GetByID finds an event by id. Returns sql.ErrNoRows when absent.
func (r *EventRepository) GetByID(id int) (*models.Event, error) {
	var event models.Event
	err := r.db.Get(&event, `SELECT `+eventColumns+` FROM events WHERE id = $1`, id)
	if err != nil {
		return nil, err
	}
	return &event, nil
}

// List retrieves all events, newest first.
func (r *EventRepository) List() ([]*models.Event, error) {
	var events []*models.Event
	err := r.db.Select(&events, `SELECT `+eventColumns+` FROM events ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	return events, nil
}

// ListByAdminEmail retrieves events created by the given admin, newest first.
func (r *EventRepository) ListByAdminEmail(email string) ([]*models.Event, error) {
	var events []*models.Event
	err := r.db.Select(&events, `
		SELECT `+eventColumns+` FROM events WHERE admin_email = $1 ORDER BY created_at DESC
	`, email)
	if err != nil {
		return nil, err
	}
	return events, nil
}
