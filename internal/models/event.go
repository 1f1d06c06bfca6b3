package models

import "time"

// Event is a published event. JSON field names follow the wire contract
// the dashboard consumes ("_id", snake_case dates, image_base64).
// AdminEmail is a weak back-reference to the creating admin, not an FK.
type Event struct {
	ID          int       `db:"id" json:"_id"`
	Title       string    `db:"title" json:"title"`
	Venue       string    `db:"venue" json:"venue"`
	StartDate   string    `db:"start_date" json:"start_date"`
	EndDate     string    `db:"end_date" json:"end_date"`
	StartTime   string    `db:"start_time" json:"start_time"`
	EndTime     string    `db:"end_time" json:"end_time"`
	Cost        string    `db:"cost" json:"cost"`
	Description string    `db:"description" json:"description"`
	ImageBase64 string    `db:"image_base64" json:"image_base64,omitempty"`
	AdminEmail  string    `db:"admin_email" json:"admin_email"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
}
