package repository

import (
	"github.com/jmoiron/sqlx"

	"github.com/eventhive/eventhive_api/internal/models"
)

// AdminRepository provides data access methods for the admins table.
type AdminRepository struct {
	db *sqlx.DB
}

// NewAdminRepository creates a new AdminRepository.
func NewAdminRepository(db *sqlx.DB) *AdminRepository {
	return &AdminRepository{db: db}
}

// GetByEmail finds an admin by email. Returns sql.ErrNoRows when absent.
func (r *AdminRepository) GetByEmail(email string) (*models.Admin, error) {
	var admin models.Admin
	err := r.db.Get(&admin, `
		SELECT id, email, name, password_hash, role, created_at
		FROM admins
		WHERE email = $1
	`, email)
	if err != nil {
		return nil, err
	}
	return &admin, nil
}

// Create inserts a new admin and fills in the generated id and timestamp.
func (r *AdminRepository) Create(admin *models.Admin) error {
	query := `
		INSERT INTO admins (email, name, password_hash, role)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`
	return r.db.QueryRow(query, admin.Email, admin.Name, admin.PasswordHash, admin.Role).
		Scan(&admin.ID, &admin.CreatedAt)
}
