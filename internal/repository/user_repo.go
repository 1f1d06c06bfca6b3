package repository

import (
	"github.com/jmoiron/sqlx"

	"github.com/eventhive/eventhive_api/internal/models"
)

// UserRepository provides data access methods for the users table.
type UserRepository struct {
	db *sqlx.DB
}

// NewUserRepository creates a new UserRepository.
func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

// GetByEmail finds a user by email. Returns sql.ErrNoRows when absent.
func (r *UserRepository) GetByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.Get(&user, `
		SELECT id, email, name, password_hash, role, created_at
		FROM users
		WHERE email = $1
	`, email)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Create inserts a new user and fills in the generated id and timestamp.
func (r *UserRepository) Create(user *models.User) error {
	query := `
		INSERT INTO users (email, name, password_hash, role)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`
	return r.db.QueryRow(query, user.Email, user.Name, user.PasswordHash, user.Role).
		Scan(&user.ID, &user.CreatedAt)
}
