package service

import (
	"database/sql"
	"errors"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/eventhive/eventhive_api/internal/auth"
	"github.com/eventhive/eventhive_api/internal/models"
	"github.com/eventhive/eventhive_api/internal/validation"
)

// AdminStore is the admin persistence surface the auth flow needs.
type AdminStore interface {
	GetByEmail(email string) (*models.Admin, error)
	Create(admin *models.Admin) error
}

// UserStore is the user persistence surface the auth flow needs.
type UserStore interface {
	GetByEmail(email string) (*models.User, error)
	Create(user *models.User) error
}

// AuthService orchestrates credential validation, password hashing and
// token issuance for both principal namespaces.
type AuthService struct {
	admins AdminStore
	users  UserStore
	tokens *auth.JWTManager
}

// NewAuthService constructs an AuthService.
func NewAuthService(admins AdminStore, users UserStore, tokens *auth.JWTManager) *AuthService {
	return &AuthService{admins: admins, users: users, tokens: tokens}
}

// SignIn authenticates against the admin store first, then the user store.
// An admin match wins even when the same email exists as a user.
func (s *AuthService) SignIn(email, password string) (token, role string, err error) {
	admin, err := s.admins.GetByEmail(strings.ToLower(email))
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return "", "", err
	}
	if admin != nil && auth.CheckPassword(password, admin.PasswordHash) {
		token, err = s.tokens.Generate(admin.Email, admin.Role)
		if err != nil {
			return "", "", err
		}
		log.Info().Str("email", admin.Email).Str("role", admin.Role).Msg("Sign in successful")
		return token, admin.Role, nil
	}

	user, err := s.users.GetByEmail(email)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return "", "", err
	}
	if user != nil && auth.CheckPassword(password, user.PasswordHash) {
		token, err = s.tokens.Generate(user.Email, user.Role)
		if err != nil {
			return "", "", err
		}
		log.Info().Str("email", user.Email).Str("role", user.Role).Msg("Sign in successful")
		return token, user.Role, nil
	}

	log.Warn().Str("email", email).Msg("Sign in failed")
	return "", "", ErrInvalidCredentials
}

// UserSignUp registers a new user account. Checks run in order: name,
// email shape, duplicate email, password complexity, confirmation match.
func (s *AuthService) UserSignUp(name, email, password, confirmPassword string) (*models.User, error) {
	if !validation.ValidName(name) {
		return nil, badRequest("Name must contain only letters")
	}
	if !validation.ValidEmail(email) {
		return nil, badRequest("Invalid email address")
	}

	existing, err := s.users.GetByEmail(email)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}
	if existing != nil {
		return nil, badRequest("Email already registered")
	}

	if !validation.ValidPassword(password) {
		return nil, badRequest("Password must be at least 8 characters and include uppercase, lowercase, a number and a symbol")
	}
	if password != confirmPassword {
		return nil, badRequest("Passwords do not match")
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:        email,
		Name:         name,
		PasswordHash: hash,
		Role:         "User",
	}
	if err := s.users.Create(user); err != nil {
		return nil, err
	}

	log.Info().Str("email", user.Email).Msg("User registered")
	return user, nil
}

// AdminSignIn authenticates an admin only. An unknown email is reported
// distinctly from a wrong password.
func (s *AuthService) AdminSignIn(email, password string) (string, error) {
	admin, err := s.admins.GetByEmail(strings.ToLower(email))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrAdminNotFound
		}
		return "", err
	}

	if !auth.CheckPassword(password, admin.PasswordHash) {
		log.Warn().Str("email", admin.Email).Msg("Admin sign in failed")
		return "", ErrInvalidCredentials
	}

	role := admin.Role
	if role == "" {
		role = "Admin"
	}
	return s.tokens.Generate(admin.Email, role)
}

// AdminSignUp registers a new admin and issues a token right away.
// Admin emails are stored lowercase. The password is hashed the same way
// as user passwords.
func (s *AuthService) AdminSignUp(name, email, password string) (string, error) {
	if !validation.ValidName(name) {
		return "", badRequest("Name must contain only letters")
	}
	if !validation.ValidEmail(email) {
		return "", badRequest("Invalid email address")
	}
	if len(password) < 8 {
		return "", badRequest("Password must be at least 8 characters")
	}

	email = strings.ToLower(email)
	existing, err := s.admins.GetByEmail(email)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return "", err
	}
	if existing != nil {
		return "", badRequest("Email already registered")
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return "", err
	}

	admin := &models.Admin{
		Email:        email,
		Name:         name,
		PasswordHash: hash,
		Role:         "Admin",
	}
	if err := s.admins.Create(admin); err != nil {
		return "", err
	}

	log.Info().Str("email", admin.Email).Msg("Admin registered")
	return s.tokens.Generate(admin.Email, admin.Role)
}
