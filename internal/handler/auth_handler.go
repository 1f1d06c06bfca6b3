package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/eventhive/eventhive_api/internal/service"
	"github.com/eventhive/eventhive_api/internal/utils"
	"github.com/eventhive/eventhive_api/internal/validation"
)

// AuthHandler handles sign-in and sign-up endpoints for both namespaces.
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler constructs an AuthHandler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// handleServiceError maps service errors onto the wire contract. Unknown
// faults are reported as 500 with the message exposed.
func handleServiceError(c *gin.Context, err error) {
	var br *service.BadRequestError
	switch {
	case errors.As(err, &br):
		utils.Error(c, 400, br.Msg)
	case errors.Is(err, service.ErrInvalidCredentials):
		utils.Error(c, 401, err.Error())
	case errors.Is(err, service.ErrAdminNotFound):
		utils.Error(c, 404, err.Error())
	case errors.Is(err, service.ErrEventNotFound):
		utils.Error(c, 404, err.Error())
	default:
		utils.Error(c, 500, err.Error())
	}
}

// SignIn handles POST /api/signin. Admin credentials take precedence over
// user credentials for the same email.
func (h *AuthHandler) SignIn(c *gin.Context) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "Invalid request body")
		return
	}

	// Shape check first so malformed emails never reach the store.
	if !validation.ValidEmail(req.Email) {
		utils.Error(c, 400, "Invalid email address")
		return
	}

	token, role, err := h.authService.SignIn(req.Email, req.Password)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(200, gin.H{"token": token, "role": role})
}

// UserSignUp handles POST /api/signup.
func (h *AuthHandler) UserSignUp(c *gin.Context) {
	var req struct {
		Name            string `json:"name"`
		Email           string `json:"email"`
		Password        string `json:"password"`
		ConfirmPassword string `json:"confirm_password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "Invalid request body")
		return
	}

	if _, err := h.authService.UserSignUp(req.Name, req.Email, req.Password, req.ConfirmPassword); err != nil {
		handleServiceError(c, err)
		return
	}

	utils.Message(c, 201, "User registered successfully")
}

// AdminSignIn handles POST /api/admin/signin. Unknown admin emails are a
// 404, wrong passwords a 401.
func (h *AuthHandler) AdminSignIn(c *gin.Context) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "Invalid request body")
		return
	}

	if !validation.ValidEmail(req.Email) {
		utils.Error(c, 400, "Invalid email address")
		return
	}

	token, err := h.authService.AdminSignIn(req.Email, req.Password)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(200, gin.H{"token": token})
}

// AdminSignUp handles POST /api/admin/signup.
func (h *AuthHandler) AdminSignUp(c *gin.Context) {
	var req struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "Invalid request body")
		return
	}

	token, err := h.authService.AdminSignUp(req.Name, req.Email, req.Password)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(201, gin.H{"message": "Admin registered successfully", "token": token})
}
