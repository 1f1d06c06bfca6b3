package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/eventhive/eventhive_api/internal/auth"
	"github.com/eventhive/eventhive_api/internal/utils"
)

// JWTMiddleware guards routes behind a valid bearer token.
type JWTMiddleware struct {
	tokens *auth.JWTManager
}

func NewJWTMiddleware(tokens *auth.JWTManager) *JWTMiddleware {
	return &JWTMiddleware{tokens: tokens}
}

// Handle validates the Authorization header and stores the caller's email
// and role in the request context.
func (m *JWTMiddleware) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := auth.TokenFromHeader(c.GetHeader("Authorization"))
		if err != nil {
			utils.Error(c, 401, "Missing or invalid authorization header")
			c.Abort()
			return
		}

		claims, err := m.tokens.Validate(token)
		if err != nil {
			if errors.Is(err, auth.ErrExpiredToken) {
				utils.Error(c, 401, "Token expired")
			} else {
				utils.Error(c, 401, "Invalid token")
			}
			c.Abort()
			return
		}

		c.Set("email", claims.Subject)
		c.Set("role", claims.Role)
		c.Next()
	}
}

// RequireAdmin rejects callers whose token does not carry the Admin role.
// Must run after Handle.
func (m *JWTMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString("role") != "Admin" {
			utils.Error(c, 401, "Admin access required")
			c.Abort()
			return
		}
		c.Next()
	}
}
