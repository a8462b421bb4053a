package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"stockward/internal/infrastructure/auth"
	"stockward/internal/shared/constants"
	"stockward/internal/shared/logger"
	"stockward/internal/shared/utils"
)

type AuthMiddleware struct {
	verifier *auth.Verifier
	logger   logger.Interface
}

func NewAuthMiddleware(verifier *auth.Verifier, logger logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		verifier: verifier,
		logger:   logger,
	}
}

// RequireAuth verifies the bearer token and stores the principal id on
// the request context. Tokens come from the Authorization header only.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "missing authorization token")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := m.verifier.Verify(parts[1])
		if err != nil {
			m.logger.Warnw("failed to verify token", "error", err)
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid or expired token")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyPrincipalID, claims.PrincipalID())

		c.Next()
	}
}

// PrincipalID returns the authenticated principal id set by RequireAuth.
func PrincipalID(c *gin.Context) string {
	return c.GetString(constants.ContextKeyPrincipalID)
}
