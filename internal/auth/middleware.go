package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pm-ajay/monitoring-backend/pkg/response"
)

const (
	// Context keys set by Middleware for downstream handlers.
	ContextUserID = "userID"
	ContextRole   = "role"
)

// Middleware authenticates requests with a bearer token. When the service
// has no secret configured every request passes through unauthenticated.
func Middleware(svc *Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !svc.Enabled() {
			c.Next()
			return
		}

		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" {
			unauthorized(c, "missing bearer token")
			return
		}

		claims, err := svc.ParseToken(token)
		if err != nil {
			unauthorized(c, "invalid or expired token")
			return
		}

		c.Set(ContextUserID, claims.Subject)
		c.Set(ContextRole, claims.Role)
		c.Next()
	}
}

// RequireRoles rejects requests whose token role is not in the allow list.
// It is a no-op when authentication is disabled.
func RequireRoles(svc *Service, roles ...string) gin.HandlerFunc {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}

	return func(c *gin.Context) {
		if !svc.Enabled() {
			c.Next()
			return
		}

		role := c.GetString(ContextRole)
		if _, ok := allowed[role]; !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, response.Envelope{
				Success: false,
				Message: "insufficient role",
			})
			return
		}
		c.Next()
	}
}

func unauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, response.Envelope{
		Success: false,
		Message: message,
	})
}
