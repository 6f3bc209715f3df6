package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/svidal/rutinas-api/internal/entities"
)

// ContextKeyUser is the gin context key holding the authenticated user.
const ContextKeyUser = "auth_user"

// Middleware guards routes behind bearer-token authentication.
type Middleware struct {
	service *Service
}

// NewMiddleware creates a new authentication middleware.
func NewMiddleware(service *Service) *Middleware {
	return &Middleware{service: service}
}

// RequireAuth rejects requests without a valid bearer token with 401 and a
// WWW-Authenticate challenge; on success the resolved user is attached to
// the request context for downstream handlers.
func (m *Middleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			abortUnauthorized(c, "No autenticado")
			return
		}

		user, err := m.service.Authenticate(token)
		if err != nil {
			abortUnauthorized(c, "Credenciales no válidas o expiradas")
			return
		}

		c.Set(ContextKeyUser, user)
		c.Next()
	}
}

// CurrentUser returns the authenticated user attached by RequireAuth,
// or nil on unprotected routes.
func CurrentUser(c *gin.Context) *entities.User {
	value, exists := c.Get(ContextKeyUser)
	if !exists {
		return nil
	}
	user, ok := value.(*entities.User)
	if !ok {
		return nil
	}
	return user
}

// bearerToken extracts the token from an "Authorization: Bearer <token>"
// header.
func bearerToken(c *gin.Context) (string, bool) {
	header := c.GetHeader("Authorization")
	if header == "" {
		return "", false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", false
	}
	return parts[1], true
}

func abortUnauthorized(c *gin.Context, detail string) {
	c.Header("WWW-Authenticate", "Bearer")
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": detail})
}
