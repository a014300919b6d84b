package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	"campuspress/internal/model"
	"campuspress/internal/transport/http/response"
)

const contextUserKey = "auth_user"

// TokenResolver maps a bearer token to its user. Implemented by
// app.AuthService.
type TokenResolver interface {
	GetByToken(ctx context.Context, token string) (*model.User, error)
}

// AuthBearer rejects requests without a resolvable Bearer token and
// stores the resolved user on the context.
func AuthBearer(resolver TokenResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := strings.TrimSpace(c.GetHeader("Authorization"))
		if authHeader == "" {
			response.Error(c, 401, "missing authorization header")
			c.Abort()
			return
		}

		const prefix = "Bearer "
		if !strings.HasPrefix(authHeader, prefix) {
			response.Error(c, 401, "invalid authorization scheme")
			c.Abort()
			return
		}

		token := strings.TrimSpace(strings.TrimPrefix(authHeader, prefix))
		user, err := resolver.GetByToken(c.Request.Context(), token)
		if err != nil || user == nil {
			response.Error(c, 401, "invalid or expired token")
			c.Abort()
			return
		}

		c.Set(contextUserKey, user)
		c.Next()
	}
}

// UserFrom returns the user resolved by AuthBearer.
func UserFrom(c *gin.Context) (*model.User, bool) {
	value, exists := c.Get(contextUserKey)
	if !exists {
		return nil, false
	}
	user, ok := value.(*model.User)
	return user, ok
}
