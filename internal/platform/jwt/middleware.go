package jwtmw

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"job_hunter/internal/api"
	"job_hunter/internal/feature/auth/domain/entity"
	"job_hunter/internal/feature/auth/usecase"
)

// contextUserKey is the gin context key the authenticated user is bound to.
const contextUserKey = "currentUser"

// UserLoader resolves the user embedded in a verified token. It exists so
// the middleware rejects tokens whose subject was deleted after issuance.
type UserLoader interface {
	FindByID(ctx context.Context, id uint) (*entity.User, error)
}

// AuthRequired returns a Gin middleware that admits only requests carrying
// a valid bearer token for an existing user. On success the loaded user is
// bound to the request context for handlers to pick up via CurrentUser.
func AuthRequired(tokens *Service, users UserLoader) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, api.ErrorResponse{Error: "token required"})
			return
		}
		tokenStr := strings.TrimPrefix(auth, "Bearer ")

		userID, err := tokens.Verify(tokenStr)
		if err != nil {
			// The client sees a uniform rejection; the reason (malformed,
			// tampered, expired) is only logged.
			slog.Warn("token verification failed", "reason", err, "remote_addr", c.ClientIP())
			c.AbortWithStatusJSON(http.StatusUnauthorized, api.ErrorResponse{Error: "invalid token"})
			return
		}

		user, err := users.FindByID(c.Request.Context(), userID)
		if err != nil {
			if errors.Is(err, usecase.ErrUserNotFound) {
				// Token outlived its user.
				slog.Warn("token subject no longer exists", "user_id", userID, "remote_addr", c.ClientIP())
				c.AbortWithStatusJSON(http.StatusUnauthorized, api.ErrorResponse{Error: "user not found"})
				return
			}
			slog.Error("user lookup failed during authentication", "user_id", userID, "error", err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, api.ErrorResponse{Error: "authentication failed"})
			return
		}

		c.Set(contextUserKey, user)
		c.Next()
	}
}

// CurrentUser returns the authenticated user bound by AuthRequired.
// The second return value is false when the middleware did not run.
func CurrentUser(c *gin.Context) (*entity.User, bool) {
	v, ok := c.Get(contextUserKey)
	if !ok {
		return nil, false
	}
	user, ok := v.(*entity.User)
	return user, ok
}
