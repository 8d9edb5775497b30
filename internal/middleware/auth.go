package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"mblog/internal/model"
	appErr "mblog/internal/pkg/errors"
	"mblog/internal/pkg/response"
)

const (
	ContextUserKey   = "user"
	ContextUserIDKey = "user_id"
)

// Authenticator turns a raw bearer token into the user it belongs to.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*model.User, error)
}

// Auth is the pre-condition gate for protected routes: the request is
// rejected with 401 before any handler logic runs unless the bearer
// token resolves to an existing user.
func Auth(auth Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			response.Error(c, http.StatusUnauthorized, "unauthorized", "missing authorization")
			c.Abort()
			return
		}
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
			response.Error(c, http.StatusUnauthorized, "unauthorized", "invalid authorization")
			c.Abort()
			return
		}
		user, err := auth.Authenticate(c.Request.Context(), strings.TrimSpace(parts[1]))
		if err != nil {
			// only a store fault is not an auth rejection
			if errors.Is(err, appErr.ErrUnauthorized) {
				response.Error(c, http.StatusUnauthorized, "unauthorized", "invalid token")
			} else {
				response.Error(c, http.StatusInternalServerError, "internal", "internal error")
			}
			c.Abort()
			return
		}
		c.Set(ContextUserKey, user)
		c.Set(ContextUserIDKey, user.ID)
		c.Next()
	}
}
