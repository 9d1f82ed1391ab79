package middleware

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/tubhub/tubhub-api/internal/api/handler/v1/response"
	"github.com/tubhub/tubhub-api/internal/domain"
)

var (
	errAuthRequired    = errors.New("authentication required")
	errManagerRequired = errors.New("manager role required")
)

type UserGetter interface {
	GetUser(ctx context.Context, id uint) (domain.User, error)
}

// RequireManager gates a route group behind the manager role. Must be
// mounted after VerifyJWT. The role is read from the database rather
// than the token so revoking the flag takes effect immediately.
func RequireManager(users UserGetter) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		userID, exists := ctx.Get(ContextKeyUserID)
		if !exists {
			response.RenderErr(ctx, response.ErrUnauthorized(errAuthRequired))

			return
		}

		user, err := users.GetUser(ctx.Request.Context(), userID.(uint))
		if err != nil {
			response.RenderErr(ctx, response.ErrUnauthorized(errAuthRequired))

			return
		}

		if !user.IsManager {
			response.RenderErr(ctx, response.ErrPermissionDenied(errManagerRequired))

			return
		}

		ctx.Next()
	}
}
