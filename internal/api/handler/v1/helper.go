package v1

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/tubhub/tubhub-api/internal/api/handler/v1/response"
	"github.com/tubhub/tubhub-api/internal/api/middleware"
	"github.com/tubhub/tubhub-api/internal/domain"
)

var errNotAuthenticated = errors.New("authentication required")

func getUserFromContext(ctx *gin.Context, uSvc UserService) (domain.User, *response.Err) {
	userID, exists := ctx.Get(middleware.ContextKeyUserID)
	if !exists {
		return domain.User{}, response.ErrUnauthorized(errNotAuthenticated)
	}

	user, err := uSvc.GetUser(ctx.Request.Context(), userID.(uint))
	if err != nil {
		return domain.User{}, response.ErrUnauthorized(errNotAuthenticated)
	}

	return user, nil
}

// optionalUserFromContext resolves the caller when a token was
// presented; anonymous callers get nil.
func optionalUserFromContext(ctx *gin.Context, uSvc UserService) *domain.User {
	userID, exists := ctx.Get(middleware.ContextKeyUserID)
	if !exists {
		return nil
	}

	user, err := uSvc.GetUser(ctx.Request.Context(), userID.(uint))
	if err != nil {
		return nil
	}

	return &user
}

func parseIDParam(ctx *gin.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(ctx.Param(name), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %v: %w", name, err)
	}

	return uint(id), nil
}
