package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tubhub/tubhub-api/internal/api/handler/v1/response"
	"github.com/tubhub/tubhub-api/internal/domain"
	"github.com/tubhub/tubhub-api/internal/service"
)

type UserService interface {
	GetUser(ctx context.Context, id uint) (domain.User, error)
}

type UserReservationService interface {
	ListForUser(ctx context.Context, userID uint) ([]domain.Reservation, error)
}

type UserHandler struct {
	svc    UserService
	resSvc UserReservationService
}

func NewUserHandler(svc UserService, resSvc UserReservationService) *UserHandler {
	return &UserHandler{
		svc:    svc,
		resSvc: resSvc,
	}
}

// HandleGetUser godoc
// @Summary      Get a user profile by ID
// @Tags         users
// @Produce      json
// @Param        userID   path      int  true  "User ID"
// @Success      200      {object}  domain.User
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /users/{userID} [get]
// @Security     BearerAuth
func (h *UserHandler) HandleGetUser(ctx *gin.Context) {
	userID, err := parseIDParam(ctx, "userID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	user, err := h.svc.GetUser(ctx.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("user", "ID", userID))

			return
		}

		err = fmt.Errorf("v1.HandleGetUser -> h.svc.GetUser -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, user)
}

// HandleGetProfile godoc
// @Summary      Get the authenticated user's profile
// @Tags         users
// @Produce      json
// @Success      200  {object}  domain.User
// @Failure      401  {object}  response.Err
// @Router       /profile [get]
// @Security     BearerAuth
func (h *UserHandler) HandleGetProfile(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.svc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)

		return
	}

	ctx.JSON(http.StatusOK, user)
}

// HandleGetProfileReservations godoc
// @Summary      Get the authenticated user's reservation history
// @Tags         users,reservations
// @Produce      json
// @Success      200  {array}   domain.Reservation
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /profile/reservations [get]
// @Security     BearerAuth
func (h *UserHandler) HandleGetProfileReservations(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.svc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)

		return
	}

	reservations, err := h.resSvc.ListForUser(ctx.Request.Context(), user.ID)
	if err != nil {
		err = fmt.Errorf("v1.HandleGetProfileReservations -> h.resSvc.ListForUser -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, reservations)
}
