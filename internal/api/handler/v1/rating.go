package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tubhub/tubhub-api/internal/api/handler/v1/request"
	"github.com/tubhub/tubhub-api/internal/api/handler/v1/response"
	"github.com/tubhub/tubhub-api/internal/domain"
	"github.com/tubhub/tubhub-api/internal/service"
)

type RatingService interface {
	Rate(ctx context.Context, userID, tubID uint, stars int) (domain.Rating, bool, error)
	ListForTub(ctx context.Context, tubID uint) ([]domain.Rating, error)
}

type RatingHandler struct {
	svc  RatingService
	uSvc UserService
}

func NewRatingHandler(svc RatingService, uSvc UserService) *RatingHandler {
	return &RatingHandler{
		svc:  svc,
		uSvc: uSvc,
	}
}

// HandleCreateRating godoc
// @Summary      Rate a tub
// @Description  Creates the caller's rating for a tub, or overwrites the stars of an existing one. Both outcomes return 200, distinguished by message.
// @Tags         ratings
// @Accept       json
// @Produce      json
// @Param        tubID  path      int                         true  "Tub ID"
// @Param        input  body      request.CreateRatingRequest true  "Stars"
// @Success      200    {object}  response.RatingResponse
// @Failure      400    {object}  response.Err
// @Failure      401    {object}  response.Err
// @Failure      404    {object}  response.Err
// @Router       /tubs/{tubID}/ratings [post]
// @Security     BearerAuth
func (h *RatingHandler) HandleCreateRating(ctx *gin.Context) {
	tubID, err := parseIDParam(ctx, "tubID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	var req request.CreateRatingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)

		return
	}

	rating, created, err := h.svc.Rate(ctx.Request.Context(), user.ID, tubID, *req.Stars)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTubNotFound):
			response.RenderErr(ctx, response.ErrNotFound("tub", "ID", tubID))
		case errors.Is(err, service.ErrStarsOutOfRange):
			response.RenderErr(ctx, response.ErrBadRequest(err))
		case errors.Is(err, service.ErrRatingConflict):
			response.RenderErr(ctx, response.ErrConflict(err))
		default:
			err = fmt.Errorf("v1.HandleCreateRating -> h.svc.Rate -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}

		return
	}

	message := "Rating updated"
	if created {
		message = "Rating created"
	}

	ctx.JSON(http.StatusOK, response.RatingResponse{
		Message: message,
		Result:  rating,
	})
}

// HandleListRatings godoc
// @Summary      List ratings of a tub
// @Tags         ratings
// @Produce      json
// @Param        tubID  path      int  true  "Tub ID"
// @Success      200    {array}   domain.Rating
// @Failure      404    {object}  response.Err
// @Router       /tubs/{tubID}/ratings [get]
func (h *RatingHandler) HandleListRatings(ctx *gin.Context) {
	tubID, err := parseIDParam(ctx, "tubID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	ratings, err := h.svc.ListForTub(ctx.Request.Context(), tubID)
	if err != nil {
		if errors.Is(err, service.ErrTubNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("tub", "ID", tubID))

			return
		}

		err = fmt.Errorf("v1.HandleListRatings -> h.svc.ListForTub -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, ratings)
}
