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

type ReservationService interface {
	Create(ctx context.Context, cmd service.CreateReservationCommand) (service.CreateReservationResult, error)
	Accept(ctx context.Context, id uint) (domain.Reservation, error)
	Delete(ctx context.Context, id uint) error
	ListForTub(ctx context.Context, tubID uint) ([]domain.Reservation, error)
	ListAll(ctx context.Context) ([]domain.Reservation, error)
	ListByStatus(ctx context.Context, accepted bool) ([]domain.Reservation, error)
}

type ReservationHandler struct {
	svc  ReservationService
	uSvc UserService
}

func NewReservationHandler(svc ReservationService, uSvc UserService) *ReservationHandler {
	return &ReservationHandler{
		svc:  svc,
		uSvc: uSvc,
	}
}

// HandleCreateReservation godoc
// @Summary      Book a tub for a date range
// @Description  Creates a pending reservation with its delivery address. An optional discount code is validated and, for single-use codes, consumed atomically with the booking.
// @Tags         reservations
// @Accept       json
// @Produce      json
// @Param        tubID  path      int                               true  "Tub ID"
// @Param        input  body      request.CreateReservationRequest  true  "Reservation details"
// @Success      201    {object}  response.CreateReservationResponse
// @Failure      400    {object}  response.Err
// @Failure      404    {object}  response.Err
// @Failure      503    {object}  response.Err
// @Router       /tubs/{tubID}/reservations [post]
func (h *ReservationHandler) HandleCreateReservation(ctx *gin.Context) {
	tubID, err := parseIDParam(ctx, "tubID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	var req request.CreateReservationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	startDate, endDate, err := req.ParseDates()
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	user := optionalUserFromContext(ctx, h.uSvc)

	result, err := h.svc.Create(ctx.Request.Context(), service.CreateReservationCommand{
		TubID:     tubID,
		User:      user,
		StartDate: startDate,
		EndDate:   endDate,
		Address: domain.Address{
			City:       req.City,
			Street:     req.Street,
			HomeNumber: req.HomeNumber,
		},
		DiscountID:    req.DiscountID,
		PriceOverride: req.CountedPrice,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTubNotFound):
			response.RenderErr(ctx, response.ErrNotFound("tub", "ID", tubID))
		case errors.Is(err, service.ErrMissingDates),
			errors.Is(err, service.ErrInvalidDateRange),
			errors.Is(err, service.ErrReservationOverlap),
			errors.Is(err, service.ErrDiscountNotFound),
			errors.Is(err, service.ErrDiscountWrongTub),
			errors.Is(err, service.ErrDiscountInactive),
			errors.Is(err, service.ErrDiscountAlreadyUsed):
			response.RenderErr(ctx, response.ErrBadRequest(err))
		case errors.Is(err, service.ErrStorageUnavailable):
			response.RenderErr(ctx, response.ErrServiceUnavailable(err))
		default:
			err = fmt.Errorf("v1.HandleCreateReservation -> h.svc.Create -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}

		return
	}

	resp := response.CreateReservationResponse{
		Message: "Reservation created. Wait for acceptance by owner",
		Result:  result.Reservation,
	}
	if result.Discount != nil {
		discounted := result.Reservation.CountedPrice
		original := result.OriginalPrice
		resp.Message = "Reservation created, discount applied successfully. Wait for acceptance by owner"
		resp.DiscountedPricePerDay = &discounted
		resp.OriginalPricePerDay = &original
		resp.DiscountValue = fmt.Sprintf("%d%%", result.Discount.Value)
	}

	ctx.JSON(http.StatusCreated, resp)
}

// HandleCheckReservations godoc
// @Summary      List reservations for a tub
// @Tags         reservations
// @Produce      json
// @Param        tubID  path      int  true  "Tub ID"
// @Success      200    {array}   domain.Reservation
// @Failure      404    {object}  response.Err
// @Router       /tubs/{tubID}/reservations [get]
func (h *ReservationHandler) HandleCheckReservations(ctx *gin.Context) {
	tubID, err := parseIDParam(ctx, "tubID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	reservations, err := h.svc.ListForTub(ctx.Request.Context(), tubID)
	if err != nil {
		if errors.Is(err, service.ErrTubNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("tub", "ID", tubID))

			return
		}

		err = fmt.Errorf("v1.HandleCheckReservations -> h.svc.ListForTub -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, reservations)
}

// HandleListReservations godoc
// @Summary      List all reservations
// @Tags         reservations
// @Produce      json
// @Success      200  {array}   domain.Reservation
// @Failure      500  {object}  response.Err
// @Router       /reservations [get]
// @Security     BearerAuth
func (h *ReservationHandler) HandleListReservations(ctx *gin.Context) {
	reservations, err := h.svc.ListAll(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListReservations -> h.svc.ListAll -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, reservations)
}

// HandleListAcceptedReservations godoc
// @Summary      List accepted reservations
// @Tags         reservations
// @Produce      json
// @Success      200  {array}   domain.Reservation
// @Router       /reservations/accepted [get]
// @Security     BearerAuth
func (h *ReservationHandler) HandleListAcceptedReservations(ctx *gin.Context) {
	h.listByStatus(ctx, true)
}

// HandleListPendingReservations godoc
// @Summary      List reservations still waiting for review
// @Tags         reservations
// @Produce      json
// @Success      200  {array}   domain.Reservation
// @Router       /reservations/pending [get]
// @Security     BearerAuth
func (h *ReservationHandler) HandleListPendingReservations(ctx *gin.Context) {
	h.listByStatus(ctx, false)
}

func (h *ReservationHandler) listByStatus(ctx *gin.Context, accepted bool) {
	reservations, err := h.svc.ListByStatus(ctx.Request.Context(), accepted)
	if err != nil {
		err = fmt.Errorf("v1.listByStatus -> h.svc.ListByStatus -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, reservations)
}

// HandleAcceptReservation godoc
// @Summary      Accept a pending reservation
// @Tags         reservations
// @Produce      json
// @Param        reservationID  path      int  true  "Reservation ID"
// @Success      200  {object}  response.ReservationActionResponse
// @Failure      403  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Router       /reservations/{reservationID}/accept [patch]
// @Security     BearerAuth
func (h *ReservationHandler) HandleAcceptReservation(ctx *gin.Context) {
	reservationID, err := parseIDParam(ctx, "reservationID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	reservation, err := h.svc.Accept(ctx.Request.Context(), reservationID)
	if err != nil {
		if errors.Is(err, service.ErrReservationNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("reservation", "ID", reservationID))

			return
		}

		err = fmt.Errorf("v1.HandleAcceptReservation -> h.svc.Accept -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.ReservationActionResponse{
		Message: "Reservation accepted",
		Result:  reservation,
	})
}

// HandleDeleteReservation godoc
// @Summary      Delete a reservation
// @Description  Hard-deletes the reservation and its address.
// @Tags         reservations
// @Produce      json
// @Param        reservationID  path      int  true  "Reservation ID"
// @Success      200  {object}  response.MessageResponse
// @Failure      403  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Router       /reservations/{reservationID} [delete]
// @Security     BearerAuth
func (h *ReservationHandler) HandleDeleteReservation(ctx *gin.Context) {
	reservationID, err := parseIDParam(ctx, "reservationID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := h.svc.Delete(ctx.Request.Context(), reservationID); err != nil {
		if errors.Is(err, service.ErrReservationNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("reservation", "ID", reservationID))

			return
		}

		err = fmt.Errorf("v1.HandleDeleteReservation -> h.svc.Delete -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.MessageResponse{Message: "Reservation deleted"})
}
