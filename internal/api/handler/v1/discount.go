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

type DiscountService interface {
	CreateDiscount(ctx context.Context, discount domain.Discount) (domain.Discount, error)
	GetDiscount(ctx context.Context, id uint) (domain.Discount, error)
	ListDiscounts(ctx context.Context) ([]domain.Discount, error)
	UpdateDiscount(ctx context.Context, discount domain.Discount) (domain.Discount, error)
	DeleteDiscount(ctx context.Context, id uint) error
}

type DiscountHandler struct {
	svc DiscountService
}

func NewDiscountHandler(svc DiscountService) *DiscountHandler {
	return &DiscountHandler{
		svc: svc,
	}
}

// HandleListDiscounts godoc
// @Summary      List all discount codes
// @Tags         discounts
// @Produce      json
// @Success      200  {array}   domain.Discount
// @Failure      500  {object}  response.Err
// @Router       /discounts [get]
// @Security     BearerAuth
func (h *DiscountHandler) HandleListDiscounts(ctx *gin.Context) {
	discounts, err := h.svc.ListDiscounts(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListDiscounts -> h.svc.ListDiscounts -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, discounts)
}

// HandleGetDiscount godoc
// @Summary      Get a discount code
// @Tags         discounts
// @Produce      json
// @Param        discountID  path      int  true  "Discount ID"
// @Success      200         {object}  domain.Discount
// @Failure      404         {object}  response.Err
// @Router       /discounts/{discountID} [get]
// @Security     BearerAuth
func (h *DiscountHandler) HandleGetDiscount(ctx *gin.Context) {
	discountID, err := parseIDParam(ctx, "discountID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	discount, err := h.svc.GetDiscount(ctx.Request.Context(), discountID)
	if err != nil {
		if errors.Is(err, service.ErrDiscountNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("discount", "ID", discountID))

			return
		}

		err = fmt.Errorf("v1.HandleGetDiscount -> h.svc.GetDiscount -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, discount)
}

// HandleCreateDiscount godoc
// @Summary      Create a discount code
// @Tags         discounts
// @Accept       json
// @Produce      json
// @Param        input  body      request.DiscountRequest  true  "Discount details"
// @Success      201    {object}  domain.Discount
// @Failure      400    {object}  response.Err
// @Failure      403    {object}  response.Err
// @Router       /discounts [post]
// @Security     BearerAuth
func (h *DiscountHandler) HandleCreateDiscount(ctx *gin.Context) {
	var req request.DiscountRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	discount, err := h.svc.CreateDiscount(ctx.Request.Context(), domain.Discount{
		TubID:      req.TubID,
		Code:       req.Main,
		Active:     req.Active,
		Used:       req.Used,
		IsMultiUse: req.IsMultiUse,
		Value:      req.Value,
	})
	if err != nil {
		err = fmt.Errorf("v1.HandleCreateDiscount -> h.svc.CreateDiscount -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusCreated, discount)
}

// HandleUpdateDiscount godoc
// @Summary      Update a discount code
// @Tags         discounts
// @Accept       json
// @Produce      json
// @Param        discountID  path      int                      true  "Discount ID"
// @Param        input       body      request.DiscountRequest  true  "Discount details"
// @Success      200         {object}  domain.Discount
// @Failure      400         {object}  response.Err
// @Failure      404         {object}  response.Err
// @Router       /discounts/{discountID} [put]
// @Security     BearerAuth
func (h *DiscountHandler) HandleUpdateDiscount(ctx *gin.Context) {
	discountID, err := parseIDParam(ctx, "discountID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	var req request.DiscountRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	discount, err := h.svc.UpdateDiscount(ctx.Request.Context(), domain.Discount{
		ID:         discountID,
		TubID:      req.TubID,
		Code:       req.Main,
		Active:     req.Active,
		Used:       req.Used,
		IsMultiUse: req.IsMultiUse,
		Value:      req.Value,
	})
	if err != nil {
		if errors.Is(err, service.ErrDiscountNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("discount", "ID", discountID))

			return
		}

		err = fmt.Errorf("v1.HandleUpdateDiscount -> h.svc.UpdateDiscount -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, discount)
}

// HandleDeleteDiscount godoc
// @Summary      Delete a discount code
// @Tags         discounts
// @Produce      json
// @Param        discountID  path  int  true  "Discount ID"
// @Success      204
// @Failure      404  {object}  response.Err
// @Router       /discounts/{discountID} [delete]
// @Security     BearerAuth
func (h *DiscountHandler) HandleDeleteDiscount(ctx *gin.Context) {
	discountID, err := parseIDParam(ctx, "discountID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := h.svc.DeleteDiscount(ctx.Request.Context(), discountID); err != nil {
		if errors.Is(err, service.ErrDiscountNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("discount", "ID", discountID))

			return
		}

		err = fmt.Errorf("v1.HandleDeleteDiscount -> h.svc.DeleteDiscount -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.Status(http.StatusNoContent)
}
