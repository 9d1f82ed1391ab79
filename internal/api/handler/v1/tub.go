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

type TubService interface {
	CreateTub(ctx context.Context, tub domain.Tub) (domain.Tub, error)
	GetTub(ctx context.Context, id uint) (domain.Tub, error)
	ListTubs(ctx context.Context) ([]domain.Tub, error)
	UpdateTub(ctx context.Context, tub domain.Tub) (domain.Tub, error)
	DeleteTub(ctx context.Context, id uint) error
}

type TubHandler struct {
	svc TubService
}

func NewTubHandler(svc TubService) *TubHandler {
	return &TubHandler{
		svc: svc,
	}
}

// HandleListTubs godoc
// @Summary      List all tubs
// @Tags         tubs
// @Produce      json
// @Success      200  {array}   domain.Tub
// @Failure      500  {object}  response.Err
// @Router       /tubs [get]
func (h *TubHandler) HandleListTubs(ctx *gin.Context) {
	tubs, err := h.svc.ListTubs(ctx.Request.Context())
	if err != nil {
		if errors.Is(err, service.ErrStorageUnavailable) {
			response.RenderErr(ctx, response.ErrServiceUnavailable(err))

			return
		}

		err = fmt.Errorf("v1.HandleListTubs -> h.svc.ListTubs -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, tubs)
}

// HandleGetTub godoc
// @Summary      Get a tub
// @Tags         tubs
// @Produce      json
// @Param        tubID  path      int  true  "Tub ID"
// @Success      200    {object}  domain.Tub
// @Failure      404    {object}  response.Err
// @Router       /tubs/{tubID} [get]
func (h *TubHandler) HandleGetTub(ctx *gin.Context) {
	tubID, err := parseIDParam(ctx, "tubID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	tub, err := h.svc.GetTub(ctx.Request.Context(), tubID)
	if err != nil {
		if errors.Is(err, service.ErrTubNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("tub", "ID", tubID))

			return
		}

		err = fmt.Errorf("v1.HandleGetTub -> h.svc.GetTub -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, tub)
}

// HandleCreateTub godoc
// @Summary      Add a tub to the catalog
// @Tags         tubs
// @Accept       json
// @Produce      json
// @Param        input  body      request.TubRequest  true  "Tub details"
// @Success      201    {object}  domain.Tub
// @Failure      400    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /tubs [post]
// @Security     BearerAuth
func (h *TubHandler) HandleCreateTub(ctx *gin.Context) {
	var req request.TubRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	tub, err := h.svc.CreateTub(ctx.Request.Context(), domain.Tub{
		Name:         req.Name,
		Description:  req.Description,
		PricePerDay:  req.PricePerDay,
		PricePerWeek: req.PricePerWeek,
		LogoImg:      req.LogoImg,
	})
	if err != nil {
		err = fmt.Errorf("v1.HandleCreateTub -> h.svc.CreateTub -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusCreated, tub)
}

// HandleUpdateTub godoc
// @Summary      Update catalog fields of a tub
// @Tags         tubs
// @Accept       json
// @Produce      json
// @Param        tubID  path      int                 true  "Tub ID"
// @Param        input  body      request.TubRequest  true  "Tub details"
// @Success      200    {object}  domain.Tub
// @Failure      400    {object}  response.Err
// @Failure      404    {object}  response.Err
// @Router       /tubs/{tubID} [put]
// @Security     BearerAuth
func (h *TubHandler) HandleUpdateTub(ctx *gin.Context) {
	tubID, err := parseIDParam(ctx, "tubID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	var req request.TubRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	tub, err := h.svc.UpdateTub(ctx.Request.Context(), domain.Tub{
		ID:           tubID,
		Name:         req.Name,
		Description:  req.Description,
		PricePerDay:  req.PricePerDay,
		PricePerWeek: req.PricePerWeek,
		LogoImg:      req.LogoImg,
	})
	if err != nil {
		if errors.Is(err, service.ErrTubNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("tub", "ID", tubID))

			return
		}

		err = fmt.Errorf("v1.HandleUpdateTub -> h.svc.UpdateTub -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, tub)
}

// HandleDeleteTub godoc
// @Summary      Delete a tub
// @Tags         tubs
// @Produce      json
// @Param        tubID  path  int  true  "Tub ID"
// @Success      204
// @Failure      404    {object}  response.Err
// @Router       /tubs/{tubID} [delete]
// @Security     BearerAuth
func (h *TubHandler) HandleDeleteTub(ctx *gin.Context) {
	tubID, err := parseIDParam(ctx, "tubID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := h.svc.DeleteTub(ctx.Request.Context(), tubID); err != nil {
		if errors.Is(err, service.ErrTubNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("tub", "ID", tubID))

			return
		}

		err = fmt.Errorf("v1.HandleDeleteTub -> h.svc.DeleteTub -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.Status(http.StatusNoContent)
}
