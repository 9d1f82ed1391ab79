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

type FaqService interface {
	SubmitQuestion(ctx context.Context, user *domain.User, question string) (domain.Faq, error)
	TogglePublish(ctx context.Context, id uint) (domain.Faq, error)
	ListPublished(ctx context.Context) ([]domain.Faq, error)
	ListAll(ctx context.Context) ([]domain.Faq, error)
	Update(ctx context.Context, faq domain.Faq) (domain.Faq, error)
}

type FaqHandler struct {
	svc  FaqService
	uSvc UserService
}

func NewFaqHandler(svc FaqService, uSvc UserService) *FaqHandler {
	return &FaqHandler{
		svc:  svc,
		uSvc: uSvc,
	}
}

// HandleSubmitQuestion godoc
// @Summary      Submit a question
// @Description  Creates an unpublished question. Anonymous submissions are accepted; authenticated callers are recorded as the author.
// @Tags         faq
// @Accept       json
// @Produce      json
// @Param        input  body      request.FaqQuestionRequest  true  "Question"
// @Success      201    {object}  domain.Faq
// @Failure      400    {object}  response.Err
// @Router       /faq/question [post]
func (h *FaqHandler) HandleSubmitQuestion(ctx *gin.Context) {
	var req request.FaqQuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	user := optionalUserFromContext(ctx, h.uSvc)

	faq, err := h.svc.SubmitQuestion(ctx.Request.Context(), user, req.Question)
	if err != nil {
		err = fmt.Errorf("v1.HandleSubmitQuestion -> h.svc.SubmitQuestion -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusCreated, faq)
}

// HandleListPublishedFaqs godoc
// @Summary      List published FAQ entries
// @Tags         faq
// @Produce      json
// @Success      200  {array}   domain.Faq
// @Failure      500  {object}  response.Err
// @Router       /faq [get]
func (h *FaqHandler) HandleListPublishedFaqs(ctx *gin.Context) {
	faqs, err := h.svc.ListPublished(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListPublishedFaqs -> h.svc.ListPublished -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, faqs)
}

// HandleListAllFaqs godoc
// @Summary      List all FAQ entries including unpublished
// @Tags         faq
// @Produce      json
// @Success      200  {array}   domain.Faq
// @Failure      403  {object}  response.Err
// @Router       /faq/manage [get]
// @Security     BearerAuth
func (h *FaqHandler) HandleListAllFaqs(ctx *gin.Context) {
	faqs, err := h.svc.ListAll(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListAllFaqs -> h.svc.ListAll -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, faqs)
}

// HandleToggleFaqStatus godoc
// @Summary      Toggle the publish flag of a question
// @Tags         faq
// @Produce      json
// @Param        faqID  path      int  true  "FAQ ID"
// @Success      200    {object}  response.FaqStatusResponse
// @Failure      403    {object}  response.Err
// @Failure      404    {object}  response.Err
// @Router       /faq/manage/{faqID}/status [patch]
// @Security     BearerAuth
func (h *FaqHandler) HandleToggleFaqStatus(ctx *gin.Context) {
	faqID, err := parseIDParam(ctx, "faqID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	faq, err := h.svc.TogglePublish(ctx.Request.Context(), faqID)
	if err != nil {
		if errors.Is(err, service.ErrFaqNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("faq", "ID", faqID))

			return
		}

		err = fmt.Errorf("v1.HandleToggleFaqStatus -> h.svc.TogglePublish -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.FaqStatusResponse{
		Status:      "status changed",
		IsPublished: faq.IsPublished,
	})
}

// HandleUpdateFaq godoc
// @Summary      Update a question, its answer and publish flag
// @Tags         faq
// @Accept       json
// @Produce      json
// @Param        faqID  path      int                       true  "FAQ ID"
// @Param        input  body      request.FaqUpdateRequest  true  "FAQ fields"
// @Success      200    {object}  domain.Faq
// @Failure      400    {object}  response.Err
// @Failure      403    {object}  response.Err
// @Failure      404    {object}  response.Err
// @Router       /faq/manage/{faqID} [put]
// @Security     BearerAuth
func (h *FaqHandler) HandleUpdateFaq(ctx *gin.Context) {
	faqID, err := parseIDParam(ctx, "faqID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	var req request.FaqUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	faq, err := h.svc.Update(ctx.Request.Context(), domain.Faq{
		ID:          faqID,
		Question:    req.Question,
		Answer:      req.Answer,
		IsPublished: req.IsPublished,
	})
	if err != nil {
		if errors.Is(err, service.ErrFaqNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("faq", "ID", faqID))

			return
		}

		err = fmt.Errorf("v1.HandleUpdateFaq -> h.svc.Update -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, faq)
}
