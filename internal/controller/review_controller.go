package controller

import (
	"merchant-dashboard-be/internal/dto"
	"merchant-dashboard-be/internal/pkg/serverutils"
	"merchant-dashboard-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IReviewController interface {
	RegisterRoutes(r fiber.Router)
	Open(ctx *fiber.Ctx) error
	Toggle(ctx *fiber.Ctx) error
	Apply(ctx *fiber.Ctx) error
	Cancel(ctx *fiber.Ctx) error
}

type reviewController struct {
	reviewService service.IReviewService
}

func NewReviewController(reviewService service.IReviewService) IReviewController {
	return &reviewController{
		reviewService: reviewService,
	}
}

func (c *reviewController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/review/v1")
	h.Get(":sessionId", c.Open)
	h.Post(":sessionId/toggle", c.Toggle)
	h.Post(":sessionId/apply", c.Apply)
	h.Post(":sessionId/cancel", c.Cancel)
}

func (c *reviewController) Open(ctx *fiber.Ctx) error {
	res, err := c.reviewService.Open(ctx.Context(), ctx.Params("sessionId"))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get review state", res))
}

func (c *reviewController) Toggle(ctx *fiber.Ctx) error {
	var req dto.ToggleRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.reviewService.Toggle(ctx.Context(), ctx.Params("sessionId"), req.Key)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success toggle change", res))
}

func (c *reviewController) Apply(ctx *fiber.Ctx) error {
	var req dto.ApplyRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	merchantId, err := uuid.Parse(req.MerchantId)
	if err != nil {
		return serverutils.NewApiError(fiber.StatusBadRequest, "Invalid merchant id")
	}

	res, err := c.reviewService.Apply(ctx.Context(), ctx.Params("sessionId"), merchantId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success apply changes", res))
}

func (c *reviewController) Cancel(ctx *fiber.Ctx) error {
	if err := c.reviewService.Cancel(ctx.Context(), ctx.Params("sessionId")); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success cancel review", nil))
}
