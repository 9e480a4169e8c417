package controller

import (
	"merchant-dashboard-be/internal/pkg/serverutils"
	"merchant-dashboard-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IMerchantController interface {
	RegisterRoutes(r fiber.Router)
	GetResource(ctx *fiber.Ctx) error
}

type merchantController struct {
	merchantService service.IMerchantService
}

func NewMerchantController(merchantService service.IMerchantService) IMerchantController {
	return &merchantController{
		merchantService: merchantService,
	}
}

func (c *merchantController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/merchant/v1")
	h.Get(":id/:resource", c.GetResource)
}

func (c *merchantController) GetResource(ctx *fiber.Ctx) error {
	merchantId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return serverutils.NewApiError(fiber.StatusBadRequest, "Invalid merchant id")
	}

	res, err := c.merchantService.GetResource(ctx.Context(), merchantId, ctx.Params("resource"))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get merchant resource", res))
}
