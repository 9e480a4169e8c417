package controller

import (
	"merchant-dashboard-be/internal/dto"
	"merchant-dashboard-be/internal/pkg/serverutils"
	"merchant-dashboard-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IOcrController interface {
	RegisterRoutes(r fiber.Router)
	Recognize(ctx *fiber.Ctx) error
}

type ocrController struct {
	ocrService service.IOcrService
}

func NewOcrController(ocrService service.IOcrService) IOcrController {
	return &ocrController{
		ocrService: ocrService,
	}
}

func (c *ocrController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/ocr/v1")
	h.Post("recognize", c.Recognize)
}

func (c *ocrController) Recognize(ctx *fiber.Ctx) error {
	var req dto.RecognizeRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.ocrService.Recognize(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success recognize document", res))
}
