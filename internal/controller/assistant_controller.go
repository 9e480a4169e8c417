package controller

import (
	"merchant-dashboard-be/internal/dto"
	"merchant-dashboard-be/internal/pkg/serverutils"
	"merchant-dashboard-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

// HeaderSessionId scopes the staging mailbox to one browser session.
const HeaderSessionId = "X-Session-Id"

type IAssistantController interface {
	RegisterRoutes(r fiber.Router)
	Chat(ctx *fiber.Ctx) error
	Navigate(ctx *fiber.Ctx) error
	Dismiss(ctx *fiber.Ctx) error
}

type assistantController struct {
	assistantService service.IAssistantService
}

func NewAssistantController(assistantService service.IAssistantService) IAssistantController {
	return &assistantController{
		assistantService: assistantService,
	}
}

func (c *assistantController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/assistant/v1")
	h.Post("chat", c.Chat)
	h.Post("navigate", c.Navigate)
	h.Post("dismiss", c.Dismiss)
}

func (c *assistantController) Chat(ctx *fiber.Ctx) error {
	sessionId, err := sessionIdFrom(ctx)
	if err != nil {
		return err
	}

	var req dto.ChatRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.assistantService.Chat(ctx.Context(), sessionId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success process chat", res))
}

func (c *assistantController) Navigate(ctx *fiber.Ctx) error {
	sessionId, err := sessionIdFrom(ctx)
	if err != nil {
		return err
	}

	var req dto.NavigateRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.assistantService.Navigate(ctx.Context(), sessionId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success stage navigation", res))
}

func (c *assistantController) Dismiss(ctx *fiber.Ctx) error {
	sessionId, err := sessionIdFrom(ctx)
	if err != nil {
		return err
	}

	res, err := c.assistantService.Dismiss(ctx.Context(), sessionId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success dismiss staged data", res))
}

func sessionIdFrom(ctx *fiber.Ctx) (string, error) {
	sessionId := ctx.Get(HeaderSessionId)
	if sessionId == "" {
		return "", serverutils.NewApiError(fiber.StatusBadRequest, "Missing "+HeaderSessionId+" header")
	}
	return sessionId, nil
}
