package controller

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"merchant-dashboard-be/internal/dto"
	"merchant-dashboard-be/internal/pkg/serverutils"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAssistantService struct {
	chatResponse *dto.ChatResponse
	chatErr      error
}

func (s *stubAssistantService) Chat(ctx context.Context, sessionId string, req *dto.ChatRequest) (*dto.ChatResponse, error) {
	return s.chatResponse, s.chatErr
}

func (s *stubAssistantService) Navigate(ctx context.Context, sessionId string, req *dto.NavigateRequest) (*dto.NavigateResponse, error) {
	return nil, nil
}

func (s *stubAssistantService) Dismiss(ctx context.Context, sessionId string) (*dto.ChatResponse, error) {
	return &dto.ChatResponse{Type: "answer", Message: "ok"}, nil
}

func newTestApp(svc *stubAssistantService) *fiber.App {
	app := fiber.New()
	app.Use(serverutils.ErrorHandlerMiddleware())
	api := app.Group("/api")
	NewAssistantController(svc).RegisterRoutes(api)
	return app
}

func TestChatRequiresSessionHeader(t *testing.T) {
	app := newTestApp(&stubAssistantService{})

	req := httptest.NewRequest("POST", "/api/assistant/v1/chat", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")

	res, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, res.StatusCode)
}

func TestChatReturnsServicePayload(t *testing.T) {
	app := newTestApp(&stubAssistantService{
		chatResponse: &dto.ChatResponse{Type: "answer", Message: "hello"},
	})

	body := `{"merchant_id":"7f8b7a3e-42c1-4f8f-9d51-0af1c2f5a111","message":"hi"}`
	req := httptest.NewRequest("POST", "/api/assistant/v1/chat", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(HeaderSessionId, "session-1")

	res, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, res.StatusCode)

	raw, err := io.ReadAll(res.Body)
	require.NoError(t, err)

	var envelope struct {
		Success bool             `json:"success"`
		Data    dto.ChatResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(raw, &envelope))
	assert.True(t, envelope.Success)
	assert.Equal(t, "answer", envelope.Data.Type)
	assert.Equal(t, "hello", envelope.Data.Message)
}

func TestChatBusySessionMapsTo409(t *testing.T) {
	app := newTestApp(&stubAssistantService{
		chatErr: serverutils.NewApiError(fiber.StatusConflict, "busy"),
	})

	body := `{"merchant_id":"7f8b7a3e-42c1-4f8f-9d51-0af1c2f5a111","message":"hi"}`
	req := httptest.NewRequest("POST", "/api/assistant/v1/chat", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(HeaderSessionId, "session-1")

	res, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusConflict, res.StatusCode)
}

func TestChatValidatesBody(t *testing.T) {
	app := newTestApp(&stubAssistantService{})

	// merchant_id is required and must be a uuid.
	req := httptest.NewRequest("POST", "/api/assistant/v1/chat", strings.NewReader(`{"message":"hi"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(HeaderSessionId, "session-1")

	res, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, res.StatusCode)
}
