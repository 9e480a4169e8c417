package service

import (
	"context"
	"encoding/base64"

	"merchant-dashboard-be/internal/dto"
	"merchant-dashboard-be/internal/pkg/logger"
	"merchant-dashboard-be/internal/pkg/serverutils"
	"merchant-dashboard-be/pkg/ocr"

	"github.com/gofiber/fiber/v2"
)

type IOcrService interface {
	Recognize(ctx context.Context, req *dto.RecognizeRequest) (*dto.RecognizeResponse, error)
}

// ocrService runs a scanned registration document through the external
// text-recognition service and lifts the known certificate fields out of the
// recognized text. It is a direct pre-fill path: the result is returned to
// the dashboard, not staged for review.
type ocrService struct {
	client *ocr.Client
	logger logger.ILogger
}

func NewOcrService(client *ocr.Client, log logger.ILogger) IOcrService {
	return &ocrService{
		client: client,
		logger: log,
	}
}

func (s *ocrService) Recognize(ctx context.Context, req *dto.RecognizeRequest) (*dto.RecognizeResponse, error) {
	imageBytes, err := base64.StdEncoding.DecodeString(req.Data)
	if err != nil {
		return nil, serverutils.NewApiError(fiber.StatusBadRequest, "Invalid base64 image data")
	}

	text, err := s.client.Recognize(ctx, imageBytes, req.MimeType)
	if err != nil {
		s.logger.Error("OcrService", "Recognition call failed", map[string]interface{}{
			"error": err, "file_name": req.FileName,
		})
		return nil, serverutils.NewApiError(fiber.StatusBadGateway, "Text recognition is unavailable right now. Please try again.")
	}

	return &dto.RecognizeResponse{
		Text:      text,
		Extracted: ocr.ParseRegistrationText(text),
	}, nil
}
