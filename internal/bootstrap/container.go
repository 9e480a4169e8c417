package bootstrap

import (
	"context"
	"log"

	"merchant-dashboard-be/internal/config"
	"merchant-dashboard-be/internal/controller"
	"merchant-dashboard-be/internal/pkg/logger"
	"merchant-dashboard-be/internal/repository/implementation"
	"merchant-dashboard-be/internal/repository/memory"
	"merchant-dashboard-be/internal/service"
	"merchant-dashboard-be/internal/websocket"
	"merchant-dashboard-be/pkg/genai"
	"merchant-dashboard-be/pkg/ocr"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	MerchantController  controller.IMerchantController
	AssistantController controller.IAssistantController
	ReviewController    controller.IReviewController
	OcrController       controller.IOcrController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	// WebSockets
	WebSocketHub *websocket.Hub

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	merchantRepo := implementation.NewMerchantRepository(db)
	menuRepo := implementation.NewMenuRepository(db)
	stagingRepo := memory.NewStagingRepository()
	reviewRepo := memory.NewReviewRepository()

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 2.5 Infrastructure
	// Redis
	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
	}

	// WebSocket Hub
	wsLogger := logger.NewIsolatedLogger("logs/navigation.log")
	wsHub := websocket.NewHub(rdb, wsLogger)
	go wsHub.Run()

	// Outbound clients
	geminiClient := genai.NewGeminiClient(cfg.Keys.GoogleGemini, cfg.Ai.Model)
	extractor := genai.NewExtractor(geminiClient)
	ocrClient := ocr.NewClient(cfg.Ai.OcrBaseURL)
	log.Printf("[INFO] Using completion model: %s", cfg.Ai.Model)

	// 3. Services
	publisherService := service.NewPublisherService(cfg.Keys.AuditTopic, pubSub)
	consumerService := service.NewConsumerService(pubSub, cfg.Keys.AuditTopic, sysLogger)

	merchantService := service.NewMerchantService(
		merchantRepo,
		menuRepo,
		rdb,
		cfg.Storage.PublicBaseURL,
		sysLogger,
	)
	assistantService := service.NewAssistantService(
		extractor,
		merchantRepo,
		menuRepo,
		stagingRepo,
		reviewRepo,
		publisherService,
		wsHub,
		sysLogger,
	)
	reviewService := service.NewReviewService(
		stagingRepo,
		reviewRepo,
		merchantRepo,
		menuRepo,
		merchantService,
		publisherService,
		sysLogger,
	)
	ocrService := service.NewOcrService(ocrClient, sysLogger)

	// 4. Controllers
	return &Container{
		MerchantController:  controller.NewMerchantController(merchantService),
		AssistantController: controller.NewAssistantController(assistantService),
		ReviewController:    controller.NewReviewController(reviewService),
		OcrController:       controller.NewOcrController(ocrService),

		ConsumerService: consumerService,
		WebSocketHub:    wsHub,
		Logger:          sysLogger,
	}
}
