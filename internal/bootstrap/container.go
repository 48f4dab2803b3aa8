package bootstrap

import (
	"time"

	"promptlink-be/internal/config"
	"promptlink-be/internal/controller"
	"promptlink-be/internal/handler"
	"promptlink-be/internal/pkg/logger"
	"promptlink-be/internal/repository/memory"
	"promptlink-be/internal/service"
	"promptlink-be/internal/websocket"
	"promptlink-be/pkg/events"
	"promptlink-be/pkg/llm/openrouter"
	"promptlink-be/pkg/relay"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type Container struct {
	// Controllers
	RelayController controller.IRelayController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	// WebSockets
	SessionStreamHandler *handler.SessionStreamHandler
	WebSocketHub         *websocket.Hub
}

func NewContainer(cfg *config.Config) *Container {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")
	eventLogger := logger.NewIsolatedLogger(cfg.App.EventLogFilePath)

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)
	publisher := events.NewChannelPublisher(pubSub, eventLogger)

	// 3. Relay pipeline
	provider := openrouter.NewOpenRouterProvider(
		cfg.Keys.OpenRouter,
		cfg.Relay.BaseURL,
		cfg.Relay.Referer,
		cfg.Relay.Title,
		cfg.Relay.RequestTimeout,
	)
	gateway := relay.NewGateway(provider, sysLogger, cfg.Relay.RequestTimeout)
	runner := relay.NewRunner(gateway, sysLogger, publisher, cfg.Relay.StepPause)

	// 4. In-Memory Session Storage
	sessionRepo := memory.NewSessionRepository()

	// 5. Services
	relayService := service.NewRelayService(
		sessionRepo,
		runner,
		sysLogger,
		time.Duration(cfg.Relay.SessionTTLHours)*time.Hour,
	)

	// 6. WebSocket progress stream
	hub := websocket.NewHub(eventLogger)
	go hub.Run()

	consumerService := service.NewConsumerService(pubSub, hub, eventLogger)

	// 7. Controllers & Handlers
	relayController := controller.NewRelayController(relayService)
	streamHandler := handler.NewSessionStreamHandler(sessionRepo, hub, sysLogger)

	return &Container{
		RelayController:      relayController,
		ConsumerService:      consumerService,
		SessionStreamHandler: streamHandler,
		WebSocketHub:         hub,
	}
}
