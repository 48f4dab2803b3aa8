package handler

import (
	"promptlink-be/internal/pkg/logger"
	"promptlink-be/internal/repository/memory"
	internalWS "promptlink-be/internal/websocket"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

// SessionStreamHandler exposes a websocket per session that relays the
// progress events the workers publish. The polling endpoints stay the source
// of truth; the stream just saves the frontend from hammering them.
type SessionStreamHandler struct {
	sessions *memory.SessionRepository
	hub      *internalWS.Hub
	logger   logger.ILogger
}

func NewSessionStreamHandler(sessions *memory.SessionRepository, hub *internalWS.Hub, log logger.ILogger) *SessionStreamHandler {
	return &SessionStreamHandler{
		sessions: sessions,
		hub:      hub,
		logger:   log,
	}
}

// ServeWs upgrades the connection and attaches it to the hub as a watcher of
// the requested session.
func (h *SessionStreamHandler) ServeWs(c *fiber.Ctx) error {
	sessionID := c.Params("session_id")
	if _, found := h.sessions.Get(sessionID); !found {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"status":  "error",
			"message": "Session not found",
		})
	}

	if websocket.IsWebSocketUpgrade(c) {
		return websocket.New(func(conn *websocket.Conn) {
			h.logger.Info("SessionStream", "Watcher connected", map[string]interface{}{"session_id": sessionID})
			internalWS.ServeWs(h.hub, conn, sessionID)
			h.logger.Info("SessionStream", "Watcher disconnected", map[string]interface{}{"session_id": sessionID})
		})(c)
	}
	return fiber.ErrUpgradeRequired
}

// RegisterRoutes registers the stream route.
func (h *SessionStreamHandler) RegisterRoutes(router fiber.Router) {
	relay := router.Group("/revolutionary-relay")
	relay.Get("/ws/:session_id", h.ServeWs)
}
