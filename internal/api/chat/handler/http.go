package chatHandler

import (
	chatService "edushelf/internal/api/chat/service"
	"edushelf/internal/middleware"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/sirupsen/logrus"
)

type ChatHandler struct {
	log         *logrus.Logger
	validator   *validator.Validate
	middleware  middleware.Middleware
	chatService chatService.IChatService
	timeout     time.Duration
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	cs chatService.IChatService,
) *ChatHandler {
	return &ChatHandler{
		log:         log,
		validator:   validate,
		middleware:  middleware,
		chatService: cs,
		timeout:     requestTimeout,
	}
}

func (h *ChatHandler) Start(srv fiber.Router) {
	chat := srv.Group("/chat")

	chat.Post("", h.middleware.NewRateLimiter, h.Chat)
	chat.Post("/sessions", h.NewSession)
	chat.Get("/history/:session_id", h.GetHistory)

	chat.Get("/ws", h.middleware.NewRateLimiter, h.UpgradeSocket, websocket.New(h.ChatSocket))
}
