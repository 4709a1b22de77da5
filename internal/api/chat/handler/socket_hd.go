package chatHandler

import (
	"edushelf/internal/api/chat"
	contextPkg "edushelf/pkg/context"
	"edushelf/pkg/handlerUtil"
	"edushelf/pkg/log"
	"edushelf/pkg/response"
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"golang.org/x/net/context"
)

const (
	localSessionID = "ws_session_id"
	localRequestID = "ws_request_id"
)

// UpgradeSocket rejects plain HTTP requests and requests without a
// session before the websocket handshake.
func (h *ChatHandler) UpgradeSocket(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	errHandler := handlerUtil.New(h.log)

	if !websocket.IsWebSocketUpgrade(ctx) {
		return ctx.Status(fiber.StatusUpgradeRequired).JSON(handlerUtil.ErrorResponse{
			Error: "Websocket upgrade required",
			Code:  "UPGRADE_REQUIRED",
		})
	}

	sessionID := ctx.Query("session_id")
	if err := h.validator.Var(sessionID, "required,max=128"); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, errors.New("session_id query parameter is required"), ctx.Path())
	}

	ctx.Locals(localSessionID, sessionID)
	ctx.Locals(localRequestID, requestID)
	return ctx.Next()
}

// ChatSocket answers every text frame with a JSON chat response and persists
// the exchange exactly like the REST endpoint.
func (h *ChatHandler) ChatSocket(conn *websocket.Conn) {
	sessionID, _ := conn.Locals(localSessionID).(string)
	requestID, _ := conn.Locals(localRequestID).(string)

	fields := log.Fields{
		"request_id": requestID,
		"session_id": sessionID,
	}
	h.log.WithFields(fields).Info("Chat socket opened")
	defer h.log.WithFields(fields).Info("Chat socket closed")

	// The socket runs outside Fiber's recover middleware.
	defer func() {
		if r := recover(); r != nil {
			h.log.WithFields(fields).WithField("panic", fmt.Sprint(r)).Error("Chat socket panicked")
			_ = conn.WriteMessage(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseInternalServerErr, "internal error"))
		}
	}()

	for {
		messageType, payload, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.log.WithFields(fields).WithField("error", err.Error()).Warn("Chat socket read failed")
			}
			return
		}
		if messageType != websocket.TextMessage {
			continue
		}

		req := chat.ChatRequest{Message: string(payload), SessionID: sessionID}
		if err := h.validator.Struct(req); err != nil {
			if err := conn.WriteJSON(handlerUtil.ErrorResponse{Error: "Validation failed: " + err.Error(), Code: "VALIDATION_ERROR"}); err != nil {
				return
			}
			continue
		}

		ctx, cancel := context.WithTimeout(contextPkg.WithRequestID(context.Background(), requestID), h.timeout)
		result, err := h.chatService.Chat(ctx, req)
		cancel()

		if err != nil {
			h.log.WithFields(fields).WithFields(log.Fields{
				"error":  err.Error(),
				"status": response.StatusCode(err),
			}).Error("Chat socket message failed")
			if err := conn.WriteJSON(handlerUtil.ErrorResponse{Error: "Chat processing failed", Code: "CHAT_FAILED"}); err != nil {
				return
			}
			continue
		}

		if err := conn.WriteJSON(result); err != nil {
			h.log.WithFields(fields).WithField("error", err.Error()).Warn("Chat socket write failed")
			return
		}
	}
}
