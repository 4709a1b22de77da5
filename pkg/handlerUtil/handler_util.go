package handlerUtil

import (
	"edushelf/internal/api/book"
	"edushelf/internal/api/chat"
	"edushelf/pkg/log"
	"edushelf/pkg/response"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/sirupsen/logrus"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	TraceID string `json:"trace_id,omitempty"`
}

type ErrorHandler struct {
	logger *logrus.Logger
}

func New(logger *logrus.Logger) *ErrorHandler {
	return &ErrorHandler{
		logger: logger,
	}
}

func (h *ErrorHandler) Handle(c *fiber.Ctx, requestID string, err error, path string, operation string) error {
	fields := log.Fields{
		"request_id": requestID,
		"error":      err.Error(),
		"path":       path,
		"operation":  operation,
	}

	// Chat domain errors
	if errors.Is(err, chat.ErrChatFailed) {
		h.logger.WithFields(fields).Error("Chat processing failed")
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error: "Chat processing failed",
			Code:  "CHAT_FAILED",
		})
	}

	if errors.Is(err, chat.ErrGetHistoryFailed) {
		h.logger.WithFields(fields).Error("Failed to get chat history")
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error: "Failed to get chat history",
			Code:  "HISTORY_FAILED",
		})
	}

	if errors.Is(err, chat.ErrInvalidSessionID) {
		h.logger.WithFields(fields).Warn("Invalid session id")
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "Invalid session id",
			Code:  "INVALID_SESSION_ID",
		})
	}

	// Book domain errors
	if errors.Is(err, book.ErrInvalidQuery) {
		h.logger.WithFields(fields).Warn("Invalid search query")
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "Invalid search query",
			Code:  "INVALID_QUERY",
		})
	}

	var respErr *response.Error
	if errors.As(err, &respErr) {
		h.logger.WithFields(fields).Warn("Operation failed with error response")
		return c.Status(respErr.Code).JSON(ErrorResponse{Error: err.Error()})
	}

	traceID := log.ErrorWithTraceID(fields, "Unexpected error")

	return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
		Error:   "An unexpected error occurred",
		TraceID: traceID,
	})
}

func (h *ErrorHandler) HandleValidationError(c *fiber.Ctx, requestID string, err error, path string) error {
	h.logger.WithFields(log.Fields{
		"request_id": requestID,
		"error":      err.Error(),
		"path":       path,
	}).Warn("Validation failed")

	return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
		Error: "Validation failed: " + err.Error(),
		Code:  "VALIDATION_ERROR",
	})
}

func (h *ErrorHandler) HandleRequestTimeout(c *fiber.Ctx) error {
	return c.Status(fiber.StatusRequestTimeout).JSON(ErrorResponse{
		Error: utils.StatusMessage(fiber.StatusRequestTimeout),
	})
}

func (h *ErrorHandler) HandleSuccess(c *fiber.Ctx, statusCode int, data interface{}) error {
	if data == nil {
		return c.SendStatus(statusCode)
	}
	return c.Status(statusCode).JSON(data)
}
