package bookHandler

import (
	contextPkg "edushelf/pkg/context"
	"edushelf/pkg/handlerUtil"
	"edushelf/pkg/log"

	"github.com/gofiber/fiber/v2"
)

func (h *BookHandler) GetAllBooks(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing get all books request")

	result := h.bookService.ListBooks(contextPkg.FromFiberCtx(ctx))

	return errHandler.HandleSuccess(ctx, fiber.StatusOK, result)
}

func (h *BookHandler) SearchBooks(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	errHandler := handlerUtil.New(h.log)

	query := ctx.Params("query")

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
		"query":      query,
	}).Debug("Processing search books request")

	result, err := h.bookService.SearchBooks(contextPkg.FromFiberCtx(ctx), query)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "search_books")
	}

	return errHandler.HandleSuccess(ctx, fiber.StatusOK, result)
}
