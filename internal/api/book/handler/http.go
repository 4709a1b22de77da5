package bookHandler

import (
	bookService "edushelf/internal/api/book/service"
	"edushelf/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type BookHandler struct {
	log         *logrus.Logger
	middleware  middleware.Middleware
	bookService bookService.IBookService
}

func New(
	log *logrus.Logger,
	middleware middleware.Middleware,
	bs bookService.IBookService,
) *BookHandler {
	return &BookHandler{
		log:         log,
		middleware:  middleware,
		bookService: bs,
	}
}

func (h *BookHandler) Start(srv fiber.Router) {
	books := srv.Group("/books")

	books.Get("", h.GetAllBooks)
	books.Get("/search/:query", h.SearchBooks)
}
