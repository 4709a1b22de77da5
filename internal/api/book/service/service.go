package bookService

import (
	"context"
	"edushelf/internal/api/book"
	"edushelf/pkg/catalog"

	"github.com/sirupsen/logrus"
)

type IBookService interface {
	ListBooks(ctx context.Context) *book.BookListResponse
	SearchBooks(ctx context.Context, query string) (*book.BookSearchResponse, error)
}

type bookService struct {
	log     *logrus.Logger
	catalog catalog.ICatalog
}

func NewBookService(log *logrus.Logger, c catalog.ICatalog) IBookService {
	return &bookService{
		log:     log,
		catalog: c,
	}
}
