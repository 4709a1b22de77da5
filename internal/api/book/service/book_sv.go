package bookService

import (
	"context"
	"edushelf/internal/api/book"
	"edushelf/internal/entity"
	contextPkg "edushelf/pkg/context"
	"unicode/utf8"

	"github.com/sirupsen/logrus"
)

const maxQueryLength = 256

func (s *bookService) ListBooks(ctx context.Context) *book.BookListResponse {
	return &book.BookListResponse{
		Books: toBookResponses(s.catalog.ListAll()),
	}
}

func (s *bookService) SearchBooks(ctx context.Context, query string) (*book.BookSearchResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if !utf8.ValidString(query) || len(query) > maxQueryLength {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"length":     len(query),
		}).Warn("Rejected book search query")
		return nil, book.ErrInvalidQuery
	}

	matches := s.catalog.Search(query)

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"query":      query,
		"count":      len(matches),
	}).Debug("Book search completed")

	return &book.BookSearchResponse{
		Books: toBookResponses(matches),
		Query: query,
		Count: len(matches),
	}, nil
}

func toBookResponses(books []entity.Book) []book.BookResponse {
	out := make([]book.BookResponse, len(books))
	for i, b := range books {
		out[i] = book.BookResponse{
			Title:        b.Title,
			Subject:      b.Subject,
			Description:  b.Description,
			Availability: b.Availability,
		}
	}
	return out
}
