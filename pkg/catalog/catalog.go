package catalog

import (
	"edushelf/internal/entity"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Fold lowercases s with full Unicode case mapping. A caser is stateful, so
// one is built per call. Catalog keywords, search
// queries and chat text all go through it so that they compare alike.
func Fold(s string) string {
	return cases.Lower(language.Und).String(s)
}

type ICatalog interface {
	ListAll() []entity.Book
	Search(query string) []entity.Book
	Match(text string) []entity.Book
	FindByTitle(title string) (entity.Book, bool)
	MustFindByTitle(title string) entity.Book
	Len() int
}

// Catalog is fixed at construction and never mutated afterwards, so a single
// instance can be shared by every request handler.
type Catalog struct {
	books   []entity.Book
	byTitle map[string]int
}

func New(books []entity.Book) (*Catalog, error) {
	c := &Catalog{
		books:   make([]entity.Book, 0, len(books)),
		byTitle: make(map[string]int, len(books)),
	}

	for _, b := range books {
		if _, exists := c.byTitle[b.Title]; exists {
			return nil, fmt.Errorf("duplicate book title %q", b.Title)
		}

		keywords := make([]string, len(b.Keywords))
		for i, k := range b.Keywords {
			keywords[i] = Fold(k)
		}
		b.Keywords = keywords

		if b.Availability == "" {
			b.Availability = entity.DefaultAvailability
		}

		c.byTitle[b.Title] = len(c.books)
		c.books = append(c.books, b)
	}

	return c, nil
}

// Default returns the reference EDUSHELF catalog.
func Default() *Catalog {
	c, err := New(defaultBooks)
	if err != nil {
		panic(err)
	}
	return c
}

func (c *Catalog) ListAll() []entity.Book {
	return c.clone(c.books)
}

// Search matches case-insensitively against title and subject by substring
// and against keywords by exact token. Results keep catalog order.
func (c *Catalog) Search(query string) []entity.Book {
	q := Fold(query)

	matches := make([]entity.Book, 0)
	for _, b := range c.books {
		if strings.Contains(Fold(b.Title), q) ||
			strings.Contains(Fold(b.Subject), q) ||
			b.HasKeyword(q) {
			matches = append(matches, b)
		}
	}

	return c.clone(matches)
}

// Match returns every book whose keywords occur as substrings of text.
// text is expected to be folded with Fold already.
func (c *Catalog) Match(text string) []entity.Book {
	matches := make([]entity.Book, 0)
	for _, b := range c.books {
		for _, k := range b.Keywords {
			if strings.Contains(text, k) {
				matches = append(matches, b)
				break
			}
		}
	}

	return c.clone(matches)
}

func (c *Catalog) FindByTitle(title string) (entity.Book, bool) {
	idx, ok := c.byTitle[title]
	if !ok {
		return entity.Book{}, false
	}
	return c.clone(c.books[idx : idx+1])[0], true
}

// MustFindByTitle panics when title is not in the catalog. Callers hold
// hardcoded titles, so a miss is a programming error.
func (c *Catalog) MustFindByTitle(title string) entity.Book {
	b, ok := c.FindByTitle(title)
	if !ok {
		panic(fmt.Sprintf("catalog: unknown book title %q", title))
	}
	return b
}

func (c *Catalog) Len() int {
	return len(c.books)
}

func (c *Catalog) clone(books []entity.Book) []entity.Book {
	out := make([]entity.Book, len(books))
	for i, b := range books {
		b.Keywords = append([]string(nil), b.Keywords...)
		out[i] = b
	}
	return out
}
