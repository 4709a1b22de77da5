package book

type BookResponse struct {
	Title        string `json:"title"`
	Subject      string `json:"subject"`
	Description  string `json:"description"`
	Availability string `json:"availability"`
}

type BookListResponse struct {
	Books []BookResponse `json:"books"`
}

type BookSearchResponse struct {
	Books []BookResponse `json:"books"`
	Query string         `json:"query"`
	Count int            `json:"count"`
}
