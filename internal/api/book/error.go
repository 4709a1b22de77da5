package book

import "edushelf/pkg/response"

var (
	ErrInvalidQuery = response.NewError(400, "invalid search query")
)
