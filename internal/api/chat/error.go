package chat

import "edushelf/pkg/response"

var (
	ErrChatFailed       = response.NewError(500, "chat processing failed")
	ErrGetHistoryFailed = response.NewError(500, "failed to get chat history")
	ErrCreateSession    = response.NewError(500, "failed to create session")
	ErrInvalidSessionID = response.NewError(400, "invalid session id")
)
