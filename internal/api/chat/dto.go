package chat

import "time"

type ChatRequest struct {
	Message   string `json:"message" validate:"max=4096"`
	SessionID string `json:"session_id" validate:"required,max=128"`
}

type ChatResponse struct {
	ID        string    `json:"id"`
	Response  string    `json:"response"`
	Timestamp time.Time `json:"timestamp"`
	SessionID string    `json:"session_id"`
}

type ChatMessageResponse struct {
	ID          string    `json:"id"`
	UserMessage string    `json:"user_message"`
	BotResponse string    `json:"bot_response"`
	Timestamp   time.Time `json:"timestamp"`
	SessionID   string    `json:"session_id"`
}

type ChatHistoryResponse struct {
	History []ChatMessageResponse `json:"history"`
}

type SessionResponse struct {
	SessionID string `json:"session_id"`
}
