package entity

import "time"

type ChatMessage struct {
	ID          string
	SessionID   string
	UserMessage string
	BotResponse string
	Timestamp   time.Time
}
