package chatRepository

import (
	"context"
	"database/sql"
	"edushelf/internal/entity"
	contextPkg "edushelf/pkg/context"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type ChatMessageDB struct {
	ID          string         `db:"id"`
	SessionID   string         `db:"session_id"`
	UserMessage sql.NullString `db:"user_message"`
	BotResponse sql.NullString `db:"bot_response"`
	CreatedAt   time.Time      `db:"created_at"`
}

func (r *messagesRepository) CreateMessage(ctx context.Context, msg entity.ChatMessage) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id":           msg.ID,
		"session_id":   msg.SessionID,
		"user_message": msg.UserMessage,
		"bot_response": msg.BotResponse,
		"created_at":   msg.Timestamp.UTC(),
	}

	query, args, err := sqlx.Named(queryCreateChatMessage, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for CreateMessage")
		return err
	}
	query = r.q.Rebind(query)

	if _, err = r.q.ExecContext(ctx, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"session_id": msg.SessionID,
			"error":      err.Error(),
		}).Error("Database error when creating chat message")
		return err
	}

	return nil
}

func (r *messagesRepository) GetMessagesBySessionID(ctx context.Context, sessionID string, limit int) ([]entity.ChatMessage, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var rows []ChatMessageDB

	argsKV := map[string]interface{}{
		"session_id": sessionID,
		"limit":      limit,
	}

	query, args, err := sqlx.Named(queryGetChatMessagesBySessionID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetMessagesBySessionID named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(ctx, &rows, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"session_id": sessionID,
			"error":      err.Error(),
		}).Error("GetMessagesBySessionID execution err")
		return nil, err
	}

	messages := make([]entity.ChatMessage, len(rows))
	for i, row := range rows {
		messages[i] = r.makeChatMessage(row)
	}

	return messages, nil
}

func (r *messagesRepository) makeChatMessage(row ChatMessageDB) entity.ChatMessage {
	return entity.ChatMessage{
		ID:          row.ID,
		SessionID:   row.SessionID,
		UserMessage: row.UserMessage.String,
		BotResponse: row.BotResponse.String,
		Timestamp:   row.CreatedAt.UTC(),
	}
}
