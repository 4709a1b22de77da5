package chatRepository

import (
	"context"
	"edushelf/internal/entity"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type SQLExecutor interface {
	sqlx.ExtContext
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	Rebind(query string) string
}

func New(db *sqlx.DB, log *logrus.Logger) Repository {
	return &repository{
		DB:  db,
		log: log,
	}
}

type repository struct {
	DB  *sqlx.DB
	log *logrus.Logger
}

type Repository interface {
	NewClient() Client
	Migrate(ctx context.Context) error
}

// NewClient hands out the message store. Every write is a single statement,
// so no transaction is opened.
func (r *repository) NewClient() Client {
	return Client{
		Messages: &messagesRepository{q: r.DB, log: r.log},
	}
}

func (r *repository) Migrate(ctx context.Context) error {
	for _, stmt := range []string{queryCreateChatHistoryTable, queryCreateChatHistorySessionIndex} {
		if _, err := r.DB.ExecContext(ctx, stmt); err != nil {
			r.log.WithFields(logrus.Fields{
				"error": err.Error(),
			}).Error("Failed to migrate chat history schema")
			return err
		}
	}
	return nil
}

type Client struct {
	Messages interface {
		CreateMessage(ctx context.Context, msg entity.ChatMessage) error
		GetMessagesBySessionID(ctx context.Context, sessionID string, limit int) ([]entity.ChatMessage, error)
	}
}

type messagesRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}
