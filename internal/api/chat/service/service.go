package chatService

import (
	"context"
	"edushelf/internal/api/chat"
	chatRepository "edushelf/internal/api/chat/repository"
	"edushelf/pkg/redis"
	"edushelf/pkg/responder"
	"edushelf/pkg/utils"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	DefaultHistoryLimit    = 100
	DefaultHistoryCacheTTL = 5 * time.Minute
)

type IChatService interface {
	Chat(ctx context.Context, req chat.ChatRequest) (*chat.ChatResponse, error)
	GetHistory(ctx context.Context, sessionID string) (*chat.ChatHistoryResponse, error)
	NewSession(ctx context.Context) (*chat.SessionResponse, error)
}

type Options struct {
	HistoryLimit    int
	HistoryCacheTTL time.Duration
}

type chatService struct {
	log       *logrus.Logger
	chatRepo  chatRepository.Repository
	responder responder.IResponder
	cache     redis.IRedis
	utils     utils.IUtils
	opts      Options
	now       func() time.Time
}

// NewChatService builds the chat service. cache may be nil, in which case
// history is always read from the repository.
func NewChatService(
	log *logrus.Logger,
	chatRepo chatRepository.Repository,
	r responder.IResponder,
	cache redis.IRedis,
	utils utils.IUtils,
	opts Options,
) IChatService {
	if opts.HistoryLimit <= 0 {
		opts.HistoryLimit = DefaultHistoryLimit
	}
	if opts.HistoryCacheTTL <= 0 {
		opts.HistoryCacheTTL = DefaultHistoryCacheTTL
	}

	return &chatService{
		log:       log,
		chatRepo:  chatRepo,
		responder: r,
		cache:     cache,
		utils:     utils,
		opts:      opts,
		now:       time.Now,
	}
}
