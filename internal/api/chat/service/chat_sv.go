package chatService

import (
	"context"
	"edushelf/internal/api/chat"
	"edushelf/internal/entity"
	contextPkg "edushelf/pkg/context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
)

const historyCacheKeyPrefix = "chat:history:"

// Cached pages live under a per-session generation. Chat bumps the
// generation after every write, so a page read before the write can only
// land under a key that is no longer consulted.

func historyGenerationKey(sessionID string) string {
	return historyCacheKeyPrefix + sessionID + ":gen"
}

func historyCacheKey(sessionID string, generation int64) string {
	return fmt.Sprintf("%s%s:%d", historyCacheKeyPrefix, sessionID, generation)
}

func (s *chatService) Chat(ctx context.Context, req chat.ChatRequest) (*chat.ChatResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if strings.TrimSpace(req.SessionID) == "" {
		return nil, chat.ErrInvalidSessionID
	}

	reply := s.responder.Respond(req.Message)

	now := s.now().UTC()
	id, err := s.utils.NewULIDFromTimestamp(now)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate ULID")
		return nil, chat.ErrChatFailed
	}

	msg := entity.ChatMessage{
		ID:          id,
		SessionID:   req.SessionID,
		UserMessage: req.Message,
		BotResponse: reply,
		Timestamp:   now,
	}

	repo := s.chatRepo.NewClient()

	if err := repo.Messages.CreateMessage(ctx, msg); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"session_id": req.SessionID,
			"error":      err.Error(),
		}).Error("Failed to save chat message")
		return nil, chat.ErrChatFailed
	}

	s.invalidateHistory(ctx, req.SessionID)

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"session_id": req.SessionID,
		"intent":     s.responder.Classify(req.Message),
	}).Debug("Chat message answered")

	return &chat.ChatResponse{
		ID:        msg.ID,
		Response:  msg.BotResponse,
		Timestamp: msg.Timestamp,
		SessionID: msg.SessionID,
	}, nil
}

func (s *chatService) GetHistory(ctx context.Context, sessionID string) (*chat.ChatHistoryResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if strings.TrimSpace(sessionID) == "" {
		return nil, chat.ErrInvalidSessionID
	}

	generation, cacheable := s.historyGeneration(ctx, sessionID)
	if cacheable {
		if cached, ok := s.cachedHistory(ctx, sessionID, generation); ok {
			return cached, nil
		}
	}

	repo := s.chatRepo.NewClient()

	messages, err := repo.Messages.GetMessagesBySessionID(ctx, sessionID, s.opts.HistoryLimit)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"session_id": sessionID,
			"error":      err.Error(),
		}).Error("Failed to get chat history")
		return nil, chat.ErrGetHistoryFailed
	}

	result := &chat.ChatHistoryResponse{
		History: make([]chat.ChatMessageResponse, len(messages)),
	}
	for i, m := range messages {
		result.History[i] = chat.ChatMessageResponse{
			ID:          m.ID,
			UserMessage: m.UserMessage,
			BotResponse: m.BotResponse,
			Timestamp:   m.Timestamp,
			SessionID:   m.SessionID,
		}
	}

	if cacheable {
		s.storeHistory(ctx, sessionID, generation, result)
	}

	return result, nil
}

func (s *chatService) NewSession(ctx context.Context) (*chat.SessionResponse, error) {
	id, err := s.utils.NewSessionID()
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": contextPkg.GetRequestID(ctx),
			"error":      err.Error(),
		}).Error("Failed to generate session id")
		return nil, chat.ErrCreateSession
	}

	return &chat.SessionResponse{SessionID: id}, nil
}

// Cache failures are logged and otherwise ignored; the repository stays the
// source of truth.

func (s *chatService) historyGeneration(ctx context.Context, sessionID string) (int64, bool) {
	if s.cache == nil {
		return 0, false
	}

	generation, err := s.cache.GetInt(ctx, historyGenerationKey(sessionID))
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": contextPkg.GetRequestID(ctx),
			"session_id": sessionID,
			"error":      err.Error(),
		}).Warn("History cache generation read failed")
		return 0, false
	}
	return generation, true
}

func (s *chatService) cachedHistory(ctx context.Context, sessionID string, generation int64) (*chat.ChatHistoryResponse, bool) {
	var cached chat.ChatHistoryResponse
	ok, err := s.cache.GetJSON(ctx, historyCacheKey(sessionID, generation), &cached)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": contextPkg.GetRequestID(ctx),
			"session_id": sessionID,
			"error":      err.Error(),
		}).Warn("History cache read failed")
		return nil, false
	}
	if !ok {
		return nil, false
	}
	if cached.History == nil {
		cached.History = []chat.ChatMessageResponse{}
	}
	return &cached, true
}

func (s *chatService) storeHistory(ctx context.Context, sessionID string, generation int64, history *chat.ChatHistoryResponse) {
	if err := s.cache.SetJSON(ctx, historyCacheKey(sessionID, generation), history, s.opts.HistoryCacheTTL); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": contextPkg.GetRequestID(ctx),
			"session_id": sessionID,
			"error":      err.Error(),
		}).Warn("History cache write failed")
	}
}

func (s *chatService) invalidateHistory(ctx context.Context, sessionID string) {
	if s.cache == nil {
		return
	}

	if _, err := s.cache.Incr(ctx, historyGenerationKey(sessionID)); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": contextPkg.GetRequestID(ctx),
			"session_id": sessionID,
			"error":      err.Error(),
		}).Warn("History cache invalidation failed")
	}
}
