package chatService

import (
	"context"
	"edushelf/database/sqlite"
	"edushelf/internal/api/chat"
	chatRepository "edushelf/internal/api/chat/repository"
	"edushelf/internal/entity"
	"edushelf/pkg/responder"
	"edushelf/pkg/utils"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryCache struct {
	mu       sync.Mutex
	entries  map[string][]byte
	counters map[string]int64
	getErr   error
	sets     int
	incrs    int
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: map[string][]byte{}, counters: map[string]int64{}}
}

func (c *memoryCache) SetJSON(_ context.Context, key string, value interface{}, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	payload, err := jsoniter.Marshal(value)
	if err != nil {
		return err
	}
	c.entries[key] = payload
	c.sets++
	return nil
}

func (c *memoryCache) GetJSON(_ context.Context, key string, dest interface{}) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.getErr != nil {
		return false, c.getErr
	}
	payload, ok := c.entries[key]
	if !ok {
		return false, nil
	}
	return true, jsoniter.Unmarshal(payload, dest)
}

func (c *memoryCache) Incr(_ context.Context, key string) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.counters[key]++
	c.incrs++
	return c.counters[key], nil
}

func (c *memoryCache) GetInt(_ context.Context, key string) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.counters[key], nil
}

func (c *memoryCache) Close() error { return nil }

type failingMessages struct{}

func (failingMessages) CreateMessage(context.Context, entity.ChatMessage) error {
	return errors.New("connection refused")
}

func (failingMessages) GetMessagesBySessionID(context.Context, string, int) ([]entity.ChatMessage, error) {
	return nil, errors.New("connection refused")
}

type failingRepository struct{}

func (failingRepository) NewClient() chatRepository.Client {
	return chatRepository.Client{Messages: failingMessages{}}
}

func (failingRepository) Migrate(context.Context) error { return nil }

type messageStore interface {
	CreateMessage(ctx context.Context, msg entity.ChatMessage) error
	GetMessagesBySessionID(ctx context.Context, sessionID string, limit int) ([]entity.ChatMessage, error)
}

// hookedRepository runs afterRead once, right after the next history read
// returns from the database.
type hookedRepository struct {
	chatRepository.Repository
	afterRead func()
}

func (r *hookedRepository) NewClient() chatRepository.Client {
	return chatRepository.Client{Messages: hookedMessages{inner: r.Repository.NewClient().Messages, repo: r}}
}

type hookedMessages struct {
	inner messageStore
	repo  *hookedRepository
}

func (m hookedMessages) CreateMessage(ctx context.Context, msg entity.ChatMessage) error {
	return m.inner.CreateMessage(ctx, msg)
}

func (m hookedMessages) GetMessagesBySessionID(ctx context.Context, sessionID string, limit int) ([]entity.ChatMessage, error) {
	messages, err := m.inner.GetMessagesBySessionID(ctx, sessionID, limit)
	if hook := m.repo.afterRead; hook != nil {
		m.repo.afterRead = nil
		hook()
	}
	return messages, err
}

func discardLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func newSQLiteRepository(t *testing.T) chatRepository.Repository {
	t.Helper()

	db, err := sqlite.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	repo := chatRepository.New(db, discardLogger())
	require.NoError(t, repo.Migrate(context.Background()))
	return repo
}

func newTestService(t *testing.T, repo chatRepository.Repository, cache *memoryCache, opts Options) *chatService {
	t.Helper()

	var svc IChatService
	if cache == nil {
		svc = NewChatService(discardLogger(), repo, responder.NewDefault(), nil, utils.New(), opts)
	} else {
		svc = NewChatService(discardLogger(), repo, responder.NewDefault(), cache, utils.New(), opts)
	}
	return svc.(*chatService)
}

func TestChatPersistsTranscript(t *testing.T) {
	svc := newTestService(t, newSQLiteRepository(t), nil, Options{})
	ctx := context.Background()

	resp, err := svc.Chat(ctx, chat.ChatRequest{Message: "math", SessionID: "s1"})
	require.NoError(t, err)

	assert.Equal(t, responder.NewDefault().Respond("math"), resp.Response)
	assert.Equal(t, "s1", resp.SessionID)
	assert.NotEmpty(t, resp.ID)
	assert.False(t, resp.Timestamp.IsZero())

	history, err := svc.GetHistory(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, history.History, 1)
	assert.Equal(t, resp.ID, history.History[0].ID)
	assert.Equal(t, "math", history.History[0].UserMessage)
	assert.Equal(t, resp.Response, history.History[0].BotResponse)
}

func TestHistoryOrderAndLimit(t *testing.T) {
	svc := newTestService(t, newSQLiteRepository(t), nil, Options{HistoryLimit: 2})
	ctx := context.Background()

	clock := time.Date(2025, 1, 1, 8, 0, 0, 0, time.UTC)
	svc.now = func() time.Time {
		clock = clock.Add(time.Second)
		return clock
	}

	for _, m := range []string{"hello", "math", "help"} {
		_, err := svc.Chat(ctx, chat.ChatRequest{Message: m, SessionID: "s1"})
		require.NoError(t, err)
	}
	_, err := svc.Chat(ctx, chat.ChatRequest{Message: "other session", SessionID: "s2"})
	require.NoError(t, err)

	history, err := svc.GetHistory(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, history.History, 2)
	assert.Equal(t, "hello", history.History[0].UserMessage)
	assert.Equal(t, "math", history.History[1].UserMessage)
	assert.True(t, history.History[0].Timestamp.Before(history.History[1].Timestamp))
}

func TestHistoryEmptySession(t *testing.T) {
	svc := newTestService(t, newSQLiteRepository(t), nil, Options{})

	history, err := svc.GetHistory(context.Background(), "nobody")
	require.NoError(t, err)
	assert.NotNil(t, history.History)
	assert.Empty(t, history.History)
}

func TestChatRejectsBlankSession(t *testing.T) {
	svc := newTestService(t, newSQLiteRepository(t), nil, Options{})

	_, err := svc.Chat(context.Background(), chat.ChatRequest{Message: "hi", SessionID: "  "})
	assert.ErrorIs(t, err, chat.ErrInvalidSessionID)

	_, err = svc.GetHistory(context.Background(), "")
	assert.ErrorIs(t, err, chat.ErrInvalidSessionID)
}

func TestChatRepositoryFailure(t *testing.T) {
	svc := newTestService(t, failingRepository{}, nil, Options{})

	_, err := svc.Chat(context.Background(), chat.ChatRequest{Message: "hi", SessionID: "s1"})
	assert.ErrorIs(t, err, chat.ErrChatFailed)
	assert.NotContains(t, err.Error(), "connection refused")

	_, err = svc.GetHistory(context.Background(), "s1")
	assert.ErrorIs(t, err, chat.ErrGetHistoryFailed)
}

func TestHistoryCache(t *testing.T) {
	cache := newMemoryCache()
	svc := newTestService(t, newSQLiteRepository(t), cache, Options{})
	ctx := context.Background()

	_, err := svc.Chat(ctx, chat.ChatRequest{Message: "hello", SessionID: "s1"})
	require.NoError(t, err)
	assert.Equal(t, 1, cache.incrs)

	first, err := svc.GetHistory(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, 1, cache.sets)
	assert.Contains(t, cache.entries, historyCacheKey("s1", 1))

	second, err := svc.GetHistory(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, 1, cache.sets, "second read should be served from cache")
	assert.Equal(t, first.History[0].ID, second.History[0].ID)

	_, err = svc.Chat(ctx, chat.ChatRequest{Message: "math", SessionID: "s1"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), cache.counters[historyGenerationKey("s1")])

	third, err := svc.GetHistory(ctx, "s1")
	require.NoError(t, err)
	assert.Len(t, third.History, 2)
	assert.Contains(t, cache.entries, historyCacheKey("s1", 2))
}

func TestHistoryCacheIgnoresPageReadBeforeConcurrentChat(t *testing.T) {
	repo := &hookedRepository{Repository: newSQLiteRepository(t)}
	cache := newMemoryCache()
	svc := newTestService(t, repo, cache, Options{})
	ctx := context.Background()

	repo.afterRead = func() {
		_, err := svc.Chat(ctx, chat.ChatRequest{Message: "hello", SessionID: "s1"})
		require.NoError(t, err)
	}

	first, err := svc.GetHistory(ctx, "s1")
	require.NoError(t, err)
	assert.Empty(t, first.History)

	second, err := svc.GetHistory(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, second.History, 1)
	assert.Equal(t, "hello", second.History[0].UserMessage)
}

func TestHistoryCacheErrorFallsBackToRepository(t *testing.T) {
	cache := newMemoryCache()
	cache.getErr = errors.New("redis down")
	svc := newTestService(t, newSQLiteRepository(t), cache, Options{})
	ctx := context.Background()

	_, err := svc.Chat(ctx, chat.ChatRequest{Message: "hello", SessionID: "s1"})
	require.NoError(t, err)

	history, err := svc.GetHistory(ctx, "s1")
	require.NoError(t, err)
	assert.Len(t, history.History, 1)
}

func TestNewSession(t *testing.T) {
	svc := newTestService(t, newSQLiteRepository(t), nil, Options{})

	a, err := svc.NewSession(context.Background())
	require.NoError(t, err)
	b, err := svc.NewSession(context.Background())
	require.NoError(t, err)

	assert.NotEmpty(t, a.SessionID)
	assert.NotEqual(t, a.SessionID, b.SessionID)
}
