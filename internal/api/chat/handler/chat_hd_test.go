package chatHandler

import (
	"context"
	"edushelf/internal/api/chat"
	"edushelf/internal/middleware"
	"edushelf/pkg/utils"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// slowChatService stores the message and then outlives the request deadline.
type slowChatService struct {
	delay time.Duration
	calls atomic.Int32
}

func (s *slowChatService) Chat(_ context.Context, req chat.ChatRequest) (*chat.ChatResponse, error) {
	s.calls.Add(1)
	time.Sleep(s.delay)
	return &chat.ChatResponse{ID: "01", Response: "ok", SessionID: req.SessionID, Timestamp: time.Now()}, nil
}

func (s *slowChatService) GetHistory(context.Context, string) (*chat.ChatHistoryResponse, error) {
	return &chat.ChatHistoryResponse{History: []chat.ChatMessageResponse{}}, nil
}

func (s *slowChatService) NewSession(context.Context) (*chat.SessionResponse, error) {
	return &chat.SessionResponse{SessionID: "s"}, nil
}

func newTestHandler(svc *slowChatService, timeout time.Duration) *fiber.App {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	h := New(logger, validator.New(), middleware.New(logger, utils.New(), middleware.Options{}), svc)
	h.timeout = timeout

	app := fiber.New()
	app.Post("/chat", h.Chat)
	return app
}

func postChat(t *testing.T, app *fiber.App) int {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader(`{"message":"hi","session_id":"s1"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp.StatusCode
}

func TestChatDeliversReplyAfterSlowWrite(t *testing.T) {
	svc := &slowChatService{delay: 50 * time.Millisecond}
	app := newTestHandler(svc, 10*time.Millisecond)

	assert.Equal(t, http.StatusOK, postChat(t, app))
	assert.Equal(t, int32(1), svc.calls.Load())
}

func TestChatExpiredBeforeWriteSkipsService(t *testing.T) {
	svc := &slowChatService{}
	app := newTestHandler(svc, 0)

	assert.Equal(t, http.StatusRequestTimeout, postChat(t, app))
	assert.Equal(t, int32(0), svc.calls.Load())
}
