package chatRepository

import (
	"context"
	"edushelf/database/sqlite"
	"edushelf/internal/entity"
	"fmt"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepository(t *testing.T) Repository {
	t.Helper()

	db, err := sqlite.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	repo := New(db, logger)
	require.NoError(t, repo.Migrate(context.Background()))
	return repo
}

func TestMigrateIsIdempotent(t *testing.T) {
	repo := newTestRepository(t)
	assert.NoError(t, repo.Migrate(context.Background()))
}

func TestCreateAndGetMessages(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	client := repo.NewClient()

	base := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	// inserted out of order to check ORDER BY
	inserts := []entity.ChatMessage{
		{ID: "03", SessionID: "s1", UserMessage: "third", BotResponse: "r3", Timestamp: base.Add(2 * time.Second)},
		{ID: "01", SessionID: "s1", UserMessage: "first", BotResponse: "r1", Timestamp: base},
		{ID: "99", SessionID: "s2", UserMessage: "other", BotResponse: "rx", Timestamp: base},
		{ID: "02", SessionID: "s1", UserMessage: "second", BotResponse: "r2", Timestamp: base.Add(time.Second)},
	}
	for _, m := range inserts {
		require.NoError(t, client.Messages.CreateMessage(ctx, m))
	}

	got, err := client.Messages.GetMessagesBySessionID(ctx, "s1", 100)
	require.NoError(t, err)
	require.Len(t, got, 3)

	assert.Equal(t, "first", got[0].UserMessage)
	assert.Equal(t, "second", got[1].UserMessage)
	assert.Equal(t, "third", got[2].UserMessage)
	assert.Equal(t, "r1", got[0].BotResponse)
	assert.Equal(t, "s1", got[0].SessionID)
	assert.True(t, base.Equal(got[0].Timestamp))
}

func TestGetMessagesRespectsLimit(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	client := repo.NewClient()

	base := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		require.NoError(t, client.Messages.CreateMessage(ctx, entity.ChatMessage{
			ID:          fmt.Sprintf("%02d", i),
			SessionID:   "s1",
			UserMessage: fmt.Sprintf("m%d", i),
			Timestamp:   base.Add(time.Duration(i) * time.Second),
		}))
	}

	got, err := client.Messages.GetMessagesBySessionID(ctx, "s1", 2)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "m0", got[0].UserMessage)
	assert.Equal(t, "m1", got[1].UserMessage)
}

func TestGetMessagesUnknownSession(t *testing.T) {
	repo := newTestRepository(t)

	client := repo.NewClient()

	got, err := client.Messages.GetMessagesBySessionID(context.Background(), "missing", 100)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestDuplicateIDFails(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	client := repo.NewClient()

	msg := entity.ChatMessage{ID: "01", SessionID: "s1", Timestamp: time.Now()}
	require.NoError(t, client.Messages.CreateMessage(ctx, msg))
	assert.Error(t, client.Messages.CreateMessage(ctx, msg))
}
