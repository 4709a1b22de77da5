package utils

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewULIDFromTimestamp(t *testing.T) {
	u := New()
	now := time.Now()

	first, err := u.NewULIDFromTimestamp(now)
	require.NoError(t, err)
	second, err := u.NewULIDFromTimestamp(now)
	require.NoError(t, err)

	assert.Less(t, first, second)

	parsed, err := ulid.Parse(first)
	require.NoError(t, err)
	assert.Equal(t, ulid.Timestamp(now), parsed.Time())
}

func TestNewSessionID(t *testing.T) {
	u := New()

	id, err := u.NewSessionID()
	require.NoError(t, err)

	_, err = uuid.Parse(id)
	assert.NoError(t, err)
}
