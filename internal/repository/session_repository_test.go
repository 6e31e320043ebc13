package repository

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cryptowise/internal/domain"
)

func newSession(expiresIn time.Duration) *domain.Session {
	now := time.Now()
	return &domain.Session{
		ID:        uuid.New(),
		UserID:    uuid.New(),
		Username:  "alice",
		IssuedAt:  now,
		ExpiresAt: now.Add(expiresIn),
	}
}

func exerciseSessionRepository(t *testing.T, repo domain.SessionRepository) {
	t.Helper()
	ctx := context.Background()

	s := newSession(time.Hour)
	require.NoError(t, repo.Save(ctx, s))

	got, err := repo.GetByID(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, s.UserID, got.UserID)
	assert.Equal(t, "alice", got.Username)

	require.NoError(t, repo.Delete(ctx, s.ID))
	_, err = repo.GetByID(ctx, s.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// deleting twice is fine
	require.NoError(t, repo.Delete(ctx, s.ID))
}

func TestSessionRepository_Memory(t *testing.T) {
	exerciseSessionRepository(t, NewSessionRepository())
}

func TestSessionRepository_DeleteExpired(t *testing.T) {
	ctx := context.Background()
	repo := NewSessionRepository()

	live := newSession(time.Hour)
	stale := newSession(time.Minute)
	require.NoError(t, repo.Save(ctx, live))
	require.NoError(t, repo.Save(ctx, stale))

	removed, err := repo.DeleteExpired(ctx, time.Now().Add(2*time.Minute))
	require.NoError(t, err)
	assert.Equal(t, 1, removed)

	_, err = repo.GetByID(ctx, stale.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = repo.GetByID(ctx, live.ID)
	assert.NoError(t, err)
}

// TestSessionRepository_Redis runs against a live Redis instance.
func TestSessionRepository_Redis(t *testing.T) {
	url := os.Getenv("REDIS_URL")
	if url == "" {
		t.Skip("set REDIS_URL to run the Redis session repository test")
	}

	opts, err := redis.ParseURL(url)
	require.NoError(t, err)
	client := redis.NewClient(opts)
	defer client.Close()
	require.NoError(t, client.Ping(context.Background()).Err())

	exerciseSessionRepository(t, NewRedisSessionRepository(client))
}
