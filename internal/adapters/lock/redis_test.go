package lock

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"courseplanner/internal/domain"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupMiniRedis(t *testing.T, ttl time.Duration) (*miniredis.Miniredis, *RedisLocker) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	l := newRedisLocker(client, ttl, slog.New(slog.NewTextHandler(io.Discard, nil)))
	l.retryWait = 5 * time.Millisecond
	return mr, l
}

func TestRedisLocker_AcquireRelease(t *testing.T) {
	mr, l := setupMiniRedis(t, time.Minute)
	ctx := context.Background()

	release, err := l.Acquire(ctx, "course-1")
	require.NoError(t, err)
	assert.True(t, mr.Exists(redisKeyPrefix+"course-1"))
	assert.Equal(t, time.Minute, mr.TTL(redisKeyPrefix+"course-1"))

	short, cancel := context.WithTimeout(ctx, 30*time.Millisecond)
	defer cancel()
	_, err = l.Acquire(short, "course-1")
	require.ErrorIs(t, err, domain.ErrRegenerationInProgress)

	release()
	assert.False(t, mr.Exists(redisKeyPrefix+"course-1"))

	again, err := l.Acquire(ctx, "course-1")
	require.NoError(t, err)
	again()
}

func TestRedisLocker_ExpiredLockIsNotReleasedByFormerHolder(t *testing.T) {
	mr, l := setupMiniRedis(t, time.Second)
	ctx := context.Background()

	stale, err := l.Acquire(ctx, "course-1")
	require.NoError(t, err)
	mr.FastForward(2 * time.Second)

	current, err := l.Acquire(ctx, "course-1")
	require.NoError(t, err)
	holder, err := mr.Get(redisKeyPrefix + "course-1")
	require.NoError(t, err)

	stale()
	got, err := mr.Get(redisKeyPrefix + "course-1")
	require.NoError(t, err)
	assert.Equal(t, holder, got, "stale release must keep the new holder's key")

	current()
	assert.False(t, mr.Exists(redisKeyPrefix+"course-1"))
}

func TestRedisLocker_BackendDown(t *testing.T) {
	mr := miniredis.NewMiniRedis()
	require.NoError(t, mr.Start())
	client := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	defer client.Close()
	l := newRedisLocker(client, time.Minute, slog.New(slog.NewTextHandler(io.Discard, nil)))
	mr.Close()

	_, err := l.Acquire(context.Background(), "course-1")
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrRegenerationInProgress)
}
