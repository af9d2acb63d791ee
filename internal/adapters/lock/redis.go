package lock

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"courseplanner/internal/domain"
)

const (
	redisKeyPrefix   = "courseplanner:schedule-lock:"
	defaultLockTTL   = 2 * time.Minute
	defaultRetryWait = 100 * time.Millisecond
)

// releaseScript deletes the key only if it still holds our token.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// RedisConfig holds Redis connection configuration.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
}

// RedisLocker is a CourseLocker shared by every instance connected to the same Redis.
type RedisLocker struct {
	client    *redis.Client
	ttl       time.Duration
	retryWait time.Duration
	logger    *slog.Logger
}

// NewRedisLocker connects to Redis and returns a locker. The connection is verified with PING.
func NewRedisLocker(cfg RedisConfig, logger *slog.Logger) (*RedisLocker, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis connection failed: %w", err)
	}
	logger.Info("connected to redis lock backend", "addr", cfg.Addr, "db", cfg.DB)
	return newRedisLocker(client, cfg.TTL, logger), nil
}

func newRedisLocker(client *redis.Client, ttl time.Duration, logger *slog.Logger) *RedisLocker {
	if ttl <= 0 {
		ttl = defaultLockTTL
	}
	return &RedisLocker{
		client:    client,
		ttl:       ttl,
		retryWait: defaultRetryWait,
		logger:    logger,
	}
}

// Acquire polls SET NX until it wins the key for courseID or ctx is done.
// The lock expires after the configured TTL even if never released.
func (l *RedisLocker) Acquire(ctx context.Context, courseID string) (func(), error) {
	key := redisKeyPrefix + courseID
	token := uuid.NewString()

	for {
		ok, err := l.client.SetNX(ctx, key, token, l.ttl).Result()
		if err != nil && ctx.Err() == nil {
			return nil, fmt.Errorf("acquire schedule lock: %w", err)
		}
		if ok {
			return func() { l.release(key, token) }, nil
		}
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("%w: course %s: %v", domain.ErrRegenerationInProgress, courseID, ctx.Err())
		case <-time.After(l.retryWait):
		}
	}
}

func (l *RedisLocker) release(key, token string) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := releaseScript.Run(ctx, l.client, []string{key}, token).Err(); err != nil {
		l.logger.Warn("release schedule lock failed", "key", key, "err", err)
	}
}

// Close closes the Redis client.
func (l *RedisLocker) Close() error {
	return l.client.Close()
}
