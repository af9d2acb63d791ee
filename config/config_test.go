package config

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("GO_ENV", "production")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
	assert.Equal(t, time.UTC, cfg.Schedule.Location)
	assert.Equal(t, 3*366, cfg.Schedule.MaxDays)
	assert.Equal(t, 60, cfg.Schedule.TeachingUnitMinutes)
	assert.Equal(t, LockBackendLocal, cfg.Lock.Backend)
	assert.Equal(t, "noop", cfg.Email.Provider)
	assert.Equal(t, 10, cfg.RegenerateRateLimit)
	assert.Empty(t, cfg.CORSAllowedOrigins)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("GO_ENV", "production")
	t.Setenv("PORT", "9090")
	t.Setenv("DATABASE_URL", "postgres://db/courses")
	t.Setenv("SCHEDULE_TIMEZONE", "Europe/Berlin")
	t.Setenv("TEACHING_UNIT_MINUTES", "45")
	t.Setenv("HORIZON_SLACK_DAYS", "0")
	t.Setenv("LOCK_BACKEND", "Redis")
	t.Setenv("LOCK_TTL", "30s")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example.com, ,https://b.example.com")
	t.Setenv("REGENERATE_RATE_LIMIT", "0")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "postgres://db/courses", cfg.DBUrl)
	assert.Equal(t, "Europe/Berlin", cfg.Schedule.Location.String())
	assert.Equal(t, 45, cfg.Schedule.TeachingUnitMinutes)
	assert.Equal(t, 0, cfg.Schedule.HorizonSlackDays)
	assert.Equal(t, LockBackendRedis, cfg.Lock.Backend)
	assert.Equal(t, 30*time.Second, cfg.Lock.TTL)
	assert.Equal(t, 2, cfg.Lock.RedisDB)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, 0, cfg.RegenerateRateLimit)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		key, value, wantErr string
	}{
		{"SCHEDULE_TIMEZONE", "Mars/Olympus", "SCHEDULE_TIMEZONE"},
		{"MAX_SCHEDULE_DAYS", "0", "MAX_SCHEDULE_DAYS"},
		{"TEACHING_UNIT_MINUTES", "sixty", "TEACHING_UNIT_MINUTES"},
		{"REQUEST_TIMEOUT", "-1s", "REQUEST_TIMEOUT"},
		{"LOCK_BACKEND", "etcd", "LOCK_BACKEND"},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			t.Setenv("GO_ENV", "production")
			t.Setenv(tt.key, tt.value)
			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, "production", "warn")
	logger.Info("hidden")
	logger.Warn("shown", "course_id", "c-1")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "shown", rec["msg"])
	assert.Equal(t, "c-1", rec["course_id"])

	assert.Equal(t, slog.LevelDebug, parseLevel("DEBUG"))
	assert.Equal(t, slog.LevelInfo, parseLevel("verbose"))
}
