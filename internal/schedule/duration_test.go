package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPauseLength_PinsStorageOffset(t *testing.T) {
	require.Equal(t, time.Hour, PauseStorageOffset)

	tests := []struct {
		name   string
		stored time.Time
		want   time.Duration
	}{
		{"thirty minutes", time.Date(1970, 1, 1, 1, 30, 0, 0, time.UTC), 30 * time.Minute},
		{"no pause", time.Date(1970, 1, 1, 1, 0, 0, 0, time.UTC), 0},
		{"one hour fifteen", time.Date(1970, 1, 1, 2, 15, 0, 0, time.UTC), 75 * time.Minute},
		{"stored below offset wraps to previous day", time.Date(1970, 1, 1, 0, 30, 0, 0, time.UTC), 23*time.Hour + 30*time.Minute},
		{"date component ignored", time.Date(2024, 5, 17, 1, 45, 0, 0, time.UTC), 45 * time.Minute},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PauseLength(tt.stored))
		})
	}
}

func TestEncodePause_RoundTrip(t *testing.T) {
	for _, d := range []time.Duration{0, 15 * time.Minute, 30 * time.Minute, 90 * time.Minute, 5 * time.Hour} {
		stored := EncodePause(d)
		assert.Equal(t, d, PauseLength(stored), "length %s", d)
	}
	assert.Equal(t, time.Date(1970, 1, 1, 1, 45, 0, 0, time.UTC), EncodePause(45*time.Minute))
}

func TestNetHours(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		pause time.Duration
		want  float64
	}{
		{"span minus pause", base.Add(9 * time.Hour), base.Add(13*time.Hour + 30*time.Minute), 30 * time.Minute, 4.0},
		{"no pause", base.Add(8 * time.Hour), base.Add(11 * time.Hour), 0, 3.0},
		{"quarter hours", base.Add(9 * time.Hour), base.Add(10*time.Hour + 45*time.Minute), 15 * time.Minute, 1.5},
		{"pause larger than span is negative", base.Add(9 * time.Hour), base.Add(10 * time.Hour), 2 * time.Hour, -1.0},
		{"end before start is negative", base.Add(10 * time.Hour), base.Add(9 * time.Hour), 0, -1.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, NetHours(tt.start, tt.end, EncodePause(tt.pause)), 1e-9)
		})
	}
}

func TestNetHours_PositiveWhenPauseShorterThanSpan(t *testing.T) {
	base := time.Date(2024, 2, 1, 7, 0, 0, 0, time.UTC)
	for spanMin := 15; spanMin <= 10*60; spanMin += 45 {
		for pauseMin := 0; pauseMin < spanMin; pauseMin += 20 {
			start := base
			end := base.Add(time.Duration(spanMin) * time.Minute)
			got := NetHours(start, end, EncodePause(time.Duration(pauseMin)*time.Minute))
			require.Greater(t, got, 0.0)
			require.InDelta(t, float64(spanMin-pauseMin)/60, got, 1e-9)
		}
	}
}
