package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTokenBucket_NilClient(t *testing.T) {
	assert.Nil(t, NewTokenBucket(nil))
}

func TestTokenBucket_AllowGuards(t *testing.T) {
	var tb *TokenBucket
	_, err := tb.Allow(context.Background(), "k", 1, 1)
	require.ErrorIs(t, err, ErrNotConfigured)
}

func TestBucketTTL(t *testing.T) {
	tests := []struct {
		name  string
		rate  float64
		burst int
		want  time.Duration
	}{
		{name: "refill twice", rate: 2, burst: 10, want: 10 * time.Second},
		{name: "rounds up", rate: 3, burst: 10, want: 7 * time.Second},
		{name: "at least one second", rate: 100, burst: 1, want: time.Second},
		{name: "invalid", rate: 0, burst: 1, want: time.Second},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, bucketTTL(tt.rate, tt.burst))
		})
	}
}

func TestBuildResult(t *testing.T) {
	ts := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC).UnixMilli()

	ok := buildResult(true, 4, ts, 2, 10)
	assert.True(t, ok.Allowed)
	assert.Equal(t, 10, ok.Limit)
	assert.Equal(t, 4, ok.Remaining)
	assert.Zero(t, ok.RetryAfter)

	denied := buildResult(false, 0.5, ts, 2, 10)
	assert.False(t, denied.Allowed)
	assert.Equal(t, 250*time.Millisecond, denied.RetryAfter)
	assert.Equal(t, time.UnixMilli(ts).Add(250*time.Millisecond), denied.ResetTime)
}

func TestCasts(t *testing.T) {
	assert.Equal(t, int64(3), castToInt(int64(3)))
	assert.Equal(t, int64(3), castToInt("3"))
	assert.Equal(t, int64(0), castToInt(nil))
	assert.Equal(t, 2.5, castToFloat("2.5"))
	assert.Equal(t, 2.0, castToFloat(int64(2)))
	assert.Equal(t, 0.0, castToFloat(struct{}{}))
}
