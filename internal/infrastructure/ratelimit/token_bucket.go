// Package ratelimit implements a Redis-backed token bucket shared by every
// API replica.
package ratelimit

import (
	"context"
	"errors"
	"math"
	"strconv"
	"time"

	redis "github.com/redis/go-redis/v9"
)

var (
	ErrNotConfigured = errors.New("rate limiter not configured")
	ErrEmptyKey      = errors.New("rate limiter key is empty")
	ErrInvalidRate   = errors.New("rate limiter rate and burst must be positive")
)

// Refill and take happen atomically inside Redis; the clock is Redis TIME so
// replicas with skewed clocks share one bucket.
const tokenBucketScript = `
local rate = tonumber(ARGV[1])
local burst = tonumber(ARGV[2])
local ttl = tonumber(ARGV[3])

local nowData = redis.call("TIME")
local now = (nowData[1] * 1000) + math.floor(nowData[2] / 1000)

local data = redis.call("HMGET", KEYS[1], "tokens", "ts")
local tokens = tonumber(data[1])
local ts = tonumber(data[2])

if tokens == nil then
  tokens = burst
  ts = now
else
  local delta = now - ts
  if delta < 0 then
    delta = 0
  end
  tokens = math.min(burst, tokens + (delta / 1000) * rate)
  ts = now
end

local allowed = 0
if tokens >= 1 then
  allowed = 1
  tokens = tokens - 1
end

redis.call("HSET", KEYS[1], "tokens", tokens, "ts", ts)
redis.call("PEXPIRE", KEYS[1], ttl)

return {allowed, tostring(tokens), ts}
`

// Limiter decides whether one more request for key is admitted.
type Limiter interface {
	Allow(ctx context.Context, key string, rate float64, burst int) (*Result, error)
}

type Result struct {
	Allowed    bool
	Limit      int
	Remaining  int
	ResetTime  time.Time
	RetryAfter time.Duration
}

type TokenBucket struct {
	client redis.UniversalClient
	script *redis.Script
}

var _ Limiter = (*TokenBucket)(nil)

// NewTokenBucket returns nil when client is nil; callers treat a nil limiter
// as "no rate limiting".
func NewTokenBucket(client redis.UniversalClient) *TokenBucket {
	if client == nil {
		return nil
	}
	return &TokenBucket{
		client: client,
		script: redis.NewScript(tokenBucketScript),
	}
}

func (t *TokenBucket) Allow(ctx context.Context, key string, rate float64, burst int) (*Result, error) {
	if t == nil || t.client == nil {
		return &Result{}, ErrNotConfigured
	}
	if key == "" {
		return &Result{}, ErrEmptyKey
	}
	if rate <= 0 || burst <= 0 {
		return &Result{}, ErrInvalidRate
	}

	ttl := bucketTTL(rate, burst)
	res, err := t.script.Run(ctx, t.client, []string{key}, rate, burst, int64(ttl/time.Millisecond)).Slice()
	if err != nil {
		return &Result{}, err
	}
	if len(res) < 3 {
		return &Result{}, errors.New("invalid rate limit script response")
	}

	return buildResult(castToInt(res[0]) == 1, castToFloat(res[1]), castToInt(res[2]), rate, burst), nil
}

func buildResult(allowed bool, tokens float64, tsMillis int64, rate float64, burst int) *Result {
	var retryAfter time.Duration
	if !allowed {
		if needed := 1.0 - tokens; needed > 0 {
			retryAfter = time.Duration(needed / rate * float64(time.Second))
		}
	}
	return &Result{
		Allowed:    allowed,
		Limit:      burst,
		Remaining:  int(tokens),
		ResetTime:  time.UnixMilli(tsMillis).Add(retryAfter),
		RetryAfter: retryAfter,
	}
}

// bucketTTL keeps an idle bucket around for twice the time it takes to refill.
func bucketTTL(rate float64, burst int) time.Duration {
	if rate <= 0 || burst <= 0 {
		return time.Second
	}
	seconds := math.Ceil((float64(burst) / rate) * 2)
	if seconds < 1 {
		seconds = 1
	}
	return time.Duration(seconds) * time.Second
}

func castToInt(v any) int64 {
	switch val := v.(type) {
	case int64:
		return val
	case int:
		return int64(val)
	case float64:
		return int64(val)
	case string:
		n, _ := strconv.ParseInt(val, 10, 64)
		return n
	default:
		return 0
	}
}

func castToFloat(v any) float64 {
	switch val := v.(type) {
	case float64:
		return val
	case int64:
		return float64(val)
	case int:
		return float64(val)
	case string:
		f, _ := strconv.ParseFloat(val, 64)
		return f
	default:
		return 0
	}
}
