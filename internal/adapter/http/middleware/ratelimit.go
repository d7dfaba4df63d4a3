package middleware

import (
	"math"
	"net/http"
	"strconv"

	"bidright/internal/infrastructure/ratelimit"
	"bidright/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var errRateLimited = pkg.NewDomainErrorSimple("RATE_LIMITED", "Too many requests", http.StatusTooManyRequests)

const rateLimitKeyPrefix = "bidright:ratelimit:"

// RateLimit throttles per authenticated user, falling back to client IP.
// Limiter failures let the request through.
func RateLimit(limiter ratelimit.Limiter, rate float64, burst int, log *zap.Logger) gin.HandlerFunc {
	if log == nil {
		log = zap.NewNop()
	}
	log = log.Named("ratelimit")

	return func(c *gin.Context) {
		if limiter == nil {
			c.Next()
			return
		}

		key := rateLimitKey(c)
		res, err := limiter.Allow(c.Request.Context(), key, rate, burst)
		if err != nil {
			log.Warn("rate limit check failed", zap.String("key", key), zap.Error(err))
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(res.Limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(res.Remaining))
		if !res.ResetTime.IsZero() {
			c.Header("X-RateLimit-Reset", strconv.FormatInt(res.ResetTime.Unix(), 10))
		}

		if !res.Allowed {
			retry := int(math.Ceil(res.RetryAfter.Seconds()))
			if retry < 1 {
				retry = 1
			}
			c.Header("Retry-After", strconv.Itoa(retry))
			log.Info("rate limit exceeded", zap.String("key", key), zap.String("route", routeOf(c)))
			abort(c, errRateLimited)
			return
		}
		c.Next()
	}
}

func rateLimitKey(c *gin.Context) string {
	if userID := UserID(c); userID != "" {
		return rateLimitKeyPrefix + "user:" + userID
	}
	return rateLimitKeyPrefix + "ip:" + c.ClientIP()
}
