package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
)

type HTTPObserver interface {
	ObserveHTTP(method, route string, status int, elapsed time.Duration)
}

// Metrics records every request against its route template so path
// parameters do not explode label cardinality.
func Metrics(obs HTTPObserver) gin.HandlerFunc {
	return func(c *gin.Context) {
		if obs == nil {
			c.Next()
			return
		}
		start := time.Now()
		c.Next()
		obs.ObserveHTTP(c.Request.Method, routeOf(c), c.Writer.Status(), time.Since(start))
	}
}
