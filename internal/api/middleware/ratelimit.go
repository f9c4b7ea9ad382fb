package middleware

import (
	"sync"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/d60-Lab/microblog/pkg/response"
)

// RateLimit applies a per-client-IP token bucket. Limiters live for the
// process lifetime; the keyspace is bounded by the set of client IPs.
func RateLimit(rps float64, burst int) gin.HandlerFunc {
	var (
		mu       sync.Mutex
		limiters = make(map[string]*rate.Limiter)
	)
	return func(c *gin.Context) {
		ip := c.ClientIP()
		mu.Lock()
		lim, ok := limiters[ip]
		if !ok {
			lim = rate.NewLimiter(rate.Limit(rps), burst)
			limiters[ip] = lim
		}
		mu.Unlock()
		if !lim.Allow() {
			response.TooManyRequests(c, "rate limit exceeded")
			return
		}
		c.Next()
	}
}
