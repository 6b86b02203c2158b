package middleware

import (
	"net/http"
	"sync"

	"carlot/api/common"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// IPRateLimiter keeps one token bucket per client IP. Used on the login
// endpoint to slow down password guessing.
type IPRateLimiter struct {
	rps     rate.Limit
	burst   int
	clients map[string]*rate.Limiter
	mu      sync.Mutex
}

func NewIPRateLimiter(rps float64, burst int) *IPRateLimiter {
	return &IPRateLimiter{
		rps:     rate.Limit(rps),
		burst:   burst,
		clients: make(map[string]*rate.Limiter),
	}
}

func (rl *IPRateLimiter) limiter(ip string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	l, ok := rl.clients[ip]
	if !ok {
		l = rate.NewLimiter(rl.rps, rl.burst)
		rl.clients[ip] = l
	}
	return l
}

// Middleware returns the gin middleware.
func (rl *IPRateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.limiter(c.ClientIP()).Allow() {
			common.RespondErrorAbort(c, http.StatusTooManyRequests, "Too many requests")
			return
		}
		c.Next()
	}
}
