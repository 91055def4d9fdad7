package middlewares

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	"github.com/long-kr/Project-Restaurant-Reservation/utils"
)

// limiterIdleTTL is how long a client's bucket outlives its last request.
const limiterIdleTTL = 10 * time.Minute

// RateLimiter keeps one token bucket per client IP. Buckets of clients that
// stay quiet for the idle TTL are evicted, so the set is bounded by the
// number of distinct clients seen within that window.
type RateLimiter struct {
	mu    sync.Mutex
	ips   *cache.Cache
	limit rate.Limit
	burst int
}

func NewRateLimiter(rps float64, burst int) *RateLimiter {
	return newRateLimiter(rps, burst, limiterIdleTTL)
}

func newRateLimiter(rps float64, burst int, idleTTL time.Duration) *RateLimiter {
	return &RateLimiter{
		ips:   cache.New(idleTTL, idleTTL),
		limit: rate.Limit(rps),
		burst: burst,
	}
}

// limiter returns the bucket for ip and pushes its expiry back.
func (rl *RateLimiter) limiter(ip string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	var l *rate.Limiter
	if v, ok := rl.ips.Get(ip); ok {
		l = v.(*rate.Limiter)
	} else {
		l = rate.NewLimiter(rl.limit, rl.burst)
	}
	rl.ips.SetDefault(ip, l)
	return l
}

// RateLimit rejects requests over the per-IP budget with 429. A non-positive
// rate disables limiting.
func (rl *RateLimiter) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if rl.limit <= 0 {
			c.Next()
			return
		}
		if !rl.limiter(c.ClientIP()).Allow() {
			utils.RespondError(c, http.StatusTooManyRequests, "Too many requests, please try again later")
			return
		}
		c.Next()
	}
}
