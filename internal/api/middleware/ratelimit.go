package middleware

import (
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/d60-Lab/comedor/pkg/response"
)

// RateLimiter 按客户端 IP 的令牌桶
type RateLimiter struct {
	rps   rate.Limit
	burst int
	ttl   time.Duration

	mu      sync.Mutex
	clients map[string]*client
	now     func() time.Time
}

type client struct {
	limiter *rate.Limiter
	seen    time.Time
}

func NewRateLimiter(rps float64, burst int) *RateLimiter {
	if burst <= 0 {
		burst = 1
	}
	return &RateLimiter{
		rps:     rate.Limit(rps),
		burst:   burst,
		ttl:     10 * time.Minute,
		clients: make(map[string]*client),
		now:     time.Now,
	}
}

// Allow 同时顺带清理长时间未出现的客户端
func (l *RateLimiter) Allow(key string) bool {
	now := l.now()
	l.mu.Lock()
	cl, ok := l.clients[key]
	if !ok {
		cl = &client{limiter: rate.NewLimiter(l.rps, l.burst), seen: now}
		l.clients[key] = cl
		l.evict(now)
	}
	cl.seen = now
	l.mu.Unlock()
	return cl.limiter.AllowN(now, 1)
}

func (l *RateLimiter) evict(now time.Time) {
	for k, cl := range l.clients {
		if now.Sub(cl.seen) > l.ttl {
			delete(l.clients, k)
		}
	}
}

// Middleware 超限返回 429
func (l *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !l.Allow(c.ClientIP()) {
			response.TooManyRequests(c)
			return
		}
		c.Next()
	}
}
