package server

import (
	"chat-circle/errors"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// limiterPool holds one token bucket per client address.
// A bucket idle for longer than its full refill is dropped: a fresh one behaves the same.
type limiterPool struct {
	mu        sync.Mutex
	m         map[string]*bucket
	rps       rate.Limit
	burst     int
	idle      time.Duration
	lastSweep time.Time
	now       func() time.Time
}

type bucket struct {
	limiter *rate.Limiter
	seen    time.Time
}

func newLimiterPool(rps float64, burst int) *limiterPool {
	if rps <= 0 {
		rps = 5
	}
	if burst <= 0 {
		burst = 10
	}
	refill := time.Duration(float64(burst) / rps * float64(time.Second))
	return &limiterPool{
		m:     make(map[string]*bucket),
		rps:   rate.Limit(rps),
		burst: burst,
		idle:  max(refill, time.Minute),
		now:   time.Now,
	}
}

func (p *limiterPool) Allow(key string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	now := p.now()
	p.sweep(now)
	b, ok := p.m[key]
	if !ok {
		b = &bucket{limiter: rate.NewLimiter(p.rps, p.burst)}
		p.m[key] = b
	}
	b.seen = now
	return b.limiter.AllowN(now, 1)
}

// sweep drops idle buckets, at most once per idle period.
func (p *limiterPool) sweep(now time.Time) {
	if now.Sub(p.lastSweep) < p.idle {
		return
	}
	p.lastSweep = now
	for key, b := range p.m {
		if now.Sub(b.seen) >= p.idle {
			delete(p.m, key)
		}
	}
}

func (p *limiterPool) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.m)
}

// rateLimit refuses credential attempts beyond the configured rate per client.
func (s *Server) rateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if s.limiter != nil && !s.limiter.Allow(c.ClientIP()) {
			s.fail(c, errors.ErrRateLimited)
			return
		}
		c.Next()
	}
}
