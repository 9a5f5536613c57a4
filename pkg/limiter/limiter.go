// Package limiter throttles requests per client IP with a token bucket.
package limiter

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

type visitors struct {
	mu    sync.Mutex
	items map[string]*visitor
	rps   rate.Limit
	burst int
	ttl   time.Duration
	now   func() time.Time

	lastSweep time.Time
}

func newVisitors(rps int, burst int, ttl time.Duration) *visitors {
	return &visitors{
		items: make(map[string]*visitor),
		rps:   rate.Limit(rps),
		burst: burst,
		ttl:   ttl,
		now:   time.Now,

		lastSweep: time.Now(),
	}
}

func (v *visitors) get(ip string) *rate.Limiter {
	v.mu.Lock()
	defer v.mu.Unlock()

	now := v.now()
	if v.ttl > 0 && now.Sub(v.lastSweep) > v.ttl {
		v.sweep(now)
	}

	item, ok := v.items[ip]
	if !ok {
		item = &visitor{limiter: rate.NewLimiter(v.rps, v.burst)}
		v.items[ip] = item
	}
	item.lastSeen = now

	return item.limiter
}

// sweep forgets clients that were not seen during the last ttl. The caller
// holds mu.
func (v *visitors) sweep(now time.Time) {
	for ip, item := range v.items {
		if now.Sub(item.lastSeen) > v.ttl {
			delete(v.items, ip)
		}
	}
	v.lastSweep = now
}

func (v *visitors) len() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return len(v.items)
}

// Limit returns a middleware allowing rps requests per second with the given
// burst for every client IP. Clients idle for longer than ttl are forgotten
// on a later request; a zero ttl keeps them forever.
// A non-positive rps disables limiting.
func Limit(rps int, burst int, ttl time.Duration) gin.HandlerFunc {
	if rps <= 0 {
		return func(c *gin.Context) {
			c.Next()
		}
	}

	return limit(newVisitors(rps, burst, ttl))
}

func limit(v *visitors) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !v.get(c.ClientIP()).Allow() {
			c.AbortWithStatus(http.StatusTooManyRequests)
			return
		}

		c.Next()
	}
}
