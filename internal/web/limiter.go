package web

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// idleClientTTL is how long a client's bucket is kept after its last attempt.
const idleClientTTL = 10 * time.Minute

type clientLimiter struct {
	limiter *rate.Limiter
	seen    time.Time
}

// loginLimiter keeps one token bucket per client key so a noisy client
// cannot lock out others.
type loginLimiter struct {
	mu        sync.Mutex
	perMinute int
	clients   map[string]*clientLimiter
	lastSweep time.Time
	now       func() time.Time
}

func newLoginLimiter(perMinute int) *loginLimiter {
	return &loginLimiter{
		perMinute: perMinute,
		clients:   map[string]*clientLimiter{},
		now:       time.Now,
	}
}

// Allow reports whether key may attempt another login now. A non-positive
// rate disables limiting.
func (l *loginLimiter) Allow(key string) bool {
	if l.perMinute <= 0 {
		return true
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if now.Sub(l.lastSweep) > idleClientTTL {
		for k, c := range l.clients {
			if now.Sub(c.seen) > idleClientTTL {
				delete(l.clients, k)
			}
		}
		l.lastSweep = now
	}

	c, ok := l.clients[key]
	if !ok {
		c = &clientLimiter{
			limiter: rate.NewLimiter(rate.Every(time.Minute/time.Duration(l.perMinute)), l.perMinute),
		}
		l.clients[key] = c
	}
	c.seen = now
	return c.limiter.AllowN(now, 1)
}
