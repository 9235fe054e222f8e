package discord

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// sweepEvery: cada cuánto se descartan los limiters de usuarios inactivos.
const sweepEvery = 10 * time.Minute

// userLimiter: un token bucket por usuario para los botones.
type userLimiter struct {
	mu        sync.Mutex
	per       map[string]*rate.Limiter
	limit     rate.Limit
	burst     int
	now       func() time.Time
	lastSweep time.Time
}

func newUserLimiter(perSecond float64, burst int) *userLimiter {
	return &userLimiter{
		per:       map[string]*rate.Limiter{},
		limit:     rate.Limit(perSecond),
		burst:     burst,
		now:       time.Now,
		lastSweep: time.Now(),
	}
}

func (l *userLimiter) Allow(userID string) bool {
	now := l.now()
	l.mu.Lock()
	if now.Sub(l.lastSweep) >= sweepEvery {
		l.sweepLocked(now)
	}
	lim, ok := l.per[userID]
	if !ok {
		lim = rate.NewLimiter(l.limit, l.burst)
		l.per[userID] = lim
	}
	l.mu.Unlock()
	return lim.AllowN(now, 1)
}

// sweepLocked borra los buckets llenos: recrearlos da el mismo resultado.
func (l *userLimiter) sweepLocked(now time.Time) {
	for id, lim := range l.per {
		if lim.TokensAt(now) >= float64(l.burst) {
			delete(l.per, id)
		}
	}
	l.lastSweep = now
}

func (l *userLimiter) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.per)
}
