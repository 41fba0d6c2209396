package relay

import (
	"net/http"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// sweepThreshold is the number of tracked clients above which idle entries
// are pruned.
const sweepThreshold = 1024

// Limiter grants each client key at most max requests per window. A client
// that has used its allowance regains one request every window/max.
type Limiter struct {
	mu      sync.Mutex
	clients map[string]*rate.Limiter
	every   rate.Limit
	burst   int
	now     func() time.Time
}

// NewLimiter creates a per-client limiter.
func NewLimiter(max int, window time.Duration) *Limiter {
	if max <= 0 {
		max = 1
	}
	return &Limiter{
		clients: make(map[string]*rate.Limiter),
		every:   rate.Every(window / time.Duration(max)),
		burst:   max,
		now:     time.Now,
	}
}

// Allow reports whether key may make a request now, consuming one unit of
// its allowance if so.
func (l *Limiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	lim, ok := l.clients[key]
	if !ok {
		if len(l.clients) >= sweepThreshold {
			l.sweepLocked(now)
		}
		lim = rate.NewLimiter(l.every, l.burst)
		l.clients[key] = lim
	}
	return lim.AllowN(now, 1)
}

// Len returns the number of tracked clients.
func (l *Limiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.clients)
}

// sweepLocked drops clients whose allowance has fully refilled; they are
// indistinguishable from new clients.
func (l *Limiter) sweepLocked(now time.Time) {
	for key, lim := range l.clients {
		if lim.TokensAt(now) >= float64(l.burst) {
			delete(l.clients, key)
		}
	}
}

// ClientKey identifies the caller of r: the first X-Forwarded-For entry,
// then CF-Connecting-IP, then "unknown".
func ClientKey(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		first, _, _ := strings.Cut(fwd, ",")
		if first = strings.TrimSpace(first); first != "" {
			return first
		}
	}
	if cf := strings.TrimSpace(r.Header.Get("CF-Connecting-IP")); cf != "" {
		return cf
	}
	return "unknown"
}
