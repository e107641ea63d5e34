package httpserver

import (
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"
)

// limiters hands out one token bucket per client IP.
// Entries live for the life of the process; the key space is bounded by
// the client population, which is fine at this scale.
type limiters struct {
	mu  sync.Mutex
	m   map[string]*rate.Limiter
	rps int
	b   int
}

func newLimiters(rps, burst int) *limiters {
	return &limiters{m: make(map[string]*rate.Limiter), rps: rps, b: burst}
}

func (l *limiters) get(key string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()
	if lim, ok := l.m[key]; ok {
		return lim
	}
	lim := rate.NewLimiter(rate.Every(time.Second/time.Duration(l.rps)), l.b)
	l.m[key] = lim
	return lim
}

// rateLimit returns middleware that applies a per-IP token bucket to
// mutating game routes. Keys on RemoteAddr after chi's RealIP has
// rewritten it from forwarding headers.
func (s *Server) rateLimit() func(http.Handler) http.Handler {
	lims := newLimiters(s.cfg.RateLimitRPS, s.cfg.RateLimitBurst)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key, _, err := net.SplitHostPort(r.RemoteAddr)
			if err != nil {
				key = r.RemoteAddr
			}
			if !lims.get(key).Allow() {
				log.Debug().Str("ip", key).Msg("rate limit exceeded")
				http.Error(w, `{"error":"too many requests"}`, http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
