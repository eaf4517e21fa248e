package middleware

import (
	"context"
	"log/slog"
	"math"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"
)

// RateLimitStore counts hits per key within fixed windows.
// Hit registers one request and returns the count in the current window
// together with the time left until the window resets.
type RateLimitStore interface {
	Hit(ctx context.Context, key string, window time.Duration) (count int64, resetIn time.Duration, err error)
}

// RateLimitRule is a named admission limit: at most Max requests per Window
// from one client origin. Rules with the same Name share a counter.
type RateLimitRule struct {
	Name   string
	Max    int
	Window time.Duration
}

// RateLimit returns middleware that rejects requests beyond rule.Max within
// rule.Window with 429 and a Retry-After header. Clients are keyed by remote
// IP. Store errors are logged and the request is let through.
func RateLimit(store RateLimitStore, rule RateLimitRule, logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := rule.Name + ":" + ClientIP(r)

			count, resetIn, err := store.Hit(r.Context(), key, rule.Window)
			if err != nil {
				logger.WarnContext(r.Context(), "rate limit store unavailable",
					slog.String("rule", rule.Name),
					slog.String("error", err.Error()),
				)
				next.ServeHTTP(w, r)
				return
			}

			if count > int64(rule.Max) {
				retryAfter := int(math.Ceil(resetIn.Seconds()))
				if retryAfter < 1 {
					retryAfter = 1
				}
				w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
				writeJSONError(w, http.StatusTooManyRequests, "too many requests")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// ClientIP returns the request's remote IP without the port.
func ClientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// ---------------------------------------------------------------------------
// In-memory store
// ---------------------------------------------------------------------------

// MemoryStore keeps fixed-window counters in process memory.
// Counters are lost on restart and are not shared between replicas.
type MemoryStore struct {
	windows sync.Map // map[string]*window
	now     func() time.Time
	stop    chan struct{}
}

type window struct {
	mu      sync.Mutex
	count   int64
	resetAt time.Time
}

// NewMemoryStore creates an in-memory store with background cleanup of
// expired windows. Call Stop() on shutdown.
func NewMemoryStore(cleanupInterval time.Duration) *MemoryStore {
	s := &MemoryStore{now: time.Now, stop: make(chan struct{})}
	go s.cleanup(cleanupInterval)
	return s
}

// Stop terminates the background cleanup goroutine.
func (s *MemoryStore) Stop() {
	close(s.stop)
}

// Hit implements RateLimitStore.
func (s *MemoryStore) Hit(_ context.Context, key string, d time.Duration) (int64, time.Duration, error) {
	now := s.now()

	val, _ := s.windows.LoadOrStore(key, &window{resetAt: now.Add(d)})
	win := val.(*window)

	win.mu.Lock()
	defer win.mu.Unlock()

	if !now.Before(win.resetAt) {
		win.count = 0
		win.resetAt = now.Add(d)
	}
	win.count++

	return win.count, win.resetAt.Sub(now), nil
}

func (s *MemoryStore) cleanup(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stop:
			return
		case <-ticker.C:
			now := s.now()
			s.windows.Range(func(key, value any) bool {
				win := value.(*window)
				win.mu.Lock()
				expired := !now.Before(win.resetAt)
				win.mu.Unlock()
				if expired {
					s.windows.Delete(key)
				}
				return true
			})
		}
	}
}
