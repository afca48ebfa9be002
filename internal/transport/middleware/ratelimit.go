package middleware

import (
	"math"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/bodyfuel/bodyfuel-backend/pkg/ctxutil"
)

// RateLimiter keeps one token bucket per caller and budget. Callers are
// authenticated users, or client IPs for anonymous requests.
type RateLimiter struct {
	mu      sync.Mutex
	buckets map[bucketKey]*bucket
	now     func() time.Time

	stopOnce sync.Once
	stop     chan struct{}
}

type bucketKey struct {
	caller string
	limit  int
}

type bucket struct {
	tokens float64
	last   time.Time
}

// NewRateLimiter starts a limiter that drops idle buckets every
// cleanupInterval. Call Stop on shutdown.
func NewRateLimiter(cleanupInterval time.Duration) *RateLimiter {
	rl := newRateLimiter(time.Now)
	go rl.cleanupLoop(cleanupInterval)
	return rl
}

func newRateLimiter(now func() time.Time) *RateLimiter {
	return &RateLimiter{
		buckets: make(map[bucketKey]*bucket),
		now:     now,
		stop:    make(chan struct{}),
	}
}

// Stop terminates the cleanup goroutine. It is safe to call more than once.
func (rl *RateLimiter) Stop() {
	rl.stopOnce.Do(func() { close(rl.stop) })
}

// Limit returns middleware allowing bursts of perMinute requests per caller,
// refilled evenly over a minute. It must run after Auth to see the user id.
func (rl *RateLimiter) Limit(perMinute int) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			wait, ok := rl.take(bucketKey{caller: clientKey(r), limit: perMinute})
			if !ok {
				w.Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(wait.Seconds()))))
				writeError(w, http.StatusTooManyRequests, "rate limit exceeded")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// take spends one token. When the bucket is empty it reports how long until
// the next token arrives.
func (rl *RateLimiter) take(key bucketKey) (time.Duration, bool) {
	capacity := float64(key.limit)
	perSecond := capacity / 60

	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	b, ok := rl.buckets[key]
	if !ok {
		b = &bucket{tokens: capacity, last: now}
		rl.buckets[key] = b
	}

	b.tokens = math.Min(capacity, b.tokens+now.Sub(b.last).Seconds()*perSecond)
	b.last = now

	if b.tokens < 1 {
		deficit := 1 - b.tokens
		return time.Duration(deficit / perSecond * float64(time.Second)), false
	}
	b.tokens--
	return 0, true
}

// sweep drops buckets that have refilled completely; they carry no state a
// fresh bucket would not.
func (rl *RateLimiter) sweep() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	for key, b := range rl.buckets {
		refilled := b.tokens + now.Sub(b.last).Seconds()*float64(key.limit)/60
		if refilled >= float64(key.limit) {
			delete(rl.buckets, key)
		}
	}
}

func (rl *RateLimiter) cleanupLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-rl.stop:
			return
		case <-ticker.C:
			rl.sweep()
		}
	}
}

// clientKey is "user:<id>" for authenticated requests and "ip:<host>"
// otherwise. The port is dropped so one client's connections share a bucket.
func clientKey(r *http.Request) string {
	if userID, ok := ctxutil.UserIDFromCtx(r.Context()); ok {
		return "user:" + userID.String()
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	return "ip:" + host
}
