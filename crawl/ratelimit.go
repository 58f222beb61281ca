package crawl

import (
	"context"
	"sync"

	"github.com/fwojciec/bpyschema"
	"golang.org/x/time/rate"
)

var _ bpyschema.RequestLimiter = (*HostLimiter)(nil)

// HostLimiter paces requests per host using token buckets.
// Each host gets its own limiter, so mirrors and the primary documentation
// host are throttled independently.
type HostLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	rps      float64
	burst    int
}

// NewHostLimiter creates a new HostLimiter allowing rps requests per second
// per host with the given burst. A burst below 1 is treated as 1.
func NewHostLimiter(rps float64, burst int) *HostLimiter {
	if burst < 1 {
		burst = 1
	}
	return &HostLimiter{
		limiters: make(map[string]*rate.Limiter),
		rps:      rps,
		burst:    burst,
	}
}

// Wait blocks until a request to host is allowed.
// Returns an error if the context is canceled before the wait completes.
func (l *HostLimiter) Wait(ctx context.Context, host string) error {
	l.mu.Lock()
	limiter, ok := l.limiters[host]
	if !ok {
		limiter = rate.NewLimiter(rate.Limit(l.rps), l.burst)
		l.limiters[host] = limiter
	}
	l.mu.Unlock()

	return limiter.Wait(ctx)
}
