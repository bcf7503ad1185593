package scrape

import (
	"context"
	"time"

	"github.com/yjones-coder/modeldocs"
	"golang.org/x/time/rate"
)

var _ modeldocs.Throttle = (*Throttle)(nil)

// DefaultFetchDelay is the minimum delay enforced between successive
// network fetches.
const DefaultFetchDelay = 1 * time.Second

// Throttle enforces a minimum delay between fetches using a token
// bucket with a burst of 1 (no bursting allowed).
type Throttle struct {
	limiter *rate.Limiter
}

// NewThrottle creates a Throttle with the given minimum inter-fetch
// delay.
func NewThrottle(delay time.Duration) *Throttle {
	return &Throttle{
		limiter: rate.NewLimiter(rate.Every(delay), 1),
	}
}

// Wait blocks until the next fetch is allowed.
// Returns an error if the context is canceled before the wait
// completes.
func (t *Throttle) Wait(ctx context.Context) error {
	return t.limiter.Wait(ctx)
}
