package scrape

import (
	"context"
	"time"

	"github.com/yjones-coder/modeldocs"
)

// Retry policy for fetches: a fixed number of attempts with a fixed
// inter-attempt delay. No exponential backoff, no jitter.
const (
	DefaultFetchAttempts = 3
	DefaultRetryDelay    = 2 * time.Second
)

// FetchFunc is the signature for a fetch function.
type FetchFunc func(ctx context.Context, url string) (string, error)

// LogFunc is the signature for a retry logging function.
type LogFunc func(format string, args ...any)

// FetchWithRetry attempts a fetch up to attempts times, sleeping delay
// between attempts. The logger function, if provided, is called for
// each retry. The final error is wrapped as EUNAVAILABLE.
func FetchWithRetry(ctx context.Context, url string, attempts int, delay time.Duration, fetch FetchFunc, logger LogFunc) (string, error) {
	var lastErr error
	for attempt := 0; attempt < attempts; attempt++ {
		text, err := fetch(ctx, url)
		if err == nil {
			return text, nil
		}
		lastErr = err

		if attempt >= attempts-1 {
			break
		}

		if logger != nil {
			logger("retry %s (attempt %d/%d): %v", url, attempt+2, attempts, err)
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(delay):
		}
	}

	return "", modeldocs.Errorf(modeldocs.EUNAVAILABLE, "fetch %s failed after %d attempts: %v", url, attempts, lastErr)
}
