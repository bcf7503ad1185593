package modeldocs

import "context"

// Fetcher retrieves raw page text from URLs.
// Implementations hide transport details: HTTP headers, timeouts, and
// transparent caching are composed behind this interface.
type Fetcher interface {
	// Fetch returns the raw page text for the URL.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (string, error)
}

// Throttle enforces a minimum delay between successive network
// fetches.
type Throttle interface {
	// Wait blocks until the next fetch is allowed, or until the
	// context is canceled.
	Wait(ctx context.Context) error
}
