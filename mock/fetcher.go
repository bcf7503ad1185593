package mock

import (
	"context"

	"github.com/yjones-coder/modeldocs"
)

var _ modeldocs.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of modeldocs.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (string, error)
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f.FetchFn(ctx, url)
}

var _ modeldocs.Throttle = (*Throttle)(nil)

// Throttle is a mock implementation of modeldocs.Throttle.
type Throttle struct {
	WaitFn func(ctx context.Context) error
}

func (t *Throttle) Wait(ctx context.Context) error {
	return t.WaitFn(ctx)
}
