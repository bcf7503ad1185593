package fs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"github.com/yjones-coder/modeldocs"
)

// Ensure CachingFetcher implements modeldocs.Fetcher at compile time.
var _ modeldocs.Fetcher = (*CachingFetcher)(nil)

// CachingFetcher wraps a Fetcher with a transparent on-disk cache
// keyed by a digest of the URL. Cache entries are append-only by
// filename; a bypass flag skips reads while still refreshing entries
// after a successful fetch.
type CachingFetcher struct {
	next     modeldocs.Fetcher
	cacheDir string
	bypass   bool
}

// CacheOption configures a CachingFetcher.
type CacheOption func(*CachingFetcher)

// WithBypass disables cache reads. Fetched pages are still written to
// the cache.
func WithBypass(bypass bool) CacheOption {
	return func(c *CachingFetcher) {
		c.bypass = bypass
	}
}

// NewCachingFetcher creates a CachingFetcher storing entries under
// cacheDir, creating it if necessary.
func NewCachingFetcher(next modeldocs.Fetcher, cacheDir string, opts ...CacheOption) (*CachingFetcher, error) {
	if err := os.MkdirAll(cacheDir, 0755); err != nil {
		return nil, modeldocs.Errorf(modeldocs.EINTERNAL, "cannot create cache directory %q: %v", cacheDir, err)
	}
	c := &CachingFetcher{next: next, cacheDir: cacheDir}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Fetch returns the cached page text for the URL when available,
// otherwise delegates to the wrapped fetcher and caches the result.
func (c *CachingFetcher) Fetch(ctx context.Context, url string) (string, error) {
	path := c.cachePath(url)

	if !c.bypass {
		if data, err := os.ReadFile(path); err == nil {
			return string(data), nil
		}
	}

	text, err := c.next.Fetch(ctx, url)
	if err != nil {
		return "", err
	}

	// Cache write failures are not fatal: the fetch succeeded.
	_ = os.WriteFile(path, []byte(text), 0644)

	return text, nil
}

// cachePath derives the cache entry path from a deterministic digest
// of the URL.
func (c *CachingFetcher) cachePath(url string) string {
	key := fmt.Sprintf("%016x", xxhash.Sum64String(url))
	return filepath.Join(c.cacheDir, key+".html")
}
