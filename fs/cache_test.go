package fs_test

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yjones-coder/modeldocs/fs"
	"github.com/yjones-coder/modeldocs/mock"
)

func TestCachingFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("delegates on miss and serves from cache on hit", func(t *testing.T) {
		t.Parallel()

		calls := 0
		next := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				calls++
				return "<html>fresh</html>", nil
			},
		}
		fetcher, err := fs.NewCachingFetcher(next, t.TempDir())
		require.NoError(t, err)

		ctx := context.Background()
		html, err := fetcher.Fetch(ctx, "https://docs.anthropic.com/en/docs/about-claude/models")
		require.NoError(t, err)
		assert.Equal(t, "<html>fresh</html>", html)
		assert.Equal(t, 1, calls)

		html, err = fetcher.Fetch(ctx, "https://docs.anthropic.com/en/docs/about-claude/models")
		require.NoError(t, err)
		assert.Equal(t, "<html>fresh</html>", html)
		assert.Equal(t, 1, calls)
	})

	t.Run("different URLs get different cache entries", func(t *testing.T) {
		t.Parallel()

		next := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return "page for " + url, nil
			},
		}
		fetcher, err := fs.NewCachingFetcher(next, t.TempDir())
		require.NoError(t, err)

		ctx := context.Background()
		a, err := fetcher.Fetch(ctx, "https://example.com/a")
		require.NoError(t, err)
		b, err := fetcher.Fetch(ctx, "https://example.com/b")
		require.NoError(t, err)
		assert.NotEqual(t, a, b)
	})

	t.Run("bypass skips the cache read but still writes", func(t *testing.T) {
		t.Parallel()

		cacheDir := t.TempDir()
		calls := 0
		next := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				calls++
				return "<html>live</html>", nil
			},
		}
		fetcher, err := fs.NewCachingFetcher(next, cacheDir, fs.WithBypass(true))
		require.NoError(t, err)

		ctx := context.Background()
		_, err = fetcher.Fetch(ctx, "https://example.com/doc")
		require.NoError(t, err)
		_, err = fetcher.Fetch(ctx, "https://example.com/doc")
		require.NoError(t, err)
		assert.Equal(t, 2, calls)

		entries, err := os.ReadDir(cacheDir)
		require.NoError(t, err)
		assert.Len(t, entries, 1)
	})

	t.Run("delegate errors are not cached", func(t *testing.T) {
		t.Parallel()

		calls := 0
		next := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				calls++
				if calls == 1 {
					return "", errors.New("connection refused")
				}
				return "<html>recovered</html>", nil
			},
		}
		fetcher, err := fs.NewCachingFetcher(next, t.TempDir())
		require.NoError(t, err)

		ctx := context.Background()
		_, err = fetcher.Fetch(ctx, "https://example.com/flaky")
		require.Error(t, err)

		html, err := fetcher.Fetch(ctx, "https://example.com/flaky")
		require.NoError(t, err)
		assert.Equal(t, "<html>recovered</html>", html)
		assert.Equal(t, 2, calls)
	})
}
