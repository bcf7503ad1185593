package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yjones-coder/modeldocs/mock"
	mdslog "github.com/yjones-coder/modeldocs/slog"
)

func TestLoggingFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("delegates and logs success", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		next := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return "<html>ok</html>", nil
			},
		}
		fetcher := mdslog.NewLoggingFetcher(next, logger)

		html, err := fetcher.Fetch(context.Background(), "https://example.com/doc")
		require.NoError(t, err)
		assert.Equal(t, "<html>ok</html>", html)
		assert.Contains(t, buf.String(), "https://example.com/doc")
	})

	t.Run("propagates and logs failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		next := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return "", errors.New("connection reset")
			},
		}
		fetcher := mdslog.NewLoggingFetcher(next, logger)

		_, err := fetcher.Fetch(context.Background(), "https://example.com/doc")
		require.Error(t, err)
		assert.Contains(t, buf.String(), "WARN")
		assert.Contains(t, buf.String(), "connection reset")
	})
}
