// Package slog provides logging decorators for modeldocs interfaces.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/yjones-coder/modeldocs"
)

// Ensure LoggingFetcher implements modeldocs.Fetcher at compile time.
var _ modeldocs.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with structured logging of every
// fetch: URL, duration, content size, and failure details.
type LoggingFetcher struct {
	next   modeldocs.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next modeldocs.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs the outcome.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (string, error) {
	begin := time.Now()
	text, err := f.next.Fetch(ctx, url)
	if err != nil {
		f.logger.Warn("fetch failed",
			"url", url,
			"duration", time.Since(begin),
			"error", err,
		)
		return "", err
	}
	f.logger.Info("fetched",
		"url", url,
		"duration", time.Since(begin),
		"bytes", len(text),
	)
	return text, nil
}
