// Package scrape orchestrates the documentation pipeline: resolve the
// target URL, fetch the page, validate its content, extract structured
// facts, render the canonical documents, and persist the artifacts.
package scrape

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/yjones-coder/modeldocs"
)

// diagnosticExcerptLen bounds the raw-HTML excerpt logged when content
// validation fails in verbose mode.
const diagnosticExcerptLen = 500

// Scraper runs the scrape pipeline for one target at a time.
// Execution is strictly sequential: a pipeline run completes fully
// before the next begins.
type Scraper struct {
	Providers *modeldocs.Registry
	Fetcher   modeldocs.Fetcher
	Extractor modeldocs.Extractor
	Store     modeldocs.ArtifactStore
	Throttle  modeldocs.Throttle
	Logger    *slog.Logger

	// Verbose enables raw-HTML diagnostics on low-content failures.
	Verbose bool

	// Attempts and RetryDelay override the fetch retry policy.
	// Zero values mean the defaults.
	Attempts   int
	RetryDelay time.Duration

	// Now and NewID override time and identity generation for tests.
	Now   func() time.Time
	NewID func() string
}

// ScrapeModel runs the pipeline for a single model's documentation
// page. For the aggregator provider, source selects the sub-provider;
// when empty it is inferred from the model-name prefix table.
func (s *Scraper) ScrapeModel(ctx context.Context, provider, source, model string) (*modeldocs.ScrapeRecord, error) {
	p, err := s.Providers.Lookup(provider)
	if err != nil {
		return nil, err
	}
	if model == "" {
		return nil, modeldocs.Errorf(modeldocs.EINVALID, "model name required")
	}

	var url string
	if p.Aggregator {
		if source == "" {
			source, err = modeldocs.InferSource(model)
			if err != nil {
				return nil, err
			}
		}
		url, err = p.AggregateModelURL(source, model)
	} else {
		url, err = p.ModelURL(model)
	}
	if err != nil {
		return nil, err
	}

	namePart := p.Name
	if p.Aggregator {
		namePart = source
	}

	record, err := s.run(ctx, p.Name, model, url)
	if err != nil {
		return nil, err
	}

	base := namePart + "_" + model
	doc, err := modeldocs.Render(record, modeldocs.ModeContext)
	if err != nil {
		return nil, err
	}
	if err := s.persist(ctx, record, base+"_context.md", doc, base+"_data.json"); err != nil {
		return nil, err
	}

	s.logger().Info("scraped model", "provider", p.Name, "model", model, "url", url)
	return record, nil
}

// ScrapeProvider runs the pipeline against a provider's fixed models
// listing URL. Aggregator providers have no listing; they require a
// source and model.
func (s *Scraper) ScrapeProvider(ctx context.Context, provider string) (*modeldocs.ScrapeRecord, error) {
	p, err := s.Providers.Lookup(provider)
	if err != nil {
		return nil, err
	}
	if p.Aggregator {
		return nil, modeldocs.Errorf(modeldocs.EINVALID, "provider %q requires a source and model", p.Name)
	}

	record, err := s.run(ctx, p.Name, "", p.ListingURL())
	if err != nil {
		return nil, err
	}

	doc, err := modeldocs.Render(record, modeldocs.ModeRecord)
	if err != nil {
		return nil, err
	}
	if err := s.Store.Save(ctx, p.Name+"_models_context.md", []byte(doc)); err != nil {
		return nil, err
	}

	s.logger().Info("scraped provider listing", "provider", p.Name, "url", p.ListingURL())
	return record, nil
}

// List enumerates previously persisted artifacts.
func (s *Scraper) List(ctx context.Context) ([]modeldocs.Artifact, error) {
	return s.Store.List(ctx)
}

// run executes throttle, fetch with retry, validate, and extract,
// returning the assembled record.
func (s *Scraper) run(ctx context.Context, provider, model, url string) (*modeldocs.ScrapeRecord, error) {
	if err := s.Throttle.Wait(ctx); err != nil {
		return nil, err
	}

	html, err := FetchWithRetry(ctx, url, s.attempts(), s.retryDelay(), s.Fetcher.Fetch, s.retryLog)
	if err != nil {
		return nil, err
	}

	facts, err := s.Extractor.Extract(html)
	if err != nil {
		return nil, err
	}

	if !modeldocs.ValidContent(facts.Content) {
		if s.Verbose {
			excerpt := html
			if len(excerpt) > diagnosticExcerptLen {
				excerpt = excerpt[:diagnosticExcerptLen]
			}
			s.logger().Debug("low content page", "url", url, "html", excerpt)
		}
		return nil, modeldocs.Errorf(modeldocs.ELOWCONTENT, "page %s has too little content (%d chars, need > %d)", url, len(facts.Content), modeldocs.MinContentLength)
	}

	return &modeldocs.ScrapeRecord{
		ID:          s.newID(),
		Provider:    provider,
		Model:       model,
		SourceURL:   url,
		ScrapedAt:   s.now(),
		Facts:       *facts,
		ContentHash: modeldocs.Fingerprint(facts.Content),
	}, nil
}

// persist writes the markdown document and the structured record as
// sibling artifacts. A failure on one does not skip the other; the
// first error is returned after both writes were attempted.
func (s *Scraper) persist(ctx context.Context, record *modeldocs.ScrapeRecord, mdName, mdDoc, jsonName string) error {
	mdErr := s.Store.Save(ctx, mdName, []byte(mdDoc))
	if mdErr != nil {
		s.logger().Error("failed to save document", "name", mdName, "error", mdErr)
	}

	data, jsonErr := json.MarshalIndent(record, "", "  ")
	if jsonErr == nil {
		jsonErr = s.Store.Save(ctx, jsonName, data)
	}
	if jsonErr != nil {
		s.logger().Error("failed to save record", "name", jsonName, "error", jsonErr)
	}

	if mdErr != nil {
		return mdErr
	}
	return jsonErr
}

func (s *Scraper) attempts() int {
	if s.Attempts > 0 {
		return s.Attempts
	}
	return DefaultFetchAttempts
}

func (s *Scraper) retryDelay() time.Duration {
	if s.RetryDelay > 0 {
		return s.RetryDelay
	}
	return DefaultRetryDelay
}

func (s *Scraper) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now().UTC()
}

func (s *Scraper) newID() string {
	if s.NewID != nil {
		return s.NewID()
	}
	return uuid.NewString()
}

func (s *Scraper) logger() *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return slog.Default()
}

func (s *Scraper) retryLog(format string, args ...any) {
	s.logger().Warn(fmt.Sprintf(format, args...))
}
