package modeldocs

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"
)

// ScrapeRecord is the persisted unit for one successful scrape: the
// target's identity, where and when the page was fetched, the extracted
// facts, and a content fingerprint for change detection. Records are
// created once per successful fetch+validate+extract cycle and never
// mutated afterwards.
type ScrapeRecord struct {
	ID          string    `json:"id"`
	Provider    string    `json:"provider"`
	Model       string    `json:"model,omitempty"`
	SourceURL   string    `json:"sourceUrl"`
	ScrapedAt   time.Time `json:"scrapedAt"`
	Facts       PageFacts `json:"facts"`
	ContentHash string    `json:"contentHash"`
}

// Validate returns an error if the record contains invalid fields.
func (r *ScrapeRecord) Validate() error {
	if r.Provider == "" {
		return Errorf(EINVALID, "record provider required")
	}
	if r.SourceURL == "" {
		return Errorf(EINVALID, "record source URL required")
	}
	return nil
}

// Title returns the display title for the record: "PROVIDER - model"
// for single-model records, "PROVIDER API Documentation" for
// provider-wide listings.
func (r *ScrapeRecord) Title() string {
	if r.Model != "" {
		return strings.ToUpper(r.Provider) + " - " + r.Model
	}
	return strings.ToUpper(r.Provider) + " API Documentation"
}

// Fingerprint returns the SHA-256 hex digest of the given content.
func Fingerprint(content string) string {
	sum := sha256.Sum256([]byte(content))
	return hex.EncodeToString(sum[:])
}
