package modeldocs

// Extractor produces structured facts from raw documentation HTML.
type Extractor interface {
	// Extract processes raw HTML and returns the page facts.
	// It tolerates malformed or partial markup: missing fragments
	// yield empty fields rather than errors.
	Extract(html string) (*PageFacts, error)
}
