package mock

import "github.com/yjones-coder/modeldocs"

var _ modeldocs.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of modeldocs.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*modeldocs.PageFacts, error)
}

func (e *Extractor) Extract(html string) (*modeldocs.PageFacts, error) {
	return e.ExtractFn(html)
}
