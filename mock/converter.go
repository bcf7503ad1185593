package mock

import "github.com/yjones-coder/modeldocs"

var _ modeldocs.Converter = (*Converter)(nil)

// Converter is a mock implementation of modeldocs.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
