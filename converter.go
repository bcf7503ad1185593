package modeldocs

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms HTML content into Markdown.
	// The input should be the page's main content HTML.
	Convert(html string) (string, error)
}
