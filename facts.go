package modeldocs

// MinContentLength is the minimum number of trimmed characters a
// fetched page must contain to be considered a real documentation page
// rather than an empty shell or a wrong-selector miss.
const MinContentLength = 100

// MaxModelIDs caps the number of distinct model identifiers kept per
// page.
const MaxModelIDs = 15

// CapabilityKeywords is the fixed vocabulary of capability tags
// recognized in page text. Presence-only: a keyword appearing anywhere
// in the page (case-insensitive) marks the capability as present.
var CapabilityKeywords = []string{
	"streaming", "function calling", "vision", "audio", "json",
	"tool use", "reasoning", "search", "embeddings", "moderation",
}

// CodeSample is one extracted code block with its detected language.
type CodeSample struct {
	Language string `json:"language"`
	Code     string `json:"code"`
}

// Table is one extracted HTML table. The first row of the source table
// becomes Headers; the remaining rows become Rows. Cell text is
// trimmed; fully empty rows are dropped.
type Table struct {
	Headers []string   `json:"headers"`
	Rows    [][]string `json:"rows"`
}

// Heading is one entry in a page's header outline.
type Heading struct {
	Level int    `json:"level"` // 1..6
	Text  string `json:"text"`
}

// Parameters holds recognized API parameter names classified as
// required or optional. Classification is heuristic: an identifier is
// required if the word "required" appears near its first occurrence in
// the page text. Once classified, an identifier is never reclassified.
type Parameters struct {
	Required []string `json:"required"`
	Optional []string `json:"optional"`
}

// PageFacts is the structured extraction result for one documentation
// page. All string fields are whitespace-normalized; empty code blocks
// and fully empty table rows have been dropped. Missing page fragments
// yield empty fields, never errors.
type PageFacts struct {
	// Description is the text of the first paragraph in document
	// order, or empty if the page has none.
	Description string `json:"description"`

	// Capabilities are the CapabilityKeywords present in the page.
	Capabilities []string `json:"capabilities"`

	// Endpoints are URLs matching the vendor API base pattern,
	// deduplicated.
	Endpoints []string `json:"endpoints"`

	// ModelIDs are model identifiers found in key/value-like
	// substrings, deduplicated in first-encounter order and capped at
	// MaxModelIDs.
	ModelIDs []string `json:"modelIds"`

	Parameters  Parameters   `json:"parameters"`
	CodeSamples []CodeSample `json:"codeSamples"`
	Tables      []Table      `json:"tables"`

	// Outline is the h1..h6 header hierarchy in document order.
	Outline []Heading `json:"outline"`

	// Content is the flattened text of the page's main content area
	// with scripts and styles removed. It is the input to content
	// validation and the fingerprint.
	Content string `json:"content"`

	// ContentMarkdown is the main content converted to Markdown.
	ContentMarkdown string `json:"contentMarkdown"`
}
