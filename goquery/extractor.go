// Package goquery provides a CSS-selector based implementation of
// modeldocs.Extractor for pulling structured facts out of
// loosely-structured documentation HTML.
package goquery

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/yjones-coder/modeldocs"
)

// Ensure Extractor implements modeldocs.Extractor at compile time.
var _ modeldocs.Extractor = (*Extractor)(nil)

// defaultEndpointPattern matches the aggregator's API base URLs.
var defaultEndpointPattern = regexp.MustCompile(`https://api\.aimlapi\.com/v1/[a-z/\-]+`)

// modelIDPattern matches model key/value-like substrings such as
// model: "gpt-4o" or model='claude-3'.
var modelIDPattern = regexp.MustCompile(`(?i)model["']?\s*[:=]\s*["']?([a-z0-9.\-]+)`)

// Parameter recognition patterns, applied in order. The strong-tag
// pattern matches raw HTML (the tags are gone from flattened text);
// the others match the flattened page text.
var (
	backtickParamPattern = regexp.MustCompile("`([a-z_]+)`\\s*(?:\\||:|-)")
	strongParamPattern   = regexp.MustCompile(`(?i)<strong>([a-z_]+)</strong>\s*(?:string|integer|number|boolean|array|object)`)
	labelParamPattern    = regexp.MustCompile(`(?i)(?:parameter|param|field)["']?\s*[:=]?\s*["']?([a-z_]+)`)
)

// requiredWindow is the number of characters scanned on each side of a
// parameter's first occurrence when deciding required vs optional.
const requiredWindow = 100

// Extractor extracts structured facts from documentation HTML.
// It never fails on malformed input: missing or broken fragments yield
// empty fields.
type Extractor struct {
	endpointPattern *regexp.Regexp
	converter       modeldocs.Converter
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithEndpointPattern overrides the regular expression used to
// recognize API endpoint URLs in page text.
func WithEndpointPattern(re *regexp.Regexp) Option {
	return func(e *Extractor) {
		e.endpointPattern = re
	}
}

// WithConverter sets the converter used to produce the Markdown
// rendition of the page's main content. Without one, ContentMarkdown
// is left empty.
func WithConverter(c modeldocs.Converter) Option {
	return func(e *Extractor) {
		e.converter = c
	}
}

// NewExtractor creates a new Extractor.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{
		endpointPattern: defaultEndpointPattern,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract processes raw HTML and returns the page facts.
func (e *Extractor) Extract(html string) (*modeldocs.PageFacts, error) {
	facts := &modeldocs.PageFacts{}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		// Unparseable input yields empty facts, not an error.
		return facts, nil
	}

	fullText := doc.Text()

	facts.Description = normalizeSpace(doc.Find("p").First().Text())
	facts.Capabilities = extractCapabilities(fullText)
	facts.Endpoints = dedup(e.endpointPattern.FindAllString(fullText, -1), -1)
	facts.ModelIDs = extractModelIDs(fullText)
	facts.Parameters = extractParameters(html, fullText)
	facts.CodeSamples = extractCodeSamples(doc)
	facts.Tables = extractTables(doc)
	facts.Outline = extractOutline(doc)

	// Content extraction removes script/style nodes, so it runs after
	// every scan over the intact document.
	main := doc.Find("main")
	if main.Length() == 0 {
		main = doc.Selection.Find("html")
	}
	main.Find("script, style").Remove()
	facts.Content = flattenText(main.Text())

	if e.converter != nil {
		if mainHTML, err := goquery.OuterHtml(main.First()); err == nil {
			if md, err := e.converter.Convert(mainHTML); err == nil {
				facts.ContentMarkdown = strings.TrimSpace(md)
			}
		}
	}

	return facts, nil
}

// extractCapabilities returns the capability keywords present in the
// page text, case-insensitively, in vocabulary order.
func extractCapabilities(text string) []string {
	lower := strings.ToLower(text)
	var caps []string
	for _, keyword := range modeldocs.CapabilityKeywords {
		if strings.Contains(lower, keyword) {
			caps = append(caps, keyword)
		}
	}
	return caps
}

// extractModelIDs returns model identifiers found in the text,
// lowercased, deduplicated in first-encounter order, and capped at
// modeldocs.MaxModelIDs.
func extractModelIDs(text string) []string {
	var ids []string
	for _, m := range modelIDPattern.FindAllStringSubmatch(text, -1) {
		ids = append(ids, strings.ToLower(m[1]))
	}
	return dedup(ids, modeldocs.MaxModelIDs)
}

// extractParameters recognizes parameter identifiers via the three
// structural patterns and classifies each as required or optional by
// proximity of the word "required" to the identifier's first occurrence
// in the flattened text. An identifier, once classified, is never
// reclassified.
func extractParameters(html, text string) modeldocs.Parameters {
	lower := strings.ToLower(text)

	var params modeldocs.Parameters
	seen := make(map[string]bool)

	classify := func(name string) {
		if seen[name] {
			return
		}
		seen[name] = true
		if isRequired(lower, name) {
			params.Required = append(params.Required, name)
		} else {
			params.Optional = append(params.Optional, name)
		}
	}

	for _, m := range backtickParamPattern.FindAllStringSubmatch(text, -1) {
		classify(strings.ToLower(m[1]))
	}
	for _, m := range strongParamPattern.FindAllStringSubmatch(html, -1) {
		classify(strings.ToLower(m[1]))
	}
	for _, m := range labelParamPattern.FindAllStringSubmatch(text, -1) {
		classify(strings.ToLower(m[1]))
	}

	return params
}

// isRequired reports whether "required" appears within requiredWindow
// characters of name's first occurrence in the lowercased text.
func isRequired(lower, name string) bool {
	idx := strings.Index(lower, name)
	if idx < 0 {
		return false
	}
	start := max(0, idx-requiredWindow)
	end := min(len(lower), idx+requiredWindow)
	return strings.Contains(lower[start:end], "required")
}

// extractCodeSamples returns every code/pre element's text with its
// detected language. A pre element that wraps a code element is
// skipped so the sample is not emitted twice. Whitespace-only samples
// are dropped.
func extractCodeSamples(doc *goquery.Document) []modeldocs.CodeSample {
	var samples []modeldocs.CodeSample
	doc.Find("code, pre").Each(func(_ int, sel *goquery.Selection) {
		if goquery.NodeName(sel) == "pre" && sel.Find("code").Length() > 0 {
			return
		}

		code := strings.TrimSpace(sel.Text())
		if code == "" {
			return
		}

		samples = append(samples, modeldocs.CodeSample{
			Language: detectLanguage(sel),
			Code:     code,
		})
	})
	return samples
}

// detectLanguage finds the sample language from a language-<x> class
// token, then a data-language attribute, falling back to "text".
func detectLanguage(sel *goquery.Selection) string {
	if class, ok := sel.Attr("class"); ok {
		for _, token := range strings.Fields(class) {
			if strings.HasPrefix(token, "language-") {
				return strings.TrimPrefix(token, "language-")
			}
		}
	}
	if lang, ok := sel.Attr("data-language"); ok && lang != "" {
		return lang
	}
	return "text"
}

// extractTables returns every table with at least one non-empty row.
// The first row becomes the header row; cell text is trimmed; rows
// whose cells are all empty are dropped.
func extractTables(doc *goquery.Document) []modeldocs.Table {
	var tables []modeldocs.Table
	doc.Find("table").Each(func(_ int, table *goquery.Selection) {
		var rows [][]string
		table.Find("tr").Each(func(_ int, tr *goquery.Selection) {
			var cells []string
			empty := true
			tr.Find("td, th").Each(func(_ int, td *goquery.Selection) {
				text := strings.TrimSpace(td.Text())
				if text != "" {
					empty = false
				}
				cells = append(cells, text)
			})
			if len(cells) == 0 || empty {
				return
			}
			rows = append(rows, cells)
		})

		if len(rows) == 0 {
			return
		}
		tables = append(tables, modeldocs.Table{
			Headers: rows[0],
			Rows:    rows[1:],
		})
	})
	return tables
}

// extractOutline returns the h1..h6 hierarchy in document order,
// skipping headings with empty text.
func extractOutline(doc *goquery.Document) []modeldocs.Heading {
	var outline []modeldocs.Heading
	doc.Find("h1, h2, h3, h4, h5, h6").Each(func(_ int, sel *goquery.Selection) {
		text := normalizeSpace(sel.Text())
		if text == "" {
			return
		}
		level := int(goquery.NodeName(sel)[1] - '0')
		outline = append(outline, modeldocs.Heading{Level: level, Text: text})
	})
	return outline
}

// flattenText normalizes multi-line text: lines are split on runs of
// double spaces, trimmed, and blank fragments dropped.
func flattenText(text string) string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		for _, phrase := range strings.Split(line, "  ") {
			phrase = strings.TrimSpace(phrase)
			if phrase != "" {
				out = append(out, phrase)
			}
		}
	}
	return strings.Join(out, "\n")
}

// normalizeSpace collapses all whitespace runs to single spaces and
// trims the ends.
func normalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// dedup removes duplicates preserving first-encounter order, keeping
// at most limit entries (limit < 0 means unlimited).
func dedup(items []string, limit int) []string {
	seen := make(map[string]bool, len(items))
	var out []string
	for _, item := range items {
		if seen[item] {
			continue
		}
		seen[item] = true
		out = append(out, item)
		if limit >= 0 && len(out) == limit {
			break
		}
	}
	return out
}
