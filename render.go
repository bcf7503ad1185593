package modeldocs

import (
	"fmt"
	"strings"
)

// RenderMode selects the document shape produced by Render.
type RenderMode int

const (
	// ModeContext produces the long, boilerplate-heavy context
	// document for a single model: fixed table of contents, static
	// authentication/pricing/error-handling sections, and data-driven
	// sections filled from the extracted facts.
	ModeContext RenderMode = iota

	// ModeRecord produces a compact document purely from the extracted
	// facts, with no provider-specific boilerplate.
	ModeRecord
)

// Render produces the canonical Markdown document for a record.
// Rendering is deterministic and side-effect-free: identical records
// produce byte-identical output. All timestamps come from the record;
// all filtering happened at extraction time.
func Render(record *ScrapeRecord, mode RenderMode) (string, error) {
	if record == nil {
		return "", Errorf(EINVALID, "record required")
	}
	switch mode {
	case ModeContext:
		return renderContext(record), nil
	case ModeRecord:
		return renderRecord(record), nil
	default:
		return "", Errorf(EINVALID, "unknown render mode %d", mode)
	}
}

// renderTimeLayout is the timestamp format used in rendered documents.
const renderTimeLayout = "2006-01-02 15:04:05"

func renderContext(r *ScrapeRecord) string {
	model := r.Model
	if model == "" {
		model = r.Provider
	}
	url := r.SourceURL
	ts := r.ScrapedAt.Format(renderTimeLayout)
	f := &r.Facts

	var b strings.Builder

	fmt.Fprintf(&b, "# AI Model API Documentation Context: %s\n\n", model)
	fmt.Fprintf(&b, "**Generated**: %s\n", ts)
	fmt.Fprintf(&b, "**Model**: %s\n", model)
	fmt.Fprintf(&b, "**Source**: %s\n\n", url)
	b.WriteString("---\n\n")

	b.WriteString(`## Table of Contents

1. [Model Overview](#model-overview)
2. [Authentication](#authentication)
3. [API Endpoints](#api-endpoints)
4. [Request Parameters](#request-parameters)
5. [Response Format](#response-format)
6. [Code Examples](#code-examples)
7. [Error Handling](#error-handling)
8. [Rate Limits & Pricing](#rate-limits--pricing)

---

`)

	b.WriteString("## Model Overview\n\n### Description\n\n")
	if f.Description != "" {
		b.WriteString(f.Description)
	} else {
		b.WriteString("See documentation for details.")
	}
	b.WriteString("\n\n### Capabilities\n\n")
	if len(f.Capabilities) > 0 {
		b.WriteString(formatList(f.Capabilities))
	} else {
		b.WriteString("- Standard text generation capabilities")
	}
	b.WriteString("\n\n### Documentation\n\n")
	fmt.Fprintf(&b, "- **Full Documentation**: [%s](%s)\n", url, url)
	b.WriteString("- **Base URL**: https://api.aimlapi.com/v1\n\n---\n\n")

	b.WriteString(`## Authentication

### API Key Setup

All requests require Bearer token authentication:

` + "```" + `
Authorization: Bearer <YOUR_API_KEY>
` + "```" + `

### Getting Your API Key

1. Sign up or log in on the provider's site
2. Go to the API Keys section
3. Generate a new key
4. Store it securely (environment variable, not source code)

---

`)

	b.WriteString("## API Endpoints\n\n### Available Endpoints\n\n")
	if len(f.Endpoints) > 0 {
		b.WriteString(formatList(f.Endpoints))
	} else {
		b.WriteString("- `POST https://api.aimlapi.com/v1/chat/completions`")
	}
	b.WriteString("\n\n### Primary Endpoint\n\n")
	b.WriteString("**POST** `https://api.aimlapi.com/v1/chat/completions`\n\n")
	fmt.Fprintf(&b, "Main endpoint for chat-based interactions with %s.\n\n---\n\n", model)

	fmt.Fprintf(&b, `## Request Parameters

### Required Parameters

| Parameter | Type | Description |
|-----------|------|-------------|
| `+"`model`"+` | string | Model ID (e.g., `+"`%s`"+`) |
| `+"`messages`"+` | array | Array of message objects with roles |

### Optional Parameters

| Parameter | Type | Default | Description |
|-----------|------|---------|-------------|
| `+"`temperature`"+` | number | 1.0 | Randomness (0.0-2.0) |
| `+"`top_p`"+` | number | 1.0 | Nucleus sampling (0.01-1.0) |
| `+"`max_tokens`"+` | number | - | Max response tokens |
| `+"`stream`"+` | boolean | false | Enable streaming |
| `+"`stop`"+` | array/string | - | Stop sequences (up to 4) |
| `+"`frequency_penalty`"+` | number | 0 | Frequency penalty (-2.0 to 2.0) |
| `+"`presence_penalty`"+` | number | 0 | Presence penalty (-2.0 to 2.0) |
| `+"`seed`"+` | integer | - | For deterministic output |
| `+"`tools`"+` | array | - | Function definitions |
| `+"`tool_choice`"+` | string | auto | Tool usage control |
| `+"`response_format`"+` | object | - | Output format (text, json) |
`, model)
	if len(f.Parameters.Required) > 0 {
		b.WriteString("\n### Detected Required Parameters\n\n")
		b.WriteString(formatCodeList(f.Parameters.Required))
		b.WriteString("\n")
	}
	if len(f.Parameters.Optional) > 0 {
		b.WriteString("\n### Detected Optional Parameters\n\n")
		b.WriteString(formatCodeList(f.Parameters.Optional))
		b.WriteString("\n")
	}
	b.WriteString("\n---\n\n")

	fmt.Fprintf(&b, `## Response Format

### Success Response (200 OK)

`+"```json"+`
{
  "id": "chatcmpl-xxx",
  "object": "chat.completion",
  "created": 1234567890,
  "model": "%s",
  "choices": [
    {
      "index": 0,
      "message": {
        "role": "assistant",
        "content": "Response text"
      },
      "finish_reason": "stop"
    }
  ],
  "usage": {
    "prompt_tokens": 10,
    "completion_tokens": 20,
    "total_tokens": 30
  }
}
`+"```"+`

### Error Response

`+"```json"+`
{
  "error": {
    "message": "Error description",
    "type": "error_type",
    "code": "error_code"
  }
}
`+"```"+`

---

`, model)

	b.WriteString("## Code Examples\n\n")
	if len(f.CodeSamples) > 0 {
		for i, sample := range f.CodeSamples {
			fmt.Fprintf(&b, "### Example %d (%s)\n\n```%s\n%s\n```\n\n", i+1, sample.Language, sample.Language, sample.Code)
		}
	} else {
		fmt.Fprintf(&b, `### cURL

`+"```bash"+`
curl -X POST https://api.aimlapi.com/v1/chat/completions \
  -H "Authorization: Bearer $API_KEY" \
  -H "Content-Type: application/json" \
  -d '{
    "model": "%s",
    "messages": [
      {"role": "user", "content": "Hello!"}
    ]
  }'
`+"```"+`

`, model)
	}
	b.WriteString("---\n\n")

	b.WriteString(`## Error Handling

### Common Error Codes

| Code | Error | Solution |
|------|-------|----------|
| 400 | Bad Request | Check request format |
| 401 | Unauthorized | Verify API key |
| 403 | Forbidden | Check permissions |
| 404 | Not Found | Verify model name |
| 429 | Rate Limited | Implement backoff |
| 500 | Server Error | Retry later |

---

## Rate Limits & Pricing

### Rate Limiting

- **Free Tier**: Limited requests/minute
- **Pro Tier**: Higher limits
- **Enterprise**: Custom limits

### Cost Optimization

1. Use max_tokens to limit responses
2. Batch requests when possible
3. Cache common responses
4. Use streaming for long responses

---

`)

	fmt.Fprintf(&b, "## Model IDs\n\nThe following model IDs were found for %s:\n\n", model)
	if len(f.ModelIDs) > 0 {
		b.WriteString(formatCodeList(f.ModelIDs))
	} else {
		b.WriteString("- See documentation for available model IDs")
	}
	b.WriteString("\n\n---\n\n")

	fmt.Fprintf(&b, "**Last Updated**: %s\n**Model**: %s\n**API Version**: v1\n", ts, model)

	return b.String()
}

func renderRecord(r *ScrapeRecord) string {
	f := &r.Facts

	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", r.Title())
	fmt.Fprintf(&b, "**Source**: [%s](%s)\n", r.SourceURL, r.SourceURL)
	fmt.Fprintf(&b, "**Scraped**: %s\n\n", r.ScrapedAt.Format(renderTimeLayout))

	b.WriteString("## Content\n\n")
	if f.ContentMarkdown != "" {
		b.WriteString(f.ContentMarkdown)
	} else {
		b.WriteString(f.Content)
	}
	b.WriteString("\n\n## Code Examples\n")
	for i, sample := range f.CodeSamples {
		fmt.Fprintf(&b, "\n### Example %d (%s)\n\n```%s\n%s\n```\n", i+1, sample.Language, sample.Language, sample.Code)
	}

	if len(f.Tables) > 0 {
		b.WriteString("\n## Tables\n")
		for i, table := range f.Tables {
			fmt.Fprintf(&b, "\n### Table %d\n\n", i+1)
			if len(table.Headers) > 0 {
				b.WriteString("| " + strings.Join(table.Headers, " | ") + " |\n")
				b.WriteString("|" + strings.Repeat("---|", len(table.Headers)) + "\n")
			}
			for _, row := range table.Rows {
				b.WriteString("| " + strings.Join(row, " | ") + " |\n")
			}
		}
	}

	return b.String()
}

// formatList formats items as markdown bullet points.
func formatList(items []string) string {
	if len(items) == 0 {
		return "- No items"
	}
	var b strings.Builder
	for i, item := range items {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString("- " + item)
	}
	return b.String()
}

// formatCodeList is formatList with each item wrapped in backticks.
func formatCodeList(items []string) string {
	wrapped := make([]string, len(items))
	for i, item := range items {
		wrapped[i] = "`" + item + "`"
	}
	return formatList(wrapped)
}
