package modeldocs_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yjones-coder/modeldocs"
)

func testRecord() *modeldocs.ScrapeRecord {
	return &modeldocs.ScrapeRecord{
		ID:        "rec-1",
		Provider:  "openai",
		Model:     "gpt-4o",
		SourceURL: "https://docs.aimlapi.com/api-references/text-models-llm/openai/gpt-4o",
		ScrapedAt: time.Date(2026, 8, 1, 12, 30, 0, 0, time.UTC),
		Facts: modeldocs.PageFacts{
			Description:  "Flagship model for complex tasks.",
			Capabilities: []string{"streaming", "vision"},
			Endpoints:    []string{"https://api.aimlapi.com/v1/chat/completions"},
			ModelIDs:     []string{"gpt-4o", "gpt-4o-mini"},
			Parameters: modeldocs.Parameters{
				Required: []string{"model"},
				Optional: []string{"temperature"},
			},
			CodeSamples: []modeldocs.CodeSample{
				{Language: "python", Code: "client.chat.completions.create(model=\"gpt-4o\")"},
			},
			Tables: []modeldocs.Table{
				{Headers: []string{"Parameter", "Type"}, Rows: [][]string{{"model", "string"}}},
			},
			Content: "GPT-4o documentation content.",
		},
		ContentHash: modeldocs.Fingerprint("GPT-4o documentation content."),
	}
}

func TestRender_Determinism(t *testing.T) {
	t.Parallel()

	for _, mode := range []modeldocs.RenderMode{modeldocs.ModeContext, modeldocs.ModeRecord} {
		first, err := modeldocs.Render(testRecord(), mode)
		require.NoError(t, err)

		second, err := modeldocs.Render(testRecord(), mode)
		require.NoError(t, err)

		assert.Equal(t, first, second)
	}
}

func TestRender_Context(t *testing.T) {
	t.Parallel()

	t.Run("fills data-driven sections from facts", func(t *testing.T) {
		t.Parallel()

		doc, err := modeldocs.Render(testRecord(), modeldocs.ModeContext)
		require.NoError(t, err)

		assert.Contains(t, doc, "# AI Model API Documentation Context: gpt-4o")
		assert.Contains(t, doc, "Flagship model for complex tasks.")
		assert.Contains(t, doc, "- streaming")
		assert.Contains(t, doc, "- vision")
		assert.Contains(t, doc, "- https://api.aimlapi.com/v1/chat/completions")
		assert.Contains(t, doc, "- `gpt-4o-mini`")
		assert.Contains(t, doc, "### Detected Optional Parameters")
		assert.Contains(t, doc, "- `temperature`")
	})

	t.Run("includes the fixed table of contents", func(t *testing.T) {
		t.Parallel()

		doc, err := modeldocs.Render(testRecord(), modeldocs.ModeContext)
		require.NoError(t, err)

		for _, section := range []string{
			"[Model Overview](#model-overview)",
			"[Authentication](#authentication)",
			"[API Endpoints](#api-endpoints)",
			"[Request Parameters](#request-parameters)",
			"[Response Format](#response-format)",
			"[Code Examples](#code-examples)",
			"[Error Handling](#error-handling)",
			"[Rate Limits & Pricing](#rate-limits--pricing)",
		} {
			assert.Contains(t, doc, section)
		}
	})

	t.Run("uses the record timestamp, not the clock", func(t *testing.T) {
		t.Parallel()

		doc, err := modeldocs.Render(testRecord(), modeldocs.ModeContext)
		require.NoError(t, err)

		assert.Contains(t, doc, "**Generated**: 2026-08-01 12:30:00")
	})

	t.Run("falls back to placeholders on empty facts", func(t *testing.T) {
		t.Parallel()

		record := testRecord()
		record.Facts = modeldocs.PageFacts{Content: record.Facts.Content}

		doc, err := modeldocs.Render(record, modeldocs.ModeContext)
		require.NoError(t, err)

		assert.Contains(t, doc, "See documentation for details.")
		assert.Contains(t, doc, "- Standard text generation capabilities")
		assert.Contains(t, doc, "- `POST https://api.aimlapi.com/v1/chat/completions`")
		assert.Contains(t, doc, "- See documentation for available model IDs")
		assert.NotContains(t, doc, "### Detected Required Parameters")
	})

	t.Run("renders extracted code samples with fences", func(t *testing.T) {
		t.Parallel()

		doc, err := modeldocs.Render(testRecord(), modeldocs.ModeContext)
		require.NoError(t, err)

		assert.Contains(t, doc, "### Example 1 (python)")
		assert.Contains(t, doc, "```python\nclient.chat.completions.create(model=\"gpt-4o\")\n```")
	})
}

func TestRender_Record(t *testing.T) {
	t.Parallel()

	t.Run("renders compact document from facts only", func(t *testing.T) {
		t.Parallel()

		doc, err := modeldocs.Render(testRecord(), modeldocs.ModeRecord)
		require.NoError(t, err)

		assert.Contains(t, doc, "# OPENAI - gpt-4o")
		assert.Contains(t, doc, "**Source**: [https://docs.aimlapi.com/api-references/text-models-llm/openai/gpt-4o](https://docs.aimlapi.com/api-references/text-models-llm/openai/gpt-4o)")
		assert.Contains(t, doc, "**Scraped**: 2026-08-01 12:30:00")
		assert.Contains(t, doc, "GPT-4o documentation content.")
		assert.NotContains(t, doc, "Authentication")
	})

	t.Run("prefers the markdown content body", func(t *testing.T) {
		t.Parallel()

		record := testRecord()
		record.Facts.ContentMarkdown = "# GPT-4o\n\nConverted body."

		doc, err := modeldocs.Render(record, modeldocs.ModeRecord)
		require.NoError(t, err)

		assert.Contains(t, doc, "Converted body.")
		assert.NotContains(t, doc, "GPT-4o documentation content.")
	})

	t.Run("renders tables with pipe layout", func(t *testing.T) {
		t.Parallel()

		doc, err := modeldocs.Render(testRecord(), modeldocs.ModeRecord)
		require.NoError(t, err)

		assert.Contains(t, doc, "### Table 1")
		assert.Contains(t, doc, "| Parameter | Type |")
		assert.Contains(t, doc, "|---|---|")
		assert.Contains(t, doc, "| model | string |")
	})

	t.Run("enumerates code examples with detected language", func(t *testing.T) {
		t.Parallel()

		doc, err := modeldocs.Render(testRecord(), modeldocs.ModeRecord)
		require.NoError(t, err)

		assert.Contains(t, doc, "### Example 1 (python)")
		assert.Contains(t, doc, "```python")
	})

	t.Run("omits the tables section when there are none", func(t *testing.T) {
		t.Parallel()

		record := testRecord()
		record.Facts.Tables = nil

		doc, err := modeldocs.Render(record, modeldocs.ModeRecord)
		require.NoError(t, err)

		assert.NotContains(t, doc, "## Tables")
	})
}

func TestRender_Errors(t *testing.T) {
	t.Parallel()

	t.Run("nil record is invalid", func(t *testing.T) {
		t.Parallel()

		_, err := modeldocs.Render(nil, modeldocs.ModeContext)
		require.Error(t, err)
		assert.Equal(t, modeldocs.EINVALID, modeldocs.ErrorCode(err))
	})

	t.Run("unknown mode is invalid", func(t *testing.T) {
		t.Parallel()

		_, err := modeldocs.Render(testRecord(), modeldocs.RenderMode(99))
		require.Error(t, err)
		assert.Equal(t, modeldocs.EINVALID, modeldocs.ErrorCode(err))
	})
}
