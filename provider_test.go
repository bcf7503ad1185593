package modeldocs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yjones-coder/modeldocs"
)

func TestRegistry_Lookup(t *testing.T) {
	t.Parallel()

	t.Run("finds registered provider", func(t *testing.T) {
		t.Parallel()

		registry := modeldocs.DefaultRegistry()

		p, err := registry.Lookup("openai")
		require.NoError(t, err)
		assert.Equal(t, "openai", p.Name)
	})

	t.Run("unknown provider fails fast with ENOTFOUND", func(t *testing.T) {
		t.Parallel()

		registry := modeldocs.DefaultRegistry()

		_, err := registry.Lookup("acme")
		require.Error(t, err)
		assert.Equal(t, modeldocs.ENOTFOUND, modeldocs.ErrorCode(err))
		assert.Contains(t, modeldocs.ErrorMessage(err), "openai")
	})

	t.Run("lists all seven providers in order", func(t *testing.T) {
		t.Parallel()

		registry := modeldocs.DefaultRegistry()

		assert.Equal(t, []string{
			"aimlapi", "openai", "anthropic", "google", "deepseek", "mistral", "cohere",
		}, registry.List())
	})
}

func TestProfile_URLs(t *testing.T) {
	t.Parallel()

	registry := modeldocs.DefaultRegistry()

	t.Run("listing URL appends the static suffix", func(t *testing.T) {
		t.Parallel()

		p, err := registry.Lookup("anthropic")
		require.NoError(t, err)

		assert.Equal(t, "https://docs.anthropic.com/en/api/models", p.ListingURL())
	})

	t.Run("google model URL applies the gemini prefix", func(t *testing.T) {
		t.Parallel()

		p, err := registry.Lookup("google")
		require.NoError(t, err)

		url, err := p.ModelURL("2.5-flash")
		require.NoError(t, err)
		assert.Equal(t, "https://ai.google.dev/models/gemini-2.5-flash", url)
	})

	t.Run("deepseek model URL nests under docs/models", func(t *testing.T) {
		t.Parallel()

		p, err := registry.Lookup("deepseek")
		require.NoError(t, err)

		url, err := p.ModelURL("deepseek-chat")
		require.NoError(t, err)
		assert.Equal(t, "https://platform.deepseek.com/docs/models/deepseek-chat", url)
	})

	t.Run("listing-only provider rejects model URLs", func(t *testing.T) {
		t.Parallel()

		p, err := registry.Lookup("cohere")
		require.NoError(t, err)

		_, err = p.ModelURL("command-r")
		require.Error(t, err)
		assert.Equal(t, modeldocs.EINVALID, modeldocs.ErrorCode(err))
	})

	t.Run("aggregator model URL nests under the source sub-provider", func(t *testing.T) {
		t.Parallel()

		p, err := registry.Lookup("aimlapi")
		require.NoError(t, err)

		url, err := p.AggregateModelURL("openai", "gpt-4o")
		require.NoError(t, err)
		assert.Equal(t, "https://docs.aimlapi.com/api-references/text-models-llm/openai/gpt-4o", url)
	})

	t.Run("aggregator rejects sourceless model URL", func(t *testing.T) {
		t.Parallel()

		p, err := registry.Lookup("aimlapi")
		require.NoError(t, err)

		_, err = p.ModelURL("gpt-4o")
		require.Error(t, err)
		assert.Equal(t, modeldocs.EINVALID, modeldocs.ErrorCode(err))
	})

	t.Run("non-aggregator rejects AggregateModelURL", func(t *testing.T) {
		t.Parallel()

		p, err := registry.Lookup("mistral")
		require.NoError(t, err)

		_, err = p.AggregateModelURL("openai", "gpt-4o")
		require.Error(t, err)
		assert.Equal(t, modeldocs.EINVALID, modeldocs.ErrorCode(err))
	})
}

func TestInferSource(t *testing.T) {
	t.Parallel()

	t.Run("gpt prefix maps to openai", func(t *testing.T) {
		t.Parallel()

		source, err := modeldocs.InferSource("gpt-4o")
		require.NoError(t, err)
		assert.Equal(t, "openai", source)
	})

	t.Run("matching is case-insensitive", func(t *testing.T) {
		t.Parallel()

		source, err := modeldocs.InferSource("Claude-3-Sonnet")
		require.NoError(t, err)
		assert.Equal(t, "anthropic", source)
	})

	t.Run("first prefix match wins", func(t *testing.T) {
		t.Parallel()

		source, err := modeldocs.InferSource("o1-preview")
		require.NoError(t, err)
		assert.Equal(t, "openai", source)
	})

	t.Run("unknown model fails listing the supported prefixes", func(t *testing.T) {
		t.Parallel()

		_, err := modeldocs.InferSource("unknown-model-x")
		require.Error(t, err)
		assert.Equal(t, modeldocs.ENOTFOUND, modeldocs.ErrorCode(err))
		msg := modeldocs.ErrorMessage(err)
		for _, prefix := range modeldocs.SourcePrefixes() {
			assert.Contains(t, msg, prefix)
		}
	})

	t.Run("no partial matching", func(t *testing.T) {
		t.Parallel()

		// "gpt" without the dash is not a prefix in the table.
		_, err := modeldocs.InferSource("gpt4o")
		require.Error(t, err)
		assert.Equal(t, modeldocs.ENOTFOUND, modeldocs.ErrorCode(err))
	})
}
