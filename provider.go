package modeldocs

import "strings"

// Provider names for the built-in documentation sources.
const (
	ProviderAIMLAPI   = "aimlapi"
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
	ProviderGoogle    = "google"
	ProviderDeepSeek  = "deepseek"
	ProviderMistral   = "mistral"
	ProviderCohere    = "cohere"
)

// Profile describes one documentation source: where its pages live and
// whether it supports scraping a single model's page or only a
// provider-wide models listing. Profiles are process-wide, read-only
// configuration.
type Profile struct {
	// Name identifies the provider (e.g., "openai").
	Name string

	// BaseURL is the documentation site root, without trailing slash.
	BaseURL string

	// ListingPath is the path of the provider-wide models listing,
	// relative to BaseURL.
	ListingPath string

	// ModelPath is the path prefix for a single model's page, relative
	// to BaseURL. Empty when the provider is listing-only.
	ModelPath string

	// ModelPrefix is prepended to the model name when building a model
	// URL (e.g., Google's pages live under models/gemini-<model>).
	ModelPrefix string

	// SupportsModelScrape reports whether single-model scraping is
	// available. Checked before dispatch; never inferred.
	SupportsModelScrape bool

	// Aggregator marks the provider as an aggregator whose model pages
	// are organized under source sub-providers.
	Aggregator bool
}

// ListingURL returns the URL of the provider-wide models listing.
func (p *Profile) ListingURL() string {
	return p.BaseURL + "/" + p.ListingPath
}

// ModelURL returns the documentation URL for a single model.
// Returns EINVALID if the provider does not support single-model
// scraping, or if the provider is an aggregator (use AggregateModelURL).
func (p *Profile) ModelURL(model string) (string, error) {
	if p.Aggregator {
		return "", Errorf(EINVALID, "provider %q requires a source sub-provider", p.Name)
	}
	if !p.SupportsModelScrape {
		return "", Errorf(EINVALID, "provider %q does not support model-specific scraping", p.Name)
	}
	return p.BaseURL + "/" + p.ModelPath + "/" + p.ModelPrefix + model, nil
}

// AggregateModelURL returns the documentation URL for a model hosted by
// an aggregator under a source sub-provider (e.g., openai/gpt-4o).
// Returns EINVALID if the provider is not an aggregator.
func (p *Profile) AggregateModelURL(source, model string) (string, error) {
	if !p.Aggregator {
		return "", Errorf(EINVALID, "provider %q is not an aggregator", p.Name)
	}
	return p.BaseURL + "/" + p.ModelPath + "/" + source + "/" + model, nil
}

// Registry holds the fixed set of provider profiles.
type Registry struct {
	profiles map[string]*Profile
	order    []string
}

// NewRegistry creates a Registry from the given profiles, preserving
// their order for List.
func NewRegistry(profiles ...*Profile) *Registry {
	r := &Registry{profiles: make(map[string]*Profile, len(profiles))}
	for _, p := range profiles {
		r.profiles[p.Name] = p
		r.order = append(r.order, p.Name)
	}
	return r
}

// Lookup returns the profile for the named provider.
// Returns ENOTFOUND for unknown providers.
func (r *Registry) Lookup(name string) (*Profile, error) {
	p, ok := r.profiles[name]
	if !ok {
		return nil, Errorf(ENOTFOUND, "unknown provider %q (supported: %s)", name, strings.Join(r.order, ", "))
	}
	return p, nil
}

// List returns the registered provider names in registration order.
func (r *Registry) List() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// DefaultRegistry returns the built-in provider profiles.
func DefaultRegistry() *Registry {
	return NewRegistry(
		&Profile{
			Name:                ProviderAIMLAPI,
			BaseURL:             "https://docs.aimlapi.com",
			ListingPath:         "api-references/text-models-llm",
			ModelPath:           "api-references/text-models-llm",
			SupportsModelScrape: true,
			Aggregator:          true,
		},
		&Profile{
			Name:        ProviderOpenAI,
			BaseURL:     "https://platform.openai.com/docs/api-reference",
			ListingPath: "models",
		},
		&Profile{
			Name:        ProviderAnthropic,
			BaseURL:     "https://docs.anthropic.com",
			ListingPath: "en/api/models",
		},
		&Profile{
			Name:                ProviderGoogle,
			BaseURL:             "https://ai.google.dev",
			ListingPath:         "models",
			ModelPath:           "models",
			ModelPrefix:         "gemini-",
			SupportsModelScrape: true,
		},
		&Profile{
			Name:                ProviderDeepSeek,
			BaseURL:             "https://platform.deepseek.com/docs",
			ListingPath:         "models",
			ModelPath:           "models",
			SupportsModelScrape: true,
		},
		&Profile{
			Name:                ProviderMistral,
			BaseURL:             "https://docs.mistral.ai",
			ListingPath:         "capabilities/models",
			ModelPath:           "capabilities/models",
			SupportsModelScrape: true,
		},
		&Profile{
			Name:        ProviderCohere,
			BaseURL:     "https://docs.cohere.com",
			ListingPath: "models",
		},
	)
}

// sourcePrefix maps a model-name prefix to the aggregator's source
// sub-provider path segment. Order matters: the first case-insensitive
// prefix match wins.
type sourcePrefix struct {
	prefix string
	source string
}

var sourcePrefixes = []sourcePrefix{
	{"gpt-", "openai"},
	{"o1", "openai"},
	{"o3", "openai"},
	{"o4", "openai"},
	{"claude-", "anthropic"},
	{"deepseek-", "deepseek"},
	{"gemini-", "google"},
	{"mistral-", "mistral-ai"},
	{"llama-", "meta"},
	{"qwen-", "alibaba-cloud"},
	{"moonshot-", "moonshot"},
	{"command-", "cohere"},
	{"grok-", "xai"},
}

// InferSource determines the aggregator source sub-provider for a bare
// model name by scanning the prefix table. No partial or fuzzy
// matching. Returns ENOTFOUND listing the supported prefixes when no
// prefix matches.
func InferSource(model string) (string, error) {
	lower := strings.ToLower(model)
	for _, sp := range sourcePrefixes {
		if strings.HasPrefix(lower, sp.prefix) {
			return sp.source, nil
		}
	}
	return "", Errorf(ENOTFOUND, "cannot determine provider for model %q (supported prefixes: %s)", model, strings.Join(SourcePrefixes(), ", "))
}

// SourcePrefixes returns the known model-name prefixes in match order.
func SourcePrefixes() []string {
	out := make([]string, len(sourcePrefixes))
	for i, sp := range sourcePrefixes {
		out[i] = sp.prefix
	}
	return out
}
