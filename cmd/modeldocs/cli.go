package main

import (
	"context"
	"io"

	"github.com/yjones-coder/modeldocs"
	"github.com/yjones-coder/modeldocs/scrape"
)

// Dependencies holds all services and configuration for command
// execution.
type Dependencies struct {
	Ctx     context.Context
	Stdout  io.Writer
	Stderr  io.Writer
	Store   modeldocs.ArtifactStore
	Scraper *scrape.Scraper
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Scrape ScrapeCmd `cmd:"" help:"Scrape documentation for a provider or a specific model"`
	List   ListCmd   `cmd:"" help:"List previously scraped artifacts"`
}

// ScrapeCmd is the "scrape" subcommand.
type ScrapeCmd struct {
	Provider string `required:"" help:"Provider name (aimlapi, openai, anthropic, google, deepseek, mistral, cohere)"`
	Model    string `help:"Model name for model-specific scraping"`
	Source   string `help:"Source sub-provider for the aimlapi aggregator (e.g., openai)"`
	NoCache  bool   `help:"Bypass the fetch cache"`
	Verbose  bool   `short:"v" help:"Show raw HTML diagnostics on empty scrapes"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct{}
