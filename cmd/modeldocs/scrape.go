package main

import (
	"fmt"

	"github.com/yjones-coder/modeldocs"
)

// Run executes the scrape command.
func (c *ScrapeCmd) Run(deps *Dependencies) error {
	var record *modeldocs.ScrapeRecord
	var err error

	if c.Model != "" {
		record, err = deps.Scraper.ScrapeModel(deps.Ctx, c.Provider, c.Source, c.Model)
	} else {
		record, err = deps.Scraper.ScrapeProvider(deps.Ctx, c.Provider)
	}
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", modeldocs.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Scraped %s\n", record.SourceURL)
	return printSummary(deps)
}

// printSummary lists the artifacts currently in the output location.
func printSummary(deps *Dependencies) error {
	artifacts, err := deps.Store.List(deps.Ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(deps.Stdout, "Total files: %d\n", len(artifacts))
	for _, a := range artifacts {
		fmt.Fprintf(deps.Stdout, "  %s (%.1f KB)\n", a.Name, float64(a.Size)/1024)
	}
	return nil
}
