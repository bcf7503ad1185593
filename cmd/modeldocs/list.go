package main

import "fmt"

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	artifacts, err := deps.Store.List(deps.Ctx)
	if err != nil {
		return err
	}

	if len(artifacts) == 0 {
		fmt.Fprintln(deps.Stdout, "No artifacts found. Use 'modeldocs scrape' to create some.")
		return nil
	}

	for _, a := range artifacts {
		fmt.Fprintf(deps.Stdout, "%s  %d bytes\n", a.Name, a.Size)
	}

	return nil
}
