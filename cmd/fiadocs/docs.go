package main

import (
	"encoding/json"
	"fmt"

	fiadoc "github.com/Al3x18/fia-doc-api"
)

// Run scrapes the listing once and prints it as indented JSON.
func (c *DocsCmd) Run(deps *Dependencies) error {
	entries, count, err := deps.Documents.Documents(deps.Ctx, fiadoc.Filter{
		Season:       c.Season,
		Championship: c.Championship,
		Event:        c.Event,
	})
	if err != nil {
		fmt.Fprintln(deps.Stderr, "Hint: Chrome or Chromium must be installed")
		return fmt.Errorf("failed to retrieve documents: %w", err)
	}
	if entries == nil {
		entries = []fiadoc.Entry{}
	}

	enc := json.NewEncoder(deps.Stdout)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(struct {
		Message   string         `json:"message"`
		Count     int            `json:"count"`
		Documents []fiadoc.Entry `json:"documents"`
	}{
		Message:   "FIA documents retrieved",
		Count:     count,
		Documents: entries,
	})
}
