// Package scrape provides document retrieval orchestration. It composes
// browser rendering, DOM extraction, and filtering into one request cycle:
// every call fetches the portal fresh with its own browser session, so no
// state is shared or cached across requests.
package scrape

import (
	"context"

	fiadoc "github.com/Al3x18/fia-doc-api"
)

// DefaultListingURL is the portal's document listing page.
const DefaultListingURL = "https://www.fia.com/documents/championships/fia-formula-one-world-championship-14/season/"

// DefaultReadySelector marks the listing's dynamic content as loaded. The
// filter selects are rendered by the page's own scripts, so their wrapper
// appearing means the listing has materialized.
const DefaultReadySelector = ".select-field-wrapper"

// Ensure Service implements fiadoc.DocumentService at compile time.
var _ fiadoc.DocumentService = (*Service)(nil)

// Service retrieves FIA documents by scraping the portal.
type Service struct {
	Fetcher   fiadoc.Fetcher
	Extractor fiadoc.Extractor

	// URL is the listing page to scrape. Defaults to DefaultListingURL.
	URL string

	// ReadySelector detects when the listing has rendered.
	// Defaults to DefaultReadySelector.
	ReadySelector string
}

// Documents scrapes the portal and returns the filtered listing plus the
// number of Document entries it contains. The browser session backing the
// fetch is released before Documents returns, on success and failure alike.
func (s *Service) Documents(ctx context.Context, filter fiadoc.Filter) ([]fiadoc.Entry, int, error) {
	html, err := s.fetch(ctx)
	if err != nil {
		return nil, 0, err
	}

	entries, err := s.Extractor.Extract(html)
	if err != nil {
		return nil, 0, err
	}

	entries = fiadoc.ApplyFilter(entries, filter)
	return entries, fiadoc.CountDocuments(entries), nil
}

// Seasons returns the seasons offered by the portal's season select.
func (s *Service) Seasons(ctx context.Context) ([]string, error) {
	opts, err := s.options(ctx)
	if err != nil {
		return nil, err
	}
	return opts.Seasons, nil
}

// Championships returns the championships offered by the portal. The portal
// exposes its championship select on the default view; the season parameter
// is part of the API contract and is echoed by the transport layer.
func (s *Service) Championships(ctx context.Context, season string) ([]string, error) {
	opts, err := s.options(ctx)
	if err != nil {
		return nil, err
	}
	return opts.Championships, nil
}

// Events returns the Grand Prix events offered by the portal.
func (s *Service) Events(ctx context.Context, season string) ([]string, error) {
	opts, err := s.options(ctx)
	if err != nil {
		return nil, err
	}
	return opts.Events, nil
}

func (s *Service) options(ctx context.Context) (*fiadoc.Options, error) {
	html, err := s.fetch(ctx)
	if err != nil {
		return nil, err
	}
	return s.Extractor.Options(html)
}

func (s *Service) fetch(ctx context.Context) (string, error) {
	url := s.URL
	if url == "" {
		url = DefaultListingURL
	}
	selector := s.ReadySelector
	if selector == "" {
		selector = DefaultReadySelector
	}
	return s.Fetcher.Fetch(ctx, url, selector)
}
