package fiadoc

import "context"

// Fetcher retrieves rendered HTML from the document portal.
// Implementations use browser automation because the portal's listing is
// populated by client-side scripts after the initial page load.
type Fetcher interface {
	// Fetch navigates to the URL, waits until the element identified by
	// readySelector has materialized, and returns the rendered HTML.
	// The wait is selector-based rather than a fixed delay so it tolerates
	// variable network latency; if the page fails to load or the selector
	// never appears within the bounded timeout, Fetch returns an ETIMEOUT
	// error. The context controls cancellation.
	Fetch(ctx context.Context, url, readySelector string) (html string, err error)

	// Close releases any resources held by the Fetcher.
	Close() error
}
