package fiadoc

// Extractor recovers structured document metadata from the portal's rendered
// listing markup.
type Extractor interface {
	// Extract walks the listing in document order and returns the flattened
	// sequence of group markers and documents described on Entry. A row with
	// missing or unexpected attributes yields a Document with nil fields;
	// one malformed row never prevents extraction of the remaining rows.
	// Extract does not filter; that is ApplyFilter's job.
	Extract(html string) ([]Entry, error)

	// Options reads the portal's filter select fields and returns the
	// seasons, championships, and events it currently offers.
	Options(html string) (*Options, error)
}
