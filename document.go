package fiadoc

import "context"

// Entry is one element of the flattened document listing. The listing
// interleaves SeasonGroup and EventGroup markers with Documents, preserving
// the portal's top-to-bottom order: a Document always appears after the
// markers it belongs to. Consumers rely on this ordering to associate
// documents with their enclosing season and event.
type Entry interface {
	entry()
}

// SeasonGroup marks the start of one championship season in the listing.
type SeasonGroup struct {
	SeasonYear       string `json:"season_year"`
	ChampionshipName string `json:"championship_name"`
}

func (SeasonGroup) entry() {}

// EventGroup marks the start of one race weekend within a season.
type EventGroup struct {
	GPName string `json:"gp_name"`
}

func (EventGroup) entry() {}

// Document represents one downloadable file listed on the portal.
// Title and Date are nil when the source row was missing the field or the
// published text could not be parsed; a malformed row never aborts
// extraction of the remaining rows.
type Document struct {
	Title     *string `json:"title"`
	Published string  `json:"published"`
	Date      *string `json:"date"`
	URL       string  `json:"url"`
}

func (Document) entry() {}

// CountDocuments returns the number of Document entries in the listing.
// Group markers are not counted.
func CountDocuments(entries []Entry) int {
	n := 0
	for _, e := range entries {
		if _, ok := e.(Document); ok {
			n++
		}
	}
	return n
}

// Options holds the choices the portal offers in its filter select fields.
type Options struct {
	Seasons       []string `json:"seasons"`
	Championships []string `json:"championships"`
	Events        []string `json:"events"`
}

// DocumentService retrieves FIA documents from the portal. Every call
// re-scrapes the portal with its own isolated browser session; nothing is
// cached or shared between calls.
type DocumentService interface {
	// Documents returns the filtered document listing along with the number
	// of Document entries it contains (group markers excluded).
	Documents(ctx context.Context, filter Filter) ([]Entry, int, error)

	// Seasons returns the seasons the portal offers in its season select.
	Seasons(ctx context.Context) ([]string, error)

	// Championships returns the championships the portal offers.
	// The season parameter is echoed for API compatibility; the portal
	// exposes its championship list on the default view.
	Championships(ctx context.Context, season string) ([]string, error)

	// Events returns the Grand Prix events the portal offers.
	Events(ctx context.Context, season string) ([]string, error)
}
