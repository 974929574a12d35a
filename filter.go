package fiadoc

import "strings"

// Filter selects which groups of a document listing to retain. The zero
// value retains everything. Matching is case-insensitive substring
// comparison: Season and Championship test SeasonGroup markers, Event tests
// EventGroup markers. Supplied fields are conjunctive.
type Filter struct {
	Season       string `json:"season"`
	Championship string `json:"championship"`
	Event        string `json:"event"`
}

// IsZero reports whether no filter fields are set.
func (f Filter) IsZero() bool {
	return f.Season == "" && f.Championship == "" && f.Event == ""
}

// ApplyFilter returns the subsequence of entries whose enclosing groups
// satisfy the filter. Excluding a group excludes every entry nested under it
// up to the next marker of equal or higher level. Relative order is always
// preserved, and retained markers are kept even when no documents remain
// under them. Applying the same filter twice yields the same result as
// applying it once.
func ApplyFilter(entries []Entry, f Filter) []Entry {
	if f.IsZero() {
		return entries
	}

	var out []Entry

	// Tracks whether the current season and event markers were retained.
	// Documents that appear under a season before any event marker belong
	// to the season alone and are excluded only when an event filter is set.
	seasonKept := false
	eventKept := false
	inEvent := false

	for _, e := range entries {
		switch v := e.(type) {
		case SeasonGroup:
			seasonKept = matchFold(v.SeasonYear, f.Season) &&
				matchFold(v.ChampionshipName, f.Championship)
			inEvent = false
			eventKept = false
			if seasonKept {
				out = append(out, v)
			}
		case EventGroup:
			inEvent = true
			eventKept = seasonKept && matchFold(v.GPName, f.Event)
			if eventKept {
				out = append(out, v)
			}
		case Document:
			if !seasonKept {
				continue
			}
			if inEvent {
				if eventKept {
					out = append(out, v)
				}
			} else if f.Event == "" {
				out = append(out, v)
			}
		}
	}

	return out
}

// matchFold reports whether value contains query, ignoring case. An empty
// query matches everything.
func matchFold(value, query string) bool {
	if query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(value), strings.ToLower(query))
}
