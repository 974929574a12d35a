package fiadoc

import (
	"strings"
	"time"
)

// publishedPrefix is the fixed prefix the portal renders before every
// document's publication timestamp.
const publishedPrefix = "Published on "

// publishedLayout matches the portal's day-first date format, e.g.
// "30.06.24 19:15". The trailing timezone abbreviation is informational
// only and is not part of the parsed value.
const publishedLayout = "02.01.06 15:04"

// isoLayout is the canonical output format. No UTC offset is encoded; the
// hour and minute fields are copied through unchanged.
const isoLayout = "2006-01-02T15:04:05"

// NormalizeDate converts the portal's published text, e.g.
// "Published on 30.06.24 19:15 CET", into an ISO 8601 timestamp such as
// "2024-06-30T19:15:00". It reports false for any input that does not match
// the portal's format; callers must treat that as "date unknown", not as an
// error.
func NormalizeDate(raw string) (string, bool) {
	s := strings.TrimSpace(raw)
	if !strings.HasPrefix(s, publishedPrefix) {
		return "", false
	}

	// Keep the date and time fields, dropping the timezone abbreviation.
	fields := strings.Fields(strings.TrimPrefix(s, publishedPrefix))
	if len(fields) < 2 {
		return "", false
	}

	t, err := time.Parse(publishedLayout, fields[0]+" "+fields[1])
	if err != nil {
		return "", false
	}

	// The portal only ever publishes dates from 2000 onward, so two-digit
	// years always mean 20YY.
	if t.Year() < 2000 {
		t = t.AddDate(100, 0, 0)
	}

	return t.Format(isoLayout), true
}

// NormalizeSeason converts a bare year like "2024" into the portal's season
// label "SEASON 2024". Labels that already carry the prefix pass through
// uppercased; empty input passes through unchanged.
func NormalizeSeason(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return s
	}
	if strings.HasPrefix(strings.ToUpper(s), "SEASON ") {
		return strings.ToUpper(s)
	}
	return "SEASON " + s
}
