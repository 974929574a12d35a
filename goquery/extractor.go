// Package goquery provides a CSS-selector based implementation of
// fiadoc.Extractor for the FIA document portal's rendered listing.
package goquery

import (
	"net/url"
	"strings"

	fiadoc "github.com/Al3x18/fia-doc-api"
	"github.com/PuerkitoBio/goquery"
)

// DefaultBaseURL is the portal origin used to resolve root-relative
// document links.
const DefaultBaseURL = "https://www.fia.com"

// DefaultChampionship is the portal's default championship view, reported
// when the page does not name one.
const DefaultChampionship = "FIA Formula One World Championship"

// unknown is reported for group marker fields the markup does not provide.
const unknown = "unknown"

// Selectors defines the CSS selectors used to walk the portal's listing.
// The portal's markup is not under our control; keeping every selector in
// one table means structural drift requires a single-point update.
type Selectors struct {
	// Grouped listing structure, in nesting order.
	SeasonSection     string
	SeasonTitle       string
	ChampionshipTitle string
	EventSection      string
	EventTitle        string
	DocumentRow       string
	DocumentLink      string
	DocumentTitle     string
	DocumentPublished string

	// Filter select fields, used for Options and for recovering the active
	// season on the portal's single-season view.
	SelectWrapper string
}

// DefaultSelectors matches the portal markup as currently rendered.
var DefaultSelectors = Selectors{
	SeasonSection:     ".documents-by-season",
	SeasonTitle:       ".season-title",
	ChampionshipTitle: ".championship-title",
	EventSection:      ".event-wrapper",
	EventTitle:        ".event-title",
	DocumentRow:       "ul.document-row-wrapper li",
	DocumentLink:      "a",
	DocumentTitle:     "div.title",
	DocumentPublished: "div.published",
	SelectWrapper:     ".select-field-wrapper",
}

// Placeholder texts identifying the portal's three filter selects. Each
// select's first option names its type.
const (
	seasonPlaceholder       = "Season"
	championshipPlaceholder = "Championship"
	eventPlaceholder        = "Event"
)

// Ensure Extractor implements fiadoc.Extractor at compile time.
var _ fiadoc.Extractor = (*Extractor)(nil)

// Extractor walks the portal's rendered listing markup and produces the
// flattened sequence of season markers, event markers, and documents.
type Extractor struct {
	selectors Selectors
	baseURL   string
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithSelectors overrides the selector table.
func WithSelectors(s Selectors) Option {
	return func(e *Extractor) {
		e.selectors = s
	}
}

// WithBaseURL overrides the origin used to resolve relative document links.
func WithBaseURL(baseURL string) Option {
	return func(e *Extractor) {
		e.baseURL = baseURL
	}
}

// NewExtractor creates a new Extractor with DefaultSelectors and
// DefaultBaseURL.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{
		selectors: DefaultSelectors,
		baseURL:   DefaultBaseURL,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract parses the rendered listing and returns its entries in document
// order: each season marker, then its event markers, then the documents
// under each event. Rows with missing attributes produce documents with nil
// fields; the walk never aborts on a malformed row.
func (e *Extractor) Extract(html string) ([]fiadoc.Entry, error) {
	base, err := url.Parse(e.baseURL)
	if err != nil {
		return nil, fiadoc.Errorf(fiadoc.EINVALID, "invalid base URL: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fiadoc.Errorf(fiadoc.EINVALID, "failed to parse HTML: %v", err)
	}

	var entries []fiadoc.Entry

	appendEvents := func(scope *goquery.Selection) {
		scope.Find(e.selectors.EventSection).Each(func(_ int, event *goquery.Selection) {
			entries = append(entries, fiadoc.EventGroup{
				GPName: textOrUnknown(event, e.selectors.EventTitle),
			})
			event.Find(e.selectors.DocumentRow).Each(func(_ int, row *goquery.Selection) {
				entries = append(entries, e.document(base, row))
			})
		})
	}

	// Archive view: seasons rendered as explicit sections.
	if seasons := doc.Find(e.selectors.SeasonSection); seasons.Length() > 0 {
		seasons.Each(func(_ int, season *goquery.Selection) {
			entries = append(entries, fiadoc.SeasonGroup{
				SeasonYear:       seasonYear(textOrUnknown(season, e.selectors.SeasonTitle)),
				ChampionshipName: textOrUnknown(season, e.selectors.ChampionshipTitle),
			})
			appendEvents(season)
		})
		return entries, nil
	}

	// Default view: one season at a time, with the active season and
	// championship carried by the filter selects rather than headings.
	entries = append(entries, e.activeSeason(doc))

	if doc.Find(e.selectors.EventSection).Length() > 0 {
		appendEvents(doc.Selection)
		return entries, nil
	}

	// Single-event view: one event heading above a flat row list.
	entries = append(entries, fiadoc.EventGroup{
		GPName: textOrUnknown(doc.Selection, e.selectors.EventTitle),
	})
	doc.Find(e.selectors.DocumentRow).Each(func(_ int, row *goquery.Selection) {
		entries = append(entries, e.document(base, row))
	})
	return entries, nil
}

// Options reads the portal's filter selects and returns the choices each
// offers. Selects are identified by their placeholder option text, so the
// order they appear in the markup does not matter.
func (e *Extractor) Options(html string) (*fiadoc.Options, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fiadoc.Errorf(fiadoc.EINVALID, "failed to parse HTML: %v", err)
	}

	opts := &fiadoc.Options{}
	doc.Find(e.selectors.SelectWrapper + " select").Each(func(_ int, sel *goquery.Selection) {
		placeholder, choices := selectChoices(sel)
		switch placeholder {
		case seasonPlaceholder:
			opts.Seasons = choices
		case championshipPlaceholder:
			opts.Championships = choices
		case eventPlaceholder:
			opts.Events = choices
		}
	})
	return opts, nil
}

// activeSeason reconstructs the SeasonGroup for the portal's default view
// from the season and championship filter selects.
func (e *Extractor) activeSeason(doc *goquery.Document) fiadoc.SeasonGroup {
	sg := fiadoc.SeasonGroup{
		SeasonYear:       unknown,
		ChampionshipName: DefaultChampionship,
	}
	doc.Find(e.selectors.SelectWrapper + " select").Each(func(_ int, sel *goquery.Selection) {
		placeholder, _ := selectChoices(sel)
		switch placeholder {
		case seasonPlaceholder:
			if label := activeChoice(sel, placeholder); label != "" {
				sg.SeasonYear = seasonYear(label)
			}
		case championshipPlaceholder:
			if label := activeChoice(sel, placeholder); label != "" {
				sg.ChampionshipName = label
			}
		}
	})
	return sg
}

// document extracts one row. Missing nodes yield nil fields rather than
// aborting the walk.
func (e *Extractor) document(base *url.URL, row *goquery.Selection) fiadoc.Document {
	var d fiadoc.Document

	if title := row.Find(e.selectors.DocumentTitle); title.Length() > 0 {
		s := strings.TrimSpace(title.First().Text())
		d.Title = &s
	}

	if link := row.Find(e.selectors.DocumentLink).First(); link.Length() > 0 {
		if href, ok := link.Attr("href"); ok && href != "" {
			d.URL = resolveURL(base, href)
		}
	}

	if published := row.Find(e.selectors.DocumentPublished); published.Length() > 0 {
		d.Published = strings.TrimSpace(published.First().Text())
	}
	if iso, ok := fiadoc.NormalizeDate(d.Published); ok {
		d.Date = &iso
	}

	return d
}

// selectChoices returns a select's placeholder text and its remaining
// option labels.
func selectChoices(sel *goquery.Selection) (string, []string) {
	options := sel.Find("option")
	if options.Length() == 0 {
		return "", nil
	}

	placeholder := strings.TrimSpace(options.First().Text())
	var choices []string
	options.Each(func(i int, opt *goquery.Selection) {
		text := strings.TrimSpace(opt.Text())
		if i == 0 || text == "" || text == placeholder {
			return
		}
		choices = append(choices, text)
	})
	return placeholder, choices
}

// activeChoice returns the selected option's label, or the first
// non-placeholder option when none is marked selected.
func activeChoice(sel *goquery.Selection, placeholder string) string {
	if selected := sel.Find("option[selected]"); selected.Length() > 0 {
		if text := strings.TrimSpace(selected.First().Text()); text != "" && text != placeholder {
			return text
		}
	}
	_, choices := selectChoices(sel)
	if len(choices) > 0 {
		return choices[0]
	}
	return ""
}

// seasonYear extracts the year from a season label like "SEASON 2024".
func seasonYear(label string) string {
	fields := strings.Fields(label)
	if len(fields) == 0 {
		return unknown
	}
	return fields[len(fields)-1]
}

// textOrUnknown returns the trimmed text of the first node matching the
// selector within scope, or "unknown" when the node is absent.
func textOrUnknown(scope *goquery.Selection, selector string) string {
	node := scope.Find(selector)
	if node.Length() == 0 {
		return unknown
	}
	if text := strings.TrimSpace(node.First().Text()); text != "" {
		return text
	}
	return unknown
}

// resolveURL resolves a possibly-relative href against the portal origin.
// Returns the href unchanged when it cannot be parsed.
func resolveURL(base *url.URL, href string) string {
	ref, err := url.Parse(href)
	if err != nil {
		return href
	}
	return base.ResolveReference(ref).String()
}
