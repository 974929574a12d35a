package scrape_test

import (
	"context"
	"testing"

	fiadoc "github.com/Al3x18/fia-doc-api"
	"github.com/Al3x18/fia-doc-api/mock"
	"github.com/Al3x18/fia-doc-api/scrape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strp(s string) *string { return &s }

func extracted() []fiadoc.Entry {
	return []fiadoc.Entry{
		fiadoc.SeasonGroup{SeasonYear: "2024", ChampionshipName: "FIA Formula One World Championship"},
		fiadoc.EventGroup{GPName: "Monaco Grand Prix"},
		fiadoc.Document{Title: strp("Final Race Classification"), URL: "https://www.fia.com/doc1.pdf"},
		fiadoc.EventGroup{GPName: "British Grand Prix"},
		fiadoc.Document{Title: strp("Qualifying Session Classification"), URL: "https://www.fia.com/doc2.pdf"},
	}
}

func TestService_Documents(t *testing.T) {
	t.Parallel()

	t.Run("composes fetch, extract and filter", func(t *testing.T) {
		t.Parallel()

		var fetchedURL, fetchedSelector string
		svc := &scrape.Service{
			Fetcher: &mock.Fetcher{
				FetchFn: func(ctx context.Context, url, readySelector string) (string, error) {
					fetchedURL, fetchedSelector = url, readySelector
					return "<html>listing</html>", nil
				},
			},
			Extractor: &mock.Extractor{
				ExtractFn: func(html string) ([]fiadoc.Entry, error) {
					assert.Equal(t, "<html>listing</html>", html)
					return extracted(), nil
				},
			},
		}

		entries, count, err := svc.Documents(context.Background(), fiadoc.Filter{})

		require.NoError(t, err)
		assert.Equal(t, scrape.DefaultListingURL, fetchedURL)
		assert.Equal(t, scrape.DefaultReadySelector, fetchedSelector)
		assert.Equal(t, extracted(), entries)
		assert.Equal(t, 2, count, "count excludes group markers")
	})

	t.Run("applies the filter and counts only remaining documents", func(t *testing.T) {
		t.Parallel()

		svc := &scrape.Service{
			Fetcher: &mock.Fetcher{
				FetchFn: func(ctx context.Context, url, readySelector string) (string, error) {
					return "", nil
				},
			},
			Extractor: &mock.Extractor{
				ExtractFn: func(html string) ([]fiadoc.Entry, error) {
					return extracted(), nil
				},
			},
		}

		entries, count, err := svc.Documents(context.Background(), fiadoc.Filter{Event: "monaco grand prix"})

		require.NoError(t, err)
		want := []fiadoc.Entry{
			fiadoc.SeasonGroup{SeasonYear: "2024", ChampionshipName: "FIA Formula One World Championship"},
			fiadoc.EventGroup{GPName: "Monaco Grand Prix"},
			fiadoc.Document{Title: strp("Final Race Classification"), URL: "https://www.fia.com/doc1.pdf"},
		}
		assert.Equal(t, want, entries)
		assert.Equal(t, 1, count)
	})

	t.Run("propagates fetch errors with their code", func(t *testing.T) {
		t.Parallel()

		svc := &scrape.Service{
			Fetcher: &mock.Fetcher{
				FetchFn: func(ctx context.Context, url, readySelector string) (string, error) {
					return "", fiadoc.Errorf(fiadoc.ETIMEOUT, "readiness selector never appeared")
				},
			},
			Extractor: &mock.Extractor{},
		}

		_, _, err := svc.Documents(context.Background(), fiadoc.Filter{})

		require.Error(t, err)
		assert.Equal(t, fiadoc.ETIMEOUT, fiadoc.ErrorCode(err))
	})

	t.Run("propagates extraction errors", func(t *testing.T) {
		t.Parallel()

		svc := &scrape.Service{
			Fetcher: &mock.Fetcher{
				FetchFn: func(ctx context.Context, url, readySelector string) (string, error) {
					return "<html></html>", nil
				},
			},
			Extractor: &mock.Extractor{
				ExtractFn: func(html string) ([]fiadoc.Entry, error) {
					return nil, fiadoc.Errorf(fiadoc.EINVALID, "failed to parse HTML")
				},
			},
		}

		_, _, err := svc.Documents(context.Background(), fiadoc.Filter{})

		require.Error(t, err)
		assert.Equal(t, fiadoc.EINVALID, fiadoc.ErrorCode(err))
	})

	t.Run("custom URL and selector override the defaults", func(t *testing.T) {
		t.Parallel()

		var fetchedURL, fetchedSelector string
		svc := &scrape.Service{
			Fetcher: &mock.Fetcher{
				FetchFn: func(ctx context.Context, url, readySelector string) (string, error) {
					fetchedURL, fetchedSelector = url, readySelector
					return "", nil
				},
			},
			Extractor: &mock.Extractor{
				ExtractFn: func(html string) ([]fiadoc.Entry, error) { return nil, nil },
			},
			URL:           "https://example.com/archive",
			ReadySelector: "#listing",
		}

		_, _, err := svc.Documents(context.Background(), fiadoc.Filter{})

		require.NoError(t, err)
		assert.Equal(t, "https://example.com/archive", fetchedURL)
		assert.Equal(t, "#listing", fetchedSelector)
	})
}

func TestService_Options(t *testing.T) {
	t.Parallel()

	newService := func(opts *fiadoc.Options, fetchErr error) *scrape.Service {
		return &scrape.Service{
			Fetcher: &mock.Fetcher{
				FetchFn: func(ctx context.Context, url, readySelector string) (string, error) {
					return "<html></html>", fetchErr
				},
			},
			Extractor: &mock.Extractor{
				OptionsFn: func(html string) (*fiadoc.Options, error) {
					return opts, nil
				},
			},
		}
	}

	opts := &fiadoc.Options{
		Seasons:       []string{"SEASON 2025", "SEASON 2024"},
		Championships: []string{"FIA Formula One World Championship"},
		Events:        []string{"Monaco Grand Prix"},
	}

	t.Run("seasons come from the portal's season select", func(t *testing.T) {
		t.Parallel()

		seasons, err := newService(opts, nil).Seasons(context.Background())

		require.NoError(t, err)
		assert.Equal(t, []string{"SEASON 2025", "SEASON 2024"}, seasons)
	})

	t.Run("championships and events come from their selects", func(t *testing.T) {
		t.Parallel()

		svc := newService(opts, nil)

		championships, err := svc.Championships(context.Background(), "2024")
		require.NoError(t, err)
		assert.Equal(t, []string{"FIA Formula One World Championship"}, championships)

		events, err := svc.Events(context.Background(), "2024")
		require.NoError(t, err)
		assert.Equal(t, []string{"Monaco Grand Prix"}, events)
	})

	t.Run("fetch errors propagate", func(t *testing.T) {
		t.Parallel()

		_, err := newService(nil, fiadoc.Errorf(fiadoc.ETIMEOUT, "portal unreachable")).Seasons(context.Background())

		require.Error(t, err)
		assert.Equal(t, fiadoc.ETIMEOUT, fiadoc.ErrorCode(err))
	})
}
