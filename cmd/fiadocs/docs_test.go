package main_test

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	fiadoc "github.com/Al3x18/fia-doc-api"
	main "github.com/Al3x18/fia-doc-api/cmd/fiadocs"
	"github.com/Al3x18/fia-doc-api/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocsCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints the filtered listing as JSON", func(t *testing.T) {
		t.Parallel()

		title := "Final Race Classification"
		var gotFilter fiadoc.Filter
		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Documents: &mock.DocumentService{
				DocumentsFn: func(ctx context.Context, filter fiadoc.Filter) ([]fiadoc.Entry, int, error) {
					gotFilter = filter
					return []fiadoc.Entry{
						fiadoc.SeasonGroup{SeasonYear: "2024", ChampionshipName: "FIA Formula One World Championship"},
						fiadoc.EventGroup{GPName: "Monaco Grand Prix"},
						fiadoc.Document{Title: &title, URL: "https://www.fia.com/doc.pdf"},
					}, 1, nil
				},
			},
		}

		cmd := &main.DocsCmd{Season: "2024", Event: "Monaco Grand Prix"}
		require.NoError(t, cmd.Run(deps))

		assert.Equal(t, fiadoc.Filter{Season: "2024", Event: "Monaco Grand Prix"}, gotFilter)

		var payload struct {
			Message   string           `json:"message"`
			Count     int              `json:"count"`
			Documents []map[string]any `json:"documents"`
		}
		require.NoError(t, json.Unmarshal(stdout.Bytes(), &payload))
		assert.Equal(t, "FIA documents retrieved", payload.Message)
		assert.Equal(t, 1, payload.Count)
		assert.Len(t, payload.Documents, 3)
	})

	t.Run("returns the scrape error with a hint", func(t *testing.T) {
		t.Parallel()

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: stderr,
			Documents: &mock.DocumentService{
				DocumentsFn: func(ctx context.Context, filter fiadoc.Filter) ([]fiadoc.Entry, int, error) {
					return nil, 0, fiadoc.Errorf(fiadoc.ETIMEOUT, "portal unreachable")
				},
			},
		}

		err := (&main.DocsCmd{}).Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "Chrome or Chromium")
	})
}
