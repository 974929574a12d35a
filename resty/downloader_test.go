package resty_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	fiadoc "github.com/Al3x18/fia-doc-api"
	"github.com/Al3x18/fia-doc-api/resty"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Downloader implements fiadoc.Downloader.
var _ fiadoc.Downloader = (*resty.Downloader)(nil)

func TestDownloader_Download(t *testing.T) {
	t.Parallel()

	t.Run("streams the upstream body and content type", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/pdf")
			_, _ = w.Write([]byte("%PDF-1.7 fake bytes"))
		}))
		defer srv.Close()

		dl, err := resty.NewDownloader().Download(context.Background(), srv.URL+"/docs/decision_car22.pdf")

		require.NoError(t, err)
		defer dl.Body.Close()

		assert.Equal(t, "application/pdf", dl.ContentType)
		assert.Equal(t, "decision_car22.pdf", dl.Filename)

		body, err := io.ReadAll(dl.Body)
		require.NoError(t, err)
		assert.Equal(t, "%PDF-1.7 fake bytes", string(body))
	})

	t.Run("falls back to a default filename for bare paths", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("ok"))
		}))
		defer srv.Close()

		dl, err := resty.NewDownloader().Download(context.Background(), srv.URL+"/")

		require.NoError(t, err)
		defer dl.Body.Close()
		assert.Equal(t, resty.DefaultFilename, dl.Filename)
	})

	t.Run("empty url is invalid", func(t *testing.T) {
		t.Parallel()

		_, err := resty.NewDownloader().Download(context.Background(), "")

		require.Error(t, err)
		assert.Equal(t, fiadoc.EINVALID, fiadoc.ErrorCode(err))
	})

	t.Run("relative or non-http urls are invalid", func(t *testing.T) {
		t.Parallel()

		for _, raw := range []string{"/sites/default/files/doc.pdf", "ftp://example.com/doc.pdf", "::bad::"} {
			_, err := resty.NewDownloader().Download(context.Background(), raw)

			require.Error(t, err, "url %q should be rejected", raw)
			assert.Equal(t, fiadoc.EINVALID, fiadoc.ErrorCode(err))
		}
	})

	t.Run("upstream non-success status is an upstream failure", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.NotFound(w, r)
		}))
		defer srv.Close()

		_, err := resty.NewDownloader().Download(context.Background(), srv.URL+"/missing.pdf")

		require.Error(t, err)
		assert.Equal(t, fiadoc.EUPSTREAM, fiadoc.ErrorCode(err))
	})

	t.Run("unreachable upstream is an upstream failure", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		srv.Close() // nothing is listening anymore

		_, err := resty.NewDownloader().Download(context.Background(), srv.URL+"/doc.pdf")

		require.Error(t, err)
		assert.Equal(t, fiadoc.EUPSTREAM, fiadoc.ErrorCode(err))
	})
}
