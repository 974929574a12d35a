// Package resty provides the HTTP pass-through implementation of
// fiadoc.Downloader. Downloads bypass the browser pipeline entirely;
// listed documents are plain HTTP resources once their URL is known.
package resty

import (
	"context"
	"net/url"
	"path"
	"strings"
	"time"

	fiadoc "github.com/Al3x18/fia-doc-api"
	"github.com/go-resty/resty/v2"
)

// DefaultTimeout bounds one upstream download request.
const DefaultTimeout = 60 * time.Second

// DefaultFilename is used when the document URL has no usable path segment.
const DefaultFilename = "document.pdf"

// Ensure Downloader implements fiadoc.Downloader at compile time.
var _ fiadoc.Downloader = (*Downloader)(nil)

// Downloader streams remote document bytes using a resty HTTP client.
// Responses are not parsed or buffered; the body passes through to the
// caller, who must close it.
type Downloader struct {
	client *resty.Client
}

// Option configures a Downloader.
type Option func(*resty.Client)

// WithTimeout sets the timeout for upstream requests.
// Defaults to DefaultTimeout if not specified.
func WithTimeout(d time.Duration) Option {
	return func(c *resty.Client) {
		c.SetTimeout(d)
	}
}

// NewDownloader creates a new Downloader.
func NewDownloader(opts ...Option) *Downloader {
	client := resty.New().
		SetDoNotParseResponse(true).
		SetTimeout(DefaultTimeout)
	for _, opt := range opts {
		opt(client)
	}
	return &Downloader{client: client}
}

// Download validates the URL, issues a GET, and returns the response for
// streaming. The URL must be an absolute http or https URL.
func (d *Downloader) Download(ctx context.Context, rawURL string) (*fiadoc.Download, error) {
	if strings.TrimSpace(rawURL) == "" {
		return nil, fiadoc.Errorf(fiadoc.EINVALID, "url parameter is required")
	}

	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return nil, fiadoc.Errorf(fiadoc.EINVALID, "url %q is not a valid absolute URL", rawURL)
	}

	resp, err := d.client.R().SetContext(ctx).Get(rawURL)
	if err != nil {
		return nil, fiadoc.Errorf(fiadoc.EUPSTREAM, "fetching %s: %v", rawURL, err)
	}

	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		_ = resp.RawBody().Close()
		return nil, fiadoc.Errorf(fiadoc.EUPSTREAM, "upstream returned status %d for %s", resp.StatusCode(), rawURL)
	}

	return &fiadoc.Download{
		Body:        resp.RawBody(),
		ContentType: resp.Header().Get("Content-Type"),
		Filename:    filenameFromURL(u),
		Length:      resp.RawResponse.ContentLength,
	}, nil
}

// filenameFromURL derives an attachment filename from the URL path.
func filenameFromURL(u *url.URL) string {
	name := path.Base(u.Path)
	if name == "" || name == "." || name == "/" {
		return DefaultFilename
	}
	return name
}
