package fiadoc

import (
	"context"
	"io"
)

// Download holds a remote document ready to be streamed to the caller.
// The caller owns Body and must close it.
type Download struct {
	Body        io.ReadCloser
	ContentType string
	Filename    string
	Length      int64
}

// Downloader fetches a previously listed document's bytes from the portal.
// It is independent of the browser pipeline; documents are plain HTTP
// resources once their URL is known.
type Downloader interface {
	// Download validates the URL and issues a GET to the remote host,
	// returning the response for pass-through streaming. A missing or
	// malformed URL yields an EINVALID error; an unreachable upstream or a
	// non-success status yields EUPSTREAM.
	Download(ctx context.Context, url string) (*Download, error)
}
