package mock

import (
	"context"

	fiadoc "github.com/Al3x18/fia-doc-api"
)

var _ fiadoc.Downloader = (*Downloader)(nil)

// Downloader is a mock implementation of fiadoc.Downloader.
type Downloader struct {
	DownloadFn func(ctx context.Context, url string) (*fiadoc.Download, error)
}

func (d *Downloader) Download(ctx context.Context, url string) (*fiadoc.Download, error) {
	return d.DownloadFn(ctx, url)
}
