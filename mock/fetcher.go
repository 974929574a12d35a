package mock

import (
	"context"

	fiadoc "github.com/Al3x18/fia-doc-api"
)

var _ fiadoc.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of fiadoc.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url, readySelector string) (string, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url, readySelector string) (string, error) {
	return f.FetchFn(ctx, url, readySelector)
}

func (f *Fetcher) Close() error {
	return f.CloseFn()
}
