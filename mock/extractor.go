package mock

import fiadoc "github.com/Al3x18/fia-doc-api"

var _ fiadoc.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of fiadoc.Extractor.
type Extractor struct {
	ExtractFn func(html string) ([]fiadoc.Entry, error)
	OptionsFn func(html string) (*fiadoc.Options, error)
}

func (e *Extractor) Extract(html string) ([]fiadoc.Entry, error) {
	return e.ExtractFn(html)
}

func (e *Extractor) Options(html string) (*fiadoc.Options, error) {
	return e.OptionsFn(html)
}
