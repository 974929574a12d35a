package mock

import (
	"context"

	fiadoc "github.com/Al3x18/fia-doc-api"
)

var _ fiadoc.DocumentService = (*DocumentService)(nil)

// DocumentService is a mock implementation of fiadoc.DocumentService.
type DocumentService struct {
	DocumentsFn     func(ctx context.Context, filter fiadoc.Filter) ([]fiadoc.Entry, int, error)
	SeasonsFn       func(ctx context.Context) ([]string, error)
	ChampionshipsFn func(ctx context.Context, season string) ([]string, error)
	EventsFn        func(ctx context.Context, season string) ([]string, error)
}

func (s *DocumentService) Documents(ctx context.Context, filter fiadoc.Filter) ([]fiadoc.Entry, int, error) {
	return s.DocumentsFn(ctx, filter)
}

func (s *DocumentService) Seasons(ctx context.Context) ([]string, error) {
	return s.SeasonsFn(ctx)
}

func (s *DocumentService) Championships(ctx context.Context, season string) ([]string, error) {
	return s.ChampionshipsFn(ctx, season)
}

func (s *DocumentService) Events(ctx context.Context, season string) ([]string, error) {
	return s.EventsFn(ctx, season)
}
