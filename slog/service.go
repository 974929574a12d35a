// Package slog provides logging decorators for domain services.
package slog

import (
	"context"
	"log/slog"
	"time"

	fiadoc "github.com/Al3x18/fia-doc-api"
)

// Ensure Service implements fiadoc.DocumentService.
var _ fiadoc.DocumentService = (*Service)(nil)

// Service wraps a DocumentService with operation logging.
type Service struct {
	next   fiadoc.DocumentService
	logger *slog.Logger
}

// NewService creates a new logging Service.
func NewService(next fiadoc.DocumentService, logger *slog.Logger) *Service {
	return &Service{next: next, logger: logger}
}

// Documents logs the filter, result count, duration, and error of the
// wrapped call.
func (s *Service) Documents(ctx context.Context, filter fiadoc.Filter) (entries []fiadoc.Entry, count int, err error) {
	defer func(begin time.Time) {
		s.logger.Info("documents",
			"season", filter.Season,
			"championship", filter.Championship,
			"event", filter.Event,
			"count", count,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Documents(ctx, filter)
}

// Seasons delegates to the wrapped service with logging.
func (s *Service) Seasons(ctx context.Context) (seasons []string, err error) {
	defer func(begin time.Time) {
		s.logger.Info("seasons",
			"count", len(seasons),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Seasons(ctx)
}

// Championships delegates to the wrapped service with logging.
func (s *Service) Championships(ctx context.Context, season string) (championships []string, err error) {
	defer func(begin time.Time) {
		s.logger.Info("championships",
			"season", season,
			"count", len(championships),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Championships(ctx, season)
}

// Events delegates to the wrapped service with logging.
func (s *Service) Events(ctx context.Context, season string) (events []string, err error) {
	defer func(begin time.Time) {
		s.logger.Info("events",
			"season", season,
			"count", len(events),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Events(ctx, season)
}
