package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	fiahttp "github.com/Al3x18/fia-doc-api/http"
)

// shutdownTimeout bounds how long in-flight requests get to finish after a
// termination signal.
const shutdownTimeout = 10 * time.Second

// Run starts the HTTP API and blocks until a termination signal arrives or
// the listener fails.
func (c *ServeCmd) Run(deps *Dependencies) error {
	api := &fiahttp.Server{
		Documents: deps.Documents,
		Downloads: deps.Downloads,
		Logger:    deps.Logger,
	}

	srv := &http.Server{
		Addr:    c.Addr,
		Handler: api.Handler(),
	}

	ctx, stop := signal.NotifyContext(deps.Ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		deps.Logger.Info("listening", "addr", c.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		deps.Logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
