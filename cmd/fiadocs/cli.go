package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	fiadoc "github.com/Al3x18/fia-doc-api"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Logger    *slog.Logger
	Documents fiadoc.DocumentService
	Downloads fiadoc.Downloader
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Serve ServeCmd `cmd:"" help:"Run the FIA documents HTTP API"`
	Docs  DocsCmd  `cmd:"" help:"Scrape the document listing once and print it as JSON"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr    string        `help:"HTTP listen address" default:"${default_addr}"`
	URL     string        `help:"Portal listing URL" default:"${default_url}"`
	Timeout time.Duration `help:"Page readiness timeout" default:"30s"`
}

// DocsCmd is the "docs" subcommand.
type DocsCmd struct {
	Season       string        `short:"s" help:"Filter by season year"`
	Championship string        `short:"c" help:"Filter by championship name"`
	Event        string        `short:"e" help:"Filter by Grand Prix name"`
	URL          string        `help:"Portal listing URL" default:"${default_url}"`
	Timeout      time.Duration `help:"Page readiness timeout" default:"30s"`
}
