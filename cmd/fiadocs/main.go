package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/alecthomas/kong"

	"github.com/Al3x18/fia-doc-api/goquery"
	"github.com/Al3x18/fia-doc-api/resty"
	"github.com/Al3x18/fia-doc-api/rod"
	"github.com/Al3x18/fia-doc-api/scrape"
	fiaslog "github.com/Al3x18/fia-doc-api/slog"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	logger := slog.New(slog.NewTextHandler(stderr, nil))

	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Logger: logger,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("fiadocs"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
		kong.Vars{
			"default_addr": defaultAddr(),
			"default_url":  scrape.DefaultListingURL,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'fiadocs --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Wire the scraping pipeline per command: the serve and docs commands
	// carry their own listing URL and timeout flags.
	switch cmd {
	case "serve":
		wireServices(deps, cli.Serve.URL, cli.Serve.Timeout, logger)
	case "docs":
		wireServices(deps, cli.Docs.URL, cli.Docs.Timeout, logger)
	}

	return kongCtx.Run(deps)
}

// wireServices builds the document service and downloader behind their
// logging decorators. The browser itself is launched lazily per request;
// a missing Chrome install surfaces on the first scrape.
func wireServices(deps *Dependencies, url string, timeout time.Duration, logger *slog.Logger) {
	fetcher := rod.NewFetcher(rod.WithTimeout(timeout))

	deps.Documents = fiaslog.NewService(&scrape.Service{
		Fetcher:   rod.NewLoggingFetcher(fetcher, logger),
		Extractor: goquery.NewExtractor(),
		URL:       url,
	}, logger)
	deps.Downloads = resty.NewDownloader(resty.WithTimeout(timeout))
}

// defaultAddr honors the PORT environment variable, matching how the
// service is deployed.
func defaultAddr() string {
	if port := os.Getenv("PORT"); port != "" {
		return ":" + port
	}
	return ":4050"
}
