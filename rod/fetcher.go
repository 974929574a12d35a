package rod

import (
	"context"
	"sync/atomic"
	"time"

	fiadoc "github.com/Al3x18/fia-doc-api"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// DefaultTimeout bounds navigation plus the readiness wait for one Fetch.
const DefaultTimeout = 30 * time.Second

// Ensure Fetcher implements fiadoc.Fetcher at compile time.
var _ fiadoc.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves rendered HTML using Chrome browser automation.
//
// Every Fetch owns an isolated headless browser instance: the process is
// launched on entry and torn down on every exit path, so concurrent requests
// never share browser state and a failed extraction cannot leak a Chrome
// process. Fetcher is safe for concurrent use by multiple goroutines.
type Fetcher struct {
	timeout time.Duration

	// PID of the most recently launched browser process, kept for tests
	// that verify cleanup.
	lastPID atomic.Int64
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the bounded timeout for page readiness.
// Defaults to DefaultTimeout if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// NewFetcher creates a new Fetcher. No browser is launched until Fetch is
// called.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{timeout: DefaultTimeout}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Fetch launches a headless browser, navigates to the URL, waits for the
// readiness selector to appear, and returns the rendered HTML. The browser
// process is terminated before Fetch returns, whether or not it succeeds.
func (f *Fetcher) Fetch(ctx context.Context, url, readySelector string) (string, error) {
	// Check context before paying the browser launch cost.
	if err := ctx.Err(); err != nil {
		return "", err
	}

	l := launcher.New().Leakless(true).Headless(true)
	u, err := l.Launch()
	if err != nil {
		return "", fiadoc.Errorf(fiadoc.EINTERNAL, "launching browser: %v", err)
	}
	defer l.Kill()
	f.lastPID.Store(int64(l.PID()))

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		return "", fiadoc.Errorf(fiadoc.EINTERNAL, "connecting to browser: %v", err)
	}
	defer browser.Close()

	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	page, err := browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return "", fiadoc.Errorf(fiadoc.EINTERNAL, "opening page: %v", err)
	}
	defer page.Close()

	// Scope all subsequent page operations to the bounded context.
	page = page.Context(ctx)

	if err := page.Navigate(url); err != nil {
		return "", fiadoc.Errorf(fiadoc.ETIMEOUT, "page %s failed to load: %v", url, err)
	}
	if err := page.WaitLoad(); err != nil {
		return "", fiadoc.Errorf(fiadoc.ETIMEOUT, "page %s failed to load: %v", url, err)
	}

	// The listing is populated by the page's own scripts after load, so wait
	// for the marker element instead of sleeping a fixed delay.
	if readySelector != "" {
		if _, err := page.Element(readySelector); err != nil {
			return "", fiadoc.Errorf(fiadoc.ETIMEOUT,
				"readiness selector %q never appeared on %s: %v", readySelector, url, err)
		}
	}

	html, err := page.HTML()
	if err != nil {
		return "", fiadoc.Errorf(fiadoc.EINTERNAL, "reading rendered HTML: %v", err)
	}

	return html, nil
}

// Close releases resources. The Fetcher holds no browser between calls, so
// this is a no-op; it exists to satisfy fiadoc.Fetcher.
func (f *Fetcher) Close() error {
	return nil
}

// LastLauncherPID returns the process ID of the most recently launched
// browser. This method exists for testing purposes to verify proper cleanup.
func (f *Fetcher) LastLauncherPID() int {
	return int(f.lastPID.Load())
}
