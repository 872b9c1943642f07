package fetch

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/chromedp/chromedp"
)

// MinContentLength is the minimum body length to consider a plain HTTP fetch
// useful. Shorter bodies usually mean a JS shell that needs rendering.
const MinContentLength = 500

// ShouldUseBrowser returns true if the fetched body is too short to contain
// an actual depth chart, indicating a JavaScript-rendered page.
func ShouldUseBrowser(body string) bool {
	return len(strings.TrimSpace(body)) < MinContentLength
}

// WithBrowser renders a page in a headless browser and returns the rendered
// HTML. Requires Chrome/Chromium to be installed on the system.
func WithBrowser(ctx context.Context, url string, timeout time.Duration, logger *slog.Logger) (string, error) {
	if logger != nil {
		logger.Info("rendering page in headless browser", "url", url)
	}

	allocCtx, cancel := chromedp.NewExecAllocator(ctx,
		append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", true),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("no-sandbox", true),
			chromedp.Flag("disable-dev-shm-usage", true),
		)...,
	)
	defer cancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	browserCtx, cancel = context.WithTimeout(browserCtx, timeout)
	defer cancel()

	var html string
	err := chromedp.Run(browserCtx,
		chromedp.Navigate(url),
		chromedp.WaitReady("body"),
		// Depth chart tables are injected after initial load.
		chromedp.Sleep(3*time.Second),
		chromedp.OuterHTML("html", &html),
	)
	if err != nil {
		return "", fmt.Errorf("browser rendering failed: %w", err)
	}

	if logger != nil {
		logger.Info("rendered page", "url", url, "bytes", len(html))
	}

	return html, nil
}

// browserFetcher tries a plain HTTP fetch first and falls back to headless
// rendering when the body looks like an empty JS shell.
type browserFetcher struct {
	inner   Fetcher
	logger  *slog.Logger
	timeout time.Duration
}

// NewBrowserFetcher wraps a Fetcher with a headless-browser fallback.
func NewBrowserFetcher(inner Fetcher, logger *slog.Logger, timeout time.Duration) Fetcher {
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &browserFetcher{inner: inner, logger: logger, timeout: timeout}
}

func (b *browserFetcher) Fetch(ctx context.Context, urlStr string) (*Result, error) {
	result, err := b.inner.Fetch(ctx, urlStr)
	if err != nil {
		return nil, err
	}
	if !ShouldUseBrowser(result.Body) {
		return result, nil
	}

	html, err := WithBrowser(ctx, urlStr, b.timeout, b.logger)
	if err != nil {
		// Keep the static body; the extraction chain may still find something.
		return result, nil
	}
	result.Body = html
	return result, nil
}
