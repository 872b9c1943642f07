package fetch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"
)

const (
	defaultRetryAttempts   = 3
	defaultInitialInterval = 1 * time.Second
)

// ErrUnavailable is returned when all retry attempts are exhausted. Callers
// treat it as "zero records from this source", never as a fatal condition.
var ErrUnavailable = errors.New("source unavailable")

// retryingFetcher wraps a Fetcher with bounded retries and exponential
// backoff between attempts.
type retryingFetcher struct {
	inner           Fetcher
	logger          *slog.Logger
	maxAttempts     int
	initialInterval time.Duration
}

// NewRetryingFetcher wraps the given fetcher with retries. If maxAttempts or
// initialInterval are <= 0, defaults are used.
func NewRetryingFetcher(inner Fetcher, logger *slog.Logger, maxAttempts int, initialInterval time.Duration) Fetcher {
	if maxAttempts <= 0 {
		maxAttempts = defaultRetryAttempts
	}
	if initialInterval <= 0 {
		initialInterval = defaultInitialInterval
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &retryingFetcher{
		inner:           inner,
		logger:          logger,
		maxAttempts:     maxAttempts,
		initialInterval: initialInterval,
	}
}

func (r *retryingFetcher) Fetch(ctx context.Context, urlStr string) (*Result, error) {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = r.initialInterval

	var lastErr error
	for attempt := 1; attempt <= r.maxAttempts; attempt++ {
		result, err := r.inner.Fetch(ctx, urlStr)
		if err == nil {
			return result, nil
		}
		lastErr = err

		if attempt == r.maxAttempts {
			break
		}

		r.logger.Warn("fetch retry",
			"url", urlStr,
			"attempt", attempt,
			"max_attempts", r.maxAttempts,
			"err", err)

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(bo.NextBackOff()):
		}
	}

	r.logger.Warn("fetch failed", "url", urlStr, "attempts", r.maxAttempts, "err", lastErr)
	return nil, fmt.Errorf("%w: %s after %d attempts: %v", ErrUnavailable, urlStr, r.maxAttempts, lastErr)
}
