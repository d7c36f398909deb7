// Package retry re-runs Telegram calls that failed with a rate limit, a
// server error or a network error. Waits grow exponentially with full jitter;
// a rate limit carrying retry_after waits exactly that long.
package retry

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"net"
	"net/http"
	"time"
)

const defaultBaseDelay = 300 * time.Millisecond

type Options struct {
	MaxRetries int
	BaseDelay  time.Duration
	MaxDelay   time.Duration // 0 means uncapped
}

// APIError is a failed API call with its status code.
type APIError struct {
	StatusCode int
	Message    string
	RetryAfter time.Duration
}

func (e *APIError) Error() string {
	if e == nil {
		return "api error: <nil>"
	}
	if e.Message == "" {
		return fmt.Sprintf("api error (%d)", e.StatusCode)
	}
	return fmt.Sprintf("api error (%d): %s", e.StatusCode, e.Message)
}

// IsRetryable reports whether err is worth another attempt: a 429, a 500,
// 502, 503 or 504 status, or a network error.
func IsRetryable(err error) bool {
	var ae *APIError
	if errors.As(err, &ae) {
		switch ae.StatusCode {
		case http.StatusTooManyRequests,
			http.StatusInternalServerError,
			http.StatusBadGateway,
			http.StatusServiceUnavailable,
			http.StatusGatewayTimeout:
			return true
		}
		return false
	}
	var ne net.Error
	return errors.As(err, &ne)
}

// FullJitterSleep picks a uniform delay in [0, min(baseDelay*2^attempt, maxDelay)].
func FullJitterSleep(attempt int, baseDelay, maxDelay time.Duration) time.Duration {
	if baseDelay <= 0 {
		return 0
	}
	ceiling := baseDelay
	for i := 0; i < attempt; i++ {
		if maxDelay > 0 && ceiling >= maxDelay {
			break
		}
		if ceiling > time.Duration(1<<61) {
			break
		}
		ceiling *= 2
	}
	if maxDelay > 0 && ceiling > maxDelay {
		ceiling = maxDelay
	}
	return time.Duration(rand.Int64N(int64(ceiling) + 1))
}

// delay is how long to wait after the failed attempt.
func (o Options) delay(attempt int, err error) time.Duration {
	var ae *APIError
	if errors.As(err, &ae) && ae.StatusCode == http.StatusTooManyRequests && ae.RetryAfter > 0 {
		if o.MaxDelay > 0 && ae.RetryAfter > o.MaxDelay {
			return o.MaxDelay
		}
		return ae.RetryAfter
	}
	return FullJitterSleep(attempt, o.BaseDelay, o.MaxDelay)
}

func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Do runs fn once plus up to MaxRetries more times. It returns nil on the
// first success, the error of fn when it is not retryable or attempts run
// out, and the context error when ctx ends first.
func Do(ctx context.Context, opts Options, fn func() error) error {
	if opts.BaseDelay <= 0 {
		opts.BaseDelay = defaultBaseDelay
	}
	retries := max(opts.MaxRetries, 0)

	for attempt := 0; ; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		err := fn()
		if err == nil || attempt >= retries || !IsRetryable(err) {
			return err
		}
		if werr := sleep(ctx, opts.delay(attempt, err)); werr != nil {
			return werr
		}
	}
}
