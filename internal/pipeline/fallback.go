package pipeline

import (
	"context"
	"errors"
	"time"
)

var errNoPrimary = errors.New("primary not configured")

// withTimeoutFallback runs primary under a deadline and substitutes the
// fallback value on any failure. The derived context is always cancelled so
// an abandoned remote call releases its connection before the fallback
// result is returned. No error escapes this helper.
func withTimeoutFallback[T any](ctx context.Context, timeout time.Duration, primary func(context.Context) (T, error), fallback func(reason error) T) T {
	if primary == nil {
		return fallback(errNoPrimary)
	}
	cctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	out, err := primary(cctx)
	if err != nil {
		return fallback(err)
	}
	return out
}

// pause sleeps for d unless the context ends first. Used for the optional
// perceived-latency pacing delays; a zero d returns immediately.
func pause(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
	case <-ctx.Done():
	}
}
