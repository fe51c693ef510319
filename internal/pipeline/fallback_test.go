package pipeline

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestWithTimeoutFallbackPrimarySuccess(t *testing.T) {
	got := withTimeoutFallback(context.Background(), time.Second,
		func(ctx context.Context) (string, error) { return "primary", nil },
		func(reason error) string { return "fallback" })
	if got != "primary" {
		t.Fatalf("expected primary result, got %q", got)
	}
}

func TestWithTimeoutFallbackPrimaryError(t *testing.T) {
	boom := errors.New("boom")
	var gotReason error
	got := withTimeoutFallback(context.Background(), time.Second,
		func(ctx context.Context) (string, error) { return "", boom },
		func(reason error) string {
			gotReason = reason
			return "fallback"
		})
	if got != "fallback" {
		t.Fatalf("expected fallback result, got %q", got)
	}
	if !errors.Is(gotReason, boom) {
		t.Fatalf("expected original reason, got %v", gotReason)
	}
}

func TestWithTimeoutFallbackDeadline(t *testing.T) {
	start := time.Now()
	got := withTimeoutFallback(context.Background(), 20*time.Millisecond,
		func(ctx context.Context) (string, error) {
			<-ctx.Done()
			return "", ctx.Err()
		},
		func(reason error) string {
			if !errors.Is(reason, context.DeadlineExceeded) {
				t.Errorf("expected deadline exceeded, got %v", reason)
			}
			return "fallback"
		})
	if got != "fallback" {
		t.Fatalf("expected fallback result, got %q", got)
	}
	if elapsed := time.Since(start); elapsed > 2*time.Second {
		t.Fatalf("fallback took too long: %v", elapsed)
	}
}

func TestWithTimeoutFallbackNilPrimary(t *testing.T) {
	got := withTimeoutFallback[int](context.Background(), time.Second, nil,
		func(reason error) int { return 42 })
	if got != 42 {
		t.Fatalf("expected fallback value, got %d", got)
	}
}

func TestPauseRespectsContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	pause(ctx, time.Minute)
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Fatalf("pause ignored cancelled context: %v", elapsed)
	}
}
