// Package retry applies a bounded exponential-backoff policy to
// operation closures. Call sites wrap each outbound request explicitly
// instead of hiding retries behind transport decorators, and tests
// substitute a no-op Sleeper to run without delays.
package retry

import (
	"context"
	"log/slog"
	"math/rand"
	"time"
)

// Sleeper waits for a duration, honoring context cancellation. It is
// the single injection point for every interstitial delay in the
// system: retry backoff and post-call cooldowns.
type Sleeper interface {
	Sleep(ctx context.Context, d time.Duration) error
}

// RealSleeper blocks for the requested duration.
type RealSleeper struct{}

// Sleep waits for d or until the context is canceled.
func (RealSleeper) Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// NopSleeper never waits. Tests use it to run retry loops instantly.
type NopSleeper struct{}

// Sleep returns immediately.
func (NopSleeper) Sleep(ctx context.Context, _ time.Duration) error {
	return ctx.Err()
}

// Policy bounds the retry loop.
type Policy struct {
	// MaxRetries is the number of re-attempts after the first failure.
	MaxRetries int
	// BaseDelay is the first backoff step; each retry doubles it.
	BaseDelay time.Duration
	// MaxDelay caps any single backoff step.
	MaxDelay time.Duration
	// Sleeper performs the waits. Nil means RealSleeper.
	Sleeper Sleeper
}

// DefaultPolicy matches the scraping call sites: three retries, one
// second base delay, 32 second ceiling.
func DefaultPolicy() Policy {
	return Policy{
		MaxRetries: 3,
		BaseDelay:  time.Second,
		MaxDelay:   32 * time.Second,
	}
}

// Do runs op, retrying transient failures per the policy. Every failure
// is treated as transient; after the retries are exhausted the error
// from the final attempt is returned unchanged so callers can inspect
// the original cause.
func Do(ctx context.Context, p Policy, name string, op func() error) error {
	sleeper := p.Sleeper
	if sleeper == nil {
		sleeper = RealSleeper{}
	}

	var err error
	for attempt := 0; ; attempt++ {
		if err = op(); err == nil {
			return nil
		}
		if attempt >= p.MaxRetries {
			slog.Debug("retries exhausted", "op", name, "attempts", attempt+1, "error", err)
			return err
		}

		delay := p.backoff(attempt)
		slog.Warn("transient failure, backing off",
			"op", name, "attempt", attempt+1, "delay", delay, "error", err)
		if serr := sleeper.Sleep(ctx, delay); serr != nil {
			return err
		}
	}
}

// DoValue is Do for operations that produce a value.
func DoValue[T any](ctx context.Context, p Policy, name string, op func() (T, error)) (T, error) {
	var out T
	err := Do(ctx, p, name, func() error {
		var opErr error
		out, opErr = op()
		return opErr
	})
	return out, err
}

// backoff returns the wait before the next attempt: base * 2^attempt
// plus up to one base step of jitter, capped at MaxDelay.
func (p Policy) backoff(attempt int) time.Duration {
	base := p.BaseDelay
	if base <= 0 {
		base = time.Second
	}
	d := base << uint(attempt)
	if p.MaxDelay > 0 && d > p.MaxDelay {
		d = p.MaxDelay
	}
	jitter := time.Duration(rand.Int63n(int64(base) + 1))
	if p.MaxDelay > 0 && d+jitter > p.MaxDelay {
		return p.MaxDelay
	}
	return d + jitter
}
