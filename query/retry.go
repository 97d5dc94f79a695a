package query

import (
	"context"
	"math"
	"time"

	"bitbucket.org/lodgefocus/hotelops_backend/utils"
)

// Result carries a value-or-error from a store round trip. The backing
// client reports failures as data, not panics, so the executor inspects
// the embedded error explicitly.
type Result[T any] struct {
	Value T
	Err   error
}

func Ok[T any](v T) Result[T] {
	return Result[T]{Value: v}
}

func Err[T any](err error) Result[T] {
	return Result[T]{Err: err}
}

// Policy bounds a retry sequence. Delay before attempt n (1-indexed, n>1)
// is BaseDelay * BackoffFactor^(n-2).
type Policy struct {
	MaxAttempts   int
	BaseDelay     time.Duration
	BackoffFactor float64
}

func DefaultPolicy() Policy {
	return Policy{
		MaxAttempts:   3,
		BaseDelay:     200 * time.Millisecond,
		BackoffFactor: 2,
	}
}

func (p Policy) delayBefore(attempt int) time.Duration {
	if attempt <= 1 {
		return 0
	}
	return time.Duration(float64(p.BaseDelay) * math.Pow(p.BackoffFactor, float64(attempt-2)))
}

// Executor wraps store round-trips with bounded retry and exponential backoff.
// Sleep is injectable so tests observe delays without waiting.
type Executor struct {
	Policy Policy
	Sleep  func(ctx context.Context, d time.Duration) error
}

func NewExecutor(policy Policy) *Executor {
	if policy.MaxAttempts < 1 {
		policy.MaxAttempts = 1
	}
	if policy.BackoffFactor < 1 {
		policy.BackoffFactor = 1
	}
	return &Executor{Policy: policy, Sleep: sleepCtx}
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}

// Execute runs op up to MaxAttempts times, sleeping between attempts.
// On exhaustion the last failure is wrapped into a RetryExhaustedError;
// intermediate failures are not individually surfaced.
func Execute[T any](e *Executor, ctx context.Context, op func(ctx context.Context) Result[T]) (T, error) {
	var zero T
	var lastErr error

	for attempt := 1; attempt <= e.Policy.MaxAttempts; attempt++ {
		if attempt > 1 {
			if err := e.Sleep(ctx, e.Policy.delayBefore(attempt)); err != nil {
				return zero, err
			}
		}
		result := op(ctx)
		if result.Err == nil {
			return result.Value, nil
		}
		lastErr = result.Err
	}

	return zero, &utils.RetryExhaustedError{Attempts: e.Policy.MaxAttempts, Cause: lastErr}
}
