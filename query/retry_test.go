package query

import (
	"context"
	"errors"
	"testing"
	"time"

	"bitbucket.org/lodgefocus/hotelops_backend/utils"
)

func recordingExecutor(policy Policy) (*Executor, *[]time.Duration) {
	e := NewExecutor(policy)
	var delays []time.Duration
	e.Sleep = func(ctx context.Context, d time.Duration) error {
		delays = append(delays, d)
		return nil
	}
	return e, &delays
}

func TestExecuteSucceedsFirstAttempt(t *testing.T) {
	e, delays := recordingExecutor(Policy{MaxAttempts: 3, BaseDelay: 100 * time.Millisecond, BackoffFactor: 2})

	calls := 0
	v, err := Execute(e, context.Background(), func(ctx context.Context) Result[int] {
		calls++
		return Ok(7)
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != 7 {
		t.Fatalf("got %d, want 7", v)
	}
	if calls != 1 {
		t.Fatalf("expected 1 attempt, got %d", calls)
	}
	if len(*delays) != 0 {
		t.Fatalf("success on first attempt must not sleep, got %v", *delays)
	}
}

func TestExecuteRecoversAfterTransientFailures(t *testing.T) {
	e, delays := recordingExecutor(Policy{MaxAttempts: 4, BaseDelay: 100 * time.Millisecond, BackoffFactor: 2})

	calls := 0
	v, err := Execute(e, context.Background(), func(ctx context.Context) Result[string] {
		calls++
		if calls < 3 {
			return Err[string](errors.New("transient"))
		}
		return Ok("done")
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != "done" {
		t.Fatalf("got %q", v)
	}
	if calls != 3 {
		t.Fatalf("expected 3 attempts, got %d", calls)
	}
	// one backoff delay per failed attempt, doubling each time
	want := []time.Duration{100 * time.Millisecond, 200 * time.Millisecond}
	if len(*delays) != len(want) {
		t.Fatalf("expected %d delays, got %v", len(want), *delays)
	}
	for i, d := range want {
		if (*delays)[i] != d {
			t.Fatalf("delay %d: got %v, want %v", i, (*delays)[i], d)
		}
	}
}

func TestExecuteExhaustionWrapsLastError(t *testing.T) {
	e, delays := recordingExecutor(Policy{MaxAttempts: 3, BaseDelay: 50 * time.Millisecond, BackoffFactor: 3})

	cause := errors.New("connection refused")
	calls := 0
	_, err := Execute(e, context.Background(), func(ctx context.Context) Result[int] {
		calls++
		return Err[int](cause)
	})
	if err == nil {
		t.Fatal("expected error")
	}
	if calls != 3 {
		t.Fatalf("expected 3 attempts, got %d", calls)
	}

	var exhausted *utils.RetryExhaustedError
	if !errors.As(err, &exhausted) {
		t.Fatalf("expected RetryExhaustedError, got %T: %v", err, err)
	}
	if exhausted.Attempts != 3 {
		t.Fatalf("attempts: got %d", exhausted.Attempts)
	}
	if !errors.Is(err, cause) {
		t.Fatalf("cause not wrapped: %v", err)
	}

	// exactly k delays for k failed attempts minus the final one
	want := []time.Duration{50 * time.Millisecond, 150 * time.Millisecond}
	if len(*delays) != len(want) {
		t.Fatalf("expected %d delays, got %v", len(want), *delays)
	}
	for i, d := range want {
		if (*delays)[i] != d {
			t.Fatalf("delay %d: got %v, want %v", i, (*delays)[i], d)
		}
	}
}

func TestExecuteSingleAttemptNeverSleeps(t *testing.T) {
	e, delays := recordingExecutor(Policy{MaxAttempts: 1, BaseDelay: time.Second, BackoffFactor: 2})

	_, err := Execute(e, context.Background(), func(ctx context.Context) Result[int] {
		return Err[int](errors.New("nope"))
	})
	if err == nil {
		t.Fatal("expected error")
	}
	if len(*delays) != 0 {
		t.Fatalf("single-attempt policy must not sleep, got %v", *delays)
	}
}

func TestExecuteHonorsContextCancellation(t *testing.T) {
	e := NewExecutor(Policy{MaxAttempts: 5, BaseDelay: time.Hour, BackoffFactor: 2})

	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	done := make(chan struct{})
	go func() {
		defer close(done)
		_, err := Execute(e, ctx, func(ctx context.Context) Result[int] {
			calls++
			return Err[int](errors.New("transient"))
		})
		if !errors.Is(err, context.Canceled) {
			t.Errorf("expected context.Canceled, got %v", err)
		}
	}()

	time.Sleep(10 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Execute did not return after cancellation")
	}
	if calls != 1 {
		t.Fatalf("expected no further attempts after cancellation, got %d", calls)
	}
}

func TestNewExecutorClampsPolicy(t *testing.T) {
	e := NewExecutor(Policy{MaxAttempts: 0, BaseDelay: time.Millisecond, BackoffFactor: 0})
	if e.Policy.MaxAttempts != 1 {
		t.Fatalf("MaxAttempts: got %d", e.Policy.MaxAttempts)
	}
	if e.Policy.BackoffFactor != 1 {
		t.Fatalf("BackoffFactor: got %v", e.Policy.BackoffFactor)
	}
}
