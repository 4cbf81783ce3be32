package retry

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestDoSucceedsAfterTransientFailures(t *testing.T) {
	p := Policy{MaxAttempts: 3, Delay: time.Millisecond}

	calls := 0
	err := p.Do(context.Background(), func() error {
		calls++
		if calls < 3 {
			return errors.New("connection refused")
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Do returned %v, want nil", err)
	}
	if calls != 3 {
		t.Errorf("fn called %d times, want 3", calls)
	}
}

func TestDoExhaustsAttempts(t *testing.T) {
	p := Policy{MaxAttempts: 3, Delay: time.Millisecond}
	boom := errors.New("connection refused")

	calls := 0
	err := p.Do(context.Background(), func() error {
		calls++
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("Do returned %v, want the last error", err)
	}
	if calls != 3 {
		t.Errorf("fn called %d times, want 3", calls)
	}
}

func TestDoStopsOnNonRetryable(t *testing.T) {
	p := Policy{MaxAttempts: 5, Delay: time.Millisecond, Retryable: IsTransient}
	boom := errors.New("record not found")

	calls := 0
	err := p.Do(context.Background(), func() error {
		calls++
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("Do returned %v, want original error", err)
	}
	if calls != 1 {
		t.Errorf("fn called %d times, want 1 for a non-retryable error", calls)
	}
}

func TestDoHonorsContext(t *testing.T) {
	p := Policy{MaxAttempts: 10, Delay: time.Hour}
	ctx, cancel := context.WithCancel(context.Background())

	calls := 0
	done := make(chan error, 1)
	go func() {
		done <- p.Do(ctx, func() error {
			calls++
			return errors.New("timeout")
		})
	}()
	cancel()

	select {
	case err := <-done:
		if err == nil {
			t.Error("Do returned nil after cancellation")
		}
	case <-time.After(time.Second):
		t.Fatal("Do did not stop after context cancellation")
	}
	if calls != 1 {
		t.Errorf("fn called %d times, want 1", calls)
	}
}

func TestIsTransient(t *testing.T) {
	cases := []struct {
		err  error
		want bool
	}{
		{nil, false},
		{errors.New("dial tcp: connection refused"), true},
		{errors.New("read: connection reset by peer"), true},
		{errors.New("i/o timeout"), true},
		{errors.New("lookup db: no such host"), true},
		{errors.New("record not found"), false},
		{errors.New("invalid credentials"), false},
	}
	for _, tc := range cases {
		if got := IsTransient(tc.err); got != tc.want {
			t.Errorf("IsTransient(%v) = %v, want %v", tc.err, got, tc.want)
		}
	}
}

func TestLoginPolicyShape(t *testing.T) {
	// Two retries with a fixed one second backoff.
	if Login.MaxAttempts != 3 {
		t.Errorf("Login.MaxAttempts = %d, want 3", Login.MaxAttempts)
	}
	if Login.Delay != time.Second {
		t.Errorf("Login.Delay = %v, want 1s", Login.Delay)
	}
}
