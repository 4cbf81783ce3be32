package retry

import (
	"context"
	"strings"
	"time"
)

// Policy retries an operation a bounded number of times with a fixed
// delay. One policy instance is shared by every call site that needs
// transient-failure retries (DB connect, redis ping, MQ dial, sign-in).
type Policy struct {
	MaxAttempts int
	Delay       time.Duration
	// Retryable decides whether an error is worth another attempt.
	// nil means every error is retryable.
	Retryable func(error) bool
}

// Do runs fn until it succeeds, the attempts run out, the error is not
// retryable, or ctx is done. The last error is returned.
func (p Policy) Do(ctx context.Context, fn func() error) error {
	attempts := p.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}

	var err error
	for i := 1; i <= attempts; i++ {
		err = fn()
		if err == nil {
			return nil
		}
		if p.Retryable != nil && !p.Retryable(err) {
			return err
		}
		if i == attempts {
			break
		}
		select {
		case <-ctx.Done():
			return err
		case <-time.After(p.Delay):
		}
	}
	return err
}

// IsTransient matches the transport-failure signatures we treat as
// retryable: connection refused/reset, timeouts, DNS failures.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	for _, sig := range []string{
		"connection refused",
		"connection reset",
		"broken pipe",
		"timeout",
		"temporary failure",
		"no such host",
		"network is unreachable",
	} {
		if strings.Contains(msg, sig) {
			return true
		}
	}
	return false
}

// Login is the sign-in policy: two retries with a fixed one second
// backoff, transient transport failures only.
var Login = Policy{MaxAttempts: 3, Delay: time.Second, Retryable: IsTransient}
