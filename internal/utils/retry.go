package utils

import (
	"context"
	"errors"
	"net"
	"os"
	"time"
)

// RetryDelays are the pauses between attempts of WithRetry.
var RetryDelays = []time.Duration{1 * time.Second, 3 * time.Second, 5 * time.Second}

// WithRetry runs fn and retries it after each of RetryDelays while the error is a
// network failure. It gives up early when ctx is done.
func WithRetry(ctx context.Context, fn func() error) error {
	var err error
	for _, delay := range RetryDelays {
		err = fn()
		if err == nil || !isRetriable(err) {
			return err
		}

		t := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			t.Stop()
			return errors.Join(err, ctx.Err())
		case <-t.C:
		}
	}
	return fn()
}

func isRetriable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) {
		return false
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return true
	}

	return os.IsTimeout(err)
}
