package framework

import (
	"context"
	"errors"
	"fmt"
	"time"
)

const defaultPollInterval = time.Millisecond * 250

// ErrPollTimeout is wrapped by the error that Poll returns when the condition never became true.
var ErrPollTimeout = errors.New("timed out")

// Poll calls condition repeatedly until it returns true, returns an error, or the timeout
// elapses. The condition is always called at least once, even if timeout is zero.
//
// If the timeout elapses, the returned error wraps ErrPollTimeout and, if the last call to
// condition failed, that error as well.
func Poll(ctx context.Context, timeout, interval time.Duration, condition func(context.Context) (bool, error)) error {
	if interval <= 0 {
		interval = defaultPollInterval
	}
	deadline := time.NewTimer(timeout)
	defer deadline.Stop()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	var lastErr error
	for {
		ok, err := condition(ctx)
		if ok && err == nil {
			return nil
		}
		lastErr = err
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-deadline.C:
			if lastErr != nil {
				return fmt.Errorf("%w after %s, last error was: %w", ErrPollTimeout, timeout, lastErr)
			}
			return fmt.Errorf("%w after %s", ErrPollTimeout, timeout)
		case <-ticker.C:
		}
	}
}
