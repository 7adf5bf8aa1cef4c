package storage

import (
	"context"
	"fmt"
	"time"
)

var retryDelay = 500 * time.Millisecond

// retry calls fn up to attempts times, waiting a little longer after each
// failure. It gives up early when ctx is done.
func retry[T any](ctx context.Context, attempts int, fn func() (T, error)) (T, error) {
	var zero T
	var lastErr error

	for i := 0; i < attempts; i++ {
		result, err := fn()
		if err == nil {
			return result, nil
		}
		lastErr = err
		if i == attempts-1 {
			break
		}
		select {
		case <-ctx.Done():
			return zero, fmt.Errorf("retry cancelled after %d attempts: %w (last error: %v)", i+1, ctx.Err(), lastErr)
		case <-time.After(retryDelay * time.Duration(i+1)):
		}
	}
	return zero, fmt.Errorf("after %d attempts: %w", attempts, lastErr)
}
