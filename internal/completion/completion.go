// Package completion sends prompts to a hosted text-generation model.
package completion

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ErrCompletionFailed wraps every transport or service failure. Calls are
// never retried.
var ErrCompletionFailed = errors.New("completion failed")

// Completer sends one prompt and returns the model's full reply.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Func adapts an ordinary function to the Completer interface.
type Func func(ctx context.Context, prompt string) (string, error)

func (f Func) Complete(ctx context.Context, prompt string) (string, error) {
	return f(ctx, prompt)
}

func failed(err error) error {
	return fmt.Errorf("%w: %w", ErrCompletionFailed, err)
}

// Wrap marks err as a completion failure unless it already is one.
func Wrap(err error) error {
	if err == nil || errors.Is(err, ErrCompletionFailed) {
		return err
	}
	return failed(err)
}

func checkReply(reply string) (string, error) {
	if strings.TrimSpace(reply) == "" {
		return "", failed(errors.New("empty response from model"))
	}
	return reply, nil
}
