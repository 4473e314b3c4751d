package llmprovider

import (
	"context"
	"errors"
	"fmt"
)

var (
	ErrAllProvidersFailed    = errors.New("all providers failed")
	ErrNoProvidersConfigured = errors.New("no providers configured")
	ErrInvalidRequest        = errors.New("invalid request")
	// ErrProviderTimeout marks a provider whose own deadline expired while the
	// caller's context was still alive.
	ErrProviderTimeout = errors.New("provider timeout")
)

// ProviderError is the last failure of one provider after its retries.
type ProviderError struct {
	Provider string
	Attempts int
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider %s failed after %d attempt(s): %v", e.Provider, e.Attempts, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// classify tags per-provider deadline errors with ErrProviderTimeout so they
// are not mistaken for a cancelled request.
func classify(ctx context.Context, err error) error {
	if errors.Is(err, context.DeadlineExceeded) && ctx.Err() == nil {
		return fmt.Errorf("%w: %w", ErrProviderTimeout, err)
	}
	return err
}
