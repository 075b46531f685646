package llmprovider

import (
	"errors"
	"fmt"
)

var (
	// ErrAllProvidersFailed indicates all providers failed to generate content
	ErrAllProvidersFailed = errors.New("all providers failed")

	// ErrNoProvidersConfigured indicates no providers are enabled
	ErrNoProvidersConfigured = errors.New("no providers configured")

	// ErrInvalidRequest indicates the request is malformed
	ErrInvalidRequest = errors.New("invalid request")

	// ErrProviderTimeout indicates a provider request timed out
	ErrProviderTimeout = errors.New("provider timeout")

	// ErrProviderRateLimited indicates rate limit exceeded
	ErrProviderRateLimited = errors.New("provider rate limited")

	// ErrProviderUnauthorized indicates the provider rejected the credentials
	ErrProviderUnauthorized = errors.New("provider rejected API key")

	// ErrConversationClosed is returned by Send after Close
	ErrConversationClosed = errors.New("conversation closed")
)

// ProviderError wraps provider-specific errors
type ProviderError struct {
	Provider string
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider %s: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// classifyStatus tags an HTTP status with the matching sentinel so callers can
// recognise throttling and credential problems from the message alone.
func classifyStatus(provider string, statusCode int, err error) error {
	switch statusCode {
	case 429:
		err = fmt.Errorf("%w: %w", ErrProviderRateLimited, err)
	case 401, 403:
		err = fmt.Errorf("%w: %w", ErrProviderUnauthorized, err)
	}
	return &ProviderError{Provider: provider, Err: err}
}
