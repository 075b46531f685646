package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEmptyMessage  = errors.New("message is empty")
	ErrSessionClosed = errors.New("chat session closed")
	// ErrTurnCancelled is returned when the caller gave up while another turn was in flight.
	ErrTurnCancelled = errors.New("turn cancelled while waiting for the previous turn")

	ErrAuthentication     = errors.New("upstream authentication failed")
	ErrRateLimitExceeded  = errors.New("upstream rate limit exceeded")
	ErrGenerationTimeout  = errors.New("upstream generation timed out")
	ErrUpstreamGeneration = errors.New("upstream generation failed")
)

// translateError classifies an upstream failure. The classification is a best-effort
// substring heuristic over the error text; the original error stays in the chain.
func translateError(err error) error {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "api key"):
		return fmt.Errorf("%w: %w", ErrAuthentication, err)
	case strings.Contains(msg, "rate limit"):
		return fmt.Errorf("%w: %w", ErrRateLimitExceeded, err)
	case errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%w: %w", ErrGenerationTimeout, err)
	default:
		return fmt.Errorf("%w: %w", ErrUpstreamGeneration, err)
	}
}
