package http

import (
	"errors"
	"net/http"

	"ai-therapist/internal/chat"
	"ai-therapist/internal/rag"
	"ai-therapist/internal/session"
	pkgErrors "ai-therapist/pkg/errors"
)

var (
	errSessionNotFound   = pkgErrors.NewNotFound("Session not found")
	errCreateFailed      = pkgErrors.NewHTTPError(http.StatusInternalServerError, "Failed to create session")
	errUpstreamAuth      = pkgErrors.NewHTTPError(http.StatusBadGateway, "Upstream authentication failed")
	errRateLimited       = pkgErrors.NewHTTPError(http.StatusTooManyRequests, "Rate limit exceeded, please retry later")
	errGenerationTimeout = pkgErrors.NewHTTPError(http.StatusGatewayTimeout, "Response generation timed out")
	errGenerationFailed  = pkgErrors.NewHTTPError(http.StatusInternalServerError, "Failed to generate response")
	errSummaryFailed     = pkgErrors.NewHTTPError(http.StatusInternalServerError, "Failed to generate summary")
	errTurnInProgress    = pkgErrors.NewHTTPError(http.StatusConflict, "A message is already being processed for this session")
	errEmptyMessage      = pkgErrors.NewBadRequest("Message must not be empty")
	errArchiveDisabled   = pkgErrors.NewNotFound("Transcript archive not enabled")
	errIndexingRunning   = pkgErrors.NewHTTPError(http.StatusConflict, "RAG indexing already in progress")
	errUnknownDataset    = pkgErrors.NewBadRequest("Unknown dataset in RAG configuration")
	errRagInitFailed     = pkgErrors.NewHTTPError(http.StatusInternalServerError, "Failed to initialize RAG system")
	errMissingSessionID  = pkgErrors.NewBadRequest("session id is required")
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
// Callers only ever see the fixed messages; the cause is logged by the handler.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, session.ErrSessionNotFound):
		return errSessionNotFound
	case errors.Is(err, session.ErrCreateFailed), errors.Is(err, session.ErrMissingCredentials):
		return errCreateFailed
	case errors.Is(err, session.ErrArchiveDisabled):
		return errArchiveDisabled
	case errors.Is(err, chat.ErrEmptyMessage):
		return errEmptyMessage
	case errors.Is(err, chat.ErrTurnCancelled):
		return errTurnInProgress
	case errors.Is(err, chat.ErrAuthentication):
		return errUpstreamAuth
	case errors.Is(err, chat.ErrRateLimitExceeded):
		return errRateLimited
	case errors.Is(err, chat.ErrGenerationTimeout):
		return errGenerationTimeout
	case errors.Is(err, chat.ErrUpstreamGeneration), errors.Is(err, chat.ErrSessionClosed):
		return errGenerationFailed
	case errors.Is(err, rag.ErrIndexingInProgress):
		return errIndexingRunning
	case errors.Is(err, rag.ErrUnknownDataset):
		return errUnknownDataset
	default:
		return pkgErrors.ErrInternalServerError
	}
}

// mapChatError reports unclassified turn failures as a generation failure.
func (h *handler) mapChatError(err error) error {
	mapped := h.mapError(err)
	if mapped == pkgErrors.ErrInternalServerError {
		return errGenerationFailed
	}
	return mapped
}

// mapSummaryError keeps the summary endpoint's own failure message.
func (h *handler) mapSummaryError(err error) error {
	mapped := h.mapError(err)
	if mapped == errGenerationFailed || mapped == pkgErrors.ErrInternalServerError {
		return errSummaryFailed
	}
	return mapped
}

// mapRagError reports any indexing failure other than a concurrent run as one message.
func (h *handler) mapRagError(err error) error {
	mapped := h.mapError(err)
	if mapped == pkgErrors.ErrInternalServerError {
		return errRagInitFailed
	}
	return mapped
}
