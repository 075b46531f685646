package http

import (
	"github.com/gin-gonic/gin"

	"ai-therapist/internal/metrics"
	"ai-therapist/internal/session"
	"ai-therapist/pkg/log"
)

// Handler is the public interface for the session HTTP delivery layer.
type Handler interface {
	Health(c *gin.Context)
	CreateSession(c *gin.Context)
	ListSessions(c *gin.Context)
	DeleteSession(c *gin.Context)
	Chat(c *gin.Context)
	GetHistory(c *gin.Context)
	GetSummary(c *gin.Context)
	ResetSession(c *gin.Context)
	GetTranscript(c *gin.Context)
	InitializeRag(c *gin.Context)
	GetRagStats(c *gin.Context)
	Metrics(c *gin.Context)
}

type handler struct {
	l       log.Logger
	uc      session.UseCase
	metrics *metrics.Collector
}

// New creates a new HTTP handler for the session domain.
func New(l log.Logger, uc session.UseCase, m *metrics.Collector) *handler {
	return &handler{
		l:       l,
		uc:      uc,
		metrics: m,
	}
}
