package usecase

import (
	"time"

	"ai-therapist/internal/archive"
	"ai-therapist/internal/metrics"
	"ai-therapist/internal/rag"
	"ai-therapist/internal/safety"
	"ai-therapist/internal/session"
	"ai-therapist/internal/session/registry"
	"ai-therapist/pkg/log"
)

// Config carries the orchestration settings and the optional collaborators.
type Config struct {
	// ChatTimeout bounds one Chat or GetSummary call.
	ChatTimeout time.Duration
	// Index selects what InitializeRag ingests.
	Index rag.LoadInput

	Metrics *metrics.Collector
	// Archive is nil when transcripts are not persisted.
	Archive archive.Repository
	// Safety is nil when crisis screening is off.
	Safety *safety.Checker
}

// implUseCase is the private implementation of session.UseCase.
type implUseCase struct {
	l        log.Logger
	registry registry.Registry
	rag      rag.UseCase
	metrics  *metrics.Collector
	archive  archive.Repository
	safety   *safety.Checker

	chatTimeout time.Duration
	index       rag.LoadInput
}

// New creates a new session UseCase implementation.
func New(l log.Logger, reg registry.Registry, ragUC rag.UseCase, cfg Config) session.UseCase {
	if cfg.ChatTimeout <= 0 {
		cfg.ChatTimeout = 60 * time.Second
	}
	if cfg.Metrics == nil {
		cfg.Metrics = metrics.New(metrics.Pricing{})
	}
	return &implUseCase{
		l:           l,
		registry:    reg,
		rag:         ragUC,
		metrics:     cfg.Metrics,
		archive:     cfg.Archive,
		safety:      cfg.Safety,
		chatTimeout: cfg.ChatTimeout,
		index:       cfg.Index,
	}
}
