package usecase

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"ai-therapist/internal/rag"
	"ai-therapist/internal/rag/dataset"
	"ai-therapist/internal/rag/repository"
	"ai-therapist/pkg/log"
)

// Loader streams cleaned documents of one dataset.
type Loader interface {
	Load(ctx context.Context, src dataset.Source, batchSize, maxRecords int, fn dataset.BatchFunc) (int, error)
}

// Config holds retrieval and ingestion defaults.
type Config struct {
	NResults  int
	BatchSize int
}

// implUseCase is the private implementation of rag.UseCase.
type implUseCase struct {
	repo   repository.Repository
	loader Loader
	l      log.Logger
	cfg    Config
	now    func() time.Time

	indexing atomic.Bool

	mu          sync.RWMutex
	lastUpdated *time.Time
}

// New creates a new rag UseCase implementation.
func New(repo repository.Repository, loader Loader, l log.Logger, cfg Config) rag.UseCase {
	if cfg.NResults <= 0 {
		cfg.NResults = 3
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 100
	}
	return &implUseCase{
		repo:   repo,
		loader: loader,
		l:      l,
		cfg:    cfg,
		now:    time.Now,
	}
}
