package usecase

import (
	"context"
	"fmt"
	"strings"

	"ai-therapist/internal/rag"
	"ai-therapist/internal/rag/dataset"
)

// LoadAndIndex ingests the selected datasets batch by batch. Retrieval keeps serving
// while it runs and sees a partially built index. A failed dataset is reported in the
// result and does not stop the run. Only one run may be active at a time.
func (uc *implUseCase) LoadAndIndex(ctx context.Context, input rag.LoadInput) (rag.IndexResult, error) {
	sources, unknown := dataset.Select(input.Datasets)
	if len(unknown) > 0 {
		return rag.IndexResult{}, fmt.Errorf("%w: %s", rag.ErrUnknownDataset, strings.Join(unknown, ", "))
	}

	if !uc.indexing.CompareAndSwap(false, true) {
		return rag.IndexResult{}, rag.ErrIndexingInProgress
	}
	defer uc.indexing.Store(false)

	result := rag.IndexResult{StartedAt: uc.now()}

	if err := uc.repo.EnsureCollection(ctx); err != nil {
		uc.l.Errorf(ctx, "rag.LoadAndIndex: %v", err)
		return result, err
	}

	for _, src := range sources {
		if err := ctx.Err(); err != nil {
			result.FinishedAt = uc.now()
			return result, err
		}

		uc.l.Infof(ctx, "rag.LoadAndIndex: processing dataset %s", src.Name)
		n, err := uc.loader.Load(ctx, src, uc.cfg.BatchSize, input.MaxPerDataset, uc.repo.Upsert)

		dr := rag.DatasetResult{Name: src.Name, Indexed: n}
		if err != nil {
			uc.l.Errorf(ctx, "rag.LoadAndIndex: dataset %s: %v", src.Name, err)
			dr.Error = err.Error()
		}
		result.Datasets = append(result.Datasets, dr)
		result.TotalIndexed += n
	}

	result.FinishedAt = uc.now()
	if result.TotalIndexed == 0 {
		return result, rag.ErrNoDocuments
	}

	finished := result.FinishedAt
	uc.mu.Lock()
	uc.lastUpdated = &finished
	uc.mu.Unlock()

	uc.l.Infof(ctx, "rag.LoadAndIndex: indexed %d documents in %s", result.TotalIndexed, result.FinishedAt.Sub(result.StartedAt))
	return result, nil
}
