package usecase

import (
	"context"

	"ai-therapist/internal/rag"
)

func (uc *implUseCase) GetRagStats(ctx context.Context) rag.Stats {
	return uc.rag.GetStats(ctx)
}

// InitializeRag runs ingestion synchronously with the configured dataset selection.
func (uc *implUseCase) InitializeRag(ctx context.Context) (rag.IndexResult, error) {
	result, err := uc.rag.LoadAndIndex(ctx, uc.index)
	if err != nil {
		uc.l.Errorf(ctx, "uc.InitializeRag: %v", err)
		return result, err
	}
	return result, nil
}
