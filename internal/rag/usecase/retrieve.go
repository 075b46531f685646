package usecase

import (
	"context"
	"sort"
	"strings"

	"ai-therapist/internal/rag"
)

// Retrieve never fails: any error is logged and yields no examples.
func (uc *implUseCase) Retrieve(ctx context.Context, query string, n int) []rag.Example {
	if n <= 0 {
		n = uc.cfg.NResults
	}
	if strings.TrimSpace(query) == "" {
		return []rag.Example{}
	}

	examples, err := uc.repo.Search(ctx, query, n)
	if err != nil {
		uc.l.Errorf(ctx, "rag.Retrieve: %v", err)
		return []rag.Example{}
	}

	sort.SliceStable(examples, func(i, j int) bool { return examples[i].Distance < examples[j].Distance })
	if len(examples) > n {
		examples = examples[:n]
	}
	return examples
}

// GetStats reports the index size. On failure the count is zero and LastUpdated is nil.
func (uc *implUseCase) GetStats(ctx context.Context) rag.Stats {
	stats := rag.Stats{
		CollectionName: uc.repo.CollectionName(),
		EmbeddingModel: uc.repo.EmbeddingModel(),
	}

	count, err := uc.repo.Count(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "rag.GetStats: %v", err)
		return stats
	}

	stats.DocumentCount = count
	uc.mu.RLock()
	if uc.lastUpdated != nil {
		t := *uc.lastUpdated
		stats.LastUpdated = &t
	}
	uc.mu.RUnlock()
	return stats
}
