package rag

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Retrieve returns up to n examples, best match first. Failures yield an empty slice.
	Retrieve(ctx context.Context, query string, n int) []Example
	// GetStats never fails; on error it returns the zeroed record.
	GetStats(ctx context.Context) Stats
	// LoadAndIndex ingests the configured datasets in batches.
	LoadAndIndex(ctx context.Context, input LoadInput) (IndexResult, error)
}
