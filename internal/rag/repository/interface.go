package repository

import (
	"context"

	"ai-therapist/internal/rag"
)

// Repository is the vector index of reference examples.
type Repository interface {
	// Search returns up to limit examples, best match first.
	Search(ctx context.Context, query string, limit int) ([]rag.Example, error)
	// Upsert embeds and stores documents. Re-upserting an id overwrites it.
	Upsert(ctx context.Context, docs []rag.Document) error
	Count(ctx context.Context) (int, error)
	EnsureCollection(ctx context.Context) error
	CollectionName() string
	EmbeddingModel() string
}
