package qdrant

import (
	"ai-therapist/internal/rag/repository"
	pkgLog "ai-therapist/pkg/log"
	pkgQdrant "ai-therapist/pkg/qdrant"
	"ai-therapist/pkg/voyage"
)

type implRepository struct {
	client         *pkgQdrant.Client
	embedder       voyage.IVoyage
	collectionName string
	vectorSize     int
	l              pkgLog.Logger
}

// New creates a Qdrant-backed example repository.
func New(client *pkgQdrant.Client, embedder voyage.IVoyage, collectionName string, vectorSize int, l pkgLog.Logger) repository.Repository {
	return &implRepository{
		client:         client,
		embedder:       embedder,
		collectionName: collectionName,
		vectorSize:     vectorSize,
		l:              l,
	}
}
