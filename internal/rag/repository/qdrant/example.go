package qdrant

import (
	"context"
	"fmt"
	"maps"

	"github.com/google/uuid"

	"ai-therapist/internal/rag"
	pkgQdrant "ai-therapist/pkg/qdrant"
	"ai-therapist/pkg/voyage"
)

// Search embeds the query and returns the nearest examples. Distance is 1 - cosine score.
func (r *implRepository) Search(ctx context.Context, query string, limit int) ([]rag.Example, error) {
	vectors, err := r.embedder.Embed(ctx, []string{query}, voyage.InputQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to embed query: %w", err)
	}

	resp, err := r.client.SearchPoints(ctx, r.collectionName, pkgQdrant.SearchRequest{
		Vector:      vectors[0],
		Limit:       limit,
		WithPayload: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to search points: %w", err)
	}

	examples := make([]rag.Example, 0, len(resp.Result))
	for _, p := range resp.Result {
		text, _ := p.Payload[rag.MetadataText].(string)
		meta := maps.Clone(p.Payload)
		delete(meta, rag.MetadataText)

		examples = append(examples, rag.Example{
			Text:     text,
			Metadata: meta,
			Distance: 1 - p.Score,
		})
	}
	return examples, nil
}

// Upsert embeds the batch in one call and writes it as one request.
func (r *implRepository) Upsert(ctx context.Context, docs []rag.Document) error {
	if len(docs) == 0 {
		return nil
	}

	texts := make([]string, len(docs))
	for i, d := range docs {
		texts[i] = d.Text
	}

	vectors, err := r.embedder.Embed(ctx, texts, voyage.InputDocument)
	if err != nil {
		return fmt.Errorf("failed to embed documents: %w", err)
	}

	points := make([]pkgQdrant.Point, len(docs))
	for i, d := range docs {
		payload := make(map[string]any, len(d.Metadata)+1)
		maps.Copy(payload, d.Metadata)
		payload[rag.MetadataText] = d.Text

		points[i] = pkgQdrant.Point{
			ID:      PointID(d.ID),
			Vector:  vectors[i],
			Payload: payload,
		}
	}

	if err := r.client.UpsertPoints(ctx, r.collectionName, pkgQdrant.UpsertPointsRequest{Points: points}); err != nil {
		return fmt.Errorf("failed to upsert points: %w", err)
	}
	return nil
}

func (r *implRepository) Count(ctx context.Context) (int, error) {
	return r.client.Count(ctx, r.collectionName)
}

func (r *implRepository) EnsureCollection(ctx context.Context) error {
	if err := r.client.EnsureCollection(ctx, r.collectionName, r.vectorSize); err != nil {
		return fmt.Errorf("failed to ensure collection %s: %w", r.collectionName, err)
	}
	return nil
}

func (r *implRepository) CollectionName() string { return r.collectionName }

func (r *implRepository) EmbeddingModel() string { return r.embedder.Model() }

// PointID maps a document id onto the UUID Qdrant requires. The mapping is stable.
func PointID(docID string) string {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(docID)).String()
}
