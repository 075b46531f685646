package qdrant_test

import (
	"context"
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"ai-therapist/internal/rag"
	"ai-therapist/internal/rag/repository"
	"ai-therapist/internal/rag/repository/qdrant"
	"ai-therapist/pkg/log"
	pkgQdrant "ai-therapist/pkg/qdrant"
	"ai-therapist/pkg/voyage"
)

type testEnv struct {
	repoUpserts []pkgQdrant.Point
	inputTypes  []voyage.InputType
	created     bool
}

func newTestRepository(t *testing.T, env *testEnv) (func(), repository.Repository) {
	t.Helper()

	voyageMux := http.NewServeMux()
	voyageMux.HandleFunc("/embeddings", func(w http.ResponseWriter, r *http.Request) {
		var req voyage.EmbedRequest
		json.NewDecoder(r.Body).Decode(&req)
		env.inputTypes = append(env.inputTypes, req.InputType)

		if strings.Contains(req.Input[0], "error_embed") {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		resp := voyage.EmbedResponse{}
		for i := range req.Input {
			resp.Data = append(resp.Data, voyage.EmbeddingData{Embedding: []float32{0.1, 0.2, float32(i)}, Index: i})
		}
		json.NewEncoder(w).Encode(resp)
	})
	voyageTS := httptest.NewServer(voyageMux)

	qdrantMux := http.NewServeMux()
	qdrantMux.HandleFunc("/collections/therapy_conversations", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			if !env.created {
				w.WriteHeader(http.StatusNotFound)
				return
			}
			w.Write([]byte(`{"result":{}}`))
		case http.MethodPut:
			var req pkgQdrant.CreateCollectionRequest
			json.NewDecoder(r.Body).Decode(&req)
			if req.Vectors.Size != 1024 || req.Vectors.Distance != "Cosine" {
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			env.created = true
			w.Write([]byte(`{"result":true}`))
		}
	})
	qdrantMux.HandleFunc("/collections/therapy_conversations/points", func(w http.ResponseWriter, r *http.Request) {
		var req pkgQdrant.UpsertPointsRequest
		json.NewDecoder(r.Body).Decode(&req)
		env.repoUpserts = append(env.repoUpserts, req.Points...)
		w.Write([]byte(`{"result":{"status":"completed"}}`))
	})
	qdrantMux.HandleFunc("/collections/therapy_conversations/points/search", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"result":[
			{"id":"a","score":0.9,"payload":{"text":"I hear how hard this is.","source":"Amod/mental_health_counseling_conversations","split":"train"}},
			{"id":"b","score":0.6,"payload":{"text":"Let's try a breathing exercise.","source":"dair-ai/emotion","split":"test"}}
		]}`))
	})
	qdrantMux.HandleFunc("/collections/therapy_conversations/points/count", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"result":{"count":7}}`))
	})
	qdrantTS := httptest.NewServer(qdrantMux)

	embedder, _ := voyage.New("key")
	embedder.WithBaseURL(voyageTS.URL).WithModel("voyage-3")
	repo := qdrant.New(pkgQdrant.NewClient(qdrantTS.URL), embedder, "therapy_conversations", 1024, log.NewNop())

	return func() {
		voyageTS.Close()
		qdrantTS.Close()
	}, repo
}

func TestSearch(t *testing.T) {
	env := &testEnv{}
	cleanup, repo := newTestRepository(t, env)
	defer cleanup()

	examples, err := repo.Search(context.Background(), "I feel anxious", 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(examples) != 2 {
		t.Fatalf("expected 2 examples, got %d", len(examples))
	}
	if examples[0].Text != "I hear how hard this is." || examples[0].Source() != "Amod/mental_health_counseling_conversations" {
		t.Errorf("unexpected first example: %+v", examples[0])
	}
	if math.Abs(examples[0].Distance-0.1) > 1e-9 || math.Abs(examples[1].Distance-0.4) > 1e-9 {
		t.Errorf("distance must be 1 - score, got %v and %v", examples[0].Distance, examples[1].Distance)
	}
	if examples[0].Distance > examples[1].Distance {
		t.Error("examples must be in ascending distance")
	}
	if _, ok := examples[0].Metadata[rag.MetadataText]; ok {
		t.Error("text must not be duplicated into metadata")
	}
	if env.inputTypes[0] != voyage.InputQuery {
		t.Errorf("queries must be embedded as query, got %q", env.inputTypes[0])
	}
}

func TestSearch_EmbedError(t *testing.T) {
	cleanup, repo := newTestRepository(t, &testEnv{})
	defer cleanup()

	if _, err := repo.Search(context.Background(), "error_embed", 3); err == nil {
		t.Fatal("expected embedding error")
	}
}

func TestUpsert(t *testing.T) {
	env := &testEnv{}
	cleanup, repo := newTestRepository(t, env)
	defer cleanup()

	docs := []rag.Document{
		{ID: "dair-ai/emotion-0", Text: "i feel anxious today", Metadata: map[string]any{rag.MetadataSource: "dair-ai/emotion"}},
		{ID: "dair-ai/emotion-1", Text: "i cannot sleep at night", Metadata: map[string]any{rag.MetadataSource: "dair-ai/emotion"}},
	}
	if err := repo.Upsert(context.Background(), docs); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(env.repoUpserts) != 2 {
		t.Fatalf("expected 2 points, got %d", len(env.repoUpserts))
	}
	p := env.repoUpserts[1]
	if p.ID != qdrant.PointID("dair-ai/emotion-1") {
		t.Errorf("unexpected point id %v", p.ID)
	}
	if p.Payload[rag.MetadataText] != "i cannot sleep at night" || p.Payload[rag.MetadataSource] != "dair-ai/emotion" {
		t.Errorf("unexpected payload: %v", p.Payload)
	}
	if p.Vector[2] != 1 {
		t.Errorf("vectors must follow document order, got %v", p.Vector)
	}
	if env.inputTypes[0] != voyage.InputDocument {
		t.Errorf("documents must be embedded as document, got %q", env.inputTypes[0])
	}
	if _, ok := docs[0].Metadata[rag.MetadataText]; ok {
		t.Error("caller metadata must not be mutated")
	}
}

func TestPointID_IsStable(t *testing.T) {
	a := qdrant.PointID("dair-ai/emotion-42")
	if a != qdrant.PointID("dair-ai/emotion-42") {
		t.Error("same document id must map to the same point")
	}
	if a == qdrant.PointID("dair-ai/emotion-43") {
		t.Error("different document ids must map to different points")
	}
}

func TestEnsureCollectionAndCount(t *testing.T) {
	env := &testEnv{}
	cleanup, repo := newTestRepository(t, env)
	defer cleanup()
	ctx := context.Background()

	if err := repo.EnsureCollection(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !env.created {
		t.Error("collection must be created with the configured vector size")
	}

	n, err := repo.Count(ctx)
	if err != nil || n != 7 {
		t.Errorf("expected 7 documents, got %d / %v", n, err)
	}
	if repo.CollectionName() != "therapy_conversations" || repo.EmbeddingModel() != "voyage-3" {
		t.Errorf("unexpected identifiers: %s / %s", repo.CollectionName(), repo.EmbeddingModel())
	}
}
