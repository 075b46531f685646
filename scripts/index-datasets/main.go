package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ai-therapist/config"
	"ai-therapist/internal/rag"
	"ai-therapist/internal/rag/dataset"
	ragQdrant "ai-therapist/internal/rag/repository/qdrant"
	ragUC "ai-therapist/internal/rag/usecase"
	"ai-therapist/pkg/huggingface"
	"ai-therapist/pkg/log"
	pkgQdrant "ai-therapist/pkg/qdrant"
	"ai-therapist/pkg/voyage"
)

func main() {
	if len(os.Args) > 1 && (os.Args[1] == "-h" || os.Args[1] == "--help") {
		fmt.Println("Usage: go run scripts/index-datasets/main.go [dataset ...]")
		fmt.Println("Without arguments the datasets from rag.datasets (or the full catalog) are indexed.")
		fmt.Println("Known datasets:")
		for _, src := range dataset.Catalog {
			fmt.Printf("  %s\n", src.Name)
		}
		return
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger := log.Init(log.ZapConfig{
		Level:        "info",
		Mode:         "development",
		Encoding:     "console",
		ColorEnabled: true,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	embedder, err := voyage.New(cfg.Voyage.APIKey)
	if err != nil {
		logger.Fatalf(ctx, "Failed to initialize Voyage API: %v", err)
	}
	embedder = embedder.WithModel(cfg.Voyage.Model).WithBaseURL(cfg.Voyage.BaseURL)

	repo := ragQdrant.New(pkgQdrant.NewClient(cfg.Qdrant.URL), embedder, cfg.Qdrant.CollectionName, cfg.Qdrant.VectorSize, logger)
	loader := dataset.NewLoader(huggingface.New(cfg.HuggingFace.BaseURL, cfg.HuggingFace.Token), logger)
	uc := ragUC.New(repo, loader, logger, ragUC.Config{
		NResults:  cfg.RAG.NResults,
		BatchSize: cfg.RAG.BatchSize,
	})

	input := rag.LoadInput{Datasets: cfg.RAG.Datasets, MaxPerDataset: cfg.RAG.MaxPerDataset}
	if len(os.Args) > 1 {
		input.Datasets = os.Args[1:]
	}

	logger.Info(ctx, "Starting dataset indexing...")
	result, err := uc.LoadAndIndex(ctx, input)
	for _, ds := range result.Datasets {
		if ds.Error != "" {
			logger.Warnf(ctx, "%s: %d documents indexed, failed: %s", ds.Name, ds.Indexed, ds.Error)
			continue
		}
		logger.Infof(ctx, "%s: %d documents indexed", ds.Name, ds.Indexed)
	}
	if err != nil {
		logger.Fatalf(ctx, "Indexing failed: %v", err)
	}

	stats := uc.GetStats(ctx)
	logger.Infof(ctx, "Indexing complete! %d documents indexed in %s, collection %q now holds %d.",
		result.TotalIndexed, result.FinishedAt.Sub(result.StartedAt).Round(time.Millisecond), stats.CollectionName, stats.DocumentCount)
}
