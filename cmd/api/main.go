package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ai-therapist/config"
	_ "ai-therapist/docs" // Swagger docs
	"ai-therapist/internal/archive"
	archiveRepo "ai-therapist/internal/archive/repository/postgre"
	"ai-therapist/internal/chat"
	"ai-therapist/internal/httpserver"
	"ai-therapist/internal/metrics"
	"ai-therapist/internal/middleware"
	"ai-therapist/internal/rag"
	"ai-therapist/internal/rag/dataset"
	ragQdrant "ai-therapist/internal/rag/repository/qdrant"
	ragUC "ai-therapist/internal/rag/usecase"
	"ai-therapist/internal/safety"
	"ai-therapist/internal/session"
	sessionHTTP "ai-therapist/internal/session/delivery/http"
	"ai-therapist/internal/session/registry"
	sessionUC "ai-therapist/internal/session/usecase"
	"ai-therapist/pkg/huggingface"
	"ai-therapist/pkg/llmprovider"
	"ai-therapist/pkg/log"
	"ai-therapist/pkg/qdrant"
	"ai-therapist/pkg/voyage"
)

// @title       AI Therapist API
// @description Session-scoped therapeutic chat backed by Gemini with retrieval over counselling datasets.
// @version     1
// @host        localhost:8000
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting AI Therapist API...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. LLM providers
	providers, err := llmprovider.InitializeProviders(ctx, &cfg.LLM)
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize LLM providers: %v", err)
		os.Exit(1)
	}
	manager := llmprovider.NewManager(providers, &llmprovider.Config{
		FallbackEnabled: cfg.LLM.FallbackEnabled,
		RetryAttempts:   cfg.LLM.RetryAttempts,
		RetryDelay:      parseDuration(cfg.LLM.RetryDelay),
		MaxTotalTimeout: parseDuration(cfg.LLM.MaxTotalTimeout),
	}, logger)
	logger.Infof(ctx, "LLM primary provider: %s (%s)", manager.Primary().Name(), manager.Primary().Model())

	upstream := chat.NewLLMUpstream(manager, llmprovider.ConversationConfig{
		Temperature: cfg.Session.Temperature,
		TopP:        cfg.Session.TopP,
		TopK:        cfg.Session.TopK,
		MaxTokens:   cfg.Session.MaxOutputTokens,
		MaxMessages: 2 * cfg.Session.MaxHistory,
	})

	// 4. Retrieval
	qdrantClient := qdrant.NewClient(cfg.Qdrant.URL)
	embedder, err := voyage.New(cfg.Voyage.APIKey)
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize Voyage embeddings: %v", err)
		os.Exit(1)
	}
	embedder = embedder.WithModel(cfg.Voyage.Model).WithBaseURL(cfg.Voyage.BaseURL)

	ragRepo := ragQdrant.New(qdrantClient, embedder, cfg.Qdrant.CollectionName, cfg.Qdrant.VectorSize, logger)
	loader := dataset.NewLoader(huggingface.New(cfg.HuggingFace.BaseURL, cfg.HuggingFace.Token), logger)
	ragUseCase := ragUC.New(ragRepo, loader, logger, ragUC.Config{
		NResults:  cfg.RAG.NResults,
		BatchSize: cfg.RAG.BatchSize,
	})

	// 5. Session registry
	chatCfg := chat.Config{MaxHistory: cfg.Session.MaxHistory, DefaultExamples: cfg.RAG.NResults}
	factory := func(ctx context.Context) (*chat.Session, error) {
		if manager.Primary() == nil {
			return nil, session.ErrMissingCredentials
		}
		return chat.New(ctx, chatCfg, upstream, ragUseCase, logger)
	}
	reg := registry.New(logger, factory)
	defer reg.Close()
	reg.StartJanitor(ctx, cfg.Session.CleanupInterval, cfg.Session.Timeout)

	// 6. Optional transcript archive
	var turnArchive archive.Repository
	if cfg.Postgres.DSN != "" {
		if err := archiveRepo.RunMigrations(ctx, logger, cfg.Postgres.DSN); err != nil {
			logger.Errorf(ctx, "Failed to run archive migrations: %v", err)
			os.Exit(1)
		}
		pool, err := archiveRepo.NewPool(ctx, cfg.Postgres.DSN)
		if err != nil {
			logger.Errorf(ctx, "Failed to connect to Postgres: %v", err)
			os.Exit(1)
		}
		defer pool.Close()
		turnArchive = archiveRepo.New(pool, logger)
		logger.Info(ctx, "Transcript archive enabled")
	} else {
		logger.Info(ctx, "Transcript archive disabled: postgres.dsn is empty")
	}

	// 7. Safety and metrics
	var checker *safety.Checker
	if cfg.Safety.Enabled {
		checker = safety.New(logger)
		logger.Info(ctx, "Crisis screening enabled")
	}

	pricing, err := metrics.ParsePricing(cfg.Metrics.InputPricePerMillion, cfg.Metrics.OutputPricePerMillion)
	if err != nil {
		logger.Errorf(ctx, "Invalid metrics pricing: %v", err)
		os.Exit(1)
	}
	collector := metrics.New(pricing)

	// 8. Session use case and delivery
	uc := sessionUC.New(logger, reg, ragUseCase, sessionUC.Config{
		ChatTimeout: cfg.Session.ChatTimeout,
		Index: rag.LoadInput{
			Datasets:      cfg.RAG.Datasets,
			MaxPerDataset: cfg.RAG.MaxPerDataset,
		},
		Metrics: collector,
		Archive: turnArchive,
		Safety:  checker,
	})
	handler := sessionHTTP.New(logger, uc, collector)

	// 9. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:         logger,
		Port:           cfg.HTTPServer.Port,
		Mode:           cfg.HTTPServer.Mode,
		Environment:    cfg.Environment.Name,
		Middleware:     middleware.New(logger, collector, cfg.CORS, cfg.RateLimit),
		SessionHandler: handler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 10. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

// parseDuration treats an empty or malformed value as zero.
func parseDuration(s string) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0
	}
	return d
}
