package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/lingualog/lingualog-api/internal/config"
	"github.com/lingualog/lingualog-api/internal/generation"
	"github.com/lingualog/lingualog-api/internal/platform/gemini"
	"github.com/lingualog/lingualog-api/internal/platform/mock"
	"github.com/lingualog/lingualog-api/internal/platform/openai"
	"github.com/lingualog/lingualog-api/internal/platform/postgres"
	"github.com/lingualog/lingualog-api/internal/service"
	"github.com/lingualog/lingualog-api/internal/service/auth"
	"github.com/lingualog/lingualog-api/internal/store"
)

// application holds all the shared application dependencies to simplify management
// and ensure proper cleanup on shutdown.
type application struct {
	// Configuration
	config *config.Config

	// Core services
	logger *slog.Logger
	db     *sql.DB

	// Stores (using interfaces for proper abstraction)
	vocabularyStore store.VocabularyStore
	enrichmentStore store.EnrichmentStore

	// Service interfaces
	jwtService        auth.JWTService
	orchestrator      *generation.Orchestrator
	vocabularyService service.VocabularyService
	enrichmentService service.EnrichmentService
	journalService    service.JournalService
}

// newApplication creates a new application instance with all dependencies initialized.
// It accepts core dependencies like configuration, logger, and database connection that
// must be established before application initialization.
func newApplication(
	ctx context.Context,
	cfg *config.Config,
	logger *slog.Logger,
	db *sql.DB,
) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	// Initialize JWT service
	var err error
	app.jwtService, err = auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
	}
	logger.Info("JWT authentication service initialized",
		"token_lifetime_minutes", cfg.Auth.TokenLifetimeMinutes)

	// Initialize stores
	app.vocabularyStore = postgres.NewPostgresVocabularyStore(db, logger)
	app.enrichmentStore = postgres.NewPostgresEnrichmentStore(db, logger)

	// Build the generation backend chain in configured priority order.
	adapters := buildAdapters(ctx, cfg.LLM, logger)
	if len(adapters) == 0 {
		return nil, fmt.Errorf("no generation backend could be initialized from providers %v", cfg.LLM.Providers)
	}

	app.orchestrator, err = generation.NewOrchestrator(
		logger,
		adapters,
		time.Duration(cfg.LLM.RequestTimeoutSeconds)*time.Second,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize generation orchestrator: %w", err)
	}
	logger.Info("Generation orchestrator initialized",
		"backends", len(adapters),
		"attempt_timeout_seconds", cfg.LLM.RequestTimeoutSeconds)

	// Create required adapters
	vocabRepoAdapter := service.NewVocabularyRepositoryAdapter(app.vocabularyStore, app.db)

	// Initialize vocabulary service
	app.vocabularyService, err = service.NewVocabularyService(vocabRepoAdapter, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create vocabulary service: %w", err)
	}

	// Initialize enrichment service
	app.enrichmentService, err = service.NewEnrichmentService(
		app.vocabularyService,
		app.enrichmentStore,
		app.orchestrator,
		cfg.LLM.PromptVersion,
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create enrichment service: %w", err)
	}

	// Initialize journal service
	app.journalService, err = service.NewJournalService(app.orchestrator, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create journal service: %w", err)
	}

	logger.Info("Application initialized successfully")
	return app, nil
}

// buildAdapters constructs the generation backends named in cfg.Providers,
// preserving order. A backend whose constructor fails (for example a missing
// API key) is skipped with a warning rather than failing startup; the caller
// decides whether an empty chain is fatal.
func buildAdapters(ctx context.Context, cfg config.LLMConfig, logger *slog.Logger) []generation.Adapter {
	var adapters []generation.Adapter
	for _, name := range cfg.Providers {
		switch name {
		case "gemini":
			adapter, err := gemini.New(ctx, logger, cfg.GeminiAPIKey, cfg.GeminiModel)
			if err != nil {
				logger.Warn("skipping gemini backend", "error", err)
				continue
			}
			adapters = append(adapters, adapter)
		case "openai":
			adapter, err := openai.New(logger, cfg.OpenAIAPIKey, cfg.OpenAIModel)
			if err != nil {
				logger.Warn("skipping openai backend", "error", err)
				continue
			}
			adapters = append(adapters, adapter)
		case "mock":
			adapters = append(adapters, mock.New(logger))
		default:
			// Config validation rejects unknown names before this point.
			logger.Warn("unknown generation backend in providers list", "name", name)
		}
	}
	return adapters
}

// Run starts the application server, handling lifecycle and cleanup.
// It returns an error if the server fails to start or encounters problems.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Error closing database connection", "error", err)
		}
	}

	app.logger.Info("Application shutdown completed")
}
