package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/lingualog/lingualog-api/internal/api"
	apiMiddleware "github.com/lingualog/lingualog-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes and middleware.
// It accepts the application dependencies to create handlers and register routes.
// Returns the configured router.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	// Create API handlers using the application's services
	authMiddleware := apiMiddleware.NewAuthMiddleware(app.jwtService)
	journalHandler := api.NewJournalHandler(app.journalService)
	vocabularyHandler := api.NewVocabularyHandler(app.vocabularyService, app.enrichmentService)

	// Register routes
	r.Route("/api", func(r chi.Router) {
		// All endpoints require authentication
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)

			// Journal analysis
			r.Post("/journal/analyze", journalHandler.AnalyzeEntry)

			// On-demand generation extras
			r.Post("/generate/examples", journalHandler.MoreExamples)
			r.Post("/generate/eli5", journalHandler.SimplifiedExplanation)
			r.Post("/generate/quiz", journalHandler.Quiz)

			// Vocabulary list and enrichment
			r.Post("/vocabulary", vocabularyHandler.CreateItem)
			r.Get("/vocabulary", vocabularyHandler.ListItems)
			r.Get("/vocabulary/{id}", vocabularyHandler.GetItem)
			r.Delete("/vocabulary/{id}", vocabularyHandler.DeleteItem)
			r.Post("/vocabulary/{id}/enrich", vocabularyHandler.EnrichItem)
			r.Post("/vocabulary/{id}/enrich/refresh", vocabularyHandler.RefreshEnrichment)
		})
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
