package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/calebws/biztime/internal/api"
	apiMiddleware "github.com/calebws/biztime/internal/api/middleware"
)

// setupRouter creates and configures the application router with all
// routes and middleware. Returns the configured router.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.NewTraceMiddleware(app.logger))

	// Create API handlers using the application's stores
	companyHandler := api.NewCompanyHandler(app.companyStore, app.invoiceStore)
	invoiceHandler := api.NewInvoiceHandler(app.invoiceStore)
	industryHandler := api.NewIndustryHandler(app.industryStore)

	// Register routes
	r.Route("/companies", func(r chi.Router) {
		r.Get("/", companyHandler.List)
		r.Post("/", companyHandler.Create)
		r.Get("/{code}", companyHandler.Get)
		r.Put("/{code}", companyHandler.Update)
		r.Delete("/{code}", companyHandler.Delete)
	})

	r.Route("/invoices", func(r chi.Router) {
		r.Get("/", invoiceHandler.List)
		r.Post("/", invoiceHandler.Create)
		r.Get("/{id}", invoiceHandler.Get)
		r.Put("/{id}", invoiceHandler.Update)
		r.Delete("/{id}", invoiceHandler.Delete)
	})

	r.Route("/industries", func(r chi.Router) {
		r.Get("/", industryHandler.List)
		r.Post("/", industryHandler.Create)
		r.Post("/associating", industryHandler.Associate)
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
