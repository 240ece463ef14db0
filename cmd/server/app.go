package main

import (
	"database/sql"
	"log/slog"

	"github.com/calebws/biztime/internal/config"
	"github.com/calebws/biztime/internal/platform/postgres"
	"github.com/calebws/biztime/internal/store"
)

// application holds the resolved dependencies of the running server:
// configuration, the shared logger and connection pool, and the stores
// the handlers are built on.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	companyStore  store.CompanyStore
	invoiceStore  store.InvoiceStore
	industryStore store.IndustryStore
}

// newApplication wires the stores onto the shared database connection.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) *application {
	return &application{
		config:        cfg,
		logger:        logger,
		db:            db,
		companyStore:  postgres.NewPostgresCompanyStore(db, logger),
		invoiceStore:  postgres.NewPostgresInvoiceStore(db, logger),
		industryStore: postgres.NewPostgresIndustryStore(db, logger),
	}
}

// cleanup releases resources held by the application.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Failed to close database connection", "error", err)
		}
	}
}
