package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/calebws/biztime/internal/domain"
	"github.com/calebws/biztime/internal/platform/logger"
	"github.com/calebws/biztime/internal/store"
)

// PostgresInvoiceStore implements the store.InvoiceStore interface
// using a PostgreSQL database as the storage backend.
type PostgresInvoiceStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresInvoiceStore creates a new PostgreSQL implementation of the
// InvoiceStore interface. It accepts a database connection or transaction
// that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresInvoiceStore(db store.DBTX, logger *slog.Logger) *PostgresInvoiceStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresInvoiceStore{
		db:     db,
		logger: logger.With(slog.String("component", "invoice_store")),
	}
}

// Ensure PostgresInvoiceStore implements store.InvoiceStore interface
var _ store.InvoiceStore = (*PostgresInvoiceStore)(nil)

// List implements store.InvoiceStore.List
func (s *PostgresInvoiceStore) List(ctx context.Context) ([]*domain.Invoice, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, comp_code, amt, paid, add_date, paid_date
		FROM invoices
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		log.Error("failed to query invoices", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	var invoices []*domain.Invoice
	for rows.Next() {
		var invoice domain.Invoice
		err := rows.Scan(
			&invoice.ID,
			&invoice.CompCode,
			&invoice.Amt,
			&invoice.Paid,
			&invoice.AddDate,
			&invoice.PaidDate,
		)
		if err != nil {
			log.Error("failed to scan invoice row", slog.String("error", err.Error()))
			return nil, err
		}
		invoices = append(invoices, &invoice)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows", slog.String("error", err.Error()))
		return nil, err
	}

	if invoices == nil {
		invoices = []*domain.Invoice{}
	}

	log.Debug("listed invoices", slog.Int("count", len(invoices)))
	return invoices, nil
}

// GetByID implements store.InvoiceStore.GetByID
// Returns store.ErrInvoiceNotFound if the invoice does not exist.
func (s *PostgresInvoiceStore) GetByID(ctx context.Context, id int64) (*domain.Invoice, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, comp_code, amt, paid, add_date, paid_date
		FROM invoices
		WHERE id = $1
	`

	var invoice domain.Invoice
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&invoice.ID,
		&invoice.CompCode,
		&invoice.Amt,
		&invoice.Paid,
		&invoice.AddDate,
		&invoice.PaidDate,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("invoice not found", slog.Int64("invoice_id", id))
			return nil, store.ErrInvoiceNotFound
		}
		log.Error("failed to get invoice by ID",
			slog.String("error", err.Error()),
			slog.Int64("invoice_id", id))
		return nil, err
	}

	return &invoice, nil
}

// GetWithCompany implements store.InvoiceStore.GetWithCompany
// The inner join means an invoice whose company has been deleted is
// reported as not found.
func (s *PostgresInvoiceStore) GetWithCompany(
	ctx context.Context,
	id int64,
) (*domain.InvoiceWithCompany, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT i.id, i.comp_code, i.amt, i.paid, i.add_date, i.paid_date,
		       c.code, c.name, c.description
		FROM invoices AS i
		INNER JOIN companies AS c ON i.comp_code = c.code
		WHERE i.id = $1
	`

	var detail domain.InvoiceWithCompany
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&detail.Invoice.ID,
		&detail.Invoice.CompCode,
		&detail.Invoice.Amt,
		&detail.Invoice.Paid,
		&detail.Invoice.AddDate,
		&detail.Invoice.PaidDate,
		&detail.Company.Code,
		&detail.Company.Name,
		&detail.Company.Description,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("invoice not found", slog.Int64("invoice_id", id))
			return nil, store.ErrInvoiceNotFound
		}
		log.Error("failed to get invoice with company",
			slog.String("error", err.Error()),
			slog.Int64("invoice_id", id))
		return nil, err
	}

	return &detail, nil
}

// ListIDsByCompany implements store.InvoiceStore.ListIDsByCompany
func (s *PostgresInvoiceStore) ListIDsByCompany(
	ctx context.Context,
	compCode string,
) ([]int64, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id
		FROM invoices
		WHERE comp_code = $1
		ORDER BY id
	`

	rows, err := s.db.QueryContext(ctx, query, compCode)
	if err != nil {
		log.Error("failed to query invoice IDs",
			slog.String("error", err.Error()),
			slog.String("comp_code", compCode))
		return nil, MapError(err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	ids := []int64{}
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			log.Error("failed to scan invoice ID", slog.String("error", err.Error()))
			return nil, err
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows", slog.String("error", err.Error()))
		return nil, err
	}

	return ids, nil
}

// Create implements store.InvoiceStore.Create
// The database fills in the generated ID, the paid default, and the add
// date; those values are written back onto the passed invoice.
// Returns store.ErrInvalidEntity if the company code doesn't exist
// (foreign key violation).
func (s *PostgresInvoiceStore) Create(ctx context.Context, invoice *domain.Invoice) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := invoice.Validate(); err != nil {
		log.Warn("invoice validation failed during create",
			slog.String("error", err.Error()),
			slog.String("comp_code", invoice.CompCode))
		return err
	}

	query := `
		INSERT INTO invoices (comp_code, amt)
		VALUES ($1, $2)
		RETURNING id, comp_code, amt, paid, add_date, paid_date
	`

	err := s.db.QueryRowContext(ctx, query, invoice.CompCode, invoice.Amt).Scan(
		&invoice.ID,
		&invoice.CompCode,
		&invoice.Amt,
		&invoice.Paid,
		&invoice.AddDate,
		&invoice.PaidDate,
	)

	if err != nil {
		if IsForeignKeyViolation(err) {
			log.Warn("foreign key violation during invoice creation",
				slog.String("comp_code", invoice.CompCode))
			return fmt.Errorf("%w: company with code %s not found",
				store.ErrInvalidEntity, invoice.CompCode)
		}

		log.Error("failed to create invoice",
			slog.String("error", err.Error()),
			slog.String("comp_code", invoice.CompCode))
		return MapError(err)
	}

	log.Info("invoice created successfully",
		slog.Int64("invoice_id", invoice.ID),
		slog.String("comp_code", invoice.CompCode))
	return nil
}

// UpdateAmount implements store.InvoiceStore.UpdateAmount
// Returns store.ErrInvoiceNotFound if the invoice does not exist.
func (s *PostgresInvoiceStore) UpdateAmount(
	ctx context.Context,
	id int64,
	amt float64,
) (*domain.Invoice, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		UPDATE invoices
		SET amt = $1
		WHERE id = $2
		RETURNING id, comp_code, amt, paid, add_date, paid_date
	`

	var invoice domain.Invoice
	err := s.db.QueryRowContext(ctx, query, amt, id).Scan(
		&invoice.ID,
		&invoice.CompCode,
		&invoice.Amt,
		&invoice.Paid,
		&invoice.AddDate,
		&invoice.PaidDate,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("invoice not found for amount update", slog.Int64("invoice_id", id))
			return nil, store.ErrInvoiceNotFound
		}
		log.Error("failed to update invoice amount",
			slog.String("error", err.Error()),
			slog.Int64("invoice_id", id))
		return nil, MapError(err)
	}

	log.Info("invoice amount updated successfully",
		slog.Int64("invoice_id", id),
		slog.Float64("amt", amt))
	return &invoice, nil
}

// Delete implements store.InvoiceStore.Delete
// Returns store.ErrInvoiceNotFound if the invoice does not exist.
func (s *PostgresInvoiceStore) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		DELETE FROM invoices
		WHERE id = $1
	`

	result, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		log.Error("failed to delete invoice",
			slog.String("error", err.Error()),
			slog.Int64("invoice_id", id))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, store.ErrInvoiceNotFound); err != nil {
		log.Debug("invoice not found for delete", slog.Int64("invoice_id", id))
		return err
	}

	log.Info("invoice deleted successfully", slog.Int64("invoice_id", id))
	return nil
}
