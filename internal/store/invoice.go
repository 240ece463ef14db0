package store

import (
	"context"

	"github.com/calebws/biztime/internal/domain"
)

// InvoiceStore defines the interface for invoice data persistence.
type InvoiceStore interface {
	// List retrieves all invoices in storage order.
	// Returns an empty slice if no invoices exist.
	List(ctx context.Context) ([]*domain.Invoice, error)

	// GetByID retrieves an invoice by its unique ID.
	// Returns ErrInvoiceNotFound if the invoice does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Invoice, error)

	// GetWithCompany retrieves an invoice joined to its owning company.
	// Returns ErrInvoiceNotFound if the invoice does not exist or its
	// company has been deleted (inner join).
	GetWithCompany(ctx context.Context, id int64) (*domain.InvoiceWithCompany, error)

	// ListIDsByCompany retrieves the IDs of all invoices owned by the
	// given company, ordered by ID ascending.
	ListIDsByCompany(ctx context.Context, compCode string) ([]int64, error)

	// Create inserts a new invoice and fills in the generated ID, paid
	// state, and add date on the passed invoice.
	// Returns ErrInvalidEntity if the company code does not exist.
	Create(ctx context.Context, invoice *domain.Invoice) error

	// UpdateAmount sets the amount of an existing invoice, leaving the
	// paid state and dates untouched, and returns the updated row.
	// Returns ErrInvoiceNotFound if the invoice does not exist.
	UpdateAmount(ctx context.Context, id int64, amt float64) (*domain.Invoice, error)

	// Delete removes the invoice with the given ID.
	// Returns ErrInvoiceNotFound if the invoice does not exist.
	Delete(ctx context.Context, id int64) error
}
