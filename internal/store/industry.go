package store

import (
	"context"

	"github.com/calebws/biztime/internal/domain"
)

// IndustryStore defines the interface for industry data persistence.
type IndustryStore interface {
	// ListWithCompanies retrieves every industry left-joined through the
	// association table to companies, one row per (industry, company)
	// pair. Industries with no associations appear once with a nil
	// company code.
	ListWithCompanies(ctx context.Context) ([]*domain.IndustryCompany, error)

	// Create saves a new industry to the store.
	// Returns ErrDuplicate if an industry with the same code already exists.
	Create(ctx context.Context, industry *domain.Industry) error

	// Associate inserts an association row linking a company to an
	// industry. Returns ErrInvalidEntity if either code does not exist.
	Associate(ctx context.Context, companyCode, industryCode string) error
}
