package store

import (
	"context"

	"github.com/calebws/biztime/internal/domain"
)

// CompanyStore defines the interface for company data persistence.
type CompanyStore interface {
	// List retrieves all companies in storage order.
	// Returns an empty slice if no companies exist.
	List(ctx context.Context) ([]*domain.Company, error)

	// GetByCode retrieves a company by its unique code.
	// Returns ErrCompanyNotFound if the company does not exist.
	GetByCode(ctx context.Context, code string) (*domain.Company, error)

	// Create saves a new company to the store.
	// Returns ErrDuplicate if a company with the same code already exists.
	Create(ctx context.Context, company *domain.Company) error

	// Update saves the name and description of an existing company.
	// The code identifies the row and never changes.
	// Returns ErrCompanyNotFound if the company does not exist.
	Update(ctx context.Context, company *domain.Company) error

	// Delete removes the company with the given code.
	// Returns ErrCompanyNotFound if the company does not exist.
	Delete(ctx context.Context, code string) error
}
