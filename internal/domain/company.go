package domain

import (
	"errors"

	"github.com/gosimple/slug"
)

// Common validation errors for Company
var (
	ErrEmptyCompanyCode        = errors.New("company code cannot be empty")
	ErrEmptyCompanyName        = errors.New("company name cannot be empty")
	ErrEmptyCompanyDescription = errors.New("company description cannot be empty")
)

// Company represents a business listed in the directory. The code is a
// URL-safe slug derived from the name at creation time and never changes
// afterwards.
type Company struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// NewCompany creates a new Company with the given name and description.
// The company code is derived from the name by slugification (lowercase,
// whitespace and punctuation collapsed to single separators).
// Returns an error if validation fails.
func NewCompany(name, description string) (*Company, error) {
	company := &Company{
		Code:        SlugifyName(name),
		Name:        name,
		Description: description,
	}

	if err := company.Validate(); err != nil {
		return nil, err
	}

	return company, nil
}

// SlugifyName derives a company code from a display name.
// "Penguin Random House" becomes "penguin-random-house".
func SlugifyName(name string) string {
	return slug.Make(name)
}

// Validate checks if the Company has valid data.
// Returns an error if any field fails validation.
func (c *Company) Validate() error {
	if c.Code == "" {
		return ErrEmptyCompanyCode
	}

	if c.Name == "" {
		return ErrEmptyCompanyName
	}

	if c.Description == "" {
		return ErrEmptyCompanyDescription
	}

	return nil
}
