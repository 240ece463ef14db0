package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsNotFoundError(t *testing.T) {
	assert.True(t, IsNotFoundError(ErrNotFound))
	assert.True(t, IsNotFoundError(ErrCompanyNotFound))
	assert.True(t, IsNotFoundError(ErrInvoiceNotFound))
	assert.True(t, IsNotFoundError(ErrIndustryNotFound))
	assert.True(t, IsNotFoundError(fmt.Errorf("lookup: %w", ErrCompanyNotFound)))
	assert.False(t, IsNotFoundError(ErrDuplicate))
	assert.False(t, IsNotFoundError(errors.New("other")))
}

func TestIsDuplicateError(t *testing.T) {
	assert.True(t, IsDuplicateError(ErrDuplicate))
	assert.True(t, IsDuplicateError(fmt.Errorf("insert: %w", ErrDuplicate)))
	assert.False(t, IsDuplicateError(ErrNotFound))
}

func TestEntitySpecificErrorsWrapGeneric(t *testing.T) {
	assert.ErrorIs(t, ErrCompanyNotFound, ErrNotFound)
	assert.ErrorIs(t, ErrInvoiceNotFound, ErrNotFound)
	assert.ErrorIs(t, ErrIndustryNotFound, ErrNotFound)
}
