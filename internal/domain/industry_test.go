package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIndustry(t *testing.T) {
	t.Run("valid_industry", func(t *testing.T) {
		industry, err := NewIndustry("tech", "Technology")
		require.NoError(t, err)

		assert.Equal(t, "tech", industry.Code)
		assert.Equal(t, "Technology", industry.Industry)
	})

	t.Run("missing_code_fails", func(t *testing.T) {
		_, err := NewIndustry("", "Technology")
		assert.ErrorIs(t, err, ErrEmptyIndustryCode)
	})

	t.Run("missing_name_fails", func(t *testing.T) {
		_, err := NewIndustry("tech", "")
		assert.ErrorIs(t, err, ErrEmptyIndustryName)
	})
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("code", "change not allowed", ErrImmutableField)

	assert.Equal(t, "code change not allowed", err.Error())
	assert.ErrorIs(t, err, ErrImmutableField)
}
