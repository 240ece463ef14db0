package api

import (
	"errors"
	"net/http"

	"github.com/calebws/biztime/internal/api/shared"
	"github.com/calebws/biztime/internal/domain"
	"github.com/calebws/biztime/internal/store"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
//
// Only two error kinds are classified: validation failures (400) and
// missing rows (404). Everything else, including constraint violations
// surfaced by the database, falls through to 500.
func MapErrorToStatusCode(err error) int {
	switch {
	// Not found errors
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	// Bad request errors
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrImmutableField),
		errors.Is(err, domain.ErrInvalidID):
		return http.StatusBadRequest

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, store.ErrCompanyNotFound):
		return "Company not found"

	case errors.Is(err, store.ErrInvoiceNotFound):
		return "Invoice not found"

	case errors.Is(err, store.ErrIndustryNotFound):
		return "Industry not found"

	case errors.Is(err, store.ErrNotFound):
		return "Not found"

	// Validation errors carry messages we built ourselves, so they are
	// safe to echo back.
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrImmutableField),
		errors.Is(err, domain.ErrInvalidID):
		var validationErr *domain.ValidationError
		if errors.As(err, &validationErr) {
			return validationErr.Error()
		}
		return "Validation error"

	default:
		return "An unexpected error occurred"
	}
}

// HandleAPIError maps an internal error to an HTTP status and writes the
// JSON error response. When defaultMsg is non-empty it overrides the
// generic message derived from the error type; the raw error is only
// ever logged, never returned.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, defaultMsg string) {
	status := MapErrorToStatusCode(err)

	message := defaultMsg
	if message == "" {
		message = GetSafeErrorMessage(err)
	}

	shared.RespondWithErrorAndLog(w, r, status, message, err)
}
