package api

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/calebws/biztime/internal/api/shared"
	"github.com/calebws/biztime/internal/domain"
	"github.com/calebws/biztime/internal/store"
)

// CreateCompanyRequest represents the request body for creating a company.
// The company code is never supplied by clients; it is derived from the name.
type CreateCompanyRequest struct {
	Name        string `json:"name"        validate:"required"`
	Description string `json:"description" validate:"required"`
}

// UpdateCompanyRequest represents the request body for updating a company.
// Code is a pointer so its mere presence can be rejected: the code is
// immutable after creation.
type UpdateCompanyRequest struct {
	Code        *string `json:"code"`
	Name        string  `json:"name"        validate:"required"`
	Description string  `json:"description" validate:"required"`
}

// CompanySummary is the listing view of a company.
type CompanySummary struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// InvoiceID wraps a single invoice ID in the company detail response.
type InvoiceID struct {
	ID int64 `json:"id"`
}

// CompanyHandler handles company-related HTTP requests.
type CompanyHandler struct {
	companyStore store.CompanyStore
	invoiceStore store.InvoiceStore
	validator    *validator.Validate
}

// NewCompanyHandler creates a new CompanyHandler.
func NewCompanyHandler(companyStore store.CompanyStore, invoiceStore store.InvoiceStore) *CompanyHandler {
	return &CompanyHandler{
		companyStore: companyStore,
		invoiceStore: invoiceStore,
		validator:    validator.New(),
	}
}

// List handles GET /companies requests.
func (h *CompanyHandler) List(w http.ResponseWriter, r *http.Request) {
	companies, err := h.companyStore.List(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list companies")
		return
	}

	summaries := make([]CompanySummary, 0, len(companies))
	for _, company := range companies {
		summaries = append(summaries, CompanySummary{Code: company.Code, Name: company.Name})
	}

	shared.RespondWithJSON(w, r, http.StatusOK, map[string]interface{}{
		"companies": summaries,
	})
}

// Get handles GET /companies/{code} requests. The response includes the
// IDs of the company's invoices, ordered by ID ascending.
func (h *CompanyHandler) Get(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")

	company, err := h.companyStore.GetByCode(r.Context(), code)
	if err != nil {
		HandleAPIError(w, r, err, notFoundMessage(err, fmt.Sprintf("There is no company with code %s", code)))
		return
	}

	ids, err := h.invoiceStore.ListIDsByCompany(r.Context(), code)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list company invoices")
		return
	}

	invoiceIDs := make([]InvoiceID, 0, len(ids))
	for _, id := range ids {
		invoiceIDs = append(invoiceIDs, InvoiceID{ID: id})
	}

	shared.RespondWithJSON(w, r, http.StatusOK, map[string]interface{}{
		"company":  company,
		"invoices": invoiceIDs,
	})
}

// Create handles POST /companies requests. The company code is derived
// from the supplied name by slugification.
func (h *CompanyHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateCompanyRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Name and description are required")
		return
	}

	company, err := domain.NewCompany(req.Name, req.Description)
	if err != nil {
		HandleAPIError(w, r, domain.NewValidationError("name", "cannot be slugified into a code", domain.ErrValidation), "")
		return
	}

	if err := h.companyStore.Create(r.Context(), company); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, map[string]interface{}{
		"company": company,
	})
}

// Update handles PUT /companies/{code} requests. A request body carrying
// a code field is rejected outright: the code never changes.
func (h *CompanyHandler) Update(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")

	var req UpdateCompanyRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if req.Code != nil {
		HandleAPIError(w, r,
			domain.NewValidationError("code", "change not allowed", domain.ErrImmutableField),
			"Code change not allowed")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Name and description are required")
		return
	}

	company := &domain.Company{
		Code:        code,
		Name:        req.Name,
		Description: req.Description,
	}

	if err := h.companyStore.Update(r.Context(), company); err != nil {
		HandleAPIError(w, r, err, notFoundMessage(err, fmt.Sprintf("There is no company with code %s", code)))
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, map[string]interface{}{
		"company": company,
	})
}

// Delete handles DELETE /companies/{code} requests.
func (h *CompanyHandler) Delete(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")

	if err := h.companyStore.Delete(r.Context(), code); err != nil {
		HandleAPIError(w, r, err, notFoundMessage(err, fmt.Sprintf("There is no company with code %s", code)))
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, map[string]interface{}{
		"status": "deleted",
	})
}

// notFoundMessage returns msg when err is a not-found error, otherwise an
// empty string so HandleAPIError falls back to the generic safe message.
// This keeps the descriptive "there is no X" detail off 500 responses.
func notFoundMessage(err error, msg string) string {
	if store.IsNotFoundError(err) {
		return msg
	}
	return ""
}
