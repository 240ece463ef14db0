package api

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/calebws/biztime/internal/api/shared"
	"github.com/calebws/biztime/internal/domain"
	"github.com/calebws/biztime/internal/store"
)

// CreateIndustryRequest represents the request body for creating an industry.
type CreateIndustryRequest struct {
	Code     string `json:"code"     validate:"required"`
	Industry string `json:"industry" validate:"required"`
}

// AssociateIndustryRequest represents the request body for linking a
// company to an industry.
type AssociateIndustryRequest struct {
	CompanyCode  string `json:"company_code"  validate:"required"`
	IndustryCode string `json:"industry_code" validate:"required"`
}

// IndustryHandler handles industry-related HTTP requests.
type IndustryHandler struct {
	industryStore store.IndustryStore
	validator     *validator.Validate
}

// NewIndustryHandler creates a new IndustryHandler.
func NewIndustryHandler(industryStore store.IndustryStore) *IndustryHandler {
	return &IndustryHandler{
		industryStore: industryStore,
		validator:     validator.New(),
	}
}

// List handles GET /industries requests, returning one row per
// (industry, associated company) pair.
func (h *IndustryHandler) List(w http.ResponseWriter, r *http.Request) {
	industries, err := h.industryStore.ListWithCompanies(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list industries")
		return
	}

	// The response key predates this service; existing clients read
	// "invoices" here, so it stays.
	shared.RespondWithJSON(w, r, http.StatusOK, map[string]interface{}{
		"invoices": industries,
	})
}

// Create handles POST /industries requests.
func (h *IndustryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateIndustryRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "code and industry are required")
		return
	}

	industry, err := domain.NewIndustry(req.Code, req.Industry)
	if err != nil {
		HandleAPIError(w, r, domain.NewValidationError("industry", "is invalid", domain.ErrValidation), "")
		return
	}

	if err := h.industryStore.Create(r.Context(), industry); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, map[string]interface{}{
		"industry": industry,
	})
}

// Associate handles POST /industries/associating requests, inserting a
// single association row between a company and an industry.
func (h *IndustryHandler) Associate(w http.ResponseWriter, r *http.Request) {
	var req AssociateIndustryRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "company_code and industry_code are required")
		return
	}

	if err := h.industryStore.Associate(r.Context(), req.CompanyCode, req.IndustryCode); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, map[string]interface{}{
		"status": "completed",
	})
}
