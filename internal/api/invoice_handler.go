package api

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/calebws/biztime/internal/api/shared"
	"github.com/calebws/biztime/internal/domain"
	"github.com/calebws/biztime/internal/store"
)

// CreateInvoiceRequest represents the request body for creating an invoice.
// Amt is a pointer so a missing field can be told apart from a zero amount.
type CreateInvoiceRequest struct {
	CompCode string   `json:"comp_code" validate:"required"`
	Amt      *float64 `json:"amt"       validate:"required"`
}

// UpdateInvoiceRequest represents the request body for updating an invoice.
// Only the amount is updatable; the paid state and dates never change here.
type UpdateInvoiceRequest struct {
	Amt *float64 `json:"amt" validate:"required"`
}

// InvoiceSummary is the listing view of an invoice.
type InvoiceSummary struct {
	ID       int64  `json:"id"`
	CompCode string `json:"comp_code"`
}

// InvoiceDetail is the invoice half of the detail response. The owning
// company is returned as a sibling object, so comp_code is omitted.
type InvoiceDetail struct {
	ID       int64      `json:"id"`
	Amt      float64    `json:"amt"`
	Paid     bool       `json:"paid"`
	AddDate  time.Time  `json:"add_date"`
	PaidDate *time.Time `json:"paid_date"`
}

// InvoiceHandler handles invoice-related HTTP requests.
type InvoiceHandler struct {
	invoiceStore store.InvoiceStore
	validator    *validator.Validate
}

// NewInvoiceHandler creates a new InvoiceHandler.
func NewInvoiceHandler(invoiceStore store.InvoiceStore) *InvoiceHandler {
	return &InvoiceHandler{
		invoiceStore: invoiceStore,
		validator:    validator.New(),
	}
}

// List handles GET /invoices requests.
func (h *InvoiceHandler) List(w http.ResponseWriter, r *http.Request) {
	invoices, err := h.invoiceStore.List(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list invoices")
		return
	}

	summaries := make([]InvoiceSummary, 0, len(invoices))
	for _, invoice := range invoices {
		summaries = append(summaries, InvoiceSummary{ID: invoice.ID, CompCode: invoice.CompCode})
	}

	shared.RespondWithJSON(w, r, http.StatusOK, map[string]interface{}{
		"invoices": summaries,
	})
}

// Get handles GET /invoices/{id} requests, joining the invoice to its
// owning company. An invoice whose company was deleted is not found.
func (h *InvoiceHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathInvoiceID(r)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	detail, err := h.invoiceStore.GetWithCompany(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, notFoundMessage(err, fmt.Sprintf("There is no invoice with id %d", id)))
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, map[string]interface{}{
		"invoice": invoiceToDetail(&detail.Invoice),
		"company": detail.Company,
	})
}

// Create handles POST /invoices requests. The database fills in the
// generated ID, the unpaid default, and the add date.
func (h *InvoiceHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateInvoiceRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "comp_code and amt are required")
		return
	}

	invoice, err := domain.NewInvoice(req.CompCode, *req.Amt)
	if err != nil {
		HandleAPIError(w, r, domain.NewValidationError("amt", "must not be negative", domain.ErrValidation), "")
		return
	}

	if err := h.invoiceStore.Create(r.Context(), invoice); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, map[string]interface{}{
		"invoice": invoice,
	})
}

// Update handles PUT /invoices/{id} requests. The invoice is looked up
// by ID first so a missing row surfaces as 404 before the update runs.
func (h *InvoiceHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathInvoiceID(r)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	var req UpdateInvoiceRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "amt is required")
		return
	}

	if _, err := h.invoiceStore.GetByID(r.Context(), id); err != nil {
		HandleAPIError(w, r, err, notFoundMessage(err, fmt.Sprintf("There is no invoice with id %d", id)))
		return
	}

	invoice, err := h.invoiceStore.UpdateAmount(r.Context(), id, *req.Amt)
	if err != nil {
		HandleAPIError(w, r, err, notFoundMessage(err, fmt.Sprintf("There is no invoice with id %d", id)))
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, map[string]interface{}{
		"invoice": invoice,
	})
}

// Delete handles DELETE /invoices/{id} requests.
func (h *InvoiceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathInvoiceID(r)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if err := h.invoiceStore.Delete(r.Context(), id); err != nil {
		HandleAPIError(w, r, err, notFoundMessage(err, fmt.Sprintf("There is no invoice with id %d", id)))
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, map[string]interface{}{
		"status": "deleted",
	})
}

// pathInvoiceID extracts and parses the invoice ID path parameter.
func pathInvoiceID(r *http.Request) (int64, error) {
	param := chi.URLParam(r, "id")
	if param == "" {
		return 0, domain.NewValidationError("id", "is required", domain.ErrValidation)
	}

	id, err := strconv.ParseInt(param, 10, 64)
	if err != nil {
		return 0, domain.NewValidationError("id", "has invalid format", domain.ErrInvalidID)
	}

	return id, nil
}

// invoiceToDetail converts a domain.Invoice to the detail response shape.
func invoiceToDetail(invoice *domain.Invoice) InvoiceDetail {
	return InvoiceDetail{
		ID:       invoice.ID,
		Amt:      invoice.Amt,
		Paid:     invoice.Paid,
		AddDate:  invoice.AddDate,
		PaidDate: invoice.PaidDate,
	}
}
