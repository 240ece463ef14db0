package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calebws/biztime/internal/domain"
	"github.com/calebws/biztime/internal/store"
)

// MockInvoiceStore is a mock implementation of store.InvoiceStore for testing
type MockInvoiceStore struct {
	ListFn             func(ctx context.Context) ([]*domain.Invoice, error)
	GetByIDFn          func(ctx context.Context, id int64) (*domain.Invoice, error)
	GetWithCompanyFn   func(ctx context.Context, id int64) (*domain.InvoiceWithCompany, error)
	ListIDsByCompanyFn func(ctx context.Context, compCode string) ([]int64, error)
	CreateFn           func(ctx context.Context, invoice *domain.Invoice) error
	UpdateAmountFn     func(ctx context.Context, id int64, amt float64) (*domain.Invoice, error)
	DeleteFn           func(ctx context.Context, id int64) error
}

func (m *MockInvoiceStore) List(ctx context.Context) ([]*domain.Invoice, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return []*domain.Invoice{}, nil
}

func (m *MockInvoiceStore) GetByID(ctx context.Context, id int64) (*domain.Invoice, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, store.ErrInvoiceNotFound
}

func (m *MockInvoiceStore) GetWithCompany(
	ctx context.Context,
	id int64,
) (*domain.InvoiceWithCompany, error) {
	if m.GetWithCompanyFn != nil {
		return m.GetWithCompanyFn(ctx, id)
	}
	return nil, store.ErrInvoiceNotFound
}

func (m *MockInvoiceStore) ListIDsByCompany(
	ctx context.Context,
	compCode string,
) ([]int64, error) {
	if m.ListIDsByCompanyFn != nil {
		return m.ListIDsByCompanyFn(ctx, compCode)
	}
	return []int64{}, nil
}

func (m *MockInvoiceStore) Create(ctx context.Context, invoice *domain.Invoice) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, invoice)
	}
	return nil
}

func (m *MockInvoiceStore) UpdateAmount(
	ctx context.Context,
	id int64,
	amt float64,
) (*domain.Invoice, error) {
	if m.UpdateAmountFn != nil {
		return m.UpdateAmountFn(ctx, id, amt)
	}
	return nil, store.ErrInvoiceNotFound
}

func (m *MockInvoiceStore) Delete(ctx context.Context, id int64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil
}

// newInvoiceRouter mounts an InvoiceHandler the way the server router does.
func newInvoiceRouter(h *InvoiceHandler) http.Handler {
	r := chi.NewRouter()
	r.Get("/invoices", h.List)
	r.Post("/invoices", h.Create)
	r.Get("/invoices/{id}", h.Get)
	r.Put("/invoices/{id}", h.Update)
	r.Delete("/invoices/{id}", h.Delete)
	return r
}

func TestInvoiceHandler_List(t *testing.T) {
	addDate := time.Date(2025, time.March, 3, 0, 0, 0, 0, time.UTC)
	invoiceStore := &MockInvoiceStore{
		ListFn: func(ctx context.Context) ([]*domain.Invoice, error) {
			return []*domain.Invoice{
				{ID: 1, CompCode: "meta", Amt: 100, AddDate: addDate},
				{ID: 2, CompCode: "ibm", Amt: 250, AddDate: addDate},
			}, nil
		},
	}
	router := newInvoiceRouter(NewInvoiceHandler(invoiceStore))

	req := httptest.NewRequest(http.MethodGet, "/invoices", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var body struct {
		Invoices []InvoiceSummary `json:"invoices"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, []InvoiceSummary{
		{ID: 1, CompCode: "meta"},
		{ID: 2, CompCode: "ibm"},
	}, body.Invoices)
}

func TestInvoiceHandler_Get(t *testing.T) {
	addDate := time.Date(2025, time.March, 3, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name           string
		path           string
		setupMock      func(*MockInvoiceStore)
		expectedStatus int
		expectedErrMsg string
	}{
		{
			name: "existing_invoice_includes_company",
			path: "/invoices/7",
			setupMock: func(is *MockInvoiceStore) {
				is.GetWithCompanyFn = func(ctx context.Context, id int64) (*domain.InvoiceWithCompany, error) {
					return &domain.InvoiceWithCompany{
						Invoice: domain.Invoice{ID: id, CompCode: "meta", Amt: 100, AddDate: addDate},
						Company: domain.Company{Code: "meta", Name: "Meta", Description: "Social media"},
					}, nil
				}
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "unknown_invoice",
			path:           "/invoices/99",
			setupMock:      func(is *MockInvoiceStore) {},
			expectedStatus: http.StatusNotFound,
			expectedErrMsg: "There is no invoice with id 99",
		},
		{
			name:           "non_numeric_id",
			path:           "/invoices/abc",
			setupMock:      func(is *MockInvoiceStore) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			invoiceStore := &MockInvoiceStore{}
			tc.setupMock(invoiceStore)
			router := newInvoiceRouter(NewInvoiceHandler(invoiceStore))

			req := httptest.NewRequest(http.MethodGet, tc.path, nil)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			require.Equal(t, tc.expectedStatus, rr.Code)

			if tc.expectedStatus == http.StatusOK {
				var body struct {
					Invoice InvoiceDetail  `json:"invoice"`
					Company domain.Company `json:"company"`
				}
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
				assert.Equal(t, int64(7), body.Invoice.ID)
				assert.Equal(t, 100.0, body.Invoice.Amt)
				assert.False(t, body.Invoice.Paid)
				assert.Nil(t, body.Invoice.PaidDate)
				assert.Equal(t, "meta", body.Company.Code)
				assert.Equal(t, "Meta", body.Company.Name)
				assert.Equal(t, "Social media", body.Company.Description)
			}

			if tc.expectedErrMsg != "" {
				var errBody map[string]interface{}
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &errBody))
				assert.Equal(t, tc.expectedErrMsg, errBody["error"])
			}
		})
	}
}

func TestInvoiceHandler_Create(t *testing.T) {
	addDate := time.Date(2025, time.March, 3, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name            string
		requestBody     map[string]interface{}
		expectedStatus  int
		expectStoreCall bool
	}{
		{
			name: "successful_creation",
			requestBody: map[string]interface{}{
				"comp_code": "meta",
				"amt":       300.0,
			},
			expectedStatus:  http.StatusCreated,
			expectStoreCall: true,
		},
		{
			name: "missing_comp_code",
			requestBody: map[string]interface{}{
				"amt": 300.0,
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "missing_amt",
			requestBody: map[string]interface{}{
				"comp_code": "meta",
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "zero_amt_is_present",
			requestBody: map[string]interface{}{
				"comp_code": "meta",
				"amt":       0.0,
			},
			expectedStatus:  http.StatusCreated,
			expectStoreCall: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			storeCalled := false
			invoiceStore := &MockInvoiceStore{
				CreateFn: func(ctx context.Context, invoice *domain.Invoice) error {
					storeCalled = true
					// The store fills in database-generated fields.
					invoice.ID = 8
					invoice.Paid = false
					invoice.AddDate = addDate
					invoice.PaidDate = nil
					return nil
				},
			}
			router := newInvoiceRouter(NewInvoiceHandler(invoiceStore))

			payload, err := json.Marshal(tc.requestBody)
			require.NoError(t, err)

			req := httptest.NewRequest(http.MethodPost, "/invoices", bytes.NewReader(payload))
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			require.Equal(t, tc.expectedStatus, rr.Code)
			assert.Equal(t, tc.expectStoreCall, storeCalled)

			if tc.expectedStatus == http.StatusCreated {
				var body struct {
					Invoice domain.Invoice `json:"invoice"`
				}
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
				assert.Equal(t, int64(8), body.Invoice.ID)
				assert.Equal(t, "meta", body.Invoice.CompCode)
				assert.False(t, body.Invoice.Paid)
				assert.Nil(t, body.Invoice.PaidDate)
				assert.Equal(t, addDate, body.Invoice.AddDate)
			}
		})
	}
}

func TestInvoiceHandler_Update(t *testing.T) {
	addDate := time.Date(2025, time.March, 3, 0, 0, 0, 0, time.UTC)

	t.Run("successful_amount_update", func(t *testing.T) {
		var checkedID, updatedID int64
		invoiceStore := &MockInvoiceStore{
			GetByIDFn: func(ctx context.Context, id int64) (*domain.Invoice, error) {
				checkedID = id
				return &domain.Invoice{ID: id, CompCode: "meta", Amt: 100, AddDate: addDate}, nil
			},
			UpdateAmountFn: func(ctx context.Context, id int64, amt float64) (*domain.Invoice, error) {
				updatedID = id
				return &domain.Invoice{ID: id, CompCode: "meta", Amt: amt, AddDate: addDate}, nil
			},
		}
		router := newInvoiceRouter(NewInvoiceHandler(invoiceStore))

		payload := []byte(`{"amt": 750}`)
		req := httptest.NewRequest(http.MethodPut, "/invoices/7", bytes.NewReader(payload))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, int64(7), checkedID, "existence check filters by the target id")
		assert.Equal(t, int64(7), updatedID)

		var body struct {
			Invoice domain.Invoice `json:"invoice"`
		}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		assert.Equal(t, 750.0, body.Invoice.Amt)
		assert.False(t, body.Invoice.Paid, "paid state is untouched")
	})

	t.Run("unknown_invoice", func(t *testing.T) {
		updateCalled := false
		invoiceStore := &MockInvoiceStore{
			UpdateAmountFn: func(ctx context.Context, id int64, amt float64) (*domain.Invoice, error) {
				updateCalled = true
				return nil, store.ErrInvoiceNotFound
			},
		}
		router := newInvoiceRouter(NewInvoiceHandler(invoiceStore))

		payload := []byte(`{"amt": 750}`)
		req := httptest.NewRequest(http.MethodPut, "/invoices/99", bytes.NewReader(payload))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.False(t, updateCalled, "update must not run when the invoice is missing")
	})

	t.Run("missing_amt", func(t *testing.T) {
		router := newInvoiceRouter(NewInvoiceHandler(&MockInvoiceStore{}))

		payload := []byte(`{}`)
		req := httptest.NewRequest(http.MethodPut, "/invoices/7", bytes.NewReader(payload))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestInvoiceHandler_Delete(t *testing.T) {
	t.Run("existing_invoice", func(t *testing.T) {
		invoiceStore := &MockInvoiceStore{
			DeleteFn: func(ctx context.Context, id int64) error {
				return nil
			},
		}
		router := newInvoiceRouter(NewInvoiceHandler(invoiceStore))

		req := httptest.NewRequest(http.MethodDelete, "/invoices/7", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)

		var body map[string]string
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		assert.Equal(t, "deleted", body["status"])
	})

	t.Run("unknown_invoice", func(t *testing.T) {
		invoiceStore := &MockInvoiceStore{
			DeleteFn: func(ctx context.Context, id int64) error {
				return store.ErrInvoiceNotFound
			},
		}
		router := newInvoiceRouter(NewInvoiceHandler(invoiceStore))

		req := httptest.NewRequest(http.MethodDelete, "/invoices/99", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}
