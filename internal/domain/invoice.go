package domain

import (
	"errors"
	"time"
)

// Common validation errors for Invoice
var (
	ErrEmptyInvoiceCompCode = errors.New("invoice company code cannot be empty")
	ErrNegativeInvoiceAmt   = errors.New("invoice amount cannot be negative")
)

// Invoice represents a bill issued to a company. The ID is generated by
// the database; paid defaults to false and AddDate to the creation date.
type Invoice struct {
	ID       int64      `json:"id"`
	CompCode string     `json:"comp_code"`
	Amt      float64    `json:"amt"`
	Paid     bool       `json:"paid"`
	AddDate  time.Time  `json:"add_date"`
	PaidDate *time.Time `json:"paid_date"`
}

// NewInvoice creates a new Invoice for the given company code and amount.
// The ID, add date and paid state are filled in by the store on insert.
// Returns an error if validation fails.
func NewInvoice(compCode string, amt float64) (*Invoice, error) {
	invoice := &Invoice{
		CompCode: compCode,
		Amt:      amt,
	}

	if err := invoice.Validate(); err != nil {
		return nil, err
	}

	return invoice, nil
}

// Validate checks if the Invoice has valid data.
// Returns an error if any field fails validation.
func (i *Invoice) Validate() error {
	if i.CompCode == "" {
		return ErrEmptyInvoiceCompCode
	}

	if i.Amt < 0 {
		return ErrNegativeInvoiceAmt
	}

	return nil
}

// InvoiceWithCompany is the detail view of an invoice joined to its
// owning company. Invoices whose company has been deleted never appear
// here (inner join).
type InvoiceWithCompany struct {
	Invoice Invoice
	Company Company
}
