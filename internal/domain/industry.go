package domain

import "errors"

// Common validation errors for Industry
var (
	ErrEmptyIndustryCode = errors.New("industry code cannot be empty")
	ErrEmptyIndustryName = errors.New("industry name cannot be empty")
)

// Industry represents a business sector companies can be tagged with.
type Industry struct {
	Code     string `json:"code"`
	Industry string `json:"industry"`
}

// NewIndustry creates a new Industry with the given code and description.
// Returns an error if validation fails.
func NewIndustry(code, industry string) (*Industry, error) {
	ind := &Industry{
		Code:     code,
		Industry: industry,
	}

	if err := ind.Validate(); err != nil {
		return nil, err
	}

	return ind, nil
}

// Validate checks if the Industry has valid data.
func (i *Industry) Validate() error {
	if i.Code == "" {
		return ErrEmptyIndustryCode
	}

	if i.Industry == "" {
		return ErrEmptyIndustryName
	}

	return nil
}

// IndustryCompany is one row of the industry listing: an industry paired
// with one associated company code, or a nil company code when the
// industry has no associations (left join).
type IndustryCompany struct {
	Code        string  `json:"code"`
	Industry    string  `json:"industry"`
	CompanyCode *string `json:"company_code"`
}
