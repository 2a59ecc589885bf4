package models

// Company represents a company row. Handle is the immutable natural key.
type Company struct {
	Handle       string  `json:"handle" db:"handle"`
	Name         string  `json:"name" db:"name"`
	NumEmployees *int    `json:"num_employees" db:"num_employees"`
	Description  *string `json:"description" db:"description"`
	LogoURL      *string `json:"logo_url" db:"logo_url"`
}

// CompanySummary is the projection used by list responses.
type CompanySummary struct {
	Handle string `json:"handle" db:"handle"`
	Name   string `json:"name" db:"name"`
}

// CompanyJob is the job projection attached to a company record.
type CompanyJob struct {
	ID     int64    `json:"id" db:"id"`
	Title  string   `json:"title" db:"title"`
	Salary *float64 `json:"salary" db:"salary"`
	Equity *float64 `json:"equity" db:"equity"`
}

// CompanyDetails is a company with its owned jobs attached.
type CompanyDetails struct {
	Company
	Jobs []CompanyJob `json:"jobs"`
}

type CreateCompanyRequest struct {
	Handle       string  `json:"handle"`
	Name         string  `json:"name"`
	NumEmployees *int    `json:"num_employees,omitempty"`
	Description  *string `json:"description,omitempty"`
	LogoURL      *string `json:"logo_url,omitempty"`
}

// UpdateCompanyRequest carries the optional fields of a partial update.
// The handle is immutable and deliberately absent.
type UpdateCompanyRequest struct {
	Name         *string `json:"name,omitempty"`
	NumEmployees *int    `json:"num_employees,omitempty"`
	Description  *string `json:"description,omitempty"`
	LogoURL      *string `json:"logo_url,omitempty"`
}

// CompanyListFilter holds the raw optional query filters. Numeric bounds
// stay raw; values that do not parse as numbers are treated as absent.
type CompanyListFilter struct {
	Search       string `schema:"search"`
	MinEmployees string `schema:"min_employees"`
	MaxEmployees string `schema:"max_employees"`
}
