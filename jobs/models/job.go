package models

// Job represents a job row. The id is auto-assigned and immutable; every
// job belongs to exactly one company.
type Job struct {
	ID            int64    `json:"id" db:"id"`
	Title         string   `json:"title" db:"title"`
	Salary        *float64 `json:"salary" db:"salary"`
	Equity        *float64 `json:"equity" db:"equity"`
	CompanyHandle string   `json:"company_handle" db:"company_handle"`
}

// JobSummary is the projection used by list responses.
type JobSummary struct {
	ID            int64  `json:"id" db:"id"`
	Title         string `json:"title" db:"title"`
	CompanyHandle string `json:"company_handle" db:"company_handle"`
}

// JobCompany is the owning-company projection attached to a job record.
type JobCompany struct {
	Handle       string  `json:"handle" db:"handle"`
	Name         string  `json:"name" db:"name"`
	NumEmployees *int    `json:"num_employees" db:"num_employees"`
	Description  *string `json:"description" db:"description"`
	LogoURL      *string `json:"logo_url" db:"logo_url"`
}

// JobDetails is a job with its owning company attached.
type JobDetails struct {
	Job
	Company JobCompany `json:"company"`
}

type CreateJobRequest struct {
	Title         string   `json:"title"`
	Salary        *float64 `json:"salary,omitempty"`
	Equity        *float64 `json:"equity,omitempty"`
	CompanyHandle string   `json:"company_handle"`
}

// UpdateJobRequest carries the optional fields of a partial update. The id
// is immutable and deliberately absent.
type UpdateJobRequest struct {
	Title         *string  `json:"title,omitempty"`
	Salary        *float64 `json:"salary,omitempty"`
	Equity        *float64 `json:"equity,omitempty"`
	CompanyHandle *string  `json:"company_handle,omitempty"`
}

// JobListFilter holds the raw optional query filters.
type JobListFilter struct {
	Search    string `schema:"search"`
	MinSalary string `schema:"min_salary"`
	MinEquity string `schema:"min_equity"`
}
