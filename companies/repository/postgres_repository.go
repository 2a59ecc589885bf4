package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	companyErrors "github.com/hirelink/hirelink-api/companies/errors"
	"github.com/hirelink/hirelink-api/companies/models"
	"github.com/hirelink/hirelink-api/internal/database/postgres"
	"github.com/hirelink/hirelink-api/internal/database/sqlbuilder"
)

// uniqueViolation is the PostgreSQL error code for unique-constraint breaks.
const uniqueViolation = "23505"

type postgresRepository struct {
	client *postgres.Client
}

// NewPostgresRepository creates a PostgreSQL-backed company repository.
func NewPostgresRepository(client *postgres.Client) Repository {
	return &postgresRepository{client: client}
}

func (r *postgresRepository) db() *sqlx.DB {
	return r.client.DB()
}

func (r *postgresRepository) Find(ctx context.Context, filter *models.CompanyListFilter) ([]models.CompanySummary, error) {
	builder := sqlbuilder.NewSelect("SELECT handle, name FROM companies").
		OrderBy("name")
	if filter != nil {
		builder.
			WhereMin("num_employees", filter.MinEmployees).
			WhereMax("num_employees", filter.MaxEmployees).
			WhereContains("name", filter.Search)
	}
	query, args := builder.Build()

	companies := []models.CompanySummary{}
	if err := r.db().SelectContext(ctx, &companies, query, args...); err != nil {
		return nil, fmt.Errorf("find companies: %w", err)
	}
	return companies, nil
}

func (r *postgresRepository) FindByHandle(ctx context.Context, handle string) (*models.Company, error) {
	query := `
		SELECT handle, name, num_employees, description, logo_url
		FROM companies
		WHERE handle = $1
	`

	var company models.Company
	if err := r.db().GetContext(ctx, &company, query, handle); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, companyErrors.ErrCompanyNotFound
		}
		return nil, fmt.Errorf("get company: %w", err)
	}
	return &company, nil
}

func (r *postgresRepository) FindJobs(ctx context.Context, handle string) ([]models.CompanyJob, error) {
	query := `
		SELECT id, title, salary, equity
		FROM jobs
		WHERE company_handle = $1
		ORDER BY id
	`

	jobs := []models.CompanyJob{}
	if err := r.db().SelectContext(ctx, &jobs, query, handle); err != nil {
		return nil, fmt.Errorf("find company jobs: %w", err)
	}
	return jobs, nil
}

func (r *postgresRepository) ExistsByHandle(ctx context.Context, handle string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM companies WHERE handle = $1)`
	if err := r.db().GetContext(ctx, &exists, query, handle); err != nil {
		return false, fmt.Errorf("check company exists: %w", err)
	}
	return exists, nil
}

func (r *postgresRepository) Create(ctx context.Context, req *models.CreateCompanyRequest) (*models.Company, error) {
	query := `
		INSERT INTO companies (handle, name, num_employees, description, logo_url)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING handle, name, num_employees, description, logo_url
	`

	var company models.Company
	err := r.db().QueryRowxContext(ctx, query,
		req.Handle, req.Name, req.NumEmployees, req.Description, req.LogoURL).
		StructScan(&company)
	if err != nil {
		// The unique constraint is the arbiter for duplicate handles.
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return nil, companyErrors.ErrCompanyExists
		}
		return nil, fmt.Errorf("insert company: %w", err)
	}
	return &company, nil
}

func (r *postgresRepository) Update(ctx context.Context, handle string, req *models.UpdateCompanyRequest) (*models.Company, error) {
	builder := sqlbuilder.NewUpdate("companies", "handle", handle)
	if req.Name != nil {
		builder.Set("name", *req.Name)
	}
	if req.NumEmployees != nil {
		builder.Set("num_employees", *req.NumEmployees)
	}
	if req.Description != nil {
		builder.Set("description", *req.Description)
	}
	if req.LogoURL != nil {
		builder.Set("logo_url", *req.LogoURL)
	}

	query, values, err := builder.Build()
	if err != nil {
		return nil, err
	}

	var company models.Company
	if err := r.db().QueryRowxContext(ctx, query, values...).StructScan(&company); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, companyErrors.ErrCompanyNotFound
		}
		return nil, fmt.Errorf("update company: %w", err)
	}
	return &company, nil
}

func (r *postgresRepository) Delete(ctx context.Context, handle string) (bool, error) {
	result, err := r.db().ExecContext(ctx, `DELETE FROM companies WHERE handle = $1`, handle)
	if err != nil {
		return false, fmt.Errorf("delete company: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}
	return rows > 0, nil
}
