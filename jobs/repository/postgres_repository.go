package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/hirelink/hirelink-api/internal/database/postgres"
	"github.com/hirelink/hirelink-api/internal/database/sqlbuilder"
	jobErrors "github.com/hirelink/hirelink-api/jobs/errors"
	"github.com/hirelink/hirelink-api/jobs/models"
)

// foreignKeyViolation is the PostgreSQL error code for broken references.
const foreignKeyViolation = "23503"

type postgresRepository struct {
	client *postgres.Client
}

// NewPostgresRepository creates a PostgreSQL-backed job repository.
func NewPostgresRepository(client *postgres.Client) Repository {
	return &postgresRepository{client: client}
}

func (r *postgresRepository) db() *sqlx.DB {
	return r.client.DB()
}

func (r *postgresRepository) Find(ctx context.Context, filter *models.JobListFilter) ([]models.JobSummary, error) {
	builder := sqlbuilder.NewSelect("SELECT id, title, company_handle FROM jobs").
		OrderBy("id")
	if filter != nil {
		builder.
			WhereMin("salary", filter.MinSalary).
			WhereMin("equity", filter.MinEquity).
			WhereContains("title", filter.Search)
	}
	query, args := builder.Build()

	jobs := []models.JobSummary{}
	if err := r.db().SelectContext(ctx, &jobs, query, args...); err != nil {
		return nil, fmt.Errorf("find jobs: %w", err)
	}
	return jobs, nil
}

func (r *postgresRepository) FindByID(ctx context.Context, id int64) (*models.Job, error) {
	query := `
		SELECT id, title, salary, equity, company_handle
		FROM jobs
		WHERE id = $1
	`

	var job models.Job
	if err := r.db().GetContext(ctx, &job, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, jobErrors.ErrJobNotFound
		}
		return nil, fmt.Errorf("get job: %w", err)
	}
	return &job, nil
}

func (r *postgresRepository) FindCompany(ctx context.Context, handle string) (*models.JobCompany, error) {
	query := `
		SELECT handle, name, num_employees, description, logo_url
		FROM companies
		WHERE handle = $1
	`

	var company models.JobCompany
	if err := r.db().GetContext(ctx, &company, query, handle); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, jobErrors.ErrCompanyNotFound
		}
		return nil, fmt.Errorf("get job company: %w", err)
	}
	return &company, nil
}

func (r *postgresRepository) Create(ctx context.Context, req *models.CreateJobRequest) (*models.Job, error) {
	query := `
		INSERT INTO jobs (title, salary, equity, company_handle)
		VALUES ($1, $2, $3, $4)
		RETURNING id, title, salary, equity, company_handle
	`

	var job models.Job
	err := r.db().QueryRowxContext(ctx, query,
		req.Title, req.Salary, req.Equity, req.CompanyHandle).
		StructScan(&job)
	if err != nil {
		// The foreign key is the arbiter for missing companies.
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == foreignKeyViolation {
			return nil, jobErrors.ErrCompanyNotFound
		}
		return nil, fmt.Errorf("insert job: %w", err)
	}
	return &job, nil
}

func (r *postgresRepository) Update(ctx context.Context, id int64, req *models.UpdateJobRequest) (*models.Job, error) {
	builder := sqlbuilder.NewUpdate("jobs", "id", id)
	if req.Title != nil {
		builder.Set("title", *req.Title)
	}
	if req.Salary != nil {
		builder.Set("salary", *req.Salary)
	}
	if req.Equity != nil {
		builder.Set("equity", *req.Equity)
	}
	if req.CompanyHandle != nil {
		builder.Set("company_handle", *req.CompanyHandle)
	}

	query, values, err := builder.Build()
	if err != nil {
		return nil, err
	}

	var job models.Job
	if err := r.db().QueryRowxContext(ctx, query, values...).StructScan(&job); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, jobErrors.ErrJobNotFound
		}
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == foreignKeyViolation {
			return nil, jobErrors.ErrCompanyNotFound
		}
		return nil, fmt.Errorf("update job: %w", err)
	}
	return &job, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id int64) (bool, error) {
	result, err := r.db().ExecContext(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete job: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}
	return rows > 0, nil
}
