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
	userErrors "github.com/hirelink/hirelink-api/users/errors"
	"github.com/hirelink/hirelink-api/users/models"
)

// uniqueViolation is the PostgreSQL error code for unique-constraint breaks.
const uniqueViolation = "23505"

type postgresRepository struct {
	client *postgres.Client
}

// NewPostgresRepository creates a PostgreSQL-backed user repository.
func NewPostgresRepository(client *postgres.Client) Repository {
	return &postgresRepository{client: client}
}

func (r *postgresRepository) db() *sqlx.DB {
	return r.client.DB()
}

func (r *postgresRepository) Find(ctx context.Context) ([]models.UserSummary, error) {
	query := `
		SELECT username, first_name, last_name, email
		FROM users
		ORDER BY username
	`

	users := []models.UserSummary{}
	if err := r.db().SelectContext(ctx, &users, query); err != nil {
		return nil, fmt.Errorf("find users: %w", err)
	}
	return users, nil
}

func (r *postgresRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	query := `
		SELECT username, password, first_name, last_name, email, photo_url, is_admin
		FROM users
		WHERE username = $1
	`

	var user models.User
	if err := r.db().GetContext(ctx, &user, query, username); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, userErrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &user, nil
}

func (r *postgresRepository) FindApplications(ctx context.Context, username string) ([]models.UserApplication, error) {
	query := `
		SELECT j.title, j.company_handle, a.state
		FROM applications a
		JOIN jobs j ON j.id = a.job_id
		WHERE a.username = $1
		ORDER BY j.id
	`

	applications := []models.UserApplication{}
	if err := r.db().SelectContext(ctx, &applications, query, username); err != nil {
		return nil, fmt.Errorf("find user applications: %w", err)
	}
	return applications, nil
}

func (r *postgresRepository) FindCredentials(ctx context.Context, username string) (*models.UserCredentials, error) {
	query := `SELECT username, password, is_admin FROM users WHERE username = $1`

	var creds models.UserCredentials
	if err := r.db().GetContext(ctx, &creds, query, username); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, userErrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("get user credentials: %w", err)
	}
	return &creds, nil
}

func (r *postgresRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM users WHERE username = $1)`
	if err := r.db().GetContext(ctx, &exists, query, username); err != nil {
		return false, fmt.Errorf("check user exists: %w", err)
	}
	return exists, nil
}

func (r *postgresRepository) Create(ctx context.Context, req *models.CreateUserRequest, passwordHash string) (*models.User, error) {
	query := `
		INSERT INTO users (username, password, first_name, last_name, email, photo_url)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING username, password, first_name, last_name, email, photo_url, is_admin
	`

	var user models.User
	err := r.db().QueryRowxContext(ctx, query,
		req.Username, passwordHash, req.FirstName, req.LastName, req.Email, req.PhotoURL).
		StructScan(&user)
	if err != nil {
		// The unique constraint is the arbiter for duplicate usernames.
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return nil, userErrors.ErrUserExists
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return &user, nil
}

func (r *postgresRepository) Update(ctx context.Context, username string, req *models.UpdateUserRequest) (*models.User, error) {
	builder := sqlbuilder.NewUpdate("users", "username", username)
	if req.Password != nil {
		builder.Set("password", *req.Password)
	}
	if req.FirstName != nil {
		builder.Set("first_name", *req.FirstName)
	}
	if req.LastName != nil {
		builder.Set("last_name", *req.LastName)
	}
	if req.Email != nil {
		builder.Set("email", *req.Email)
	}
	if req.PhotoURL != nil {
		builder.Set("photo_url", *req.PhotoURL)
	}

	query, values, err := builder.Build()
	if err != nil {
		return nil, err
	}

	var user models.User
	if err := r.db().QueryRowxContext(ctx, query, values...).StructScan(&user); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, userErrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("update user: %w", err)
	}
	return &user, nil
}

func (r *postgresRepository) Delete(ctx context.Context, username string) (bool, error) {
	result, err := r.db().ExecContext(ctx, `DELETE FROM users WHERE username = $1`, username)
	if err != nil {
		return false, fmt.Errorf("delete user: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}
	return rows > 0, nil
}
