package repository

import (
	"context"

	"github.com/hirelink/hirelink-api/users/models"
)

// Repository defines user persistence operations. Password values crossing
// this boundary are already hashed.
type Repository interface {
	// Find returns summaries of all users.
	Find(ctx context.Context) ([]models.UserSummary, error)

	// FindByUsername returns the full user record.
	FindByUsername(ctx context.Context, username string) (*models.User, error)

	// FindApplications returns the job applications of a user.
	FindApplications(ctx context.Context, username string) ([]models.UserApplication, error)

	// FindCredentials returns the stored secret material for a login check.
	FindCredentials(ctx context.Context, username string) (*models.UserCredentials, error)

	// ExistsByUsername reports whether a user with the username exists.
	ExistsByUsername(ctx context.Context, username string) (bool, error)

	// Create inserts a new user with the given password hash.
	Create(ctx context.Context, req *models.CreateUserRequest, passwordHash string) (*models.User, error)

	// Update applies a partial update and returns the updated record. A
	// non-nil req.Password must already be a hash.
	Update(ctx context.Context, username string, req *models.UpdateUserRequest) (*models.User, error)

	// Delete removes a user, reporting whether a row was removed.
	Delete(ctx context.Context, username string) (bool, error)
}
