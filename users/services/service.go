package services

import (
	"context"
	"fmt"
	"time"

	"github.com/hirelink/hirelink-api/internal/utils"
	userErrors "github.com/hirelink/hirelink-api/users/errors"
	"github.com/hirelink/hirelink-api/users/models"
	"github.com/hirelink/hirelink-api/users/repository"
)

// Service defines user operations.
type Service interface {
	// ListUsers returns summaries of all users.
	ListUsers(ctx context.Context) ([]models.UserSummary, error)

	// GetUser returns the full record with job applications attached.
	GetUser(ctx context.Context, username string) (*models.UserDetails, error)

	// CreateUser registers a user and mints an access token for the new
	// identity; a duplicate username fails with ErrUserExists.
	CreateUser(ctx context.Context, req *models.CreateUserRequest) (*models.User, string, error)

	// UpdateUser applies a partial update and returns the updated record. A
	// new password is hashed before it reaches the store.
	UpdateUser(ctx context.Context, username string, req *models.UpdateUserRequest) (*models.User, error)

	// RemoveUser deletes a user; ErrUserNotFound when absent.
	RemoveUser(ctx context.Context, username string) error
}

type service struct {
	repo        repository.Repository
	tokenSecret []byte
	tokenTTL    time.Duration
}

// NewService constructs a user service. The secret and TTL configure the
// tokens minted at registration.
func NewService(repo repository.Repository, tokenSecret []byte, tokenTTL time.Duration) Service {
	return &service{repo: repo, tokenSecret: tokenSecret, tokenTTL: tokenTTL}
}

func (s *service) ListUsers(ctx context.Context) ([]models.UserSummary, error) {
	return s.repo.Find(ctx)
}

func (s *service) GetUser(ctx context.Context, username string) (*models.UserDetails, error) {
	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	applications, err := s.repo.FindApplications(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("attach applications: %w", err)
	}

	return &models.UserDetails{User: *user, Jobs: applications}, nil
}

func (s *service) CreateUser(ctx context.Context, req *models.CreateUserRequest) (*models.User, string, error) {
	// Fast-path rejection; the store's unique constraint is the arbiter.
	exists, err := s.repo.ExistsByUsername(ctx, req.Username)
	if err != nil {
		return nil, "", err
	}
	if exists {
		return nil, "", userErrors.ErrUserExists
	}

	hash, err := utils.Hash([]byte(req.Password))
	if err != nil {
		return nil, "", fmt.Errorf("hash password: %w", err)
	}

	user, err := s.repo.Create(ctx, req, string(hash))
	if err != nil {
		return nil, "", err
	}

	token, err := utils.GenerateJWTToken(s.tokenSecret, user.Username, user.IsAdmin, s.tokenTTL)
	if err != nil {
		return nil, "", fmt.Errorf("mint token: %w", err)
	}
	return user, token, nil
}

func (s *service) UpdateUser(ctx context.Context, username string, req *models.UpdateUserRequest) (*models.User, error) {
	if req.Password != nil {
		hash, err := utils.Hash([]byte(*req.Password))
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		hashed := string(hash)

		// Copy so the caller's request is untouched.
		clone := *req
		clone.Password = &hashed
		req = &clone
	}

	return s.repo.Update(ctx, username, req)
}

func (s *service) RemoveUser(ctx context.Context, username string) error {
	deleted, err := s.repo.Delete(ctx, username)
	if err != nil {
		return err
	}
	if !deleted {
		return userErrors.ErrUserNotFound
	}
	return nil
}
