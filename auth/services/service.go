package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hirelink/hirelink-api/internal/utils"
	userErrors "github.com/hirelink/hirelink-api/users/errors"
	userRepository "github.com/hirelink/hirelink-api/users/repository"
)

// ErrInvalidCredentials covers both unknown usernames and wrong passwords
// so a login failure never reveals which one it was.
var ErrInvalidCredentials = errors.New("invalid username or password")

// Service defines authentication operations.
type Service interface {
	// Login verifies the credentials and mints an access token.
	Login(ctx context.Context, username, password string) (string, error)
}

type service struct {
	users       userRepository.Repository
	tokenSecret []byte
	tokenTTL    time.Duration
}

// NewService constructs an authentication service backed by the user store.
func NewService(users userRepository.Repository, tokenSecret []byte, tokenTTL time.Duration) Service {
	return &service{users: users, tokenSecret: tokenSecret, tokenTTL: tokenTTL}
}

func (s *service) Login(ctx context.Context, username, password string) (string, error) {
	creds, err := s.users.FindCredentials(ctx, username)
	if err != nil {
		if errors.Is(err, userErrors.ErrUserNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	if err := utils.CompareHash([]byte(creds.Password), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	token, err := utils.GenerateJWTToken(s.tokenSecret, creds.Username, creds.IsAdmin, s.tokenTTL)
	if err != nil {
		return "", fmt.Errorf("mint token: %w", err)
	}
	return token, nil
}
