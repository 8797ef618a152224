package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/yukikurage/task-manager/internal/auth"
	"github.com/yukikurage/task-manager/internal/repository"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthService exchanges credentials for bearer tokens.
type AuthService struct {
	users  repository.UserRepository
	tokens *auth.TokenService
}

// NewAuthService creates a new AuthService.
func NewAuthService(users repository.UserRepository, tokens *auth.TokenService) *AuthService {
	return &AuthService{
		users:  users,
		tokens: tokens,
	}
}

// LoginInput holds the credentials for authentication.
type LoginInput struct {
	Email    string
	Password string
}

// Login verifies credentials and returns a signed token for the user.
func (s *AuthService) Login(ctx context.Context, input LoginInput) (string, error) {
	email := strings.TrimSpace(input.Email)
	if email == "" || input.Password == "" {
		return "", ErrInvalidCredentials
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("failed to find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return "", ErrInvalidCredentials
	}
	if !user.Active {
		return "", ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(auth.Principal{UserID: user.ID, Email: user.Email})
	if err != nil {
		return "", fmt.Errorf("failed to issue token: %w", err)
	}
	return token, nil
}

// Authenticate validates a bearer token and returns its principal.
func (s *AuthService) Authenticate(token string) (auth.Principal, error) {
	return s.tokens.Validate(token)
}
