package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/yukikurage/task-manager/internal/auth"
	"github.com/yukikurage/task-manager/internal/constants"
	"github.com/yukikurage/task-manager/internal/models"
	"github.com/yukikurage/task-manager/internal/repository"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var ErrPasswordLength = fmt.Errorf("password must be between %d and %d bytes",
	constants.MinPasswordLength, constants.MaxPasswordLength)

// UserService handles registration and self-service user management.
type UserService struct {
	store      repository.Store
	bcryptCost int
}

// NewUserService creates a new UserService.
func NewUserService(store repository.Store, bcryptCost int) *UserService {
	return &UserService{
		store:      store,
		bcryptCost: bcryptCost,
	}
}

// CreateUserInput represents the information required to register a user.
type CreateUserInput struct {
	Email     string
	FirstName string
	LastName  string
	Password  string
}

// UpdateUserInput replaces a user's profile. An empty Password keeps the current one.
type UpdateUserInput struct {
	Email     string
	FirstName string
	LastName  string
	Password  string
}

// Register creates a user with a hashed password and the default role.
func (s *UserService) Register(ctx context.Context, input CreateUserInput) (*models.User, error) {
	email := strings.TrimSpace(input.Email)
	if err := validatePassword(input.Password); err != nil {
		return nil, err
	}

	hash, err := s.hashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	var user *models.User
	err = s.store.Transaction(ctx, func(tx repository.Store) error {
		if _, err := tx.Users().FindByEmail(ctx, email); err == nil {
			return ErrEmailTaken
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to check email: %w", err)
		}

		role, err := tx.Roles().FindByName(ctx, constants.RoleUser)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrDefaultRoleMissing
			}
			return fmt.Errorf("failed to load default role: %w", err)
		}

		user = &models.User{
			Email:        email,
			FirstName:    strings.TrimSpace(input.FirstName),
			LastName:     strings.TrimSpace(input.LastName),
			PasswordHash: hash,
			Active:       true,
			Roles:        []models.Role{*role},
		}

		if err := tx.Users().Create(ctx, user); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrEmailTaken
			}
			return fmt.Errorf("failed to create user: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}

// ListUsers returns all registered users.
func (s *UserService) ListUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.store.Users().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// GetUser retrieves a user by ID.
func (s *UserService) GetUser(ctx context.Context, id uint64) (*models.User, error) {
	user, err := s.store.Users().FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return user, nil
}

// UpdateUser replaces the profile of the user owned by principal.
func (s *UserService) UpdateUser(ctx context.Context, principal auth.Principal, id uint64, input UpdateUserInput) (*models.User, error) {
	if input.Password != "" {
		if err := validatePassword(input.Password); err != nil {
			return nil, err
		}
	}

	var user *models.User
	err := s.store.Transaction(ctx, func(tx repository.Store) error {
		var err error
		user, err = findOwnedUser(ctx, tx, principal, id)
		if err != nil {
			return err
		}

		email := strings.TrimSpace(input.Email)
		if email != user.Email {
			if _, err := tx.Users().FindByEmail(ctx, email); err == nil {
				return ErrEmailTaken
			} else if !errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("failed to check email: %w", err)
			}
		}

		user.Email = email
		user.FirstName = strings.TrimSpace(input.FirstName)
		user.LastName = strings.TrimSpace(input.LastName)
		if input.Password != "" {
			hash, err := s.hashPassword(input.Password)
			if err != nil {
				return err
			}
			user.PasswordHash = hash
		}

		if err := tx.Users().Update(ctx, user); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrEmailTaken
			}
			return fmt.Errorf("failed to update user: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}

// DeleteUser removes the user owned by principal unless tasks still reference it.
func (s *UserService) DeleteUser(ctx context.Context, principal auth.Principal, id uint64) error {
	return s.store.Transaction(ctx, func(tx repository.Store) error {
		if _, err := findOwnedUser(ctx, tx, principal, id); err != nil {
			return err
		}

		if err := tx.Users().Delete(ctx, id); err != nil {
			switch {
			case errors.Is(err, repository.ErrInUse):
				return ErrUserInUse
			case errors.Is(err, gorm.ErrRecordNotFound):
				return ErrUserNotFound
			default:
				return fmt.Errorf("failed to delete user: %w", err)
			}
		}
		return nil
	})
}

// AuthorizeUserMutation checks that the user exists and is owned by principal.
// Existence is checked before ownership.
func (s *UserService) AuthorizeUserMutation(ctx context.Context, principal auth.Principal, id uint64) (*models.User, error) {
	return findOwnedUser(ctx, s.store, principal, id)
}

func findOwnedUser(ctx context.Context, store repository.Store, principal auth.Principal, id uint64) (*models.User, error) {
	user, err := store.Users().FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if err := auth.AuthorizeOwnerMutation(principal, user.Email); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// validatePassword counts bytes; bcrypt rejects longer input.
func validatePassword(password string) error {
	if len(password) < constants.MinPasswordLength || len(password) > constants.MaxPasswordLength {
		return ErrPasswordLength
	}
	return nil
}
