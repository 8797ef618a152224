package repository

import (
	"context"
	"errors"

	"github.com/yukikurage/task-manager/internal/models"
)

// ErrInUse is returned when a row cannot be deleted because tasks still reference it.
var ErrInUse = errors.New("record is referenced by existing tasks")

// Store groups the repositories and runs them inside a single transaction when needed.
type Store interface {
	Users() UserRepository
	Roles() RoleRepository
	TaskStatuses() TaskStatusRepository
	Labels() LabelRepository
	Tasks() TaskRepository

	// Transaction runs fn with a Store bound to one database transaction.
	// The transaction commits when fn returns nil and rolls back otherwise.
	Transaction(ctx context.Context, fn func(tx Store) error) error
}

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user together with its role links
	Create(ctx context.Context, user *models.User) error

	// FindByID finds a user by ID
	FindByID(ctx context.Context, id uint64) (*models.User, error)

	// FindByEmail finds a user by email
	FindByEmail(ctx context.Context, email string) (*models.User, error)

	// List returns all users ordered by ID
	List(ctx context.Context) ([]models.User, error)

	// Update saves the user's own columns
	Update(ctx context.Context, user *models.User) error

	// Delete removes a user, failing with ErrInUse while tasks reference it
	Delete(ctx context.Context, id uint64) error
}

// RoleRepository defines read access to reference roles
type RoleRepository interface {
	FindByName(ctx context.Context, name string) (*models.Role, error)
}

// TaskStatusRepository defines the interface for task status data access
type TaskStatusRepository interface {
	Create(ctx context.Context, status *models.TaskStatus) error
	FindByID(ctx context.Context, id uint64) (*models.TaskStatus, error)
	List(ctx context.Context) ([]models.TaskStatus, error)
	Update(ctx context.Context, status *models.TaskStatus) error
	// Delete removes a status, failing with ErrInUse while tasks reference it
	Delete(ctx context.Context, id uint64) error
}

// LabelRepository defines the interface for label data access
type LabelRepository interface {
	Create(ctx context.Context, label *models.Label) error
	FindByID(ctx context.Context, id uint64) (*models.Label, error)
	// FindByIDs returns the labels that exist among ids; missing ids are skipped
	FindByIDs(ctx context.Context, ids []uint64) ([]models.Label, error)
	List(ctx context.Context) ([]models.Label, error)
	Update(ctx context.Context, label *models.Label) error
	// Delete removes a label, failing with ErrInUse while tasks reference it
	Delete(ctx context.Context, id uint64) error
}

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	// Create inserts a task and its label links; referenced rows must already exist
	Create(ctx context.Context, task *models.Task) error

	// FindByID finds a task with author, executor, status and labels loaded
	FindByID(ctx context.Context, id uint64) (*models.Task, error)

	// List returns all tasks with their associations loaded
	List(ctx context.Context) ([]models.Task, error)

	// ListPage returns up to limit tasks starting at offset, ordered by ID
	ListPage(ctx context.Context, offset, limit int) ([]models.Task, error)

	// Update saves the task's columns and replaces its label set
	Update(ctx context.Context, task *models.Task) error

	// Delete removes a task and its label links
	Delete(ctx context.Context, id uint64) error

	// Count returns the number of stored tasks
	Count(ctx context.Context) (int64, error)
}
