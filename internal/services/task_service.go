package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/yukikurage/task-manager/internal/auth"
	"github.com/yukikurage/task-manager/internal/models"
	"github.com/yukikurage/task-manager/internal/repository"
	"gorm.io/gorm"
)

// TaskService assembles tasks from resolved references and persists them atomically.
type TaskService struct {
	store repository.Store
}

// NewTaskService creates a new TaskService
func NewTaskService(store repository.Store) *TaskService {
	return &TaskService{store: store}
}

// TaskInput is the client-controlled part of a task.
// The author never comes from here.
type TaskInput struct {
	Name         string
	Description  string
	TaskStatusID uint64
	ExecutorID   *uint64
	LabelIDs     []uint64
}

// ListTasks returns all tasks
func (s *TaskService) ListTasks(ctx context.Context) ([]models.Task, error) {
	tasks, err := s.store.Tasks().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// ListTaskPage returns one page of tasks and the total number of tasks
func (s *TaskService) ListTaskPage(ctx context.Context, offset, limit int) ([]models.Task, int64, error) {
	var (
		tasks []models.Task
		total int64
	)
	err := s.store.Transaction(ctx, func(tx repository.Store) error {
		var err error
		if total, err = tx.Tasks().Count(ctx); err != nil {
			return err
		}
		tasks, err = tx.Tasks().ListPage(ctx, offset, limit)
		return err
	})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, total, nil
}

// GetTask returns a task with related data
func (s *TaskService) GetTask(ctx context.Context, id uint64) (*models.Task, error) {
	return findTask(ctx, s.store, id)
}

// CreateTask creates a task authored by principal.
// Every reference is resolved inside the transaction; if one fails nothing is written.
func (s *TaskService) CreateTask(ctx context.Context, principal auth.Principal, input TaskInput) (*models.Task, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrNameRequired
	}

	var created *models.Task
	err := s.store.Transaction(ctx, func(tx repository.Store) error {
		resolver := NewResolver(tx)

		author, err := resolver.ResolveAuthor(ctx, principal.Email)
		if err != nil {
			return err
		}
		refs, err := resolveReferences(ctx, resolver, input)
		if err != nil {
			return err
		}

		task := newTask(name, input.Description, *author, refs)
		if err := tx.Tasks().Create(ctx, task); err != nil {
			return fmt.Errorf("failed to create task: %w", err)
		}

		created, err = tx.Tasks().FindByID(ctx, task.ID)
		return err
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

// UpdateTask replaces a task's name, description, status, executor and labels.
// The author is left as it was at creation.
func (s *TaskService) UpdateTask(ctx context.Context, id uint64, input TaskInput) (*models.Task, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrNameRequired
	}

	var updated *models.Task
	err := s.store.Transaction(ctx, func(tx repository.Store) error {
		task, err := findTask(ctx, tx, id)
		if err != nil {
			return err
		}

		refs, err := resolveReferences(ctx, NewResolver(tx), input)
		if err != nil {
			return err
		}

		task.Name = name
		task.Description = input.Description
		refs.applyTo(task)

		if err := tx.Tasks().Update(ctx, task); err != nil {
			return fmt.Errorf("failed to update task: %w", err)
		}

		updated, err = tx.Tasks().FindByID(ctx, task.ID)
		return err
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// DeleteTask deletes a task if principal is its author
func (s *TaskService) DeleteTask(ctx context.Context, principal auth.Principal, id uint64) error {
	return s.store.Transaction(ctx, func(tx repository.Store) error {
		if _, err := findAuthoredTask(ctx, tx, principal, id); err != nil {
			return err
		}

		if err := tx.Tasks().Delete(ctx, id); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrTaskNotFound
			}
			return fmt.Errorf("failed to delete task: %w", err)
		}
		return nil
	})
}

// AuthorizeTaskDeletion checks that the task exists and that principal authored it.
func (s *TaskService) AuthorizeTaskDeletion(ctx context.Context, principal auth.Principal, id uint64) (*models.Task, error) {
	return findAuthoredTask(ctx, s.store, principal, id)
}

// taskReferences are the resolved entities a request points at
type taskReferences struct {
	status   models.TaskStatus
	executor *models.User
	labels   []models.Label
}

func resolveReferences(ctx context.Context, resolver *Resolver, input TaskInput) (taskReferences, error) {
	status, err := resolver.ResolveStatus(ctx, input.TaskStatusID)
	if err != nil {
		return taskReferences{}, err
	}
	executor, err := resolver.ResolveExecutor(ctx, input.ExecutorID)
	if err != nil {
		return taskReferences{}, err
	}
	labels, err := resolver.ResolveLabels(ctx, input.LabelIDs)
	if err != nil {
		return taskReferences{}, err
	}

	return taskReferences{status: *status, executor: executor, labels: labels}, nil
}

// applyTo overwrites the task's status, executor and labels with the resolved set
func (r taskReferences) applyTo(task *models.Task) {
	task.TaskStatusID = r.status.ID
	task.TaskStatus = r.status
	task.Executor = r.executor
	task.ExecutorID = nil
	if r.executor != nil {
		id := r.executor.ID
		task.ExecutorID = &id
	}
	task.Labels = r.labels
}

// newTask builds a complete aggregate value ready for a single insert
func newTask(name, description string, author models.User, refs taskReferences) *models.Task {
	task := &models.Task{
		Name:        name,
		Description: description,
		AuthorID:    author.ID,
		Author:      author,
	}
	refs.applyTo(task)
	return task
}

func findTask(ctx context.Context, store repository.Store, id uint64) (*models.Task, error) {
	task, err := store.Tasks().FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}
	return task, nil
}

func findAuthoredTask(ctx context.Context, store repository.Store, principal auth.Principal, id uint64) (*models.Task, error) {
	task, err := findTask(ctx, store, id)
	if err != nil {
		return nil, err
	}

	if err := auth.AuthorizeOwnerMutation(principal, task.Author.Email); err != nil {
		return nil, err
	}
	return task, nil
}
