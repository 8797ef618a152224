package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/yukikurage/task-manager/internal/models"
	"github.com/yukikurage/task-manager/internal/repository"
	"gorm.io/gorm"
)

// TaskStatusService manages the task status dictionary.
type TaskStatusService struct {
	store repository.Store
}

// NewTaskStatusService creates a new TaskStatusService.
func NewTaskStatusService(store repository.Store) *TaskStatusService {
	return &TaskStatusService{store: store}
}

func (s *TaskStatusService) ListStatuses(ctx context.Context) ([]models.TaskStatus, error) {
	statuses, err := s.store.TaskStatuses().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list task statuses: %w", err)
	}
	return statuses, nil
}

func (s *TaskStatusService) GetStatus(ctx context.Context, id uint64) (*models.TaskStatus, error) {
	status, err := s.store.TaskStatuses().FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskStatusNotFound
		}
		return nil, fmt.Errorf("failed to find task status: %w", err)
	}
	return status, nil
}

func (s *TaskStatusService) CreateStatus(ctx context.Context, name string) (*models.TaskStatus, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}

	status := &models.TaskStatus{Name: name}
	if err := s.store.TaskStatuses().Create(ctx, status); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrTaskStatusNameTaken
		}
		return nil, fmt.Errorf("failed to create task status: %w", err)
	}
	return status, nil
}

func (s *TaskStatusService) UpdateStatus(ctx context.Context, id uint64, name string) (*models.TaskStatus, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}

	status, err := s.GetStatus(ctx, id)
	if err != nil {
		return nil, err
	}

	status.Name = name
	if err := s.store.TaskStatuses().Update(ctx, status); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrTaskStatusNameTaken
		}
		return nil, fmt.Errorf("failed to update task status: %w", err)
	}
	return status, nil
}

// DeleteStatus deletes a status; statuses still used by tasks are kept.
func (s *TaskStatusService) DeleteStatus(ctx context.Context, id uint64) error {
	if err := s.store.TaskStatuses().Delete(ctx, id); err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return ErrTaskStatusNotFound
		case errors.Is(err, repository.ErrInUse):
			return ErrTaskStatusInUse
		default:
			return fmt.Errorf("failed to delete task status: %w", err)
		}
	}
	return nil
}
