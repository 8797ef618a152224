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

// LabelService manages labels that can be attached to tasks.
type LabelService struct {
	store repository.Store
}

// NewLabelService creates a new LabelService.
func NewLabelService(store repository.Store) *LabelService {
	return &LabelService{store: store}
}

func (s *LabelService) ListLabels(ctx context.Context) ([]models.Label, error) {
	labels, err := s.store.Labels().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list labels: %w", err)
	}
	return labels, nil
}

func (s *LabelService) GetLabel(ctx context.Context, id uint64) (*models.Label, error) {
	label, err := s.store.Labels().FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLabelNotFound
		}
		return nil, fmt.Errorf("failed to find label: %w", err)
	}
	return label, nil
}

func (s *LabelService) CreateLabel(ctx context.Context, name string) (*models.Label, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}

	label := &models.Label{Name: name}
	if err := s.store.Labels().Create(ctx, label); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrLabelNameTaken
		}
		return nil, fmt.Errorf("failed to create label: %w", err)
	}
	return label, nil
}

func (s *LabelService) UpdateLabel(ctx context.Context, id uint64, name string) (*models.Label, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}

	label, err := s.GetLabel(ctx, id)
	if err != nil {
		return nil, err
	}

	label.Name = name
	if err := s.store.Labels().Update(ctx, label); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrLabelNameTaken
		}
		return nil, fmt.Errorf("failed to update label: %w", err)
	}
	return label, nil
}

// DeleteLabel deletes a label that no task carries.
func (s *LabelService) DeleteLabel(ctx context.Context, id uint64) error {
	if err := s.store.Labels().Delete(ctx, id); err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return ErrLabelNotFound
		case errors.Is(err, repository.ErrInUse):
			return ErrLabelInUse
		default:
			return fmt.Errorf("failed to delete label: %w", err)
		}
	}
	return nil
}
