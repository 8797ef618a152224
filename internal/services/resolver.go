package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/yukikurage/task-manager/internal/models"
	"github.com/yukikurage/task-manager/internal/repository"
	"gorm.io/gorm"
)

// Resolver turns ids referenced by a task request into live entities.
// Bind it to a transactional Store so the lookups see the same snapshot as the write.
type Resolver struct {
	store repository.Store
}

// NewResolver creates a Resolver reading from store.
func NewResolver(store repository.Store) *Resolver {
	return &Resolver{store: store}
}

// ResolveStatus returns the task status with the given id.
func (r *Resolver) ResolveStatus(ctx context.Context, id uint64) (*models.TaskStatus, error) {
	status, err := r.store.TaskStatuses().FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %w: id %d", ErrUnresolvedReference, ErrTaskStatusNotFound, id)
		}
		return nil, fmt.Errorf("failed to resolve task status: %w", err)
	}
	return status, nil
}

// ResolveLabels returns every label in ids or fails if any one is missing.
// Duplicate ids are collapsed; an empty set resolves to no labels.
func (r *Resolver) ResolveLabels(ctx context.Context, ids []uint64) ([]models.Label, error) {
	unique := uniqueUint64(ids)
	if len(unique) == 0 {
		return []models.Label{}, nil
	}

	labels, err := r.store.Labels().FindByIDs(ctx, unique)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve labels: %w", err)
	}

	if len(labels) != len(unique) {
		found := make(map[uint64]struct{}, len(labels))
		for _, l := range labels {
			found[l.ID] = struct{}{}
		}
		missing := make([]uint64, 0, len(unique)-len(labels))
		for _, id := range unique {
			if _, ok := found[id]; !ok {
				missing = append(missing, id)
			}
		}
		return nil, fmt.Errorf("%w: %w: ids %v", ErrUnresolvedReference, ErrLabelNotFound, missing)
	}

	return labels, nil
}

// ResolveExecutor returns the executor user, or nil when id is absent.
func (r *Resolver) ResolveExecutor(ctx context.Context, id *uint64) (*models.User, error) {
	if id == nil {
		return nil, nil
	}

	user, err := r.store.Users().FindByID(ctx, *id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %w: id %d", ErrUnresolvedReference, ErrExecutorNotFound, *id)
		}
		return nil, fmt.Errorf("failed to resolve executor: %w", err)
	}
	return user, nil
}

// ResolveAuthor returns the registered user behind the authenticated email.
func (r *Resolver) ResolveAuthor(ctx context.Context, email string) (*models.User, error) {
	user, err := r.store.Users().FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAuthorNotFound
		}
		return nil, fmt.Errorf("failed to resolve author: %w", err)
	}
	return user, nil
}

// uniqueUint64 removes duplicate values from a slice of uint64
func uniqueUint64(values []uint64) []uint64 {
	seen := make(map[uint64]struct{}, len(values))
	result := make([]uint64, 0, len(values))

	for _, v := range values {
		if _, exists := seen[v]; exists {
			continue
		}
		seen[v] = struct{}{}
		result = append(result, v)
	}

	return result
}
