package repository

import (
	"context"

	"github.com/yukikurage/task-manager/internal/models"
	"gorm.io/gorm"
)

// GormTaskStatusRepository is a GORM implementation of TaskStatusRepository
type GormTaskStatusRepository struct {
	db *gorm.DB
}

// NewTaskStatusRepository creates a new TaskStatusRepository
func NewTaskStatusRepository(db *gorm.DB) TaskStatusRepository {
	return &GormTaskStatusRepository{db: db}
}

// Create creates a new task status
func (r *GormTaskStatusRepository) Create(ctx context.Context, status *models.TaskStatus) error {
	return r.db.WithContext(ctx).Create(status).Error
}

// FindByID finds a task status by ID
func (r *GormTaskStatusRepository) FindByID(ctx context.Context, id uint64) (*models.TaskStatus, error) {
	var status models.TaskStatus
	if err := r.db.WithContext(ctx).First(&status, id).Error; err != nil {
		return nil, err
	}
	return &status, nil
}

// List returns all task statuses
func (r *GormTaskStatusRepository) List(ctx context.Context) ([]models.TaskStatus, error) {
	var statuses []models.TaskStatus
	if err := r.db.WithContext(ctx).Order("id").Find(&statuses).Error; err != nil {
		return nil, err
	}
	return statuses, nil
}

// Update updates a task status
func (r *GormTaskStatusRepository) Update(ctx context.Context, status *models.TaskStatus) error {
	return r.db.WithContext(ctx).Save(status).Error
}

// Delete deletes a task status no task points at
func (r *GormTaskStatusRepository) Delete(ctx context.Context, id uint64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return deleteUnreferenced(tx, &models.TaskStatus{}, id, func(tx *gorm.DB) (int64, error) {
			var count int64
			err := tx.Model(&models.Task{}).Where("task_status_id = ?", id).Count(&count).Error
			return count, err
		})
	})
}
