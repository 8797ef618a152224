package repository

import (
	"context"

	"github.com/yukikurage/task-manager/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// taskAssociations are loaded with every task read
var taskAssociations = []string{"Author", "Executor", "TaskStatus"}

// GormTaskRepository is a GORM implementation of TaskRepository
type GormTaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new TaskRepository
func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &GormTaskRepository{db: db}
}

// Create creates a new task.
// Author, executor, status and labels are existing rows, so only foreign keys
// and label join rows are written.
func (r *GormTaskRepository) Create(ctx context.Context, task *models.Task) error {
	return r.db.WithContext(ctx).
		Omit("Author", "Executor", "TaskStatus", "Labels.*").
		Create(task).Error
}

// FindByID finds a task by ID with its associations
func (r *GormTaskRepository) FindByID(ctx context.Context, id uint64) (*models.Task, error) {
	var task models.Task
	if err := r.preloaded(ctx).First(&task, id).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

// List retrieves all tasks with their associations
func (r *GormTaskRepository) List(ctx context.Context) ([]models.Task, error) {
	var tasks []models.Task
	if err := r.preloaded(ctx).Order("tasks.id").Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// ListPage retrieves one page of tasks with their associations
func (r *GormTaskRepository) ListPage(ctx context.Context, offset, limit int) ([]models.Task, error) {
	var tasks []models.Task
	if err := r.preloaded(ctx).Order("tasks.id").Offset(offset).Limit(limit).Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// Update saves the task columns and replaces the label set with task.Labels
func (r *GormTaskRepository) Update(ctx context.Context, task *models.Task) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(task).Error; err != nil {
			return err
		}

		labels := tx.Model(task).Association("Labels")
		if len(task.Labels) == 0 {
			return labels.Clear()
		}
		return labels.Replace(task.Labels)
	})
}

// Delete deletes a task and its label links
func (r *GormTaskRepository) Delete(ctx context.Context, id uint64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Task{ID: id}).Association("Labels").Clear(); err != nil {
			return err
		}

		result := tx.Delete(&models.Task{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// Count returns the number of tasks
func (r *GormTaskRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Task{}).Count(&count).Error
	return count, err
}

func (r *GormTaskRepository) preloaded(ctx context.Context) *gorm.DB {
	query := r.db.WithContext(ctx)
	for _, p := range taskAssociations {
		query = query.Preload(p)
	}
	return query.Preload("Labels", func(db *gorm.DB) *gorm.DB {
		return db.Order("labels.id")
	})
}
