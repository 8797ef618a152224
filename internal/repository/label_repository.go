package repository

import (
	"context"

	"github.com/yukikurage/task-manager/internal/models"
	"gorm.io/gorm"
)

// GormLabelRepository is a GORM implementation of LabelRepository
type GormLabelRepository struct {
	db *gorm.DB
}

// NewLabelRepository creates a new LabelRepository
func NewLabelRepository(db *gorm.DB) LabelRepository {
	return &GormLabelRepository{db: db}
}

// Create creates a new label
func (r *GormLabelRepository) Create(ctx context.Context, label *models.Label) error {
	return r.db.WithContext(ctx).Create(label).Error
}

// FindByID finds a label by ID
func (r *GormLabelRepository) FindByID(ctx context.Context, id uint64) (*models.Label, error) {
	var label models.Label
	if err := r.db.WithContext(ctx).First(&label, id).Error; err != nil {
		return nil, err
	}
	return &label, nil
}

// FindByIDs returns the existing labels among ids ordered by ID
func (r *GormLabelRepository) FindByIDs(ctx context.Context, ids []uint64) ([]models.Label, error) {
	labels := []models.Label{}
	if len(ids) == 0 {
		return labels, nil
	}
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Order("id").Find(&labels).Error; err != nil {
		return nil, err
	}
	return labels, nil
}

// List returns all labels
func (r *GormLabelRepository) List(ctx context.Context) ([]models.Label, error) {
	var labels []models.Label
	if err := r.db.WithContext(ctx).Order("id").Find(&labels).Error; err != nil {
		return nil, err
	}
	return labels, nil
}

// Update updates a label
func (r *GormLabelRepository) Update(ctx context.Context, label *models.Label) error {
	return r.db.WithContext(ctx).Save(label).Error
}

// Delete deletes a label that is not attached to any task
func (r *GormLabelRepository) Delete(ctx context.Context, id uint64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return deleteUnreferenced(tx, &models.Label{}, id, func(tx *gorm.DB) (int64, error) {
			var count int64
			err := tx.Table("task_labels").Where("label_id = ?", id).Count(&count).Error
			return count, err
		})
	})
}
