package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// GormStore is a GORM implementation of Store
type GormStore struct {
	db *gorm.DB
}

// NewStore creates a Store backed by db
func NewStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) Users() UserRepository               { return NewUserRepository(s.db) }
func (s *GormStore) Roles() RoleRepository               { return NewRoleRepository(s.db) }
func (s *GormStore) TaskStatuses() TaskStatusRepository { return NewTaskStatusRepository(s.db) }
func (s *GormStore) Labels() LabelRepository             { return NewLabelRepository(s.db) }
func (s *GormStore) Tasks() TaskRepository               { return NewTaskRepository(s.db) }

// Transaction runs fn inside a database transaction
func (s *GormStore) Transaction(ctx context.Context, fn func(tx Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewStore(tx))
	})
}

// deleteUnreferenced deletes the row of model with the given id after countRefs
// reports no referencing tasks. detach runs between the check and the delete to
// remove join rows owned by the row. tx must already be a transaction.
func deleteUnreferenced(tx *gorm.DB, model interface{}, id uint64, countRefs func(tx *gorm.DB) (int64, error), detach ...func(tx *gorm.DB) error) error {
	refs, err := countRefs(tx)
	if err != nil {
		return err
	}
	if refs > 0 {
		return ErrInUse
	}

	for _, d := range detach {
		if err := d(tx); err != nil {
			return err
		}
	}

	result := tx.Delete(model, id)
	if result.Error != nil {
		return translateDeleteError(result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// translateDeleteError maps a foreign key violation raised by the store onto ErrInUse
func translateDeleteError(err error) error {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return fmt.Errorf("%w: %v", ErrInUse, err)
	}
	return err
}
