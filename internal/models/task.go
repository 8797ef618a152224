package models

import (
	"time"
)

type Task struct {
	ID           uint64    `gorm:"primarykey" json:"id"`
	Name         string    `gorm:"type:varchar(255);not null" json:"name"`
	Description  string    `gorm:"type:text" json:"description"`
	AuthorID     uint64    `gorm:"not null;index" json:"-"`
	ExecutorID   *uint64   `gorm:"index" json:"-"`
	TaskStatusID uint64    `gorm:"not null;index" json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"-"`

	// Relations
	Author     User       `gorm:"foreignKey:AuthorID;constraint:OnDelete:RESTRICT" json:"author"`
	Executor   *User      `gorm:"foreignKey:ExecutorID;constraint:OnDelete:RESTRICT" json:"executor"`
	TaskStatus TaskStatus `gorm:"foreignKey:TaskStatusID;constraint:OnDelete:RESTRICT" json:"taskStatus"`
	Labels     []Label    `gorm:"many2many:task_labels;constraint:OnDelete:CASCADE" json:"labels"`
}

// LabelIDs returns the ids of the loaded labels in order.
func (t Task) LabelIDs() []uint64 {
	ids := make([]uint64, len(t.Labels))
	for i, l := range t.Labels {
		ids[i] = l.ID
	}
	return ids
}
