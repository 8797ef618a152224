package models

import (
	"time"
)

type User struct {
	ID           uint64    `gorm:"primarykey" json:"id"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	FirstName    string    `gorm:"type:varchar(255);not null" json:"firstName"`
	LastName     string    `gorm:"type:varchar(255);not null" json:"lastName"`
	PasswordHash string    `gorm:"type:varchar(255);not null" json:"-"`
	Active       bool      `gorm:"not null;default:true" json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"-"`

	// Relations
	Roles []Role `gorm:"many2many:user_roles" json:"-"`
}

// HasRole reports whether the user was granted the named role.
func (u User) HasRole(name string) bool {
	for _, r := range u.Roles {
		if r.Name == name {
			return true
		}
	}
	return false
}
