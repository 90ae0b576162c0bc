package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	RoleAdmin   = "ADMIN"
	RoleStudent = "STUDENT"
	RoleWorker  = "WORKER"
)

type User struct {
	ID        string    `gorm:"primaryKey;type:uuid" json:"id"`
	HostelID  string    `gorm:"type:uuid;not null;index" json:"hostel_id"`
	Name      string    `gorm:"not null" json:"name"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"column:password_hash;not null" json:"-"` // Not show in JSON
	Role      string    `gorm:"not null" json:"role"`
	IsActive  bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeCreate hook to set UUID before creating a User
func (user *User) BeforeCreate(tx *gorm.DB) (err error) {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	return
}

func (User) TableName() string {
	return "users"
}

// ValidRole reports whether role is one of the three hostel roles.
func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleStudent, RoleWorker:
		return true
	}
	return false
}
