package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Hostel is the tenant root; every other record carries a HostelID.
type Hostel struct {
	ID        string    `gorm:"primaryKey;type:uuid" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Domain    string    `gorm:"uniqueIndex;not null" json:"domain"`
	CreatedAt time.Time `json:"created_at"`
}

func (h *Hostel) BeforeCreate(tx *gorm.DB) (err error) {
	if h.ID == "" {
		h.ID = uuid.New().String()
	}
	return
}

func (Hostel) TableName() string {
	return "hostels"
}
