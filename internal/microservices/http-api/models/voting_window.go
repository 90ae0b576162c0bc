package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// VotingWindow is the time box during which students vote on next week's menu.
// (hostel_id, week) is unique even after the window is closed.
type VotingWindow struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid"`
	HostelID  string    `json:"hostel_id" gorm:"type:uuid;not null;uniqueIndex:idx_voting_windows_hostel_week"`
	Week      int       `json:"week" gorm:"not null;uniqueIndex:idx_voting_windows_hostel_week"`
	StartsAt  time.Time `json:"starts_at" gorm:"not null"`
	EndsAt    time.Time `json:"ends_at" gorm:"not null"`
	IsActive  bool      `json:"is_active" gorm:"not null;default:true"`
	CreatedBy string    `json:"created_by" gorm:"type:uuid;not null"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (w *VotingWindow) BeforeCreate(tx *gorm.DB) (err error) {
	if w.ID == "" {
		w.ID = uuid.New().String()
	}
	return
}

func (VotingWindow) TableName() string {
	return "voting_windows"
}
