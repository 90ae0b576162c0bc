package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Vote is one immutable (user, dish, week) selection.
type Vote struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid"`
	HostelID  string    `json:"hostel_id" gorm:"type:uuid;not null;uniqueIndex:idx_votes_unique"`
	UserID    string    `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_votes_unique"`
	DishID    string    `json:"dish_id" gorm:"type:uuid;not null;uniqueIndex:idx_votes_unique;index"`
	Week      int       `json:"week" gorm:"not null;uniqueIndex:idx_votes_unique"`
	MealType  MealType  `json:"meal_type" gorm:"type:varchar(16);not null"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (v *Vote) BeforeCreate(tx *gorm.DB) (err error) {
	if v.ID == "" {
		v.ID = uuid.New().String()
	}
	return
}

func (Vote) TableName() string {
	return "votes"
}

// VoteBallot marks that a user submitted their batch for a week. It is written in
// the same transaction as the votes, so its unique key makes a batch all-or-nothing.
type VoteBallot struct {
	ID          string    `json:"id" gorm:"primaryKey;type:uuid"`
	HostelID    string    `json:"hostel_id" gorm:"type:uuid;not null;uniqueIndex:idx_vote_ballots_unique"`
	UserID      string    `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_vote_ballots_unique"`
	Week        int       `json:"week" gorm:"not null;uniqueIndex:idx_vote_ballots_unique"`
	VoteCount   int       `json:"vote_count" gorm:"not null"`
	SubmittedAt time.Time `json:"submitted_at" gorm:"not null"`
}

func (b *VoteBallot) BeforeCreate(tx *gorm.DB) (err error) {
	if b.ID == "" {
		b.ID = uuid.New().String()
	}
	return
}

func (VoteBallot) TableName() string {
	return "vote_ballots"
}
