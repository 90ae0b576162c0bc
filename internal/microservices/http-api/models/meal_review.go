package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// MealReview is student feedback on a served dish; it is the input of the
// recommendation scoring (rating and want-again).
type MealReview struct {
	ID        string                      `json:"id" gorm:"primaryKey;type:uuid"`
	HostelID  string                      `json:"hostel_id" gorm:"type:uuid;not null;uniqueIndex:idx_meal_reviews_unique"`
	StudentID string                      `json:"student_id" gorm:"type:uuid;not null;uniqueIndex:idx_meal_reviews_unique"`
	DishID    string                      `json:"dish_id" gorm:"type:uuid;not null;uniqueIndex:idx_meal_reviews_unique;index"`
	MealType  MealType                    `json:"meal_type" gorm:"type:varchar(16);not null"`
	ServedOn  time.Time                   `json:"served_on" gorm:"type:date;not null;uniqueIndex:idx_meal_reviews_unique"`
	Rating    int                         `json:"rating" gorm:"not null;check:rating >= 1 AND rating <= 5"`
	WantAgain bool                        `json:"want_again" gorm:"not null;default:false"`
	Comment   string                      `json:"comment" gorm:"type:varchar(500)"`
	Images    datatypes.JSONSlice[string] `json:"images"`
	CreatedAt time.Time                   `json:"created_at" gorm:"autoCreateTime"`

	// Associations
	Dish Dish `json:"dish,omitempty" gorm:"foreignKey:DishID;constraint:OnDelete:CASCADE;"`
}

func (r *MealReview) BeforeCreate(tx *gorm.DB) (err error) {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	return
}

func (MealReview) TableName() string {
	return "meal_reviews"
}
