package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type DishStatus string

const (
	DishUnderReview DishStatus = "UNDER_REVIEW"
	DishActive      DishStatus = "ACTIVE"
	DishInactive    DishStatus = "INACTIVE"
)

// MealType is one of the three daily meal slots.
type MealType string

const (
	MealBreakfast MealType = "Breakfast"
	MealLunch     MealType = "Lunch"
	MealDinner    MealType = "Dinner"
)

// MealTypes lists the slots in serving order.
var MealTypes = []MealType{MealBreakfast, MealLunch, MealDinner}

func (m MealType) Valid() bool {
	switch m {
	case MealBreakfast, MealLunch, MealDinner:
		return true
	}
	return false
}

type Dish struct {
	ID          string                      `json:"id" gorm:"primaryKey;type:uuid"`
	HostelID    string                      `json:"hostel_id" gorm:"type:uuid;not null;index"`
	Name        string                      `json:"name" gorm:"not null"`
	MealType    MealType                    `json:"meal_type" gorm:"type:varchar(16);not null"`
	Category    string                      `json:"category" gorm:"not null"`
	PriceScore  *int                        `json:"price_score,omitempty" gorm:"check:price_score >= 1 AND price_score <= 5"`
	HealthScore *int                        `json:"health_score,omitempty" gorm:"check:health_score >= 1 AND health_score <= 5"`
	Tags        datatypes.JSONSlice[string] `json:"tags"`
	Status      DishStatus                  `json:"status" gorm:"type:varchar(16);not null;default:'UNDER_REVIEW';index"`
	SuggestedBy *string                     `json:"suggested_by,omitempty" gorm:"type:uuid;index"`
	ApprovedBy  *string                     `json:"approved_by,omitempty" gorm:"type:uuid"`
	CreatedAt   time.Time                   `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time                   `json:"updated_at" gorm:"autoUpdateTime"`
}

func (d *Dish) BeforeCreate(tx *gorm.DB) (err error) {
	if d.ID == "" {
		d.ID = uuid.New().String()
	}
	return
}

func (Dish) TableName() string {
	return "dishes"
}
