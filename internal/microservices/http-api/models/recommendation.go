package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MenuRecommendation is a derived per-dish score. The table only ever holds the
// latest recompute batch.
type MenuRecommendation struct {
	ID              string    `json:"id" gorm:"primaryKey;type:uuid"`
	HostelID        string    `json:"hostel_id" gorm:"type:uuid;not null;index"`
	DishID          string    `json:"dish_id" gorm:"type:uuid;not null;index"`
	PopularityScore float64   `json:"popularity_score" gorm:"not null"`
	HealthScore     float64   `json:"health_score" gorm:"not null"`
	CostEfficiency  float64   `json:"cost_efficiency" gorm:"not null"`
	FinalScore      float64   `json:"final_score" gorm:"not null;index"`
	ComputedAt      time.Time `json:"computed_at" gorm:"not null"`
}

func (r *MenuRecommendation) BeforeCreate(tx *gorm.DB) (err error) {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	return
}

func (MenuRecommendation) TableName() string {
	return "menu_recommendations"
}
