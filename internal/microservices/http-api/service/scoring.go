package service

import (
	"hostelhub/internal/microservices/http-api/models"
	"hostelhub/internal/microservices/http-api/repository"
)

// Score weights of the final recommendation score.
const (
	popularityWeight = 0.5
	healthWeight     = 0.3
	costWeight       = 0.2
)

// DishScore is the composite score of one dish.
type DishScore struct {
	PopularityScore float64
	HealthScore     float64
	CostEfficiency  float64
	FinalScore      float64
}

// ScoreDish combines a dish's feedback with its admin assigned scores.
// popularity = avg rating + want-again percentage, both 0 without feedback.
func ScoreDish(dish models.Dish, fb repository.DishFeedback) DishScore {
	var avgRating, wantAgainPercent float64
	if fb.Total > 0 {
		avgRating = float64(fb.RatingSum) / float64(fb.Total)
		wantAgainPercent = float64(fb.WantAgains) / float64(fb.Total) * 100
	}
	popularity := avgRating + wantAgainPercent

	var health float64
	if dish.HealthScore != nil {
		health = float64(*dish.HealthScore)
	}

	var cost float64
	if dish.PriceScore != nil && *dish.PriceScore > 0 {
		cost = 1 / float64(*dish.PriceScore)
	}

	return DishScore{
		PopularityScore: popularity,
		HealthScore:     health,
		CostEfficiency:  cost,
		FinalScore:      popularityWeight*popularity + healthWeight*health + costWeight*cost,
	}
}
