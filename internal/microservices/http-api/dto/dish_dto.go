package dto

import "time"

// SuggestDishRequest: student dish suggestion
type SuggestDishRequest struct {
	Name     string   `json:"name" binding:"required,max=100"`
	MealType string   `json:"mealType" binding:"required"`
	Category string   `json:"category" binding:"required,max=50"`
	Tags     []string `json:"tags"`
}

// ApproveDishRequest: scores are only assigned at approval
type ApproveDishRequest struct {
	PriceScore  int `json:"priceScore" binding:"required"`
	HealthScore int `json:"healthScore" binding:"required"`
}

type RejectDishRequest struct {
	Reason string `json:"reason" binding:"required"`
}

type DishResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	MealType    string    `json:"mealType"`
	Category    string    `json:"category"`
	PriceScore  *int      `json:"priceScore,omitempty"`
	HealthScore *int      `json:"healthScore,omitempty"`
	Tags        []string  `json:"tags"`
	Status      string    `json:"status"`
	SuggestedBy *string   `json:"suggestedBy,omitempty"`
	ApprovedBy  *string   `json:"approvedBy,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}
