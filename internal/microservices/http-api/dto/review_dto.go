package dto

import "time"

// SubmitReviewRequest: ServedOn is a YYYY-MM-DD date
type SubmitReviewRequest struct {
	DishID    string   `json:"dishId" binding:"required"`
	ServedOn  string   `json:"servedOn" binding:"required"`
	Rating    int      `json:"rating" binding:"required"`
	WantAgain bool     `json:"wantAgain"`
	Comment   string   `json:"comment" binding:"max=500"`
	Images    []string `json:"images"`
}

// ReviewQuery: admin listing filters bound from the query string
type ReviewQuery struct {
	MealType string `form:"mealType"`
	DishID   string `form:"dishId"`
	Date     string `form:"date"`
	Page     int    `form:"page"`
	Limit    int    `form:"limit"`
}

type ReviewResponse struct {
	ID        string    `json:"id"`
	StudentID string    `json:"studentId"`
	DishID    string    `json:"dishId"`
	DishName  string    `json:"dishName,omitempty"`
	MealType  string    `json:"mealType"`
	ServedOn  string    `json:"servedOn"`
	Rating    int       `json:"rating"`
	WantAgain bool      `json:"wantAgain"`
	Comment   string    `json:"comment,omitempty"`
	Images    []string  `json:"images"`
	CreatedAt time.Time `json:"createdAt"`
}

type ReviewListResponse struct {
	Reviews []ReviewResponse `json:"reviews"`
	Total   int64            `json:"total"`
	Page    int              `json:"page"`
	Limit   int              `json:"limit"`
}
