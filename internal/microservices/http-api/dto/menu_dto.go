package dto

import "time"

type MenuItemResponse struct {
	DishID   string  `json:"dishId"`
	Name     string  `json:"name"`
	Category string  `json:"category,omitempty"`
	Score    float64 `json:"score"`
}

// MessMenuResponse: a generated menu with resolved dish names
type MessMenuResponse struct {
	ID          string             `json:"id"`
	Week        int                `json:"week"`
	Breakfast   []MenuItemResponse `json:"breakfast"`
	Lunch       []MenuItemResponse `json:"lunch"`
	Dinner      []MenuItemResponse `json:"dinner"`
	GeneratedAt time.Time          `json:"generatedAt"`
	Published   bool               `json:"published"`
	PublishedAt *time.Time         `json:"publishedAt,omitempty"`
}

type GenerateMenuResponse struct {
	Message string `json:"message"`
	MenuID  string `json:"menuId"`
	Week    int    `json:"week"`
}

// PublishMenuRequest: week is optional, zero means latest draft
type PublishMenuRequest struct {
	Week int `json:"week"`
}

type RecomputeResponse struct {
	Message string `json:"message"`
	Count   int    `json:"count"`
}
