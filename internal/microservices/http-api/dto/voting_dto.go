package dto

import "time"

// OpenVotingRequest: payload for opening a weekly voting window
type OpenVotingRequest struct {
	Week           int `json:"week"`
	DurationInDays int `json:"durationInDays"`
}

// CloseVotingRequest: payload for closing a window early
type CloseVotingRequest struct {
	Week int `json:"week"`
}

type VotingWindowResponse struct {
	ID       string    `json:"id"`
	Week     int       `json:"week"`
	StartsAt time.Time `json:"startsAt"`
	EndsAt   time.Time `json:"endsAt"`
	IsActive bool      `json:"isActive"`
}

// VotingStatusResponse: Initialized is false when the hostel has no window yet
type VotingStatusResponse struct {
	Week        int        `json:"week,omitempty"`
	State       string     `json:"state"`
	IsOpen      bool       `json:"isOpen"`
	Initialized bool       `json:"initialized"`
	StartsAt    *time.Time `json:"startsAt,omitempty"`
	EndsAt      *time.Time `json:"endsAt,omitempty"`
	Message     string     `json:"message,omitempty"`
}

type DishVoteCount struct {
	DishID   string `json:"dishId"`
	Name     string `json:"name"`
	MealType string `json:"mealType"`
	Votes    int64  `json:"votes"`
}

type VotingResultsResponse struct {
	Week    int             `json:"week"`
	Results []DishVoteCount `json:"results"`
}
