package service

import (
	"errors"

	"hostelhub/internal/apperror"
)

var (
	ErrInvalidWindow      = apperror.Validation("week and durationInDays must be positive")
	ErrInvalidWeek        = apperror.Validation("week must be positive")
	ErrDuplicateWindow    = apperror.Conflict("a voting window already exists for this week")
	ErrNoActiveWindow     = apperror.NotFound("no active voting window found for this week")
	ErrNoWindow           = apperror.NotFound("voting has not been initialized")
	ErrVotingClosed       = apperror.Forbidden("Voting is not open at this time")
	ErrVotingStillOpen    = apperror.Conflict("Voting is still open")
	ErrAlreadyVoted       = apperror.Conflict("You have already voted for this week")
	ErrInvalidVoteBatch   = apperror.Validation("invalid vote batch")
	ErrNoRecommendations  = apperror.NotFound("no recommendations available")
	ErrMenuExists         = apperror.Conflict("menu already generated for this week")
	ErrMenuNotFound       = apperror.NotFound("menu not found")
	ErrNoDraftMenu        = apperror.NotFound("no draft menu to publish")
	ErrDishNotFound       = apperror.NotFound("dish not found")
	ErrDishExists         = apperror.Conflict("a dish with this name already exists")
	ErrSuggestionLimit    = apperror.New(apperror.KindTooManyRequests, "dish suggestion limit reached for this week")
	ErrInvalidDish        = apperror.Validation("invalid dish")
	ErrInvalidScore       = apperror.Validation("scores must be between 1 and 5")
	ErrReasonRequired     = apperror.Validation("rejection reason is required")
	ErrInvalidReview      = apperror.Validation("invalid review")
	ErrDuplicateReview    = apperror.Conflict("you have already reviewed this dish for that day")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
)
