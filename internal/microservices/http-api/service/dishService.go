package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"hostelhub/internal/microservices/http-api/dto"
	"hostelhub/internal/microservices/http-api/models"
	"hostelhub/internal/microservices/http-api/repository"
)

// DefaultSuggestionsPerWeek caps student suggestions over a rolling 7 days.
const DefaultSuggestionsPerWeek = 3

const suggestionWindow = 7 * 24 * time.Hour

type DishService interface {
	SuggestDish(ctx context.Context, hostelID, userID string, req dto.SuggestDishRequest) (*dto.DishResponse, error)
	ListDishes(ctx context.Context, hostelID string, status string) ([]dto.DishResponse, error)
	ApproveDish(ctx context.Context, hostelID, dishID, adminID string, priceScore, healthScore int) (*dto.DishResponse, error)
	RejectDish(ctx context.Context, hostelID, dishID, adminID, reason string) (*dto.DishResponse, error)
}

type dishService struct {
	dishRepo           repository.DishRepository
	suggestionsPerWeek int
	logger             *slog.Logger
	now                func() time.Time
}

func NewDishService(dishRepo repository.DishRepository, suggestionsPerWeek int) DishService {
	if suggestionsPerWeek <= 0 {
		suggestionsPerWeek = DefaultSuggestionsPerWeek
	}
	return &dishService{
		dishRepo:           dishRepo,
		suggestionsPerWeek: suggestionsPerWeek,
		logger:             slog.Default(),
		now:                time.Now,
	}
}

func (s *dishService) SuggestDish(ctx context.Context, hostelID, userID string, req dto.SuggestDishRequest) (*dto.DishResponse, error) {
	name := strings.TrimSpace(req.Name)
	mealType := models.MealType(req.MealType)
	if name == "" || strings.TrimSpace(req.Category) == "" {
		return nil, fmt.Errorf("%w: name and category are required", ErrInvalidDish)
	}
	if !mealType.Valid() {
		return nil, fmt.Errorf("%w: mealType must be Breakfast, Lunch or Dinner", ErrInvalidDish)
	}

	count, err := s.dishRepo.CountSuggestedSince(ctx, userID, s.now().Add(-suggestionWindow))
	if err != nil {
		return nil, fmt.Errorf("count suggestions: %w", err)
	}
	if count >= int64(s.suggestionsPerWeek) {
		return nil, fmt.Errorf("%w: maximum %d per week", ErrSuggestionLimit, s.suggestionsPerWeek)
	}

	if _, err := s.dishRepo.FindByName(ctx, hostelID, name); err == nil {
		return nil, ErrDishExists
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("check dish name: %w", err)
	}

	suggestedBy := userID
	dish := &models.Dish{
		HostelID:    hostelID,
		Name:        name,
		MealType:    mealType,
		Category:    strings.TrimSpace(req.Category),
		Tags:        req.Tags,
		Status:      models.DishUnderReview,
		SuggestedBy: &suggestedBy,
	}
	if err := s.dishRepo.Create(ctx, dish); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrDishExists
		}
		return nil, fmt.Errorf("create dish: %w", err)
	}

	s.logger.Info("dish suggested", "hostel_id", hostelID, "user_id", userID, "dish_id", dish.ID)
	return toDishResponse(dish), nil
}

func (s *dishService) ListDishes(ctx context.Context, hostelID string, status string) ([]dto.DishResponse, error) {
	switch models.DishStatus(status) {
	case "", models.DishUnderReview, models.DishActive, models.DishInactive:
	default:
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidDish, status)
	}

	dishes, err := s.dishRepo.List(ctx, hostelID, models.DishStatus(status))
	if err != nil {
		return nil, fmt.Errorf("list dishes: %w", err)
	}
	out := make([]dto.DishResponse, 0, len(dishes))
	for i := range dishes {
		out = append(out, *toDishResponse(&dishes[i]))
	}
	return out, nil
}

// ApproveDish activates a dish under review and assigns its scores.
func (s *dishService) ApproveDish(ctx context.Context, hostelID, dishID, adminID string, priceScore, healthScore int) (*dto.DishResponse, error) {
	if !validScore(priceScore) || !validScore(healthScore) {
		return nil, ErrInvalidScore
	}

	dish, err := s.dishRepo.Review(ctx, hostelID, dishID, map[string]any{
		"status":       models.DishActive,
		"price_score":  priceScore,
		"health_score": healthScore,
		"approved_by":  adminID,
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w or already reviewed", ErrDishNotFound)
		}
		return nil, fmt.Errorf("approve dish: %w", err)
	}

	s.logger.Info("dish approved", "hostel_id", hostelID, "dish_id", dishID, "admin_id", adminID)
	return toDishResponse(dish), nil
}

func (s *dishService) RejectDish(ctx context.Context, hostelID, dishID, adminID, reason string) (*dto.DishResponse, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, ErrReasonRequired
	}

	dish, err := s.dishRepo.Review(ctx, hostelID, dishID, map[string]any{
		"status": models.DishInactive,
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w or already reviewed", ErrDishNotFound)
		}
		return nil, fmt.Errorf("reject dish: %w", err)
	}

	s.logger.Info("dish rejected", "hostel_id", hostelID, "dish_id", dishID, "admin_id", adminID, "reason", reason)
	return toDishResponse(dish), nil
}

func validScore(v int) bool {
	return v >= 1 && v <= 5
}

func toDishResponse(d *models.Dish) *dto.DishResponse {
	tags := []string(d.Tags)
	if tags == nil {
		tags = []string{}
	}
	return &dto.DishResponse{
		ID:          d.ID,
		Name:        d.Name,
		MealType:    string(d.MealType),
		Category:    d.Category,
		PriceScore:  d.PriceScore,
		HealthScore: d.HealthScore,
		Tags:        tags,
		Status:      string(d.Status),
		SuggestedBy: d.SuggestedBy,
		ApprovedBy:  d.ApprovedBy,
		CreatedAt:   d.CreatedAt,
	}
}
