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

const (
	dateLayout       = "2006-01-02"
	defaultPageLimit = 20
	maxPageLimit     = 50
)

type ReviewService interface {
	SubmitReview(ctx context.Context, hostelID, studentID string, req dto.SubmitReviewRequest) (*dto.ReviewResponse, error)
	ListReviews(ctx context.Context, hostelID string, query dto.ReviewQuery) (*dto.ReviewListResponse, error)
}

type reviewService struct {
	reviewRepo repository.MealReviewRepository
	dishRepo   repository.DishRepository
	logger     *slog.Logger
}

func NewReviewService(reviewRepo repository.MealReviewRepository, dishRepo repository.DishRepository) ReviewService {
	return &reviewService{
		reviewRepo: reviewRepo,
		dishRepo:   dishRepo,
		logger:     slog.Default(),
	}
}

// SubmitReview stores one rating per student, dish and serving day.
func (s *reviewService) SubmitReview(ctx context.Context, hostelID, studentID string, req dto.SubmitReviewRequest) (*dto.ReviewResponse, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, fmt.Errorf("%w: rating must be between 1 and 5", ErrInvalidReview)
	}
	if len(req.Comment) > 500 {
		return nil, fmt.Errorf("%w: comment is limited to 500 characters", ErrInvalidReview)
	}
	servedOn, err := time.Parse(dateLayout, strings.TrimSpace(req.ServedOn))
	if err != nil {
		return nil, fmt.Errorf("%w: servedOn must be YYYY-MM-DD", ErrInvalidReview)
	}

	dish, err := s.dishRepo.GetByID(ctx, hostelID, req.DishID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrDishNotFound
		}
		return nil, fmt.Errorf("load dish: %w", err)
	}
	if dish.Status != models.DishActive {
		return nil, fmt.Errorf("%w: dish is not active", ErrInvalidReview)
	}

	review := &models.MealReview{
		HostelID:  hostelID,
		StudentID: studentID,
		DishID:    dish.ID,
		MealType:  dish.MealType,
		ServedOn:  servedOn,
		Rating:    req.Rating,
		WantAgain: req.WantAgain,
		Comment:   req.Comment,
		Images:    req.Images,
	}
	if err := s.reviewRepo.Create(ctx, review); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrDuplicateReview
		}
		return nil, fmt.Errorf("save review: %w", err)
	}
	review.Dish = *dish

	s.logger.Info("meal review submitted", "hostel_id", hostelID, "dish_id", dish.ID, "rating", req.Rating)
	return toReviewResponse(review), nil
}

func (s *reviewService) ListReviews(ctx context.Context, hostelID string, query dto.ReviewQuery) (*dto.ReviewListResponse, error) {
	filter := repository.ReviewFilter{
		MealType: models.MealType(query.MealType),
		DishID:   query.DishID,
		Page:     query.Page,
		Limit:    query.Limit,
	}
	if filter.MealType != "" && !filter.MealType.Valid() {
		return nil, fmt.Errorf("%w: unknown mealType %q", ErrInvalidReview, query.MealType)
	}
	if query.Date != "" {
		day, err := time.Parse(dateLayout, query.Date)
		if err != nil {
			return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", ErrInvalidReview)
		}
		filter.ServedOn = &day
	}
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = defaultPageLimit
	}
	if filter.Limit > maxPageLimit {
		filter.Limit = maxPageLimit
	}

	reviews, total, err := s.reviewRepo.List(ctx, hostelID, filter)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}

	out := make([]dto.ReviewResponse, 0, len(reviews))
	for i := range reviews {
		out = append(out, *toReviewResponse(&reviews[i]))
	}
	return &dto.ReviewListResponse{
		Reviews: out,
		Total:   total,
		Page:    filter.Page,
		Limit:   filter.Limit,
	}, nil
}

func toReviewResponse(r *models.MealReview) *dto.ReviewResponse {
	images := []string(r.Images)
	if images == nil {
		images = []string{}
	}
	return &dto.ReviewResponse{
		ID:        r.ID,
		StudentID: r.StudentID,
		DishID:    r.DishID,
		DishName:  r.Dish.Name,
		MealType:  string(r.MealType),
		ServedOn:  r.ServedOn.Format(dateLayout),
		Rating:    r.Rating,
		WantAgain: r.WantAgain,
		Comment:   r.Comment,
		Images:    images,
		CreatedAt: r.CreatedAt,
	}
}
