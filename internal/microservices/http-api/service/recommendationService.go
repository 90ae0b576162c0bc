package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"hostelhub/internal/metrics"
	"hostelhub/internal/microservices/http-api/models"
	"hostelhub/internal/microservices/http-api/repository"
)

type RecommendationService interface {
	// ComputeRecommendations rebuilds the recommendation set and returns its size.
	ComputeRecommendations(ctx context.Context, hostelID string) (int, error)
	// Ranked returns the current set by final score, highest first.
	Ranked(ctx context.Context, hostelID string) ([]models.MenuRecommendation, error)
}

type recommendationService struct {
	dishRepo     repository.DishRepository
	reviewRepo   repository.MealReviewRepository
	recRepo      repository.RecommendationRepository
	hostelScoped bool
	logger       *slog.Logger
	now          func() time.Time
}

// NewRecommendationService builds the engine. With hostelScoped false every
// hostel's active dishes are scored together and the whole table is replaced.
func NewRecommendationService(
	dishRepo repository.DishRepository,
	reviewRepo repository.MealReviewRepository,
	recRepo repository.RecommendationRepository,
	hostelScoped bool,
) RecommendationService {
	return &recommendationService{
		dishRepo:     dishRepo,
		reviewRepo:   reviewRepo,
		recRepo:      recRepo,
		hostelScoped: hostelScoped,
		logger:       slog.Default(),
		now:          time.Now,
	}
}

// scope maps a caller's hostel to the repository filter; "" means every hostel.
func (s *recommendationService) scope(hostelID string) string {
	if s.hostelScoped {
		return hostelID
	}
	return ""
}

func (s *recommendationService) ComputeRecommendations(ctx context.Context, hostelID string) (int, error) {
	start := time.Now()
	defer metrics.ObserveSince(metrics.RecomputeDuration, start)

	scope := s.scope(hostelID)
	dishes, err := s.dishRepo.ListActive(ctx, scope)
	if err != nil {
		return 0, fmt.Errorf("list active dishes: %w", err)
	}
	feedback, err := s.reviewRepo.FeedbackByDish(ctx, scope)
	if err != nil {
		return 0, fmt.Errorf("aggregate feedback: %w", err)
	}

	computedAt := s.now()
	recs := make([]models.MenuRecommendation, 0, len(dishes))
	for _, d := range dishes {
		score := ScoreDish(d, feedback[d.ID])
		recs = append(recs, models.MenuRecommendation{
			HostelID:        d.HostelID,
			DishID:          d.ID,
			PopularityScore: score.PopularityScore,
			HealthScore:     score.HealthScore,
			CostEfficiency:  score.CostEfficiency,
			FinalScore:      score.FinalScore,
			ComputedAt:      computedAt,
		})
	}

	if err := s.recRepo.Replace(ctx, scope, recs); err != nil {
		return 0, fmt.Errorf("replace recommendations: %w", err)
	}

	s.logger.Info("recommendations recomputed", "hostel_id", hostelID, "hostel_scoped", s.hostelScoped, "count", len(recs))
	return len(recs), nil
}

func (s *recommendationService) Ranked(ctx context.Context, hostelID string) ([]models.MenuRecommendation, error) {
	return s.recRepo.ListRanked(ctx, s.scope(hostelID))
}
