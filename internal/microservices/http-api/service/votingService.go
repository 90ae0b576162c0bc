package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"hostelhub/internal/metrics"
	"hostelhub/internal/microservices/http-api/dto"
	"hostelhub/internal/microservices/http-api/models"
	"hostelhub/internal/microservices/http-api/repository"
)

type VotingService interface {
	OpenWindow(ctx context.Context, hostelID string, week, durationDays int, adminID string) (*dto.VotingWindowResponse, error)
	CloseWindow(ctx context.Context, hostelID string, week int, adminID string) (*dto.VotingWindowResponse, error)
	// GetStatus reports the window for week, or the latest window when week is 0.
	GetStatus(ctx context.Context, hostelID string, week int) (*dto.VotingStatusResponse, error)
	IsOpen(ctx context.Context, hostelID string, week int) (bool, error)
	Results(ctx context.Context, hostelID string, week int) (*dto.VotingResultsResponse, error)
}

type votingService struct {
	windowRepo repository.VotingWindowRepository
	voteRepo   repository.VoteRepository
	dishRepo   repository.DishRepository
	logger     *slog.Logger
	now        func() time.Time
}

func NewVotingService(
	windowRepo repository.VotingWindowRepository,
	voteRepo repository.VoteRepository,
	dishRepo repository.DishRepository,
) VotingService {
	return &votingService{
		windowRepo: windowRepo,
		voteRepo:   voteRepo,
		dishRepo:   dishRepo,
		logger:     slog.Default(),
		now:        time.Now,
	}
}

// OpenWindow deactivates the hostel's active windows and opens a new one for week.
// A week can only ever be opened once, even after it was closed.
func (s *votingService) OpenWindow(ctx context.Context, hostelID string, week, durationDays int, adminID string) (*dto.VotingWindowResponse, error) {
	w, err := NewWindow(hostelID, week, durationDays, adminID, s.now())
	if err != nil {
		return nil, err
	}

	if err := s.windowRepo.Open(ctx, w); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrDuplicateWindow
		}
		return nil, fmt.Errorf("open voting window: %w", err)
	}

	metrics.VotingWindowEvents.WithLabelValues("opened").Inc()
	s.logger.Info("voting window opened", "hostel_id", hostelID, "week", week, "ends_at", w.EndsAt, "admin_id", adminID)
	return toWindowResponse(w), nil
}

func (s *votingService) CloseWindow(ctx context.Context, hostelID string, week int, adminID string) (*dto.VotingWindowResponse, error) {
	if week <= 0 {
		return nil, ErrInvalidWeek
	}

	w, err := s.windowRepo.FindActiveByWeek(ctx, hostelID, week)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNoActiveWindow
		}
		return nil, fmt.Errorf("find voting window: %w", err)
	}

	if err := s.windowRepo.Deactivate(ctx, w.ID); err != nil {
		return nil, fmt.Errorf("close voting window: %w", err)
	}
	w.IsActive = false

	metrics.VotingWindowEvents.WithLabelValues("closed").Inc()
	s.logger.Info("voting window closed", "hostel_id", hostelID, "week", week, "admin_id", adminID)
	return toWindowResponse(w), nil
}

func (s *votingService) GetStatus(ctx context.Context, hostelID string, week int) (*dto.VotingStatusResponse, error) {
	if week < 0 {
		return nil, ErrInvalidWeek
	}

	w, err := s.lookup(ctx, hostelID, week)
	if err != nil {
		return nil, err
	}

	status := EvaluateWindow(w, s.now())
	if status.State == WindowNone {
		return &dto.VotingStatusResponse{
			Week:    week,
			State:   status.State.String(),
			Message: "Voting has not been initialized",
		}, nil
	}

	if status.NeedsExpiry {
		if err := s.expire(ctx, w); err != nil {
			return nil, err
		}
	}

	startsAt, endsAt := w.StartsAt, w.EndsAt
	return &dto.VotingStatusResponse{
		Week:        w.Week,
		State:       status.State.String(),
		IsOpen:      status.IsOpen(),
		Initialized: true,
		StartsAt:    &startsAt,
		EndsAt:      &endsAt,
	}, nil
}

func (s *votingService) IsOpen(ctx context.Context, hostelID string, week int) (bool, error) {
	if week <= 0 {
		return false, nil
	}
	w, err := s.lookup(ctx, hostelID, week)
	if err != nil {
		return false, err
	}
	return EvaluateWindow(w, s.now()).IsOpen(), nil
}

// Results tallies the votes cast for week, most voted first.
func (s *votingService) Results(ctx context.Context, hostelID string, week int) (*dto.VotingResultsResponse, error) {
	if week <= 0 {
		return nil, ErrInvalidWeek
	}

	counts, err := s.voteRepo.CountByDish(ctx, hostelID, week)
	if err != nil {
		return nil, fmt.Errorf("count votes: %w", err)
	}

	ids := make([]string, 0, len(counts))
	for id := range counts {
		ids = append(ids, id)
	}
	dishes, err := s.dishRepo.FindByIDs(ctx, hostelID, ids)
	if err != nil {
		return nil, fmt.Errorf("load voted dishes: %w", err)
	}
	byID := make(map[string]models.Dish, len(dishes))
	for _, d := range dishes {
		byID[d.ID] = d
	}

	results := make([]dto.DishVoteCount, 0, len(counts))
	for id, n := range counts {
		d := byID[id]
		results = append(results, dto.DishVoteCount{
			DishID:   id,
			Name:     d.Name,
			MealType: string(d.MealType),
			Votes:    n,
		})
	}
	sort.Slice(results, func(i, j int) bool {
		if results[i].Votes != results[j].Votes {
			return results[i].Votes > results[j].Votes
		}
		return results[i].DishID < results[j].DishID
	})

	return &dto.VotingResultsResponse{Week: week, Results: results}, nil
}

// lookup returns the window for week (latest when 0), or nil when there is none.
func (s *votingService) lookup(ctx context.Context, hostelID string, week int) (*models.VotingWindow, error) {
	var (
		w   *models.VotingWindow
		err error
	)
	if week == 0 {
		w, err = s.windowRepo.Latest(ctx, hostelID)
	} else {
		w, err = s.windowRepo.FindByWeek(ctx, hostelID, week)
	}
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("find voting window: %w", err)
	}
	return w, nil
}

func (s *votingService) expire(ctx context.Context, w *models.VotingWindow) error {
	if err := s.windowRepo.Deactivate(ctx, w.ID); err != nil {
		return fmt.Errorf("expire voting window: %w", err)
	}
	w.IsActive = false
	metrics.VotingWindowEvents.WithLabelValues("expired").Inc()
	s.logger.Info("voting window expired", "hostel_id", w.HostelID, "week", w.Week, "ended_at", w.EndsAt)
	return nil
}

func toWindowResponse(w *models.VotingWindow) *dto.VotingWindowResponse {
	return &dto.VotingWindowResponse{
		ID:       w.ID,
		Week:     w.Week,
		StartsAt: w.StartsAt,
		EndsAt:   w.EndsAt,
		IsActive: w.IsActive,
	}
}
