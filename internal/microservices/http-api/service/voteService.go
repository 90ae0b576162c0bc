package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"hostelhub/internal/metrics"
	"hostelhub/internal/microservices/http-api/dto"
	"hostelhub/internal/microservices/http-api/models"
	"hostelhub/internal/microservices/http-api/repository"
)

// DefaultVotesPerMeal is the minimum number of distinct dishes per meal category.
const DefaultVotesPerMeal = 7

type VoteService interface {
	SubmitVotes(ctx context.Context, hostelID, userID string, week int, votes dto.VoteSelection) (*dto.SubmitVotesResponse, error)
	HasVoted(ctx context.Context, hostelID, userID string, week int) (bool, error)
}

type voteService struct {
	voteRepo   repository.VoteRepository
	dishRepo   repository.DishRepository
	minPerMeal int
	logger     *slog.Logger
	now        func() time.Time
}

func NewVoteService(voteRepo repository.VoteRepository, dishRepo repository.DishRepository, minPerMeal int) VoteService {
	if minPerMeal <= 0 {
		minPerMeal = DefaultVotesPerMeal
	}
	return &voteService{
		voteRepo:   voteRepo,
		dishRepo:   dishRepo,
		minPerMeal: minPerMeal,
		logger:     slog.Default(),
		now:        time.Now,
	}
}

// SubmitVotes records a student's weekly ballot. The open-window check is done
// by the route middleware before this is called.
func (s *voteService) SubmitVotes(ctx context.Context, hostelID, userID string, week int, votes dto.VoteSelection) (*dto.SubmitVotesResponse, error) {
	if week <= 0 {
		return nil, ErrInvalidWeek
	}

	voted, err := s.voteRepo.HasVoted(ctx, hostelID, userID, week)
	if err != nil {
		return nil, fmt.Errorf("check existing votes: %w", err)
	}
	if voted {
		metrics.VoteBatchesRejected.WithLabelValues("already_voted").Inc()
		return nil, ErrAlreadyVoted
	}

	byMeal := map[models.MealType][]string{
		models.MealBreakfast: votes.Breakfast,
		models.MealLunch:     votes.Lunch,
		models.MealDinner:    votes.Dinner,
	}
	rows, err := s.validate(ctx, hostelID, userID, week, byMeal)
	if err != nil {
		metrics.VoteBatchesRejected.WithLabelValues("invalid").Inc()
		return nil, err
	}

	ballot := &models.VoteBallot{
		HostelID:    hostelID,
		UserID:      userID,
		Week:        week,
		VoteCount:   len(rows),
		SubmittedAt: s.now(),
	}
	if err := s.voteRepo.CreateBatch(ctx, ballot, rows); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			metrics.VoteBatchesRejected.WithLabelValues("already_voted").Inc()
			return nil, ErrAlreadyVoted
		}
		return nil, fmt.Errorf("save votes: %w", err)
	}

	metrics.VotesSubmitted.Add(float64(len(rows)))
	s.logger.Info("votes submitted", "hostel_id", hostelID, "user_id", userID, "week", week, "count", len(rows))
	return &dto.SubmitVotesResponse{Message: "Votes submitted successfully", Count: len(rows)}, nil
}

func (s *voteService) HasVoted(ctx context.Context, hostelID, userID string, week int) (bool, error) {
	if week <= 0 {
		return false, nil
	}
	return s.voteRepo.HasVoted(ctx, hostelID, userID, week)
}

// validate checks every category before anything is written and returns the
// vote rows for the batch.
func (s *voteService) validate(ctx context.Context, hostelID, userID string, week int, byMeal map[models.MealType][]string) ([]models.Vote, error) {
	var ids []string
	seen := make(map[string]models.MealType)

	for _, meal := range models.MealTypes {
		distinct := 0
		for _, id := range byMeal[meal] {
			if id == "" {
				return nil, fmt.Errorf("%w: empty dish id in %s", ErrInvalidVoteBatch, meal)
			}
			if prev, ok := seen[id]; ok {
				if prev != meal {
					return nil, fmt.Errorf("%w: dish %s listed under %s and %s", ErrInvalidVoteBatch, id, prev, meal)
				}
				continue
			}
			seen[id] = meal
			ids = append(ids, id)
			distinct++
		}
		if distinct < s.minPerMeal {
			return nil, fmt.Errorf("%w: minimum %d dishes required for %s", ErrInvalidVoteBatch, s.minPerMeal, meal)
		}
	}

	dishes, err := s.dishRepo.FindByIDs(ctx, hostelID, ids)
	if err != nil {
		return nil, fmt.Errorf("load dishes: %w", err)
	}
	found := make(map[string]models.Dish, len(dishes))
	for _, d := range dishes {
		found[d.ID] = d
	}

	rows := make([]models.Vote, 0, len(ids))
	for _, id := range ids {
		meal := seen[id]
		d, ok := found[id]
		switch {
		case !ok:
			return nil, fmt.Errorf("%w: dish %s not found", ErrInvalidVoteBatch, id)
		case d.Status != models.DishActive:
			return nil, fmt.Errorf("%w: dish %s is not active", ErrInvalidVoteBatch, d.Name)
		case d.MealType != meal:
			return nil, fmt.Errorf("%w: dish %s is not a %s dish", ErrInvalidVoteBatch, d.Name, meal)
		}
		rows = append(rows, models.Vote{
			HostelID: hostelID,
			UserID:   userID,
			DishID:   id,
			Week:     week,
			MealType: meal,
		})
	}
	return rows, nil
}
