package repository

import (
	"context"

	"hostelhub/internal/microservices/http-api/models"

	"gorm.io/gorm"
)

type VoteRepository interface {
	HasVoted(ctx context.Context, hostelID, userID string, week int) (bool, error)
	// CreateBatch inserts the ballot and its votes atomically. Any unique
	// violation rolls back the whole batch and returns ErrDuplicate.
	CreateBatch(ctx context.Context, ballot *models.VoteBallot, votes []models.Vote) error
	CountByDish(ctx context.Context, hostelID string, week int) (map[string]int64, error)
}

type voteRepository struct {
	db *gorm.DB
}

func NewVoteRepository(db *gorm.DB) VoteRepository {
	return &voteRepository{db: db}
}

func (r *voteRepository) HasVoted(ctx context.Context, hostelID, userID string, week int) (bool, error) {
	var ballots int64
	if err := r.db.WithContext(ctx).Model(&models.VoteBallot{}).
		Where("hostel_id = ? AND user_id = ? AND week = ?", hostelID, userID, week).
		Count(&ballots).Error; err != nil {
		return false, err
	}
	if ballots > 0 {
		return true, nil
	}

	var votes int64
	err := r.db.WithContext(ctx).Model(&models.Vote{}).
		Where("hostel_id = ? AND user_id = ? AND week = ?", hostelID, userID, week).
		Count(&votes).Error
	return votes > 0, err
}

func (r *voteRepository) CreateBatch(ctx context.Context, ballot *models.VoteBallot, votes []models.Vote) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(ballot).Error; err != nil {
			return err
		}
		if len(votes) == 0 {
			return nil
		}
		return tx.CreateInBatches(votes, 100).Error
	})
	return translate(err)
}

// CountByDish tallies votes per dish for a hostel week
func (r *voteRepository) CountByDish(ctx context.Context, hostelID string, week int) (map[string]int64, error) {
	var rows []struct {
		DishID string
		Total  int64
	}
	err := r.db.WithContext(ctx).Model(&models.Vote{}).
		Select("dish_id, COUNT(*) AS total").
		Where("hostel_id = ? AND week = ?", hostelID, week).
		Group("dish_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.DishID] = row.Total
	}
	return counts, nil
}
