package repository

import (
	"context"

	"hostelhub/internal/microservices/http-api/models"

	"gorm.io/gorm"
)

type VotingWindowRepository interface {
	// Open deactivates the hostel's active windows and inserts w in one transaction.
	Open(ctx context.Context, w *models.VotingWindow) error
	FindByWeek(ctx context.Context, hostelID string, week int) (*models.VotingWindow, error)
	FindActiveByWeek(ctx context.Context, hostelID string, week int) (*models.VotingWindow, error)
	Latest(ctx context.Context, hostelID string) (*models.VotingWindow, error)
	Deactivate(ctx context.Context, id string) error
}

type votingWindowRepository struct {
	db *gorm.DB
}

func NewVotingWindowRepository(db *gorm.DB) VotingWindowRepository {
	return &votingWindowRepository{db: db}
}

func (r *votingWindowRepository) Open(ctx context.Context, w *models.VotingWindow) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.VotingWindow{}).
			Where("hostel_id = ? AND is_active = ?", w.HostelID, true).
			Update("is_active", false).Error; err != nil {
			return err
		}
		return tx.Create(w).Error
	})
	return translate(err)
}

func (r *votingWindowRepository) FindByWeek(ctx context.Context, hostelID string, week int) (*models.VotingWindow, error) {
	var w models.VotingWindow
	err := r.db.WithContext(ctx).
		Where("hostel_id = ? AND week = ?", hostelID, week).
		First(&w).Error
	if err != nil {
		return nil, err
	}
	return &w, nil
}

func (r *votingWindowRepository) FindActiveByWeek(ctx context.Context, hostelID string, week int) (*models.VotingWindow, error) {
	var w models.VotingWindow
	err := r.db.WithContext(ctx).
		Where("hostel_id = ? AND week = ? AND is_active = ?", hostelID, week, true).
		First(&w).Error
	if err != nil {
		return nil, err
	}
	return &w, nil
}

// Latest returns the most recently created window of the hostel
func (r *votingWindowRepository) Latest(ctx context.Context, hostelID string) (*models.VotingWindow, error) {
	var w models.VotingWindow
	err := r.db.WithContext(ctx).
		Where("hostel_id = ?", hostelID).
		Order("created_at DESC").
		First(&w).Error
	if err != nil {
		return nil, err
	}
	return &w, nil
}

func (r *votingWindowRepository) Deactivate(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Model(&models.VotingWindow{}).
		Where("id = ?", id).
		Update("is_active", false).Error
}
