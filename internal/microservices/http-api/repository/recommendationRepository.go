package repository

import (
	"context"

	"hostelhub/internal/microservices/http-api/models"

	"gorm.io/gorm"
)

type RecommendationRepository interface {
	// Replace deletes the current set (for hostelID, or all rows when empty)
	// and inserts recs in one transaction.
	Replace(ctx context.Context, hostelID string, recs []models.MenuRecommendation) error
	// ListRanked returns recommendations by final score descending, dish id ascending.
	ListRanked(ctx context.Context, hostelID string) ([]models.MenuRecommendation, error)
}

type recommendationRepository struct {
	db *gorm.DB
}

func NewRecommendationRepository(db *gorm.DB) RecommendationRepository {
	return &recommendationRepository{db: db}
}

func (r *recommendationRepository) Replace(ctx context.Context, hostelID string, recs []models.MenuRecommendation) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		del := tx.Session(&gorm.Session{AllowGlobalUpdate: true})
		if hostelID != "" {
			del = del.Where("hostel_id = ?", hostelID)
		}
		if err := del.Delete(&models.MenuRecommendation{}).Error; err != nil {
			return err
		}
		if len(recs) == 0 {
			return nil
		}
		return tx.CreateInBatches(recs, 200).Error
	})
}

func (r *recommendationRepository) ListRanked(ctx context.Context, hostelID string) ([]models.MenuRecommendation, error) {
	var recs []models.MenuRecommendation
	q := r.db.WithContext(ctx)
	if hostelID != "" {
		q = q.Where("hostel_id = ?", hostelID)
	}
	err := q.Order("final_score DESC").Order("dish_id ASC").Find(&recs).Error
	return recs, err
}
