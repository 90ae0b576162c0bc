package repository

import (
	"context"
	"strings"
	"time"

	"hostelhub/internal/microservices/http-api/models"

	"gorm.io/gorm"
)

type DishRepository interface {
	Create(ctx context.Context, dish *models.Dish) error
	GetByID(ctx context.Context, hostelID, dishID string) (*models.Dish, error)
	FindByName(ctx context.Context, hostelID, name string) (*models.Dish, error)
	FindByIDs(ctx context.Context, hostelID string, ids []string) ([]models.Dish, error)
	List(ctx context.Context, hostelID string, status models.DishStatus) ([]models.Dish, error)
	ListActive(ctx context.Context, hostelID string) ([]models.Dish, error)
	CountSuggestedSince(ctx context.Context, userID string, since time.Time) (int64, error)
	Review(ctx context.Context, hostelID, dishID string, updates map[string]any) (*models.Dish, error)
}

type dishRepository struct {
	db *gorm.DB
}

func NewDishRepository(db *gorm.DB) DishRepository {
	return &dishRepository{db: db}
}

func (r *dishRepository) Create(ctx context.Context, dish *models.Dish) error {
	return translate(r.db.WithContext(ctx).Create(dish).Error)
}

func (r *dishRepository) GetByID(ctx context.Context, hostelID, dishID string) (*models.Dish, error) {
	var dish models.Dish
	err := r.db.WithContext(ctx).
		Where("id = ? AND hostel_id = ?", dishID, hostelID).
		First(&dish).Error
	if err != nil {
		return nil, err
	}
	return &dish, nil
}

// FindByName matches case-insensitively inside one hostel
func (r *dishRepository) FindByName(ctx context.Context, hostelID, name string) (*models.Dish, error) {
	var dish models.Dish
	err := r.db.WithContext(ctx).
		Where("hostel_id = ? AND LOWER(name) = ?", hostelID, strings.ToLower(strings.TrimSpace(name))).
		First(&dish).Error
	if err != nil {
		return nil, err
	}
	return &dish, nil
}

func (r *dishRepository) FindByIDs(ctx context.Context, hostelID string, ids []string) ([]models.Dish, error) {
	var dishes []models.Dish
	if len(ids) == 0 {
		return dishes, nil
	}
	err := r.db.WithContext(ctx).
		Where("hostel_id = ? AND id IN ?", hostelID, ids).
		Find(&dishes).Error
	return dishes, err
}

// List returns the hostel's dishes, newest first; an empty status means all.
func (r *dishRepository) List(ctx context.Context, hostelID string, status models.DishStatus) ([]models.Dish, error) {
	var dishes []models.Dish
	q := r.db.WithContext(ctx).Where("hostel_id = ?", hostelID)
	if status != "" {
		q = q.Where("status = ?", status)
	}
	err := q.Order("created_at DESC").Find(&dishes).Error
	return dishes, err
}

// ListActive returns ACTIVE dishes; an empty hostelID means every hostel.
func (r *dishRepository) ListActive(ctx context.Context, hostelID string) ([]models.Dish, error) {
	var dishes []models.Dish
	q := r.db.WithContext(ctx).Where("status = ?", models.DishActive)
	if hostelID != "" {
		q = q.Where("hostel_id = ?", hostelID)
	}
	err := q.Order("id").Find(&dishes).Error
	return dishes, err
}

func (r *dishRepository) CountSuggestedSince(ctx context.Context, userID string, since time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Dish{}).
		Where("suggested_by = ? AND created_at >= ?", userID, since).
		Count(&count).Error
	return count, err
}

// Review applies updates to a dish still UNDER_REVIEW. Returns ErrNotFound when
// the dish is missing or was already reviewed.
func (r *dishRepository) Review(ctx context.Context, hostelID, dishID string, updates map[string]any) (*models.Dish, error) {
	result := r.db.WithContext(ctx).Model(&models.Dish{}).
		Where("id = ? AND hostel_id = ? AND status = ?", dishID, hostelID, models.DishUnderReview).
		Updates(updates)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return r.GetByID(ctx, hostelID, dishID)
}
