package repository

import (
	"context"
	"time"

	"hostelhub/internal/microservices/http-api/models"

	"gorm.io/gorm"
)

// ReviewFilter narrows an admin review listing. Zero values are ignored.
type ReviewFilter struct {
	MealType models.MealType
	DishID   string
	ServedOn *time.Time
	Page     int
	Limit    int
}

// DishFeedback aggregates reviews for one dish.
type DishFeedback struct {
	DishID     string
	Total      int64
	RatingSum  int64
	WantAgains int64
}

type MealReviewRepository interface {
	Create(ctx context.Context, review *models.MealReview) error
	List(ctx context.Context, hostelID string, filter ReviewFilter) ([]models.MealReview, int64, error)
	// FeedbackByDish aggregates every review; an empty hostelID means every hostel.
	FeedbackByDish(ctx context.Context, hostelID string) (map[string]DishFeedback, error)
}

type mealReviewRepository struct {
	db *gorm.DB
}

func NewMealReviewRepository(db *gorm.DB) MealReviewRepository {
	return &mealReviewRepository{db: db}
}

func (r *mealReviewRepository) Create(ctx context.Context, review *models.MealReview) error {
	return translate(r.db.WithContext(ctx).Omit("Dish").Create(review).Error)
}

func (r *mealReviewRepository) List(ctx context.Context, hostelID string, filter ReviewFilter) ([]models.MealReview, int64, error) {
	var reviews []models.MealReview
	var total int64

	scope := func(db *gorm.DB) *gorm.DB {
		db = db.Where("hostel_id = ?", hostelID)
		if filter.MealType != "" {
			db = db.Where("meal_type = ?", filter.MealType)
		}
		if filter.DishID != "" {
			db = db.Where("dish_id = ?", filter.DishID)
		}
		if filter.ServedOn != nil {
			day := filter.ServedOn.Truncate(24 * time.Hour)
			db = db.Where("served_on >= ? AND served_on < ?", day, day.Add(24*time.Hour))
		}
		return db
	}

	if err := r.db.WithContext(ctx).Model(&models.MealReview{}).Scopes(scope).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	err := r.db.WithContext(ctx).Scopes(scope).
		Preload("Dish").
		Order("created_at DESC").
		Limit(filter.Limit).
		Offset(offset).
		Find(&reviews).Error
	if err != nil {
		return nil, 0, err
	}

	return reviews, total, nil
}

func (r *mealReviewRepository) FeedbackByDish(ctx context.Context, hostelID string) (map[string]DishFeedback, error) {
	var rows []DishFeedback
	q := r.db.WithContext(ctx).Model(&models.MealReview{}).
		Select("dish_id, COUNT(*) AS total, COALESCE(SUM(rating), 0) AS rating_sum, " +
			"COALESCE(SUM(CASE WHEN want_again THEN 1 ELSE 0 END), 0) AS want_agains")
	if hostelID != "" {
		q = q.Where("hostel_id = ?", hostelID)
	}
	if err := q.Group("dish_id").Scan(&rows).Error; err != nil {
		return nil, err
	}

	out := make(map[string]DishFeedback, len(rows))
	for _, row := range rows {
		out[row.DishID] = row
	}
	return out, nil
}
