package repository

import (
	"context"
	"time"

	"hostelhub/internal/microservices/http-api/models"

	"gorm.io/gorm"
)

type MessMenuRepository interface {
	// Create inserts the menu and its items; ErrDuplicate when (hostel, week) exists.
	Create(ctx context.Context, menu *models.MessMenu) error
	ExistsForWeek(ctx context.Context, hostelID string, week int) (bool, error)
	LatestDraft(ctx context.Context, hostelID string) (*models.MessMenu, error)
	LatestPublished(ctx context.Context, hostelID string) (*models.MessMenu, error)
	PublishedByWeek(ctx context.Context, hostelID string, week int) (*models.MessMenu, error)
	// Publish flips the latest draft (optionally for week) to published.
	Publish(ctx context.Context, hostelID string, week int, at time.Time) (*models.MessMenu, error)
}

type messMenuRepository struct {
	db *gorm.DB
}

func NewMessMenuRepository(db *gorm.DB) MessMenuRepository {
	return &messMenuRepository{db: db}
}

func (r *messMenuRepository) Create(ctx context.Context, menu *models.MessMenu) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Items").Create(menu).Error; err != nil {
			return err
		}
		if len(menu.Items) == 0 {
			return nil
		}
		for i := range menu.Items {
			menu.Items[i].MenuID = menu.ID
		}
		return tx.Omit("Dish").CreateInBatches(menu.Items, 100).Error
	})
	return translate(err)
}

func (r *messMenuRepository) ExistsForWeek(ctx context.Context, hostelID string, week int) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.MessMenu{}).
		Where("hostel_id = ? AND week = ?", hostelID, week).
		Count(&count).Error
	return count > 0, err
}

func (r *messMenuRepository) withItems(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("slot, position")
		}).
		Preload("Items.Dish")
}

func (r *messMenuRepository) LatestDraft(ctx context.Context, hostelID string) (*models.MessMenu, error) {
	var menu models.MessMenu
	err := r.withItems(ctx).
		Where("hostel_id = ? AND published = ?", hostelID, false).
		Order("generated_at DESC").
		First(&menu).Error
	if err != nil {
		return nil, err
	}
	return &menu, nil
}

func (r *messMenuRepository) LatestPublished(ctx context.Context, hostelID string) (*models.MessMenu, error) {
	var menu models.MessMenu
	err := r.withItems(ctx).
		Where("hostel_id = ? AND published = ?", hostelID, true).
		Order("generated_at DESC").
		First(&menu).Error
	if err != nil {
		return nil, err
	}
	return &menu, nil
}

func (r *messMenuRepository) PublishedByWeek(ctx context.Context, hostelID string, week int) (*models.MessMenu, error) {
	var menu models.MessMenu
	err := r.withItems(ctx).
		Where("hostel_id = ? AND week = ? AND published = ?", hostelID, week, true).
		First(&menu).Error
	if err != nil {
		return nil, err
	}
	return &menu, nil
}

func (r *messMenuRepository) Publish(ctx context.Context, hostelID string, week int, at time.Time) (*models.MessMenu, error) {
	var menu models.MessMenu
	q := r.db.WithContext(ctx).Where("hostel_id = ? AND published = ?", hostelID, false)
	if week > 0 {
		q = q.Where("week = ?", week)
	}
	if err := q.Order("generated_at DESC").First(&menu).Error; err != nil {
		return nil, err
	}

	// the published filter keeps a concurrent publish from flipping twice
	result := r.db.WithContext(ctx).Model(&models.MessMenu{}).
		Where("id = ? AND published = ?", menu.ID, false).
		Updates(map[string]any{"published": true, "published_at": at})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrNotFound
	}

	menu.Published = true
	menu.PublishedAt = &at
	return &menu, nil
}
