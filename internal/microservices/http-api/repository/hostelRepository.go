package repository

import (
	"context"

	"hostelhub/internal/microservices/http-api/models"

	"gorm.io/gorm"
)

type HostelRepository interface {
	Create(ctx context.Context, hostel *models.Hostel) error
	FindByDomain(ctx context.Context, domain string) (*models.Hostel, error)
}

type hostelRepository struct {
	db *gorm.DB
}

func NewHostelRepository(db *gorm.DB) HostelRepository {
	return &hostelRepository{db: db}
}

func (r *hostelRepository) Create(ctx context.Context, hostel *models.Hostel) error {
	return translate(r.db.WithContext(ctx).Create(hostel).Error)
}

func (r *hostelRepository) FindByDomain(ctx context.Context, domain string) (*models.Hostel, error) {
	var hostel models.Hostel
	if err := r.db.WithContext(ctx).Where("domain = ?", domain).First(&hostel).Error; err != nil {
		return nil, err
	}
	return &hostel, nil
}
