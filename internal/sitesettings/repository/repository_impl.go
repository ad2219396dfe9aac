package repository

import (
	"context"

	"github.com/fogonlabs/fogon/internal/sitesettings/domain"
	"gorm.io/gorm"
)

type repository struct{}

func Provide() domain.Repository {
	return &repository{}
}

func (r *repository) FindLatest(ctx context.Context, db *gorm.DB) (*domain.SiteSettings, error) {
	var settings domain.SiteSettings
	err := db.WithContext(ctx).
		Order("updated_at DESC").
		Limit(1).
		Find(&settings).Error
	if err != nil {
		return nil, err
	}
	if settings.ID == 0 {
		return nil, nil
	}
	return &settings, nil
}

func (r *repository) Create(ctx context.Context, db *gorm.DB, settings *domain.SiteSettings) error {
	return db.WithContext(ctx).Create(settings).Error
}

func (r *repository) Update(ctx context.Context, db *gorm.DB, settings *domain.SiteSettings) error {
	return db.WithContext(ctx).
		Where("id = ?", settings.ID).
		Save(settings).Error
}
