package repository

import (
	"context"

	"github.com/fogonlabs/fogon/internal/legalpage/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type repository struct{}

func Provide() domain.Repository {
	return &repository{}
}

func (r *repository) FindBySlug(ctx context.Context, db *gorm.DB, slug string) (*domain.LegalPage, error) {
	var page domain.LegalPage
	err := db.WithContext(ctx).
		Where("slug = ?", slug).
		Limit(1).
		Find(&page).Error
	if err != nil {
		return nil, err
	}
	if page.ID == 0 {
		return nil, nil
	}
	return &page, nil
}

func (r *repository) FindAll(ctx context.Context, db *gorm.DB) ([]domain.LegalPage, error) {
	var pages []domain.LegalPage
	err := db.WithContext(ctx).
		Order("slug ASC").
		Find(&pages).Error
	if err != nil {
		return nil, err
	}
	return pages, nil
}

func (r *repository) Upsert(ctx context.Context, db *gorm.DB, page *domain.LegalPage) error {
	return db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "slug"}},
			DoUpdates: clause.AssignmentColumns([]string{"title", "body", "updated_at"}),
		}).
		Create(page).Error
}

func (r *repository) Delete(ctx context.Context, db *gorm.DB, slug string) error {
	return db.WithContext(ctx).
		Where("slug = ?", slug).
		Delete(&domain.LegalPage{}).Error
}
