package repository

import (
	"context"

	"github.com/fogonlabs/fogon/internal/category/domain"
	"gorm.io/gorm"
)

type repository struct{}

func Provide() domain.Repository {
	return &repository{}
}

func (r *repository) Create(ctx context.Context, db *gorm.DB, category *domain.Category) error {
	return db.WithContext(ctx).Create(category).Error
}

func (r *repository) FindByID(ctx context.Context, db *gorm.DB, id int64) (*domain.Category, error) {
	var category domain.Category
	err := db.WithContext(ctx).
		Where("id = ?", id).
		Limit(1).
		Find(&category).Error
	if err != nil {
		return nil, err
	}
	if category.ID == 0 {
		return nil, nil
	}
	return &category, nil
}

func (r *repository) FindBySlug(ctx context.Context, db *gorm.DB, slug string) (*domain.Category, error) {
	var category domain.Category
	err := db.WithContext(ctx).
		Where("slug = ?", slug).
		Limit(1).
		Find(&category).Error
	if err != nil {
		return nil, err
	}
	if category.ID == 0 {
		return nil, nil
	}
	return &category, nil
}

func (r *repository) FindAll(ctx context.Context, db *gorm.DB, activeOnly bool) ([]domain.Category, error) {
	query := db.WithContext(ctx).Model(&domain.Category{})
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	var categories []domain.Category
	err := query.
		Order("display_order ASC").
		Order("name ASC").
		Find(&categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *repository) Update(ctx context.Context, db *gorm.DB, category *domain.Category) error {
	return db.WithContext(ctx).
		Model(&domain.Category{}).
		Where("id = ?", category.ID).
		Select("slug", "name", "description", "image_url", "is_active", "updated_at").
		Updates(category).Error
}

func (r *repository) UpdateDisplayOrder(ctx context.Context, db *gorm.DB, id int64, order int) error {
	return db.WithContext(ctx).
		Model(&domain.Category{}).
		Where("id = ?", id).
		Update("display_order", order).Error
}

func (r *repository) MaxDisplayOrder(ctx context.Context, db *gorm.DB) (int, error) {
	var max int
	err := db.WithContext(ctx).
		Model(&domain.Category{}).
		Select("COALESCE(MAX(display_order), 0)").
		Scan(&max).Error
	if err != nil {
		return 0, err
	}
	return max, nil
}

func (r *repository) Delete(ctx context.Context, db *gorm.DB, id int64) error {
	return db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&domain.Category{}).Error
}
