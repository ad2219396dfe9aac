package repository

import (
	"context"

	"github.com/fogonlabs/fogon/internal/product/domain"
	"gorm.io/gorm"
)

type repository struct{}

func Provide() domain.Repository {
	return &repository{}
}

func (r *repository) Create(ctx context.Context, db *gorm.DB, product *domain.Product) error {
	return db.WithContext(ctx).Create(product).Error
}

func (r *repository) FindByID(ctx context.Context, db *gorm.DB, id int64) (*domain.Product, error) {
	var product domain.Product
	err := db.WithContext(ctx).
		Where("id = ?", id).
		Limit(1).
		Find(&product).Error
	if err != nil {
		return nil, err
	}
	if product.ID == 0 {
		return nil, nil
	}
	return &product, nil
}

func (r *repository) FindBySlug(ctx context.Context, db *gorm.DB, slug string) (*domain.Product, error) {
	var product domain.Product
	err := db.WithContext(ctx).
		Where("slug = ?", slug).
		Limit(1).
		Find(&product).Error
	if err != nil {
		return nil, err
	}
	if product.ID == 0 {
		return nil, nil
	}
	return &product, nil
}

func (r *repository) FindAll(ctx context.Context, db *gorm.DB, filter domain.Filter) ([]domain.Product, error) {
	query := db.WithContext(ctx).Model(&domain.Product{})
	if filter.ActiveOnly {
		query = query.Where("is_active = ?", true)
	}
	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}

	var products []domain.Product
	err := query.
		Order("display_order ASC").
		Order("name ASC").
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

func (r *repository) Update(ctx context.Context, db *gorm.DB, product *domain.Product) error {
	return db.WithContext(ctx).
		Model(&domain.Product{}).
		Where("id = ?", product.ID).
		Select(
			"category_id",
			"slug",
			"name",
			"description",
			"image_url",
			"price_amount",
			"price_display",
			"discount_percent",
			"is_active",
			"updated_at",
		).
		Updates(product).Error
}

func (r *repository) UpdateDisplayOrder(ctx context.Context, db *gorm.DB, id int64, order int) error {
	return db.WithContext(ctx).
		Model(&domain.Product{}).
		Where("id = ?", id).
		Update("display_order", order).Error
}

func (r *repository) MaxDisplayOrder(ctx context.Context, db *gorm.DB, categoryID *int64) (int, error) {
	query := db.WithContext(ctx).
		Model(&domain.Product{}).
		Select("COALESCE(MAX(display_order), 0)")
	if categoryID != nil {
		query = query.Where("category_id = ?", *categoryID)
	}

	var max int
	if err := query.Scan(&max).Error; err != nil {
		return 0, err
	}
	return max, nil
}

func (r *repository) Delete(ctx context.Context, db *gorm.DB, id int64) error {
	return db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&domain.Product{}).Error
}

func (r *repository) DetachCategory(ctx context.Context, db *gorm.DB, categoryID int64) error {
	return db.WithContext(ctx).
		Model(&domain.Product{}).
		Where("category_id = ?", categoryID).
		Update("category_id", nil).Error
}
