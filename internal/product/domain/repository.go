package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, db *gorm.DB, product *Product) error
	FindByID(ctx context.Context, db *gorm.DB, id int64) (*Product, error)
	FindBySlug(ctx context.Context, db *gorm.DB, slug string) (*Product, error)
	FindAll(ctx context.Context, db *gorm.DB, filter Filter) ([]Product, error)
	Update(ctx context.Context, db *gorm.DB, product *Product) error
	UpdateDisplayOrder(ctx context.Context, db *gorm.DB, id int64, order int) error
	MaxDisplayOrder(ctx context.Context, db *gorm.DB, categoryID *int64) (int, error)
	Delete(ctx context.Context, db *gorm.DB, id int64) error
	// DetachCategory clears category_id on every product of a deleted
	// category so they fall back to the uncategorized section.
	DetachCategory(ctx context.Context, db *gorm.DB, categoryID int64) error
}

type Filter struct {
	ActiveOnly bool
	CategoryID *int64
}
