package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, db *gorm.DB, category *Category) error
	FindByID(ctx context.Context, db *gorm.DB, id int64) (*Category, error)
	FindBySlug(ctx context.Context, db *gorm.DB, slug string) (*Category, error)
	// FindAll lists by display order with name as tiebreak; activeOnly
	// filters to is_active rows.
	FindAll(ctx context.Context, db *gorm.DB, activeOnly bool) ([]Category, error)
	Update(ctx context.Context, db *gorm.DB, category *Category) error
	UpdateDisplayOrder(ctx context.Context, db *gorm.DB, id int64, order int) error
	MaxDisplayOrder(ctx context.Context, db *gorm.DB) (int, error)
	Delete(ctx context.Context, db *gorm.DB, id int64) error
}
