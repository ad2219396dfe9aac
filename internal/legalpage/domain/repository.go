package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	FindBySlug(ctx context.Context, db *gorm.DB, slug string) (*LegalPage, error)
	FindAll(ctx context.Context, db *gorm.DB) ([]LegalPage, error)
	Upsert(ctx context.Context, db *gorm.DB, page *LegalPage) error
	Delete(ctx context.Context, db *gorm.DB, slug string) error
}
