package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	// FindLatest returns the most recently updated row, or nil when
	// the table is empty.
	FindLatest(ctx context.Context, db *gorm.DB) (*SiteSettings, error)
	Create(ctx context.Context, db *gorm.DB, settings *SiteSettings) error
	Update(ctx context.Context, db *gorm.DB, settings *SiteSettings) error
}
