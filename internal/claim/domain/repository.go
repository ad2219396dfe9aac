package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	// Create inserts the claim and assigns the next sheet-number
	// sequence inside the caller's transaction.
	Create(ctx context.Context, db *gorm.DB, claim *Claim) error
	FindByID(ctx context.Context, db *gorm.DB, id int64) (*Claim, error)
	FindAll(ctx context.Context, db *gorm.DB) ([]Claim, error)
	Update(ctx context.Context, db *gorm.DB, claim *Claim) error
}
