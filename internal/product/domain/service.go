package domain

import (
	"context"
	"errors"
)

type Service interface {
	// ListActive returns storefront views with computed price labels.
	ListActive(ctx context.Context, categoryID *string) ([]View, error)
	ListAll(ctx context.Context) ([]Product, error)
	GetBySlug(ctx context.Context, slug string) (*View, error)
	Create(ctx context.Context, req CreateRequest) (*Product, error)
	Update(ctx context.Context, req UpdateRequest) (*Product, error)
	Move(ctx context.Context, id string, direction int) error
	Delete(ctx context.Context, id string) error
}

type CreateRequest struct {
	CategoryID      *string  `json:"category_id"`
	Slug            string   `json:"slug"`
	Name            string   `json:"name"`
	Description     *string  `json:"description"`
	ImageURL        *string  `json:"image_url"`
	PriceAmount     *float64 `json:"price_amount"`
	PriceDisplay    *string  `json:"price_display"`
	DiscountPercent *float64 `json:"discount_percent"`
	Active          *bool    `json:"is_active"`
}

type UpdateRequest struct {
	ID              string   `json:"-"`
	CategoryID      *string  `json:"category_id"`
	ClearCategory   bool     `json:"clear_category"`
	Slug            *string  `json:"slug"`
	Name            *string  `json:"name"`
	Description     *string  `json:"description"`
	ImageURL        *string  `json:"image_url"`
	PriceAmount     *float64 `json:"price_amount"`
	ClearPrice      bool     `json:"clear_price"`
	PriceDisplay    *string  `json:"price_display"`
	DiscountPercent *float64 `json:"discount_percent"`
	ClearDiscount   bool     `json:"clear_discount"`
	Active          *bool    `json:"is_active"`
}

var (
	ErrInvalidName     = errors.New("invalid_name")
	ErrInvalidSlug     = errors.New("invalid_slug")
	ErrSlugTaken       = errors.New("slug_taken")
	ErrNotFound        = errors.New("not_found")
	ErrInvalidID       = errors.New("invalid_id")
	ErrInvalidMove     = errors.New("invalid_move")
	ErrInvalidPrice    = errors.New("invalid_price")
	ErrInvalidDiscount = errors.New("invalid_discount")
	ErrUnknownCategory = errors.New("unknown_category")
)
