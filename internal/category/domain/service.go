package domain

import (
	"context"
	"errors"
)

type Service interface {
	ListActive(ctx context.Context) ([]Category, error)
	ListAll(ctx context.Context) ([]Category, error)
	GetBySlug(ctx context.Context, slug string) (*Category, error)
	Create(ctx context.Context, req CreateRequest) (*Category, error)
	Update(ctx context.Context, req UpdateRequest) (*Category, error)
	// Move swaps display order with the adjacent sibling in the given
	// direction (-1 up, +1 down), atomically.
	Move(ctx context.Context, id string, direction int) error
	Delete(ctx context.Context, id string) error
}

type CreateRequest struct {
	Slug        string  `json:"slug"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	ImageURL    *string `json:"image_url"`
	Active      *bool   `json:"is_active"`
}

type UpdateRequest struct {
	ID          string  `json:"-"`
	Slug        *string `json:"slug"`
	Name        *string `json:"name"`
	Description *string `json:"description"`
	ImageURL    *string `json:"image_url"`
	Active      *bool   `json:"is_active"`
}

var (
	ErrInvalidName = errors.New("invalid_name")
	ErrInvalidSlug = errors.New("invalid_slug")
	ErrSlugTaken   = errors.New("slug_taken")
	ErrNotFound    = errors.New("not_found")
	ErrInvalidID   = errors.New("invalid_id")
	ErrInvalidMove = errors.New("invalid_move")
)
