package domain

import (
	"context"
	"errors"
)

type Service interface {
	GetBySlug(ctx context.Context, slug string) (*LegalPage, error)
	List(ctx context.Context) ([]LegalPage, error)
	// Put creates or replaces the page at the given slug.
	Put(ctx context.Context, req PutRequest) (*LegalPage, error)
	Delete(ctx context.Context, slug string) error
}

type PutRequest struct {
	Slug  string `json:"-"`
	Title string `json:"title"`
	Body  string `json:"body"`
}

var (
	ErrNotFound     = errors.New("not_found")
	ErrInvalidSlug  = errors.New("invalid_slug")
	ErrInvalidTitle = errors.New("invalid_title")
)
