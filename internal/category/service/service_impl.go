package service

import (
	"context"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/fogonlabs/fogon/internal/category/domain"
	"github.com/fogonlabs/fogon/internal/clock"
	"github.com/fogonlabs/fogon/internal/events"
	productdomain "github.com/fogonlabs/fogon/internal/product/domain"
	"github.com/fogonlabs/fogon/internal/validate"
	"github.com/fogonlabs/fogon/pkg/db"
	"github.com/gosimple/slug"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB       *gorm.DB
	Log      *zap.Logger
	GenID    *snowflake.Node
	Clock    clock.Clock
	Repo     domain.Repository
	Products productdomain.Repository
	Notifier events.Notifier
}

type Service struct {
	db       *gorm.DB
	log      *zap.Logger
	genID    *snowflake.Node
	clock    clock.Clock
	repo     domain.Repository
	products productdomain.Repository
	notifier events.Notifier
}

func New(p Params) domain.Service {
	return &Service{
		db:       p.DB,
		log:      p.Log.Named("category.service"),
		genID:    p.GenID,
		clock:    p.Clock,
		repo:     p.Repo,
		products: p.Products,
		notifier: p.Notifier,
	}
}

func (s *Service) ListActive(ctx context.Context) ([]domain.Category, error) {
	return s.repo.FindAll(ctx, s.db, true)
}

func (s *Service) ListAll(ctx context.Context) ([]domain.Category, error) {
	return s.repo.FindAll(ctx, s.db, false)
}

func (s *Service) GetBySlug(ctx context.Context, rawSlug string) (*domain.Category, error) {
	category, err := s.repo.FindBySlug(ctx, s.db, strings.TrimSpace(rawSlug))
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	return category, nil
}

func (s *Service) Create(ctx context.Context, req domain.CreateRequest) (*domain.Category, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, domain.ErrInvalidName
	}

	categorySlug, err := normalizeSlug(req.Slug, name)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	category := &domain.Category{
		ID:          s.genID.Generate().Int64(),
		Slug:        categorySlug,
		Name:        name,
		Description: trimOptional(req.Description),
		ImageURL:    trimOptional(req.ImageURL),
		Active:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if req.Active != nil {
		category.Active = *req.Active
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		maxOrder, err := s.repo.MaxDisplayOrder(ctx, tx)
		if err != nil {
			return err
		}
		category.DisplayOrder = maxOrder + 1
		return s.repo.Create(ctx, tx, category)
	})
	if err != nil {
		if db.IsDuplicateKeyErr(err) {
			return nil, domain.ErrSlugTaken
		}
		return nil, err
	}

	s.notifier.Notify("categories")
	s.log.Info("category created", zap.String("slug", category.Slug))
	return category, nil
}

func (s *Service) Update(ctx context.Context, req domain.UpdateRequest) (*domain.Category, error) {
	id, err := snowflake.ParseString(strings.TrimSpace(req.ID))
	if err != nil {
		return nil, domain.ErrInvalidID
	}

	existing, err := s.repo.FindByID(ctx, s.db, id.Int64())
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domain.ErrNotFound
	}

	updated := *existing
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, domain.ErrInvalidName
		}
		updated.Name = name
	}
	if req.Slug != nil {
		categorySlug, err := normalizeSlug(*req.Slug, updated.Name)
		if err != nil {
			return nil, err
		}
		updated.Slug = categorySlug
	}
	if req.Description != nil {
		updated.Description = trimOptional(req.Description)
	}
	if req.ImageURL != nil {
		updated.ImageURL = trimOptional(req.ImageURL)
	}
	if req.Active != nil {
		updated.Active = *req.Active
	}
	updated.UpdatedAt = s.clock.Now()

	if err := s.repo.Update(ctx, s.db, &updated); err != nil {
		if db.IsDuplicateKeyErr(err) {
			return nil, domain.ErrSlugTaken
		}
		return nil, err
	}

	s.notifier.Notify("categories")
	return &updated, nil
}

// Move swaps display_order with the neighbor inside one transaction, so
// a crash between the two writes can never leave duplicate positions.
func (s *Service) Move(ctx context.Context, rawID string, direction int) error {
	if direction != -1 && direction != 1 {
		return domain.ErrInvalidMove
	}

	id, err := snowflake.ParseString(strings.TrimSpace(rawID))
	if err != nil {
		return domain.ErrInvalidID
	}

	var moved bool
	err = s.db.Transaction(func(tx *gorm.DB) error {
		categories, err := s.repo.FindAll(ctx, tx, false)
		if err != nil {
			return err
		}

		index := -1
		for i := range categories {
			if categories[i].ID == id.Int64() {
				index = i
				break
			}
		}
		if index == -1 {
			return domain.ErrNotFound
		}

		neighbor := index + direction
		if neighbor < 0 || neighbor >= len(categories) {
			// Already at the edge.
			return nil
		}

		a, b := categories[index], categories[neighbor]
		if err := s.repo.UpdateDisplayOrder(ctx, tx, a.ID, b.DisplayOrder); err != nil {
			return err
		}
		if err := s.repo.UpdateDisplayOrder(ctx, tx, b.ID, a.DisplayOrder); err != nil {
			return err
		}
		moved = true
		return nil
	})
	if err != nil {
		return err
	}

	if moved {
		s.notifier.Notify("categories")
	}
	return nil
}

func (s *Service) Delete(ctx context.Context, rawID string) error {
	id, err := snowflake.ParseString(strings.TrimSpace(rawID))
	if err != nil {
		return domain.ErrInvalidID
	}

	existing, err := s.repo.FindByID(ctx, s.db, id.Int64())
	if err != nil {
		return err
	}
	if existing == nil {
		return domain.ErrNotFound
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		// Products of a removed category fall back to uncategorized
		// instead of disappearing from the menu.
		if err := s.products.DetachCategory(ctx, tx, id.Int64()); err != nil {
			return err
		}
		return s.repo.Delete(ctx, tx, id.Int64())
	})
	if err != nil {
		return err
	}

	s.notifier.Notify("categories")
	s.notifier.Notify("products")
	s.log.Info("category deleted", zap.String("slug", existing.Slug))
	return nil
}

func normalizeSlug(raw, name string) (string, error) {
	candidate := strings.TrimSpace(raw)
	if candidate == "" {
		candidate = slug.Make(name)
	}
	if !validate.ValidSlug(candidate) {
		return "", domain.ErrInvalidSlug
	}
	return candidate, nil
}

func trimOptional(raw *string) *string {
	if raw == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*raw)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
