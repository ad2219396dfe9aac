package service

import (
	"context"
	"math"
	"strings"

	"github.com/bwmarrin/snowflake"
	categorydomain "github.com/fogonlabs/fogon/internal/category/domain"
	"github.com/fogonlabs/fogon/internal/clock"
	"github.com/fogonlabs/fogon/internal/events"
	"github.com/fogonlabs/fogon/internal/product/domain"
	"github.com/fogonlabs/fogon/internal/validate"
	"github.com/fogonlabs/fogon/pkg/db"
	"github.com/gosimple/slug"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB         *gorm.DB
	Log        *zap.Logger
	GenID      *snowflake.Node
	Clock      clock.Clock
	Repo       domain.Repository
	Categories categorydomain.Repository
	Notifier   events.Notifier
}

type Service struct {
	db         *gorm.DB
	log        *zap.Logger
	genID      *snowflake.Node
	clock      clock.Clock
	repo       domain.Repository
	categories categorydomain.Repository
	notifier   events.Notifier
}

func New(p Params) domain.Service {
	return &Service{
		db:         p.DB,
		log:        p.Log.Named("product.service"),
		genID:      p.GenID,
		clock:      p.Clock,
		repo:       p.Repo,
		categories: p.Categories,
		notifier:   p.Notifier,
	}
}

func (s *Service) ListActive(ctx context.Context, categoryID *string) ([]domain.View, error) {
	filter := domain.Filter{ActiveOnly: true}
	if categoryID != nil {
		id, err := snowflake.ParseString(strings.TrimSpace(*categoryID))
		if err != nil {
			return nil, domain.ErrUnknownCategory
		}
		raw := id.Int64()
		filter.CategoryID = &raw
	}

	products, err := s.repo.FindAll(ctx, s.db, filter)
	if err != nil {
		return nil, err
	}

	views := make([]domain.View, 0, len(products))
	for _, product := range products {
		views = append(views, domain.NewView(product))
	}
	return views, nil
}

func (s *Service) ListAll(ctx context.Context) ([]domain.Product, error) {
	return s.repo.FindAll(ctx, s.db, domain.Filter{})
}

func (s *Service) GetBySlug(ctx context.Context, rawSlug string) (*domain.View, error) {
	product, err := s.repo.FindBySlug(ctx, s.db, strings.TrimSpace(rawSlug))
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	view := domain.NewView(*product)
	return &view, nil
}

func (s *Service) Create(ctx context.Context, req domain.CreateRequest) (*domain.Product, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, domain.ErrInvalidName
	}

	productSlug, err := normalizeSlug(req.Slug, name)
	if err != nil {
		return nil, err
	}
	if err := validatePrice(req.PriceAmount); err != nil {
		return nil, err
	}
	if err := validateDiscount(req.DiscountPercent); err != nil {
		return nil, err
	}

	categoryID, err := s.resolveCategory(ctx, req.CategoryID)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	product := &domain.Product{
		ID:              s.genID.Generate().Int64(),
		CategoryID:      categoryID,
		Slug:            productSlug,
		Name:            name,
		Description:     trimOptional(req.Description),
		ImageURL:        trimOptional(req.ImageURL),
		PriceAmount:     req.PriceAmount,
		PriceDisplay:    trimOptional(req.PriceDisplay),
		DiscountPercent: req.DiscountPercent,
		Active:          true,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if req.Active != nil {
		product.Active = *req.Active
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		maxOrder, err := s.repo.MaxDisplayOrder(ctx, tx, product.CategoryID)
		if err != nil {
			return err
		}
		product.DisplayOrder = maxOrder + 1
		return s.repo.Create(ctx, tx, product)
	})
	if err != nil {
		if db.IsDuplicateKeyErr(err) {
			return nil, domain.ErrSlugTaken
		}
		return nil, err
	}

	s.notifier.Notify("products")
	s.log.Info("product created", zap.String("slug", product.Slug))
	return product, nil
}

func (s *Service) Update(ctx context.Context, req domain.UpdateRequest) (*domain.Product, error) {
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
		productSlug, err := normalizeSlug(*req.Slug, updated.Name)
		if err != nil {
			return nil, err
		}
		updated.Slug = productSlug
	}
	if req.Description != nil {
		updated.Description = trimOptional(req.Description)
	}
	if req.ImageURL != nil {
		updated.ImageURL = trimOptional(req.ImageURL)
	}

	switch {
	case req.ClearCategory:
		updated.CategoryID = nil
	case req.CategoryID != nil:
		categoryID, err := s.resolveCategory(ctx, req.CategoryID)
		if err != nil {
			return nil, err
		}
		updated.CategoryID = categoryID
	}

	switch {
	case req.ClearPrice:
		updated.PriceAmount = nil
	case req.PriceAmount != nil:
		if err := validatePrice(req.PriceAmount); err != nil {
			return nil, err
		}
		updated.PriceAmount = req.PriceAmount
	}
	if req.PriceDisplay != nil {
		updated.PriceDisplay = trimOptional(req.PriceDisplay)
	}
	switch {
	case req.ClearDiscount:
		updated.DiscountPercent = nil
	case req.DiscountPercent != nil:
		if err := validateDiscount(req.DiscountPercent); err != nil {
			return nil, err
		}
		updated.DiscountPercent = req.DiscountPercent
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

	s.notifier.Notify("products")
	return &updated, nil
}

// Move swaps display_order with the neighbor sharing the same category,
// all inside one transaction.
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
		current, err := s.repo.FindByID(ctx, tx, id.Int64())
		if err != nil {
			return err
		}
		if current == nil {
			return domain.ErrNotFound
		}

		siblings, err := s.repo.FindAll(ctx, tx, domain.Filter{CategoryID: current.CategoryID})
		if err != nil {
			return err
		}
		if current.CategoryID == nil {
			uncategorized := siblings[:0]
			for _, sibling := range siblings {
				if sibling.CategoryID == nil {
					uncategorized = append(uncategorized, sibling)
				}
			}
			siblings = uncategorized
		}

		index := -1
		for i := range siblings {
			if siblings[i].ID == current.ID {
				index = i
				break
			}
		}
		if index == -1 {
			return domain.ErrNotFound
		}

		neighbor := index + direction
		if neighbor < 0 || neighbor >= len(siblings) {
			return nil
		}

		a, b := siblings[index], siblings[neighbor]
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
		s.notifier.Notify("products")
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

	if err := s.repo.Delete(ctx, s.db, id.Int64()); err != nil {
		return err
	}

	s.notifier.Notify("products")
	s.log.Info("product deleted", zap.String("slug", existing.Slug))
	return nil
}

func (s *Service) resolveCategory(ctx context.Context, raw *string) (*int64, error) {
	if raw == nil || strings.TrimSpace(*raw) == "" {
		return nil, nil
	}
	id, err := snowflake.ParseString(strings.TrimSpace(*raw))
	if err != nil {
		return nil, domain.ErrUnknownCategory
	}
	category, err := s.categories.FindByID(ctx, s.db, id.Int64())
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrUnknownCategory
	}
	raw64 := id.Int64()
	return &raw64, nil
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

func validatePrice(amount *float64) error {
	if amount == nil {
		return nil
	}
	if math.IsNaN(*amount) || math.IsInf(*amount, 0) || *amount < 0 {
		return domain.ErrInvalidPrice
	}
	return nil
}

func validateDiscount(percent *float64) error {
	if percent == nil {
		return nil
	}
	if math.IsNaN(*percent) || *percent < 0 || *percent > 100 {
		return domain.ErrInvalidDiscount
	}
	return nil
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
