package service

import (
	"context"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/fogonlabs/fogon/internal/clock"
	"github.com/fogonlabs/fogon/internal/events"
	"github.com/fogonlabs/fogon/internal/legalpage/domain"
	"github.com/fogonlabs/fogon/internal/validate"
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
	Notifier events.Notifier
}

type Service struct {
	db       *gorm.DB
	log      *zap.Logger
	genID    *snowflake.Node
	clock    clock.Clock
	repo     domain.Repository
	notifier events.Notifier
}

func New(p Params) domain.Service {
	return &Service{
		db:       p.DB,
		log:      p.Log.Named("legalpage.service"),
		genID:    p.GenID,
		clock:    p.Clock,
		repo:     p.Repo,
		notifier: p.Notifier,
	}
}

func (s *Service) GetBySlug(ctx context.Context, slug string) (*domain.LegalPage, error) {
	page, err := s.repo.FindBySlug(ctx, s.db, strings.TrimSpace(slug))
	if err != nil {
		return nil, err
	}
	if page == nil {
		return nil, domain.ErrNotFound
	}
	return page, nil
}

func (s *Service) List(ctx context.Context) ([]domain.LegalPage, error) {
	return s.repo.FindAll(ctx, s.db)
}

func (s *Service) Put(ctx context.Context, req domain.PutRequest) (*domain.LegalPage, error) {
	slug := strings.TrimSpace(req.Slug)
	if !validate.ValidSlug(slug) {
		return nil, domain.ErrInvalidSlug
	}
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, domain.ErrInvalidTitle
	}

	page := &domain.LegalPage{
		ID:        s.genID.Generate().Int64(),
		Slug:      slug,
		Title:     title,
		Body:      req.Body,
		UpdatedAt: s.clock.Now(),
	}
	if err := s.repo.Upsert(ctx, s.db, page); err != nil {
		return nil, err
	}

	s.notifier.Notify("legal_pages")
	s.log.Info("legal page saved", zap.String("slug", slug))
	return page, nil
}

func (s *Service) Delete(ctx context.Context, slug string) error {
	slug = strings.TrimSpace(slug)

	existing, err := s.repo.FindBySlug(ctx, s.db, slug)
	if err != nil {
		return err
	}
	if existing == nil {
		return domain.ErrNotFound
	}

	if err := s.repo.Delete(ctx, s.db, slug); err != nil {
		return err
	}

	s.notifier.Notify("legal_pages")
	return nil
}
