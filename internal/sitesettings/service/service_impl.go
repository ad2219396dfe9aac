package service

import (
	"context"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/fogonlabs/fogon/internal/cache"
	"github.com/fogonlabs/fogon/internal/clock"
	"github.com/fogonlabs/fogon/internal/config"
	"github.com/fogonlabs/fogon/internal/events"
	"github.com/fogonlabs/fogon/internal/sitesettings/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB       *gorm.DB
	Log      *zap.Logger
	GenID    *snowflake.Node
	Clock    clock.Clock
	Theme    *config.ThemeHolder
	Repo     domain.Repository
	Cache    *cache.SettingsCache
	Notifier events.Notifier
}

type Service struct {
	db       *gorm.DB
	log      *zap.Logger
	genID    *snowflake.Node
	clock    clock.Clock
	theme    *config.ThemeHolder
	repo     domain.Repository
	cache    *cache.SettingsCache
	notifier events.Notifier
}

func New(p Params) domain.Service {
	return &Service{
		db:       p.DB,
		log:      p.Log.Named("sitesettings.service"),
		genID:    p.GenID,
		clock:    p.Clock,
		theme:    p.Theme,
		repo:     p.Repo,
		cache:    p.Cache,
		notifier: p.Notifier,
	}
}

func (s *Service) Get(ctx context.Context) (*domain.Resolved, error) {
	if cached, ok := s.cache.Get(); ok {
		return &cached, nil
	}

	stored, err := s.repo.FindLatest(ctx, s.db)
	if err != nil {
		return nil, err
	}
	resolved := s.resolve(stored)
	s.cache.Set(resolved)
	return &resolved, nil
}

func (s *Service) GetRaw(ctx context.Context) (*domain.SiteSettings, error) {
	stored, err := s.repo.FindLatest(ctx, s.db)
	if err != nil {
		return nil, err
	}
	if stored == nil {
		return &domain.SiteSettings{}, nil
	}
	return stored, nil
}

func (s *Service) Update(ctx context.Context, req domain.UpdateRequest) (*domain.Resolved, error) {
	var updated *domain.SiteSettings

	err := s.db.Transaction(func(tx *gorm.DB) error {
		stored, err := s.repo.FindLatest(ctx, tx)
		if err != nil {
			return err
		}

		creating := stored == nil
		if creating {
			stored = &domain.SiteSettings{ID: s.genID.Generate().Int64()}
		}

		applyPatch(stored, req)
		now := s.clock.Now()
		stored.UpdatedAt = &now

		if creating {
			err = s.repo.Create(ctx, tx, stored)
		} else {
			err = s.repo.Update(ctx, tx, stored)
		}
		if err != nil {
			return err
		}
		updated = stored
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.cache.Invalidate()
	s.notifier.Notify("site_settings")
	s.log.Info("site settings updated")

	resolved := s.resolve(updated)
	return &resolved, nil
}

// applyPatch copies present fields onto the row. Empty strings clear
// the stored value so the field inherits the theme default again.
func applyPatch(row *domain.SiteSettings, req domain.UpdateRequest) {
	assign := func(dst **string, src *string) {
		if src == nil {
			return
		}
		trimmed := strings.TrimSpace(*src)
		if trimmed == "" {
			*dst = nil
			return
		}
		*dst = &trimmed
	}

	assign(&row.BrandName, req.BrandName)
	assign(&row.HeroTitle, req.HeroTitle)
	assign(&row.HeroSubtitle, req.HeroSubtitle)
	assign(&row.TopBarText, req.TopBarText)
	assign(&row.MetaPixelID, req.MetaPixelID)
	assign(&row.GoogleTagID, req.GoogleTagID)
	assign(&row.RappiURL, req.RappiURL)
	assign(&row.PedidosYaURL, req.PedidosYaURL)
	assign(&row.FacebookURL, req.FacebookURL)
	assign(&row.InstagramURL, req.InstagramURL)
	assign(&row.TikTokURL, req.TikTokURL)
	assign(&row.WhatsAppURL, req.WhatsAppURL)
	assign(&row.ContactEmail, req.ContactEmail)
	assign(&row.LogoURL, req.LogoURL)
	assign(&row.FaviconURL, req.FaviconURL)
	assign(&row.FooterLogoURL, req.FooterLogoURL)
	assign(&row.ClaimsBookLogoURL, req.ClaimsBookLogoURL)
	assign(&row.HeroImageURL, req.HeroImageURL)

	if req.Colors != nil {
		colors := datatypes.JSONMap{}
		for key, value := range req.Colors {
			value = strings.TrimSpace(value)
			if value != "" {
				colors[key] = value
			}
		}
		row.Colors = colors
	}
}

func (s *Service) resolve(stored *domain.SiteSettings) domain.Resolved {
	defaults := s.theme.Get()
	resolved := domain.Resolved{
		BrandName:    defaults.BrandName,
		HeroTitle:    defaults.HeroTitle,
		HeroSubtitle: defaults.HeroSubtitle,
		TopBarText:   defaults.TopBarText,
		Colors:       defaultColors(defaults),
	}
	if stored == nil {
		return resolved
	}

	pick := func(dst *string, src *string) {
		if src != nil && strings.TrimSpace(*src) != "" {
			*dst = *src
		}
	}

	pick(&resolved.BrandName, stored.BrandName)
	pick(&resolved.HeroTitle, stored.HeroTitle)
	pick(&resolved.HeroSubtitle, stored.HeroSubtitle)
	pick(&resolved.TopBarText, stored.TopBarText)
	pick(&resolved.MetaPixelID, stored.MetaPixelID)
	pick(&resolved.GoogleTagID, stored.GoogleTagID)
	pick(&resolved.RappiURL, stored.RappiURL)
	pick(&resolved.PedidosYaURL, stored.PedidosYaURL)
	pick(&resolved.FacebookURL, stored.FacebookURL)
	pick(&resolved.InstagramURL, stored.InstagramURL)
	pick(&resolved.TikTokURL, stored.TikTokURL)
	pick(&resolved.WhatsAppURL, stored.WhatsAppURL)
	pick(&resolved.ContactEmail, stored.ContactEmail)
	pick(&resolved.LogoURL, stored.LogoURL)
	pick(&resolved.FaviconURL, stored.FaviconURL)
	pick(&resolved.FooterLogoURL, stored.FooterLogoURL)
	pick(&resolved.ClaimsBookLogoURL, stored.ClaimsBookLogoURL)
	pick(&resolved.HeroImageURL, stored.HeroImageURL)

	for key, raw := range stored.Colors {
		if value, ok := raw.(string); ok && strings.TrimSpace(value) != "" {
			resolved.Colors[key] = value
		}
	}
	return resolved
}

func defaultColors(theme config.ThemeDefaults) map[string]string {
	return map[string]string{
		"topBarBg":            theme.TopBarBg,
		"topBarTextColor":     theme.TopBarTextColor,
		"headerBg":            theme.HeaderBg,
		"headerTextColor":     theme.HeaderTextColor,
		"pageBg":              theme.PageBg,
		"accentColor":         theme.AccentColor,
		"accentTextColor":     theme.AccentTextColor,
		"pillBg":              theme.PillBg,
		"pillTextColor":       theme.PillTextColor,
		"pillActiveBg":        theme.PillActiveBg,
		"pillActiveTextColor": theme.PillActiveTextColor,
		"footerBg":            theme.FooterBg,
		"footerTextColor":     theme.FooterTextColor,
	}
}
