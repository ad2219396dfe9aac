package service

import (
	"context"
	"strings"

	claimdomain "github.com/fogonlabs/fogon/internal/claim/domain"
	"github.com/fogonlabs/fogon/internal/config"
	"github.com/fogonlabs/fogon/internal/sitesettings/domain"
)

// snapshotSource resolves the provider identity stamped onto claims:
// the brand name comes from the live site settings, the legal fields
// from deployment config.
type snapshotSource struct {
	cfg      config.Config
	settings domain.Service
}

func NewSnapshotSource(cfg config.Config, settings domain.Service) claimdomain.SnapshotSource {
	return &snapshotSource{cfg: cfg, settings: settings}
}

func (s *snapshotSource) Snapshot(ctx context.Context) (claimdomain.ProviderSnapshot, error) {
	resolved, err := s.settings.Get(ctx)
	if err != nil {
		return claimdomain.ProviderSnapshot{}, err
	}

	snapshot := claimdomain.ProviderSnapshot{
		Name:    resolved.BrandName,
		RUC:     s.cfg.ProviderRUC,
		Address: s.cfg.ProviderAddress,
	}
	if code := strings.TrimSpace(s.cfg.ProviderEstCode); code != "" {
		snapshot.EstCode = &code
	}
	return snapshot, nil
}
