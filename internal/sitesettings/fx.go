package sitesettings

import (
	"github.com/fogonlabs/fogon/internal/cache"
	"github.com/fogonlabs/fogon/internal/sitesettings/repository"
	"github.com/fogonlabs/fogon/internal/sitesettings/service"
	"go.uber.org/fx"
)

var Module = fx.Module("sitesettings.service",
	fx.Provide(
		cache.NewSettingsCache,
		repository.Provide,
		service.New,
		service.NewSnapshotSource,
	),
)
