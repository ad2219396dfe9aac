package storage

import (
	"github.com/fogonlabs/fogon/internal/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Module("storage",
	fx.Provide(func(cfg config.Config, log *zap.Logger) (Store, error) {
		return NewLocal(cfg.StorageDir, cfg.StorageBaseURL, log)
	}),
)
