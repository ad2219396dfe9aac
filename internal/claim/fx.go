package claim

import (
	"github.com/fogonlabs/fogon/internal/claim/repository"
	"github.com/fogonlabs/fogon/internal/claim/service"
	"go.uber.org/fx"
)

var Module = fx.Module("claim.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
