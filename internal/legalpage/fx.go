package legalpage

import (
	"github.com/fogonlabs/fogon/internal/legalpage/repository"
	"github.com/fogonlabs/fogon/internal/legalpage/service"
	"go.uber.org/fx"
)

var Module = fx.Module("legalpage.service",
	fx.Provide(
		repository.Provide,
		service.New,
	),
)
