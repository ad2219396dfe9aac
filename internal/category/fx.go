package category

import (
	"github.com/fogonlabs/fogon/internal/category/repository"
	"github.com/fogonlabs/fogon/internal/category/service"
	"go.uber.org/fx"
)

var Module = fx.Module("category.service",
	fx.Provide(
		repository.Provide,
		service.New,
	),
)
