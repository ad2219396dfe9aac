package product

import (
	"github.com/fogonlabs/fogon/internal/product/repository"
	"github.com/fogonlabs/fogon/internal/product/service"
	"go.uber.org/fx"
)

var Module = fx.Module("product.service",
	fx.Provide(
		repository.Provide,
		service.New,
	),
)
