package auth

import (
	"github.com/fogonlabs/fogon/internal/auth/repository"
	"github.com/fogonlabs/fogon/internal/auth/service"
	"github.com/fogonlabs/fogon/internal/auth/session"
	"go.uber.org/fx"
)

var Module = fx.Module("auth.service",
	fx.Provide(
		repository.Provide,
		service.New,
		session.NewManager,
	),
)
