package main

import (
	"github.com/bwmarrin/snowflake"
	"github.com/fogonlabs/fogon/internal/clock"
	"github.com/fogonlabs/fogon/internal/config"
	"github.com/fogonlabs/fogon/internal/logger"
	"github.com/fogonlabs/fogon/internal/migration"
	"github.com/fogonlabs/fogon/internal/scheduler"
	"github.com/fogonlabs/fogon/internal/server"
	"github.com/fogonlabs/fogon/pkg/db"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		config.Module,
		logger.Module,
		fx.Provide(RegisterSnowflake),
		fx.Provide(config.NewThemeHolder),
		db.Module,
		clock.Module,
		migration.Module,
		server.Module,
		scheduler.Module,
	)

	app.Run()
}

func RegisterSnowflake() *snowflake.Node {
	node, err := snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}
	return node
}
