package main

import (
	"github.com/tokopilih/tokopilih/internal/cache"
	"github.com/tokopilih/tokopilih/internal/catalog"
	"github.com/tokopilih/tokopilih/internal/clock"
	"github.com/tokopilih/tokopilih/internal/config"
	"github.com/tokopilih/tokopilih/internal/migration"
	"github.com/tokopilih/tokopilih/internal/observability"
	"github.com/tokopilih/tokopilih/internal/ratelimit"
	"github.com/tokopilih/tokopilih/internal/server"
	"github.com/tokopilih/tokopilih/pkg/db"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		config.Module,
		observability.Module,
		db.Module,
		clock.Module,
		migration.Module,

		cache.Module,
		ratelimit.Module,
		catalog.Module,
		server.Module,
	)
	app.Run()
}
