package migration

import (
	"github.com/tokopilih/tokopilih/internal/clock"
	"github.com/tokopilih/tokopilih/internal/config"
	"github.com/tokopilih/tokopilih/internal/seed"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Module("migrations",
	fx.Invoke(func(conn *gorm.DB, cfg config.Config, clk clock.Clock) error {
		if err := Run(conn); err != nil {
			return err
		}

		if cfg.SeedSampleData {
			return seed.EnsureSampleCatalog(conn, clk)
		}
		return nil
	}),
)
