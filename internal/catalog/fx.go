package catalog

import (
	"github.com/tokopilih/tokopilih/internal/catalog/repository"
	"github.com/tokopilih/tokopilih/internal/catalog/service"
	"go.uber.org/fx"
)

var Module = fx.Module("catalog.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
