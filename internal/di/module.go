package di

import (
	"go.uber.org/fx"

	"github.com/perkstack/loyalty/internal/app"
	"github.com/perkstack/loyalty/internal/config"
	"github.com/perkstack/loyalty/internal/logger"
	"github.com/perkstack/loyalty/internal/pkg/auth"
	"github.com/perkstack/loyalty/internal/server/http/handlers"
	"github.com/perkstack/loyalty/internal/server/http/router"
	"github.com/perkstack/loyalty/internal/storage/postgres"
	"github.com/perkstack/loyalty/internal/usecase"
)

// Module assembles the full application graph.
func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		postgres.Module,
		usecase.Module,
		fx.Provide(func(f *app.LoyaltyFacade) handlers.LoyaltyFacade { return f }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
