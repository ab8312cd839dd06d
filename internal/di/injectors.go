//go:build wireinject
// +build wireinject

package di

import (
	wire "github.com/google/wire"
	"swiped/internal"
	"swiped/internal/controllers"
	"swiped/internal/importer"
	"swiped/internal/persistence"
	"swiped/internal/providers"
	"swiped/internal/services"
	"swiped/internal/structures"
)

func InitApp(cfg *structures.CliFlags) (*internal.App, error) {

	wire.Build(
		providers.NewConfigProvider,
		providers.NewLogProvider,
		wire.Bind(new(providers.ProfileCounter), new(services.ProfileServiceInterface)),
		providers.NewMetricsProvider,
		providers.NewCacheMetricsProvider,

		importer.NewExtractor,
		services.NewProfileService,
		persistence.NewZstdCompressor,
		persistence.NewFileManager,
		persistence.NewScheduler,
		controllers.NewApiController,
		controllers.NewHealthController,
		internal.InitRoutes,
		internal.NewApp,
	)

	return nil, nil
}
