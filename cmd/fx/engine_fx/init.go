package engine_fx

import (
	"go.uber.org/fx"

	"destinex/internal/cache"
	"destinex/internal/coordinator"
	"destinex/internal/discovery"
	"destinex/internal/mapsync"
	"destinex/pkg/store"
)

var Module = fx.Provide(
	cache.NewResultCache,
	mapsync.NewStateView,
	provideMapAdapter,
	coordinator.NewLatestRenderer,
	provideCoordinator)

func provideMapAdapter(view *mapsync.StateView) *mapsync.Adapter {
	return mapsync.NewAdapter(view)
}

func provideCoordinator(
	client discovery.ClientInterface,
	results *cache.ResultCache,
	maps *mapsync.Adapter,
	renderer *coordinator.LatestRenderer,
	recall *store.CityRecall) *coordinator.Coordinator {

	return coordinator.New(client, results, maps, renderer, recall)
}
