package store_fx

import (
	"context"

	"go.uber.org/fx"

	"destinex/internal/infra"
	"destinex/pkg/store"
)

var Module = fx.Provide(
	provideStore, provideRecall)

func provideStore(lc fx.Lifecycle) *store.Store {
	kv := infra.InitStore()
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			infra.CloseStore(kv)
			return nil
		},
	})
	return kv
}

func provideRecall(kv *store.Store) *store.CityRecall {
	return store.NewCityRecall(kv)
}
