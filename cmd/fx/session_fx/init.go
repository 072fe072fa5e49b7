package session_fx

import (
	"log"
	"os"

	"go.uber.org/fx"

	"destinex/internal/session"
	"destinex/pkg/store"
)

var Module = fx.Provide(
	provideSessionStore)

func provideSessionStore(kv *store.Store) session.StoreInterface {
	secret := os.Getenv("SESSION_SECRET")
	if secret == "" {
		log.Println("SESSION_SECRET not set, using development secret")
		secret = "destinex-dev-secret"
	}
	return session.NewStore(kv, []byte(secret))
}
