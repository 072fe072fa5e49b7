package infra

import (
	"log"
	"os"

	"destinex/pkg/store"
)

// InitStore opens the single-file key-value store backing sessions and
// last-search recall. The path comes from STORE_PATH, defaulting next to the
// binary.
func InitStore() *store.Store {
	path := os.Getenv("STORE_PATH")
	if path == "" {
		path = "destinex.db"
	}

	kv, err := store.Open(path)
	if err != nil {
		log.Printf("Error opening store at %s: %v", path, err)
		log.Fatal("Error opening local store")
	}
	return kv
}

func CloseStore(kv *store.Store) {
	if err := kv.Close(); err != nil {
		log.Printf("Error closing store: %v", err)
	} else {
		log.Println("Local store closed successfully")
	}
}
