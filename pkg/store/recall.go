package store

import "log"

const lastCityKey = "last_city"

// CityRecall persists the most recent successful search term so the entry
// page can offer it back. Failures are logged and swallowed; recall is a
// convenience, never truth.
type CityRecall struct {
	store *Store
}

func NewCityRecall(store *Store) *CityRecall {
	return &CityRecall{store: store}
}

func (r *CityRecall) Remember(city string) {
	if err := r.store.Put(lastCityKey, []byte(city)); err != nil {
		log.Printf("Error remembering last city: %v", err)
	}
}

func (r *CityRecall) Recall() (string, bool) {
	value, found, err := r.store.Get(lastCityKey)
	if err != nil {
		log.Printf("Error reading last city: %v", err)
		return "", false
	}
	if !found || len(value) == 0 {
		return "", false
	}
	return string(value), true
}
