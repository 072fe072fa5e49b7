package models

// CategoryTag identifies one of the three place groupings a search returns.
type CategoryTag string

const (
	CategoryAttractions CategoryTag = "attractions"
	CategoryHotels      CategoryTag = "hotels"
	CategoryRestaurants CategoryTag = "restaurants"
)

// AllCategories returns the tags in display priority order. The map-centering
// policy walks them in this order.
func AllCategories() []CategoryTag {
	return []CategoryTag{CategoryAttractions, CategoryHotels, CategoryRestaurants}
}

func (t CategoryTag) Valid() bool {
	switch t {
	case CategoryAttractions, CategoryHotels, CategoryRestaurants:
		return true
	}
	return false
}

// Place is one discoverable entity. Numeric fields are pointers because the
// wire format leaves them optional and the filter rules distinguish a missing
// value from zero.
type Place struct {
	Name       string   `json:"name"`
	Lat        *float64 `json:"lat,omitempty"`
	Lon        *float64 `json:"lon,omitempty"`
	Rating     *float64 `json:"rating,omitempty"`
	PriceRange string   `json:"price_range,omitempty"`
	Distance   *float64 `json:"distance,omitempty"`
	AIInsight  string   `json:"ai_insight,omitempty"`
}

// HasCoordinates reports whether the place can be placed on the map.
func (p Place) HasCoordinates() bool {
	return p.Lat != nil && p.Lon != nil
}

// CategorySet holds the three category sequences of one search. A set is
// produced whole per search and committed whole; it is never patched
// category by category.
type CategorySet struct {
	Attractions []Place `json:"attractions"`
	Hotels      []Place `json:"hotels"`
	Restaurants []Place `json:"restaurants"`
}

func (s CategorySet) ByTag(tag CategoryTag) []Place {
	switch tag {
	case CategoryAttractions:
		return s.Attractions
	case CategoryHotels:
		return s.Hotels
	case CategoryRestaurants:
		return s.Restaurants
	}
	return nil
}

// FirstWithCoordinates returns the first coordinate-bearing place across all
// categories in priority order, for establishing the map center after a
// successful search.
func (s CategorySet) FirstWithCoordinates() (Place, bool) {
	for _, tag := range AllCategories() {
		for _, p := range s.ByTag(tag) {
			if p.HasCoordinates() {
				return p, true
			}
		}
	}
	return Place{}, false
}
