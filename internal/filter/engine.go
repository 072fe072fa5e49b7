// Package filter is the pure filtering core: a deterministic function from a
// place sequence and criteria to the retained subsequence. Order is
// preserved; nothing here re-sorts or mutates.
package filter

import "destinex/internal/models"

// Apply returns the places matching every active criterion, in their input
// order. All predicates are conjunctive.
func Apply(places []models.Place, criteria models.FilterCriteria) []models.Place {
	out := make([]models.Place, 0, len(places))
	for _, p := range places {
		if matches(p, criteria) {
			out = append(out, p)
		}
	}
	return out
}

func matches(p models.Place, c models.FilterCriteria) bool {
	// A place with no rating fails an active min-rating filter, while a place
	// with no distance passes any max-distance bound. The asymmetry is the
	// observed product behavior, kept on purpose.
	if c.MinRating != nil {
		if p.Rating == nil || *p.Rating < *c.MinRating {
			return false
		}
	}

	if c.PriceTier != "" && c.PriceTier != models.PriceTierAll {
		tier, ok := models.NormalizePriceTier(p.PriceRange)
		if !ok || tier != c.PriceTier {
			return false
		}
	}

	if c.MaxDistance != nil {
		distance := 0.0
		if p.Distance != nil {
			distance = *p.Distance
		}
		if distance > *c.MaxDistance {
			return false
		}
	}

	return true
}
