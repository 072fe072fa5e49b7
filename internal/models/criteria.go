package models

// PriceTier is the normalized price grouping. The wire format carries tiered
// currency glyphs; both the glyph and the tier name are accepted on input.
type PriceTier string

const (
	PriceTierAll    PriceTier = "all"
	PriceTierLow    PriceTier = "low"
	PriceTierMedium PriceTier = "medium"
	PriceTierHigh   PriceTier = "high"
)

var tierGlyphs = map[PriceTier]string{
	PriceTierLow:    "₹",
	PriceTierMedium: "₹₹",
	PriceTierHigh:   "₹₹₹",
}

// Glyph renders the tier as the currency symbol string shown on cards.
func (t PriceTier) Glyph() string {
	return tierGlyphs[t]
}

// NormalizePriceTier maps a raw price_range value (glyph or tier name) to a
// tier. Unrecognized values report false; the filter excludes those places
// whenever a tier filter is active.
func NormalizePriceTier(raw string) (PriceTier, bool) {
	switch raw {
	case "₹", string(PriceTierLow):
		return PriceTierLow, true
	case "₹₹", string(PriceTierMedium):
		return PriceTierMedium, true
	case "₹₹₹", string(PriceTierHigh):
		return PriceTierHigh, true
	}
	return "", false
}

// FilterCriteria is the current set of filter constraints. Nil pointers and
// PriceTierAll mean "no constraint". Pure value type.
type FilterCriteria struct {
	MinRating   *float64  `json:"min_rating,omitempty"`
	PriceTier   PriceTier `json:"price_tier"`
	MaxDistance *float64  `json:"max_distance,omitempty"`
}

func DefaultCriteria() FilterCriteria {
	return FilterCriteria{PriceTier: PriceTierAll}
}

// CriteriaPatch is a partial criteria update. A set pointer replaces that
// constraint; a negative numeric bound clears it.
type CriteriaPatch struct {
	MinRating   *float64
	PriceTier   *PriceTier
	MaxDistance *float64
}

// Merge applies the patch to a copy of c and returns it.
func (c FilterCriteria) Merge(p CriteriaPatch) FilterCriteria {
	if p.MinRating != nil {
		if *p.MinRating < 0 {
			c.MinRating = nil
		} else {
			v := *p.MinRating
			c.MinRating = &v
		}
	}
	if p.PriceTier != nil {
		c.PriceTier = *p.PriceTier
	}
	if p.MaxDistance != nil {
		if *p.MaxDistance < 0 {
			c.MaxDistance = nil
		} else {
			v := *p.MaxDistance
			c.MaxDistance = &v
		}
	}
	return c
}
