package response_models

import (
	"destinex/internal/coordinator"
	"destinex/internal/models"
)

// displayRatingDefault is shown when a place arrives without a rating. It is
// display-only: the filter still treats the rating as missing.
const displayRatingDefault = 4.0

// PlaceCard is one rendered result card.
type PlaceCard struct {
	Name       string   `json:"name"`
	Rating     float64  `json:"rating"`
	PriceGlyph string   `json:"price_glyph"`
	Distance   *float64 `json:"distance,omitempty"`
	AIInsight  string   `json:"ai_insight,omitempty"`
	Lat        *float64 `json:"lat,omitempty"`
	Lon        *float64 `json:"lon,omitempty"`
}

type ViewResponse struct {
	Phase          string                `json:"phase"`
	City           string                `json:"city,omitempty"`
	ActiveCategory string                `json:"active_category,omitempty"`
	Criteria       models.FilterCriteria `json:"criteria"`
	Cards          []PlaceCard           `json:"cards"`
	CountText      string                `json:"count_text"`
	Title          string                `json:"title,omitempty"`
	Error          string                `json:"error,omitempty"`
	MarkerCount    int                   `json:"marker_count"`
}

func NewViewResponse(snap coordinator.Snapshot) ViewResponse {
	cards := make([]PlaceCard, 0, len(snap.Places))
	for _, p := range snap.Places {
		cards = append(cards, newPlaceCard(p))
	}
	return ViewResponse{
		Phase:          string(snap.Phase),
		City:           snap.City,
		ActiveCategory: string(snap.ActiveCategory),
		Criteria:       snap.Criteria,
		Cards:          cards,
		CountText:      snap.CountText,
		Title:          snap.Title,
		Error:          snap.ErrorMessage,
		MarkerCount:    snap.MarkerCount,
	}
}

func newPlaceCard(p models.Place) PlaceCard {
	rating := displayRatingDefault
	if p.Rating != nil {
		rating = *p.Rating
	}

	glyph := p.PriceRange
	if tier, ok := models.NormalizePriceTier(p.PriceRange); ok {
		glyph = tier.Glyph()
	}

	return PlaceCard{
		Name:       p.Name,
		Rating:     rating,
		PriceGlyph: glyph,
		Distance:   p.Distance,
		AIInsight:  p.AIInsight,
		Lat:        p.Lat,
		Lon:        p.Lon,
	}
}
