package insight

import (
	"context"
	"strings"
	"testing"

	"destinex/internal/models"
)

func f(v float64) *float64 { return &v }

func TestInsightDeterministicPerPlace(t *testing.T) {
	p := NewRuleBased()
	place := models.Place{Name: "Fort Aguada"}

	first, err := p.Insight(context.Background(), place, models.CategoryAttractions)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, _ := p.Insight(context.Background(), place, models.CategoryAttractions)
	if first != second {
		t.Fatalf("same place produced different insights: %q vs %q", first, second)
	}
	if first == "" {
		t.Fatalf("expected a non-empty insight")
	}
}

func TestInsightRatingSuffix(t *testing.T) {
	p := NewRuleBased()

	high, _ := p.Insight(context.Background(), models.Place{Name: "Baga Beach", Rating: f(4.7)}, models.CategoryAttractions)
	if !strings.HasSuffix(high, "Highly rated by visitors!") {
		t.Fatalf("expected high-rating suffix, got %q", high)
	}

	mid, _ := p.Insight(context.Background(), models.Place{Name: "Baga Beach", Rating: f(4.1)}, models.CategoryAttractions)
	if !strings.HasSuffix(mid, "Well-loved by travelers.") {
		t.Fatalf("expected mid-rating suffix, got %q", mid)
	}

	none, _ := p.Insight(context.Background(), models.Place{Name: "Baga Beach"}, models.CategoryAttractions)
	if strings.HasSuffix(none, "visitors!") || strings.HasSuffix(none, "travelers.") {
		t.Fatalf("unrated place must not get a rating suffix: %q", none)
	}
}

func TestEstimatePriceTierKeywords(t *testing.T) {
	cases := []struct {
		name   string
		rating float64
		want   models.PriceTier
	}{
		{"Taj Palace Resort", 0, models.PriceTierHigh},
		{"Backpacker Hostel", 0, models.PriceTierLow},
		{"Standard Comfort Inn", 0, models.PriceTierMedium},
		{"Plain Name", 4.6, models.PriceTierHigh},
		{"Plain Name", 4.1, models.PriceTierMedium},
		{"Plain Name", 3.0, models.PriceTierLow},
	}
	for _, tc := range cases {
		if got := EstimatePriceTier(tc.name, tc.rating); got != tc.want {
			t.Fatalf("EstimatePriceTier(%q, %v) = %q, want %q", tc.name, tc.rating, got, tc.want)
		}
	}
}

func TestInsightCategoryClassification(t *testing.T) {
	p := NewRuleBased()

	cases := []struct {
		place     string
		category  models.CategoryTag
		templates []string
		kind      string
	}{
		{"Agra Fort", models.CategoryAttractions, attractionInsights["historic"], "historic"},
		{"Lodhi Garden", models.CategoryAttractions, attractionInsights["nature"], "nature"},
		{"City Aquarium", models.CategoryAttractions, attractionInsights["entertainment"], "entertainment"},
		{"Boutique Stay Inn", models.CategoryHotels, hotelInsights["boutique"], "boutique"},
		{"Zostel Hostel", models.CategoryHotels, hotelInsights["budget"], "budget"},
		{"Juhu Street Stall", models.CategoryRestaurants, restaurantInsights["street_food"], "street_food"},
		{"Riverside Bistro", models.CategoryRestaurants, restaurantInsights["casual"], "casual"},
	}
	for _, tc := range cases {
		line, err := p.Insight(context.Background(), models.Place{Name: tc.place}, tc.category)
		if err != nil {
			t.Fatalf("unexpected error for %q: %v", tc.place, err)
		}
		found := false
		for _, tmpl := range tc.templates {
			if strings.HasPrefix(line, tmpl) {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("%q should classify as %s, got %q", tc.place, tc.kind, line)
		}
	}
}
