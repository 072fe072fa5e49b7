// Package insight backfills the display-only ai_insight and price_range
// fields for places the discovery service returns without them. The default
// provider is rule-based: keyword classification plus a name-seeded template
// pick, so the same place always gets the same line.
package insight

import (
	"context"
	"hash/fnv"
	"strings"

	"destinex/internal/models"
)

// Provider generates a one-line insight for a place within a category.
type Provider interface {
	Insight(ctx context.Context, place models.Place, category models.CategoryTag) (string, error)
}

var luxuryKeywords = []string{
	"luxury", "premium", "5-star", "five star", "resort", "palace",
	"heritage", "boutique", "fine dining", "rooftop", "spa", "golf",
	"marriott", "taj", "hyatt", "hilton", "oberoi", "itc", "leela",
	"expensive", "high-end", "exclusive", "private", "suite",
}

var budgetKeywords = []string{
	"budget", "cheap", "economy", "hostel", "backpacker", "dhaba",
	"street food", "cafe", "inexpensive", "affordable", "low-cost",
	"zostel", "free", "complimentary", "no charge",
}

var moderateKeywords = []string{
	"mid-range", "moderate", "3-star", "three star", "comfortable",
	"decent", "reasonable", "standard", "regular", "casual",
}

var attractionInsights = map[string][]string{
	"historic": {
		"Rich in history and culture. Best visited with a guide to fully appreciate the stories.",
		"A testament to the region's glorious past. Don't miss the architectural details.",
		"Step back in time and experience the heritage of this magnificent site.",
	},
	"nature": {
		"Perfect escape from city life. Visit early morning for the best experience.",
		"Breathtaking natural beauty. Ideal for photography enthusiasts.",
		"A peaceful retreat surrounded by nature's finest offerings.",
	},
	"religious": {
		"Spiritual ambiance that brings peace and tranquility. Dress modestly.",
		"Important pilgrimage site with deep cultural significance.",
		"Experience the divine atmosphere and architectural grandeur.",
	},
	"entertainment": {
		"Great place for fun and entertainment with family and friends.",
		"Vibrant atmosphere with plenty of activities for all ages.",
		"Perfect spot to unwind and enjoy leisure time.",
	},
	"default": {
		"Popular destination loved by locals and tourists alike.",
		"Worth a visit when exploring the city. Check reviews for best times.",
		"A must-see attraction that captures the essence of the city.",
	},
}

var hotelInsights = map[string][]string{
	"luxury": {
		"World-class amenities and impeccable service for a memorable stay.",
		"Indulge in luxury with stunning views and premium facilities.",
		"Perfect blend of comfort and elegance for discerning travelers.",
	},
	"boutique": {
		"Charming property with unique character and personalized service.",
		"Intimate setting with attention to every detail.",
		"Experience local hospitality in a cozy, well-appointed space.",
	},
	"budget": {
		"Great value for money with all essential amenities.",
		"Clean and comfortable accommodation without breaking the bank.",
		"Perfect for budget travelers and backpackers.",
	},
	"default": {
		"Convenient location with good amenities for a comfortable stay.",
		"Well-rated property offering reliable hospitality.",
		"Good choice for both business and leisure travelers.",
	},
}

var restaurantInsights = map[string][]string{
	"fine_dining": {
		"Exquisite culinary experience with impeccable presentation and service.",
		"Perfect for special occasions with an elegant ambiance.",
		"Mouthwatering dishes crafted by skilled chefs using premium ingredients.",
	},
	"street_food": {
		"Authentic local flavors that shouldn't be missed.",
		"Popular among locals - a true taste of the city's culinary culture.",
		"Delicious and affordable - perfect for food adventurers.",
	},
	"casual": {
		"Relaxed atmosphere with delicious food at reasonable prices.",
		"Great spot for a casual meal with friends and family.",
		"Consistently good food with friendly service.",
	},
	"default": {
		"Well-loved eatery serving tasty dishes in a welcoming setting.",
		"Good food, good vibes - a reliable choice for any meal.",
		"Recommended by locals for its quality and consistency.",
	},
}

type RuleBased struct{}

func NewRuleBased() Provider {
	return &RuleBased{}
}

func (r *RuleBased) Insight(_ context.Context, place models.Place, category models.CategoryTag) (string, error) {
	name := strings.ToLower(place.Name)

	var templates []string
	switch category {
	case models.CategoryAttractions:
		templates = pickTemplates(attractionInsights, classifyAttraction(name))
	case models.CategoryHotels:
		templates = pickTemplates(hotelInsights, classifyHotel(name))
	case models.CategoryRestaurants:
		templates = pickTemplates(restaurantInsights, classifyRestaurant(name))
	default:
		return "A great place to visit and explore.", nil
	}

	line := templates[nameSeed(place.Name)%uint32(len(templates))]

	if place.Rating != nil {
		switch {
		case *place.Rating >= 4.5:
			line += " Highly rated by visitors!"
		case *place.Rating >= 4.0:
			line += " Well-loved by travelers."
		}
	}
	return line, nil
}

// EstimatePriceTier classifies a place into a price tier from name keywords,
// falling back to the rating when no keyword matches.
func EstimatePriceTier(name string, rating float64) models.PriceTier {
	text := strings.ToLower(name)

	if containsAny(text, luxuryKeywords) {
		return models.PriceTierHigh
	}
	if containsAny(text, budgetKeywords) {
		return models.PriceTierLow
	}
	if containsAny(text, moderateKeywords) {
		return models.PriceTierMedium
	}

	switch {
	case rating >= 4.5:
		return models.PriceTierHigh
	case rating >= 4.0:
		return models.PriceTierMedium
	default:
		return models.PriceTierLow
	}
}

func classifyAttraction(name string) string {
	switch {
	case containsAny(name, []string{"fort", "palace", "museum", "monument", "tomb", "ruins", "heritage"}):
		return "historic"
	case containsAny(name, []string{"park", "garden", "beach", "lake", "falls", "hill", "mountain"}):
		return "nature"
	case containsAny(name, []string{"temple", "church", "mosque", "gurdwara", "shrine", "basilica", "cathedral"}):
		return "religious"
	case containsAny(name, []string{"amusement", "entertainment", "zoo", "aquarium", "theater", "cinema"}):
		return "entertainment"
	}
	return "default"
}

func classifyHotel(name string) string {
	switch {
	case containsAny(name, []string{"luxury", "premium", "resort", "palace", "spa"}):
		return "luxury"
	case containsAny(name, []string{"boutique", "heritage", "charming", "unique"}):
		return "boutique"
	case containsAny(name, []string{"hostel", "budget", "economy", "lodge"}):
		return "budget"
	}
	return "default"
}

func classifyRestaurant(name string) string {
	switch {
	case containsAny(name, []string{"fine dining", "gourmet", "luxury"}):
		return "fine_dining"
	case containsAny(name, []string{"street", "stall", "dhaba", "food court"}):
		return "street_food"
	case containsAny(name, []string{"cafe", "casual", "bistro", "diner"}):
		return "casual"
	}
	return "default"
}

func pickTemplates(byKind map[string][]string, kind string) []string {
	if templates, ok := byKind[kind]; ok {
		return templates
	}
	return byKind["default"]
}

func containsAny(text string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(text, k) {
			return true
		}
	}
	return false
}

func nameSeed(name string) uint32 {
	h := fnv.New32a()
	h.Write([]byte(name))
	return h.Sum32()
}
