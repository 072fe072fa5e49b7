// Package discovery issues the categorized city search against the remote
// service and normalizes its payload. It performs no caching itself; the
// caller commits the returned set atomically.
package discovery

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"destinex/internal/insight"
	"destinex/internal/models"
	"destinex/pkg/utils"
)

type ClientInterface interface {
	// Search returns the categorized result set and the service's display
	// name for the searched city.
	Search(ctx context.Context, city string) (models.CategorySet, string, error)
}

type Client struct {
	baseURL    string
	httpClient *http.Client
	insights   insight.Provider
}

func NewClient(baseURL string, insights insight.Provider) ClientInterface {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 15 * time.Second},
		insights:   insights,
	}
}

type searchResponse struct {
	Success     bool           `json:"success"`
	City        string         `json:"city"`
	Attractions []models.Place `json:"attractions"`
	Hotels      []models.Place `json:"hotels"`
	Restaurants []models.Place `json:"restaurants"`
	Error       string         `json:"error"`
}

func (c *Client) Search(ctx context.Context, city string) (models.CategorySet, string, error) {
	city = strings.TrimSpace(city)
	if city == "" {
		return models.CategorySet{}, "", utils.ErrEmptyCity
	}

	endpoint := c.baseURL + "/search?city=" + url.QueryEscape(city)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return models.CategorySet{}, "", utils.ErrSearchUnavailable
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Printf("Error reaching discovery service: %v", err)
		return models.CategorySet{}, "", utils.ErrSearchUnavailable
	}
	defer resp.Body.Close()

	var payload searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		log.Printf("Error decoding discovery response: %v", err)
		return models.CategorySet{}, "", utils.ErrSearchUnavailable
	}

	if !payload.Success || resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return models.CategorySet{}, "", utils.NewServiceError(payload.Error)
	}

	set := models.CategorySet{
		Attractions: c.normalize(ctx, payload.Attractions, models.CategoryAttractions),
		Hotels:      c.normalize(ctx, payload.Hotels, models.CategoryHotels),
		Restaurants: c.normalize(ctx, payload.Restaurants, models.CategoryRestaurants),
	}

	displayCity := payload.City
	if displayCity == "" {
		displayCity = city
	}
	return set, displayCity, nil
}

// normalize guarantees non-nil sequences and backfills the display-only
// insight and price tier for records the service left bare. Enrichment
// failures degrade silently; a search never fails on them.
func (c *Client) normalize(ctx context.Context, places []models.Place, tag models.CategoryTag) []models.Place {
	if places == nil {
		return []models.Place{}
	}
	for i := range places {
		if places[i].AIInsight == "" && c.insights != nil {
			line, err := c.insights.Insight(ctx, places[i], tag)
			if err == nil {
				places[i].AIInsight = line
			}
		}
		if places[i].PriceRange == "" {
			rating := 0.0
			if places[i].Rating != nil {
				rating = *places[i].Rating
			}
			places[i].PriceRange = string(insight.EstimatePriceTier(places[i].Name, rating))
		}
	}
	return places
}
