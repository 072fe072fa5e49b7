// Package mapsync translates a filtered result list into marker operations
// against the map collaborator. It decides which points the map shows, never
// how they are drawn.
package mapsync

import "destinex/internal/models"

// MapView is the rendering collaborator. Implementations draw; the adapter
// only bookkeeps.
type MapView interface {
	SetCenter(lat, lon float64)
	AddMarker(name string, lat, lon float64)
	ClearMarkers()
	FitBounds(minLat, minLon, maxLat, maxLon float64, padding int)
}

// boundsPadding is the fixed viewport margin applied on every bounds fit.
const boundsPadding = 50

type Adapter struct {
	view        MapView
	markerCount int
}

func NewAdapter(view MapView) *Adapter {
	return &Adapter{view: view}
}

// Sync replaces the entire marker set with one marker per coordinate-bearing
// place, then fits the viewport around them. With zero eligible places the
// markers are cleared and the viewport is left alone. Returns the marker
// count.
func (a *Adapter) Sync(places []models.Place) int {
	a.view.ClearMarkers()

	var minLat, minLon, maxLat, maxLon float64
	count := 0
	for _, p := range places {
		if !p.HasCoordinates() {
			continue
		}
		lat, lon := *p.Lat, *p.Lon
		a.view.AddMarker(p.Name, lat, lon)
		if count == 0 {
			minLat, maxLat = lat, lat
			minLon, maxLon = lon, lon
		} else {
			if lat < minLat {
				minLat = lat
			}
			if lat > maxLat {
				maxLat = lat
			}
			if lon < minLon {
				minLon = lon
			}
			if lon > maxLon {
				maxLon = lon
			}
		}
		count++
	}

	if count >= 1 {
		a.view.FitBounds(minLat, minLon, maxLat, maxLon, boundsPadding)
	}

	a.markerCount = count
	return count
}

// Center re-establishes the map center. Only the search-success path calls
// this; category and filter changes never re-center.
func (a *Adapter) Center(lat, lon float64) {
	a.view.SetCenter(lat, lon)
}

func (a *Adapter) MarkerCount() int {
	return a.markerCount
}
