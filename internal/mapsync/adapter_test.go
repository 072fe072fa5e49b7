package mapsync

import (
	"testing"

	"destinex/internal/models"
)

func f(v float64) *float64 { return &v }

func TestSyncReplacesMarkerSet(t *testing.T) {
	view := NewStateView()
	a := NewAdapter(view)

	a.Sync([]models.Place{
		{Name: "Fort", Lat: f(15.5), Lon: f(73.8)},
		{Name: "Beach", Lat: f(15.6), Lon: f(73.7)},
	})
	if got := len(view.Markers()); got != 2 {
		t.Fatalf("expected 2 markers, got %d", got)
	}

	count := a.Sync([]models.Place{
		{Name: "Palace", Lat: f(28.6), Lon: f(77.2)},
	})
	if count != 1 || len(view.Markers()) != 1 {
		t.Fatalf("markers must not accumulate across syncs: count=%d markers=%d", count, len(view.Markers()))
	}
	if view.Markers()[0].Name != "Palace" {
		t.Fatalf("expected only the new marker, got %v", view.Markers())
	}
}

func TestSyncSkipsPlacesWithoutCoordinates(t *testing.T) {
	view := NewStateView()
	a := NewAdapter(view)

	count := a.Sync([]models.Place{
		{Name: "Mystery Spot"},
		{Name: "Half", Lat: f(10)},
		{Name: "Fort", Lat: f(15.5), Lon: f(73.8)},
	})
	if count != 1 {
		t.Fatalf("expected 1 marker, got %d", count)
	}
	if a.MarkerCount() != 1 {
		t.Fatalf("MarkerCount disagrees with sync result")
	}
}

func TestSyncFitsBoundsWithPadding(t *testing.T) {
	view := NewStateView()
	a := NewAdapter(view)

	a.Sync([]models.Place{
		{Name: "A", Lat: f(10), Lon: f(20)},
		{Name: "B", Lat: f(12), Lon: f(18)},
	})

	b, ok := view.LastBounds()
	if !ok {
		t.Fatalf("expected a bounds fit after sync with markers")
	}
	if b.MinLat != 10 || b.MaxLat != 12 || b.MinLon != 18 || b.MaxLon != 20 {
		t.Fatalf("wrong bounds: %+v", b)
	}
	if b.Padding != 50 {
		t.Fatalf("expected fixed padding 50, got %d", b.Padding)
	}
}

func TestEmptySyncLeavesViewportUnchanged(t *testing.T) {
	view := NewStateView()
	a := NewAdapter(view)

	a.Sync([]models.Place{{Name: "A", Lat: f(10), Lon: f(20)}})
	before, _ := view.LastBounds()

	a.Sync(nil)
	if len(view.Markers()) != 0 {
		t.Fatalf("expected markers cleared")
	}
	after, ok := view.LastBounds()
	if !ok || after != before {
		t.Fatalf("empty sync must not move the viewport")
	}
}
