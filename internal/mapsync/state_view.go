package mapsync

import "sync"

// Marker is one rendered map point as the state view records it.
type Marker struct {
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
}

// Bounds is the last viewport fit request, if any.
type Bounds struct {
	MinLat, MinLon float64
	MaxLat, MaxLon float64
	Padding        int
}

// StateView is the headless MapView: it records markers, center and the last
// bounds fit instead of drawing them. The HTTP shell serves its state to
// whatever actually renders the map, and tests assert against it.
type StateView struct {
	mu        sync.Mutex
	markers   []Marker
	centerLat float64
	centerLon float64
	centered  bool
	bounds    *Bounds
}

func NewStateView() *StateView {
	return &StateView{}
}

func (v *StateView) SetCenter(lat, lon float64) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.centerLat, v.centerLon = lat, lon
	v.centered = true
}

func (v *StateView) AddMarker(name string, lat, lon float64) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.markers = append(v.markers, Marker{Name: name, Lat: lat, Lon: lon})
}

func (v *StateView) ClearMarkers() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.markers = nil
}

func (v *StateView) FitBounds(minLat, minLon, maxLat, maxLon float64, padding int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.bounds = &Bounds{MinLat: minLat, MinLon: minLon, MaxLat: maxLat, MaxLon: maxLon, Padding: padding}
}

func (v *StateView) Markers() []Marker {
	v.mu.Lock()
	defer v.mu.Unlock()
	out := make([]Marker, len(v.markers))
	copy(out, v.markers)
	return out
}

func (v *StateView) Center() (lat, lon float64, ok bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.centerLat, v.centerLon, v.centered
}

func (v *StateView) LastBounds() (Bounds, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.bounds == nil {
		return Bounds{}, false
	}
	return *v.bounds, true
}
