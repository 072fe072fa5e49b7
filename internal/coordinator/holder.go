package coordinator

import "sync"

// LatestRenderer is the headless card renderer: it keeps the most recent
// snapshot pushed by the coordinator so the HTTP shell can serve it.
type LatestRenderer struct {
	mu       sync.Mutex
	snap     Snapshot
	rendered bool
}

func NewLatestRenderer() *LatestRenderer {
	return &LatestRenderer{}
}

func (r *LatestRenderer) Render(snap Snapshot) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.snap = snap
	r.rendered = true
}

func (r *LatestRenderer) Latest() (Snapshot, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.snap, r.rendered
}
