// Package coordinator is the orchestration core of the engine. It owns the
// view state, reacts to user events, pulls from the result cache, runs the
// filter engine and pushes the minimal downstream updates so the card list,
// the counts and the map never disagree about what is currently shown.
package coordinator

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/google/uuid"

	"destinex/internal/cache"
	"destinex/internal/discovery"
	"destinex/internal/filter"
	"destinex/internal/mapsync"
	"destinex/internal/models"
	"destinex/pkg/utils"
)

type Phase string

const (
	PhaseIdle      Phase = "idle"
	PhaseSearching Phase = "searching"
	PhaseReady     Phase = "ready"
	PhaseFailed    Phase = "failed"
)

// Snapshot is the complete current view: everything a presentation layer
// needs to agree with the others.
type Snapshot struct {
	Phase          Phase                 `json:"phase"`
	City           string                `json:"city,omitempty"`
	ActiveCategory models.CategoryTag    `json:"active_category,omitempty"`
	Criteria       models.FilterCriteria `json:"criteria"`
	Places         []models.Place        `json:"places"`
	CountText      string                `json:"count_text"`
	Title          string                `json:"title,omitempty"`
	ErrorMessage   string                `json:"error,omitempty"`
	MarkerCount    int                   `json:"marker_count"`
}

// Renderer receives every recomputed view. The HTTP shell plugs in a
// latest-snapshot holder; a browser shell would paint cards.
type Renderer interface {
	Render(Snapshot)
}

// Recall persists the last successfully searched city. Optional.
type Recall interface {
	Remember(city string)
	Recall() (string, bool)
}

type Coordinator struct {
	mu sync.Mutex

	phase          Phase
	city           string
	activeCategory models.CategoryTag
	criteria       models.FilterCriteria
	lastRendered   []models.Place
	errorMessage   string
	searchToken    uuid.UUID

	client   discovery.ClientInterface
	results  *cache.ResultCache
	maps     *mapsync.Adapter
	renderer Renderer
	recall   Recall
}

func New(client discovery.ClientInterface, results *cache.ResultCache, maps *mapsync.Adapter, renderer Renderer, recall Recall) *Coordinator {
	return &Coordinator{
		phase:    PhaseIdle,
		criteria: models.DefaultCriteria(),
		client:   client,
		results:  results,
		maps:     maps,
		renderer: renderer,
		recall:   recall,
	}
}

// SubmitSearch runs one categorized search. A submission arriving while
// another is in flight supersedes it: the older call's result is discarded
// when it finally resolves, detected by the per-request token. On success the
// cache is committed atomically, criteria reset, the active category returns
// to attractions and the map is re-centered. On failure the rendered view is
// invalidated but the last good cache stays untouched.
func (c *Coordinator) SubmitSearch(ctx context.Context, city string) (Snapshot, error) {
	if err := validateCity(city); err != nil {
		return c.Snapshot(), err
	}

	c.mu.Lock()
	token := uuid.New()
	c.searchToken = token
	c.phase = PhaseSearching
	c.mu.Unlock()

	// The network call runs outside the lock; only the commit below is
	// serialized.
	set, displayCity, err := c.client.Search(ctx, city)

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.searchToken != token {
		log.Printf("Discarding stale search result for %q", city)
		return c.snapshotLocked(), utils.ErrSearchSuperseded
	}
	c.searchToken = uuid.Nil

	if err != nil {
		c.phase = PhaseFailed
		c.lastRendered = nil
		c.errorMessage = bannerMessage(err)
		c.pushLocked()
		return c.snapshotLocked(), err
	}

	c.results.Commit(set)
	c.city = displayCity
	c.criteria = models.DefaultCriteria()
	c.activeCategory = models.CategoryAttractions
	c.lastRendered = filter.Apply(set.Attractions, c.criteria)
	c.errorMessage = ""
	c.phase = PhaseReady

	if center, ok := set.FirstWithCoordinates(); ok {
		c.maps.Center(*center.Lat, *center.Lon)
	}
	c.pushLocked()

	if c.recall != nil {
		c.recall.Remember(displayCity)
	}
	return c.snapshotLocked(), nil
}

// SwitchCategory re-derives the rendered list for the new tab under the
// current criteria. Filters deliberately persist across category switches.
func (c *Coordinator) SwitchCategory(tag models.CategoryTag) (Snapshot, error) {
	if !tag.Valid() {
		return c.Snapshot(), utils.ErrUnknownCategory
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.phase != PhaseReady {
		return c.snapshotLocked(), utils.ErrNoActiveSearch
	}

	c.activeCategory = tag
	c.lastRendered = filter.Apply(c.results.Read(tag), c.criteria)
	c.pushLocked()
	return c.snapshotLocked(), nil
}

// UpdateFilters merges the patch into the current criteria and recomputes the
// active category only. Never re-centers the map.
func (c *Coordinator) UpdateFilters(patch models.CriteriaPatch) (Snapshot, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.phase != PhaseReady {
		return c.snapshotLocked(), utils.ErrNoActiveSearch
	}

	c.criteria = c.criteria.Merge(patch)
	c.lastRendered = filter.Apply(c.results.Read(c.activeCategory), c.criteria)
	c.pushLocked()
	return c.snapshotLocked(), nil
}

func (c *Coordinator) ResetFilters() (Snapshot, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.phase != PhaseReady {
		return c.snapshotLocked(), utils.ErrNoActiveSearch
	}

	c.criteria = models.DefaultCriteria()
	c.lastRendered = filter.Apply(c.results.Read(c.activeCategory), c.criteria)
	c.pushLocked()
	return c.snapshotLocked(), nil
}

// Leave resets the view to the entry state. Any search still in flight
// resolves stale and is discarded; the committed cache survives for the next
// visit.
func (c *Coordinator) Leave() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.phase = PhaseIdle
	c.searchToken = uuid.Nil
	c.city = ""
	c.criteria = models.DefaultCriteria()
	c.activeCategory = ""
	c.lastRendered = nil
	c.errorMessage = ""
	c.pushLocked()
}

func (c *Coordinator) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

// LastCity recalls the most recent successfully searched city, if any.
func (c *Coordinator) LastCity() (string, bool) {
	if c.recall == nil {
		return "", false
	}
	return c.recall.Recall()
}

// pushLocked synchronizes the map markers with the rendered list and hands
// the fresh snapshot to the renderer. Callers hold the lock.
func (c *Coordinator) pushLocked() {
	c.maps.Sync(c.lastRendered)
	if c.renderer != nil {
		c.renderer.Render(c.snapshotLocked())
	}
}

func (c *Coordinator) snapshotLocked() Snapshot {
	places := make([]models.Place, len(c.lastRendered))
	copy(places, c.lastRendered)

	title := ""
	if c.phase == PhaseReady {
		title = fmt.Sprintf("Results for %s", c.city)
	}

	return Snapshot{
		Phase:          c.phase,
		City:           c.city,
		ActiveCategory: c.activeCategory,
		Criteria:       c.criteria,
		Places:         places,
		CountText:      fmt.Sprintf("%d results found", len(places)),
		Title:          title,
		ErrorMessage:   c.errorMessage,
		MarkerCount:    c.maps.MarkerCount(),
	}
}

func validateCity(city string) error {
	if strings.TrimSpace(city) == "" {
		return utils.ErrEmptyCity
	}
	return nil
}

func bannerMessage(err error) string {
	var svcErr *utils.ServiceError
	switch {
	case errors.As(err, &svcErr):
		return svcErr.Message
	case errors.Is(err, utils.ErrSearchUnavailable):
		return "Search service is unreachable. Please try again later."
	case errors.Is(err, utils.ErrEmptyCity):
		return "City name is required"
	}
	return "Search failed. Please try again later."
}
