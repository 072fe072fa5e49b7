package coordinator

import (
	"context"
	"errors"
	"testing"

	"destinex/internal/cache"
	"destinex/internal/mapsync"
	"destinex/internal/models"
	"destinex/pkg/utils"
)

func f(v float64) *float64 { return &v }

type fakeClient struct {
	fn func(ctx context.Context, city string) (models.CategorySet, string, error)
}

func (c *fakeClient) Search(ctx context.Context, city string) (models.CategorySet, string, error) {
	return c.fn(ctx, city)
}

func goaSet() models.CategorySet {
	return models.CategorySet{
		Attractions: []models.Place{{Name: "Fort", Lat: f(15.5), Lon: f(73.8), Rating: f(4.2)}},
		Hotels:      []models.Place{},
		Restaurants: []models.Place{},
	}
}

type harness struct {
	coord    *Coordinator
	results  *cache.ResultCache
	view     *mapsync.StateView
	renderer *LatestRenderer
}

func newHarness(fn func(ctx context.Context, city string) (models.CategorySet, string, error)) *harness {
	results := cache.NewResultCache()
	view := mapsync.NewStateView()
	renderer := NewLatestRenderer()
	coord := New(&fakeClient{fn: fn}, results, mapsync.NewAdapter(view), renderer, nil)
	return &harness{coord: coord, results: results, view: view, renderer: renderer}
}

func TestSubmitSearchSuccess(t *testing.T) {
	h := newHarness(func(ctx context.Context, city string) (models.CategorySet, string, error) {
		return goaSet(), "Goa", nil
	})

	snap, err := h.coord.SubmitSearch(context.Background(), "Goa")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if snap.Phase != PhaseReady {
		t.Fatalf("expected ready, got %s", snap.Phase)
	}
	if snap.ActiveCategory != models.CategoryAttractions {
		t.Fatalf("a successful search must land on attractions, got %s", snap.ActiveCategory)
	}
	if len(snap.Places) != 1 || snap.Places[0].Name != "Fort" {
		t.Fatalf("expected 1 rendered card, got %v", snap.Places)
	}
	if snap.CountText != "1 results found" {
		t.Fatalf("wrong count text: %q", snap.CountText)
	}
	if snap.MarkerCount != 1 || len(h.view.Markers()) != 1 {
		t.Fatalf("expected exactly 1 marker, got %d", snap.MarkerCount)
	}
	lat, lon, centered := h.view.Center()
	if !centered || lat != 15.5 || lon != 73.8 {
		t.Fatalf("expected map centered at (15.5, 73.8), got (%v, %v, %v)", lat, lon, centered)
	}
	if _, ok := h.renderer.Latest(); !ok {
		t.Fatalf("renderer should have received the view")
	}
}

func TestSubmitSearchEmptyCity(t *testing.T) {
	called := false
	h := newHarness(func(ctx context.Context, city string) (models.CategorySet, string, error) {
		called = true
		return models.CategorySet{}, "", nil
	})

	if _, err := h.coord.SubmitSearch(context.Background(), "  "); !errors.Is(err, utils.ErrEmptyCity) {
		t.Fatalf("expected ErrEmptyCity, got %v", err)
	}
	if called {
		t.Fatalf("validation failure must not reach the client")
	}
	if h.coord.Snapshot().Phase != PhaseIdle {
		t.Fatalf("validation failure must not change state")
	}
}

func TestSubmitSearchFailureLeavesCacheUntouched(t *testing.T) {
	fail := false
	h := newHarness(func(ctx context.Context, city string) (models.CategorySet, string, error) {
		if fail {
			return models.CategorySet{}, "", utils.NewServiceError("City not found")
		}
		return goaSet(), "Goa", nil
	})

	if _, err := h.coord.SubmitSearch(context.Background(), "Goa"); err != nil {
		t.Fatalf("seed search failed: %v", err)
	}

	fail = true
	snap, err := h.coord.SubmitSearch(context.Background(), "Atlantis")
	if err == nil {
		t.Fatalf("expected search failure")
	}
	if snap.Phase != PhaseFailed {
		t.Fatalf("expected failed phase, got %s", snap.Phase)
	}
	if len(snap.Places) != 0 {
		t.Fatalf("failed search must clear rendered results")
	}
	if snap.CountText != "0 results found" {
		t.Fatalf("wrong count text: %q", snap.CountText)
	}
	if snap.ErrorMessage != "City not found" {
		t.Fatalf("expected service message surfaced verbatim, got %q", snap.ErrorMessage)
	}
	// The last good commit survives the failed re-search.
	if got := h.results.Read(models.CategoryAttractions); len(got) != 1 || got[0].Name != "Fort" {
		t.Fatalf("failed search erased the last good cache: %v", got)
	}
}

func TestCategoryRoundTrip(t *testing.T) {
	h := newHarness(func(ctx context.Context, city string) (models.CategorySet, string, error) {
		return goaSet(), "Goa", nil
	})
	if _, err := h.coord.SubmitSearch(context.Background(), "Goa"); err != nil {
		t.Fatalf("search failed: %v", err)
	}

	mid, err := h.coord.SwitchCategory(models.CategoryHotels)
	if err != nil {
		t.Fatalf("switch failed: %v", err)
	}
	if len(mid.Places) != 0 || mid.MarkerCount != 0 {
		t.Fatalf("hotels should render empty, got %d places %d markers", len(mid.Places), mid.MarkerCount)
	}

	back, err := h.coord.SwitchCategory(models.CategoryAttractions)
	if err != nil {
		t.Fatalf("switch back failed: %v", err)
	}
	if len(back.Places) != 1 || back.Places[0].Name != "Fort" {
		t.Fatalf("round trip did not restore the original list: %v", back.Places)
	}
}

func TestFiltersPersistAcrossCategorySwitch(t *testing.T) {
	h := newHarness(func(ctx context.Context, city string) (models.CategorySet, string, error) {
		return goaSet(), "Goa", nil
	})
	if _, err := h.coord.SubmitSearch(context.Background(), "Goa"); err != nil {
		t.Fatalf("search failed: %v", err)
	}

	if _, err := h.coord.UpdateFilters(models.CriteriaPatch{MinRating: f(4.0)}); err != nil {
		t.Fatalf("filter update failed: %v", err)
	}
	snap, err := h.coord.SwitchCategory(models.CategoryHotels)
	if err != nil {
		t.Fatalf("switch failed: %v", err)
	}
	if snap.Criteria.MinRating == nil || *snap.Criteria.MinRating != 4.0 {
		t.Fatalf("criteria must persist across category switches: %+v", snap.Criteria)
	}
}

func TestUpdateFiltersEmptiesCardsAndMarkers(t *testing.T) {
	h := newHarness(func(ctx context.Context, city string) (models.CategorySet, string, error) {
		return goaSet(), "Goa", nil
	})
	if _, err := h.coord.SubmitSearch(context.Background(), "Goa"); err != nil {
		t.Fatalf("search failed: %v", err)
	}

	snap, err := h.coord.UpdateFilters(models.CriteriaPatch{MinRating: f(4.6)})
	if err != nil {
		t.Fatalf("filter update failed: %v", err)
	}
	if len(snap.Places) != 0 {
		t.Fatalf("4.2 < 4.6 should filter the card out, got %v", snap.Places)
	}
	if snap.MarkerCount != 0 || len(h.view.Markers()) != 0 {
		t.Fatalf("markers must follow the filtered list")
	}
}

func TestResetFiltersRestoresDefaults(t *testing.T) {
	h := newHarness(func(ctx context.Context, city string) (models.CategorySet, string, error) {
		return goaSet(), "Goa", nil
	})
	if _, err := h.coord.SubmitSearch(context.Background(), "Goa"); err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if _, err := h.coord.UpdateFilters(models.CriteriaPatch{MinRating: f(4.6)}); err != nil {
		t.Fatalf("filter update failed: %v", err)
	}

	snap, err := h.coord.ResetFilters()
	if err != nil {
		t.Fatalf("reset failed: %v", err)
	}
	if snap.Criteria.MinRating != nil || snap.Criteria.PriceTier != models.PriceTierAll {
		t.Fatalf("expected default criteria, got %+v", snap.Criteria)
	}
	if len(snap.Places) != 1 {
		t.Fatalf("expected the card back after reset, got %d", len(snap.Places))
	}
}

func TestOperationsRejectedWithoutActiveSearch(t *testing.T) {
	h := newHarness(func(ctx context.Context, city string) (models.CategorySet, string, error) {
		return goaSet(), "Goa", nil
	})

	if _, err := h.coord.SwitchCategory(models.CategoryHotels); !errors.Is(err, utils.ErrNoActiveSearch) {
		t.Fatalf("expected ErrNoActiveSearch, got %v", err)
	}
	if _, err := h.coord.UpdateFilters(models.CriteriaPatch{MinRating: f(4)}); !errors.Is(err, utils.ErrNoActiveSearch) {
		t.Fatalf("expected ErrNoActiveSearch, got %v", err)
	}
	if _, err := h.coord.SwitchCategory("museums"); !errors.Is(err, utils.ErrUnknownCategory) {
		t.Fatalf("expected ErrUnknownCategory, got %v", err)
	}
}

func TestStaleSearchResponseDiscarded(t *testing.T) {
	firstStarted := make(chan struct{})
	release := make(chan struct{})

	h := newHarness(func(ctx context.Context, city string) (models.CategorySet, string, error) {
		if city == "Goa" {
			close(firstStarted)
			<-release
			return goaSet(), "Goa", nil
		}
		return models.CategorySet{
			Attractions: []models.Place{{Name: "Red Fort", Lat: f(28.6), Lon: f(77.2), Rating: f(4.5)}},
		}, "Delhi", nil
	})

	done := make(chan error, 1)
	go func() {
		_, err := h.coord.SubmitSearch(context.Background(), "Goa")
		done <- err
	}()
	<-firstStarted

	// A newer request supersedes the pending one.
	if _, err := h.coord.SubmitSearch(context.Background(), "Delhi"); err != nil {
		t.Fatalf("superseding search failed: %v", err)
	}
	close(release)

	if err := <-done; !errors.Is(err, utils.ErrSearchSuperseded) {
		t.Fatalf("expected ErrSearchSuperseded, got %v", err)
	}
	if got := h.results.Read(models.CategoryAttractions); len(got) != 1 || got[0].Name != "Red Fort" {
		t.Fatalf("stale result overwrote the cache: %v", got)
	}
	if h.coord.Snapshot().City != "Delhi" {
		t.Fatalf("view should reflect the newer search")
	}
}

func TestLeaveDiscardsInFlightSearch(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})

	h := newHarness(func(ctx context.Context, city string) (models.CategorySet, string, error) {
		close(started)
		<-release
		return goaSet(), "Goa", nil
	})

	done := make(chan error, 1)
	go func() {
		_, err := h.coord.SubmitSearch(context.Background(), "Goa")
		done <- err
	}()
	<-started
	h.coord.Leave()
	close(release)

	if err := <-done; !errors.Is(err, utils.ErrSearchSuperseded) {
		t.Fatalf("expected in-flight search discarded after leave, got %v", err)
	}
	snap := h.coord.Snapshot()
	if snap.Phase != PhaseIdle || len(snap.Places) != 0 {
		t.Fatalf("leave should reset to idle: %+v", snap)
	}
	if h.results.Populated() {
		t.Fatalf("discarded search must not commit")
	}
}
