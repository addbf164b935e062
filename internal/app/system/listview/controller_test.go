package listview

import (
	"testing"
	"time"
)

func newEntryController(seed int) (*Controller[entry], *Store[entry]) {
	store := newEntryStore()
	for _, e := range makeEntries(seed) {
		e.ID = "" // store assigns ids
		store.Add(e)
	}
	ctl := NewController(store, Config[entry]{
		Keys:     []string{"status"},
		Filter:   entryFilterConfig(),
		Counters: entryCounters(),
		PageSize: 10,
	})
	return ctl, store
}

func TestViewDerivesRecordsWindowAndStats(t *testing.T) {
	ctl, _ := newEntryController(25)

	view := ctl.View()

	if len(view.Records) != 10 {
		t.Errorf("len(Records) = %d, want 10", len(view.Records))
	}
	if view.Window.TotalPages != 3 {
		t.Errorf("TotalPages = %d, want 3", view.Window.TotalPages)
	}
	if view.Stats["total"] != 25 {
		t.Errorf("stats total = %d, want 25", view.Stats["total"])
	}
	// Newest first: the last record added is on top.
	if view.Records[0].ID != "ENT-025" {
		t.Errorf("first visible = %s, want ENT-025", view.Records[0].ID)
	}
}

func TestSetFilterResetsPage(t *testing.T) {
	ctl, store := newEntryController(25)
	if _, err := store.Update("ENT-003", func(e entry) entry {
		e.Status = "failed"
		return e
	}); err != nil {
		t.Fatalf("seed update: %v", err)
	}

	ctl.SetPage(3)
	ctl.SetFilter("status", "failed")

	view := ctl.View()
	if view.Window.CurrentPage != 1 {
		t.Errorf("CurrentPage = %d, want reset to 1", view.Window.CurrentPage)
	}
	if len(view.Records) != 1 || view.Records[0].ID != "ENT-003" {
		t.Errorf("Records = %v, want [ENT-003]", ids(view.Records))
	}
	// Stats still come from the full collection, not the filtered view.
	if view.Stats["total"] != 25 {
		t.Errorf("stats total = %d, want 25 (unfiltered)", view.Stats["total"])
	}
}

func TestClearFiltersRestoresDefaults(t *testing.T) {
	ctl, _ := newEntryController(25)
	ctl.SetFilter("status", "failed")
	ctl.SetFilter("search", "nothing matches this")

	ctl.ClearFilters()

	view := ctl.View()
	if view.Window.TotalItems != 25 {
		t.Errorf("TotalItems = %d, want 25 after clear", view.Window.TotalItems)
	}
	if ctl.Criteria().IsActive() {
		t.Error("criteria still active after ClearFilters")
	}
}

func TestSetPageIgnoresOutOfRange(t *testing.T) {
	ctl, _ := newEntryController(25) // 3 pages at size 10

	ctl.SetPage(2)
	ctl.SetPage(7) // silently ignored
	if got := ctl.Page(); got != 2 {
		t.Errorf("Page() = %d, want 2", got)
	}

	ctl.SetPage(0) // silently ignored
	if got := ctl.Page(); got != 2 {
		t.Errorf("Page() = %d, want 2", got)
	}
}

func TestSetPageSizeResetsPage(t *testing.T) {
	ctl, _ := newEntryController(25)
	ctl.SetPage(3)

	ctl.SetPageSize(5)

	view := ctl.View()
	if view.Window.CurrentPage != 1 {
		t.Errorf("CurrentPage = %d, want 1 after page-size change", view.Window.CurrentPage)
	}
	if view.Window.TotalPages != 5 {
		t.Errorf("TotalPages = %d, want 5", view.Window.TotalPages)
	}
}

func TestMutationClampsPage(t *testing.T) {
	ctl, store := newEntryController(11) // 2 pages at size 10
	ctl.SetPage(2)

	// Delete the only record on the last page.
	view := ctl.View()
	if len(view.Records) != 1 {
		t.Fatalf("page 2 has %d records, want 1", len(view.Records))
	}
	if err := store.Delete(view.Records[0].ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	ctl.RecordMutated()

	view = ctl.View()
	if view.Window.CurrentPage != 1 {
		t.Errorf("CurrentPage = %d, want clamped to 1", view.Window.CurrentPage)
	}
	if view.Stats["total"] != 10 {
		t.Errorf("stats total = %d, want 10 after delete", view.Stats["total"])
	}
}

func TestMutationClampsToOneOnEmpty(t *testing.T) {
	ctl, store := newEntryController(3)
	for _, e := range store.All() {
		if err := store.Delete(e.ID); err != nil {
			t.Fatalf("Delete() error = %v", err)
		}
	}
	ctl.RecordMutated()

	view := ctl.View()
	if view.Window.CurrentPage != 1 || view.Window.TotalPages != 1 {
		t.Errorf("window = %d/%d, want 1/1 on empty collection", view.Window.CurrentPage, view.Window.TotalPages)
	}
}

func TestFilteredIgnoresPagination(t *testing.T) {
	ctl, _ := newEntryController(25)
	ctl.SetPage(3)

	filtered := ctl.Filtered()
	if len(filtered) != 25 {
		t.Errorf("len(Filtered()) = %d, want 25", len(filtered))
	}
	// Export order matches the table order: newest first.
	if filtered[0].EntityTime().Before(filtered[len(filtered)-1].EntityTime()) {
		t.Error("Filtered() is not newest-first")
	}
}

func TestControllerDefaultPageSize(t *testing.T) {
	store := newEntryStore()
	ctl := NewController(store, Config[entry]{Filter: entryFilterConfig()})

	view := ctl.View()
	if view.Window.PageSize != DefaultPageSize {
		t.Errorf("PageSize = %d, want %d", view.Window.PageSize, DefaultPageSize)
	}
}

func TestViewStatsRecomputedPerCall(t *testing.T) {
	ctl, store := newEntryController(5)

	before := ctl.View().Stats["total"]
	store.Add(entry{Title: "new", At: time.Now()})
	ctl.RecordMutated()
	after := ctl.View().Stats["total"]

	if before != 5 || after != 6 {
		t.Errorf("stats total = %d then %d, want 5 then 6", before, after)
	}
}
