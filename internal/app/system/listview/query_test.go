// internal/app/system/listview/query_test.go
package listview

import (
	"net/http/httptest"
	"testing"
	"time"
)

func queryTestStore(n int) *Store[entry] {
	s := newEntryStore()
	base := time.Now().Add(-time.Duration(n) * time.Hour)
	for i := 0; i < n; i++ {
		status := "published"
		if i%2 == 1 {
			status = "draft"
		}
		s.Add(entry{Title: "record", Status: status, At: base.Add(time.Duration(i) * time.Hour)})
	}
	return s
}

func queryTestConfig() Config[entry] {
	return Config[entry]{
		Keys: []string{"status"},
		Filter: FilterConfig[entry]{
			SearchFields: func(e entry) []string { return []string{e.Title, e.Author} },
			Categorical: map[string]func(entry) string{
				"status": func(e entry) string { return e.Status },
			},
		},
		PageSize: 4,
	}
}

func TestApplyQuerySetsFiltersAndPage(t *testing.T) {
	ctrl := NewController(queryTestStore(12), queryTestConfig())

	r := httptest.NewRequest("GET", "/?status=draft&page=2&page_size=2", nil)
	ApplyQuery(ctrl, r)

	view := ctrl.View()
	if view.Window.CurrentPage != 2 {
		t.Errorf("page = %d, want 2", view.Window.CurrentPage)
	}
	if len(view.Records) != 2 {
		t.Errorf("got %d records, want 2", len(view.Records))
	}
	for _, rec := range view.Records {
		if rec.Status != "draft" {
			t.Errorf("record %s has status %q", rec.ID, rec.Status)
		}
	}
}

func TestApplyQueryIgnoresUnknownAndInvalidParams(t *testing.T) {
	ctrl := NewController(queryTestStore(6), queryTestConfig())

	r := httptest.NewRequest("GET", "/?color=red&page=banana&page_size=-3", nil)
	ApplyQuery(ctrl, r)

	view := ctrl.View()
	if view.Window.CurrentPage != 1 {
		t.Errorf("page = %d, want 1", view.Window.CurrentPage)
	}
	if len(view.Records) != 4 {
		t.Errorf("got %d records, want full first page of 4", len(view.Records))
	}
}

func TestApplyQuerySearch(t *testing.T) {
	store := queryTestStore(3)
	store.Add(entry{Title: "needle", Status: "published", At: time.Now()})
	ctrl := NewController(store, queryTestConfig())

	r := httptest.NewRequest("GET", "/?search=needle", nil)
	ApplyQuery(ctrl, r)

	view := ctrl.View()
	if len(view.Records) != 1 || view.Records[0].Title != "needle" {
		t.Errorf("records = %+v", view.Records)
	}
}
