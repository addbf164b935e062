package listview

import (
	"fmt"
	"reflect"
	"testing"
	"time"
)

func entryFilterConfig() FilterConfig[entry] {
	return FilterConfig[entry]{
		SearchFields: func(e entry) []string { return []string{e.Title, e.Author} },
		Categorical: map[string]func(entry) string{
			"status": func(e entry) string { return e.Status },
		},
	}
}

// makeEntries builds n entries one minute apart, oldest first.
func makeEntries(n int) []entry {
	base := time.Date(2026, 5, 1, 12, 0, 0, 0, time.Local)
	out := make([]entry, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, entry{
			ID:     fmt.Sprintf("ENT-%03d", i+1),
			Title:  fmt.Sprintf("entry %d", i+1),
			Author: "Asha Rao",
			Status: "success",
			At:     base.Add(time.Duration(i) * time.Minute),
		})
	}
	return out
}

func ids(recs []entry) []string {
	out := make([]string, 0, len(recs))
	for _, r := range recs {
		out = append(out, r.ID)
	}
	return out
}

func TestFilterByStatusSortsNewestFirst(t *testing.T) {
	recs := makeEntries(20)
	// Three failures scattered through the set.
	recs[2].Status = "failed"
	recs[9].Status = "failed"
	recs[17].Status = "failed"

	c := NewCriteria("status").Merge("status", "failed")
	got := Filter(recs, c, entryFilterConfig())

	want := []string{"ENT-018", "ENT-010", "ENT-003"}
	if !reflect.DeepEqual(ids(got), want) {
		t.Errorf("Filter() = %v, want %v", ids(got), want)
	}
}

func TestFilterIsIdempotent(t *testing.T) {
	recs := makeEntries(10)
	recs[4].Status = "failed"
	c := NewCriteria("status").Merge("status", "failed").Merge("search", "entry")
	cfg := entryFilterConfig()

	first := Filter(recs, c, cfg)
	second := Filter(recs, c, cfg)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated Filter() differed: %v vs %v", ids(first), ids(second))
	}
}

func TestFilterNeverGrowsResult(t *testing.T) {
	recs := makeEntries(15)
	criteria := []Criteria{
		NewCriteria("status"),
		NewCriteria("status").Merge("status", "failed"),
		NewCriteria("status").Merge("search", "entry 1"),
		NewCriteria("status").Merge("date_from", "2026-05-01"),
		NewCriteria("status").Merge("date_to", "2020-01-01"),
	}
	for _, c := range criteria {
		if got := Filter(recs, c, entryFilterConfig()); len(got) > len(recs) {
			t.Errorf("criteria %+v produced %d records from %d", c, len(got), len(recs))
		}
	}
}

func TestSearchIsCaseInsensitiveSubstring(t *testing.T) {
	recs := makeEntries(5)
	recs[1].Author = "Priya Sharma"

	c := NewCriteria("status").Merge("search", "  SHARm  ")
	got := Filter(recs, c, entryFilterConfig())

	if len(got) != 1 || got[0].ID != "ENT-002" {
		t.Errorf("Filter() = %v, want [ENT-002]", ids(got))
	}
}

func TestSearchMatchesAnyConfiguredField(t *testing.T) {
	recs := makeEntries(4)
	recs[0].Title = "quarterly rollup"
	recs[3].Author = "Rollo Quarles"

	c := NewCriteria("status").Merge("search", "roll")
	got := Filter(recs, c, entryFilterConfig())

	if len(got) != 2 {
		t.Fatalf("len = %d, want 2 (title match + author match)", len(got))
	}
}

func TestDateRangeBoundsAreInclusive(t *testing.T) {
	recs := []entry{
		{ID: "ENT-001", At: time.Date(2026, 4, 30, 23, 59, 0, 0, time.Local)},
		{ID: "ENT-002", At: time.Date(2026, 5, 1, 0, 0, 0, 0, time.Local)},
		{ID: "ENT-003", At: time.Date(2026, 5, 2, 23, 59, 59, 0, time.Local)},
		{ID: "ENT-004", At: time.Date(2026, 5, 3, 0, 0, 0, 0, time.Local)},
	}

	c := NewCriteria().Merge("date_from", "2026-05-01").Merge("date_to", "2026-05-02")
	got := Filter(recs, c, entryFilterConfig())

	want := []string{"ENT-003", "ENT-002"}
	if !reflect.DeepEqual(ids(got), want) {
		t.Errorf("Filter() = %v, want %v", ids(got), want)
	}
}

func TestMalformedDateMatchesNothing(t *testing.T) {
	recs := makeEntries(5)
	c := NewCriteria().Merge("date_from", "not-a-date")

	if got := Filter(recs, c, entryFilterConfig()); len(got) != 0 {
		t.Errorf("Filter() returned %d records for malformed date, want 0", len(got))
	}
}

func TestUnknownCriteriaKeyIsIgnored(t *testing.T) {
	recs := makeEntries(5)
	c := NewCriteria("status").Merge("flavor", "grape")

	if got := Filter(recs, c, entryFilterConfig()); len(got) != len(recs) {
		t.Errorf("Filter() = %d records, want all %d", len(got), len(recs))
	}
}

func TestFilterEmptyInput(t *testing.T) {
	c := NewCriteria("status").Merge("status", "failed")
	if got := Filter(nil, c, entryFilterConfig()); len(got) != 0 {
		t.Errorf("Filter(nil) = %d records, want 0", len(got))
	}
}

func TestFilterDoesNotMutateInput(t *testing.T) {
	recs := makeEntries(6)
	orig := append([]entry(nil), recs...)

	Filter(recs, NewCriteria("status"), entryFilterConfig())

	if !reflect.DeepEqual(recs, orig) {
		t.Error("Filter() reordered its input slice")
	}
}

func TestMergeKeepsOtherKeys(t *testing.T) {
	c := NewCriteria("status", "role").
		Merge("status", "failed").
		Merge("search", "asha")

	if c.Fields["status"] != "failed" {
		t.Errorf("status = %q, want failed", c.Fields["status"])
	}
	if c.Fields["role"] != FilterAll {
		t.Errorf("role = %q, want %q", c.Fields["role"], FilterAll)
	}
	if c.Search != "asha" {
		t.Errorf("search = %q, want asha", c.Search)
	}
	if !c.IsActive() {
		t.Error("IsActive() = false with active predicates")
	}
	if NewCriteria("status").IsActive() {
		t.Error("IsActive() = true for default criteria")
	}
}

func TestMergeDoesNotAliasFields(t *testing.T) {
	base := NewCriteria("status")
	merged := base.Merge("status", "failed")

	if base.Fields["status"] != FilterAll {
		t.Errorf("base mutated by Merge: status = %q", base.Fields["status"])
	}
	if merged.Fields["status"] != "failed" {
		t.Errorf("merged status = %q, want failed", merged.Fields["status"])
	}
}
