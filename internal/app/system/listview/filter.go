// internal/app/system/listview/filter.go
package listview

import (
	"sort"
	"strings"
	"time"

	"github.com/dalemusser/waffle/pantry/text"
)

// FilterAll is the sentinel meaning "no filter" for a categorical key.
const FilterAll = "all"

// DateLayout is the wire format for date-range bounds.
const DateLayout = "2006-01-02"

// Criteria is the complete set of active filter predicates for a list
// view. It is always fully populated: every categorical key defaults to
// FilterAll, search and the date bounds default to empty (unbounded).
// Callers change one key at a time with Merge and keep the rest.
type Criteria struct {
	Search   string
	Fields   map[string]string
	DateFrom string
	DateTo   string
}

// NewCriteria returns the default (no-filter) criteria for the given
// categorical keys.
func NewCriteria(keys ...string) Criteria {
	fields := make(map[string]string, len(keys))
	for _, k := range keys {
		fields[k] = FilterAll
	}
	return Criteria{Fields: fields}
}

// Merge returns a copy of c with a single key changed. The keys
// "search", "date_from", and "date_to" address the built-in predicates;
// anything else is stored as a categorical key. Keys the panel's filter
// config does not know are carried along and ignored when filtering.
func (c Criteria) Merge(key, value string) Criteria {
	out := c.clone()
	switch key {
	case "search":
		out.Search = value
	case "date_from":
		out.DateFrom = strings.TrimSpace(value)
	case "date_to":
		out.DateTo = strings.TrimSpace(value)
	default:
		out.Fields[key] = value
	}
	return out
}

// IsActive reports whether any predicate narrows the result set.
func (c Criteria) IsActive() bool {
	if strings.TrimSpace(c.Search) != "" || c.DateFrom != "" || c.DateTo != "" {
		return true
	}
	for _, v := range c.Fields {
		if v != "" && v != FilterAll {
			return true
		}
	}
	return false
}

func (c Criteria) clone() Criteria {
	fields := make(map[string]string, len(c.Fields))
	for k, v := range c.Fields {
		fields[k] = v
	}
	c.Fields = fields
	return c
}

// FilterConfig tells the filter pipeline where to look on each record.
type FilterConfig[T Entity] struct {
	// SearchFields returns the text fields matched by free-text search.
	SearchFields func(T) []string
	// Categorical maps criteria keys to field getters. Values are
	// compared exactly; these are controlled enum-like values.
	Categorical map[string]func(T) string
}

// Filter returns the records matching every active predicate in c,
// sorted newest first. The predicates are independent; their order only
// affects how much work later passes see. The input slice is never
// mutated.
func Filter[T Entity](recs []T, c Criteria, cfg FilterConfig[T]) []T {
	out := recs

	if q := strings.TrimSpace(c.Search); q != "" && cfg.SearchFields != nil {
		out = filterBySearch(out, q, cfg.SearchFields)
	}

	for key, want := range c.Fields {
		if want == "" || want == FilterAll {
			continue
		}
		get, ok := cfg.Categorical[key]
		if !ok {
			// Unknown criteria keys are tolerated, not rejected.
			continue
		}
		out = filterByField(out, want, get)
	}

	out = filterByDateRange(out, c.DateFrom, c.DateTo)

	return sortNewestFirst(out)
}

// filterBySearch keeps records where any configured field contains the
// query, case- and diacritic-insensitively.
func filterBySearch[T Entity](recs []T, query string, fields func(T) []string) []T {
	qFold := text.Fold(query)
	var out []T
	for _, rec := range recs {
		for _, f := range fields(rec) {
			if strings.Contains(text.Fold(f), qFold) {
				out = append(out, rec)
				break
			}
		}
	}
	return out
}

// filterByField keeps records whose field equals want exactly.
func filterByField[T Entity](recs []T, want string, get func(T) string) []T {
	var out []T
	for _, rec := range recs {
		if get(rec) == want {
			out = append(out, rec)
		}
	}
	return out
}

// filterByDateRange keeps records whose entity time falls within the
// inclusive calendar-day range. A bound that does not parse matches
// nothing for that predicate; this mirrors how the panels treat bad
// date input as "no results" rather than an error.
func filterByDateRange[T Entity](recs []T, dateFrom, dateTo string) []T {
	if dateFrom == "" && dateTo == "" {
		return recs
	}

	var from, end time.Time
	if dateFrom != "" {
		day, err := time.ParseInLocation(DateLayout, dateFrom, time.Local)
		if err != nil {
			return nil
		}
		from = day
	}
	if dateTo != "" {
		day, err := time.ParseInLocation(DateLayout, dateTo, time.Local)
		if err != nil {
			return nil
		}
		end = day.AddDate(0, 0, 1) // exclusive end of that calendar day
	}

	var out []T
	for _, rec := range recs {
		t := rec.EntityTime()
		if !from.IsZero() && t.Before(from) {
			continue
		}
		if !end.IsZero() && !t.Before(end) {
			continue
		}
		out = append(out, rec)
	}
	return out
}

// sortNewestFirst returns a sorted copy, newest entity time first. Ties
// break on id descending so the order is deterministic.
func sortNewestFirst[T Entity](recs []T) []T {
	out := append([]T(nil), recs...)
	sort.SliceStable(out, func(i, j int) bool {
		ti, tj := out[i].EntityTime(), out[j].EntityTime()
		if !ti.Equal(tj) {
			return ti.After(tj)
		}
		return out[i].EntityID() > out[j].EntityID()
	})
	return out
}
