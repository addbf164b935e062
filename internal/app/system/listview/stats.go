// internal/app/system/listview/stats.go
package listview

import (
	"math"
	"time"
)

// Counter is one named predicate counted over the full collection.
// Match receives the evaluation time so counters like "today" stay
// correct across midnight instead of baking a date into a closure.
type Counter[T any] struct {
	Name  string
	Match func(rec T, now time.Time) bool
}

// Summary maps counter names to their counts. The "total" counter is
// always present and equals the collection size.
type Summary map[string]int

// Summarize computes the stat-card counters over the authoritative
// (unfiltered) collection. Dashboards show true totals even while a
// filter narrows the visible table, so callers must pass the full
// record set, never the filtered one. The result is computed fresh on
// every call; nothing is cached or incrementally patched.
func Summarize[T any](recs []T, counters []Counter[T], now time.Time) Summary {
	summary := make(Summary, len(counters)+1)
	summary["total"] = len(recs)
	for _, c := range counters {
		n := 0
		for _, rec := range recs {
			if c.Match(rec, now) {
				n++
			}
		}
		summary[c.Name] = n
	}
	return summary
}

// Percent returns part as a percentage of total, rounded to one decimal
// place. An empty collection yields 0, not NaN.
func Percent(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(part)/float64(total)*1000) / 10
}

// SameDay reports whether t falls on the same local calendar day as
// now. This is the predicate behind every "today" counter.
func SameDay(t, now time.Time) bool {
	y1, m1, d1 := t.Local().Date()
	y2, m2, d2 := now.Local().Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
