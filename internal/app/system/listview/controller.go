// internal/app/system/listview/controller.go

// Package listview is the generic list-management engine behind every
// panel table: a filterable, paginated view over an in-memory record
// store plus the stat-card counters derived from it. Each panel
// parameterizes one engine with its searchable fields, categorical
// filter keys, and counters instead of reimplementing the pipeline.
package listview

import (
	"sync"
	"time"
)

// Config parameterizes a Controller for one panel.
type Config[T Entity] struct {
	// Keys are the panel's categorical criteria keys (status, role, …).
	Keys []string
	// Filter tells the filter pipeline where to look on each record.
	Filter FilterConfig[T]
	// Counters are the panel's stat-card predicates.
	Counters []Counter[T]
	// PageSize is the initial page size (DefaultPageSize when zero).
	PageSize int
}

// View is everything a rendering layer needs per derive cycle: the
// visible page of records, the page window, and the stat summary.
type View[T Entity] struct {
	Records []T        `json:"records"`
	Window  PageWindow `json:"window"`
	Stats   Summary    `json:"stats"`
}

// Controller holds one view's session state — current criteria, page,
// and page size — and re-derives the view after every change. Stats
// always come from the store's full collection; only the table honors
// the active filter.
type Controller[T Entity] struct {
	mu       sync.Mutex
	store    *Store[T]
	cfg      Config[T]
	criteria Criteria
	page     int
	pageSize int
}

// NewController creates a controller with default criteria on page 1.
func NewController[T Entity](store *Store[T], cfg Config[T]) *Controller[T] {
	if cfg.PageSize < 1 {
		cfg.PageSize = DefaultPageSize
	}
	return &Controller[T]{
		store:    store,
		cfg:      cfg,
		criteria: NewCriteria(cfg.Keys...),
		page:     1,
		pageSize: cfg.PageSize,
	}
}

// SetFilter merges a single criteria key and resets to page 1, since
// the result set under the old page numbering no longer exists.
func (c *Controller[T]) SetFilter(key, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.criteria = c.criteria.Merge(key, value)
	c.page = 1
}

// ClearFilters restores the default criteria and resets to page 1.
func (c *Controller[T]) ClearFilters() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.criteria = NewCriteria(c.cfg.Keys...)
	c.page = 1
}

// SetPage moves to page n when it is in range and silently ignores it
// otherwise, mirroring a disabled pagination button.
func (c *Controller[T]) SetPage(n int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if n < 1 || n > c.totalPages() {
		return
	}
	c.page = n
}

// SetPageSize changes the page size and resets to page 1; there is no
// attempt to keep the previous scroll position.
func (c *Controller[T]) SetPageSize(n int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if n < 1 {
		return
	}
	c.pageSize = n
	c.page = 1
}

// RecordMutated re-derives after a create/update/delete against the
// store. If the mutation shrank the result set below the current page,
// the page is clamped down so the view never points past the end.
func (c *Controller[T]) RecordMutated() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if tp := c.totalPages(); c.page > tp {
		c.page = tp
	}
}

// Criteria returns the current criteria value.
func (c *Controller[T]) Criteria() Criteria {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.criteria.clone()
}

// Page returns the current page number.
func (c *Controller[T]) Page() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.page
}

// View derives the current {records, window, stats} triple.
func (c *Controller[T]) View() View[T] {
	c.mu.Lock()
	defer c.mu.Unlock()

	all := c.store.All()
	filtered := Filter(all, c.criteria, c.cfg.Filter)
	visible, window := Paginate(filtered, c.page, c.pageSize)
	return View[T]{
		Records: visible,
		Window:  window,
		Stats:   Summarize(all, c.cfg.Counters, time.Now()),
	}
}

// Filtered returns the full filtered list without pagination. Exports
// read this so a CSV respects the active filters but not the page.
func (c *Controller[T]) Filtered() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Filter(c.store.All(), c.criteria, c.cfg.Filter)
}

func (c *Controller[T]) totalPages() int {
	filtered := Filter(c.store.All(), c.criteria, c.cfg.Filter)
	tp := (len(filtered) + c.pageSize - 1) / c.pageSize
	if tp < 1 {
		tp = 1
	}
	return tp
}
