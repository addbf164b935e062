// internal/app/system/listview/query.go
package listview

import (
	"net/http"
	"strconv"

	"github.com/dalemusser/waffle/pantry/query"
)

// Keys returns the controller's configured categorical criteria keys.
func (c *Controller[T]) Keys() []string {
	keys := make([]string, len(c.cfg.Keys))
	copy(keys, c.cfg.Keys)
	return keys
}

// ApplyQuery merges a request's query parameters into the controller:
// search, date_from, date_to, and the configured criteria keys become
// filters, then page_size and page position the window. Filters are
// applied first so an explicit page lands on the filtered result set.
func ApplyQuery[T Entity](c *Controller[T], r *http.Request) {
	keys := append([]string{"search", "date_from", "date_to"}, c.Keys()...)
	for _, key := range keys {
		if v := query.Get(r, key); v != "" {
			c.SetFilter(key, v)
		}
	}
	if v := query.Get(r, "page_size"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.SetPageSize(n)
		}
	}
	if v := query.Get(r, "page"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.SetPage(n)
		}
	}
}
