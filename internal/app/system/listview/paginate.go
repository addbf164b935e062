// internal/app/system/listview/paginate.go
package listview

import "encoding/json"

// DefaultPageSize is used when a caller supplies no (or a nonsensical)
// page size.
const DefaultPageSize = 10

// PageItem is one entry in a pagination strip: either a page number or
// an ellipsis marker standing in for a collapsed run of pages.
type PageItem struct {
	Number   int
	Ellipsis bool
}

// MarshalJSON encodes a page number as a JSON number and an ellipsis
// marker as the string "ellipsis", which is what the panels render.
func (p PageItem) MarshalJSON() ([]byte, error) {
	if p.Ellipsis {
		return json.Marshal("ellipsis")
	}
	return json.Marshal(p.Number)
}

// PageWindow is the pagination metadata for a table view.
type PageWindow struct {
	CurrentPage int        `json:"current_page"`
	PageSize    int        `json:"page_size"`
	TotalItems  int        `json:"total_items"`
	TotalPages  int        `json:"total_pages"`
	Pages       []PageItem `json:"pages"`
}

// Paginate slices one page out of the filtered list and builds its page
// window. page is clamped into [1, totalPages] before slicing, so a
// page beyond the end yields the last page rather than an empty one.
func Paginate[T any](recs []T, page, pageSize int) ([]T, PageWindow) {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}

	total := len(recs)
	totalPages := (total + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * pageSize
	end := start + pageSize
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	window := PageWindow{
		CurrentPage: page,
		PageSize:    pageSize,
		TotalItems:  total,
		TotalPages:  totalPages,
		Pages:       pageItems(page, totalPages),
	}
	return recs[start:end], window
}

// pageItems builds the visible page-number strip: always page 1 and the
// last page, every page within distance 1 of current, and a single
// ellipsis wherever consecutive included numbers leave a gap of two or
// more pages.
func pageItems(current, totalPages int) []PageItem {
	var items []PageItem
	last := 0
	for p := 1; p <= totalPages; p++ {
		if p != 1 && p != totalPages && (p < current-1 || p > current+1) {
			continue
		}
		if last > 0 && p-last >= 2 {
			items = append(items, PageItem{Ellipsis: true})
		}
		items = append(items, PageItem{Number: p})
		last = p
	}
	return items
}
