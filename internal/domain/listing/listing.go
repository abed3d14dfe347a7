// Package listing implements the list-view projection shared by every
// collection page: case-insensitive substring search over a fixed field set,
// equality filters with an "All" sentinel, and client-side pagination over the
// fully materialized result.
package listing

import "strings"

const (
	// DefaultPageSize is the page size of every list view.
	DefaultPageSize = 24
	// LegacyPageSize is kept for the website careers grid, which predates the
	// 24-per-page layout.
	LegacyPageSize = 48

	// FilterAll is the sentinel that disables an equality filter.
	FilterAll = "All"
)

// Query carries the projection inputs. Page is 1-based; values below 1 are
// treated as 1. A zero PageSize falls back to DefaultPageSize.
type Query struct {
	Search   string
	Filters  map[string]string
	Page     int
	PageSize int
}

// Meta describes the projected result for pagination controls.
type Meta struct {
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// Fields extracts the searchable and filterable field values of one record.
// Searchable feeds the substring search; Filterable is matched exactly
// against active filters.
type Fields struct {
	Searchable []string
	Filterable map[string]string
}

// Apply projects records through search, filters and pagination. The input
// order is preserved (callers pass creation-time-descending slices).
func Apply[T any](records []T, q Query, extract func(T) Fields) ([]T, Meta) {
	filtered := records
	if q.Search != "" || hasActiveFilter(q.Filters) {
		filtered = make([]T, 0, len(records))
		for _, rec := range records {
			f := extract(rec)
			if !matchesSearch(q.Search, f.Searchable) {
				continue
			}
			if !matchesFilters(q.Filters, f.Filterable) {
				continue
			}
			filtered = append(filtered, rec)
		}
	}
	return Paginate(filtered, q.Page, q.PageSize)
}

// Paginate slices one page out of items. Paging beyond the last page yields
// an empty slice; the meta still reports the real totals so controls can
// disable at the boundary.
func Paginate[T any](items []T, page, pageSize int) ([]T, Meta) {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if page < 1 {
		page = 1
	}

	total := len(items)
	totalPages := (total + pageSize - 1) / pageSize

	start := (page - 1) * pageSize
	if start > total {
		start = total
	}
	end := start + pageSize
	if end > total {
		end = total
	}

	meta := Meta{Page: page, PageSize: pageSize, Total: total, TotalPages: totalPages}
	return items[start:end], meta
}

func matchesSearch(term string, fields []string) bool {
	if term == "" {
		return true
	}
	term = strings.ToLower(term)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}

func matchesFilters(active map[string]string, fields map[string]string) bool {
	for name, want := range active {
		if want == "" || want == FilterAll {
			continue
		}
		if fields[name] != want {
			return false
		}
	}
	return true
}

func hasActiveFilter(filters map[string]string) bool {
	for _, v := range filters {
		if v != "" && v != FilterAll {
			return true
		}
	}
	return false
}
