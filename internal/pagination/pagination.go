// Package pagination slices ordered result sets into fixed-size pages
// selected by the "page" query parameter.
package pagination

import (
	"net/http"
	"strconv"
	"strings"
)

// PerPage is the number of items on every page.
const PerPage = 10

// PageFromRequest returns the 1-based page number from the "page" query
// parameter. A missing or non-integer value yields page 1. No range check
// is applied; out-of-range pages simply paginate to nothing.
func PageFromRequest(r *http.Request) int {
	value := strings.TrimSpace(r.URL.Query().Get("page"))
	if value == "" {
		return 1
	}
	page, err := strconv.Atoi(value)
	if err != nil {
		return 1
	}
	return page
}

// Paginate returns the items in [(page-1)*PerPage, page*PerPage). Pages
// below 1 or past the end return an empty, non-nil slice so the result
// always encodes as a JSON array.
func Paginate[T any](items []T, page int) []T {
	if page < 1 || page-1 >= (len(items)+PerPage-1)/PerPage {
		return []T{}
	}
	start := (page - 1) * PerPage
	end := min(start+PerPage, len(items))
	return items[start:end]
}
