package dto

import "strings"

// Reserved filter keys. They are consumed by entity search and sorting, never by field matching.
const (
	FilterSearch    = "search"
	FilterSortBy    = "sortBy"
	FilterSortOrder = "sortOrder"
	FilterPage      = "page"
	FilterLimit     = "limit"
)

// Filters maps a record field name to the value it must match.
type Filters map[string]string

// IsReserved reports whether key drives search, sorting or paging instead of field matching.
func IsReserved(key string) bool {
	switch key {
	case FilterSearch, FilterSortBy, FilterSortOrder, FilterPage, FilterLimit:
		return true
	}
	return false
}

// Search returns the trimmed free-text term.
func (f Filters) Search() string {
	return strings.TrimSpace(f[FilterSearch])
}

// Sort returns the requested sort field and whether the order is descending.
func (f Filters) Sort() (field string, desc bool, ok bool) {
	field = strings.TrimSpace(f[FilterSortBy])
	if field == "" {
		return "", false, false
	}
	return field, strings.EqualFold(f[FilterSortOrder], "desc"), true
}

// ListParams are the arguments of every list operation.
type ListParams struct {
	Page    int     `json:"page" form:"page"`
	Limit   int     `json:"limit" form:"limit"`
	Filters Filters `json:"filters,omitempty"`
}

// Patch is a partial record update keyed by JSON field name.
type Patch map[string]interface{}

// BulkRequest is the body of a bulk operation call.
type BulkRequest struct {
	Operation string   `json:"operation" validate:"required"`
	IDs       []string `json:"ids" validate:"required,min=1,dive,required"`
}
