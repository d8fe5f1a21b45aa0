package helpers

import (
	"math"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yigit/alumnihub/internal/app/models/dto"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
	DefaultPage     = 1 // Default page is 1-based
)

// NewPaginationInfo creates a standard PaginationInfo DTO.
// page should be the 1-based page number.
func NewPaginationInfo(totalItems, page, size int) dto.PaginationInfo {
	if size <= 0 {
		size = DefaultPageSize
	}
	if page < 1 {
		page = DefaultPage
	}

	totalPages := 0
	if totalItems > 0 {
		totalPages = int(math.Ceil(float64(totalItems) / float64(size)))
	}

	return dto.PaginationInfo{
		Page:       page,
		Limit:      size,
		Total:      totalItems,
		TotalPages: totalPages,
	}
}

// CalculateSliceIndices calculates the start and end indices for slicing an array for pagination
func CalculateSliceIndices(page, size, totalItems int) (start, end int) {
	if size <= 0 {
		size = DefaultPageSize
	}
	if page < 1 {
		page = DefaultPage
	}

	if totalItems <= 0 {
		return 0, 0
	}
	// compare page counts first so (page-1)*size cannot overflow
	pages := totalItems / size
	if totalItems%size != 0 {
		pages++
	}
	if page-1 >= pages {
		return totalItems, totalItems
	}

	start = (page - 1) * size
	end = totalItems
	if size < totalItems-start {
		end = start + size
	}

	return start, end
}

// PaginateItems returns the items of the 1-based page. A page past the end yields an empty slice.
func PaginateItems[T any](items []T, page, size int) []T {
	start, end := CalculateSliceIndices(page, size, len(items))
	out := make([]T, end-start)
	copy(out, items[start:end])
	return out
}

// NormalizeListParams applies paging defaults and bounds.
// Page and limit passed inside the filter map are honoured when the explicit fields are unset.
func NormalizeListParams(params dto.ListParams) dto.ListParams {
	filters := make(dto.Filters, len(params.Filters))
	for k, v := range params.Filters {
		switch k {
		case dto.FilterPage:
			if params.Page == 0 {
				params.Page, _ = strconv.Atoi(v)
			}
		case dto.FilterLimit:
			if params.Limit == 0 {
				params.Limit, _ = strconv.Atoi(v)
			}
		default:
			filters[k] = v
		}
	}
	params.Filters = filters

	if params.Page < 1 {
		params.Page = DefaultPage
	}
	if params.Limit < 1 {
		params.Limit = DefaultPageSize
	}
	if params.Limit > MaxPageSize {
		params.Limit = MaxPageSize
	}
	return params
}

// ParsePaginationParams extracts list parameters from the request.
// Every query parameter other than page and limit becomes a filter.
func ParsePaginationParams(c *gin.Context) dto.ListParams {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = DefaultPage
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(DefaultPageSize)))
	if err != nil || limit <= 0 {
		limit = DefaultPageSize
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}

	filters := dto.Filters{}
	for key, values := range c.Request.URL.Query() {
		if key == dto.FilterPage || key == dto.FilterLimit || len(values) == 0 {
			continue
		}
		filters[key] = values[0]
	}

	return dto.ListParams{Page: page, Limit: limit, Filters: filters}
}
