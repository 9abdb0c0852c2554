package helpers

import (
	"math"
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
	DefaultPage     = 1 // page numbers are 1-based
)

// PageMeta describes one page of a filtered result set.
type PageMeta struct {
	Page        int
	TotalPages  int
	HasNextPage bool
	HasPrevPage bool
}

// NewPageMeta computes pagination metadata for a total item count.
// totalPages = ceil(total/limit); hasNextPage iff page < totalPages;
// hasPrevPage iff page > 1.
func NewPageMeta(total int64, page, limit int) PageMeta {
	if limit <= 0 {
		limit = DefaultPageSize
	}
	if page < 1 {
		page = DefaultPage
	}

	totalPages := 0
	if total > 0 {
		totalPages = int(math.Ceil(float64(total) / float64(limit)))
	}

	return PageMeta{
		Page:        page,
		TotalPages:  totalPages,
		HasNextPage: page < totalPages,
		HasPrevPage: page > 1,
	}
}

// CalculateOffset converts a 1-based page number to a query offset.
func CalculateOffset(page, limit int) uint64 {
	if limit <= 0 {
		limit = DefaultPageSize
	}
	if page < 1 {
		page = DefaultPage
	}
	return uint64((page - 1) * limit)
}

// ParsePaginationParams extracts page and limit from the request, falling
// back to defaults when the values are absent or malformed.
func ParsePaginationParams(c *gin.Context) (page, limit int) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = DefaultPage
	}

	limit, err = strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || limit <= 0 {
		limit = DefaultPageSize
	} else if limit > MaxPageSize {
		limit = MaxPageSize
	}

	return page, limit
}

// RoundAvg rounds an average to one decimal place for display.
func RoundAvg(v float64) float64 {
	return math.Round(v*10) / 10
}
