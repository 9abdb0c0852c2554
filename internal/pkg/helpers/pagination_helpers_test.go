package helpers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestNewPageMeta(t *testing.T) {
	tests := []struct {
		name        string
		total       int64
		page, limit int
		totalPages  int
		hasNext     bool
		hasPrev     bool
	}{
		{"first of many", 42, 1, 10, 5, true, false},
		{"middle page", 42, 3, 10, 5, true, true},
		{"last page", 42, 5, 10, 5, false, true},
		{"exact fit", 40, 4, 10, 4, false, true},
		{"empty result", 0, 1, 10, 0, false, false},
		{"single page", 7, 1, 10, 1, false, false},
		{"page past the end", 10, 9, 10, 1, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta := NewPageMeta(tt.total, tt.page, tt.limit)
			assert.Equal(t, tt.page, meta.Page)
			assert.Equal(t, tt.totalPages, meta.TotalPages)
			assert.Equal(t, tt.hasNext, meta.HasNextPage)
			assert.Equal(t, tt.hasPrev, meta.HasPrevPage)
		})
	}
}

func TestNewPageMetaDefaults(t *testing.T) {
	meta := NewPageMeta(25, 0, 0)
	assert.Equal(t, DefaultPage, meta.Page)
	assert.Equal(t, 3, meta.TotalPages)
}

func TestCalculateOffset(t *testing.T) {
	assert.Equal(t, uint64(0), CalculateOffset(1, 10))
	assert.Equal(t, uint64(10), CalculateOffset(2, 10))
	assert.Equal(t, uint64(90), CalculateOffset(10, 10))
	assert.Equal(t, uint64(0), CalculateOffset(0, 10))
	assert.Equal(t, uint64(0), CalculateOffset(-3, 10))
}

func TestParsePaginationParams(t *testing.T) {
	gin.SetMode(gin.TestMode)

	parse := func(query string) (int, int) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest(http.MethodGet, "/?"+query, nil)
		return ParsePaginationParams(c)
	}

	page, limit := parse("page=2&limit=25")
	assert.Equal(t, 2, page)
	assert.Equal(t, 25, limit)

	page, limit = parse("page=abc&limit=-5")
	assert.Equal(t, DefaultPage, page)
	assert.Equal(t, DefaultPageSize, limit)

	// an oversized limit is clamped to the cap, not reset
	page, limit = parse("page=3&limit=500")
	assert.Equal(t, 3, page)
	assert.Equal(t, MaxPageSize, limit)
}

func TestRoundAvg(t *testing.T) {
	assert.InDelta(t, 2016.7, RoundAvg(2016.6666), 1e-9)
	assert.InDelta(t, 3.0, RoundAvg(2.96), 1e-9)
	assert.InDelta(t, 0.0, RoundAvg(0), 1e-9)
	assert.InDelta(t, 12.3, RoundAvg(12.34), 1e-9)
}
