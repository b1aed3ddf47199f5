package helpers

import (
	"math"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestCalculateOffsetLimit(t *testing.T) {
	offset, limit := CalculateOffsetLimit(3, 20)
	assert.Equal(t, uint64(40), offset)
	assert.Equal(t, 20, limit)

	offset, limit = CalculateOffsetLimit(0, 500)
	assert.Equal(t, uint64(0), offset)
	assert.Equal(t, DefaultPageSize, limit)

	offset, limit = CalculateOffsetLimit(1<<62, MaxPageSize)
	assert.Equal(t, uint64(MaxPage-1)*uint64(MaxPageSize), offset)
	assert.LessOrEqual(t, offset, uint64(math.MaxInt))
	assert.Equal(t, MaxPageSize, limit)
}

func TestNewPaginationInfo(t *testing.T) {
	info := NewPaginationInfo(25, 2, 10)
	assert.Equal(t, 3, info.TotalPages)
	assert.Equal(t, 2, info.CurrentPage)

	info = NewPaginationInfo(0, 1, 10)
	assert.Equal(t, 1, info.TotalPages)

	info = NewPaginationInfo(5, 9, 10)
	assert.Equal(t, 1, info.CurrentPage)
}

func TestParsePaginationParams(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		query string
		page  int
		size  int
		paged bool
	}{
		{"", DefaultPage, 0, false},
		{"?page=2&size=5", 2, 5, true},
		{"?page=-1", DefaultPage, DefaultPageSize, true},
		{"?size=1000", DefaultPage, DefaultPageSize, true},
		{"?page=4611686018427387904&size=10", MaxPage, 10, true},
	}

	for _, tt := range tests {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest("GET", "/student/get-all-course"+tt.query, nil)

		page, size, paged := ParsePaginationParams(c)
		assert.Equal(t, tt.page, page, tt.query)
		assert.Equal(t, tt.size, size, tt.query)
		assert.Equal(t, tt.paged, paged, tt.query)
	}
}
