package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateOffsetLimit(t *testing.T) {
	tests := []struct {
		name       string
		page       int
		size       int
		wantOffset uint64
		wantLimit  int
	}{
		{"first page", 1, 10, 0, 10},
		{"third page", 3, 20, 40, 20},
		{"zero page defaults to first", 0, 10, 0, 10},
		{"negative page defaults to first", -5, 10, 0, 10},
		{"zero size uses default", 2, 0, DefaultPageSize, DefaultPageSize},
		{"oversized page size uses default", 1, MaxPageSize + 1, 0, DefaultPageSize},
		{"max size allowed", 1, MaxPageSize, 0, MaxPageSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			offset, limit := CalculateOffsetLimit(tt.page, tt.size)
			assert.Equal(t, tt.wantOffset, offset)
			assert.Equal(t, tt.wantLimit, limit)
		})
	}
}

func TestNewPaginationInfo(t *testing.T) {
	info := NewPaginationInfo(35, 2, 10)
	assert.Equal(t, 2, info.CurrentPage)
	assert.Equal(t, 10, info.PageSize)
	assert.Equal(t, int64(35), info.TotalItems)
	assert.Equal(t, 4, info.TotalPages)
}

func TestNewPaginationInfoEmpty(t *testing.T) {
	info := NewPaginationInfo(0, 1, 10)
	assert.Equal(t, 1, info.CurrentPage)
	assert.Equal(t, 1, info.TotalPages)
	assert.Equal(t, int64(0), info.TotalItems)
}

func TestNewPaginationInfoClampsPage(t *testing.T) {
	info := NewPaginationInfo(25, 9, 10)
	assert.Equal(t, 3, info.TotalPages)
	assert.Equal(t, 3, info.CurrentPage)
}
