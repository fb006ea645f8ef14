package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTotalPages(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		pageSize int
		want     int
	}{
		{"empty list still has one page", 0, 4, 1},
		{"exact fit", 8, 4, 2},
		{"remainder adds a page", 5, 4, 2},
		{"single row", 1, 4, 1},
		{"one over a boundary", 9, 4, 3},
		{"zero page size", 10, 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TotalPages(tt.total, tt.pageSize))
		})
	}
}

func TestClampPage(t *testing.T) {
	assert.Equal(t, 1, ClampPage(0, 3))
	assert.Equal(t, 1, ClampPage(-5, 3))
	assert.Equal(t, 2, ClampPage(2, 3))
	assert.Equal(t, 3, ClampPage(7, 3))
	assert.Equal(t, 1, ClampPage(1, 1))
}

func TestPage(t *testing.T) {
	rows := []int{1, 2, 3, 4, 5}

	// 5 rows at page size 4 is two pages
	assert.Equal(t, []int{1, 2, 3, 4}, Page(rows, 1, 4))
	assert.Equal(t, []int{5}, Page(rows, 2, 4))

	// page 3 clamps to the last page
	assert.Equal(t, []int{5}, Page(rows, 3, 4))

	// page 0 clamps to the first
	assert.Equal(t, []int{1, 2, 3, 4}, Page(rows, 0, 4))
}

func TestPage_Empty(t *testing.T) {
	assert.Empty(t, Page([]string{}, 1, 4))
	assert.Empty(t, Page([]string{}, 5, 4))
}

func TestPage_ZeroPageSizeReturnsAll(t *testing.T) {
	rows := []int{1, 2, 3}
	assert.Equal(t, rows, Page(rows, 1, 0))
}
