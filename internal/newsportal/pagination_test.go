package newsportal

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPagination(t *testing.T) {
	tests := []struct {
		name                  string
		page, size, total     int
		wantPages             int
		wantNext, wantPrevios bool
	}{
		{"FirstOfMany", 1, 12, 24, 2, true, false},
		{"LastPage", 2, 12, 24, 2, false, true},
		{"PartialLastPage", 3, 10, 25, 3, false, true},
		{"Empty", 1, 12, 0, 0, false, false},
		{"BeyondEnd", 5, 12, 24, 2, false, true},
		{"HugeTotal", 1, 12, math.MaxInt, math.MaxInt/12 + 1, true, false},
		{"HugePage", math.MaxInt, 12, 24, 2, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPagination(tt.page, tt.size, tt.total)
			assert.Equal(t, tt.wantPages, p.TotalPages)
			assert.Equal(t, tt.wantNext, p.HasNext)
			assert.Equal(t, tt.wantPrevios, p.HasPrev)
			assert.Equal(t, tt.total, p.TotalItems)
		})
	}
}

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	got, p := Paginate(items, 2, 2)
	assert.Equal(t, []int{3, 4}, got)
	assert.Equal(t, 3, p.TotalPages)

	got, _ = Paginate(items, 3, 2)
	assert.Equal(t, []int{5}, got)

	got, _ = Paginate(items, 0, 2)
	assert.Empty(t, got)

	got, _ = Paginate(items, -1, 2)
	assert.Empty(t, got)

	for _, page := range []int{1<<62 + 1, math.MaxInt} {
		got, p = Paginate(items, page, 2)
		assert.NotNil(t, got)
		assert.Empty(t, got, "page=%d", page)
		assert.Equal(t, page, p.CurrentPage)
		assert.Equal(t, 3, p.TotalPages)
		assert.False(t, p.HasNext)
		assert.True(t, p.HasPrev)
	}
}

func TestPagination_PageNumbers(t *testing.T) {
	tests := []struct {
		name    string
		current int
		total   int
		want    []int
	}{
		{"NoPages", 1, 0, []int{}},
		{"FewPages", 2, 5, []int{1, 2, 3, 4, 5}},
		{"SevenPages", 7, 7, []int{1, 2, 3, 4, 5, 6, 7}},
		{"StartOfMany", 1, 10, []int{1, 2, Gap, 10}},
		{"MiddleOfMany", 5, 10, []int{1, Gap, 4, 5, 6, Gap, 10}},
		{"EndOfMany", 10, 10, []int{1, Gap, 9, 10}},
		{"NearStart", 3, 10, []int{1, 2, 3, 4, Gap, 10}},
		{"NearEnd", 8, 10, []int{1, Gap, 7, 8, 9, 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Pagination{CurrentPage: tt.current, TotalPages: tt.total}
			assert.Equal(t, tt.want, p.PageNumbers())
		})
	}
}
