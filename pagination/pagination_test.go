package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageCount(t *testing.T) {
	tests := []struct {
		name       string
		totalItems int
		perPage    int
		want       int
	}{
		{"zero items yields one empty page", 0, 10, 1},
		{"fewer items than a page", 3, 10, 1},
		{"exact multiple", 100, 10, 10},
		{"one item over", 101, 10, 11},
		{"single item", 1, 10, 1},
		{"page size one", 7, 1, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PageCount(tt.totalItems, tt.perPage))
		})
	}
}

func TestPageCount_PanicsOnBadPageSize(t *testing.T) {
	assert.Panics(t, func() { PageCount(100, 0) })
	assert.Panics(t, func() { PageCount(100, -5) })
}

func TestItemRange(t *testing.T) {
	tests := []struct {
		name       string
		current    int
		perPage    int
		totalItems int
		wantStart  int
		wantEnd    int
	}{
		{"second page of one hundred", 2, 10, 100, 11, 20},
		{"first page", 1, 10, 100, 1, 10},
		{"short last page", 3, 10, 25, 21, 25},
		{"single item", 1, 10, 1, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := ItemRange(tt.current, tt.perPage, tt.totalItems)
			assert.Equal(t, tt.wantStart, start)
			assert.Equal(t, tt.wantEnd, end)
		})
	}
}

func TestNew_DerivesTotalFromItems(t *testing.T) {
	d := New(Input{CurrentPage: 2, TotalItems: 100, PerPage: 10}, Config{})

	assert.Equal(t, 10, d.TotalPages)
	assert.Equal(t, 11, d.RangeStart)
	assert.Equal(t, 20, d.RangeEnd)
	assert.True(t, d.HasPrevious)
	assert.True(t, d.HasNext)
	assert.Equal(t, 1, d.PrevPage)
	assert.Equal(t, 3, d.NextPage)
}

func TestNew_ExplicitTotalWins(t *testing.T) {
	d := New(Input{CurrentPage: 1, TotalPages: 5}, Config{})

	assert.Equal(t, 5, d.TotalPages)
	// No item count given, so the range stays unset.
	assert.Zero(t, d.RangeStart)
	assert.Zero(t, d.RangeEnd)
}

func TestNew_NoSizingInformation(t *testing.T) {
	d := New(Input{CurrentPage: 1}, Config{})

	assert.Equal(t, 1, d.TotalPages)
	assert.Equal(t, []int{1}, d.Pages)
	assert.False(t, d.HasPrevious)
	assert.False(t, d.HasNext)
}

func TestNew_FirstAndLastPageFlags(t *testing.T) {
	first := New(Input{CurrentPage: 1, TotalPages: 10}, Config{})
	if first.HasPrevious {
		t.Error("page 1 should not have a previous page")
	}
	if !first.HasNext {
		t.Error("page 1 of 10 should have a next page")
	}

	last := New(Input{CurrentPage: 10, TotalPages: 10}, Config{})
	if !last.HasPrevious {
		t.Error("page 10 should have a previous page")
	}
	if last.HasNext {
		t.Error("page 10 of 10 should not have a next page")
	}
}

func TestNew_SinglePageDisablesBothControls(t *testing.T) {
	d := New(Input{CurrentPage: 1, TotalItems: 5, PerPage: 10}, Config{})

	assert.Equal(t, 1, d.TotalPages)
	assert.False(t, d.HasPrevious)
	assert.False(t, d.HasNext)
	assert.Equal(t, 1, d.RangeStart)
	assert.Equal(t, 5, d.RangeEnd)
}

func TestNew_DefaultWindowWidth(t *testing.T) {
	d := New(Input{CurrentPage: 1, TotalPages: 50}, Config{})
	assert.Len(t, d.Pages, DefaultMaxVisible)
}

func TestNew_OutOfRangeCurrentPassesThrough(t *testing.T) {
	// current past the last page is permitted; the caller is trusted.
	d := New(Input{CurrentPage: 12, TotalPages: 10}, Config{})

	assert.Equal(t, 12, d.CurrentPage)
	assert.False(t, d.HasNext)
	assert.True(t, d.HasPrevious)
	assert.Len(t, d.Pages, 7)
	for _, p := range d.Pages {
		if p < 1 || p > 10 {
			t.Errorf("page %d out of bounds [1, 10]", p)
		}
	}
}
