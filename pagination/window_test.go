package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWindow(t *testing.T) {
	tests := []struct {
		name       string
		current    int
		total      int
		maxVisible int
		want       []int
	}{
		{"everything fits", 3, 5, 7, []int{1, 2, 3, 4, 5}},
		{"single page", 1, 1, 7, []int{1}},
		{"centered in the middle", 25, 100, 7, []int{22, 23, 24, 25, 26, 27, 28}},
		{"anchored at the start", 1, 50, 7, []int{1, 2, 3, 4, 5, 6, 7}},
		{"anchored at the end", 50, 50, 7, []int{44, 45, 46, 47, 48, 49, 50}},
		{"near the start, still centered", 5, 50, 7, []int{2, 3, 4, 5, 6, 7, 8}},
		{"second page snaps to the start", 2, 50, 7, []int{1, 2, 3, 4, 5, 6, 7}},
		{"near the end snaps to the end", 48, 50, 7, []int{44, 45, 46, 47, 48, 49, 50}},
		{"even window width", 10, 50, 6, []int{7, 8, 9, 10, 11, 12}},
		{"window of one", 10, 50, 1, []int{10}},
		{"total just over the width", 8, 8, 7, []int{2, 3, 4, 5, 6, 7, 8}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Window(tt.current, tt.total, tt.maxVisible))
		})
	}
}

func TestWindow_PanicsOnBadWidth(t *testing.T) {
	assert.Panics(t, func() { Window(1, 10, 0) })
	assert.Panics(t, func() { Window(1, 10, -1) })
}

// TestWindow_Invariants sweeps current/total/maxVisible combinations and
// checks the structural guarantees: length min(total, maxVisible),
// consecutive values, all in [1, total], and current included whenever it is
// itself in range.
func TestWindow_Invariants(t *testing.T) {
	for _, total := range []int{1, 2, 5, 7, 8, 20, 100} {
		for _, maxVisible := range []int{1, 2, 3, 6, 7, 10} {
			for current := 1; current <= total; current++ {
				pages := Window(current, total, maxVisible)

				wantLen := total
				if maxVisible < total {
					wantLen = maxVisible
				}
				if len(pages) != wantLen {
					t.Fatalf("Window(%d, %d, %d) has length %d, want %d",
						current, total, maxVisible, len(pages), wantLen)
				}

				for i, p := range pages {
					if p < 1 || p > total {
						t.Fatalf("Window(%d, %d, %d) contains out-of-bounds page %d",
							current, total, maxVisible, p)
					}
					if i > 0 && p != pages[i-1]+1 {
						t.Fatalf("Window(%d, %d, %d) is not consecutive: %v",
							current, total, maxVisible, pages)
					}
				}

				found := false
				for _, p := range pages {
					if p == current {
						found = true
						break
					}
				}
				if !found {
					t.Fatalf("Window(%d, %d, %d) = %v does not contain the current page",
						current, total, maxVisible, pages)
				}
			}
		}
	}
}
