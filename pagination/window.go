package pagination

// Window selects the visible page window for a paging control: a bounded run
// of consecutive page numbers that includes current.
//
// When every page fits (total <= maxVisible) the window is simply [1..total].
// Otherwise a window of exactly maxVisible pages is centered on current and
// snapped to the nearest boundary when the centered window would run past
// one. The snap re-anchors from the open side, so a window near the end of
// the collection can sit off-center relative to current. That asymmetry is
// deliberate: callers depend on the window being reproducible, not on it
// being perfectly centered.
//
// The result always has length min(total, maxVisible) and every element lies
// in [1, total]. Panics if maxVisible < 1.
func Window(current, total, maxVisible int) []int {
	if maxVisible < 1 {
		panic("pagination: maxVisible must be at least 1")
	}
	if total < 1 {
		total = 1
	}

	if total <= maxVisible {
		pages := make([]int, total)
		for i := range pages {
			pages[i] = i + 1
		}
		return pages
	}

	half := maxVisible / 2

	start := current - half
	if start < 1 {
		start = 1
	}
	end := current + half
	if end > total {
		end = total
	}

	// A boundary truncated the centered window; widen it back out from the
	// open side so the control always shows maxVisible buttons.
	if end-start+1 < maxVisible {
		if start == 1 {
			end = maxVisible
			if end > total {
				end = total
			}
		} else {
			start = total - maxVisible + 1
			if start < 1 {
				start = 1
			}
		}
	}

	// An even maxVisible centers one page wide (half pages on each side of
	// current is an odd count); trim the excess from the end.
	if end-start+1 > maxVisible {
		end = start + maxVisible - 1
	}

	pages := make([]int, 0, end-start+1)
	for p := start; p <= end; p++ {
		pages = append(pages, p)
	}
	return pages
}
