// Package pagination computes page counts, visible page windows, item ranges
// and navigation URLs for paged list views.
//
// Everything in this package is a pure function of its arguments: nothing is
// cached, nothing is mutated, and every operation is safe to call from any
// number of goroutines. Ordinary out-of-range inputs (zero items, a current
// page past the last page) never fail; the caller gets a best-effort,
// internally consistent result. Only the stated preconditions (PerPage >= 1
// when an item count is used, MaxVisible >= 1) panic, since violating them is
// a caller bug rather than a runtime condition.
package pagination

// DefaultMaxVisible is the page-window width used when Config.MaxVisible is
// left zero.
const DefaultMaxVisible = 7

// Input describes one paging request.
//
// Exactly one sizing source applies: an explicit TotalPages, or the
// TotalItems/PerPage pair. CurrentPage is 1-indexed and taken as given; a
// value outside [1, TotalPages] yields a window and range computed as if the
// page existed, since CurrentPage is assumed to come from a trusted source.
type Input struct {
	CurrentPage int // 1-indexed page being viewed
	TotalPages  int // explicit page count; 0 means derive from TotalItems
	TotalItems  int // total collection size; used when TotalPages is 0
	PerPage     int // items per page; required when TotalItems is used
}

// Config allows customization of pagination behavior.
type Config struct {
	MaxVisible int // maximum page buttons shown at once; 0 means DefaultMaxVisible
}

// Data contains pagination information for display. It is recomputed fresh on
// every call to New and holds no state of its own.
type Data struct {
	CurrentPage int   // Current page number (1-indexed)
	TotalPages  int   // Total number of pages, always >= 1
	PerPage     int   // Results per page (0 when unknown)
	TotalItems  int   // Total number of results (0 when unknown)
	Pages       []int // Visible page window: consecutive, within [1, TotalPages]
	HasPrevious bool  // True if a previous page exists
	HasNext     bool  // True if a next page exists
	PrevPage    int   // Previous page number
	NextPage    int   // Next page number
	RangeStart  int   // First item index shown (1-indexed); 0 when TotalItems unknown
	RangeEnd    int   // Last item index shown; 0 when TotalItems unknown
}

// New computes the full pagination snapshot for one request.
func New(in Input, cfg Config) Data {
	maxVisible := cfg.MaxVisible
	if maxVisible == 0 {
		maxVisible = DefaultMaxVisible
	}

	total := totalPagesFor(in)

	d := Data{
		CurrentPage: in.CurrentPage,
		TotalPages:  total,
		PerPage:     in.PerPage,
		TotalItems:  in.TotalItems,
		Pages:       Window(in.CurrentPage, total, maxVisible),
		HasPrevious: in.CurrentPage > 1,
		HasNext:     in.CurrentPage < total,
		PrevPage:    in.CurrentPage - 1,
		NextPage:    in.CurrentPage + 1,
	}

	if in.TotalItems > 0 && in.PerPage > 0 {
		d.RangeStart, d.RangeEnd = ItemRange(in.CurrentPage, in.PerPage, in.TotalItems)
	}

	return d
}

// totalPagesFor resolves the page count from whichever sizing source the
// input carries. An explicit TotalPages wins; otherwise the item count is
// divided up; with no sizing information at all there is exactly one page.
func totalPagesFor(in Input) int {
	switch {
	case in.TotalPages > 0:
		return in.TotalPages
	case in.TotalItems > 0 || in.PerPage > 0:
		return PageCount(in.TotalItems, in.PerPage)
	default:
		return 1
	}
}

// PageCount derives a total page count from an item count and page size using
// ceiling division. Zero items still yield one (empty) page, so the result is
// always >= 1.
//
// Panics if perPage < 1.
func PageCount(totalItems, perPage int) int {
	if perPage < 1 {
		panic("pagination: perPage must be at least 1")
	}
	if totalItems <= 0 {
		return 1
	}
	return (totalItems + perPage - 1) / perPage
}

// ItemRange reports the first and last 1-indexed item shown on page current,
// for display text such as "Showing 11-20 of 100". Only meaningful when the
// caller knows the total item count; end is clamped to totalItems so the last
// page reports a short range rather than running past the collection.
func ItemRange(current, perPage, totalItems int) (start, end int) {
	start = (current-1)*perPage + 1
	end = current * perPage
	if end > totalItems {
		end = totalItems
	}
	return start, end
}
