// Package ident generates stable HTML element IDs for components rendered
// without a caller-supplied ID. IDs come from a process-wide monotonic
// counter, so they are unique within a process and safe to mint from
// concurrent render goroutines.
package ident

import (
	"strconv"
	"sync/atomic"
)

var counter atomic.Uint64

// Next returns the next ID for prefix, e.g. Next("pagination") returns
// "pagination-4".
func Next(prefix string) string {
	return prefix + "-" + strconv.FormatUint(counter.Add(1), 10)
}
