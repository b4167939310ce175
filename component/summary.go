package component

import (
	"context"
	"io"
	"strconv"
	"strings"

	"github.com/a-h/templ"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/rfinnegan/pagekit/pagination"
)

// RangeSummary renders "Showing 11-20 of 100" for the current page. Renders
// nothing when the snapshot carries no item range (total item count unknown).
func RangeSummary(data pagination.Data) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if data.RangeStart == 0 {
			return nil
		}

		var b strings.Builder
		b.WriteString(`<span class="text-sm text-gray-500">Showing <span class="font-semibold text-gray-900">`)
		b.WriteString(strconv.Itoa(data.RangeStart))
		b.WriteString("-")
		b.WriteString(strconv.Itoa(data.RangeEnd))
		b.WriteString(`</span> of <span class="font-semibold text-gray-900">`)
		b.WriteString(strconv.Itoa(data.TotalItems))
		b.WriteString(`</span></span>`)

		_, err := io.WriteString(w, b.String())
		return err
	})
}

// FilterBadges renders one badge per active filter, e.g. "Origin: machine".
// Empty-valued filters are skipped, matching the URL serialization rule.
func FilterBadges(filters []pagination.Param) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		title := cases.Title(language.English)

		var b strings.Builder
		for _, f := range filters {
			if f.Value == "" {
				continue
			}
			b.WriteString(`<span class="bg-blue-100 text-blue-800 text-xs font-medium me-2 px-2.5 py-0.5 rounded">`)
			b.WriteString(templ.EscapeString(title.String(f.Key)))
			b.WriteString(": ")
			b.WriteString(templ.EscapeString(strings.ToLower(f.Value)))
			b.WriteString(`</span>`)
		}

		_, err := io.WriteString(w, b.String())
		return err
	})
}
