package pagination

import (
	"net/url"
	"strconv"
	"strings"
)

// Placeholder is the token replaced with the page number in URL templates.
const Placeholder = "{page}"

// PageURL substitutes page into the single Placeholder token in template. The
// rest of the template is caller-authored and may already contain query
// syntax, so no encoding is applied to it.
func PageURL(template string, page int) string {
	return strings.Replace(template, Placeholder, strconv.Itoa(page), 1)
}

// Param is one query parameter. Parameters travel as a slice rather than
// url.Values because the serialization order must match the caller's
// insertion order, and url.Values is unordered.
type Param struct {
	Key   string
	Value string
}

// Query builds the fetch and history URLs for asynchronous partial-page
// updates. The fetch URL retrieves the page's data (often an API path); the
// push URL is what lands in browser history and need not match.
type Query struct {
	Base           string  // data-fetch endpoint, e.g. "/api/items"
	PushBase       string  // browser-history base; empty means fall back to Base
	Size           int     // page size, sent as the "size" parameter
	Filters        []Param // caller filters, appended in insertion order
	ExcludeFilters bool    // drop Filters from generated URLs
}

// FetchURL returns the URL used to retrieve page's data.
func (q Query) FetchURL(page int) string {
	return q.build(q.Base, page)
}

// PushURL returns the URL recorded in browser history when navigating to
// page. Falls back to the fetch base when no distinct push base is set.
func (q Query) PushURL(page int) string {
	base := q.PushBase
	if base == "" {
		base = q.Base
	}
	return q.build(base, page)
}

// build serializes page, size and the surviving filters against base. Filters
// with empty values are dropped; the rest are percent-encoded and emitted in
// insertion order.
func (q Query) build(base string, page int) string {
	var b strings.Builder
	b.WriteString(base)
	if strings.Contains(base, "?") {
		b.WriteByte('&')
	} else {
		b.WriteByte('?')
	}
	b.WriteString("page=")
	b.WriteString(strconv.Itoa(page))
	b.WriteString("&size=")
	b.WriteString(strconv.Itoa(q.Size))

	if !q.ExcludeFilters {
		for _, p := range q.Filters {
			if p.Value == "" {
				continue
			}
			b.WriteByte('&')
			b.WriteString(url.QueryEscape(p.Key))
			b.WriteByte('=')
			b.WriteString(url.QueryEscape(p.Value))
		}
	}

	return b.String()
}
