// Package handler contains the HTTP handlers for the pagekit demo server.
//
// The item list is the showcase: a full page at /items, an htmx fragment at
// /partials/items for asynchronous page changes, and a detail page per item.
package handler

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/a-h/templ"
	"github.com/google/uuid"

	"github.com/rfinnegan/pagekit/component"
	"github.com/rfinnegan/pagekit/internal/catalog"
	"github.com/rfinnegan/pagekit/internal/metrics"
	"github.com/rfinnegan/pagekit/pagination"
)

// fragmentID is the element swapped by htmx on page changes.
const fragmentID = "item-list"

// ItemsHandler serves the paginated item catalogue.
type ItemsHandler struct {
	catalog    *catalog.Catalog
	logger     *slog.Logger
	pageSize   int
	maxVisible int
}

// NewItemsHandler creates the item list handler.
func NewItemsHandler(c *catalog.Catalog, logger *slog.Logger, pageSize, maxVisible int) *ItemsHandler {
	return &ItemsHandler{
		catalog:    c,
		logger:     logger,
		pageSize:   pageSize,
		maxVisible: maxVisible,
	}
}

// RegisterRoutes registers the item routes on the mux.
func (h *ItemsHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /items", h.List)
	mux.HandleFunc("GET /items/{id}", h.Show)
	mux.HandleFunc("GET /partials/items", h.ListPartial)
}

// =============================================================================
// Handlers
// =============================================================================

// List renders the full item list page.
func (h *ItemsHandler) List(w http.ResponseWriter, r *http.Request) {
	metrics.PagesRendered.WithLabelValues("full").Inc()

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprint(w, pageHead)
	h.renderFragment(w, r)
	fmt.Fprint(w, pageFoot)
}

// ListPartial renders only the swappable list fragment, for htmx requests.
func (h *ItemsHandler) ListPartial(w http.ResponseWriter, r *http.Request) {
	metrics.PagesRendered.WithLabelValues("partial").Inc()

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	h.renderFragment(w, r)
}

// Show renders a single item.
func (h *ItemsHandler) Show(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		http.NotFound(w, r)
		return
	}

	item, ok := h.catalog.Get(id)
	if !ok {
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprint(w, pageHead)
	fmt.Fprintf(w, `<h1 class="text-2xl font-bold mb-2">%s</h1>`, templ.EscapeString(item.Name))
	fmt.Fprintf(w, `<p class="text-gray-500">origin %s, category %s</p>`,
		templ.EscapeString(item.Origin), templ.EscapeString(item.Category))
	fmt.Fprint(w, `<p class="mt-4"><a class="text-blue-600 hover:underline" href="/items">Back to list</a></p>`)
	fmt.Fprint(w, pageFoot)
}

// =============================================================================
// Fragment rendering
// =============================================================================

// renderFragment writes the filter badges, item table, range summary and
// paging control for the page named in the request.
func (h *ItemsHandler) renderFragment(w http.ResponseWriter, r *http.Request) {
	page := 1
	if pageStr := r.URL.Query().Get("page"); pageStr != "" {
		if p, err := strconv.Atoi(pageStr); err == nil && p > 0 {
			page = p
		}
	}

	size := h.pageSize
	if sizeStr := r.URL.Query().Get("size"); sizeStr != "" {
		if s, err := strconv.Atoi(sizeStr); err == nil && s > 0 {
			size = s
		}
	}

	filter := catalog.Filter{
		Origin:   r.URL.Query().Get("origin"),
		Category: r.URL.Query().Get("category"),
	}
	filters := []pagination.Param{
		{Key: "origin", Value: filter.Origin},
		{Key: "category", Value: filter.Category},
	}

	items, total := h.catalog.List(page, size, filter)

	data := pagination.New(pagination.Input{
		CurrentPage: page,
		TotalItems:  total,
		PerPage:     size,
	}, pagination.Config{MaxVisible: h.maxVisible})

	query := pagination.Query{
		Base:     "/partials/items",
		PushBase: "/items",
		Size:     size,
		Filters:  filters,
	}

	fmt.Fprintf(w, `<div id="%s">`, fragmentID)

	fmt.Fprint(w, `<div class="mb-4">`)
	h.render(w, r, component.FilterBadges(filters))
	fmt.Fprint(w, `</div>`)

	fmt.Fprint(w, `<ul class="divide-y divide-gray-200 mb-4">`)
	for _, item := range items {
		fmt.Fprintf(w, `<li class="py-2"><a class="text-blue-600 hover:underline" href="/items/%s">%s</a> <span class="text-xs text-gray-400">%s / %s</span></li>`,
			item.ID, templ.EscapeString(item.Name),
			templ.EscapeString(item.Origin), templ.EscapeString(item.Category))
	}
	if len(items) == 0 {
		fmt.Fprint(w, `<li class="py-2 text-gray-500">No items on this page.</li>`)
	}
	fmt.Fprint(w, `</ul>`)

	fmt.Fprint(w, `<div class="flex flex-col items-center gap-2">`)
	h.render(w, r, component.RangeSummary(data))
	h.render(w, r, component.Pagination(component.PaginationProps{
		Data:     data,
		Query:    query,
		Async:    true,
		TargetID: fragmentID,
	}))
	fmt.Fprint(w, `</div>`)

	fmt.Fprint(w, `</div>`)
}

// render writes a component, logging rather than failing the response on
// error since the fragment may already be partially written.
func (h *ItemsHandler) render(w http.ResponseWriter, r *http.Request, c templ.Component) {
	if err := c.Render(r.Context(), w); err != nil {
		h.logger.Error("component render failed", "path", r.URL.Path, "error", err)
	}
}

// Page shell for the full-page views. Tailwind and htmx come from CDNs; this
// is a demo, not a deployment target.
const pageHead = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>pagekit demo</title>
<script src="https://unpkg.com/htmx.org@1.9.12"></script>
<script src="https://cdn.tailwindcss.com"></script>
</head>
<body class="bg-gray-50">
<main class="max-w-2xl mx-auto py-8 px-4">
`

const pageFoot = `
</main>
</body>
</html>
`
