package component

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rfinnegan/pagekit/pagination"
)

func renderToString(t *testing.T, props PaginationProps) string {
	t.Helper()
	var b strings.Builder
	if err := Pagination(props).Render(context.Background(), &b); err != nil {
		t.Fatalf("render failed: %v", err)
	}
	return b.String()
}

func TestPagination_SyncLinks(t *testing.T) {
	data := pagination.New(pagination.Input{CurrentPage: 2, TotalItems: 100, PerPage: 10}, pagination.Config{})

	html := renderToString(t, PaginationProps{
		Data:        data,
		URLTemplate: "/items?page={page}",
		ID:          "items-nav",
	})

	assert.Contains(t, html, `id="items-nav"`)
	assert.Contains(t, html, `href="/items?page=1"`)
	assert.Contains(t, html, `href="/items?page=3"`)
	assert.Contains(t, html, `aria-current="page"`)
	// Previous exists on page 2, so no disabled control is rendered.
	assert.NotContains(t, html, `aria-disabled="true"`)
}

func TestPagination_DisablesControlsAtBoundaries(t *testing.T) {
	data := pagination.New(pagination.Input{CurrentPage: 1, TotalPages: 1}, pagination.Config{})

	html := renderToString(t, PaginationProps{Data: data, URLTemplate: "/items?page={page}"})

	// One page: both prev and next are disabled spans.
	assert.Equal(t, 2, strings.Count(html, `aria-disabled="true"`))
}

func TestPagination_AsyncAttributes(t *testing.T) {
	data := pagination.New(pagination.Input{CurrentPage: 2, TotalItems: 50, PerPage: 10}, pagination.Config{})

	html := renderToString(t, PaginationProps{
		Data:  data,
		Async: true,
		Query: pagination.Query{
			Base:     "/api/items",
			PushBase: "/items",
			Size:     10,
			Filters:  []pagination.Param{{Key: "origin", Value: "MACHINE"}},
		},
		TargetID: "item-list",
	})

	assert.Contains(t, html, `hx-get="/api/items?page=3&amp;size=10&amp;origin=MACHINE"`)
	assert.Contains(t, html, `hx-push-url="/items?page=3&amp;size=10&amp;origin=MACHINE"`)
	assert.Contains(t, html, `hx-target="#item-list"`)
	assert.NotContains(t, html, "<a ")
}

func TestPagination_GeneratesIDWhenMissing(t *testing.T) {
	data := pagination.New(pagination.Input{CurrentPage: 1, TotalPages: 3}, pagination.Config{})

	first := renderToString(t, PaginationProps{Data: data, URLTemplate: "/items?page={page}"})
	second := renderToString(t, PaginationProps{Data: data, URLTemplate: "/items?page={page}"})

	assert.Contains(t, first, `id="pagination-`)
	assert.NotEqual(t, first, second, "auto-generated IDs should differ between renders")
}

func TestRangeSummary(t *testing.T) {
	data := pagination.New(pagination.Input{CurrentPage: 2, TotalItems: 100, PerPage: 10}, pagination.Config{})

	var b strings.Builder
	err := RangeSummary(data).Render(context.Background(), &b)
	assert.NoError(t, err)
	assert.Contains(t, b.String(), "11-20")
	assert.Contains(t, b.String(), "100")
}

func TestRangeSummary_NoItemCount(t *testing.T) {
	data := pagination.New(pagination.Input{CurrentPage: 1, TotalPages: 5}, pagination.Config{})

	var b strings.Builder
	err := RangeSummary(data).Render(context.Background(), &b)
	assert.NoError(t, err)
	assert.Empty(t, b.String())
}

func TestFilterBadges(t *testing.T) {
	var b strings.Builder
	err := FilterBadges([]pagination.Param{
		{Key: "origin", Value: "MACHINE"},
		{Key: "note", Value: ""},
	}).Render(context.Background(), &b)

	assert.NoError(t, err)
	assert.Contains(t, b.String(), "Origin: machine")
	assert.NotContains(t, b.String(), "Note")
}
