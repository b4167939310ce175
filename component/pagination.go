// Package component renders paging controls as templ components.
//
// The components here are the markup layer over the pagination engine: they
// turn a computed pagination.Data snapshot into a <nav> of page buttons,
// wiring plain links for full-page navigation or hx-get/hx-push-url
// attributes for asynchronous partial updates. Styling follows the Flowbite
// utility-class conventions; callers can override classes and the override
// wins via tailwind-merge.
package component

import (
	"context"
	"io"
	"strconv"
	"strings"

	twmerge "github.com/Oudwins/tailwind-merge-go"
	"github.com/a-h/templ"

	"github.com/rfinnegan/pagekit/ident"
	"github.com/rfinnegan/pagekit/pagination"
)

// Variant selects the style of one paging button.
type Variant int

const (
	VariantPage     Variant = iota // plain, clickable page button
	VariantCurrent                 // the page being viewed
	VariantDisabled                // prev/next control with nowhere to go
)

// classes maps a variant to its utility classes. Kept as a switch rather than
// a map so a new variant without a style is a compile-visible gap here.
func (v Variant) classes() string {
	switch v {
	case VariantCurrent:
		return "z-10 flex items-center justify-center px-3 h-8 leading-tight text-blue-600 border border-gray-300 bg-blue-50 hover:bg-blue-100 hover:text-blue-700"
	case VariantDisabled:
		return "flex items-center justify-center px-3 h-8 leading-tight text-gray-300 bg-white border border-gray-300 cursor-not-allowed"
	case VariantPage:
		return "flex items-center justify-center px-3 h-8 leading-tight text-gray-500 bg-white border border-gray-300 hover:bg-gray-100 hover:text-gray-700"
	}
	panic("component: unknown variant")
}

// PaginationProps configures the Pagination component.
type PaginationProps struct {
	Data        pagination.Data  // computed snapshot to render
	URLTemplate string           // sync navigation template, e.g. "/items?page={page}"
	Query       pagination.Query // async URL builder; used when Async is true
	Async       bool             // render htmx attributes instead of plain links
	TargetID    string           // htmx target element ID, without the leading #
	ID          string           // element ID; auto-generated when empty
	Class       string           // extra classes merged over the nav defaults
}

// Pagination renders the paging control: a previous button, one button per
// visible page and a next button.
func Pagination(props PaginationProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		id := props.ID
		if id == "" {
			id = ident.Next("pagination")
		}

		var b strings.Builder
		b.WriteString(`<nav id="`)
		b.WriteString(templ.EscapeString(id))
		b.WriteString(`" class="`)
		b.WriteString(templ.EscapeString(twmerge.Merge("flex items-center justify-center", props.Class)))
		b.WriteString(`" aria-label="Page navigation">`)
		b.WriteString(`<ul class="inline-flex -space-x-px text-sm">`)

		writeControl(&b, props, props.Data.PrevPage, "Previous", props.Data.HasPrevious)

		for _, page := range props.Data.Pages {
			variant := VariantPage
			if page == props.Data.CurrentPage {
				variant = VariantCurrent
			}
			b.WriteString("<li>")
			writeButton(&b, props, page, strconv.Itoa(page), variant)
			b.WriteString("</li>")
		}

		writeControl(&b, props, props.Data.NextPage, "Next", props.Data.HasNext)

		b.WriteString("</ul></nav>")

		_, err := io.WriteString(w, b.String())
		return err
	})
}

// writeControl renders a prev/next list item, disabled when there is no page
// to move to.
func writeControl(b *strings.Builder, props PaginationProps, page int, label string, enabled bool) {
	b.WriteString("<li>")
	if enabled {
		writeButton(b, props, page, label, VariantPage)
	} else {
		b.WriteString(`<span class="`)
		b.WriteString(templ.EscapeString(VariantDisabled.classes()))
		b.WriteString(`" aria-disabled="true">`)
		b.WriteString(templ.EscapeString(label))
		b.WriteString(`</span>`)
	}
	b.WriteString("</li>")
}

// writeButton renders one navigation element: an anchor for full-page
// navigation, or an htmx-wired button carrying separate fetch and push URLs
// for asynchronous updates.
func writeButton(b *strings.Builder, props PaginationProps, page int, label string, variant Variant) {
	classes := templ.EscapeString(variant.classes())

	if props.Async {
		b.WriteString(`<button type="button" class="`)
		b.WriteString(classes)
		b.WriteString(`" hx-get="`)
		b.WriteString(templ.EscapeString(string(templ.URL(props.Query.FetchURL(page)))))
		b.WriteString(`" hx-push-url="`)
		b.WriteString(templ.EscapeString(string(templ.URL(props.Query.PushURL(page)))))
		b.WriteString(`"`)
		if props.TargetID != "" {
			b.WriteString(` hx-target="#`)
			b.WriteString(templ.EscapeString(props.TargetID))
			b.WriteString(`" hx-swap="outerHTML"`)
		}
		if variant == VariantCurrent {
			b.WriteString(` aria-current="page"`)
		}
		b.WriteString(">")
		b.WriteString(templ.EscapeString(label))
		b.WriteString("</button>")
		return
	}

	b.WriteString(`<a href="`)
	b.WriteString(templ.EscapeString(string(templ.URL(pagination.PageURL(props.URLTemplate, page)))))
	b.WriteString(`" class="`)
	b.WriteString(classes)
	b.WriteString(`"`)
	if variant == VariantCurrent {
		b.WriteString(` aria-current="page"`)
	}
	b.WriteString(">")
	b.WriteString(templ.EscapeString(label))
	b.WriteString("</a>")
}
