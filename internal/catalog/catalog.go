// Package catalog provides the in-memory item catalogue backing the demo
// server. It stands in for a real data store; the pagination engine never
// touches it directly.
package catalog

import (
	"fmt"

	"github.com/google/uuid"
)

// Item is one catalogue entry.
type Item struct {
	ID       uuid.UUID // Stable identifier, used in detail URLs
	Name     string    // Display name
	Origin   string    // How the entry was created: "machine" or "manual"
	Category string    // Coarse grouping for filtering
}

// Catalog holds a fixed set of items. It is populated once at startup and
// read-only afterwards, so it is safe for concurrent use.
type Catalog struct {
	items []Item
}

var (
	origins    = []string{"machine", "manual"}
	categories = []string{"tools", "fasteners", "fittings", "abrasives"}
)

// New seeds a catalogue of n items with a deterministic spread of origins and
// categories so every filter combination has matches.
func New(n int) *Catalog {
	items := make([]Item, n)
	for i := range items {
		items[i] = Item{
			ID:       uuid.New(),
			Name:     fmt.Sprintf("Item %03d", i+1),
			Origin:   origins[i%len(origins)],
			Category: categories[i%len(categories)],
		}
	}
	return &Catalog{items: items}
}

// Filter restricts List results. Empty fields match everything.
type Filter struct {
	Origin   string
	Category string
}

// List returns one page of matching items plus the total match count. Pages
// are 1-indexed; a page past the end returns an empty slice with the count
// intact.
func (c *Catalog) List(page, size int, f Filter) ([]Item, int) {
	var matched []Item
	for _, it := range c.items {
		if f.Origin != "" && it.Origin != f.Origin {
			continue
		}
		if f.Category != "" && it.Category != f.Category {
			continue
		}
		matched = append(matched, it)
	}

	start := (page - 1) * size
	if start < 0 || start >= len(matched) {
		return nil, len(matched)
	}
	end := start + size
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], len(matched)
}

// Get returns the item with the given ID.
func (c *Catalog) Get(id uuid.UUID) (Item, bool) {
	for _, it := range c.items {
		if it.ID == id {
			return it, true
		}
	}
	return Item{}, false
}
