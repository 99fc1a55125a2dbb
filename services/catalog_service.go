package services

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"bean-bloom/models"
)

// Catalog computes the visible product list from a fixed in-memory
// catalog, for pages that ship their product set with the page instead
// of paging it from the API.
type Catalog struct {
	products []models.Product
	collator *collate.Collator
}

func NewCatalog(products []models.Product) *Catalog {
	return &Catalog{
		products: products,
		collator: collate.New(language.English, collate.IgnoreCase),
	}
}

// Filter applies category, free-text query, and sort in that order. An
// empty or "All" category and an empty query match everything; default
// sort preserves catalog order.
func (c *Catalog) Filter(f models.FilterSpec) []models.Product {
	q := strings.ToLower(strings.TrimSpace(f.Search))

	list := []models.Product{}
	for _, p := range c.products {
		if f.Category != "" && f.Category != "All" && p.Category != f.Category {
			continue
		}
		if q != "" {
			haystack := strings.ToLower(p.Name + " " + p.ShortDescription + " " + p.LongDescription)
			if !strings.Contains(haystack, q) {
				continue
			}
		}
		list = append(list, p)
	}

	switch f.Sort {
	case models.SortPriceAsc:
		sort.SliceStable(list, func(i, j int) bool { return list[i].Price < list[j].Price })
	case models.SortPriceDesc:
		sort.SliceStable(list, func(i, j int) bool { return list[i].Price > list[j].Price })
	case models.SortNameAsc:
		// Locale-aware, not byte order.
		sort.SliceStable(list, func(i, j int) bool {
			return c.collator.CompareString(list[i].Name, list[j].Name) < 0
		})
	}
	return list
}

// Categories returns the distinct category names in first-seen order,
// for building the filter buttons.
func (c *Catalog) Categories() []string {
	seen := map[string]bool{}
	cats := []string{}
	for _, p := range c.products {
		if p.Category == "" || seen[p.Category] {
			continue
		}
		seen[p.Category] = true
		cats = append(cats, p.Category)
	}
	return cats
}
