package models

import (
	"net/url"
	"strconv"
)

const (
	SortDefault   = "default"
	SortPriceAsc  = "price-asc"
	SortPriceDesc = "price-desc"
	SortNameAsc   = "name-asc"
)

// FilterSpec is the transient, UI-driven view specification for the
// catalog: free-text query, rubro/category facets, sort key, and page.
type FilterSpec struct {
	Search   string
	Rubro    string
	Category string
	Sort     string
	Page     int
	PageSize int
}

// ValidSort reports whether s is one of the supported sort keys.
func ValidSort(s string) bool {
	switch s {
	case "", SortDefault, SortPriceAsc, SortPriceDesc, SortNameAsc:
		return true
	}
	return false
}

// Values encodes the spec into query parameters, omitting absent and
// default values so a reflected URL stays clean. "default" sort is a
// passthrough: it is omitted and the server applies its own ordering.
func (f FilterSpec) Values() url.Values {
	v := url.Values{}
	if f.Search != "" {
		v.Set("search", f.Search)
	}
	if f.Rubro != "" {
		v.Set("rubro", f.Rubro)
	}
	if f.Category != "" {
		v.Set("category", f.Category)
	}
	if f.Sort != "" && f.Sort != SortDefault {
		v.Set("sort", f.Sort)
	}
	if f.Page > 1 {
		v.Set("page", strconv.Itoa(f.Page))
	}
	return v
}

// ParseFilterSpec is the inverse of Values: it rebuilds a spec from
// query parameters, falling back to defaults for absent keys.
func ParseFilterSpec(v url.Values) FilterSpec {
	f := FilterSpec{
		Search:   v.Get("search"),
		Rubro:    v.Get("rubro"),
		Category: v.Get("category"),
		Sort:     v.Get("sort"),
		Page:     1,
	}
	if f.Sort == "" {
		f.Sort = SortDefault
	}
	if page, err := strconv.Atoi(v.Get("page")); err == nil && page > 1 {
		f.Page = page
	}
	if size, err := strconv.Atoi(v.Get("page_size")); err == nil && size > 0 {
		f.PageSize = size
	}
	return f
}
