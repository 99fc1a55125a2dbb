package models

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterSpec_ValuesOmitsDefaults(t *testing.T) {
	t.Run("zero spec encodes to nothing", func(t *testing.T) {
		assert.Empty(t, FilterSpec{Sort: SortDefault, Page: 1}.Values().Encode())
	})

	t.Run("only non-defaults appear", func(t *testing.T) {
		v := FilterSpec{Search: "choc", Sort: SortPriceAsc, Page: 1}.Values()
		assert.Equal(t, "choc", v.Get("search"))
		assert.Equal(t, "price-asc", v.Get("sort"))
		assert.False(t, v.Has("page"))
		assert.False(t, v.Has("rubro"))
		assert.False(t, v.Has("category"))
	})

	t.Run("default sort is a passthrough and omitted", func(t *testing.T) {
		assert.False(t, FilterSpec{Sort: SortDefault}.Values().Has("sort"))
	})
}

func TestFilterSpec_RoundTrip(t *testing.T) {
	spec := FilterSpec{
		Search:   "single origin",
		Rubro:    "coffee",
		Category: "beans",
		Sort:     SortNameAsc,
		Page:     3,
	}

	parsed := ParseFilterSpec(spec.Values())
	assert.Equal(t, spec, parsed)
}

func TestParseFilterSpec_Defaults(t *testing.T) {
	spec := ParseFilterSpec(url.Values{})
	assert.Equal(t, FilterSpec{Sort: SortDefault, Page: 1}, spec)
}

func TestParseFilterSpec_IgnoresBadPage(t *testing.T) {
	v := url.Values{}
	v.Set("page", "banana")
	assert.Equal(t, 1, ParseFilterSpec(v).Page)

	v.Set("page", "0")
	assert.Equal(t, 1, ParseFilterSpec(v).Page)
}

func TestValidSort(t *testing.T) {
	assert.True(t, ValidSort(""))
	assert.True(t, ValidSort(SortDefault))
	assert.True(t, ValidSort(SortPriceAsc))
	assert.True(t, ValidSort(SortPriceDesc))
	assert.True(t, ValidSort(SortNameAsc))
	assert.False(t, ValidSort("popularity"))
}
