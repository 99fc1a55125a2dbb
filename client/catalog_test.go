package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bean-bloom/models"
)

func listingHandler(t *testing.T, fail *bool, lastQuery *map[string]string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if lastQuery != nil {
			q := map[string]string{}
			for key := range r.URL.Query() {
				q[key] = r.URL.Query().Get(key)
			}
			*lastQuery = q
		}
		if fail != nil && *fail {
			http.Error(w, "boom", http.StatusInternalServerError)
			return
		}
		resp := models.ProductListResponse{
			Results: []models.Product{
				{ID: 1, Name: "House Blend 340g", Price: 12.5},
				{ID: 3, Name: "Chocolate Almond Bar", Price: 15.0, OriginalPrice: 20.0},
			},
			Page:       1,
			TotalPages: 4,
			Rubros:     []models.Rubro{{ID: 1, Name: "Coffee", Slug: "coffee"}},
			Categories: []models.Category{{ID: 2, Name: "Beans", Slug: "beans", RubroID: 1}},
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}
}

func TestCatalogView_FetchReady(t *testing.T) {
	var lastQuery map[string]string
	srv := httptest.NewServer(listingHandler(t, nil, &lastQuery))
	defer srv.Close()

	view := NewCatalogView(srv.URL, 40)
	assert.Equal(t, StateIdle, view.State())

	spec := models.FilterSpec{Search: "blend", Sort: models.SortPriceAsc, Page: 1}
	require.NoError(t, view.Fetch(context.Background(), spec))

	assert.Equal(t, StateReady, view.State())
	assert.NoError(t, view.Err())

	page := view.Page()
	require.Len(t, page.Results, 2)
	assert.Equal(t, 4, page.TotalPages)
	assert.Len(t, page.Rubros, 1)
	assert.Len(t, page.Categories, 1)

	// The request carries the spec plus explicit pagination.
	assert.Equal(t, "blend", lastQuery["search"])
	assert.Equal(t, "price-asc", lastQuery["sort"])
	assert.Equal(t, "1", lastQuery["page"])
	assert.Equal(t, "40", lastQuery["page_size"])
}

func TestCatalogView_DefaultSortOmitted(t *testing.T) {
	var lastQuery map[string]string
	srv := httptest.NewServer(listingHandler(t, nil, &lastQuery))
	defer srv.Close()

	view := NewCatalogView(srv.URL, 40)
	require.NoError(t, view.Fetch(context.Background(), models.FilterSpec{Sort: models.SortDefault}))

	_, hasSort := lastQuery["sort"]
	assert.False(t, hasSort)
}

func TestCatalogView_ErrorKeepsLastKnownGood(t *testing.T) {
	fail := false
	srv := httptest.NewServer(listingHandler(t, &fail, nil))
	defer srv.Close()

	view := NewCatalogView(srv.URL, 40)
	goodSpec := models.FilterSpec{Search: "blend", Page: 1}
	require.NoError(t, view.Fetch(context.Background(), goodSpec))
	goodPage := view.Page()

	fail = true
	err := view.Fetch(context.Background(), models.FilterSpec{Search: "muffin", Page: 2})

	assert.Error(t, err)
	assert.Equal(t, StateError, view.State())
	assert.Error(t, view.Err())
	// Retry and re-filter remain possible against the previous state.
	assert.Equal(t, "blend", view.Spec().Search)
	assert.Equal(t, goodPage, view.Page())

	fail = false
	require.NoError(t, view.Fetch(context.Background(), goodSpec))
	assert.Equal(t, StateReady, view.State())
	assert.NoError(t, view.Err())
}

func TestCatalogView_StaleResponseDropped(t *testing.T) {
	release := make(chan struct{})
	received := make(chan struct{})

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		slow := r.URL.Query().Get("search") == "slow"
		if slow {
			received <- struct{}{}
			<-release
		}
		resp := models.ProductListResponse{
			Results:    []models.Product{{ID: 1, Name: r.URL.Query().Get("search")}},
			Page:       1,
			TotalPages: 1,
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}))
	defer srv.Close()

	view := NewCatalogView(srv.URL, 40)

	done := make(chan error)
	go func() {
		done <- view.Fetch(context.Background(), models.FilterSpec{Search: "slow"})
	}()
	<-received

	// A newer request lands while the first is still in flight.
	require.NoError(t, view.Fetch(context.Background(), models.FilterSpec{Search: "fast"}))
	close(release)
	require.NoError(t, <-done)

	// The superseded response must not overwrite the newer one.
	assert.Equal(t, StateReady, view.State())
	require.Len(t, view.Page().Results, 1)
	assert.Equal(t, "fast", view.Page().Results[0].Name)
	assert.Equal(t, "fast", view.Spec().Search)
}

func TestCatalogView_Reflect(t *testing.T) {
	srv := httptest.NewServer(listingHandler(t, nil, nil))
	defer srv.Close()

	view := NewCatalogView(srv.URL, 40)
	require.NoError(t, view.Fetch(context.Background(), models.FilterSpec{
		Search: "blend", Rubro: "coffee", Sort: models.SortNameAsc,
	}))

	v := view.Reflect()
	assert.Equal(t, "blend", v.Get("search"))
	assert.Equal(t, "coffee", v.Get("rubro"))
	assert.Equal(t, "name-asc", v.Get("sort"))
	assert.False(t, v.Has("page"))
}

func TestPriceFor(t *testing.T) {
	t.Run("discounted product shows both prices and percent", func(t *testing.T) {
		d := PriceFor(models.Product{Price: 15, OriginalPrice: 20})
		assert.Equal(t, "$15.00", d.Current)
		assert.Equal(t, "$20.00", d.Original)
		assert.Equal(t, 25, d.Percent)
	})

	t.Run("plain product shows only the current price", func(t *testing.T) {
		d := PriceFor(models.Product{Price: 12.5, OriginalPrice: 12.5})
		assert.Equal(t, "$12.50", d.Current)
		assert.Empty(t, d.Original)
		assert.Zero(t, d.Percent)
	})
}
