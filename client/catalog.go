// Package client implements the storefront's view of the paginated
// catalog API. Filtering and sorting are delegated server-side; this
// side owns the filter spec, pagination state, and the
// Idle/Loading/Ready/Error display lifecycle.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"

	"bean-bloom/models"
	"bean-bloom/utils"
)

type State int

const (
	StateIdle State = iota
	StateLoading
	StateReady
	StateError
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	case StateError:
		return "error"
	}
	return "unknown"
}

// CatalogView manages the request/response lifecycle against the
// product-listing endpoint. While a request is outstanding the view is
// Loading; a failed request keeps the last-known-good spec and page so
// retry and re-filter stay possible.
type CatalogView struct {
	baseURL  string
	pageSize int
	client   *http.Client

	mu    sync.Mutex
	seq   uint64
	state State
	spec  models.FilterSpec
	page  models.ProductListResponse
	err   error
}

func NewCatalogView(baseURL string, pageSize int) *CatalogView {
	if pageSize <= 0 {
		pageSize = 40
	}
	return &CatalogView{
		baseURL:  baseURL,
		pageSize: pageSize,
		client:   &http.Client{Timeout: 15 * time.Second},
		state:    StateIdle,
		spec:     models.FilterSpec{Sort: models.SortDefault, Page: 1},
	}
}

func (v *CatalogView) State() State {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.state
}

func (v *CatalogView) Err() error {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.err
}

// Page returns the last successfully loaded page.
func (v *CatalogView) Page() models.ProductListResponse {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.page
}

// Spec returns the last-known-good filter spec.
func (v *CatalogView) Spec() models.FilterSpec {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.spec
}

// Reflect returns the query parameters for the last-known-good spec so
// a reload or shared link reproduces the same view.
func (v *CatalogView) Reflect() url.Values {
	return v.Spec().Values()
}

// Fetch issues a listing request for the given spec. Each call
// supersedes any outstanding one: a response that arrives after a newer
// Fetch has been issued is dropped, so the last request wins.
func (v *CatalogView) Fetch(ctx context.Context, spec models.FilterSpec) error {
	v.mu.Lock()
	v.seq++
	token := v.seq
	v.state = StateLoading
	v.mu.Unlock()

	page, err := v.request(ctx, spec)

	v.mu.Lock()
	defer v.mu.Unlock()
	if token != v.seq {
		// Superseded while in flight.
		return nil
	}
	if err != nil {
		v.state = StateError
		v.err = err
		return err
	}

	v.state = StateReady
	v.err = nil
	v.spec = spec
	v.spec.Page = page.Page
	v.page = *page
	return nil
}

func (v *CatalogView) request(ctx context.Context, spec models.FilterSpec) (*models.ProductListResponse, error) {
	q := spec.Values()
	page := spec.Page
	if page < 1 {
		page = 1
	}
	q.Set("page", strconv.Itoa(page))
	q.Set("page_size", strconv.Itoa(v.pageSize))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, v.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := v.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("product listing returned status %d", resp.StatusCode)
	}

	var result models.ProductListResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode product listing: %w", err)
	}
	return &result, nil
}

// PriceDisplay is the rendered price for one product card: the current
// price, plus the struck-through original and percentage off when a
// discount is active.
type PriceDisplay struct {
	Current  string
	Original string
	Percent  int
}

func PriceFor(p models.Product) PriceDisplay {
	d := PriceDisplay{Current: utils.FormatMoney(p.Price)}
	if p.HasDiscount() {
		d.Original = utils.FormatMoney(p.OriginalPrice)
		d.Percent = utils.DiscountPercent(p.OriginalPrice, p.Price)
	}
	return d
}
