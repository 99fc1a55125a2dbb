package models

import (
	"encoding/json"
	"strconv"
)

// ProductID is the catalog identifier carried by cart line items.
// Catalog sources emit it as a JSON number or a string depending on the
// backend; both forms are accepted and compared by value.
type ProductID string

func (id ProductID) String() string { return string(id) }

func ProductIDFromInt(n int) ProductID {
	return ProductID(strconv.Itoa(n))
}

func (id *ProductID) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*id = ProductID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*id = ProductID(n.String())
	return nil
}

func (id ProductID) MarshalJSON() ([]byte, error) {
	// Numeric ids round-trip as JSON numbers, but only in canonical
	// decimal form: "012" or "+7" would be invalid JSON emitted raw.
	if n, err := strconv.ParseInt(string(id), 10, 64); err == nil && strconv.FormatInt(n, 10) == string(id) {
		return []byte(id), nil
	}
	return json.Marshal(string(id))
}

// LineItem is one cart row: a product reference, a quantity, and a
// snapshot of the product's name/price/image taken when it was added so
// the cart stays renderable after the catalog pages it away.
type LineItem struct {
	ID    ProductID `json:"id"`
	Qty   int       `json:"qty"`
	Name  string    `json:"name,omitempty"`
	Price float64   `json:"price,omitempty"`
	Image string    `json:"image,omitempty"`
}

// Totals is derived from the cart on every read, never stored.
type Totals struct {
	Subtotal float64 `json:"subtotal"`
	Shipping float64 `json:"shipping"`
	Total    float64 `json:"total"`
}
