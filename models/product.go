package models

import "time"

// Rubro is the top-level catalog grouping; categories hang off a rubro.
type Rubro struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type Category struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Slug    string `json:"slug"`
	RubroID int    `json:"rubro_id"`
}

// Product is a catalog entry. Price carries the effective (discounted)
// unit price; OriginalPrice carries the list price when a discount is
// active, so clients can render both.
type Product struct {
	ID               int       `json:"id"`
	Name             string    `json:"name"`
	Slug             string    `json:"slug,omitempty"`
	Price            float64   `json:"price"`
	OriginalPrice    float64   `json:"original_price,omitempty"`
	Discount         float64   `json:"discount,omitempty"`
	DiscountName     string    `json:"discount_name,omitempty"`
	Featured         bool      `json:"featured,omitempty"`
	ShortDescription string    `json:"short_description,omitempty"`
	LongDescription  string    `json:"long_description,omitempty"`
	Image            string    `json:"image,omitempty"`
	CategoryID       int       `json:"category_id,omitempty"`
	Category         string    `json:"category,omitempty"`
	Stock            int       `json:"stock,omitempty"`
	CreatedAt        time.Time `json:"created_at,omitempty"`
}

// HasDiscount reports whether the secondary-price rendering rule applies.
func (p Product) HasDiscount() bool {
	return p.OriginalPrice > p.Price
}
