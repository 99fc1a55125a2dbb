package models

import "time"

const (
	DeliveryPickup   = "pickup"
	DeliveryDelivery = "delivery"
)

// ValidDeliveryMethod reports whether m is a supported delivery method.
func ValidDeliveryMethod(m string) bool {
	return m == DeliveryPickup || m == DeliveryDelivery
}

type Order struct {
	ID              int         `json:"id"`
	UserID          *int        `json:"user_id,omitempty"`
	DeliveryMethod  string      `json:"delivery_method"`
	CustomerName    string      `json:"customer_name"`
	CustomerEmail   string      `json:"customer_email"`
	CustomerAddress string      `json:"customer_address,omitempty"`
	CustomerPhone   string      `json:"customer_phone,omitempty"`
	Note            string      `json:"note,omitempty"`
	Subtotal        float64     `json:"subtotal"`
	DiscountTotal   float64     `json:"discount_total"`
	ShippingTotal   float64     `json:"shipping_total"`
	Total           float64     `json:"total"`
	CreatedAt       time.Time   `json:"created_at"`
	Items           []OrderItem `json:"items"`
}

// OrderItem snapshots the product name and unit price at order time so
// the order stays meaningful after catalog edits.
type OrderItem struct {
	ID          int     `json:"id"`
	OrderID     int     `json:"order_id"`
	ProductID   int     `json:"product_id"`
	ProductName string  `json:"product_name"`
	UnitPrice   float64 `json:"unit_price"`
	Quantity    int     `json:"quantity"`
	LineTotal   float64 `json:"line_total"`
}
