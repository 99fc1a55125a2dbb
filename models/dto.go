package models

type LoginRequest struct {
	Email    string `json:"email" form:"email" binding:"required,email"`
	Password string `json:"password" form:"password" binding:"required"`
}

type ContactRequest struct {
	FullName string `json:"full_name" form:"full_name" binding:"required,min=3"`
	Email    string `json:"email" form:"email" binding:"required,email"`
	Company  string `json:"company" form:"company"`
	Message  string `json:"message" form:"message" binding:"required"`
}

type AddCartItemRequest struct {
	ProductID int `json:"product_id" binding:"required"`
	Qty       int `json:"qty"`
}

type UpdateCartItemRequest struct {
	Qty *int `json:"qty" binding:"required"`
}

type CheckoutItemRequest struct {
	ProductID int `json:"product_id"`
	Quantity  int `json:"quantity"`
}

type CheckoutRequest struct {
	DeliveryMethod  string                `json:"delivery_method"`
	CustomerName    string                `json:"customer_name"`
	CustomerEmail   string                `json:"customer_email"`
	CustomerAddress string                `json:"customer_address"`
	CustomerPhone   string                `json:"customer_phone"`
	Note            string                `json:"note"`
	Items           []CheckoutItemRequest `json:"items"`
}

type CheckoutResponseItem struct {
	ProductID int     `json:"product_id"`
	Name      string  `json:"name"`
	Qty       int     `json:"qty"`
	UnitPrice float64 `json:"unit_price"`
	LineTotal float64 `json:"line_total"`
}

type CheckoutResponse struct {
	Status   string                 `json:"status"`
	OrderID  int                    `json:"order_id"`
	Subtotal float64                `json:"subtotal"`
	Shipping float64                `json:"shipping"`
	Total    float64                `json:"total"`
	Items    []CheckoutResponseItem `json:"items"`
}

// ProductListResponse mirrors the product-listing API contract: one page
// of results plus the current taxonomies for the filter sidebar.
type ProductListResponse struct {
	Results    []Product  `json:"results"`
	Page       int        `json:"page"`
	TotalPages int        `json:"total_pages"`
	Rubros     []Rubro    `json:"rubros,omitempty"`
	Categories []Category `json:"categories,omitempty"`
}

type CartResponse struct {
	Items  []LineItem `json:"items"`
	Count  int        `json:"count"`
	Totals Totals     `json:"totals"`
}

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

type ErrorResponse struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	Error    string `json:"error,omitempty"`
	Redirect string `json:"redirect,omitempty"`
}
