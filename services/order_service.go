package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"bean-bloom/models"
)

var (
	ErrNoItems         = errors.New("no items in order")
	ErrInvalidDelivery = errors.New("invalid delivery method")
	ErrMissingCustomer = errors.New("customer name and email are required")
	ErrUnknownProduct  = errors.New("unknown product")
)

// ProductFinder loads catalog products for checkout validation. The
// catalog prices are the truth; whatever the client snapshotted is only
// for display.
type ProductFinder interface {
	GetProductsByIDs(ids []int) (map[int]models.Product, error)
}

// OrderWriter persists a finished order.
type OrderWriter interface {
	CreateOrder(ctx context.Context, order *models.Order) error
}

type OrderService struct {
	products ProductFinder
	orders   OrderWriter
}

func NewOrderService(products ProductFinder, orders OrderWriter) *OrderService {
	return &OrderService{products: products, orders: orders}
}

// Checkout validates the request, snapshots current product names and
// prices, applies the shipping rule, and persists the order. Nothing is
// written when any step fails, so the caller's cart stays intact.
func (s *OrderService) Checkout(ctx context.Context, userID *int, req models.CheckoutRequest) (*models.Order, error) {
	if len(req.Items) == 0 {
		return nil, ErrNoItems
	}

	method := req.DeliveryMethod
	if method == "" {
		method = models.DeliveryPickup
	}
	if !models.ValidDeliveryMethod(method) {
		return nil, ErrInvalidDelivery
	}

	name := strings.TrimSpace(req.CustomerName)
	email := strings.TrimSpace(req.CustomerEmail)
	if name == "" || email == "" {
		return nil, ErrMissingCustomer
	}

	ids := []int{}
	for _, item := range req.Items {
		if item.ProductID > 0 && item.Quantity > 0 {
			ids = append(ids, item.ProductID)
		}
	}
	if len(ids) == 0 {
		return nil, ErrNoItems
	}

	products, err := s.products.GetProductsByIDs(ids)
	if err != nil {
		return nil, err
	}

	order := &models.Order{
		UserID:         userID,
		DeliveryMethod: method,
		CustomerName:   name,
		CustomerEmail:  email,
		CustomerPhone:  strings.TrimSpace(req.CustomerPhone),
		Note:           req.Note,
	}
	if method == models.DeliveryDelivery {
		order.CustomerAddress = strings.TrimSpace(req.CustomerAddress)
	}

	var subtotal, discountTotal float64
	for _, item := range req.Items {
		if item.ProductID <= 0 || item.Quantity <= 0 {
			continue
		}
		p, ok := products[item.ProductID]
		if !ok {
			return nil, fmt.Errorf("%w: product with id=%d not found", ErrUnknownProduct, item.ProductID)
		}

		lineTotal := p.Price * float64(item.Quantity)
		subtotal += lineTotal
		if d := p.OriginalPrice - p.Price; d > 0 {
			discountTotal += d * float64(item.Quantity)
		}

		order.Items = append(order.Items, models.OrderItem{
			ProductID:   p.ID,
			ProductName: p.Name,
			UnitPrice:   p.Price,
			Quantity:    item.Quantity,
			LineTotal:   lineTotal,
		})
	}
	if len(order.Items) == 0 {
		return nil, ErrNoItems
	}

	order.Subtotal = subtotal
	order.DiscountTotal = discountTotal
	order.ShippingTotal = ShippingFor(subtotal)
	order.Total = subtotal + order.ShippingTotal

	if err := s.orders.CreateOrder(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}
