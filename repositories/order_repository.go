package repositories

import (
	"context"

	"bean-bloom/config"
	"bean-bloom/models"
)

type OrderRepository struct{}

func NewOrderRepository() *OrderRepository {
	return &OrderRepository{}
}

// CreateOrder persists the order and its items in one transaction and
// fills in the generated ids.
func (r *OrderRepository) CreateOrder(ctx context.Context, order *models.Order) error {
	tx, err := config.DB.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx, `
		INSERT INTO orders (user_id, delivery_method, customer_name, customer_email,
			customer_address, customer_phone, note, subtotal, discount_total,
			shipping_total, total, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW())
		RETURNING id, created_at`,
		order.UserID, order.DeliveryMethod, order.CustomerName, order.CustomerEmail,
		order.CustomerAddress, order.CustomerPhone, order.Note, order.Subtotal,
		order.DiscountTotal, order.ShippingTotal, order.Total,
	).Scan(&order.ID, &order.CreatedAt)
	if err != nil {
		return err
	}

	for i := range order.Items {
		item := &order.Items[i]
		item.OrderID = order.ID
		err = tx.QueryRow(ctx, `
			INSERT INTO order_items (order_id, product_id, product_name, unit_price, quantity, line_total)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id`,
			item.OrderID, item.ProductID, item.ProductName, item.UnitPrice,
			item.Quantity, item.LineTotal,
		).Scan(&item.ID)
		if err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}
