package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bean-bloom/models"
)

type stubProductFinder struct {
	products map[int]models.Product
	err      error
}

func (f *stubProductFinder) GetProductsByIDs(ids []int) (map[int]models.Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := map[int]models.Product{}
	for _, id := range ids {
		if p, ok := f.products[id]; ok {
			out[id] = p
		}
	}
	return out, nil
}

type stubOrderWriter struct {
	created *models.Order
	err     error
}

func (w *stubOrderWriter) CreateOrder(_ context.Context, order *models.Order) error {
	if w.err != nil {
		return w.err
	}
	order.ID = 101
	w.created = order
	return nil
}

func setupOrderService(t *testing.T) (*OrderService, *stubProductFinder, *stubOrderWriter) {
	finder := &stubProductFinder{products: map[int]models.Product{
		1: {ID: 1, Name: "House Blend 340g", Price: 12.5, OriginalPrice: 12.5},
		2: {ID: 2, Name: "Single Origin Ethiopia 250g", Price: 16.0, OriginalPrice: 16.0},
		3: {ID: 3, Name: "Chocolate Almond Bar", Price: 15.0, OriginalPrice: 20.0, Discount: 5.0},
	}}
	writer := &stubOrderWriter{}
	return NewOrderService(finder, writer), finder, writer
}

func validRequest(items ...models.CheckoutItemRequest) models.CheckoutRequest {
	return models.CheckoutRequest{
		DeliveryMethod: models.DeliveryPickup,
		CustomerName:   "Ada Lovelace",
		CustomerEmail:  "ada@example.com",
		Items:          items,
	}
}

func TestCheckout_ComputesTotalsWithShipping(t *testing.T) {
	svc, _, writer := setupOrderService(t)

	order, err := svc.Checkout(context.Background(), nil, validRequest(
		models.CheckoutItemRequest{ProductID: 1, Quantity: 1},
		models.CheckoutItemRequest{ProductID: 2, Quantity: 1},
	))

	require.NoError(t, err)
	require.NotNil(t, order)
	assert.Equal(t, 101, order.ID)
	assert.Equal(t, 28.5, order.Subtotal)
	assert.Equal(t, 4.5, order.ShippingTotal)
	assert.Equal(t, 33.0, order.Total)
	require.NotNil(t, writer.created)
	assert.Len(t, writer.created.Items, 2)
}

func TestCheckout_FreeShippingAboveThreshold(t *testing.T) {
	svc, _, _ := setupOrderService(t)

	order, err := svc.Checkout(context.Background(), nil, validRequest(
		models.CheckoutItemRequest{ProductID: 2, Quantity: 2},
	))

	require.NoError(t, err)
	assert.Equal(t, 32.0, order.Subtotal)
	assert.Equal(t, 0.0, order.ShippingTotal)
	assert.Equal(t, 32.0, order.Total)
}

func TestCheckout_SnapshotsDiscountedPrice(t *testing.T) {
	svc, _, _ := setupOrderService(t)

	order, err := svc.Checkout(context.Background(), nil, validRequest(
		models.CheckoutItemRequest{ProductID: 3, Quantity: 2},
	))

	require.NoError(t, err)
	require.Len(t, order.Items, 1)
	assert.Equal(t, 15.0, order.Items[0].UnitPrice)
	assert.Equal(t, 30.0, order.Items[0].LineTotal)
	assert.Equal(t, 10.0, order.DiscountTotal)
}

func TestCheckout_Validation(t *testing.T) {
	t.Run("no items", func(t *testing.T) {
		svc, _, _ := setupOrderService(t)
		_, err := svc.Checkout(context.Background(), nil, validRequest())
		assert.ErrorIs(t, err, ErrNoItems)
	})

	t.Run("only invalid items", func(t *testing.T) {
		svc, _, _ := setupOrderService(t)
		_, err := svc.Checkout(context.Background(), nil, validRequest(
			models.CheckoutItemRequest{ProductID: 1, Quantity: 0},
			models.CheckoutItemRequest{ProductID: 0, Quantity: 2},
		))
		assert.ErrorIs(t, err, ErrNoItems)
	})

	t.Run("invalid delivery method", func(t *testing.T) {
		svc, _, _ := setupOrderService(t)
		req := validRequest(models.CheckoutItemRequest{ProductID: 1, Quantity: 1})
		req.DeliveryMethod = "teleport"
		_, err := svc.Checkout(context.Background(), nil, req)
		assert.ErrorIs(t, err, ErrInvalidDelivery)
	})

	t.Run("empty delivery method defaults to pickup", func(t *testing.T) {
		svc, _, writer := setupOrderService(t)
		req := validRequest(models.CheckoutItemRequest{ProductID: 1, Quantity: 1})
		req.DeliveryMethod = ""
		_, err := svc.Checkout(context.Background(), nil, req)
		require.NoError(t, err)
		assert.Equal(t, models.DeliveryPickup, writer.created.DeliveryMethod)
	})

	t.Run("missing customer name or email", func(t *testing.T) {
		svc, _, _ := setupOrderService(t)
		req := validRequest(models.CheckoutItemRequest{ProductID: 1, Quantity: 1})
		req.CustomerEmail = "   "
		_, err := svc.Checkout(context.Background(), nil, req)
		assert.ErrorIs(t, err, ErrMissingCustomer)
	})

	t.Run("unknown product id", func(t *testing.T) {
		svc, _, writer := setupOrderService(t)
		_, err := svc.Checkout(context.Background(), nil, validRequest(
			models.CheckoutItemRequest{ProductID: 999, Quantity: 1},
		))
		assert.ErrorIs(t, err, ErrUnknownProduct)
		assert.Nil(t, writer.created)
	})
}

func TestCheckout_AddressOnlyKeptForDelivery(t *testing.T) {
	svc, _, writer := setupOrderService(t)

	req := validRequest(models.CheckoutItemRequest{ProductID: 1, Quantity: 1})
	req.CustomerAddress = "12 Rose St"

	t.Run("pickup drops the address", func(t *testing.T) {
		_, err := svc.Checkout(context.Background(), nil, req)
		require.NoError(t, err)
		assert.Empty(t, writer.created.CustomerAddress)
	})

	t.Run("delivery keeps the address", func(t *testing.T) {
		req.DeliveryMethod = models.DeliveryDelivery
		_, err := svc.Checkout(context.Background(), nil, req)
		require.NoError(t, err)
		assert.Equal(t, "12 Rose St", writer.created.CustomerAddress)
	})
}

func TestCheckout_WriterFailurePropagates(t *testing.T) {
	svc, _, writer := setupOrderService(t)
	writer.err = errors.New("db down")

	_, err := svc.Checkout(context.Background(), nil, validRequest(
		models.CheckoutItemRequest{ProductID: 1, Quantity: 1},
	))

	assert.Error(t, err)
}

func TestShippingFor(t *testing.T) {
	assert.Equal(t, 0.0, ShippingFor(0))
	assert.Equal(t, 4.5, ShippingFor(0.01))
	assert.Equal(t, 4.5, ShippingFor(29.99))
	assert.Equal(t, 0.0, ShippingFor(30.0))
	assert.Equal(t, 0.0, ShippingFor(120.0))
}
