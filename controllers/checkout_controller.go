package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"bean-bloom/models"
	"bean-bloom/repositories"
	"bean-bloom/services"
)

type CheckoutController struct {
	orderService *services.OrderService
}

func NewCheckoutController() *CheckoutController {
	return &CheckoutController{
		orderService: services.NewOrderService(
			repositories.NewProductRepository(),
			repositories.NewOrderRepository(),
		),
	}
}

func isCheckoutValidationError(err error) bool {
	return errors.Is(err, services.ErrNoItems) ||
		errors.Is(err, services.ErrInvalidDelivery) ||
		errors.Is(err, services.ErrMissingCustomer) ||
		errors.Is(err, services.ErrUnknownProduct)
}

// @Summary Checkout
// @Description Create an order from the submitted items; authenticated users only
// @Tags Checkout
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.CheckoutRequest true "Checkout Request"
// @Success 201 {object} models.CheckoutResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Router /api/checkout [post]
func (ctrl *CheckoutController) Checkout(c *gin.Context) {
	uidVal, _ := c.Get("user_id")
	uid, _ := uidVal.(int)

	var req models.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid JSON payload",
		})
		return
	}

	order, err := ctrl.orderService.Checkout(c.Request.Context(), &uid, req)
	if err != nil {
		if isCheckoutValidationError(err) {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Success: false,
				Message: err.Error(),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Internal error while creating order",
		})
		return
	}

	// The order is committed; empty the buyer's cart slot.
	store := services.NewCartStore(cartStorageFor(cartOwner(c)))
	if err := store.Clear(); err != nil {
		log.Printf("Failed to clear cart after checkout: %v", err)
	}

	// Confirmation email is best effort.
	if emailService, err := models.NewEmailService(); err == nil {
		go func() {
			if err := emailService.SendOrderConfirmationEmail(order.CustomerEmail, order.ID, order.Total); err != nil {
				log.Printf("Failed to send order confirmation: %v", err)
			}
		}()
	}

	items := make([]models.CheckoutResponseItem, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, models.CheckoutResponseItem{
			ProductID: item.ProductID,
			Name:      item.ProductName,
			Qty:       item.Quantity,
			UnitPrice: item.UnitPrice,
			LineTotal: item.LineTotal,
		})
	}

	c.JSON(http.StatusCreated, models.CheckoutResponse{
		Status:   "ok",
		OrderID:  order.ID,
		Subtotal: order.Subtotal,
		Shipping: order.ShippingTotal,
		Total:    order.Total,
		Items:    items,
	})
}
