package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"bean-bloom/config"
	"bean-bloom/models"
	"bean-bloom/repositories"
	"bean-bloom/services"
)

const cartCookie = "bb_cart_id"

type CartController struct {
	productService *services.ProductService
}

func NewCartController() *CartController {
	return &CartController{
		productService: services.NewProductService(),
	}
}

// cartOwner resolves whose slot this request operates on: the
// authenticated user, or a cookie-identified guest cart.
func cartOwner(c *gin.Context) string {
	if uid, ok := c.Get("user_id"); ok {
		return fmt.Sprintf("user:%d", uid)
	}

	if id, err := c.Cookie(cartCookie); err == nil && id != "" {
		return "guest:" + id
	}

	id := uuid.NewString()
	c.SetCookie(cartCookie, id, int((30 * 24 * time.Hour).Seconds()), "/", "", false, true)
	return "guest:" + id
}

func cartStorageFor(owner string) repositories.CartStorage {
	if models.RedisClient == nil {
		// Without Redis the cart only lives for this request.
		return repositories.NewMemoryCartStorage()
	}
	key := config.AppConfig.CartKeyPrefix + ":" + owner
	return repositories.NewRedisCartStorage(models.RedisClient, key)
}

func (ctrl *CartController) store(c *gin.Context) *services.CartStore {
	return services.NewCartStore(cartStorageFor(cartOwner(c)))
}

func cartResponse(store *services.CartStore) models.CartResponse {
	return models.CartResponse{
		Items:  store.Items(),
		Count:  store.Count(),
		Totals: store.Totals(),
	}
}

// @Summary Get cart
// @Description Get the current cart with derived totals
// @Tags Cart
// @Produce json
// @Success 200 {object} models.CartResponse
// @Router /api/cart [get]
func (ctrl *CartController) GetCart(c *gin.Context) {
	c.JSON(http.StatusOK, cartResponse(ctrl.store(c)))
}

// @Summary Add cart item
// @Description Add a product to the cart, merging with an existing line item
// @Tags Cart
// @Accept json
// @Produce json
// @Param request body models.AddCartItemRequest true "Product and quantity"
// @Success 200 {object} models.CartResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/cart/items [post]
func (ctrl *CartController) AddItem(c *gin.Context) {
	var req models.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid request body",
			Error:   err.Error(),
		})
		return
	}
	if req.Qty < 1 {
		req.Qty = 1
	}

	product, err := ctrl.productService.GetProductByID(req.ProductID)
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Success: false,
			Message: "Product not found",
		})
		return
	}

	store := ctrl.store(c)
	if err := store.Add(*product, req.Qty); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Failed to save cart",
			Error:   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, cartResponse(store))
}

// @Summary Update cart item quantity
// @Description Set the quantity of a line item; zero removes it
// @Tags Cart
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param request body models.UpdateCartItemRequest true "New quantity"
// @Success 200 {object} models.CartResponse
// @Router /api/cart/items/{id} [patch]
func (ctrl *CartController) UpdateItem(c *gin.Context) {
	var req models.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Qty == nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid request body",
		})
		return
	}

	store := ctrl.store(c)
	if err := store.SetQuantity(models.ProductID(c.Param("id")), *req.Qty); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Failed to save cart",
			Error:   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, cartResponse(store))
}

// @Summary Remove cart item
// @Description Delete a line item; no-op when absent
// @Tags Cart
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.CartResponse
// @Router /api/cart/items/{id} [delete]
func (ctrl *CartController) RemoveItem(c *gin.Context) {
	store := ctrl.store(c)
	if err := store.Remove(models.ProductID(c.Param("id"))); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Failed to save cart",
			Error:   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, cartResponse(store))
}

// @Summary Clear cart
// @Description Empty the cart
// @Tags Cart
// @Produce json
// @Success 200 {object} models.CartResponse
// @Router /api/cart [delete]
func (ctrl *CartController) ClearCart(c *gin.Context) {
	store := ctrl.store(c)
	if err := store.Clear(); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Failed to save cart",
			Error:   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, cartResponse(store))
}
