package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"bean-bloom/config"
	"bean-bloom/models"
	"bean-bloom/services"
)

type ProductController struct {
	productService *services.ProductService
}

func NewProductController() *ProductController {
	return &ProductController{
		productService: services.NewProductService(),
	}
}

// listPageSize resolves the page size for a listing request: the
// caller's value when sane, otherwise the configured catalog default.
func listPageSize(requested int) int {
	if requested >= 1 && requested <= 100 {
		return requested
	}
	if config.AppConfig != nil && config.AppConfig.PageSize > 0 {
		return config.AppConfig.PageSize
	}
	return services.DefaultPageSize
}

func productCacheKey(f models.FilterSpec) string {
	v := f.Values()
	v.Set("page_size", strconv.Itoa(f.PageSize))
	return "products_list?" + v.Encode()
}

// @Summary List products
// @Description Get one page of the filtered, sorted catalog plus rubro and category taxonomies
// @Tags Products
// @Produce json
// @Param page query int false "Page number (1-based)" default(1)
// @Param page_size query int false "Items per page" default(40)
// @Param search query string false "Free-text search over name and descriptions"
// @Param rubro query string false "Rubro slug"
// @Param category query string false "Category slug"
// @Param sort query string false "Sort key" Enums(default, price-asc, price-desc, name-asc)
// @Success 200 {object} models.ProductListResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/products [get]
func (ctrl *ProductController) ListProducts(c *gin.Context) {
	spec := models.ParseFilterSpec(c.Request.URL.Query())
	if !models.ValidSort(spec.Sort) {
		spec.Sort = models.SortDefault
	}
	spec.PageSize = listPageSize(spec.PageSize)

	cacheKey := productCacheKey(spec)
	ctx := context.Background()

	if models.RedisClient != nil {
		cached, err := models.RedisClient.Get(ctx, cacheKey).Result()
		if err == nil {
			c.Data(http.StatusOK, "application/json", []byte(cached))
			return
		}
	}

	response, err := ctrl.productService.ListProducts(spec)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Failed to load products. Please try again later.",
			Error:   err.Error(),
		})
		return
	}

	if models.RedisClient != nil {
		if jsonData, err := json.Marshal(response); err == nil {
			models.RedisClient.Set(ctx, cacheKey, string(jsonData), 5*time.Minute)
		}
	}

	c.JSON(http.StatusOK, response)
}

// @Summary Get product detail
// @Description Get the full detail of one product for the quick-view modal
// @Tags Products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /api/products/{id} [get]
func (ctrl *ProductController) GetProductByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid product id",
		})
		return
	}

	product, err := ctrl.productService.GetProductByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Success: false,
			Message: "Product not found",
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Product retrieved",
		Data:    product,
	})
}
