package cartControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/shivarajwaddar/E-commerce-app/middleware"
	"github.com/shivarajwaddar/E-commerce-app/models"
	"github.com/shivarajwaddar/E-commerce-app/services"
)

type AddItemInput struct {
	ProductID uint `json:"productId" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required,min=1"`
}

type UpdateQuantityInput struct {
	Quantity *int `json:"quantity" binding:"required"`
}

// GET /api/v1/cart/get
func GetCart(carts *services.CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		cart, err := carts.GetCart(c.Request.Context(), middleware.UserID(c))
		if err != nil {
			c.JSON(statusFor(err), gin.H{"success": false, "message": "Failed to fetch cart"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "cart": cart})
	}
}

// POST /api/v1/cart/add-item
func AddItem(carts *services.CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input AddItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid input: " + err.Error()})
			return
		}

		cart, err := carts.AddItem(c.Request.Context(), middleware.UserID(c), input.ProductID, input.Quantity)
		if err != nil {
			c.JSON(statusFor(err), gin.H{"success": false, "message": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "cart": cart})
	}
}

// PUT /api/v1/cart/update-quantity/:productId
func UpdateQuantity(carts *services.CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID, err := parseProductID(c)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid product id"})
			return
		}

		var input UpdateQuantityInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid input: " + err.Error()})
			return
		}

		cart, err := carts.UpdateQuantity(c.Request.Context(), middleware.UserID(c), productID, *input.Quantity)
		if err != nil {
			c.JSON(statusFor(err), gin.H{"success": false, "message": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "cart": cart})
	}
}

// DELETE /api/v1/cart/remove-item/:productId
func RemoveItem(carts *services.CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID, err := parseProductID(c)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid product id"})
			return
		}

		cart, err := carts.RemoveItem(c.Request.Context(), middleware.UserID(c), productID)
		if err != nil {
			c.JSON(statusFor(err), gin.H{"success": false, "message": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "cart": cart})
	}
}

// DELETE /api/v1/cart/clear-all
func ClearAll(carts *services.CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		cart, err := carts.ClearAll(c.Request.Context(), middleware.UserID(c))
		if err != nil {
			c.JSON(statusFor(err), gin.H{"success": false, "message": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Cart cleared", "cart": cart})
	}
}

func parseProductID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("productId"), 10, 32)
	return uint(id), err
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, models.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, models.ErrOutOfStock), errors.Is(err, models.ErrInvalidQuantity):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
