package orderControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/shivarajwaddar/E-commerce-app/middleware"
	"github.com/shivarajwaddar/E-commerce-app/models"
	"github.com/shivarajwaddar/E-commerce-app/services"
)

type PlaceOrderRequest struct {
	CartItems     []models.CartItem `json:"cartItems" binding:"required"`
	TotalAmount   float64           `json:"totalAmount"`
	PaymentMethod string            `json:"paymentMethod" binding:"required"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// POST /api/v1/orders/place-order
func PlaceOrder(orders *services.OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req PlaceOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid input: " + err.Error()})
			return
		}

		method, ok := models.ParsePaymentMethod(req.PaymentMethod)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Unknown payment method: " + req.PaymentMethod})
			return
		}

		order, err := orders.PlaceOrder(c.Request.Context(), middleware.UserID(c), req.CartItems, req.TotalAmount, method)
		if err != nil {
			c.JSON(statusFor(err), gin.H{"success": false, "message": err.Error()})
			return
		}

		broadcastOrderEvent(OrderEvent{Type: "order.placed", Order: order})
		c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Order placed successfully", "order": order})
	}
}

// GET /api/v1/orders/user-orders
func UserOrders(orders *services.OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := orders.ListOrdersForUser(c.Request.Context(), middleware.UserID(c))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "orders": list})
	}
}

// GET /api/v1/orders/all-orders
//
// Admin view, scoped server-side to orders containing at least one
// product the calling admin created.
func AllOrders(orders *services.OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := orders.ListOrdersForAdmin(c.Request.Context(), middleware.UserID(c))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "orders": list})
	}
}

// PUT /api/v1/orders/order-status/:id
func UpdateOrderStatus(orders *services.OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID, err := strconv.ParseUint(c.Param("id"), 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid order id"})
			return
		}

		var req UpdateOrderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid input: " + err.Error()})
			return
		}
		status, ok := models.ParseOrderStatus(req.Status)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Unknown order status: " + req.Status})
			return
		}

		order, err := orders.UpdateOrderStatus(c.Request.Context(), uint(orderID), status)
		if err != nil {
			c.JSON(statusFor(err), gin.H{"success": false, "message": err.Error()})
			return
		}

		broadcastOrderEvent(OrderEvent{Type: "order.status", Order: order})
		c.JSON(http.StatusOK, gin.H{"success": true, "order": order})
	}
}

// GET /api/v1/orders/order-statuses
func OrderStatuses(orders *services.OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true, "statuses": orders.OrderStatuses()})
	}
}

// GET /api/v1/orders/:id
func GetOrder(orders *services.OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID, err := strconv.ParseUint(c.Param("id"), 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid order id"})
			return
		}

		order, err := orders.GetOrder(c.Request.Context(), uint(orderID))
		if err != nil {
			c.JSON(statusFor(err), gin.H{"success": false, "message": err.Error()})
			return
		}

		// buyers only see their own orders; admins see everything
		if role, _ := c.Get("role"); role != string(models.RoleAdmin) && order.UserID != middleware.UserID(c) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "order not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "order": order})
	}
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, models.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, models.ErrOutOfStock),
		errors.Is(err, models.ErrEmptyOrder),
		errors.Is(err, models.ErrAmountMismatch),
		errors.Is(err, models.ErrMissingAddress),
		errors.Is(err, models.ErrBadTransition):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
