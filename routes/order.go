package routes

import (
	"github.com/gin-gonic/gin"

	orderControllers "github.com/shivarajwaddar/E-commerce-app/controllers/order"
	"github.com/shivarajwaddar/E-commerce-app/middleware"
)

func SetupOrderRoutes(api *gin.RouterGroup, deps Deps) {
	orders := api.Group("/orders")
	orders.Use(middleware.RequireSignIn)
	{
		orders.POST("/place-order", orderControllers.PlaceOrder(deps.Orders))
		orders.GET("/user-orders", orderControllers.UserOrders(deps.Orders))
		orders.GET("/order-statuses", orderControllers.OrderStatuses(deps.Orders))
		orders.GET("/:id", orderControllers.GetOrder(deps.Orders))

		admin := orders.Group("")
		admin.Use(middleware.IsAdmin)
		{
			admin.GET("/all-orders", orderControllers.AllOrders(deps.Orders))
			admin.PUT("/order-status/:id", orderControllers.UpdateOrderStatus(deps.Orders))
			admin.GET("/feed", orderControllers.OrderFeed)
		}
	}
}
