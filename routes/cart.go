package routes

import (
	"github.com/gin-gonic/gin"

	cartControllers "github.com/shivarajwaddar/E-commerce-app/controllers/cart"
	"github.com/shivarajwaddar/E-commerce-app/middleware"
)

// SetupCartRoutes registers the shopping cart endpoints. All of them
// are user-scoped and sit behind the JWT middleware.
func SetupCartRoutes(api *gin.RouterGroup, deps Deps) {
	cart := api.Group("/cart")
	cart.Use(middleware.RequireSignIn)
	{
		cart.GET("/get", cartControllers.GetCart(deps.Carts))
		cart.POST("/add-item", cartControllers.AddItem(deps.Carts))
		cart.PUT("/update-quantity/:productId", cartControllers.UpdateQuantity(deps.Carts))
		cart.DELETE("/remove-item/:productId", cartControllers.RemoveItem(deps.Carts))
		cart.DELETE("/clear-all", cartControllers.ClearAll(deps.Carts))
	}
}
