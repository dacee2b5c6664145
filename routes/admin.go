package routes

import (
	"github.com/gin-gonic/gin"

	adminControllers "github.com/shivarajwaddar/E-commerce-app/controllers/admin"
	"github.com/shivarajwaddar/E-commerce-app/middleware"
)

func SetupAdminRoutes(api *gin.RouterGroup, deps Deps) {
	admin := api.Group("/admin")
	admin.Use(middleware.RequireSignIn, middleware.IsAdmin)
	{
		admin.GET("/users", adminControllers.ListBuyers(deps.Users))
	}
}
