package routes

import (
	"github.com/gin-gonic/gin"

	categoryControllers "github.com/shivarajwaddar/E-commerce-app/controllers/category"
	productControllers "github.com/shivarajwaddar/E-commerce-app/controllers/product"
	"github.com/shivarajwaddar/E-commerce-app/middleware"
)

// SetupCatalogRoutes registers product and category browsing (public)
// and the admin CRUD on both.
func SetupCatalogRoutes(api *gin.RouterGroup, deps Deps) {
	productCtl := productControllers.NewController(deps.Products, deps.Categories, deps.UploadsDir)

	products := api.Group("/products")
	{
		products.GET("", productCtl.List)
		products.GET("/category/:categoryId", productCtl.ListByCategory)
		products.GET("/:slug", productCtl.GetBySlug)
		products.GET("/:slug/related", productCtl.Related)

		admin := products.Group("")
		admin.Use(middleware.RequireSignIn, middleware.IsAdmin)
		{
			admin.POST("", productCtl.Create)
			admin.PUT("/:id", productCtl.Update)
			admin.DELETE("/:id", productCtl.Delete)
			admin.GET("/export/xlsx", productCtl.Export)
		}
	}

	categories := api.Group("/categories")
	{
		categories.GET("", categoryControllers.List(deps.Categories))
		categories.GET("/:slug", categoryControllers.GetBySlug(deps.Categories))

		admin := categories.Group("")
		admin.Use(middleware.RequireSignIn, middleware.IsAdmin)
		{
			admin.POST("", categoryControllers.Create(deps.Categories))
			admin.PUT("/:id", categoryControllers.Update(deps.Categories))
			admin.DELETE("/:id", categoryControllers.Delete(deps.Categories))
		}
	}
}
