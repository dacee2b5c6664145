package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/shivarajwaddar/E-commerce-app/repository"
	"github.com/shivarajwaddar/E-commerce-app/services"
)

// Deps carries everything the route groups need. Built once in main.
type Deps struct {
	Auth       *services.AuthService
	Carts      *services.CartService
	Orders     *services.OrderService
	Users      repository.UserRepository
	Products   repository.ProductRepository
	Categories repository.CategoryRepository
	UploadsDir string
}

// SetupRoutes is the single entry-point that wires up every route
// group under /api/v1.
func SetupRoutes(r *gin.Engine, deps Deps) {
	api := r.Group("/api/v1")

	SetupAuthRoutes(api, deps)
	SetupCatalogRoutes(api, deps)
	SetupCartRoutes(api, deps)
	SetupOrderRoutes(api, deps)
	SetupAdminRoutes(api, deps)
}
