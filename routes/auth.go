package routes

import (
	"github.com/gin-gonic/gin"

	authControllers "github.com/shivarajwaddar/E-commerce-app/controllers/auth"
	"github.com/shivarajwaddar/E-commerce-app/middleware"
)

// SetupAuthRoutes registers registration, login, password reset and
// the session probes the client uses to guard its dashboards.
func SetupAuthRoutes(api *gin.RouterGroup, deps Deps) {
	auth := api.Group("/auth")
	{
		auth.POST("/register", authControllers.Register(deps.Auth))
		auth.POST("/login", authControllers.Login(deps.Auth))
		auth.POST("/forgot-password", authControllers.ForgotPassword(deps.Auth))

		auth.PUT("/profile", middleware.RequireSignIn, authControllers.UpdateProfile(deps.Auth))
		auth.GET("/user-auth", middleware.RequireSignIn, authControllers.UserAuth)
		auth.GET("/admin-auth", middleware.RequireSignIn, middleware.IsAdmin, authControllers.AdminAuth)
	}
}
