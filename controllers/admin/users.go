package adminControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shivarajwaddar/E-commerce-app/middleware"
	"github.com/shivarajwaddar/E-commerce-app/repository"
)

// GET /api/v1/admin/users
//
// Lists the admin's customers: users who have ordered at least one
// product the admin created. Scoping happens in the query.
func ListBuyers(users repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := users.ListBuyersOfAdmin(c.Request.Context(), middleware.UserID(c))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch users"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "users": list})
	}
}
