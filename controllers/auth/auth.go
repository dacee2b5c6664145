package authControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shivarajwaddar/E-commerce-app/middleware"
	"github.com/shivarajwaddar/E-commerce-app/models"
	"github.com/shivarajwaddar/E-commerce-app/services"
)

type RegisterInput struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Phone    string `json:"phone" binding:"required"`
	Address  string `json:"address" binding:"required"`
	Answer   string `json:"answer" binding:"required"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type ForgotPasswordInput struct {
	Email       string `json:"email" binding:"required,email"`
	Answer      string `json:"answer" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,min=6"`
}

type UpdateProfileInput struct {
	Name     string `json:"name"`
	Password string `json:"password"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
}

// POST /api/v1/auth/register
func Register(auth *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input RegisterInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid input: " + err.Error()})
			return
		}

		user, err := auth.Register(c.Request.Context(), services.RegisterInput{
			Name:     input.Name,
			Email:    input.Email,
			Password: input.Password,
			Phone:    input.Phone,
			Address:  input.Address,
			Answer:   input.Answer,
		})
		if err != nil {
			if errors.Is(err, models.ErrEmailTaken) {
				c.JSON(http.StatusConflict, gin.H{"success": false, "message": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Registration failed"})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Registered successfully", "user": user})
	}
}

// POST /api/v1/auth/login
func Login(auth *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input LoginInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid input: " + err.Error()})
			return
		}

		user, token, err := auth.Login(c.Request.Context(), input.Email, input.Password)
		if err != nil {
			if errors.Is(err, models.ErrBadCredentials) {
				c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Login failed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Logged in successfully", "user": user, "token": token})
	}
}

// POST /api/v1/auth/forgot-password
func ForgotPassword(auth *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ForgotPasswordInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid input: " + err.Error()})
			return
		}

		if err := auth.ResetPassword(c.Request.Context(), input.Email, input.Answer, input.NewPassword); err != nil {
			switch {
			case errors.Is(err, models.ErrNotFound):
				c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "No account for that email"})
			case errors.Is(err, models.ErrWrongAnswer):
				c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Password reset failed"})
			}
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Password reset successfully"})
	}
}

// PUT /api/v1/auth/profile
func UpdateProfile(auth *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input UpdateProfileInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid input: " + err.Error()})
			return
		}

		user, err := auth.UpdateProfile(c.Request.Context(), middleware.UserID(c), services.ProfileUpdate{
			Name:     input.Name,
			Password: input.Password,
			Phone:    input.Phone,
			Address:  input.Address,
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Profile update failed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Profile updated", "user": user})
	}
}

// GET /api/v1/auth/user-auth — session probe for the client's protected routes.
func UserAuth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// GET /api/v1/auth/admin-auth
func AdminAuth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
