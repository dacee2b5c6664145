package categoryControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	productControllers "github.com/shivarajwaddar/E-commerce-app/controllers/product"
	"github.com/shivarajwaddar/E-commerce-app/models"
	"github.com/shivarajwaddar/E-commerce-app/repository"
)

type CategoryInput struct {
	Name string `json:"name" binding:"required"`
}

// GET /api/v1/categories
func List(categories repository.CategoryRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := categories.List(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch categories"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "categories": list})
	}
}

// GET /api/v1/categories/:slug
func GetBySlug(categories repository.CategoryRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		category, err := categories.FindBySlug(c.Request.Context(), c.Param("slug"))
		if err != nil {
			if errors.Is(err, models.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Category not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch category"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "category": category})
	}
}

// POST /api/v1/categories (admin)
func Create(categories repository.CategoryRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CategoryInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid input: " + err.Error()})
			return
		}

		category := &models.Category{Name: input.Name, Slug: productControllers.Slugify(input.Name)}
		if err := categories.Create(c.Request.Context(), category); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to create category"})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"success": true, "category": category})
	}
}

// PUT /api/v1/categories/:id (admin)
func Update(categories repository.CategoryRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid category id"})
			return
		}

		var input CategoryInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid input: " + err.Error()})
			return
		}

		category, err := categories.FindByID(c.Request.Context(), uint(id))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Category not found"})
			return
		}
		category.Name = input.Name
		category.Slug = productControllers.Slugify(input.Name)
		if err := categories.Update(c.Request.Context(), category); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to update category"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "category": category})
	}
}

// DELETE /api/v1/categories/:id (admin)
func Delete(categories repository.CategoryRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid category id"})
			return
		}
		if err := categories.Delete(c.Request.Context(), uint(id)); err != nil {
			if errors.Is(err, models.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Category not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to delete category"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Category deleted"})
	}
}
