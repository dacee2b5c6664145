package productControllers

import (
	"errors"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/shivarajwaddar/E-commerce-app/middleware"
	"github.com/shivarajwaddar/E-commerce-app/models"
	"github.com/shivarajwaddar/E-commerce-app/repository"
)

// Controller bundles the product handlers with the uploads directory
// product photos land in.
type Controller struct {
	products   repository.ProductRepository
	categories repository.CategoryRepository
	uploadsDir string
}

func NewController(products repository.ProductRepository, categories repository.CategoryRepository, uploadsDir string) *Controller {
	return &Controller{products: products, categories: categories, uploadsDir: uploadsDir}
}

// GET /api/v1/products
func (ct *Controller) List(c *gin.Context) {
	products, err := ct.products.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch products"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "products": products})
}

// GET /api/v1/products/:slug
func (ct *Controller) GetBySlug(c *gin.Context) {
	product, err := ct.products.FindBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch product"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "product": product})
}

// GET /api/v1/products/category/:categoryId
func (ct *Controller) ListByCategory(c *gin.Context) {
	categoryID, err := strconv.ParseUint(c.Param("categoryId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid category id"})
		return
	}
	products, err := ct.products.ListByCategory(c.Request.Context(), uint(categoryID))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch products"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "products": products})
}

// GET /api/v1/products/:slug/related
func (ct *Controller) Related(c *gin.Context) {
	product, err := ct.products.FindBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Product not found"})
		return
	}
	related, err := ct.products.Related(c.Request.Context(), product.ID, product.CategoryID, 4)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch related products"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "products": related})
}

// POST /api/v1/products (admin, multipart form with photo)
func (ct *Controller) Create(c *gin.Context) {
	input, err := ct.bindForm(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	product := &models.Product{
		Name:        input.name,
		Slug:        Slugify(input.name),
		Description: input.description,
		Price:       input.price,
		Quantity:    input.quantity,
		CategoryID:  input.categoryID,
		CreatedBy:   middleware.UserID(c),
	}

	if photo, err := c.FormFile("photo"); err == nil {
		filename := uuid.NewString() + filepath.Ext(photo.Filename)
		if err := c.SaveUploadedFile(photo, filepath.Join(ct.uploadsDir, filename)); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to store photo"})
			return
		}
		product.Photo = "/uploads/" + filename
	}

	if err := ct.products.Create(c.Request.Context(), product); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to create product"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "product": product})
}

// PUT /api/v1/products/:id (admin)
func (ct *Controller) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid product id"})
		return
	}
	product, err := ct.products.FindByID(c.Request.Context(), uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Product not found"})
		return
	}

	input, err := ct.bindForm(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	product.Name = input.name
	product.Slug = Slugify(input.name)
	product.Description = input.description
	product.Price = input.price
	product.Quantity = input.quantity
	product.CategoryID = input.categoryID

	if photo, err := c.FormFile("photo"); err == nil {
		filename := uuid.NewString() + filepath.Ext(photo.Filename)
		if err := c.SaveUploadedFile(photo, filepath.Join(ct.uploadsDir, filename)); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to store photo"})
			return
		}
		product.Photo = "/uploads/" + filename
	}

	if err := ct.products.Update(c.Request.Context(), product); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to update product"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "product": product})
}

// DELETE /api/v1/products/:id (admin)
func (ct *Controller) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid product id"})
		return
	}
	if err := ct.products.Delete(c.Request.Context(), uint(id)); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to delete product"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Product deleted"})
}

type productForm struct {
	name        string
	description string
	price       float64
	quantity    int
	categoryID  uint
}

func (ct *Controller) bindForm(c *gin.Context) (*productForm, error) {
	name := c.PostForm("name")
	if name == "" {
		return nil, errors.New("name is required")
	}
	price, err := strconv.ParseFloat(c.PostForm("price"), 64)
	if err != nil || price < 0 {
		return nil, errors.New("price must be a non-negative number")
	}
	quantity, err := strconv.Atoi(c.PostForm("quantity"))
	if err != nil || quantity < 0 {
		return nil, errors.New("quantity must be a non-negative integer")
	}
	categoryID, err := strconv.ParseUint(c.PostForm("category_id"), 10, 32)
	if err != nil {
		return nil, errors.New("category_id is required")
	}
	if _, err := ct.categories.FindByID(c.Request.Context(), uint(categoryID)); err != nil {
		return nil, errors.New("category does not exist")
	}

	return &productForm{
		name:        name,
		description: c.PostForm("description"),
		price:       price,
		quantity:    quantity,
		categoryID:  uint(categoryID),
	}, nil
}

// Slugify turns a display name into a URL slug.
func Slugify(name string) string {
	slug := strings.ToLower(strings.TrimSpace(name))
	slug = strings.Join(strings.Fields(slug), "-")
	return strings.Map(func(r rune) rune {
		if r >= 'a' && r <= 'z' || r >= '0' && r <= '9' || r == '-' {
			return r
		}
		return -1
	}, slug)
}
