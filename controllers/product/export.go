package productControllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
)

// GET /api/v1/products/export (admin)
//
// Streams the catalog as an .xlsx download for offline stock review.
func (ct *Controller) Export(c *gin.Context) {
	products, err := ct.products.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch products"})
		return
	}

	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Products")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to build export"})
		return
	}

	header := sheet.AddRow()
	for _, title := range []string{"ID", "Name", "Slug", "Category", "Price", "In Stock", "Created"} {
		header.AddCell().Value = title
	}

	for _, p := range products {
		row := sheet.AddRow()
		row.AddCell().SetInt(int(p.ID))
		row.AddCell().Value = p.Name
		row.AddCell().Value = p.Slug
		row.AddCell().Value = p.Category.Name
		row.AddCell().SetFloat(p.Price)
		row.AddCell().SetInt(p.Quantity)
		row.AddCell().Value = p.CreatedAt.Format("2006-01-02")
	}

	filename := fmt.Sprintf("products-%s.xlsx", time.Now().Format("20060102"))
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := file.Write(c.Writer); err != nil {
		c.Status(http.StatusInternalServerError)
	}
}
