package handlers

import (
	"net/http"

	"restaurant-pos-api/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ProductHandler struct {
	db *gorm.DB
}

func NewProductHandler(db *gorm.DB) *ProductHandler {
	return &ProductHandler{db: db}
}

type ProductRequest struct {
	Name       string  `json:"name" binding:"required"`
	CategoryID *uint   `json:"category_id"`
	Price      float64 `json:"price" binding:"required"`
	TaxPercent float64 `json:"tax_percent"`
	IsActive   *bool   `json:"is_active"`
}

// ProductRow is a product annotated with its category name
type ProductRow struct {
	models.Product
	CategoryName *string `json:"category_name"`
}

// List returns all active products with category names
func (h *ProductHandler) List(c *gin.Context) {
	var products []ProductRow
	if err := h.db.Table("products").
		Select("products.*, categories.name AS category_name").
		Joins("LEFT JOIN categories ON categories.id = products.category_id").
		Where("products.is_active = ?", true).
		Order("products.id ASC").
		Scan(&products).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching products"})
		return
	}
	c.JSON(http.StatusOK, products)
}

func (h *ProductHandler) Create(c *gin.Context) {
	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}

	product := models.Product{
		Name:       req.Name,
		CategoryID: req.CategoryID,
		Price:      req.Price,
		TaxPercent: req.TaxPercent,
		IsActive:   active,
	}
	if err := h.db.Create(&product).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error creating product"})
		return
	}
	c.JSON(http.StatusCreated, product)
}

func (h *ProductHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var product models.Product
	if err := h.db.First(&product, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
		return
	}

	active := product.IsActive
	if req.IsActive != nil {
		active = *req.IsActive
	}

	updates := map[string]interface{}{
		"name":        req.Name,
		"category_id": req.CategoryID,
		"price":       req.Price,
		"tax_percent": req.TaxPercent,
		"is_active":   active,
	}
	if err := h.db.Model(&product).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error updating product"})
		return
	}
	c.JSON(http.StatusOK, product)
}

// Delete soft-deletes a product. The row stays queryable by id so
// historical order items keep resolving.
func (h *ProductHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	var product models.Product
	if err := h.db.First(&product, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
		return
	}

	if err := h.db.Model(&product).Update("is_active", false).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error deleting product"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
}
