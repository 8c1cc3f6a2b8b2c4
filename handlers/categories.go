package handlers

import (
	"net/http"

	"restaurant-pos-api/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CategoryHandler struct {
	db *gorm.DB
}

func NewCategoryHandler(db *gorm.DB) *CategoryHandler {
	return &CategoryHandler{db: db}
}

type CategoryRequest struct {
	Name     string `json:"name" binding:"required"`
	IsActive *bool  `json:"is_active"`
}

func (h *CategoryHandler) List(c *gin.Context) {
	var categories []models.Category
	if err := h.db.Where("is_active = ?", true).Order("id ASC").Find(&categories).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching categories"})
		return
	}
	c.JSON(http.StatusOK, categories)
}

func (h *CategoryHandler) Create(c *gin.Context) {
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}

	category := models.Category{Name: req.Name, IsActive: active}
	if err := h.db.Create(&category).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error creating category"})
		return
	}
	c.JSON(http.StatusCreated, category)
}

func (h *CategoryHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var category models.Category
	if err := h.db.First(&category, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Category not found"})
		return
	}

	active := category.IsActive
	if req.IsActive != nil {
		active = *req.IsActive
	}

	if err := h.db.Model(&category).Updates(map[string]interface{}{
		"name":      req.Name,
		"is_active": active,
	}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error updating category"})
		return
	}
	c.JSON(http.StatusOK, category)
}

// Delete soft-deletes a category. A category still referenced by
// active products cannot be removed; that surfaces as a 409 instead
// of the constraint bubbling up as a 500.
func (h *CategoryHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	var category models.Category
	if err := h.db.First(&category, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Category not found"})
		return
	}

	var refs int64
	if err := h.db.Model(&models.Product{}).
		Where("category_id = ? AND is_active = ?", category.ID, true).
		Count(&refs).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error deleting category"})
		return
	}
	if refs > 0 {
		c.JSON(http.StatusConflict, gin.H{"message": "Category is referenced by active products"})
		return
	}

	if err := h.db.Model(&category).Update("is_active", false).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error deleting category"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Category deleted successfully"})
}
