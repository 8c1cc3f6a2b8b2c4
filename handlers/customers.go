package handlers

import (
	"net/http"

	"restaurant-pos-api/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CustomerHandler struct {
	db *gorm.DB
}

func NewCustomerHandler(db *gorm.DB) *CustomerHandler {
	return &CustomerHandler{db: db}
}

type CustomerRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Street1 string `json:"street1"`
	Street2 string `json:"street2"`
	City    string `json:"city"`
	State   string `json:"state"`
	Country string `json:"country"`
	ZipCode string `json:"zip_code"`
}

// CustomerRow annotates a customer with their completed-order sales sum
type CustomerRow struct {
	models.Customer
	TotalSales float64 `json:"total_sales"`
}

// List returns all customers with a join-derived total_sales over
// completed orders (the single behavior chosen for the two divergent
// paths in the original backend, see DESIGN.md).
func (h *CustomerHandler) List(c *gin.Context) {
	var customers []CustomerRow
	if err := h.db.Table("customers").
		Select(`customers.*, COALESCE(SUM(CASE WHEN orders.status = 'completed' THEN orders.total_amount ELSE 0 END), 0) AS total_sales`).
		Joins("LEFT JOIN orders ON orders.customer_id = customers.id").
		Group("customers.id").
		Order("customers.name ASC").
		Scan(&customers).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching customers"})
		return
	}
	c.JSON(http.StatusOK, customers)
}

func (h *CustomerHandler) Get(c *gin.Context) {
	id := c.Param("id")

	var customer models.Customer
	if err := h.db.First(&customer, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Customer not found"})
		return
	}
	c.JSON(http.StatusOK, customer)
}

func (h *CustomerHandler) Create(c *gin.Context) {
	var req CustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	customer := models.Customer{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Street1: req.Street1,
		Street2: req.Street2,
		City:    req.City,
		State:   req.State,
		Country: req.Country,
		ZipCode: req.ZipCode,
	}
	if err := h.db.Create(&customer).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error creating customer"})
		return
	}
	c.JSON(http.StatusCreated, customer)
}

func (h *CustomerHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var req CustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var customer models.Customer
	if err := h.db.First(&customer, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Customer not found"})
		return
	}

	if err := h.db.Model(&customer).Updates(map[string]interface{}{
		"name":     req.Name,
		"email":    req.Email,
		"phone":    req.Phone,
		"street1":  req.Street1,
		"street2":  req.Street2,
		"city":     req.City,
		"state":    req.State,
		"country":  req.Country,
		"zip_code": req.ZipCode,
	}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error updating customer"})
		return
	}
	c.JSON(http.StatusOK, customer)
}
