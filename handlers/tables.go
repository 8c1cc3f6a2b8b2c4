package handlers

import (
	"net/http"

	"restaurant-pos-api/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type TableHandler struct {
	db *gorm.DB
}

func NewTableHandler(db *gorm.DB) *TableHandler {
	return &TableHandler{db: db}
}

// TableWithOccupancy annotates a table with its derived occupancy.
type TableWithOccupancy struct {
	models.Table
	IsOccupied bool `json:"is_occupied"`
}

// List returns all active tables with occupancy derived per call: a
// table is occupied iff any order references it with status pending
// or preparing. Never cached — occupancy must reflect the latest
// order status at read time. Ordering is floor then table number;
// table_number is a text column so "10" sorts before "2".
func (h *TableHandler) List(c *gin.Context) {
	var tables []TableWithOccupancy
	if err := h.db.Table("tables").
		Select(`tables.*, EXISTS(
			SELECT 1 FROM orders o
			WHERE o.table_id = tables.id
			AND o.status IN ('pending', 'preparing')
		) AS is_occupied`).
		Where("tables.is_active = ?", true).
		Order("tables.floor_id ASC, tables.table_number ASC").
		Scan(&tables).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching tables"})
		return
	}
	c.JSON(http.StatusOK, tables)
}

// Get returns a single table without the occupancy annotation
func (h *TableHandler) Get(c *gin.Context) {
	id := c.Param("id")

	var table models.Table
	if err := h.db.First(&table, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Table not found"})
		return
	}
	c.JSON(http.StatusOK, table)
}
