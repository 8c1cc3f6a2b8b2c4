package handlers

import (
	"net/http"
	"time"

	"restaurant-pos-api/middleware"
	"restaurant-pos-api/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type DashboardHandler struct {
	db *gorm.DB
}

func NewDashboardHandler(db *gorm.DB) *DashboardHandler {
	return &DashboardHandler{db: db}
}

// GetStats returns the caller's last login and today's completed sales
func (h *DashboardHandler) GetStats(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var user models.User
	if err := h.db.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
		return
	}

	// daily sales reset at midnight local time
	now := time.Now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	var dailySales float64
	if err := h.db.Model(&models.Order{}).
		Where("status = ? AND created_at >= ?", models.StatusCompleted, startOfDay).
		Select("COALESCE(SUM(total_amount), 0)").
		Scan(&dailySales).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching stats"})
		return
	}

	lastOpened := now
	if user.LastLogin != nil {
		lastOpened = *user.LastLogin
	}

	c.JSON(http.StatusOK, gin.H{
		"lastOpened": lastOpened,
		"dailySales": dailySales,
	})
}
