package handlers

import (
	"net/http"

	"github.com/AtharvMirajkar/delivery-management-system/config"
	"github.com/AtharvMirajkar/delivery-management-system/logger"
	"github.com/AtharvMirajkar/delivery-management-system/middleware"
	"github.com/AtharvMirajkar/delivery-management-system/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type UpdateAvailabilityRequest struct {
	// pointer so an explicit false is distinguishable from a missing field
	IsAvailable *bool `json:"isAvailable" binding:"required"`
}

// ListPartners returns all delivery partners
func ListPartners(c *gin.Context) {
	var partners []models.User
	if err := config.DB.Where("role = ?", models.RolePartner).Find(&partners).Error; err != nil {
		logger.GetLogger().Error("list partners failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error fetching partners"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"partners": partners})
}

// ListAvailablePartners returns partners that have marked themselves available
func ListAvailablePartners(c *gin.Context) {
	var partners []models.User
	if err := config.DB.Where("role = ? AND is_available = ?", models.RolePartner, true).Find(&partners).Error; err != nil {
		logger.GetLogger().Error("list available partners failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error fetching available partners"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"partners": partners})
}

// UpdateAvailability toggles the calling partner's own availability flag
func UpdateAvailability(c *gin.Context) {
	var req UpdateAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := middleware.GetUserID(c)
	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	if err := config.DB.Model(&user).Update("is_available", *req.IsAvailable).Error; err != nil {
		logger.GetLogger().Error("update availability failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error updating availability"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Availability updated successfully",
		"user":    user,
	})
}
