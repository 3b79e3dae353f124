package handlers

import (
	"fmt"
	"math/rand"
	"net/http"
	"time"

	"github.com/AtharvMirajkar/delivery-management-system/config"
	"github.com/AtharvMirajkar/delivery-management-system/logger"
	"github.com/AtharvMirajkar/delivery-management-system/metrics"
	"github.com/AtharvMirajkar/delivery-management-system/middleware"
	"github.com/AtharvMirajkar/delivery-management-system/models"
	"github.com/AtharvMirajkar/delivery-management-system/statemachine"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type LocationRequest struct {
	// pointers so a missing coordinate is distinguishable from 0
	Lat *float64 `json:"lat" binding:"required,latitude"`
	Lng *float64 `json:"lng" binding:"required,longitude"`
}

type CreateOrderRequest struct {
	CustomerName     string          `json:"customerName" binding:"required"`
	CustomerPhone    string          `json:"customerPhone" binding:"required"`
	PickupAddress    string          `json:"pickupAddress" binding:"required"`
	PickupLocation   LocationRequest `json:"pickupLocation" binding:"required"`
	DeliveryAddress  string          `json:"deliveryAddress" binding:"required"`
	DeliveryLocation LocationRequest `json:"deliveryLocation" binding:"required"`
	Notes            string          `json:"notes"`
}

type AssignOrderRequest struct {
	PartnerID uint `json:"partnerId" binding:"required"`
}

type UpdateStatusRequest struct {
	Status models.OrderStatus `json:"status" binding:"required,oneof=picked_up delivered"`
}

// newOrderNumber builds a human-readable order number. Uniqueness is a
// heuristic only; the unique index is the actual guard.
func newOrderNumber() string {
	return fmt.Sprintf("ORD-%d-%d", time.Now().UnixMilli(), rand.Intn(1000))
}

// CreateOrder creates a new delivery order (admin only)
func CreateOrder(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order := models.Order{
		OrderNumber:      newOrderNumber(),
		CustomerName:     req.CustomerName,
		CustomerPhone:    req.CustomerPhone,
		PickupAddress:    req.PickupAddress,
		PickupLocation:   models.Location{Lat: *req.PickupLocation.Lat, Lng: *req.PickupLocation.Lng},
		DeliveryAddress:  req.DeliveryAddress,
		DeliveryLocation: models.Location{Lat: *req.DeliveryLocation.Lat, Lng: *req.DeliveryLocation.Lng},
		Status:           models.StatusPending,
		Notes:            req.Notes,
	}

	if err := config.DB.Create(&order).Error; err != nil {
		logger.GetLogger().Error("create order failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error creating order"})
		return
	}

	metrics.RecordOrderOperation("create")
	c.JSON(http.StatusCreated, gin.H{
		"message": "Order created successfully",
		"order":   order,
	})
}

// ListOrders returns all orders for admins, or only the caller's
// assigned orders for partners. Newest first.
func ListOrders(c *gin.Context) {
	query := config.DB.Preload("AssignedTo")
	if middleware.GetRole(c) == models.RolePartner {
		query = query.Where("assigned_to_id = ?", middleware.GetUserID(c))
	}

	var orders []models.Order
	if err := query.Order("created_at desc").Find(&orders).Error; err != nil {
		logger.GetLogger().Error("list orders failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error fetching orders"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

// GetOrder returns a single order. Partners can only see orders
// assigned to them.
func GetOrder(c *gin.Context) {
	var order models.Order
	if err := config.DB.Preload("AssignedTo").First(&order, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	if middleware.GetRole(c) == models.RolePartner {
		callerID := middleware.GetUserID(c)
		if order.AssignedToID == nil || *order.AssignedToID != callerID {
			c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"order": order})
}

// AssignOrder binds a partner to an order and moves it to "assigned"
// (admin only). Calling it on an already-assigned order overwrites the
// assignee — last write wins, no conflict detection.
func AssignOrder(c *gin.Context) {
	var req AssignOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var partner models.User
	if err := config.DB.Where("id = ? AND role = ?", req.PartnerID, models.RolePartner).First(&partner).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Partner not found"})
		return
	}

	var order models.Order
	if err := config.DB.First(&order, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	// Single update so assignee and status never diverge
	if err := config.DB.Model(&order).Updates(map[string]interface{}{
		"assigned_to_id": partner.ID,
		"status":         models.StatusAssigned,
	}).Error; err != nil {
		logger.GetLogger().Error("assign order failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error assigning order"})
		return
	}

	if err := config.DB.Preload("AssignedTo").First(&order, order.ID).Error; err != nil {
		logger.GetLogger().Error("reload assigned order failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error assigning order"})
		return
	}

	metrics.RecordOrderOperation("assign")
	c.JSON(http.StatusOK, gin.H{
		"message": "Order assigned successfully",
		"order":   order,
	})
}

// UpdateOrderStatus advances an order to picked_up or delivered.
// Allowed for admins and for the partner currently assigned.
func UpdateOrderStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var order models.Order
	if err := config.DB.First(&order, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	if middleware.GetRole(c) == models.RolePartner {
		callerID := middleware.GetUserID(c)
		if order.AssignedToID == nil || *order.AssignedToID != callerID {
			c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
			return
		}
	}

	if err := statemachine.CanTransition(order.Status, req.Status); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := config.DB.Model(&order).Update("status", req.Status).Error; err != nil {
		logger.GetLogger().Error("update order status failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error updating order status"})
		return
	}

	if err := config.DB.Preload("AssignedTo").First(&order, order.ID).Error; err != nil {
		logger.GetLogger().Error("reload updated order failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error updating order status"})
		return
	}

	metrics.RecordOrderOperation("status_" + string(req.Status))
	c.JSON(http.StatusOK, gin.H{
		"message": "Order status updated successfully",
		"order":   order,
	})
}

// DeleteOrder permanently removes an order (admin only)
func DeleteOrder(c *gin.Context) {
	var order models.Order
	if err := config.DB.First(&order, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	if err := config.DB.Delete(&order).Error; err != nil {
		logger.GetLogger().Error("delete order failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error deleting order"})
		return
	}

	metrics.RecordOrderOperation("delete")
	c.JSON(http.StatusOK, gin.H{"message": "Order deleted successfully"})
}
