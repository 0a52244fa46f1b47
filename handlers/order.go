package handlers

import (
	"net/http"

	"service-marketplace-api/config"
	"service-marketplace-api/middleware"
	"service-marketplace-api/models"
	"service-marketplace-api/statemachine"

	"github.com/gin-gonic/gin"
)

type CreateOrderRequest struct {
	OfferDetailID uint `json:"offer_detail_id" binding:"required"`
}

type UpdateOrderStatusRequest struct {
	Status models.OrderStatus `json:"status" binding:"required"`
}

// CreateOrder creates an order from one offer tier (customer only).
// The tier's fields are copied into the order so later offer edits
// never change it.
func CreateOrder(c *gin.Context) {
	customerID := middleware.GetUserID(c)

	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var detail models.OfferDetail
	if err := config.DB.First(&detail, req.OfferDetailID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Offer detail not found"})
		return
	}

	var offer models.Offer
	if err := config.DB.First(&offer, detail.OfferID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Offer not found"})
		return
	}

	if offer.UserID == customerID {
		c.JSON(http.StatusBadRequest, gin.H{"error": "You cannot create an order for your own offer"})
		return
	}

	order := models.Order{
		CustomerUserID:   customerID,
		BusinessUserID:   offer.UserID,
		OfferDetailID:    detail.ID,
		Status:           models.StatusInProgress,
		Title:            detail.Title,
		Revisions:        detail.Revisions,
		DeliveryTimeDays: detail.DeliveryTimeDays,
		Price:            detail.Price,
		Features:         detail.Features,
		OfferType:        detail.OfferType,
	}
	if err := config.DB.Create(&order).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create order"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Order created", "order": order})
}

// ListOrders returns orders where the caller is either party
func ListOrders(c *gin.Context) {
	callerID := middleware.GetUserID(c)
	var orders []models.Order
	config.DB.
		Where("customer_user_id = ? OR business_user_id = ?", callerID, callerID).
		Order("created_at desc").
		Find(&orders)
	c.JSON(http.StatusOK, gin.H{"count": len(orders), "orders": orders})
}

// GetOrder returns a single order visible to either party
func GetOrder(c *gin.Context) {
	callerID := middleware.GetUserID(c)

	var order models.Order
	if err := config.DB.First(&order, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	if order.CustomerUserID != callerID && order.BusinessUserID != callerID {
		c.JSON(http.StatusForbidden, gin.H{"error": "This order does not belong to you"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": order})
}

// UpdateOrderStatus moves an order through its lifecycle. Only the
// business party of the order may transition it.
func UpdateOrderStatus(c *gin.Context) {
	callerID := middleware.GetUserID(c)

	var order models.Order
	if err := config.DB.First(&order, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	if order.BusinessUserID != callerID {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only the business party can update this order"})
		return
	}

	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := statemachine.CanTransition(order.Status, req.Status, "business"); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":             "Invalid state transition",
			"current_status":    order.Status,
			"requested":         req.Status,
			"reason":            err.Error(),
			"valid_next_states": statemachine.ValidTransitionsFrom(order.Status),
		})
		return
	}

	prevStatus := order.Status
	config.DB.Model(&order).Update("status", req.Status)

	c.JSON(http.StatusOK, gin.H{
		"message":         "Order status updated",
		"order_id":        order.ID,
		"previous_status": string(prevStatus),
		"current_status":  string(req.Status),
	})
}

// AdminDeleteOrder removes an order. Not exposed to ordinary roles.
func AdminDeleteOrder(c *gin.Context) {
	var order models.Order
	if err := config.DB.First(&order, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	if err := config.DB.Delete(&order).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete order"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Order deleted", "order_id": order.ID})
}

// CountInProgressOrders returns the in_progress order count for a business user
func CountInProgressOrders(c *gin.Context) {
	countOrdersByStatus(c, models.StatusInProgress, "order_count")
}

// CountCompletedOrders returns the completed order count for a business user
func CountCompletedOrders(c *gin.Context) {
	countOrdersByStatus(c, models.StatusCompleted, "completed_order_count")
}

func countOrdersByStatus(c *gin.Context, status models.OrderStatus, key string) {
	var user models.User
	if err := config.DB.First(&user, c.Param("businessUserId")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Business user not found"})
		return
	}

	var count int64
	config.DB.Model(&models.Order{}).
		Where("business_user_id = ? AND status = ?", user.ID, status).
		Count(&count)
	c.JSON(http.StatusOK, gin.H{key: count})
}
