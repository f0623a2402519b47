package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tastebite/tastebite-api/config"
	"github.com/tastebite/tastebite-api/models"
	"github.com/tastebite/tastebite-api/services"
)

// CreateOrderRequest represents the request body for placing an order.
// Each item's price is the unit-price snapshot stored on the line item.
type CreateOrderRequest struct {
	UserID uint `json:"user_id" binding:"required"`
	Items  []struct {
		FoodItemID uint    `json:"food_item_id" binding:"required"`
		Quantity   int     `json:"quantity" binding:"required,gt=0"`
		Price      float64 `json:"price" binding:"required,gt=0"`
	} `json:"items" binding:"required,min=1,dive"`
	CouponCode      string               `json:"coupon_code"`
	OrderType       models.OrderType     `json:"order_type"`
	PaymentMethod   models.PaymentMethod `json:"payment_method"`
	DeliveryAddress string               `json:"delivery_address"`
	Notes           string               `json:"notes"`
}

// StatusRequest represents the request body for an order status update
type StatusRequest struct {
	Status models.OrderStatus `json:"status" binding:"required"`
}

// CreateOrder handles POST /api/orders - places a new order
func CreateOrder(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	lines := make([]services.OrderLine, 0, len(req.Items))
	for _, item := range req.Items {
		lines = append(lines, services.OrderLine{
			FoodItemID: item.FoodItemID,
			Quantity:   item.Quantity,
			Price:      item.Price,
		})
	}

	order, err := services.PlaceOrder(config.GetDB(), services.PlaceOrderInput{
		UserID:          req.UserID,
		Items:           lines,
		CouponCode:      req.CouponCode,
		OrderType:       req.OrderType,
		PaymentMethod:   req.PaymentMethod,
		DeliveryAddress: req.DeliveryAddress,
		Notes:           req.Notes,
	})
	if err != nil {
		handleDomainError(c, err)
		return
	}

	respondData(c, http.StatusCreated, order)
}

// GetUserOrders handles GET /api/orders/user/:userId - the user's orders, newest first
func GetUserOrders(c *gin.Context) {
	db := config.GetDB()
	var user models.User
	if err := db.First(&user, c.Param("userId")).Error; err != nil {
		respondError(c, http.StatusNotFound, "USER_NOT_FOUND", "User not found")
		return
	}

	var orders []models.Order
	err := db.Preload("Items.FoodItem").Preload("Coupon").
		Where("user_id = ?", user.ID).
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		handleDomainError(c, err)
		return
	}

	respondData(c, http.StatusOK, orders)
}

// GetAllOrders handles GET /api/orders - all orders, newest first
func GetAllOrders(c *gin.Context) {
	db := config.GetDB()
	var orders []models.Order
	err := db.Preload("Items.FoodItem").Preload("User").Preload("Coupon").
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		handleDomainError(c, err)
		return
	}

	respondData(c, http.StatusOK, orders)
}

// UpdateOrderStatus handles PUT /api/orders/:id/status.
// The status value must be a known one; transitions between statuses are
// otherwise unconstrained.
func UpdateOrderStatus(c *gin.Context) {
	var req StatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	if !models.ValidStatus(req.Status) {
		respondError(c, http.StatusBadRequest, "INVALID_STATUS", "Unknown order status")
		return
	}

	db := config.GetDB()
	var order models.Order
	if err := db.First(&order, c.Param("id")).Error; err != nil {
		respondError(c, http.StatusNotFound, "ORDER_NOT_FOUND", "Order not found")
		return
	}

	order.Status = req.Status
	if err := db.Save(&order).Error; err != nil {
		handleDomainError(c, err)
		return
	}

	respondData(c, http.StatusOK, order)
}
