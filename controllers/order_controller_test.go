package controllers

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tastebite/tastebite-api/models"
)

func orderTestRouter() *gin.Engine {
	router := gin.New()
	router.POST("/api/orders", CreateOrder)
	router.GET("/api/orders", GetAllOrders)
	router.GET("/api/orders/user/:userId", GetUserOrders)
	router.PUT("/api/orders/:id/status", UpdateOrderStatus)
	return router
}

func TestCreateOrder(t *testing.T) {
	db := setupTestDB(t)
	router := orderTestRouter()

	user := models.User{Email: "customer@example.com", Password: "x", Name: "Customer", Role: models.RoleUser}
	require.NoError(t, db.Create(&user).Error)

	category := models.Category{Name: "Main Course", Active: true}
	require.NoError(t, db.Create(&category).Error)

	burger := models.FoodItem{Name: "Classic Burger", Price: 9.99, CategoryID: category.ID, Available: true}
	require.NoError(t, db.Create(&burger).Error)

	tests := []struct {
		name           string
		requestBody    map[string]interface{}
		expectedStatus int
		expectedError  string
		checkResponse  func(t *testing.T, response map[string]interface{})
	}{
		{
			name: "Successfully place order with price snapshot subtotal",
			requestBody: map[string]interface{}{
				"user_id": user.ID,
				"items": []map[string]interface{}{
					{"food_item_id": burger.ID, "quantity": 2, "price": 9.99},
				},
			},
			expectedStatus: http.StatusCreated,
			checkResponse: func(t *testing.T, response map[string]interface{}) {
				data := response["data"].(map[string]interface{})
				assert.InDelta(t, 19.98, data["subtotal"], 0.001)
				assert.InDelta(t, 19.98, data["total_amount"], 0.001)
				assert.InDelta(t, 0.0, data["discount_amount"], 0.001)
				assert.Equal(t, "PENDING", data["status"])
				assert.Equal(t, "DELIVERY", data["order_type"])
				assert.Equal(t, "COD", data["payment_method"])
				items := data["items"].([]interface{})
				assert.Len(t, items, 1)
				line := items[0].(map[string]interface{})
				assert.InDelta(t, 9.99, line["price"], 0.001)
				assert.Equal(t, float64(2), line["quantity"])
			},
		},
		{
			name: "Fail when user does not exist",
			requestBody: map[string]interface{}{
				"user_id": uint(9999),
				"items": []map[string]interface{}{
					{"food_item_id": burger.ID, "quantity": 1, "price": 9.99},
				},
			},
			expectedStatus: http.StatusNotFound,
			expectedError:  "USER_NOT_FOUND",
		},
		{
			name: "Fail when a line references a missing food item",
			requestBody: map[string]interface{}{
				"user_id": user.ID,
				"items": []map[string]interface{}{
					{"food_item_id": uint(9999), "quantity": 1, "price": 5.00},
				},
			},
			expectedStatus: http.StatusNotFound,
			expectedError:  "FOOD_ITEM_NOT_FOUND",
		},
		{
			name: "Fail with empty items",
			requestBody: map[string]interface{}{
				"user_id": user.ID,
				"items":   []map[string]interface{}{},
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "VALIDATION_ERROR",
		},
		{
			name: "Fail with zero quantity",
			requestBody: map[string]interface{}{
				"user_id": user.ID,
				"items": []map[string]interface{}{
					{"food_item_id": burger.ID, "quantity": 0, "price": 9.99},
				},
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "VALIDATION_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, response := performRequest(t, router, http.MethodPost, "/api/orders", tt.requestBody)
			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedError != "" {
				assert.Equal(t, tt.expectedError, errorCode(response))
			}
			if tt.checkResponse != nil {
				assert.True(t, response["success"].(bool))
				tt.checkResponse(t, response)
			}
		})
	}
}

func TestCreateOrderWithCoupon(t *testing.T) {
	db := setupTestDB(t)
	router := orderTestRouter()

	user := models.User{Email: "couponuser@example.com", Password: "x", Name: "Coupon User"}
	require.NoError(t, db.Create(&user).Error)
	category := models.Category{Name: "Mains", Active: true}
	require.NoError(t, db.Create(&category).Error)
	pizza := models.FoodItem{Name: "Margherita Pizza", Price: 12.99, CategoryID: category.ID, Available: true}
	require.NoError(t, db.Create(&pizza).Error)

	limit := 5
	coupon := models.Coupon{
		Code:               "SAVE10",
		DiscountPercentage: 10,
		Active:             true,
		UsageLimit:         &limit,
	}
	require.NoError(t, db.Create(&coupon).Error)

	body := map[string]interface{}{
		"user_id":     user.ID,
		"coupon_code": "SAVE10",
		"items": []map[string]interface{}{
			{"food_item_id": pizza.ID, "quantity": 2, "price": 10.00},
		},
	}

	w, response := performRequest(t, router, http.MethodPost, "/api/orders", body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	data := response["data"].(map[string]interface{})
	assert.InDelta(t, 20.00, data["subtotal"], 0.001)
	assert.InDelta(t, 2.00, data["discount_amount"], 0.001)
	assert.InDelta(t, 18.00, data["total_amount"], 0.001)

	// Redemption increments the coupon's used count atomically with the order
	var stored models.Coupon
	require.NoError(t, db.First(&stored, coupon.ID).Error)
	assert.Equal(t, 1, stored.UsedCount)
}

func TestCreateOrderWithExpiredCoupon(t *testing.T) {
	db := setupTestDB(t)
	router := orderTestRouter()

	user := models.User{Email: "late@example.com", Password: "x", Name: "Late"}
	require.NoError(t, db.Create(&user).Error)
	category := models.Category{Name: "Mains", Active: true}
	require.NoError(t, db.Create(&category).Error)
	food := models.FoodItem{Name: "Salad", Price: 7.99, CategoryID: category.ID, Available: true}
	require.NoError(t, db.Create(&food).Error)

	past := time.Now().Add(-48 * time.Hour)
	coupon := models.Coupon{Code: "EXPIRED10", DiscountAmount: 10, Active: true, ValidTo: &past}
	require.NoError(t, db.Create(&coupon).Error)

	body := map[string]interface{}{
		"user_id":     user.ID,
		"coupon_code": "EXPIRED10",
		"items": []map[string]interface{}{
			{"food_item_id": food.ID, "quantity": 1, "price": 7.99},
		},
	}

	w, response := performRequest(t, router, http.MethodPost, "/api/orders", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "COUPON_EXPIRED", errorCode(response))

	// Nothing persisted after the rejected placement
	var count int64
	db.Model(&models.Order{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestSubtotalUsesSnapshotPrice(t *testing.T) {
	db := setupTestDB(t)
	router := orderTestRouter()

	user := models.User{Email: "snap@example.com", Password: "x", Name: "Snap"}
	require.NoError(t, db.Create(&user).Error)
	category := models.Category{Name: "Mains", Active: true}
	require.NoError(t, db.Create(&category).Error)
	food := models.FoodItem{Name: "Burger", Price: 9.99, CategoryID: category.ID, Available: true}
	require.NoError(t, db.Create(&food).Error)

	body := map[string]interface{}{
		"user_id": user.ID,
		"items": []map[string]interface{}{
			{"food_item_id": food.ID, "quantity": 3, "price": 9.99},
		},
	}
	w, response := performRequest(t, router, http.MethodPost, "/api/orders", body)
	require.Equal(t, http.StatusCreated, w.Code)
	orderID := uint(response["data"].(map[string]interface{})["id"].(float64))

	// A later price change must not affect the stored order
	require.NoError(t, db.Model(&models.FoodItem{}).Where("id = ?", food.ID).Update("price", 14.99).Error)

	var order models.Order
	require.NoError(t, db.Preload("Items").First(&order, orderID).Error)
	assert.InDelta(t, 29.97, order.Subtotal, 0.001)
	assert.InDelta(t, 9.99, order.Items[0].Price, 0.001)
}

func TestGetOrdersAndStatusUpdate(t *testing.T) {
	db := setupTestDB(t)
	router := orderTestRouter()

	user := models.User{Email: "orders@example.com", Password: "x", Name: "Orders"}
	require.NoError(t, db.Create(&user).Error)

	first := models.Order{UserID: user.ID, Subtotal: 10, TotalAmount: 10, Status: models.StatusPending,
		OrderType: models.TypeDelivery, PaymentMethod: models.PaymentCOD, CreatedAt: time.Now().Add(-time.Hour)}
	second := models.Order{UserID: user.ID, Subtotal: 20, TotalAmount: 20, Status: models.StatusPending,
		OrderType: models.TypeDelivery, PaymentMethod: models.PaymentCOD, CreatedAt: time.Now()}
	require.NoError(t, db.Create(&first).Error)
	require.NoError(t, db.Create(&second).Error)

	t.Run("User orders come back newest first", func(t *testing.T) {
		w, response := performRequest(t, router, http.MethodGet, "/api/orders/user/1", nil)
		require.Equal(t, http.StatusOK, w.Code)
		orders := response["data"].([]interface{})
		require.Len(t, orders, 2)
		assert.Equal(t, float64(second.ID), orders[0].(map[string]interface{})["id"])
	})

	t.Run("Unknown user yields 404", func(t *testing.T) {
		w, response := performRequest(t, router, http.MethodGet, "/api/orders/user/999", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "USER_NOT_FOUND", errorCode(response))
	})

	t.Run("Status update to a known status succeeds", func(t *testing.T) {
		w, response := performRequest(t, router, http.MethodPut, "/api/orders/1/status",
			map[string]interface{}{"status": "CONFIRMED"})
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "CONFIRMED", response["data"].(map[string]interface{})["status"])
	})

	t.Run("Status update rejects unknown status", func(t *testing.T) {
		w, response := performRequest(t, router, http.MethodPut, "/api/orders/1/status",
			map[string]interface{}{"status": "TELEPORTED"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "INVALID_STATUS", errorCode(response))
	})

	t.Run("Status update on missing order yields 404", func(t *testing.T) {
		w, response := performRequest(t, router, http.MethodPut, "/api/orders/999/status",
			map[string]interface{}{"status": "CONFIRMED"})
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "ORDER_NOT_FOUND", errorCode(response))
	})
}
