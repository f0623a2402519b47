package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tastebite/tastebite-api/models"
)

func TestPlaceOrderDefaultsAndTotals(t *testing.T) {
	db := setupServiceTestDB(t)
	food, users := seedRatingFixtures(t, db, 1)

	order, err := PlaceOrder(db, PlaceOrderInput{
		UserID: users[0].ID,
		Items: []OrderLine{
			{FoodItemID: food.ID, Quantity: 2, Price: 11.50},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, models.StatusPending, order.Status)
	assert.Equal(t, models.TypeDelivery, order.OrderType)
	assert.Equal(t, models.PaymentCOD, order.PaymentMethod)
	assert.InDelta(t, 23.0, order.Subtotal, 0.001)
	assert.InDelta(t, 23.0, order.TotalAmount, 0.001)
	assert.Nil(t, order.CouponID)
	require.Len(t, order.Items, 1)
	assert.Equal(t, food.ID, order.Items[0].FoodItem.ID)
}

func TestPlaceOrderRollsBackWhenCouponExhausted(t *testing.T) {
	db := setupServiceTestDB(t)
	food, users := seedRatingFixtures(t, db, 1)

	limit := 1
	coupon := models.Coupon{Code: "ONCE", Active: true, DiscountPercentage: 10, UsageLimit: &limit, UsedCount: 1}
	require.NoError(t, db.Create(&coupon).Error)

	// Validation sees the exhausted limit before any rows are written
	_, err := PlaceOrder(db, PlaceOrderInput{
		UserID:     users[0].ID,
		CouponCode: "ONCE",
		Items: []OrderLine{
			{FoodItemID: food.ID, Quantity: 1, Price: 11.50},
		},
	})
	require.Error(t, err)
	svcErr, ok := err.(*Error)
	require.True(t, ok)
	assert.Equal(t, "COUPON_LIMIT_EXCEEDED", svcErr.Code)

	var orders int64
	require.NoError(t, db.Model(&models.Order{}).Count(&orders).Error)
	assert.Zero(t, orders)
}
