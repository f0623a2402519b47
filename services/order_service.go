package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/tastebite/tastebite-api/models"
)

// OrderLine is one requested (food item, quantity, unit price) entry.
// Price is the snapshot the client saw at ordering time and is stored
// verbatim on the line item.
type OrderLine struct {
	FoodItemID uint
	Quantity   int
	Price      float64
}

// PlaceOrderInput carries everything needed to construct an order
type PlaceOrderInput struct {
	UserID          uint
	Items           []OrderLine
	CouponCode      string
	OrderType       models.OrderType
	PaymentMethod   models.PaymentMethod
	DeliveryAddress string
	Notes           string
}

// PlaceOrder constructs and persists an order with its line items in one
// transaction. The referenced user and every referenced food item must
// exist. Subtotal is the sum of price*quantity over the submitted lines;
// when a coupon code is supplied it is validated, its discount applied,
// and its used count incremented atomically with the order insert.
func PlaceOrder(db *gorm.DB, in PlaceOrderInput) (*models.Order, error) {
	var user models.User
	if err := db.First(&user, in.UserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewError("USER_NOT_FOUND", "User not found")
		}
		return nil, err
	}

	var subtotal float64
	items := make([]models.OrderItem, 0, len(in.Items))
	for _, line := range in.Items {
		var food models.FoodItem
		if err := db.First(&food, line.FoodItemID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, NewError("FOOD_ITEM_NOT_FOUND", "Food item not found")
			}
			return nil, err
		}
		subtotal += line.Price * float64(line.Quantity)
		items = append(items, models.OrderItem{
			FoodItemID: line.FoodItemID,
			Quantity:   line.Quantity,
			Price:      line.Price,
		})
	}

	var coupon *models.Coupon
	if in.CouponCode != "" {
		var err error
		coupon, err = ValidateCoupon(db, in.CouponCode, time.Now())
		if err != nil {
			return nil, err
		}
	}

	discount := ComputeDiscount(coupon, subtotal)

	order := models.Order{
		UserID:          in.UserID,
		Items:           items,
		Subtotal:        subtotal,
		DiscountAmount:  discount,
		TotalAmount:     subtotal - discount,
		Status:          models.StatusPending,
		OrderType:       in.OrderType,
		PaymentMethod:   in.PaymentMethod,
		DeliveryAddress: in.DeliveryAddress,
		Notes:           in.Notes,
	}
	if order.OrderType == "" {
		order.OrderType = models.TypeDelivery
	}
	if order.PaymentMethod == "" {
		order.PaymentMethod = models.PaymentCOD
	}
	if coupon != nil {
		order.CouponID = &coupon.ID
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&order).Error; err != nil {
			return err
		}
		if coupon != nil {
			if err := RedeemCoupon(tx, coupon.ID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Load relationships to return complete data
	if err := db.Preload("Items.FoodItem").Preload("User").First(&order, order.ID).Error; err != nil {
		return nil, err
	}

	return &order, nil
}
