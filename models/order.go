package models

import "time"

// OrderStatus represents the lifecycle state of an order.
// Transitions are not constrained by a state machine; any status may be
// set via the status update endpoint.
type OrderStatus string

const (
	StatusPending   OrderStatus = "PENDING"
	StatusConfirmed OrderStatus = "CONFIRMED"
	StatusPreparing OrderStatus = "PREPARING"
	StatusReady     OrderStatus = "READY"
	StatusDelivered OrderStatus = "DELIVERED"
	StatusCancelled OrderStatus = "CANCELLED"
)

// ValidStatus reports whether s is one of the known order statuses
func ValidStatus(s OrderStatus) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusPreparing, StatusReady, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// OrderType distinguishes delivery from takeaway orders
type OrderType string

const (
	TypeDelivery OrderType = "DELIVERY"
	TypeTakeaway OrderType = "TAKEAWAY"
)

// PaymentMethod is how the customer pays for an order
type PaymentMethod string

const (
	PaymentCOD    PaymentMethod = "COD"
	PaymentOnline PaymentMethod = "ONLINE"
)

// Order is a placed order together with its owned line items.
// Invariant: TotalAmount = Subtotal - DiscountAmount, and Subtotal is the sum
// of price*quantity over Items as captured at creation time.
type Order struct {
	ID              uint          `gorm:"primaryKey" json:"id"`
	UserID          uint          `gorm:"not null;index" json:"user_id"`
	User            User          `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Items           []OrderItem   `gorm:"foreignKey:OrderID" json:"items"`
	Subtotal        float64       `json:"subtotal"`
	DiscountAmount  float64       `gorm:"default:0" json:"discount_amount"`
	TotalAmount     float64       `json:"total_amount"`
	CouponID        *uint         `gorm:"index" json:"coupon_id,omitempty"`
	Coupon          *Coupon       `gorm:"foreignKey:CouponID" json:"coupon,omitempty"`
	Status          OrderStatus   `gorm:"not null;default:'PENDING'" json:"status"`
	OrderType       OrderType     `gorm:"not null;default:'DELIVERY'" json:"order_type"`
	PaymentMethod   PaymentMethod `gorm:"not null;default:'COD'" json:"payment_method"`
	DeliveryAddress string        `json:"delivery_address"`
	Notes           string        `json:"notes"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}

// TableName specifies the table name for the Order model
func (Order) TableName() string {
	return "orders"
}

// OrderItem is one line of an order. Price is a snapshot of the unit price
// at order-creation time, independent of later FoodItem price changes.
type OrderItem struct {
	ID         uint     `gorm:"primaryKey" json:"id"`
	OrderID    uint     `gorm:"not null;index" json:"order_id"`
	FoodItemID uint     `gorm:"not null;index" json:"food_item_id"`
	FoodItem   FoodItem `gorm:"foreignKey:FoodItemID" json:"food_item,omitempty"`
	Quantity   int      `gorm:"not null" json:"quantity"`
	Price      float64  `gorm:"not null" json:"price"`
}

// TableName specifies the table name for the OrderItem model
func (OrderItem) TableName() string {
	return "order_items"
}
