package models

import "time"

// Coupon represents a discount code with an optional validity window and
// usage limit. UsedCount must never exceed UsageLimit when a limit is set.
type Coupon struct {
	ID                 uint       `gorm:"primaryKey" json:"id"`
	Code               string     `gorm:"uniqueIndex;not null" json:"code"`
	Description        string     `json:"description"`
	DiscountAmount     float64    `gorm:"default:0" json:"discount_amount"`
	DiscountPercentage float64    `gorm:"default:0" json:"discount_percentage"`
	MinOrderAmount     float64    `gorm:"default:0" json:"min_order_amount"`
	ValidFrom          *time.Time `json:"valid_from"`
	ValidTo            *time.Time `json:"valid_to"`
	Active             bool       `gorm:"default:true" json:"active"`
	UsageLimit         *int       `json:"usage_limit"`
	UsedCount          int        `gorm:"default:0" json:"used_count"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

// TableName specifies the table name for the Coupon model
func (Coupon) TableName() string {
	return "coupons"
}
