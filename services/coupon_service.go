package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/tastebite/tastebite-api/models"
)

// ValidateCoupon looks up an active coupon by code and applies the three
// validity checks in order, short-circuiting at the first failure:
// validity window start, validity window end, usage limit.
// On success the coupon is returned unchanged; redemption is a separate
// concern (see RedeemCoupon).
func ValidateCoupon(db *gorm.DB, code string, now time.Time) (*models.Coupon, error) {
	var coupon models.Coupon
	if err := db.Where("code = ? AND active = ?", code, true).First(&coupon).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewError("INVALID_COUPON", "Invalid coupon code")
		}
		return nil, err
	}

	if coupon.ValidFrom != nil && now.Before(*coupon.ValidFrom) {
		return nil, NewError("COUPON_NOT_YET_VALID", "Coupon not yet valid")
	}

	if coupon.ValidTo != nil && now.After(*coupon.ValidTo) {
		return nil, NewError("COUPON_EXPIRED", "Coupon expired")
	}

	if coupon.UsageLimit != nil && coupon.UsedCount >= *coupon.UsageLimit {
		return nil, NewError("COUPON_LIMIT_EXCEEDED", "Coupon usage limit exceeded")
	}

	return &coupon, nil
}

// ComputeDiscount returns the discount a coupon yields on a given subtotal.
// Percentage and flat amount stack; the result never exceeds the subtotal.
// A subtotal below the coupon's minimum order amount yields no discount.
func ComputeDiscount(coupon *models.Coupon, subtotal float64) float64 {
	if coupon == nil {
		return 0
	}
	if coupon.MinOrderAmount > 0 && subtotal < coupon.MinOrderAmount {
		return 0
	}

	discount := subtotal*coupon.DiscountPercentage/100 + coupon.DiscountAmount
	if discount > subtotal {
		discount = subtotal
	}
	if discount < 0 {
		discount = 0
	}
	return discount
}

// RedeemCoupon increments a coupon's used count. The increment is a single
// conditional UPDATE so two concurrent redemptions cannot push used_count
// past the usage limit.
func RedeemCoupon(tx *gorm.DB, couponID uint) error {
	result := tx.Model(&models.Coupon{}).
		Where("id = ? AND (usage_limit IS NULL OR used_count < usage_limit)", couponID).
		UpdateColumn("used_count", gorm.Expr("used_count + 1"))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return NewError("COUPON_LIMIT_EXCEEDED", "Coupon usage limit exceeded")
	}
	return nil
}
