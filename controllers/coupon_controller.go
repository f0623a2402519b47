package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tastebite/tastebite-api/config"
	"github.com/tastebite/tastebite-api/models"
	"github.com/tastebite/tastebite-api/services"
)

// CouponRequest represents the request body for creating or updating a coupon
type CouponRequest struct {
	Code               string     `json:"code" binding:"required"`
	Description        string     `json:"description"`
	DiscountAmount     float64    `json:"discount_amount" binding:"gte=0"`
	DiscountPercentage float64    `json:"discount_percentage" binding:"gte=0,lte=100"`
	MinOrderAmount     float64    `json:"min_order_amount" binding:"gte=0"`
	ValidFrom          *time.Time `json:"valid_from"`
	ValidTo            *time.Time `json:"valid_to"`
	Active             *bool      `json:"active"`
	UsageLimit         *int       `json:"usage_limit"`
}

// CouponValidationRequest represents the request body for coupon validation
type CouponValidationRequest struct {
	Code string `json:"code" binding:"required"`
}

// GetCoupons handles GET /api/coupons - lists active coupons
func GetCoupons(c *gin.Context) {
	db := config.GetDB()
	var coupons []models.Coupon
	if err := db.Where("active = ?", true).Find(&coupons).Error; err != nil {
		handleDomainError(c, err)
		return
	}

	respondData(c, http.StatusOK, coupons)
}

// ValidateCoupon handles POST /api/coupons/validate - checks a code against
// the validity window and usage limit without redeeming it
func ValidateCoupon(c *gin.Context) {
	var req CouponValidationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	coupon, err := services.ValidateCoupon(config.GetDB(), req.Code, time.Now())
	if err != nil {
		handleDomainError(c, err)
		return
	}

	respondData(c, http.StatusOK, coupon)
}

// CreateCoupon handles POST /api/coupons
func CreateCoupon(c *gin.Context) {
	var req CouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	coupon := models.Coupon{
		Code:               req.Code,
		Description:        req.Description,
		DiscountAmount:     req.DiscountAmount,
		DiscountPercentage: req.DiscountPercentage,
		MinOrderAmount:     req.MinOrderAmount,
		ValidFrom:          req.ValidFrom,
		ValidTo:            req.ValidTo,
		Active:             active,
		UsageLimit:         req.UsageLimit,
	}

	db := config.GetDB()
	if err := db.Create(&coupon).Error; err != nil {
		if isDuplicateKeyError(err) {
			respondError(c, http.StatusBadRequest, "COUPON_CODE_EXISTS", "A coupon with this code already exists")
			return
		}
		handleDomainError(c, err)
		return
	}

	respondData(c, http.StatusCreated, coupon)
}

// UpdateCoupon handles PUT /api/coupons/:id
func UpdateCoupon(c *gin.Context) {
	var req CouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	db := config.GetDB()
	var coupon models.Coupon
	if err := db.First(&coupon, c.Param("id")).Error; err != nil {
		respondError(c, http.StatusNotFound, "COUPON_NOT_FOUND", "Coupon not found")
		return
	}

	coupon.Code = req.Code
	coupon.Description = req.Description
	coupon.DiscountAmount = req.DiscountAmount
	coupon.DiscountPercentage = req.DiscountPercentage
	coupon.MinOrderAmount = req.MinOrderAmount
	coupon.ValidFrom = req.ValidFrom
	coupon.ValidTo = req.ValidTo
	coupon.UsageLimit = req.UsageLimit
	if req.Active != nil {
		coupon.Active = *req.Active
	}

	if err := db.Save(&coupon).Error; err != nil {
		if isDuplicateKeyError(err) {
			respondError(c, http.StatusBadRequest, "COUPON_CODE_EXISTS", "A coupon with this code already exists")
			return
		}
		handleDomainError(c, err)
		return
	}

	respondData(c, http.StatusOK, coupon)
}
