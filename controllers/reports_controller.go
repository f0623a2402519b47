package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tastebite/tastebite-api/config"
	"github.com/tastebite/tastebite-api/models"
)

// GetDashboardStats handles GET /api/reports/dashboard - aggregate counts
// for the admin dashboard
func GetDashboardStats(c *gin.Context) {
	db := config.GetDB()

	var totalOrders, totalUsers, totalFoodItems, todayOrders int64

	if err := db.Model(&models.Order{}).Count(&totalOrders).Error; err != nil {
		handleDomainError(c, err)
		return
	}
	if err := db.Model(&models.User{}).Count(&totalUsers).Error; err != nil {
		handleDomainError(c, err)
		return
	}
	if err := db.Model(&models.FoodItem{}).Count(&totalFoodItems).Error; err != nil {
		handleDomainError(c, err)
		return
	}

	now := time.Now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	err := db.Model(&models.Order{}).
		Where("created_at >= ? AND created_at < ?", startOfDay, startOfDay.AddDate(0, 0, 1)).
		Count(&todayOrders).Error
	if err != nil {
		handleDomainError(c, err)
		return
	}

	respondData(c, http.StatusOK, gin.H{
		"totalOrders":    totalOrders,
		"totalUsers":     totalUsers,
		"totalFoodItems": totalFoodItems,
		"todayOrders":    todayOrders,
	})
}
