package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tastebite/tastebite-api/config"
	"github.com/tastebite/tastebite-api/middleware"
	"github.com/tastebite/tastebite-api/models"
)

// UpdateProfileRequest represents the request body for updating a user profile
type UpdateProfileRequest struct {
	Name    string `json:"name" binding:"required"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// GetUserProfile handles GET /api/users/:id
func GetUserProfile(c *gin.Context) {
	db := config.GetDB()
	var user models.User
	if err := db.First(&user, c.Param("id")).Error; err != nil {
		respondError(c, http.StatusNotFound, "USER_NOT_FOUND", "User not found")
		return
	}

	respondData(c, http.StatusOK, user)
}

// UpdateUserProfile handles PUT /api/users/:id - updates name/phone/address.
// Email changes are deliberately not supported here.
func UpdateUserProfile(c *gin.Context) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	db := config.GetDB()
	var user models.User
	if err := db.First(&user, c.Param("id")).Error; err != nil {
		respondError(c, http.StatusNotFound, "USER_NOT_FOUND", "User not found")
		return
	}

	user.Name = req.Name
	user.Phone = req.Phone
	user.Address = req.Address

	if err := db.Save(&user).Error; err != nil {
		handleDomainError(c, err)
		return
	}

	respondData(c, http.StatusOK, user)
}

// GetMyProfile handles GET /api/users/me - gets the authenticated user's profile
func GetMyProfile(c *gin.Context) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		respondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "Could not extract user information")
		return
	}

	db := config.GetDB()
	var user models.User
	if err := db.First(&user, userID).Error; err != nil {
		respondError(c, http.StatusNotFound, "USER_NOT_FOUND", "User not found")
		return
	}

	respondData(c, http.StatusOK, user)
}
