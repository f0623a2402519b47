package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/tastebite/tastebite-api/config"
	"github.com/tastebite/tastebite-api/models"
)

// CreateAdminRequest represents the request body for bootstrapping the first admin
type CreateAdminRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Name     string `json:"name" binding:"required"`
}

// CreateFirstAdmin handles POST /api/admin/create-first-admin.
// Rejected once any administrator exists; the check runs against persisted
// state, not an in-process flag.
func CreateFirstAdmin(c *gin.Context) {
	var req CreateAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	db := config.GetDB()

	var count int64
	if err := db.Model(&models.User{}).Where("role = ?", models.RoleAdmin).Count(&count).Error; err != nil {
		handleDomainError(c, err)
		return
	}
	if count > 0 {
		respondError(c, http.StatusBadRequest, "ADMIN_EXISTS", "Admin already exists")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		handleDomainError(c, err)
		return
	}

	admin := models.User{
		Email:    req.Email,
		Name:     req.Name,
		Password: string(hash),
		Role:     models.RoleAdmin,
		Active:   true,
	}
	if err := db.Create(&admin).Error; err != nil {
		if isDuplicateKeyError(err) {
			respondError(c, http.StatusBadRequest, "EMAIL_EXISTS", "Email already exists")
			return
		}
		handleDomainError(c, err)
		return
	}

	respondData(c, http.StatusCreated, admin)
}
