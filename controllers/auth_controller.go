package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/tastebite/tastebite-api/config"
	"github.com/tastebite/tastebite-api/middleware"
	"github.com/tastebite/tastebite-api/models"
)

// RegisterRequest represents the request body for creating an account
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
}

// LoginRequest represents the request body for logging in
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Register handles POST /api/auth/register - creates a new customer account
func Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	db := config.GetDB()

	// Check email uniqueness before insert for a friendly message; the
	// unique index remains the authoritative guard
	var existing models.User
	if err := db.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		respondError(c, http.StatusBadRequest, "EMAIL_EXISTS", "Email already exists")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		handleDomainError(c, err)
		return
	}

	user := models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hash),
		Phone:    req.Phone,
		Address:  req.Address,
		Role:     models.RoleUser,
		Active:   true,
	}

	if err := db.Create(&user).Error; err != nil {
		if isDuplicateKeyError(err) {
			respondError(c, http.StatusBadRequest, "EMAIL_EXISTS", "Email already exists")
			return
		}
		handleDomainError(c, err)
		return
	}

	token, err := middleware.GenerateToken(&user)
	if err != nil {
		handleDomainError(c, err)
		return
	}

	respondData(c, http.StatusCreated, gin.H{
		"user":  user,
		"token": token,
	})
}

// Login handles POST /api/auth/login - authenticates a user and returns a JWT
func Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	db := config.GetDB()
	var user models.User
	if err := db.Where("email = ?", req.Email).First(&user).Error; err != nil {
		respondError(c, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Invalid email or password")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		respondError(c, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Invalid email or password")
		return
	}

	token, err := middleware.GenerateToken(&user)
	if err != nil {
		handleDomainError(c, err)
		return
	}

	respondData(c, http.StatusOK, gin.H{
		"user":  user,
		"token": token,
	})
}

// isDuplicateKeyError reports whether err is a unique constraint violation
// (works with both PostgreSQL and SQLite)
func isDuplicateKeyError(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "unique")
}
