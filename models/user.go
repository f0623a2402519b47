package models

import "time"

// UserRole defines allowed roles in the system
type UserRole string

const (
	RoleUser  UserRole = "USER"
	RoleAdmin UserRole = "ADMIN"
)

// User represents a registered account (customer or administrator)
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"not null" json:"-"` // bcrypt hash, never serialized
	Name      string    `gorm:"not null" json:"name"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	Role      UserRole  `gorm:"not null;default:'USER'" json:"role"`
	Active    bool      `gorm:"default:true" json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the table name for the User model
func (User) TableName() string {
	return "users"
}

// IsAdmin reports whether the user holds the administrator role
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
