package models

import (
	"time"
)

// User roles. superadmin is the only role allowed to change other roles.
const (
	RoleUser       = "user"
	RoleAdmin      = "admin"
	RoleSuperAdmin = "superadmin"
)

// Account statuses. unverified -> active happens only through a valid
// verification token; active <-> inactive is an administrative action.
const (
	StatusUnverified = "unverified"
	StatusActive     = "active"
	StatusInactive   = "inactive"
)

type User struct {
	ID                 uint       `gorm:"primaryKey" json:"id"`
	Username           string     `gorm:"not null" json:"username"`
	Email              string     `gorm:"uniqueIndex;not null" json:"email"`
	Password           string     `gorm:"not null" json:"-"` // bcrypt hash
	Avatar             string     `json:"avatar"`
	Bio                string     `gorm:"size:200" json:"bio"`
	Role               string     `gorm:"size:20;default:'user';not null" json:"role"`
	Status             string     `gorm:"size:20;default:'unverified';not null" json:"status"`
	ResetPasswordToken string     `json:"-"`
	ExpirationTime     *time.Time `json:"-"` // reset token expiry
	CreatedAt          time.Time  `json:"createdAt"`
	UpdatedAt          time.Time  `json:"updatedAt"`
	// No DeletedAt, deletes are physical
}
