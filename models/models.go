package models

import (
	"time"

	"gorm.io/gorm"
)

// User represents a donor account in the system
type User struct {
	gorm.Model
	Email      string `gorm:"uniqueIndex;not null" json:"email"`
	Password   string `json:"-"`
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	AvatarURL  string `json:"avatar_url"`
	IsBlocked  bool   `json:"is_blocked"`
	IsVerified bool   `json:"is_verified" gorm:"default:false"`
	GoogleID   string `gorm:"unique;default:null" json:"google_id"`

	// 80G certificate fields, used to pre-fill the donation wizard
	PanNumber  string `json:"pan_number"`
	FatherName string `json:"father_name"`
	Address    string `json:"address"`
	City       string `json:"city"`
	State      string `json:"state"`
	Pincode    string `json:"pincode"`
	Country    string `json:"country" gorm:"default:'India'"`

	LastLoginAt time.Time  `json:"last_login_at"`
	Donations   []Donation `json:"donations,omitempty" gorm:"foreignKey:UserID"`
}

// Admin represents an administrator in the system
type Admin struct {
	gorm.Model
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Password  string    `json:"-"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	LastLogin time.Time `json:"last_login"`
	IsActive  bool      `json:"is_active" gorm:"default:true"`
}
