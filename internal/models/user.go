package models

import (
	"time"
)

// User is an account that can own listings. The password column holds the
// bcrypt hash and is never serialized.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Email     string    `gorm:"not null;size:255;uniqueIndex" json:"email"`
	FullName  *string   `gorm:"size:255" json:"full_name"`
	Password  string    `gorm:"not null" json:"-"`
	IsActive  bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Listings []Listing `gorm:"foreignKey:OwnerID" json:"-"`
}
