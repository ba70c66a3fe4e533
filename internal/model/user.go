package model

import (
	"time"

	"gorm.io/gorm"
)

// DefaultUserImage is the placeholder avatar assigned at registration.
const DefaultUserImage = "https://res.cloudinary.com/selli/image/upload/v1535011703/user.png"

// User represents a registered account.
type User struct {
	ID           string    `json:"id" gorm:"type:char(24);primaryKey"`
	FirstName    string    `json:"firstName" gorm:"size:15;not null"`
	LastName     string    `json:"lastName" gorm:"size:20;not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;size:255;not null;collate:utf8mb4_bin"`
	Password     string    `json:"-" gorm:"size:255;not null"` // bcrypt hash, never serialized
	Phone        *string   `json:"phone" gorm:"size:20"`
	RegisterDate time.Time `json:"registerDate" gorm:"not null"`
	Image        string    `json:"image" gorm:"size:512;not null"`
}

// OwnerSummary is the populated owner view embedded in a single-ad read.
// The password never appears here.
type OwnerSummary struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	RegisterDate time.Time `json:"registerDate"`
	FirstName    string    `json:"firstName"`
	Image        string    `json:"image"`
}

// Summary projects the owner fields exposed on a single-ad read.
func (u *User) Summary() OwnerSummary {
	return OwnerSummary{
		ID:           u.ID,
		Email:        u.Email,
		RegisterDate: u.RegisterDate,
		FirstName:    u.FirstName,
		Image:        u.Image,
	}
}

// BeforeCreate fills the identifier and the immutable creation fields.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = NewID()
	}
	if u.RegisterDate.IsZero() {
		u.RegisterDate = time.Now()
	}
	if u.Image == "" {
		u.Image = DefaultUserImage
	}
	return nil
}
