package model

import (
	"time"

	"gorm.io/gorm"
)

// DefaultAdImage is the placeholder picture assigned when no image is uploaded.
const DefaultAdImage = "https://res.cloudinary.com/selli/image/upload/v1535006858/placeholder.png"

// Ad represents a marketplace listing. Owner is set once at creation and
// never reassigned.
type Ad struct {
	ID           string    `json:"id" gorm:"type:char(24);primaryKey"`
	Title        string    `json:"title" gorm:"size:70;not null"`
	Description  string    `json:"description" gorm:"size:2000;not null"`
	Category     int       `json:"category" gorm:"not null;index"`
	IsUsed       bool      `json:"isUsed" gorm:"not null"`
	Price        float64   `json:"price" gorm:"not null"`
	Location     string    `json:"location" gorm:"size:20;not null"`
	Image        string    `json:"image" gorm:"size:512;not null"`
	CreationDate time.Time `json:"creationDate" gorm:"not null;index"`
	Phone        *string   `json:"phone" gorm:"size:20"`
	Views        int64     `json:"views" gorm:"not null;default:0"`
	OwnerID      string    `json:"owner" gorm:"type:char(24);not null;index"`
}

// AdWithOwner is the single-ad read shape: the full ad plus the populated
// owner summary in place of the bare owner identifier.
type AdWithOwner struct {
	Ad
	Owner OwnerSummary `json:"owner"`
}

// AdSummary is the reduced projection returned by every list-style read.
type AdSummary struct {
	ID    string  `json:"id"`
	Title string  `json:"title"`
	Price float64 `json:"price"`
	Image string  `json:"image"`
}

// Summary projects the list-style fields.
func (a *Ad) Summary() AdSummary {
	return AdSummary{
		ID:    a.ID,
		Title: a.Title,
		Price: a.Price,
		Image: a.Image,
	}
}

// BeforeCreate fills the identifier and the immutable creation fields.
func (a *Ad) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = NewID()
	}
	if a.CreationDate.IsZero() {
		a.CreationDate = time.Now()
	}
	if a.Image == "" {
		a.Image = DefaultAdImage
	}
	return nil
}

// Favourite is one entry on a user's favourites list. Rows are ordered
// newest-first by the autoincrement ID; the unique index enforces the
// no-duplicates invariant. There is no foreign key to ads: a row may dangle
// after its ad is deleted, and reads join ads so dangling rows drop out.
type Favourite struct {
	ID     uint64 `gorm:"primaryKey;autoIncrement"`
	UserID string `gorm:"type:char(24);not null;uniqueIndex:idx_user_ad"`
	AdID   string `gorm:"type:char(24);not null;uniqueIndex:idx_user_ad"`
}
