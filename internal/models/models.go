package models

import (
	"time"
)

// CartData maps a product id (as a decimal string, matching the legacy
// wire format) to the quantity held in the cart.
type CartData map[string]uint

type Product struct {
	ID          uint      `gorm:"primaryKey"        json:"id"`
	Brand       string    `gorm:"not null"          json:"brand"`
	Name        string    `gorm:"not null"          json:"name"`
	Description string    `gorm:"not null"          json:"description"`
	Image       string    `gorm:"not null"          json:"image"`
	Category    string    `gorm:"not null;index"    json:"category"`
	NewPrice    float64   `gorm:"not null"          json:"new_price"`
	OldPrice    float64   `gorm:"not null"          json:"old_price"`
	Rating      int       `json:"rating"`
	RatingCount int       `json:"rating_count"`
	Available   bool      `gorm:"default:true"      json:"available"`
	CreatedAt   time.Time `json:"date"`
}

type User struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string    `json:"name"`
	Email        string    `gorm:"uniqueIndex;not null"     json:"email"`
	PasswordHash string    `gorm:"not null"                 json:"-"`
	Role         string    `gorm:"not null;default:user"    json:"role"`
	Cart         CartData  `gorm:"serializer:json"          json:"cartData"`
	CreatedAt    time.Time `json:"date"`
}

// UploadedFile backs the database upload store. Image bytes live next to
// the rest of the data so a single connection string covers everything.
type UploadedFile struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"uniqueIndex;not null"     json:"name"`
	ContentType string    `gorm:"not null"                 json:"content_type"`
	Data        []byte    `gorm:"not null"                 json:"-"`
	CreatedAt   time.Time `json:"created_at"`
}
