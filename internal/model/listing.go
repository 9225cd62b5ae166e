package model

import "time"

// Listing is a single for-sale item. The ID is an opaque UUID string assigned
// at creation and never changed; listings are never edited in place, only
// created and deleted.
type Listing struct {
	ID          string    `gorm:"primaryKey;size:36"`
	Title       string    `gorm:"size:120;not null"`
	Description *string   `gorm:"type:text"`
	Price       float64   `gorm:"not null"`
	Category    string    `gorm:"size:64;not null;index"`
	Location    string    `gorm:"size:255;not null"`
	SellerEmail string    `gorm:"column:seller_email;size:255;not null;index"`
	SellerName  *string   `gorm:"column:seller_name;size:255"`
	ImageURL    *string   `gorm:"column:image_url;size:512"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}

func (Listing) TableName() string {
	return "listings"
}
