package model

import "time"

// Message is a buyer inquiry attached to exactly one listing. Rows are
// insert-only; nothing in the system updates or deletes them.
type Message struct {
	ID         string    `gorm:"primaryKey;size:36" json:"id"`
	ListingID  string    `gorm:"column:listing_id;size:36;index;not null" json:"listingId"`
	BuyerEmail string    `gorm:"column:buyer_email;size:255;not null" json:"buyerEmail"`
	BuyerName  *string   `gorm:"column:buyer_name;size:255" json:"buyerName,omitempty"`
	Body       string    `gorm:"type:text;not null" json:"body"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

func (Message) TableName() string {
	return "messages"
}
