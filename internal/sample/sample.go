// Package sample provides the fixed fallback listing set served when the
// listing store is unreachable. The provider is injected into the data
// access layer so tests can substitute their own.
package sample

import (
	"strings"
	"time"

	"marketplace-backend/internal/model"
)

const (
	defaultLocation = "Palo Alto, CA"
	placeholderURL  = "/placeholder.svg?height=300&width=300"
)

// Provider serves a fixed, ordered listing sequence. Timestamps are assigned
// relative to the provider's construction time so "newest first" ordering
// holds no matter when the process started.
type Provider struct {
	listings []model.Listing
}

// NewProvider builds the standard five-listing fixture, newest first.
func NewProvider() *Provider {
	now := time.Now()
	mk := func(id, title, description string, price float64, category, email, name string, age time.Duration) model.Listing {
		created := now.Add(-age)
		return model.Listing{
			ID:          id,
			Title:       title,
			Description: &description,
			Price:       price,
			Category:    category,
			Location:    defaultLocation,
			SellerEmail: email,
			SellerName:  &name,
			ImageURL:    strptr(placeholderURL),
			CreatedAt:   created,
			UpdatedAt:   created,
		}
	}
	return &Provider{listings: []model.Listing{
		mk("1", "iPhone 14 Pro",
			"Excellent condition iPhone 14 Pro with original box and all accessories. No scratches or damage.",
			899, "Electronics", "seller1@example.com", "John Doe", 1*time.Hour),
		mk("2", "Mountain Bike 24 inch",
			"Great condition mountain bike perfect for trails and city riding. Recently serviced.",
			299, "Sporting Goods", "seller2@example.com", "Jane Smith", 2*time.Hour),
		mk("3", "Gaming Laptop RTX 4070",
			"High-performance gaming laptop with RTX 4070 graphics card. Perfect for gaming and work.",
			1299, "Electronics", "seller3@example.com", "Mike Johnson", 3*time.Hour),
		mk("4", "Dining Table Set",
			"Beautiful solid wood dining table with 6 chairs. Perfect for family dinners.",
			450, "Home Goods", "seller4@example.com", "Sarah Wilson", 4*time.Hour),
		mk("5", "Toyota Camry 2020",
			"Well maintained sedan with low mileage. Clean title, no accidents.",
			18500, "Vehicles", "seller5@example.com", "David Brown", 5*time.Hour),
	}}
}

// Listings returns a copy of the full fixture in its canonical order.
func (p *Provider) Listings() []model.Listing {
	out := make([]model.Listing, len(p.listings))
	copy(out, p.listings)
	return out
}

// ByCategory returns the fixture entries with an exact category match.
func (p *Provider) ByCategory(category string) []model.Listing {
	out := make([]model.Listing, 0, len(p.listings))
	for _, l := range p.listings {
		if l.Category == category {
			out = append(out, l)
		}
	}
	return out
}

// BySeller returns the fixture entries whose seller email matches,
// case-insensitively.
func (p *Provider) BySeller(email string) []model.Listing {
	out := make([]model.Listing, 0, len(p.listings))
	for _, l := range p.listings {
		if strings.EqualFold(l.SellerEmail, email) {
			out = append(out, l)
		}
	}
	return out
}

// ByID returns the fixture entry with the given id, or nil.
func (p *Provider) ByID(id string) *model.Listing {
	for i := range p.listings {
		if p.listings[i].ID == id {
			l := p.listings[i]
			return &l
		}
	}
	return nil
}

// DefaultLocation is the location applied to listings created without one.
func DefaultLocation() string { return defaultLocation }

// PlaceholderImageURL is substituted for listings created without an image.
func PlaceholderImageURL() string { return placeholderURL }

func strptr(s string) *string { return &s }
