package sample

import "testing"

func TestProviderFixtureShape(t *testing.T) {
	p := NewProvider()
	listings := p.Listings()
	if len(listings) != 5 {
		t.Fatalf("fixture has %d listings, want 5", len(listings))
	}
	for i, l := range listings {
		if l.ID == "" || l.Title == "" || l.Category == "" || l.SellerEmail == "" {
			t.Fatalf("listing %d is missing required fields: %+v", i, l)
		}
		if l.Price < 0 {
			t.Fatalf("listing %d has negative price", i)
		}
		if l.UpdatedAt.Before(l.CreatedAt) {
			t.Fatalf("listing %d updated before created", i)
		}
		if i > 0 && listings[i-1].CreatedAt.Before(l.CreatedAt) {
			t.Fatalf("fixture is not newest-first at index %d", i)
		}
	}
}

func TestProviderListingsReturnsCopy(t *testing.T) {
	p := NewProvider()
	first := p.Listings()
	first[0].Title = "mutated"
	if p.Listings()[0].Title == "mutated" {
		t.Fatal("Listings must return a copy")
	}
}

func TestProviderByCategory(t *testing.T) {
	tests := []struct {
		category string
		want     int
	}{
		{"Electronics", 2},
		{"Vehicles", 1},
		{"Sporting Goods", 1},
		{"Home Goods", 1},
		{"Pet Supplies", 0},
	}
	for _, tt := range tests {
		if got := NewProvider().ByCategory(tt.category); len(got) != tt.want {
			t.Fatalf("%s: got %d want %d", tt.category, len(got), tt.want)
		}
	}
}

func TestProviderBySeller(t *testing.T) {
	p := NewProvider()
	if got := p.BySeller("seller1@example.com"); len(got) != 1 || got[0].Title != "iPhone 14 Pro" {
		t.Fatalf("got %+v", got)
	}
	if got := p.BySeller("SELLER1@EXAMPLE.COM"); len(got) != 1 {
		t.Fatal("seller lookup should be case-insensitive")
	}
	if got := p.BySeller("nobody@example.com"); len(got) != 0 {
		t.Fatalf("got %d want 0", len(got))
	}
}

func TestProviderByID(t *testing.T) {
	p := NewProvider()
	if l := p.ByID("3"); l == nil || l.Title != "Gaming Laptop RTX 4070" {
		t.Fatalf("got %+v", l)
	}
	if l := p.ByID("99"); l != nil {
		t.Fatalf("unknown id should be nil, got %+v", l)
	}
}
