package query

import (
	"testing"

	"marketplace-backend/internal/model"
)

func TestMatchesSubCategory(t *testing.T) {
	desc := "comes with charger"
	tests := []struct {
		name  string
		title string
		desc  string
		tag   string
		want  bool
	}{
		{"iphone is a smartphone", "iPhone 14 Pro", "", "smartphones", true},
		{"android keyword", "Cheap Android tablet-phone", "", "smartphones", true},
		{"laptop keyword", "Gaming Laptop RTX 4070", "", "laptops", true},
		{"pc in description", "Custom tower", "water-cooled pc build", "laptops", true},
		{"bike is not audio", "Mountain Bike 24 inch", "", "audio", false},
		{"speaker keyword", "Bluetooth Speaker", "", "audio", true},
		{"lens keyword", "50mm Lens", "", "cameras", true},
		{"photo in description", "Tripod", "great for photo shoots", "cameras", true},
		{"empty tag matches everything", "Dining Table Set", "", "", true},
		{"unknown tag matches everything", "Dining Table Set", "", "furniture", true},
		{"keyword match is case-insensitive", "LAPTOP sleeve", "", "laptops", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := model.Listing{Title: tt.title}
			if tt.desc != "" {
				d := tt.desc
				l.Description = &d
			} else {
				l.Description = &desc
			}
			if got := MatchesSubCategory(l, tt.tag); got != tt.want {
				t.Fatalf("got=%v want=%v", got, tt.want)
			}
		})
	}
}

func TestMatchesSubCategoryNilDescription(t *testing.T) {
	l := model.Listing{Title: "Old Camera"}
	if !MatchesSubCategory(l, "cameras") {
		t.Fatal("title alone should match")
	}
	l = model.Listing{Title: "Old Radio"}
	if MatchesSubCategory(l, "cameras") {
		t.Fatal("no keyword in title and nil description must not match")
	}
}

func TestApplySubCategoryFilter(t *testing.T) {
	electronics := Apply(fixture(), Params{Category: "Electronics", SubCategory: "laptops", Scope: ScopeTitleDescription})
	if !equalTitles(electronics, []string{"Gaming Laptop RTX 4070"}) {
		t.Fatalf("got=%v", titles(electronics))
	}
	phones := Apply(fixture(), Params{Category: "Electronics", SubCategory: "smartphones", Scope: ScopeTitleDescription})
	if !equalTitles(phones, []string{"iPhone 14 Pro"}) {
		t.Fatalf("got=%v", titles(phones))
	}
}
