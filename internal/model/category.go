package model

// AllCategories is the wildcard used in query parameters to mean "no category
// filter". It is never stored on a listing.
const AllCategories = "All Categories"

// Categories is the closed set of listing categories. Stored category values
// always come from this list.
var Categories = []string{
	"Electronics",
	"Vehicles",
	"Property Rentals",
	"Apparel",
	"Classifieds",
	"Entertainment",
	"Family",
	"Free Stuff",
	"Garden & Outdoor",
	"Hobbies",
	"Home Goods",
	"Home Improvement",
	"Home Sales",
	"Musical Instruments",
	"Office Supplies",
	"Pet Supplies",
	"Sporting Goods",
	"Toys & Games",
}

// ValidCategory reports whether name is a member of the closed category set.
// The wildcard is not a valid stored category.
func ValidCategory(name string) bool {
	for _, c := range Categories {
		if c == name {
			return true
		}
	}
	return false
}
