// Package query implements the pure filter/sort/search pipeline applied to
// in-memory listing collections. It performs no I/O and never fails; all
// inputs are treated permissively.
package query

import (
	"sort"
	"strings"

	"marketplace-backend/internal/model"
)

// Sort keys accepted by Apply. Anything else falls back to SortNewest.
const (
	SortNewest    = "newest"
	SortOldest    = "oldest"
	SortPriceLow  = "price-low"
	SortPriceHigh = "price-high"
)

// Scope selects which listing fields a text query is matched against.
type Scope int

const (
	// ScopeFull matches against title, description and category. This is
	// what the site-wide search uses.
	ScopeFull Scope = iota
	// ScopeTitleDescription matches title and description only, as on a
	// single-category browse page where the category is already fixed.
	ScopeTitleDescription
)

// Params are the query parameters of one derivation. The zero value matches
// everything and sorts newest-first.
type Params struct {
	Query       string
	Scope       Scope
	Category    string // empty or model.AllCategories disables the filter
	SubCategory string
	PriceMin    *float64 // inclusive; nil means unbounded
	PriceMax    *float64
	Sort        string
}

// Apply derives a filtered, ordered view of listings. The pipeline order is
// fixed: text filter, category filter, sub-category filter, price filter,
// sort. The input slice is never mutated; the result is always a fresh slice,
// possibly empty.
func Apply(listings []model.Listing, p Params) []model.Listing {
	out := make([]model.Listing, 0, len(listings))
	for _, l := range listings {
		if !matchesText(l, p.Query, p.Scope) {
			continue
		}
		if !matchesCategory(l, p.Category) {
			continue
		}
		if !MatchesSubCategory(l, p.SubCategory) {
			continue
		}
		if !matchesPrice(l, p.PriceMin, p.PriceMax) {
			continue
		}
		out = append(out, l)
	}
	sortListings(out, p.Sort)
	return out
}

func matchesText(l model.Listing, q string, scope Scope) bool {
	if q == "" {
		return true
	}
	q = strings.ToLower(q)
	if strings.Contains(strings.ToLower(l.Title), q) {
		return true
	}
	if l.Description != nil && strings.Contains(strings.ToLower(*l.Description), q) {
		return true
	}
	if scope == ScopeFull && strings.Contains(strings.ToLower(l.Category), q) {
		return true
	}
	return false
}

func matchesCategory(l model.Listing, category string) bool {
	if category == "" || category == model.AllCategories {
		return true
	}
	return l.Category == category
}

func matchesPrice(l model.Listing, min, max *float64) bool {
	if min != nil && l.Price < *min {
		return false
	}
	if max != nil && l.Price > *max {
		return false
	}
	return true
}

// sortListings orders in place. Sorting is stable: listings with equal keys
// keep their relative input order.
func sortListings(listings []model.Listing, key string) {
	switch key {
	case SortPriceLow:
		sort.SliceStable(listings, func(i, j int) bool {
			return listings[i].Price < listings[j].Price
		})
	case SortPriceHigh:
		sort.SliceStable(listings, func(i, j int) bool {
			return listings[i].Price > listings[j].Price
		})
	case SortOldest:
		sort.SliceStable(listings, func(i, j int) bool {
			return listings[i].CreatedAt.Before(listings[j].CreatedAt)
		})
	default: // SortNewest and anything unrecognized
		sort.SliceStable(listings, func(i, j int) bool {
			return listings[i].CreatedAt.After(listings[j].CreatedAt)
		})
	}
}
