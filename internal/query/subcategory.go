package query

import (
	"strings"

	"marketplace-backend/internal/model"
)

// subCategoryKeywords drive the keyword heuristic used on the Electronics
// browse page. A listing belongs to a sub-category when its lower-cased
// title or description contains any of the keywords. The classification is
// never persisted.
var subCategoryKeywords = map[string][]string{
	"smartphones": {"phone", "iphone", "android"},
	"laptops":     {"laptop", "computer", "pc"},
	"audio":       {"headphone", "speaker", "audio"},
	"cameras":     {"camera", "lens", "photo"},
}

// SubCategories lists the recognized sub-category tags.
func SubCategories() []string {
	return []string{"smartphones", "laptops", "audio", "cameras"}
}

// MatchesSubCategory reports whether the listing belongs to the given
// sub-category. An empty or unrecognized tag matches everything.
func MatchesSubCategory(l model.Listing, tag string) bool {
	keywords, ok := subCategoryKeywords[tag]
	if !ok {
		return true
	}
	text := strings.ToLower(l.Title)
	if l.Description != nil {
		text += " " + strings.ToLower(*l.Description)
	}
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
