package scans

import "strings"

// Category is one of the closed set of waste categories a scan resolves to.
type Category string

const (
	CategoryPlastic   Category = "Plastic"
	CategoryPaper     Category = "Paper"
	CategoryCardboard Category = "Cardboard"
	CategoryGlass     Category = "Glass"
	CategoryMetal     Category = "Metal"
	CategoryUnknown   Category = "Unknown"
)

var categories = []Category{
	CategoryPlastic,
	CategoryPaper,
	CategoryCardboard,
	CategoryGlass,
	CategoryMetal,
}

// Keyword scan order. Cardboard is checked before paper so answers like
// "cardboard (paper-based)" resolve to Cardboard.
var keywords = []Category{
	CategoryCardboard,
	CategoryPlastic,
	CategoryPaper,
	CategoryGlass,
	CategoryMetal,
}

// Categories returns the five real categories, excluding Unknown.
func Categories() []Category {
	return categories
}

// ValidCategory reports whether s is one of the six category labels.
func ValidCategory(s string) bool {
	if s == string(CategoryUnknown) {
		return true
	}
	for _, c := range categories {
		if s == string(c) {
			return true
		}
	}
	return false
}

// NormalizeLabel maps raw model output to a Category. An exact label match
// wins; otherwise the text is scanned case-insensitively for category
// keywords; anything else is Unknown.
func NormalizeLabel(label string) Category {
	trimmed := strings.TrimSpace(label)

	for _, c := range categories {
		if strings.EqualFold(trimmed, string(c)) {
			return c
		}
	}

	lower := strings.ToLower(trimmed)
	for _, c := range keywords {
		if strings.Contains(lower, strings.ToLower(string(c))) {
			return c
		}
	}

	return CategoryUnknown
}
