package report

import "strings"

// Category is one of the fixed report sections.
type Category int

// Report sections in display order.
const (
	Offense Category = iota
	Defense
	Physicals
	Summary

	numCategories = int(Summary) + 1
)

// Categories lists every section in display order.
var Categories = [numCategories]Category{Offense, Defense, Physicals, Summary}

var categoryNames = [numCategories]string{"Offense", "Defense", "Physicals", "Summary"}

// fieldAllowList holds the recognized field names for each section.
var fieldAllowList = [numCategories][]string{
	Offense:   {"Shooting", "Finishing", "Shot Creation", "Passing", "Dribbling"},
	Defense:   {"Perimeter", "Interior", "Playmaking"},
	Physicals: {"Athleticism", "Age", "Height", "Wingspan"},
	Summary:   {"NBA Ready", "Potential Min", "Potential Mid", "Potential Max"},
}

// String returns the canonical section name.
func (c Category) String() string {
	if c < 0 || int(c) >= numCategories {
		return "Unknown"
	}
	return categoryNames[c]
}

// Fields returns the recognized field names for c.
func (c Category) Fields() []string {
	return append([]string(nil), fieldAllowList[c]...)
}

// lookupCategory matches name case-insensitively.
func lookupCategory(name string) (Category, bool) {
	for i, n := range categoryNames {
		if strings.EqualFold(n, name) {
			return Category(i), true
		}
	}
	return 0, false
}

// lookupField returns the canonical field name if key belongs to c.
func (c Category) lookupField(key string) (string, bool) {
	for _, f := range fieldAllowList[c] {
		if strings.EqualFold(f, key) {
			return f, true
		}
	}
	return "", false
}

// usesRatingSegment reports whether a "raw | rating" value should be read
// from its last segment.
func (c Category) usesRatingSegment(field string) bool {
	if c != Physicals {
		return false
	}
	switch field {
	case "Age", "Height", "Wingspan":
		return true
	}
	return false
}
