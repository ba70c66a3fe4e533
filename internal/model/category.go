package model

// categories is the closed category enumeration, loaded once and never
// mutated. Key 0 is deliberately absent.
var categories = map[int]string{
	1: "Cars & Vehicles",
	2: "Real Estate",
	3: "Electronics",
	4: "Fashion",
	5: "Home & Garden",
	6: "Sports & Leisure",
	7: "Services",
	8: "Other",
}

// ValidCategory reports whether id is a key of the category enumeration.
func ValidCategory(id int) bool {
	_, ok := categories[id]
	return ok
}

// CategoryName returns the descriptor for a category key.
func CategoryName(id int) (string, bool) {
	name, ok := categories[id]
	return name, ok
}
