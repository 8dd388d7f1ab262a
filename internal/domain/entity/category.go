package entity

// Category is the fixed article categorization.
type Category string

// Known categories. Articles created without one default to CategoryOther.
const (
	CategoryTechnology    Category = "Technology"
	CategoryHealth        Category = "Health"
	CategoryBusiness      Category = "Business"
	CategoryScience       Category = "Science"
	CategoryPolitics      Category = "Politics"
	CategorySports        Category = "Sports"
	CategoryEntertainment Category = "Entertainment"
	CategoryOther         Category = "Other"
)

// Categories lists all valid categories in display order.
func Categories() []Category {
	return []Category{
		CategoryTechnology,
		CategoryHealth,
		CategoryBusiness,
		CategoryScience,
		CategoryPolitics,
		CategorySports,
		CategoryEntertainment,
		CategoryOther,
	}
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryTechnology, CategoryHealth, CategoryBusiness, CategoryScience,
		CategoryPolitics, CategorySports, CategoryEntertainment, CategoryOther:
		return true
	}
	return false
}

// ParseCategory maps a raw string to a Category.
// Empty input and "All" both mean "no category", returned as ("", true).
// Unknown values return ok=false.
func ParseCategory(s string) (Category, bool) {
	if s == "" || s == "All" {
		return "", true
	}
	c := Category(s)
	if c.Valid() {
		return c, true
	}
	return "", false
}
