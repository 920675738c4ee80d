package model

// IncomeCategoryID marks the reserved salary/income category. It is excluded
// from budget planning.
const IncomeCategoryID = "cat_salary"

// SubCategory is a named subdivision of a Category.
type SubCategory struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Category is a spending category with an ordered list of subcategories.
type Category struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	Color         string        `json:"color"`
	SubCategories []SubCategory `json:"subCategories"`
}

// IsIncome reports whether this is the reserved income category.
func (c Category) IsIncome() bool {
	return c.ID == IncomeCategoryID
}
