package model

import "strings"

// ExpenseCategory is one of the six fixed budgeting buckets
type ExpenseCategory string

// ExpenseCategory constants
const (
	ExpenseVenue         ExpenseCategory = "venue"
	ExpenseCatering      ExpenseCategory = "catering"
	ExpenseMarketing     ExpenseCategory = "marketing"
	ExpenseStaff         ExpenseCategory = "staff"
	ExpenseEquipment     ExpenseCategory = "equipment"
	ExpenseMiscellaneous ExpenseCategory = "miscellaneous"
)

// ExpenseCategories lists every bucket in presentation order
var ExpenseCategories = []ExpenseCategory{
	ExpenseVenue,
	ExpenseCatering,
	ExpenseMarketing,
	ExpenseStaff,
	ExpenseEquipment,
	ExpenseMiscellaneous,
}

// CategoryOf folds a free-form category name into one of the six buckets.
// Matching is case-insensitive; unrecognized names land in miscellaneous.
func CategoryOf(name string) ExpenseCategory {
	c := ExpenseCategory(strings.ToLower(name))
	for _, known := range ExpenseCategories {
		if c == known {
			return known
		}
	}
	return ExpenseMiscellaneous
}

// DefaultExpenseDescription is used when an expense carries no description
const DefaultExpenseDescription = "No description"

// Expense represents a single cost line attributed to a category.
// Category is free-form and folded into a bucket at categorization time.
type Expense struct {
	Category    string  `json:"category"`
	Amount      float64 `json:"amount"`
	Description *string `json:"description,omitempty"`
}

// DescriptionOrDefault returns the description, or the placeholder when unset
func (e *Expense) DescriptionOrDefault() string {
	if e.Description == nil || *e.Description == "" {
		return DefaultExpenseDescription
	}
	return *e.Description
}
