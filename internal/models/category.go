package models

import "github.com/shopspring/decimal"

// Placeholder shown when a transaction references a category that no longer
// resolves. The remote service allows null and stale references, so views must
// always have something to display.
const (
	UnknownCategoryName = "Nieznana"
	UnknownCategoryIcon = "❓"
)

// Category is a user-defined transaction grouping.
type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}

// CategoryStats carries the aggregated income and expense totals for one
// category. Categories with no matching transactions keep zero totals.
type CategoryStats struct {
	CategoryID   int64           `json:"category_id"`
	Category     string          `json:"category"`
	Icon         string          `json:"icon"`
	TotalIncome  decimal.Decimal `json:"total_income"`
	TotalExpense decimal.Decimal `json:"total_expense"`
}

// Ordering parameters accepted by the category statistics endpoint.
const (
	CategoryOrderByExpense = "total_expense"
	CategoryOrderByIncome  = "total_income"

	DirectionAsc  = "asc"
	DirectionDesc = "desc"
)

func IsValidCategoryOrder(orderBy string) bool {
	return orderBy == CategoryOrderByExpense || orderBy == CategoryOrderByIncome
}

func IsValidDirection(direction string) bool {
	return direction == DirectionAsc || direction == DirectionDesc
}
