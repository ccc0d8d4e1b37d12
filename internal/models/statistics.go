package models

import "github.com/shopspring/decimal"

// Statistics is the dashboard headline data. Monthly buckets are ordered
// ascending by month for charting regardless of how the remote serves them.
type Statistics struct {
	Balance            decimal.Decimal `json:"balance"`
	Last30Days         PeriodTotals    `json:"last_30_days"`
	TopExpenseCategory TopCategory     `json:"most_expense_category"`
	Monthly            []MonthlyPoint  `json:"monthly"`
}

// PeriodTotals is an income/expense pair over a fixed window.
type PeriodTotals struct {
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
}

// TopCategory names the category with the highest expense total.
type TopCategory struct {
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
	Icon   string          `json:"icon"`
}

// MonthlyPoint is one income/expense bucket keyed by YYYY-MM.
type MonthlyPoint struct {
	Month   string          `json:"month"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
}

// ChartSlice is a single pie-chart wedge. Only categories with a positive total
// become slices; a zero wedge cannot be plotted.
type ChartSlice struct {
	Name  string          `json:"name"`
	Value decimal.Decimal `json:"value"`
}
