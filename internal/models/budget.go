package models

import "github.com/shopspring/decimal"

// Budget is a monthly spending target for one category. Month is anchored to the
// first day of the month.
type Budget struct {
	ID         int64           `json:"id"`
	CategoryID int64           `json:"category"`
	Month      Date            `json:"month"`
	Amount     decimal.Decimal `json:"amount"`
}

// BudgetSummary is a budget joined with its derived spend figures.
type BudgetSummary struct {
	ID         int64           `json:"id"`
	Category   string          `json:"category"`
	Icon       string          `json:"icon"`
	Month      Date            `json:"month"`
	Budgeted   decimal.Decimal `json:"budgeted"`
	Spent      decimal.Decimal `json:"spent"`
	Remaining  decimal.Decimal `json:"remaining"`
	OverBudget bool            `json:"over_budget"`
}

// ProgressPercent reports how much of the budget is consumed, clamped to
// [0, 100] for progress bars. Over-budget status uses the strict comparison
// instead: spending exactly the budgeted amount is not over budget.
func (b BudgetSummary) ProgressPercent() float64 {
	if !b.Budgeted.IsPositive() {
		return 0
	}
	pct, _ := b.Spent.Div(b.Budgeted).Mul(decimal.NewFromInt(100)).Float64()
	if pct > 100 {
		return 100
	}
	if pct < 0 {
		return 0
	}
	return pct
}
