package dto

import (
	"sort"

	"github.com/shopspring/decimal"

	"finledger/internal/models"
)

// TransactionResponse is one ledger entry as served by the remote API.
type TransactionResponse struct {
	ID          int64           `json:"id"`
	Amount      decimal.Decimal `json:"amount"`
	Type        string          `json:"type"`
	CategoryID  int64           `json:"category"`
	Date        models.Date     `json:"date"`
	Description string          `json:"description"`
}

func (r TransactionResponse) ToModel() models.Transaction {
	return models.Transaction{
		ID:          r.ID,
		Amount:      r.Amount,
		Type:        r.Type,
		CategoryID:  r.CategoryID,
		Date:        r.Date,
		Description: r.Description,
	}
}

// CategoryResponse is one category as served by the remote API.
type CategoryResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}

func (r CategoryResponse) ToModel() models.Category {
	return models.Category{ID: r.ID, Name: r.Name, Icon: r.Icon}
}

// CategoryStatsResponse is one row of the remote category statistics listing.
type CategoryStatsResponse struct {
	CategoryID   int64           `json:"category_id"`
	Category     string          `json:"category"`
	Icon         string          `json:"icon"`
	TotalIncome  decimal.Decimal `json:"total_income"`
	TotalExpense decimal.Decimal `json:"total_expense"`
}

func (r CategoryStatsResponse) ToModel() models.CategoryStats {
	return models.CategoryStats{
		CategoryID:   r.CategoryID,
		Category:     r.Category,
		Icon:         r.Icon,
		TotalIncome:  r.TotalIncome,
		TotalExpense: r.TotalExpense,
	}
}

// BudgetResponse is one budget as served by the remote API.
type BudgetResponse struct {
	ID         int64           `json:"id"`
	CategoryID int64           `json:"category"`
	Month      models.Date     `json:"month"`
	Amount     decimal.Decimal `json:"amount"`
}

func (r BudgetResponse) ToModel() models.Budget {
	return models.Budget{ID: r.ID, CategoryID: r.CategoryID, Month: r.Month, Amount: r.Amount}
}

// BudgetSummaryResponse is one row of the remote budget summary listing.
type BudgetSummaryResponse struct {
	ID         int64           `json:"id"`
	Category   string          `json:"category"`
	Icon       string          `json:"icon"`
	Month      models.Date     `json:"month"`
	Budgeted   decimal.Decimal `json:"budgeted"`
	Spent      decimal.Decimal `json:"spent"`
	Remaining  decimal.Decimal `json:"remaining"`
	OverBudget bool            `json:"over_budget"`
}

func (r BudgetSummaryResponse) ToModel() models.BudgetSummary {
	return models.BudgetSummary{
		ID:         r.ID,
		Category:   r.Category,
		Icon:       r.Icon,
		Month:      r.Month,
		Budgeted:   r.Budgeted,
		Spent:      r.Spent,
		Remaining:  r.Remaining,
		OverBudget: r.OverBudget,
	}
}

// MonthTotals is one monthly income/expense bucket on the wire.
type MonthTotals struct {
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
}

// StatisticsResponse is the remote statistics payload. The monthly object is a
// JSON map, so its wire order is meaningless once decoded.
type StatisticsResponse struct {
	Balance             decimal.Decimal        `json:"balance"`
	Last30Days          MonthTotals            `json:"last_30_days"`
	MostExpenseCategory TopCategoryResponse    `json:"most_expense_category"`
	Monthly             map[string]MonthTotals `json:"monthly"`
}

// TopCategoryResponse names the remote's highest-expense category.
type TopCategoryResponse struct {
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
	Icon   string          `json:"icon"`
}

// ToModel coerces the payload, re-ordering the monthly buckets ascending by
// month key so charts always read left to right.
func (r StatisticsResponse) ToModel() *models.Statistics {
	keys := make([]string, 0, len(r.Monthly))
	for key := range r.Monthly {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	monthly := make([]models.MonthlyPoint, 0, len(keys))
	for _, key := range keys {
		bucket := r.Monthly[key]
		monthly = append(monthly, models.MonthlyPoint{Month: key, Income: bucket.Income, Expense: bucket.Expense})
	}

	return &models.Statistics{
		Balance: r.Balance,
		Last30Days: models.PeriodTotals{
			Income:  r.Last30Days.Income,
			Expense: r.Last30Days.Expense,
		},
		TopExpenseCategory: models.TopCategory{
			Name:   r.MostExpenseCategory.Name,
			Amount: r.MostExpenseCategory.Amount,
			Icon:   r.MostExpenseCategory.Icon,
		},
		Monthly: monthly,
	}
}
