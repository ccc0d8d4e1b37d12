package services

import (
	"sort"

	"github.com/shopspring/decimal"

	"finledger/internal/models"
)

type aggregatorService struct{}

// NewAggregatorService creates the pure aggregation stage behind the dashboard.
func NewAggregatorService() AggregatorServiceInterface {
	return &aggregatorService{}
}

// Aggregate sums income and expense per category. Every known category appears
// in the result, zero totals included; transactions referencing an unknown
// category are grouped under the placeholder so that the column sums always
// equal the collection totals.
func (s *aggregatorService) Aggregate(transactions []models.Transaction, categories []models.Category) []models.CategoryStats {
	index := make(map[int64]int, len(categories)+1)
	stats := make([]models.CategoryStats, 0, len(categories)+1)
	for _, category := range categories {
		index[category.ID] = len(stats)
		stats = append(stats, models.CategoryStats{
			CategoryID:   category.ID,
			Category:     category.Name,
			Icon:         category.Icon,
			TotalIncome:  decimal.Zero,
			TotalExpense: decimal.Zero,
		})
	}

	for i := range transactions {
		transaction := &transactions[i]
		pos, ok := index[transaction.CategoryID]
		if !ok {
			index[transaction.CategoryID] = len(stats)
			pos = len(stats)
			stats = append(stats, models.CategoryStats{
				CategoryID:   transaction.CategoryID,
				Category:     models.UnknownCategoryName,
				Icon:         models.UnknownCategoryIcon,
				TotalIncome:  decimal.Zero,
				TotalExpense: decimal.Zero,
			})
		}
		switch transaction.Type {
		case models.TransactionTypeIncome:
			stats[pos].TotalIncome = stats[pos].TotalIncome.Add(transaction.Amount)
		case models.TransactionTypeExpense:
			stats[pos].TotalExpense = stats[pos].TotalExpense.Add(transaction.Amount)
		}
	}
	return stats
}

// ChartSlices keeps only categories with a positive total for the given type.
func (s *aggregatorService) ChartSlices(stats []models.CategoryStats, transactionType string) []models.ChartSlice {
	slices := make([]models.ChartSlice, 0, len(stats))
	for _, row := range stats {
		total := row.TotalExpense
		if transactionType == models.TransactionTypeIncome {
			total = row.TotalIncome
		}
		if total.IsPositive() {
			slices = append(slices, models.ChartSlice{Name: row.Category, Value: total})
		}
	}
	return slices
}

// MonthlySeries buckets transactions by calendar month, ordered ascending.
func (s *aggregatorService) MonthlySeries(transactions []models.Transaction) []models.MonthlyPoint {
	buckets := map[string]*models.MonthlyPoint{}
	for i := range transactions {
		transaction := &transactions[i]
		key := transaction.Date.MonthKey()
		point, ok := buckets[key]
		if !ok {
			point = &models.MonthlyPoint{Month: key, Income: decimal.Zero, Expense: decimal.Zero}
			buckets[key] = point
		}
		if transaction.IsExpense() {
			point.Expense = point.Expense.Add(transaction.Amount)
		} else {
			point.Income = point.Income.Add(transaction.Amount)
		}
	}

	keys := make([]string, 0, len(buckets))
	for key := range buckets {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	series := make([]models.MonthlyPoint, 0, len(keys))
	for _, key := range keys {
		series = append(series, *buckets[key])
	}
	return series
}

// Summarize computes the full dashboard statistics locally. The 30-day window is
// inclusive of today and of the day exactly 30 days back.
func (s *aggregatorService) Summarize(transactions []models.Transaction, categories []models.Category, today models.Date) *models.Statistics {
	balance := decimal.Zero
	last30 := models.PeriodTotals{Income: decimal.Zero, Expense: decimal.Zero}
	since := today.AddDays(-30)

	for i := range transactions {
		transaction := &transactions[i]
		balance = balance.Add(transaction.SignedAmount())
		if transaction.Date.Before(since) || transaction.Date.After(today) {
			continue
		}
		if transaction.IsExpense() {
			last30.Expense = last30.Expense.Add(transaction.Amount)
		} else {
			last30.Income = last30.Income.Add(transaction.Amount)
		}
	}

	return &models.Statistics{
		Balance:            balance,
		Last30Days:         last30,
		TopExpenseCategory: s.topExpenseCategory(transactions, categories),
		Monthly:            s.MonthlySeries(transactions),
	}
}

func (s *aggregatorService) topExpenseCategory(transactions []models.Transaction, categories []models.Category) models.TopCategory {
	totals := map[int64]decimal.Decimal{}
	for i := range transactions {
		if transactions[i].IsExpense() {
			totals[transactions[i].CategoryID] = totals[transactions[i].CategoryID].Add(transactions[i].Amount)
		}
	}

	top := models.TopCategory{Amount: decimal.Zero}
	var topID int64
	found := false
	for id, total := range totals {
		if !found || total.GreaterThan(top.Amount) || (total.Equal(top.Amount) && id < topID) {
			top.Amount = total
			topID = id
			found = true
		}
	}
	if !found {
		return models.TopCategory{Amount: decimal.Zero}
	}

	top.Name, top.Icon = resolveCategory(categories, topID)
	return top
}

// BudgetUsage computes the spend figures of one budget: expense entries matching
// the budget's category within its calendar month. Spending exactly the budgeted
// amount is not over budget.
func (s *aggregatorService) BudgetUsage(budget models.Budget, transactions []models.Transaction, categories []models.Category) models.BudgetSummary {
	spent := decimal.Zero
	monthKey := budget.Month.MonthKey()
	for i := range transactions {
		transaction := &transactions[i]
		if !transaction.IsExpense() || transaction.CategoryID != budget.CategoryID {
			continue
		}
		if transaction.Date.MonthKey() != monthKey {
			continue
		}
		spent = spent.Add(transaction.Amount)
	}

	name, icon := resolveCategory(categories, budget.CategoryID)
	return models.BudgetSummary{
		ID:         budget.ID,
		Category:   name,
		Icon:       icon,
		Month:      budget.Month.MonthAnchor(),
		Budgeted:   budget.Amount,
		Spent:      spent,
		Remaining:  budget.Amount.Sub(spent),
		OverBudget: spent.GreaterThan(budget.Amount),
	}
}

func resolveCategory(categories []models.Category, id int64) (string, string) {
	for _, category := range categories {
		if category.ID == id {
			return category.Name, category.Icon
		}
	}
	return models.UnknownCategoryName, models.UnknownCategoryIcon
}
