package services

import (
	"sort"

	"finledger/internal/models"
)

type calendarService struct{}

// NewCalendarService creates the calendar indexing stage.
func NewCalendarService() CalendarServiceInterface {
	return &calendarService{}
}

// IndexByDate builds the per-date transaction index and the three-way day
// classification. The income and expense date sets are built independently;
// their intersection becomes the "both" set and is removed from each single-type
// set, so every date lands in exactly one bucket.
func (s *calendarService) IndexByDate(transactions []models.Transaction) models.CalendarIndex {
	byDate := map[string][]models.Transaction{}
	incomeDays := map[string]struct{}{}
	expenseDays := map[string]struct{}{}

	for i := range transactions {
		transaction := transactions[i]
		key := transaction.Date.String()
		byDate[key] = append(byDate[key], transaction)
		switch transaction.Type {
		case models.TransactionTypeIncome:
			incomeDays[key] = struct{}{}
		case models.TransactionTypeExpense:
			expenseDays[key] = struct{}{}
		}
	}

	bothDays := map[string]struct{}{}
	for key := range incomeDays {
		if _, ok := expenseDays[key]; ok {
			bothDays[key] = struct{}{}
		}
	}
	for key := range bothDays {
		delete(incomeDays, key)
		delete(expenseDays, key)
	}

	return models.CalendarIndex{
		IncomeDates:  sortedKeys(incomeDays),
		ExpenseDates: sortedKeys(expenseDays),
		BothDates:    sortedKeys(bothDays),
		ByDate:       byDate,
	}
}

// TransactionsOnDate returns the entries whose calendar date matches exactly.
func (s *calendarService) TransactionsOnDate(transactions []models.Transaction, date models.Date) []models.Transaction {
	matches := make([]models.Transaction, 0)
	for i := range transactions {
		if transactions[i].Date.Equal(date) {
			matches = append(matches, transactions[i])
		}
	}
	return matches
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for key := range set {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
