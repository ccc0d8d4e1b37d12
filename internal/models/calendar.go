package models

// Day classifications for the calendar heat-map.
const (
	DayIncome  = "income"
	DayExpense = "expense"
	DayBoth    = "both"
)

// CalendarIndex holds the per-date transaction index and the three-way day
// classification. A date carries exactly one classification: dates with both
// income and expense entries live only in BothDates.
type CalendarIndex struct {
	IncomeDates  []string                 `json:"income_dates"`
	ExpenseDates []string                 `json:"expense_dates"`
	BothDates    []string                 `json:"both_dates"`
	ByDate       map[string][]Transaction `json:"-"`
}

// Classification returns the bucket the date belongs to, or "" when the date has
// no transactions.
func (ci CalendarIndex) Classification(d Date) string {
	key := d.String()
	switch {
	case containsDate(ci.BothDates, key):
		return DayBoth
	case containsDate(ci.IncomeDates, key):
		return DayIncome
	case containsDate(ci.ExpenseDates, key):
		return DayExpense
	}
	return ""
}

// TransactionsOn returns the transactions recorded on the given date.
func (ci CalendarIndex) TransactionsOn(d Date) []Transaction {
	return ci.ByDate[d.String()]
}

func containsDate(dates []string, key string) bool {
	for _, date := range dates {
		if date == key {
			return true
		}
	}
	return false
}
