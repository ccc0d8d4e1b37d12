package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"finledger/internal/models"
)

type CalendarServiceTestSuite struct {
	suite.Suite
	service CalendarServiceInterface
}

func TestCalendarServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CalendarServiceTestSuite))
}

func (s *CalendarServiceTestSuite) SetupTest() {
	s.service = NewCalendarService()
}

func (s *CalendarServiceTestSuite) TestIndexByDate() {
	day1 := models.NewDate(2024, time.March, 1)
	day2 := models.NewDate(2024, time.March, 2)
	day3 := models.NewDate(2024, time.March, 3)
	transactions := []models.Transaction{
		income(1, 1, 4000, day1),
		expense(2, 2, 50, day1),
		income(3, 1, 20, day2),
		expense(4, 2, 30, day3),
		expense(5, 2, 10, day3),
	}

	index := s.service.IndexByDate(transactions)

	s.Run("day with both types is classified both", func() {
		s.Equal([]string{"2024-03-01"}, index.BothDates)
		s.Equal(models.DayBoth, index.Classification(day1))
	})

	s.Run("single-type days keep their own bucket", func() {
		s.Equal([]string{"2024-03-02"}, index.IncomeDates)
		s.Equal([]string{"2024-03-03"}, index.ExpenseDates)
	})

	s.Run("per-date index holds all entries of the day", func() {
		s.Len(index.TransactionsOn(day3), 2)
		s.Len(index.TransactionsOn(day1), 2)
		s.Empty(index.TransactionsOn(models.NewDate(2024, time.March, 9)))
	})

	s.Run("unclassified day reports empty string", func() {
		s.Equal("", index.Classification(models.NewDate(2024, time.March, 9)))
	})
}

// Every indexed date must land in exactly one of the three buckets.
func (s *CalendarServiceTestSuite) TestBucketExclusivity() {
	generator := NewSeededTransactionGenerator(7)
	categories := generator.GenerateCategories()
	transactions := generator.GenerateTransactions(400,
		models.NewDate(2024, time.January, 1), models.NewDate(2024, time.March, 31), categories)

	index := s.service.IndexByDate(transactions)

	seen := map[string]int{}
	for _, date := range index.IncomeDates {
		seen[date]++
	}
	for _, date := range index.ExpenseDates {
		seen[date]++
	}
	for _, date := range index.BothDates {
		seen[date]++
	}
	for date, count := range seen {
		s.Equalf(1, count, "date %s appears in %d buckets", date, count)
	}
	s.Equal(len(index.ByDate), len(seen), "every date with entries must be classified")
}

func (s *CalendarServiceTestSuite) TestTransactionsOnDate() {
	target := models.NewDate(2024, time.March, 15)
	transactions := []models.Transaction{
		expense(1, 1, 10, target),
		expense(2, 1, 20, models.NewDate(2024, time.March, 14)),
		income(3, 2, 30, target),
	}

	matches := s.service.TransactionsOnDate(transactions, target)
	s.Require().Len(matches, 2)
	s.Equal(int64(1), matches[0].ID)
	s.Equal(int64(3), matches[1].ID)

	s.Empty(s.service.TransactionsOnDate(transactions, models.NewDate(2024, time.April, 15)))
}
