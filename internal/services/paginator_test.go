package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"finledger/internal/models"
)

type PaginatorTestSuite struct {
	suite.Suite
	paginator FilterSortPaginatorInterface
}

func TestPaginatorTestSuite(t *testing.T) {
	suite.Run(t, new(PaginatorTestSuite))
}

func (s *PaginatorTestSuite) SetupTest() {
	s.paginator = NewFilterSortPaginator(models.DefaultPageSize)
}

// januaryCollection builds 50 expense entries dated through January, one per ID.
func (s *PaginatorTestSuite) januaryCollection() []models.Transaction {
	transactions := make([]models.Transaction, 0, 50)
	for i := 0; i < 50; i++ {
		transactions = append(transactions, models.Transaction{
			ID:         int64(i + 1),
			Amount:     decimal.NewFromInt(int64(10 + i)),
			Type:       models.TransactionTypeExpense,
			CategoryID: 1,
			Date:       models.NewDate(2024, time.January, 1).AddDays(i % 31),
		})
	}
	return transactions
}

func (s *PaginatorTestSuite) TestPaging() {
	transactions := s.januaryCollection()

	s.Run("50 entries make 5 pages of 10", func() {
		result := s.paginator.Apply(transactions, models.FilterCriteria{}, 1)
		s.Equal(50, result.TotalCount)
		s.Equal(5, result.Pagination.TotalPages)
		s.Len(result.Transactions, 10)
	})

	s.Run("page beyond the end clamps to the last page", func() {
		result := s.paginator.Apply(transactions, models.FilterCriteria{}, 99)
		s.Equal(5, result.Pagination.Page)
		s.Len(result.Transactions, 10)
	})

	s.Run("page below one clamps to one", func() {
		result := s.paginator.Apply(transactions, models.FilterCriteria{}, 0)
		s.Equal(1, result.Pagination.Page)
	})

	s.Run("short final page", func() {
		result := s.paginator.Apply(transactions[:45], models.FilterCriteria{}, 5)
		s.Len(result.Transactions, 5)
		s.Equal(5, result.Pagination.TotalPages)
	})

	s.Run("empty collection is page 1 of 0", func() {
		result := s.paginator.Apply(nil, models.FilterCriteria{}, 3)
		s.Equal(1, result.Pagination.Page)
		s.Equal(0, result.Pagination.TotalPages)
		s.Empty(result.Transactions)
	})

	s.Run("pages are disjoint and complete", func() {
		seen := map[int64]bool{}
		for page := 1; page <= 5; page++ {
			result := s.paginator.Apply(transactions, models.FilterCriteria{}, page)
			for _, transaction := range result.Transactions {
				s.Falsef(seen[transaction.ID], "transaction %d appeared twice", transaction.ID)
				seen[transaction.ID] = true
			}
		}
		s.Len(seen, 50)
	})
}

func (s *PaginatorTestSuite) TestSorting() {
	mixed := []models.Transaction{
		{ID: 1, Amount: decimal.NewFromInt(300), Type: models.TransactionTypeExpense, Date: models.NewDate(2024, time.March, 5)},
		{ID: 2, Amount: decimal.NewFromInt(500), Type: models.TransactionTypeIncome, Date: models.NewDate(2024, time.March, 1)},
		{ID: 3, Amount: decimal.NewFromInt(100), Type: models.TransactionTypeExpense, Date: models.NewDate(2024, time.March, 9)},
		{ID: 4, Amount: decimal.NewFromInt(300), Type: models.TransactionTypeIncome, Date: models.NewDate(2024, time.March, 7)},
	}

	s.Run("date sort is newest first", func() {
		sorted := s.paginator.Sorted(mixed, models.FilterCriteria{Sort: models.SortDateDesc})
		s.Equal([]int64{3, 4, 1, 2}, ids(sorted))
	})

	s.Run("highest ignores type and keeps fetch order on ties", func() {
		sorted := s.paginator.Sorted(mixed, models.FilterCriteria{Sort: models.SortAmountDesc})
		s.Equal([]int64{2, 1, 4, 3}, ids(sorted))
	})

	s.Run("lowest is the exact reverse ordering", func() {
		sorted := s.paginator.Sorted(mixed, models.FilterCriteria{Sort: models.SortAmountAsc})
		s.Equal([]int64{3, 1, 4, 2}, ids(sorted))
	})

	s.Run("stable date sort keeps fetch order for same-day entries", func() {
		sameDay := []models.Transaction{
			{ID: 1, Amount: decimal.NewFromInt(1), Type: models.TransactionTypeExpense, Date: models.NewDate(2024, time.March, 5)},
			{ID: 2, Amount: decimal.NewFromInt(2), Type: models.TransactionTypeExpense, Date: models.NewDate(2024, time.March, 5)},
			{ID: 3, Amount: decimal.NewFromInt(3), Type: models.TransactionTypeExpense, Date: models.NewDate(2024, time.March, 5)},
		}
		sorted := s.paginator.Sorted(sameDay, models.FilterCriteria{})
		s.Equal([]int64{1, 2, 3}, ids(sorted))
	})
}

// Filtering soundness and completeness: the result contains exactly the
// matching entries, no matter what criteria are combined.
func (s *PaginatorTestSuite) TestFilterSoundness() {
	generator := NewSeededTransactionGenerator(99)
	categories := generator.GenerateCategories()
	transactions := generator.GenerateTransactions(250,
		models.NewDate(2024, time.January, 1), models.NewDate(2024, time.April, 30), categories)

	start := models.NewDate(2024, time.February, 1)
	end := models.NewDate(2024, time.March, 15)
	criteriaSet := []models.FilterCriteria{
		{},
		{Type: models.TransactionTypeExpense},
		{CategoryID: categories[0].ID},
		{StartDate: &start, EndDate: &end},
		{Type: models.TransactionTypeIncome, CategoryID: categories[1].ID, StartDate: &start},
	}

	for i, criteria := range criteriaSet {
		s.Run(fmt.Sprintf("criteria %d", i), func() {
			sorted := s.paginator.Sorted(transactions, criteria)
			for j := range sorted {
				s.True(criteria.Matches(&sorted[j]), "result contains a non-matching entry")
			}
			want := 0
			for j := range transactions {
				if criteria.Matches(&transactions[j]) {
					want++
				}
			}
			s.Equal(want, len(sorted), "result must contain every matching entry")
		})
	}
}

func (s *PaginatorTestSuite) TestInvertedDateRange() {
	start := models.NewDate(2024, time.March, 20)
	end := models.NewDate(2024, time.March, 10)
	result := s.paginator.Apply(s.januaryCollection(), models.FilterCriteria{StartDate: &start, EndDate: &end}, 1)

	s.Equal(0, result.TotalCount)
	s.Empty(result.Transactions)
}

func ids(transactions []models.Transaction) []int64 {
	out := make([]int64, 0, len(transactions))
	for _, t := range transactions {
		out = append(out, t.ID)
	}
	return out
}
