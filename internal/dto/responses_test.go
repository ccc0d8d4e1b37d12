package dto

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type ResponsesTestSuite struct {
	suite.Suite
}

func TestResponsesTestSuite(t *testing.T) {
	suite.Run(t, new(ResponsesTestSuite))
}

func (s *ResponsesTestSuite) TestStatisticsMonthlyBucketsAreOrdered() {
	payload := `{
		"balance": "1200.50",
		"last_30_days": {"income": "4000", "expense": "350"},
		"most_expense_category": {"name": "Jedzenie", "amount": "170", "icon": "🍔"},
		"monthly": {
			"2024-03": {"income": "0", "expense": "120"},
			"2023-12": {"income": "3800", "expense": "900"},
			"2024-01": {"income": "4000", "expense": "640"}
		}
	}`

	var response StatisticsResponse
	s.Require().NoError(json.Unmarshal([]byte(payload), &response))

	statistics := response.ToModel()

	s.True(statistics.Balance.Equal(decimal.RequireFromString("1200.50")))
	s.Equal("Jedzenie", statistics.TopExpenseCategory.Name)

	s.Require().Len(statistics.Monthly, 3)
	s.Equal("2023-12", statistics.Monthly[0].Month)
	s.Equal("2024-01", statistics.Monthly[1].Month)
	s.Equal("2024-03", statistics.Monthly[2].Month)
	s.True(statistics.Monthly[2].Expense.Equal(decimal.NewFromInt(120)))
}

func (s *ResponsesTestSuite) TestTransactionResponseToModel() {
	payload := `{"id": 7, "amount": "38.50", "type": "expense", "category": 2, "date": "2024-04-03", "description": "Bilet"}`

	var response TransactionResponse
	s.Require().NoError(json.Unmarshal([]byte(payload), &response))

	transaction := response.ToModel()
	s.Equal(int64(7), transaction.ID)
	s.Equal(int64(2), transaction.CategoryID)
	s.Equal("2024-04-03", transaction.Date.String())
	s.True(transaction.Amount.Equal(decimal.RequireFromString("38.50")))
}
