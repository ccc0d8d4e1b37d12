package models

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type TransactionTestSuite struct {
	suite.Suite
}

func TestTransactionTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionTestSuite))
}

func (s *TransactionTestSuite) validTransaction() Transaction {
	return Transaction{
		ID:          1,
		Amount:      decimal.NewFromFloat(42.50),
		Type:        TransactionTypeExpense,
		CategoryID:  3,
		Date:        NewDate(2024, time.March, 15),
		Description: "groceries",
	}
}

func (s *TransactionTestSuite) TestValidate() {
	tests := []struct {
		name    string
		mutate  func(*Transaction)
		wantErr error
	}{
		{
			name:   "valid expense",
			mutate: func(*Transaction) {},
		},
		{
			name:   "valid income",
			mutate: func(t *Transaction) { t.Type = TransactionTypeIncome },
		},
		{
			name:    "unknown type",
			mutate:  func(t *Transaction) { t.Type = "transfer" },
			wantErr: ErrInvalidTransactionType,
		},
		{
			name:    "negative amount",
			mutate:  func(t *Transaction) { t.Amount = decimal.NewFromInt(-5) },
			wantErr: ErrInvalidAmount,
		},
		{
			name:    "missing date",
			mutate:  func(t *Transaction) { t.Date = Date{} },
			wantErr: ErrMissingDate,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			transaction := s.validTransaction()
			tt.mutate(&transaction)
			err := transaction.Validate()
			if tt.wantErr != nil {
				s.ErrorIs(err, tt.wantErr)
			} else {
				s.NoError(err)
			}
		})
	}
}

func (s *TransactionTestSuite) TestSignedAmount() {
	transaction := s.validTransaction()
	s.True(transaction.SignedAmount().Equal(decimal.NewFromFloat(-42.50)))

	transaction.Type = TransactionTypeIncome
	s.True(transaction.SignedAmount().Equal(decimal.NewFromFloat(42.50)))
}

func (s *TransactionTestSuite) TestIsValidTransactionType() {
	s.True(IsValidTransactionType(TransactionTypeIncome))
	s.True(IsValidTransactionType(TransactionTypeExpense))
	s.False(IsValidTransactionType("Income"))
	s.False(IsValidTransactionType(""))
}
