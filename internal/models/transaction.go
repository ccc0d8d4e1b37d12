package models

import (
	"errors"

	"github.com/shopspring/decimal"
)

// Transaction types accepted by the ledger.
const (
	TransactionTypeIncome  = "income"
	TransactionTypeExpense = "expense"
)

var (
	ErrInvalidTransactionType = errors.New("invalid transaction type")
	ErrInvalidAmount          = errors.New("transaction amount cannot be negative")
	ErrMissingDate            = errors.New("transaction date is required")
)

// Transaction is a single ledger entry as served by the remote API. Amount is a
// non-negative magnitude; the sign is implied by the type.
type Transaction struct {
	ID          int64           `json:"id"`
	Amount      decimal.Decimal `json:"amount"`
	Type        string          `json:"type"`
	CategoryID  int64           `json:"category"`
	Date        Date            `json:"date"`
	Description string          `json:"description"`
}

// Validate checks the invariants every entry must satisfy once it crosses the
// client boundary.
func (t *Transaction) Validate() error {
	if !IsValidTransactionType(t.Type) {
		return ErrInvalidTransactionType
	}
	if t.Amount.IsNegative() {
		return ErrInvalidAmount
	}
	if t.Date.IsZero() {
		return ErrMissingDate
	}
	return nil
}

// SignedAmount returns the amount with the sign implied by the transaction type.
func (t *Transaction) SignedAmount() decimal.Decimal {
	if t.Type == TransactionTypeExpense {
		return t.Amount.Neg()
	}
	return t.Amount
}

// IsExpense reports whether the entry reduces the balance.
func (t *Transaction) IsExpense() bool {
	return t.Type == TransactionTypeExpense
}

func IsValidTransactionType(transactionType string) bool {
	return transactionType == TransactionTypeIncome || transactionType == TransactionTypeExpense
}
