package dto

import (
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest is the payload for creating a ledger entry on the
// remote service. Dates travel as YYYY-MM-DD strings on the wire.
type CreateTransactionRequest struct {
	Amount      decimal.Decimal `json:"amount" validate:"required,positive_amount"`
	Type        string          `json:"type" validate:"required,transaction_type"`
	CategoryID  int64           `json:"category" validate:"omitempty,min=1"`
	Date        string          `json:"date" validate:"required,calendar_date"`
	Description string          `json:"description" validate:"max=255"`
}

// UpdateTransactionRequest replaces an existing ledger entry wholesale.
type UpdateTransactionRequest struct {
	Amount      decimal.Decimal `json:"amount" validate:"required,positive_amount"`
	Type        string          `json:"type" validate:"required,transaction_type"`
	CategoryID  int64           `json:"category" validate:"omitempty,min=1"`
	Date        string          `json:"date" validate:"required,calendar_date"`
	Description string          `json:"description" validate:"max=255"`
}

// CreateCategoryRequest creates a user-defined category.
type CreateCategoryRequest struct {
	Name string `json:"name" validate:"required,max=64"`
	Icon string `json:"icon" validate:"required,max=16"`
}

// CreateBudgetRequest creates a monthly budget. Month must be the first-of-month
// anchor the remote service expects.
type CreateBudgetRequest struct {
	CategoryID int64           `json:"category" validate:"required,min=1"`
	Amount     decimal.Decimal `json:"amount" validate:"required,positive_amount"`
	Month      string          `json:"month" validate:"required,month_anchor"`
}
