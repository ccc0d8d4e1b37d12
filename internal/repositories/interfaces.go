package repositories

import (
	"context"

	"finledger/internal/dto"
	"finledger/internal/models"
)

// LedgerRepositoryInterface is the typed contract with the remote ledger
// service. Implementations shape query parameters, attach the session token and
// coerce responses; they carry no view logic and never retry.
type LedgerRepositoryInterface interface {
	ListTransactions(ctx context.Context, criteria models.FilterCriteria) ([]models.Transaction, error)
	ListAllTransactions(ctx context.Context) ([]models.Transaction, error)
	ListCategories(ctx context.Context) ([]models.Category, error)
	ListCategoryStats(ctx context.Context, orderBy, direction string) ([]models.CategoryStats, error)
	ListBudgetSummaries(ctx context.Context) ([]models.BudgetSummary, error)
	GetStatistics(ctx context.Context) (*models.Statistics, error)

	CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*models.Transaction, error)
	UpdateTransaction(ctx context.Context, id int64, req dto.UpdateTransactionRequest) (*models.Transaction, error)
	DeleteTransaction(ctx context.Context, id int64) error
	CreateCategory(ctx context.Context, req dto.CreateCategoryRequest) (*models.Category, error)
	CreateBudget(ctx context.Context, req dto.CreateBudgetRequest) (*models.Budget, error)
	DeleteBudget(ctx context.Context, id int64) error

	Ping(ctx context.Context) error
}
