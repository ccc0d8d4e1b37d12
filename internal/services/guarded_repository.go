package services

import (
	"context"

	"finledger/internal/dto"
	apperrors "finledger/internal/errors"
	"finledger/internal/models"
	"finledger/internal/repositories"
)

// guardedLedgerRepository decorates the repository with a circuit breaker. The
// engine never retries; the breaker only refuses calls while the remote service
// is known to be unhealthy, so a dead upstream fails fast instead of burning the
// request timeout on every view change.
type guardedLedgerRepository struct {
	inner   repositories.LedgerRepositoryInterface
	breaker CircuitBreakerInterface
}

// NewGuardedLedgerRepository wraps a repository with the given breaker.
func NewGuardedLedgerRepository(inner repositories.LedgerRepositoryInterface, breaker CircuitBreakerInterface) repositories.LedgerRepositoryInterface {
	return &guardedLedgerRepository{inner: inner, breaker: breaker}
}

// record updates the breaker. Only remote failures count against it; local
// validation errors say nothing about upstream health.
func (g *guardedLedgerRepository) record(err error) {
	if err == nil {
		g.breaker.RecordSuccess()
		return
	}
	if _, ok := apperrors.AsRemoteError(err); ok {
		g.breaker.RecordFailure()
	}
}

func (g *guardedLedgerRepository) ListTransactions(ctx context.Context, criteria models.FilterCriteria) ([]models.Transaction, error) {
	if g.breaker.IsOpen() {
		return nil, ErrCircuitBreakerOpen
	}
	transactions, err := g.inner.ListTransactions(ctx, criteria)
	g.record(err)
	return transactions, err
}

func (g *guardedLedgerRepository) ListAllTransactions(ctx context.Context) ([]models.Transaction, error) {
	if g.breaker.IsOpen() {
		return nil, ErrCircuitBreakerOpen
	}
	transactions, err := g.inner.ListAllTransactions(ctx)
	g.record(err)
	return transactions, err
}

func (g *guardedLedgerRepository) ListCategories(ctx context.Context) ([]models.Category, error) {
	if g.breaker.IsOpen() {
		return nil, ErrCircuitBreakerOpen
	}
	categories, err := g.inner.ListCategories(ctx)
	g.record(err)
	return categories, err
}

func (g *guardedLedgerRepository) ListCategoryStats(ctx context.Context, orderBy, direction string) ([]models.CategoryStats, error) {
	if g.breaker.IsOpen() {
		return nil, ErrCircuitBreakerOpen
	}
	stats, err := g.inner.ListCategoryStats(ctx, orderBy, direction)
	g.record(err)
	return stats, err
}

func (g *guardedLedgerRepository) ListBudgetSummaries(ctx context.Context) ([]models.BudgetSummary, error) {
	if g.breaker.IsOpen() {
		return nil, ErrCircuitBreakerOpen
	}
	summaries, err := g.inner.ListBudgetSummaries(ctx)
	g.record(err)
	return summaries, err
}

func (g *guardedLedgerRepository) GetStatistics(ctx context.Context) (*models.Statistics, error) {
	if g.breaker.IsOpen() {
		return nil, ErrCircuitBreakerOpen
	}
	statistics, err := g.inner.GetStatistics(ctx)
	g.record(err)
	return statistics, err
}

func (g *guardedLedgerRepository) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*models.Transaction, error) {
	if g.breaker.IsOpen() {
		return nil, ErrCircuitBreakerOpen
	}
	transaction, err := g.inner.CreateTransaction(ctx, req)
	g.record(err)
	return transaction, err
}

func (g *guardedLedgerRepository) UpdateTransaction(ctx context.Context, id int64, req dto.UpdateTransactionRequest) (*models.Transaction, error) {
	if g.breaker.IsOpen() {
		return nil, ErrCircuitBreakerOpen
	}
	transaction, err := g.inner.UpdateTransaction(ctx, id, req)
	g.record(err)
	return transaction, err
}

func (g *guardedLedgerRepository) DeleteTransaction(ctx context.Context, id int64) error {
	if g.breaker.IsOpen() {
		return ErrCircuitBreakerOpen
	}
	err := g.inner.DeleteTransaction(ctx, id)
	g.record(err)
	return err
}

func (g *guardedLedgerRepository) CreateCategory(ctx context.Context, req dto.CreateCategoryRequest) (*models.Category, error) {
	if g.breaker.IsOpen() {
		return nil, ErrCircuitBreakerOpen
	}
	category, err := g.inner.CreateCategory(ctx, req)
	g.record(err)
	return category, err
}

func (g *guardedLedgerRepository) CreateBudget(ctx context.Context, req dto.CreateBudgetRequest) (*models.Budget, error) {
	if g.breaker.IsOpen() {
		return nil, ErrCircuitBreakerOpen
	}
	budget, err := g.inner.CreateBudget(ctx, req)
	g.record(err)
	return budget, err
}

func (g *guardedLedgerRepository) DeleteBudget(ctx context.Context, id int64) error {
	if g.breaker.IsOpen() {
		return ErrCircuitBreakerOpen
	}
	err := g.inner.DeleteBudget(ctx, id)
	g.record(err)
	return err
}

func (g *guardedLedgerRepository) Ping(ctx context.Context) error {
	if g.breaker.IsOpen() {
		return ErrCircuitBreakerOpen
	}
	err := g.inner.Ping(ctx)
	g.record(err)
	return err
}
