package services

import (
	"context"
	"io"
	"time"

	"finledger/internal/dto"
	"finledger/internal/models"
)

// AggregatorServiceInterface derives the dashboard figures from a fetched
// transaction collection. All operations are pure.
type AggregatorServiceInterface interface {
	Aggregate(transactions []models.Transaction, categories []models.Category) []models.CategoryStats
	ChartSlices(stats []models.CategoryStats, transactionType string) []models.ChartSlice
	MonthlySeries(transactions []models.Transaction) []models.MonthlyPoint
	Summarize(transactions []models.Transaction, categories []models.Category, today models.Date) *models.Statistics
	BudgetUsage(budget models.Budget, transactions []models.Transaction, categories []models.Category) models.BudgetSummary
}

// CalendarServiceInterface builds the per-date index behind the calendar view.
type CalendarServiceInterface interface {
	IndexByDate(transactions []models.Transaction) models.CalendarIndex
	TransactionsOnDate(transactions []models.Transaction, date models.Date) []models.Transaction
}

// FilterSortPaginatorInterface is the pure filter, sort and slice stage between
// the fetched collection and the visible page.
type FilterSortPaginatorInterface interface {
	Apply(transactions []models.Transaction, criteria models.FilterCriteria, page int) models.PageResult
	Sorted(transactions []models.Transaction, criteria models.FilterCriteria) []models.Transaction
}

// ViewControllerInterface owns the query state machine. Every method returns the
// snapshot that is current once the call completes; mutations go through the
// remote service and republish the view via a fresh fetch cycle.
type ViewControllerInterface interface {
	Snapshot() models.ViewSnapshot
	SetFilter(ctx context.Context, criteria models.FilterCriteria) (models.ViewSnapshot, error)
	SetSort(ctx context.Context, sortKey string) (models.ViewSnapshot, error)
	SetPage(ctx context.Context, page int) (models.ViewSnapshot, error)
	Refresh(ctx context.Context) (models.ViewSnapshot, error)

	CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (models.ViewSnapshot, error)
	UpdateTransaction(ctx context.Context, id int64, req dto.UpdateTransactionRequest) (models.ViewSnapshot, error)
	DeleteTransaction(ctx context.Context, id int64) (models.ViewSnapshot, error)
	CreateCategory(ctx context.Context, req dto.CreateCategoryRequest) (models.ViewSnapshot, error)
	CreateBudget(ctx context.Context, req dto.CreateBudgetRequest) (models.ViewSnapshot, error)
	DeleteBudget(ctx context.Context, id int64) (models.ViewSnapshot, error)

	ExportCurrentView(w io.Writer) (int, error)
}

// ExportServiceInterface flattens transactions into spreadsheet rows.
type ExportServiceInterface interface {
	ToRows(transactions []models.Transaction, categories []models.Category) []ExportRow
	WriteCSV(w io.Writer, rows []ExportRow) error
}

// TransactionGeneratorInterface produces realistic demo and fixture data.
type TransactionGeneratorInterface interface {
	GenerateCategories() []models.Category
	GenerateTransactions(count int, start, end models.Date, categories []models.Category) []models.Transaction
	GenerateBudgets(categories []models.Category, month models.Date) []models.Budget
}

// MetricsRecorderInterface defines the contract for recording metrics
type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}

// CircuitBreakerInterface guards calls against a failing remote service
type CircuitBreakerInterface interface {
	IsOpen() bool
	RecordSuccess()
	RecordFailure()
	GetState() models.CircuitBreakerState
	GetFailureCount() int
	Reset()
}
