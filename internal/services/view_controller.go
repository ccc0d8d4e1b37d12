package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"finledger/internal/dto"
	apperrors "finledger/internal/errors"
	"finledger/internal/models"
	"finledger/internal/repositories"
)

var (
	ErrInvalidSortKey  = errors.New("invalid sort key")
	ErrNothingToExport = errors.New("no loaded view to export")
)

// fetchResult is one complete pull of the collections the views are derived
// from. It is kept alongside the snapshot so evictions and exports can reuse the
// raw data without another round trip.
type fetchResult struct {
	transactions []models.Transaction
	categories   []models.Category
	budgets      []models.BudgetSummary
	statistics   *models.Statistics
}

type viewController struct {
	repo       repositories.LedgerRepositoryInterface
	aggregator AggregatorServiceInterface
	calendar   CalendarServiceInterface
	paginator  FilterSortPaginatorInterface
	exporter   ExportServiceInterface
	metrics    MetricsRecorderInterface

	mu        sync.Mutex
	seq       uint64
	criteria  models.FilterCriteria
	page      int
	snapshot  models.ViewSnapshot
	lastFetch *fetchResult
}

// NewViewController creates the query state machine that owns the published
// view. All public methods are safe for concurrent use.
func NewViewController(
	repo repositories.LedgerRepositoryInterface,
	aggregator AggregatorServiceInterface,
	calendar CalendarServiceInterface,
	paginator FilterSortPaginatorInterface,
	exporter ExportServiceInterface,
	metrics MetricsRecorderInterface,
) ViewControllerInterface {
	return &viewController{
		repo:       repo,
		aggregator: aggregator,
		calendar:   calendar,
		paginator:  paginator,
		exporter:   exporter,
		metrics:    metrics,
		page:       1,
		snapshot: models.ViewSnapshot{
			State:      models.ViewStateIdle,
			Pagination: models.PaginationState{Page: 1, PageSize: models.DefaultPageSize},
		},
	}
}

// Snapshot returns the currently published view. The returned value is a copy;
// mutating it cannot affect the controller.
func (c *viewController) Snapshot() models.ViewSnapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshot
}

// SetFilter replaces the filter criteria and reloads the view. The page resets
// to 1 so a now-invalid page is never presented. Setting criteria identical to
// the current ones on a loaded view is a no-op: no fetch is issued.
func (c *viewController) SetFilter(ctx context.Context, criteria models.FilterCriteria) (models.ViewSnapshot, error) {
	c.mu.Lock()
	if criteria.Equal(c.criteria) && c.snapshot.State == models.ViewStateLoaded {
		snapshot := c.snapshot
		c.mu.Unlock()
		return snapshot, nil
	}
	c.criteria = criteria
	c.page = 1
	c.mu.Unlock()

	return c.reload(ctx)
}

// SetSort changes the sort key. The key is part of the criteria, so the page
// resets as well.
func (c *viewController) SetSort(ctx context.Context, sortKey string) (models.ViewSnapshot, error) {
	if !models.IsValidSortKey(sortKey) {
		return c.Snapshot(), ErrInvalidSortKey
	}

	c.mu.Lock()
	criteria := c.criteria
	criteria.Sort = sortKey
	if criteria.Equal(c.criteria) && c.snapshot.State == models.ViewStateLoaded {
		snapshot := c.snapshot
		c.mu.Unlock()
		return snapshot, nil
	}
	c.criteria = criteria
	c.page = 1
	c.mu.Unlock()

	return c.reload(ctx)
}

// SetPage moves to another page of the current query. The target is clamped
// against the last known page count before the reload.
func (c *viewController) SetPage(ctx context.Context, page int) (models.ViewSnapshot, error) {
	c.mu.Lock()
	if page < 1 {
		page = 1
	}
	if totalPages := c.snapshot.Pagination.TotalPages; totalPages == 0 {
		page = 1
	} else if page > totalPages {
		page = totalPages
	}
	if page == c.page && c.snapshot.State == models.ViewStateLoaded {
		snapshot := c.snapshot
		c.mu.Unlock()
		return snapshot, nil
	}
	c.page = page
	c.mu.Unlock()

	return c.reload(ctx)
}

// Refresh re-runs the current query unconditionally.
func (c *viewController) Refresh(ctx context.Context) (models.ViewSnapshot, error) {
	return c.reload(ctx)
}

func (c *viewController) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (models.ViewSnapshot, error) {
	if _, err := c.repo.CreateTransaction(ctx, req); err != nil {
		c.recordMutation("create_transaction", err)
		return c.Snapshot(), err
	}
	c.recordMutation("create_transaction", nil)
	return c.reload(ctx)
}

// UpdateTransaction forwards the change and republishes the view. When the
// remote reports the entry gone, the cached row is evicted before the error is
// surfaced so the stale row disappears from the view immediately.
func (c *viewController) UpdateTransaction(ctx context.Context, id int64, req dto.UpdateTransactionRequest) (models.ViewSnapshot, error) {
	if _, err := c.repo.UpdateTransaction(ctx, id, req); err != nil {
		c.recordMutation("update_transaction", err)
		if isNotFound(err) {
			c.evictTransaction(id)
		}
		return c.Snapshot(), err
	}
	c.recordMutation("update_transaction", nil)
	return c.reload(ctx)
}

func (c *viewController) DeleteTransaction(ctx context.Context, id int64) (models.ViewSnapshot, error) {
	if err := c.repo.DeleteTransaction(ctx, id); err != nil {
		c.recordMutation("delete_transaction", err)
		if isNotFound(err) {
			c.evictTransaction(id)
		}
		return c.Snapshot(), err
	}
	c.recordMutation("delete_transaction", nil)
	return c.reload(ctx)
}

func (c *viewController) CreateCategory(ctx context.Context, req dto.CreateCategoryRequest) (models.ViewSnapshot, error) {
	if _, err := c.repo.CreateCategory(ctx, req); err != nil {
		c.recordMutation("create_category", err)
		return c.Snapshot(), err
	}
	c.recordMutation("create_category", nil)
	return c.reload(ctx)
}

func (c *viewController) CreateBudget(ctx context.Context, req dto.CreateBudgetRequest) (models.ViewSnapshot, error) {
	if _, err := c.repo.CreateBudget(ctx, req); err != nil {
		c.recordMutation("create_budget", err)
		return c.Snapshot(), err
	}
	c.recordMutation("create_budget", nil)
	return c.reload(ctx)
}

func (c *viewController) DeleteBudget(ctx context.Context, id int64) (models.ViewSnapshot, error) {
	if err := c.repo.DeleteBudget(ctx, id); err != nil {
		c.recordMutation("delete_budget", err)
		return c.Snapshot(), err
	}
	c.recordMutation("delete_budget", nil)
	return c.reload(ctx)
}

// ExportCurrentView writes the whole filtered, sorted collection as CSV, not
// only the visible page. Returns the number of data rows written.
func (c *viewController) ExportCurrentView(w io.Writer) (int, error) {
	c.mu.Lock()
	if c.lastFetch == nil {
		c.mu.Unlock()
		return 0, ErrNothingToExport
	}
	sorted := c.paginator.Sorted(c.lastFetch.transactions, c.criteria)
	categories := c.lastFetch.categories
	c.mu.Unlock()

	rows := c.exporter.ToRows(sorted, categories)
	if err := c.exporter.WriteCSV(w, rows); err != nil {
		return 0, err
	}
	c.metrics.RecordGauge("view.export.rows", float64(len(rows)), nil)
	return len(rows), nil
}

// reload issues a fetch tagged with the next sequence number and applies the
// result only if no later fetch has been issued meanwhile. Stale results are
// discarded silently: clicking through filters quickly must never let an
// earlier response overwrite a later one.
func (c *viewController) reload(ctx context.Context) (models.ViewSnapshot, error) {
	c.mu.Lock()
	c.seq++
	seq := c.seq
	criteria := c.criteria
	page := c.page
	loading := c.snapshot
	loading.State = models.ViewStateLoading
	loading.Err = "" // a new fetch clears the previous failure indicator
	c.snapshot = loading
	c.mu.Unlock()

	c.metrics.IncrementCounter("view.fetch.issued", nil)
	start := time.Now()
	result, err := c.fetch(ctx, criteria)
	c.metrics.RecordProcessingTime("view.fetch", time.Since(start))

	c.mu.Lock()
	defer c.mu.Unlock()

	if seq != c.seq {
		c.metrics.IncrementCounter("view.fetch.stale_discarded", nil)
		slog.Debug("stale fetch discarded", "seq", seq, "latest", c.seq)
		return c.snapshot, nil
	}

	if err != nil {
		c.metrics.IncrementCounter("view.fetch.failed", nil)
		slog.Error("view fetch failed", "seq", seq, "error", err)
		failed := c.snapshot // keep the last good data visible under the error
		failed.State = models.ViewStateError
		failed.Err = err.Error()
		c.snapshot = failed
		return c.snapshot, err
	}

	c.lastFetch = result
	c.snapshot = c.buildSnapshot(criteria, page, result)
	c.metrics.IncrementCounter("view.fetch.applied", nil)
	c.metrics.RecordGauge("view.transactions", float64(len(result.transactions)), nil)
	return c.snapshot, nil
}

// fetch pulls the four collections the views need in parallel.
func (c *viewController) fetch(ctx context.Context, criteria models.FilterCriteria) (*fetchResult, error) {
	result := &fetchResult{}
	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		var err error
		result.transactions, err = c.repo.ListTransactions(groupCtx, criteria)
		return err
	})
	group.Go(func() error {
		var err error
		result.categories, err = c.repo.ListCategories(groupCtx)
		return err
	})
	group.Go(func() error {
		var err error
		result.budgets, err = c.repo.ListBudgetSummaries(groupCtx)
		return err
	})
	group.Go(func() error {
		var err error
		result.statistics, err = c.repo.GetStatistics(groupCtx)
		return err
	})
	if err := group.Wait(); err != nil {
		return nil, err
	}
	return result, nil
}

// buildSnapshot derives the full published tuple from one fetch result. Must be
// called with the mutex held: the clamped page is written back.
func (c *viewController) buildSnapshot(criteria models.FilterCriteria, page int, result *fetchResult) models.ViewSnapshot {
	pageResult := c.paginator.Apply(result.transactions, criteria, page)
	c.page = pageResult.Pagination.Page

	statistics := result.statistics
	if statistics == nil {
		statistics = c.aggregator.Summarize(result.transactions, result.categories, models.DateOf(time.Now()))
	}

	stats := c.aggregator.Aggregate(result.transactions, result.categories)
	return models.ViewSnapshot{
		State:         models.ViewStateLoaded,
		Criteria:      criteria,
		Pagination:    pageResult.Pagination,
		Transactions:  pageResult.Transactions,
		TotalCount:    pageResult.TotalCount,
		CategoryStats: stats,
		IncomeChart:   c.aggregator.ChartSlices(stats, models.TransactionTypeIncome),
		ExpenseChart:  c.aggregator.ChartSlices(stats, models.TransactionTypeExpense),
		Statistics:    statistics,
		Calendar:      c.calendar.IndexByDate(result.transactions),
		Budgets:       result.budgets,
		Categories:    result.categories,
	}
}

// evictTransaction drops a row from the cached collection and republishes the
// derived views without a round trip.
func (c *viewController) evictTransaction(id int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.lastFetch == nil {
		return
	}
	kept := make([]models.Transaction, 0, len(c.lastFetch.transactions))
	for _, transaction := range c.lastFetch.transactions {
		if transaction.ID != id {
			kept = append(kept, transaction)
		}
	}
	if len(kept) == len(c.lastFetch.transactions) {
		return
	}
	c.lastFetch.transactions = kept

	state, errMessage := c.snapshot.State, c.snapshot.Err
	c.snapshot = c.buildSnapshot(c.criteria, c.page, c.lastFetch)
	c.snapshot.State = state
	c.snapshot.Err = errMessage
}

func (c *viewController) recordMutation(operation string, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	c.metrics.IncrementCounter("ledger.mutation", map[string]string{"operation": operation, "status": status})
}

func isNotFound(err error) bool {
	remoteErr, ok := apperrors.AsRemoteError(err)
	return ok && remoteErr.NotFound()
}
