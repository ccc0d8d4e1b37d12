package services

import (
	"context"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"finledger/internal/dto"
	apperrors "finledger/internal/errors"
	"finledger/internal/models"
	"finledger/internal/repositories/repository_mocks"
)

type ViewControllerTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	repo       *repository_mocks.MockLedgerRepositoryInterface
	controller ViewControllerInterface
	ctx        context.Context
}

func TestViewControllerTestSuite(t *testing.T) {
	suite.Run(t, new(ViewControllerTestSuite))
}

func (s *ViewControllerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.repo = repository_mocks.NewMockLedgerRepositoryInterface(s.ctrl)
	s.controller = NewViewController(
		s.repo,
		NewAggregatorService(),
		NewCalendarService(),
		NewFilterSortPaginator(models.DefaultPageSize),
		NewExportService(),
		NewNoopMetricsRecorder(),
	)
	s.ctx = context.Background()
}

func (s *ViewControllerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *ViewControllerTestSuite) categories() []models.Category {
	return []models.Category{
		{ID: 1, Name: "Jedzenie", Icon: "🍔"},
		{ID: 2, Name: "Wypłata", Icon: "💰"},
	}
}

func (s *ViewControllerTestSuite) transactions() []models.Transaction {
	march := models.NewDate(2024, time.March, 10)
	return []models.Transaction{
		expense(1, 1, 50, march),
		income(2, 2, 4000, march.AddDays(1)),
		expense(3, 1, 25, march.AddDays(2)),
	}
}

func (s *ViewControllerTestSuite) statistics() *models.Statistics {
	return &models.Statistics{Balance: decimal.NewFromInt(3925)}
}

// expectFetch arranges one full fetch cycle returning the given collections.
func (s *ViewControllerTestSuite) expectFetch(transactions []models.Transaction, times int) {
	s.repo.EXPECT().ListTransactions(gomock.Any(), gomock.Any()).Return(transactions, nil).Times(times)
	s.repo.EXPECT().ListCategories(gomock.Any()).Return(s.categories(), nil).Times(times)
	s.repo.EXPECT().ListBudgetSummaries(gomock.Any()).Return([]models.BudgetSummary{}, nil).Times(times)
	s.repo.EXPECT().GetStatistics(gomock.Any()).Return(s.statistics(), nil).Times(times)
}

func (s *ViewControllerTestSuite) TestInitialSnapshotIsIdle() {
	snapshot := s.controller.Snapshot()
	s.Equal(models.ViewStateIdle, snapshot.State)
	s.Equal(1, snapshot.Pagination.Page)
}

func (s *ViewControllerTestSuite) TestRefreshLoadsView() {
	s.expectFetch(s.transactions(), 1)

	snapshot, err := s.controller.Refresh(s.ctx)

	s.Require().NoError(err)
	s.Equal(models.ViewStateLoaded, snapshot.State)
	s.Equal(3, snapshot.TotalCount)
	s.Len(snapshot.Transactions, 3)
	s.Len(snapshot.Categories, 2)
	s.True(snapshot.Statistics.Balance.Equal(decimal.NewFromInt(3925)))
	s.Len(snapshot.CategoryStats, 2)
	s.NotEmpty(snapshot.ExpenseChart)
	s.NotEmpty(snapshot.Calendar.ByDate)
}

func (s *ViewControllerTestSuite) TestSetFilterIsIdempotent() {
	// exactly one fetch cycle: the second identical call must not reach the repo
	s.expectFetch(s.transactions(), 1)

	criteria := models.FilterCriteria{Type: models.TransactionTypeExpense}
	first, err := s.controller.SetFilter(s.ctx, criteria)
	s.Require().NoError(err)
	s.Equal(models.ViewStateLoaded, first.State)

	second, err := s.controller.SetFilter(s.ctx, criteria)
	s.Require().NoError(err)
	s.Equal(first, second)
}

func (s *ViewControllerTestSuite) TestFilterChangeResetsPage() {
	many := make([]models.Transaction, 0, 30)
	march := models.NewDate(2024, time.March, 1)
	for i := 0; i < 30; i++ {
		many = append(many, expense(int64(i+1), 1, float64(10+i), march.AddDays(i%28)))
	}
	s.expectFetch(many, 3)

	_, err := s.controller.Refresh(s.ctx)
	s.Require().NoError(err)

	snapshot, err := s.controller.SetPage(s.ctx, 3)
	s.Require().NoError(err)
	s.Equal(3, snapshot.Pagination.Page)

	snapshot, err = s.controller.SetFilter(s.ctx, models.FilterCriteria{Type: models.TransactionTypeExpense})
	s.Require().NoError(err)
	s.Equal(1, snapshot.Pagination.Page, "criteria change must reset to the first page")
}

func (s *ViewControllerTestSuite) TestSetPageOnEmptyViewStaysOnFirstPage() {
	// one fetch cycle: the clamped request matches the current page, so no reload
	s.expectFetch(nil, 1)
	_, err := s.controller.Refresh(s.ctx)
	s.Require().NoError(err)

	snapshot, err := s.controller.SetPage(s.ctx, 3)
	s.Require().NoError(err)
	s.Equal(1, snapshot.Pagination.Page)
	s.Equal(0, snapshot.Pagination.TotalPages)
}

func (s *ViewControllerTestSuite) TestSetSortRejectsUnknownKey() {
	_, err := s.controller.SetSort(s.ctx, "newest")
	s.ErrorIs(err, ErrInvalidSortKey)
}

func (s *ViewControllerTestSuite) TestFetchErrorKeepsLastGoodData() {
	s.expectFetch(s.transactions(), 1)
	_, err := s.controller.Refresh(s.ctx)
	s.Require().NoError(err)

	remoteErr := apperrors.NewRemoteError(http.StatusInternalServerError, "boom")
	s.repo.EXPECT().ListTransactions(gomock.Any(), gomock.Any()).Return(nil, remoteErr)
	s.repo.EXPECT().ListCategories(gomock.Any()).Return(s.categories(), nil).AnyTimes()
	s.repo.EXPECT().ListBudgetSummaries(gomock.Any()).Return([]models.BudgetSummary{}, nil).AnyTimes()
	s.repo.EXPECT().GetStatistics(gomock.Any()).Return(s.statistics(), nil).AnyTimes()

	snapshot, err := s.controller.Refresh(s.ctx)

	s.Require().Error(err)
	s.Equal(models.ViewStateError, snapshot.State)
	s.NotEmpty(snapshot.Err)
	s.Len(snapshot.Transactions, 3, "last good rows stay visible under the error")
}

func (s *ViewControllerTestSuite) TestNewFetchClearsPreviousError() {
	remoteErr := apperrors.NewRemoteError(http.StatusBadGateway, "down")
	s.repo.EXPECT().ListTransactions(gomock.Any(), gomock.Any()).Return(nil, remoteErr)
	s.repo.EXPECT().ListCategories(gomock.Any()).Return(s.categories(), nil).AnyTimes()
	s.repo.EXPECT().ListBudgetSummaries(gomock.Any()).Return([]models.BudgetSummary{}, nil).AnyTimes()
	s.repo.EXPECT().GetStatistics(gomock.Any()).Return(s.statistics(), nil).AnyTimes()

	_, err := s.controller.Refresh(s.ctx)
	s.Require().Error(err)
	s.NotEmpty(s.controller.Snapshot().Err)

	started := make(chan struct{})
	release := make(chan struct{})
	s.repo.EXPECT().ListTransactions(gomock.Any(), gomock.Any()).DoAndReturn(
		func(context.Context, models.FilterCriteria) ([]models.Transaction, error) {
			close(started)
			<-release
			return s.transactions(), nil
		})

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, _ = s.controller.Refresh(s.ctx)
	}()

	<-started
	loading := s.controller.Snapshot()
	s.Equal(models.ViewStateLoading, loading.State)
	s.Empty(loading.Err, "starting a new fetch drops the failure indicator")

	close(release)
	wg.Wait()
	s.Equal(models.ViewStateLoaded, s.controller.Snapshot().State)
}

// A slow earlier fetch must never overwrite the result of a later one.
func (s *ViewControllerTestSuite) TestStaleFetchIsDiscarded() {
	slowStarted := make(chan struct{})
	slowRelease := make(chan struct{})

	oldRows := s.transactions()
	newRows := []models.Transaction{income(9, 2, 1200, models.NewDate(2024, time.March, 1))}

	var calls int
	var mu sync.Mutex
	s.repo.EXPECT().ListTransactions(gomock.Any(), gomock.Any()).DoAndReturn(
		func(context.Context, models.FilterCriteria) ([]models.Transaction, error) {
			mu.Lock()
			calls++
			first := calls == 1
			mu.Unlock()
			if first {
				close(slowStarted)
				<-slowRelease
				return oldRows, nil
			}
			return newRows, nil
		}).Times(2)
	s.repo.EXPECT().ListCategories(gomock.Any()).Return(s.categories(), nil).Times(2)
	s.repo.EXPECT().ListBudgetSummaries(gomock.Any()).Return([]models.BudgetSummary{}, nil).Times(2)
	s.repo.EXPECT().GetStatistics(gomock.Any()).Return(s.statistics(), nil).Times(2)

	var wg sync.WaitGroup
	wg.Add(1)
	var slowSnapshot models.ViewSnapshot
	go func() {
		defer wg.Done()
		slowSnapshot, _ = s.controller.SetFilter(s.ctx, models.FilterCriteria{Type: models.TransactionTypeExpense})
	}()

	<-slowStarted
	fastSnapshot, err := s.controller.SetFilter(s.ctx, models.FilterCriteria{Type: models.TransactionTypeIncome})
	s.Require().NoError(err)
	s.Equal(1, fastSnapshot.TotalCount)

	close(slowRelease)
	wg.Wait()

	s.Run("slow caller sees the newer snapshot, not its own stale result", func() {
		s.Equal(models.TransactionTypeIncome, slowSnapshot.Criteria.Type)
		s.Equal(1, slowSnapshot.TotalCount)
	})

	s.Run("published snapshot is the later fetch", func() {
		published := s.controller.Snapshot()
		s.Equal(models.TransactionTypeIncome, published.Criteria.Type)
		s.Equal(1, published.TotalCount)
	})
}

func (s *ViewControllerTestSuite) TestCreateTransactionRefetches() {
	created := expense(10, 1, 75, models.NewDate(2024, time.March, 20))
	req := dto.CreateTransactionRequest{
		Amount: decimal.NewFromInt(75),
		Type:   models.TransactionTypeExpense,
		Date:   "2024-03-20",
	}
	s.repo.EXPECT().CreateTransaction(gomock.Any(), req).Return(&created, nil)
	s.expectFetch(append(s.transactions(), created), 1)

	snapshot, err := s.controller.CreateTransaction(s.ctx, req)

	s.Require().NoError(err)
	s.Equal(models.ViewStateLoaded, snapshot.State)
	s.Equal(4, snapshot.TotalCount)
}

func (s *ViewControllerTestSuite) TestCreateTransactionErrorSurfacesWithoutReload() {
	req := dto.CreateTransactionRequest{
		Amount: decimal.NewFromInt(75),
		Type:   models.TransactionTypeExpense,
		Date:   "2024-03-20",
	}
	remoteErr := apperrors.NewRemoteError(http.StatusUnprocessableEntity, "rejected")
	s.repo.EXPECT().CreateTransaction(gomock.Any(), req).Return(nil, remoteErr)

	snapshot, err := s.controller.CreateTransaction(s.ctx, req)

	s.ErrorIs(err, remoteErr)
	s.Equal(models.ViewStateIdle, snapshot.State)
}

func (s *ViewControllerTestSuite) TestDeleteOfVanishedTransactionEvictsCachedRow() {
	s.expectFetch(s.transactions(), 1)
	_, err := s.controller.Refresh(s.ctx)
	s.Require().NoError(err)

	notFound := apperrors.NewRemoteError(http.StatusNotFound, "gone")
	s.repo.EXPECT().DeleteTransaction(gomock.Any(), int64(2)).Return(notFound)

	snapshot, err := s.controller.DeleteTransaction(s.ctx, 2)

	s.Require().Error(err)
	s.Equal(2, snapshot.TotalCount, "the vanished row must disappear from the view")
	for _, transaction := range snapshot.Transactions {
		s.NotEqual(int64(2), transaction.ID)
	}
}

func (s *ViewControllerTestSuite) TestDeleteBudgetRefetches() {
	s.repo.EXPECT().DeleteBudget(gomock.Any(), int64(5)).Return(nil)
	s.expectFetch(s.transactions(), 1)

	snapshot, err := s.controller.DeleteBudget(s.ctx, 5)
	s.Require().NoError(err)
	s.Equal(models.ViewStateLoaded, snapshot.State)
}
