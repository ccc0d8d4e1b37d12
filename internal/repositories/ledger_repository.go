package repositories

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"finledger/internal/dto"
	apperrors "finledger/internal/errors"
	"finledger/internal/models"
	"finledger/internal/session"
	"finledger/internal/validation"
)

const defaultRequestTimeout = 15 * time.Second

type ledgerRepository struct {
	baseURL    string
	httpClient *http.Client
	session    *session.Session
	limiter    *rate.Limiter
	validator  *validation.Validator
}

// NewLedgerRepository creates a typed client for the remote ledger service. The
// session supplies the bearer token attached to every request. The limiter, when
// given, paces outbound calls so rapid view changes cannot flood the remote API.
func NewLedgerRepository(baseURL string, sess *session.Session, timeout time.Duration, limiter *rate.Limiter) LedgerRepositoryInterface {
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}
	return &ledgerRepository{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		session:    sess,
		limiter:    limiter,
		validator:  validation.GetValidator(),
	}
}

func (r *ledgerRepository) ListTransactions(ctx context.Context, criteria models.FilterCriteria) ([]models.Transaction, error) {
	params := url.Values{}
	if criteria.Type != "" {
		params.Set("type", criteria.Type)
	}
	if criteria.CategoryID != 0 {
		params.Set("category", strconv.FormatInt(criteria.CategoryID, 10))
	}
	if criteria.StartDate != nil {
		params.Set("start_date", criteria.StartDate.String())
	}
	if criteria.EndDate != nil {
		params.Set("end_date", criteria.EndDate.String())
	}
	params.Set("order_by", criteria.SortOrDefault())

	body, err := r.doRequest(ctx, http.MethodGet, "/transaction-list/", params, nil)
	if err != nil {
		return nil, err
	}

	var responses []dto.TransactionResponse
	if err := json.Unmarshal(body, &responses); err != nil {
		return nil, apperrors.NewRemoteDecodeError(err)
	}

	transactions := make([]models.Transaction, 0, len(responses))
	for i := range responses {
		transaction := responses[i].ToModel()
		if err := transaction.Validate(); err != nil {
			return nil, apperrors.NewRemoteDecodeError(fmt.Errorf("transaction %d: %w", transaction.ID, err))
		}
		transactions = append(transactions, transaction)
	}
	return transactions, nil
}

// ListAllTransactions pulls the unfiltered collection, regardless of any view
// criteria. Day lookups go through this so a filtered history never hides
// entries from a calendar day.
func (r *ledgerRepository) ListAllTransactions(ctx context.Context) ([]models.Transaction, error) {
	body, err := r.doRequest(ctx, http.MethodGet, "/transactions/", nil, nil)
	if err != nil {
		return nil, err
	}

	var responses []dto.TransactionResponse
	if err := json.Unmarshal(body, &responses); err != nil {
		return nil, apperrors.NewRemoteDecodeError(err)
	}

	transactions := make([]models.Transaction, 0, len(responses))
	for i := range responses {
		transaction := responses[i].ToModel()
		if err := transaction.Validate(); err != nil {
			return nil, apperrors.NewRemoteDecodeError(fmt.Errorf("transaction %d: %w", transaction.ID, err))
		}
		transactions = append(transactions, transaction)
	}
	return transactions, nil
}

func (r *ledgerRepository) ListCategories(ctx context.Context) ([]models.Category, error) {
	body, err := r.doRequest(ctx, http.MethodGet, "/categories/", nil, nil)
	if err != nil {
		return nil, err
	}

	var responses []dto.CategoryResponse
	if err := json.Unmarshal(body, &responses); err != nil {
		return nil, apperrors.NewRemoteDecodeError(err)
	}

	categories := make([]models.Category, 0, len(responses))
	for _, response := range responses {
		categories = append(categories, response.ToModel())
	}
	return categories, nil
}

func (r *ledgerRepository) ListCategoryStats(ctx context.Context, orderBy, direction string) ([]models.CategoryStats, error) {
	if orderBy != "" && !models.IsValidCategoryOrder(orderBy) {
		return nil, fmt.Errorf("invalid category order %q", orderBy)
	}
	if direction != "" && !models.IsValidDirection(direction) {
		return nil, fmt.Errorf("invalid sort direction %q", direction)
	}

	params := url.Values{}
	if orderBy != "" {
		params.Set("order_by", orderBy)
	}
	if direction != "" {
		params.Set("direction", direction)
	}

	body, err := r.doRequest(ctx, http.MethodGet, "/category-list/", params, nil)
	if err != nil {
		return nil, err
	}

	var responses []dto.CategoryStatsResponse
	if err := json.Unmarshal(body, &responses); err != nil {
		return nil, apperrors.NewRemoteDecodeError(err)
	}

	stats := make([]models.CategoryStats, 0, len(responses))
	for _, response := range responses {
		stats = append(stats, response.ToModel())
	}
	return stats, nil
}

func (r *ledgerRepository) ListBudgetSummaries(ctx context.Context) ([]models.BudgetSummary, error) {
	body, err := r.doRequest(ctx, http.MethodGet, "/budgets-summary/", nil, nil)
	if err != nil {
		return nil, err
	}

	var responses []dto.BudgetSummaryResponse
	if err := json.Unmarshal(body, &responses); err != nil {
		return nil, apperrors.NewRemoteDecodeError(err)
	}

	summaries := make([]models.BudgetSummary, 0, len(responses))
	for _, response := range responses {
		summaries = append(summaries, response.ToModel())
	}
	return summaries, nil
}

func (r *ledgerRepository) GetStatistics(ctx context.Context) (*models.Statistics, error) {
	body, err := r.doRequest(ctx, http.MethodGet, "/statistics/", nil, nil)
	if err != nil {
		return nil, err
	}

	var response dto.StatisticsResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, apperrors.NewRemoteDecodeError(err)
	}
	return response.ToModel(), nil
}

func (r *ledgerRepository) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*models.Transaction, error) {
	if err := r.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("invalid create transaction request: %w", err)
	}

	body, err := r.doRequest(ctx, http.MethodPost, "/transactions/", nil, req)
	if err != nil {
		return nil, err
	}
	return decodeTransaction(body)
}

func (r *ledgerRepository) UpdateTransaction(ctx context.Context, id int64, req dto.UpdateTransactionRequest) (*models.Transaction, error) {
	if err := r.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("invalid update transaction request: %w", err)
	}

	body, err := r.doRequest(ctx, http.MethodPut, transactionPath(id), nil, req)
	if err != nil {
		return nil, err
	}
	return decodeTransaction(body)
}

func (r *ledgerRepository) DeleteTransaction(ctx context.Context, id int64) error {
	_, err := r.doRequest(ctx, http.MethodDelete, transactionPath(id), nil, nil)
	return err
}

func (r *ledgerRepository) CreateCategory(ctx context.Context, req dto.CreateCategoryRequest) (*models.Category, error) {
	if err := r.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("invalid create category request: %w", err)
	}

	body, err := r.doRequest(ctx, http.MethodPost, "/categories/", nil, req)
	if err != nil {
		return nil, err
	}

	var response dto.CategoryResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, apperrors.NewRemoteDecodeError(err)
	}
	category := response.ToModel()
	return &category, nil
}

func (r *ledgerRepository) CreateBudget(ctx context.Context, req dto.CreateBudgetRequest) (*models.Budget, error) {
	if err := r.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("invalid create budget request: %w", err)
	}

	body, err := r.doRequest(ctx, http.MethodPost, "/budgets/", nil, req)
	if err != nil {
		return nil, err
	}

	var response dto.BudgetResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, apperrors.NewRemoteDecodeError(err)
	}
	budget := response.ToModel()
	return &budget, nil
}

func (r *ledgerRepository) DeleteBudget(ctx context.Context, id int64) error {
	_, err := r.doRequest(ctx, http.MethodDelete, fmt.Sprintf("/budgets/%d/", id), nil, nil)
	return err
}

// Ping probes the lightest endpoint the service exposes.
func (r *ledgerRepository) Ping(ctx context.Context) error {
	_, err := r.doRequest(ctx, http.MethodGet, "/categories/", nil, nil)
	return err
}

// doRequest performs one paced, authenticated round trip and classifies every
// failure mode into a RemoteError. Bodies of error responses are folded into the
// error message so the caller sees what the remote actually said.
func (r *ledgerRepository) doRequest(ctx context.Context, method, path string, params url.Values, payload interface{}) ([]byte, error) {
	if r.limiter != nil {
		if err := r.limiter.Wait(ctx); err != nil {
			return nil, apperrors.NewRemoteTransportError(err)
		}
	}

	requestURL := r.baseURL + path
	if len(params) > 0 {
		requestURL += "?" + params.Encode()
	}

	var requestBody io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		requestBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, requestURL, requestBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	token, err := r.session.Token()
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := r.httpClient.Do(req)
	if err != nil {
		slog.Warn("ledger request failed", "method", method, "path", path, "error", err)
		return nil, apperrors.NewRemoteTransportError(err)
	}
	defer resp.Body.Close()

	responseBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperrors.NewRemoteDecodeError(err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		slog.Warn("ledger request rejected",
			"method", method,
			"path", path,
			"status", resp.StatusCode)
		return nil, apperrors.NewRemoteError(resp.StatusCode, strings.TrimSpace(string(responseBody)))
	}

	slog.Debug("ledger request",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"duration_ms", time.Since(start).Milliseconds())
	return responseBody, nil
}

func decodeTransaction(body []byte) (*models.Transaction, error) {
	var response dto.TransactionResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, apperrors.NewRemoteDecodeError(err)
	}
	transaction := response.ToModel()
	if err := transaction.Validate(); err != nil {
		return nil, apperrors.NewRemoteDecodeError(err)
	}
	return &transaction, nil
}

func transactionPath(id int64) string {
	return fmt.Sprintf("/transactions/%d/", id)
}
