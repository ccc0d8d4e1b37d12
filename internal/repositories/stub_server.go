package repositories

import (
	"encoding/json"
	"net/http"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"finledger/internal/dto"
	"finledger/internal/models"
)

// StubLedgerServer is an in-memory stand-in for the remote ledger service. It
// backs the repository tests and the demo mode of cmd/finledger, implementing
// enough of the API surface to exercise the client end to end, including
// server-side filtering, ordering and the derived statistics payload.
type StubLedgerServer struct {
	mu           sync.Mutex
	token        string
	transactions []models.Transaction
	categories   []models.Category
	budgets      []models.Budget
	nextID       int64
}

// NewStubLedgerServer seeds the stub. When token is non-empty every request must
// carry it as a bearer token.
func NewStubLedgerServer(token string, transactions []models.Transaction, categories []models.Category, budgets []models.Budget) *StubLedgerServer {
	nextID := int64(1)
	for _, t := range transactions {
		if t.ID >= nextID {
			nextID = t.ID + 1
		}
	}
	for _, c := range categories {
		if c.ID >= nextID {
			nextID = c.ID + 1
		}
	}
	for _, b := range budgets {
		if b.ID >= nextID {
			nextID = b.ID + 1
		}
	}
	return &StubLedgerServer{
		token:        token,
		transactions: transactions,
		categories:   categories,
		budgets:      budgets,
		nextID:       nextID,
	}
}

// Handler returns the stub's HTTP surface.
func (s *StubLedgerServer) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /transaction-list/", s.withAuth(s.listTransactions))
	mux.HandleFunc("GET /transactions/", s.withAuth(s.listAllTransactions))
	mux.HandleFunc("POST /transactions/", s.withAuth(s.createTransaction))
	mux.HandleFunc("PUT /transactions/{id}/", s.withAuth(s.updateTransaction))
	mux.HandleFunc("DELETE /transactions/{id}/", s.withAuth(s.deleteTransaction))
	mux.HandleFunc("GET /categories/", s.withAuth(s.listCategories))
	mux.HandleFunc("POST /categories/", s.withAuth(s.createCategory))
	mux.HandleFunc("GET /category-list/", s.withAuth(s.listCategoryStats))
	mux.HandleFunc("GET /budgets-summary/", s.withAuth(s.listBudgetSummaries))
	mux.HandleFunc("POST /budgets/", s.withAuth(s.createBudget))
	mux.HandleFunc("DELETE /budgets/{id}/", s.withAuth(s.deleteBudget))
	mux.HandleFunc("GET /statistics/", s.withAuth(s.statistics))
	return mux
}

// Transactions returns a copy of the stub's current ledger entries.
func (s *StubLedgerServer) Transactions() []models.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Transaction, len(s.transactions))
	copy(out, s.transactions)
	return out
}

func (s *StubLedgerServer) withAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if s.token != "" && r.Header.Get("Authorization") != "Bearer "+s.token {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"detail": "invalid token"})
			return
		}
		next(w, r)
	}
}

func (s *StubLedgerServer) listTransactions(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	query := r.URL.Query()
	filtered := make([]models.Transaction, 0, len(s.transactions))
	for _, t := range s.transactions {
		if v := query.Get("type"); v != "" && t.Type != v {
			continue
		}
		if v := query.Get("category"); v != "" {
			id, _ := strconv.ParseInt(v, 10, 64)
			if t.CategoryID != id {
				continue
			}
		}
		if v := query.Get("start_date"); v != "" {
			start, err := models.ParseDate(v)
			if err != nil || t.Date.Before(start) {
				continue
			}
		}
		if v := query.Get("end_date"); v != "" {
			end, err := models.ParseDate(v)
			if err != nil || t.Date.After(end) {
				continue
			}
		}
		filtered = append(filtered, t)
	}

	switch query.Get("order_by") {
	case models.SortAmountDesc:
		sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].Amount.GreaterThan(filtered[j].Amount) })
	case models.SortAmountAsc:
		sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].Amount.LessThan(filtered[j].Amount) })
	default:
		sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].Date.After(filtered[j].Date) })
	}

	writeJSON(w, http.StatusOK, filtered)
}

func (s *StubLedgerServer) listAllTransactions(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	writeJSON(w, http.StatusOK, s.transactions)
}

func (s *StubLedgerServer) createTransaction(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"detail": err.Error()})
		return
	}
	date, err := models.ParseDate(req.Date)
	if err != nil || !models.IsValidTransactionType(req.Type) {
		writeJSON(w, http.StatusBadRequest, map[string]string{"detail": "invalid transaction payload"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	transaction := models.Transaction{
		ID:          s.nextID,
		Amount:      req.Amount,
		Type:        req.Type,
		CategoryID:  req.CategoryID,
		Date:        date,
		Description: req.Description,
	}
	s.nextID++
	s.transactions = append(s.transactions, transaction)
	writeJSON(w, http.StatusCreated, transaction)
}

func (s *StubLedgerServer) updateTransaction(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"detail": "invalid id"})
		return
	}
	var req dto.UpdateTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"detail": err.Error()})
		return
	}
	date, err := models.ParseDate(req.Date)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"detail": "invalid date"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.transactions {
		if s.transactions[i].ID != id {
			continue
		}
		s.transactions[i].Amount = req.Amount
		s.transactions[i].Type = req.Type
		s.transactions[i].CategoryID = req.CategoryID
		s.transactions[i].Date = date
		s.transactions[i].Description = req.Description
		writeJSON(w, http.StatusOK, s.transactions[i])
		return
	}
	writeJSON(w, http.StatusNotFound, map[string]string{"detail": "transaction not found"})
}

func (s *StubLedgerServer) deleteTransaction(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"detail": "invalid id"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.transactions {
		if s.transactions[i].ID == id {
			s.transactions = append(s.transactions[:i], s.transactions[i+1:]...)
			w.WriteHeader(http.StatusNoContent)
			return
		}
	}
	writeJSON(w, http.StatusNotFound, map[string]string{"detail": "transaction not found"})
}

func (s *StubLedgerServer) listCategories(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	writeJSON(w, http.StatusOK, s.categories)
}

func (s *StubLedgerServer) createCategory(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"detail": err.Error()})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	category := models.Category{ID: s.nextID, Name: req.Name, Icon: req.Icon}
	s.nextID++
	s.categories = append(s.categories, category)
	writeJSON(w, http.StatusCreated, category)
}

func (s *StubLedgerServer) listCategoryStats(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stats := make([]models.CategoryStats, 0, len(s.categories))
	for _, category := range s.categories {
		row := models.CategoryStats{
			CategoryID:   category.ID,
			Category:     category.Name,
			Icon:         category.Icon,
			TotalIncome:  decimal.Zero,
			TotalExpense: decimal.Zero,
		}
		for _, t := range s.transactions {
			if t.CategoryID != category.ID {
				continue
			}
			if t.IsExpense() {
				row.TotalExpense = row.TotalExpense.Add(t.Amount)
			} else {
				row.TotalIncome = row.TotalIncome.Add(t.Amount)
			}
		}
		stats = append(stats, row)
	}

	orderBy := r.URL.Query().Get("order_by")
	asc := r.URL.Query().Get("direction") == models.DirectionAsc
	if orderBy != "" {
		sort.SliceStable(stats, func(i, j int) bool {
			a, b := stats[i].TotalExpense, stats[j].TotalExpense
			if orderBy == models.CategoryOrderByIncome {
				a, b = stats[i].TotalIncome, stats[j].TotalIncome
			}
			if asc {
				return a.LessThan(b)
			}
			return a.GreaterThan(b)
		})
	}

	writeJSON(w, http.StatusOK, stats)
}

func (s *StubLedgerServer) listBudgetSummaries(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	summaries := make([]models.BudgetSummary, 0, len(s.budgets))
	for _, budget := range s.budgets {
		spent := decimal.Zero
		for _, t := range s.transactions {
			if t.IsExpense() && t.CategoryID == budget.CategoryID && t.Date.MonthKey() == budget.Month.MonthKey() {
				spent = spent.Add(t.Amount)
			}
		}
		name, icon := models.UnknownCategoryName, models.UnknownCategoryIcon
		for _, category := range s.categories {
			if category.ID == budget.CategoryID {
				name, icon = category.Name, category.Icon
				break
			}
		}
		summaries = append(summaries, models.BudgetSummary{
			ID:         budget.ID,
			Category:   name,
			Icon:       icon,
			Month:      budget.Month,
			Budgeted:   budget.Amount,
			Spent:      spent,
			Remaining:  budget.Amount.Sub(spent),
			OverBudget: spent.GreaterThan(budget.Amount),
		})
	}

	writeJSON(w, http.StatusOK, summaries)
}

func (s *StubLedgerServer) createBudget(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateBudgetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"detail": err.Error()})
		return
	}
	month, err := models.ParseDate(req.Month)
	if err != nil || month.Time().Day() != 1 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"detail": "month must be a first-of-month date"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	budget := models.Budget{ID: s.nextID, CategoryID: req.CategoryID, Month: month, Amount: req.Amount}
	s.nextID++
	s.budgets = append(s.budgets, budget)
	writeJSON(w, http.StatusCreated, budget)
}

func (s *StubLedgerServer) deleteBudget(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"detail": "invalid id"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.budgets {
		if s.budgets[i].ID == id {
			s.budgets = append(s.budgets[:i], s.budgets[i+1:]...)
			w.WriteHeader(http.StatusNoContent)
			return
		}
	}
	writeJSON(w, http.StatusNotFound, map[string]string{"detail": "budget not found"})
}

func (s *StubLedgerServer) statistics(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	balance := decimal.Zero
	last30 := dto.MonthTotals{}
	since := models.DateOf(time.Now()).AddDays(-30)
	monthly := map[string]dto.MonthTotals{}
	byCategory := map[int64]decimal.Decimal{}
	for _, t := range s.transactions {
		balance = balance.Add(t.SignedAmount())
		bucket := monthly[t.Date.MonthKey()]
		if t.IsExpense() {
			bucket.Expense = bucket.Expense.Add(t.Amount)
			byCategory[t.CategoryID] = byCategory[t.CategoryID].Add(t.Amount)
		} else {
			bucket.Income = bucket.Income.Add(t.Amount)
		}
		monthly[t.Date.MonthKey()] = bucket
		if !t.Date.Before(since) {
			if t.IsExpense() {
				last30.Expense = last30.Expense.Add(t.Amount)
			} else {
				last30.Income = last30.Income.Add(t.Amount)
			}
		}
	}

	top := dto.TopCategoryResponse{}
	var topID int64
	for id, total := range byCategory {
		if total.GreaterThan(top.Amount) || (total.Equal(top.Amount) && id < topID) {
			top.Amount = total
			topID = id
		}
	}
	for _, category := range s.categories {
		if category.ID == topID && topID != 0 {
			top.Name, top.Icon = category.Name, category.Icon
		}
	}

	writeJSON(w, http.StatusOK, dto.StatisticsResponse{
		Balance:             balance,
		Last30Days:          last30,
		MostExpenseCategory: top,
		Monthly:             monthly,
	})
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
