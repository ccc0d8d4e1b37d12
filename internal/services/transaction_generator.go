package services

import (
	"math/rand"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"

	"finledger/internal/models"
)

// expenseShare approximates a real ledger: most entries are expenses.
const expenseShare = 0.75

type transactionGenerator struct {
	rng    *rand.Rand
	nextID int64
}

// NewTransactionGenerator creates a generator for realistic demo and fixture
// data.
func NewTransactionGenerator() TransactionGeneratorInterface {
	return NewSeededTransactionGenerator(time.Now().UnixNano())
}

// NewSeededTransactionGenerator creates a deterministic generator for tests.
func NewSeededTransactionGenerator(seed int64) TransactionGeneratorInterface {
	return &transactionGenerator{
		rng:    rand.New(rand.NewSource(seed)),
		nextID: 1,
	}
}

// GenerateCategories returns the fixed demo category set.
func (g *transactionGenerator) GenerateCategories() []models.Category {
	names := []struct {
		name string
		icon string
	}{
		{"Jedzenie", "🍔"},
		{"Transport", "🚗"},
		{"Mieszkanie", "🏠"},
		{"Rozrywka", "🎮"},
		{"Zdrowie", "💊"},
		{"Zakupy", "🛒"},
		{"Edukacja", "📚"},
		{"Wypłata", "💰"},
	}
	categories := make([]models.Category, 0, len(names))
	for _, entry := range names {
		categories = append(categories, models.Category{ID: g.nextID, Name: entry.name, Icon: entry.icon})
		g.nextID++
	}
	return categories
}

// GenerateTransactions produces count entries with dates spread across the
// inclusive [start, end] range. Roughly one in ten descriptions is left empty to
// exercise display fallbacks downstream.
func (g *transactionGenerator) GenerateTransactions(count int, start, end models.Date, categories []models.Category) []models.Transaction {
	days := int(end.Time().Sub(start.Time()).Hours() / 24)
	if days < 0 {
		days = 0
	}

	transactions := make([]models.Transaction, 0, count)
	for i := 0; i < count; i++ {
		transactionType := models.TransactionTypeExpense
		amount := decimal.NewFromFloat(gofakeit.Price(5, 600)).Round(2)
		if g.rng.Float64() > expenseShare {
			transactionType = models.TransactionTypeIncome
			amount = decimal.NewFromFloat(gofakeit.Price(800, 9000)).Round(2)
		}

		description := gofakeit.ProductName()
		if g.rng.Float64() < 0.1 {
			description = ""
		}

		var categoryID int64
		if len(categories) > 0 {
			categoryID = categories[g.rng.Intn(len(categories))].ID
		}

		transactions = append(transactions, models.Transaction{
			ID:          g.nextID,
			Amount:      amount,
			Type:        transactionType,
			CategoryID:  categoryID,
			Date:        start.AddDays(g.rng.Intn(days + 1)),
			Description: description,
		})
		g.nextID++
	}
	return transactions
}

// GenerateBudgets creates one budget per category for the given month.
func (g *transactionGenerator) GenerateBudgets(categories []models.Category, month models.Date) []models.Budget {
	budgets := make([]models.Budget, 0, len(categories))
	for _, category := range categories {
		budgets = append(budgets, models.Budget{
			ID:         g.nextID,
			CategoryID: category.ID,
			Month:      month.MonthAnchor(),
			Amount:     decimal.NewFromFloat(gofakeit.Price(200, 2000)).Round(2),
		})
		g.nextID++
	}
	return budgets
}
