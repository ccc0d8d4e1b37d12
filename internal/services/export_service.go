package services

import (
	"encoding/csv"
	"io"

	"finledger/internal/models"
)

// Spreadsheet labels match the product's Polish UI strings.
const (
	exportNoDescription  = "Brak opisu"
	exportIncomeLabel    = "Przychód"
	exportExpenseLabel   = "Wydatek"
	exportCurrencySuffix = " zł"
)

// ExportHeader is the single header row of every export artifact.
var ExportHeader = []string{"Data", "Opis", "Kwota", "Typ", "Kategoria"}

// ExportRow is one flattened transaction ready for spreadsheet serialization.
type ExportRow struct {
	Date        string
	Description string
	Amount      string
	Type        string
	Category    string
}

type exportService struct{}

// NewExportService creates the export flattening stage.
func NewExportService() ExportServiceInterface {
	return &exportService{}
}

// ToRows flattens transactions into rows, one per transaction, preserving input
// order. Callers pass the filtered, sorted, unpaginated collection so the
// artifact reflects the full filtered result rather than the visible page.
func (s *exportService) ToRows(transactions []models.Transaction, categories []models.Category) []ExportRow {
	names := make(map[int64]string, len(categories))
	for _, category := range categories {
		names[category.ID] = category.Name
	}

	rows := make([]ExportRow, 0, len(transactions))
	for i := range transactions {
		transaction := &transactions[i]
		rows = append(rows, ExportRow{
			Date:        transaction.Date.String(),
			Description: descriptionOrFallback(transaction.Description),
			Amount:      signedAmountLabel(transaction),
			Type:        typeLabel(transaction.Type),
			Category:    categoryOrFallback(names, transaction.CategoryID),
		})
	}
	return rows
}

// WriteCSV serializes the rows behind a header line.
func (s *exportService) WriteCSV(w io.Writer, rows []ExportRow) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(ExportHeader); err != nil {
		return err
	}
	for _, row := range rows {
		record := []string{row.Date, row.Description, row.Amount, row.Type, row.Category}
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

func descriptionOrFallback(description string) string {
	if description == "" {
		return exportNoDescription
	}
	return description
}

func typeLabel(transactionType string) string {
	if transactionType == models.TransactionTypeIncome {
		return exportIncomeLabel
	}
	return exportExpenseLabel
}

func signedAmountLabel(transaction *models.Transaction) string {
	sign := "-"
	if transaction.Type == models.TransactionTypeIncome {
		sign = "+"
	}
	return sign + transaction.Amount.String() + exportCurrencySuffix
}

func categoryOrFallback(names map[int64]string, id int64) string {
	if name, ok := names[id]; ok {
		return name
	}
	return models.UnknownCategoryName
}
