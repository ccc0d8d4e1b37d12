package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "finledger/internal/errors"
	"finledger/internal/models"
	"finledger/internal/repositories"
	"finledger/internal/services"
)

// CalendarHandler serves per-day lookups over the full ledger. It deliberately
// bypasses the view criteria: a filtered history must not hide entries from a
// calendar day.
type CalendarHandler struct {
	repo     repositories.LedgerRepositoryInterface
	calendar services.CalendarServiceInterface
}

func NewCalendarHandler(repo repositories.LedgerRepositoryInterface, calendar services.CalendarServiceInterface) *CalendarHandler {
	return &CalendarHandler{repo: repo, calendar: calendar}
}

// DayResponse is everything shown for one tapped calendar day.
type DayResponse struct {
	Date         string               `json:"date"`
	Transactions []models.Transaction `json:"transactions"`
	Kind         string               `json:"kind"`
}

// Day returns the transactions recorded on the given date.
func (h *CalendarHandler) Day(c echo.Context) error {
	date, err := models.ParseDate(c.Param("date"))
	if err != nil {
		return SendError(c, apperrors.ValidationInvalidDate)
	}

	transactions, err := h.repo.ListAllTransactions(c.Request().Context())
	if err != nil {
		return sendEngineError(c, err)
	}

	index := h.calendar.IndexByDate(transactions)
	return SendSuccess(c, http.StatusOK, DayResponse{
		Date:         date.String(),
		Transactions: h.calendar.TransactionsOnDate(transactions, date),
		Kind:         index.Classification(date),
	})
}
