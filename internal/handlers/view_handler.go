package handlers

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "finledger/internal/errors"
	"finledger/internal/models"
	"finledger/internal/services"
)

// ViewHandler exposes the view controller over HTTP.
type ViewHandler struct {
	controller services.ViewControllerInterface
}

func NewViewHandler(controller services.ViewControllerInterface) *ViewHandler {
	return &ViewHandler{controller: controller}
}

// FilterRequest is the facade payload for replacing the filter criteria.
type FilterRequest struct {
	Type       string `json:"type" validate:"omitempty,transaction_type"`
	CategoryID int64  `json:"category" validate:"omitempty,min=1"`
	StartDate  string `json:"start_date" validate:"omitempty,calendar_date"`
	EndDate    string `json:"end_date" validate:"omitempty,calendar_date"`
	Sort       string `json:"sort" validate:"omitempty,sort_key"`
}

// PageRequest selects a page of the current query.
type PageRequest struct {
	Page int `json:"page" validate:"required,min=1"`
}

// SortRequest changes the sort key of the current query.
type SortRequest struct {
	Sort string `json:"sort" validate:"required,sort_key"`
}

// GetView returns the currently published snapshot without touching the remote.
func (h *ViewHandler) GetView(c echo.Context) error {
	return SendSuccess(c, http.StatusOK, h.controller.Snapshot())
}

// SetFilter replaces the filter criteria and returns the reloaded snapshot.
func (h *ViewHandler) SetFilter(c echo.Context) error {
	var req FilterRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apperrors.ValidationInvalidFormat)
	}
	if err := c.Validate(&req); err != nil {
		return sendEngineError(c, err)
	}

	criteria, err := req.toCriteria()
	if err != nil {
		return SendError(c, apperrors.ValidationInvalidDate)
	}

	snapshot, err := h.controller.SetFilter(c.Request().Context(), criteria)
	if err != nil {
		return sendEngineError(c, err)
	}
	return SendSuccess(c, http.StatusOK, snapshot)
}

// SetSort changes the sort key and returns the reloaded snapshot.
func (h *ViewHandler) SetSort(c echo.Context) error {
	var req SortRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apperrors.ValidationInvalidFormat)
	}
	if err := c.Validate(&req); err != nil {
		return sendEngineError(c, err)
	}

	snapshot, err := h.controller.SetSort(c.Request().Context(), req.Sort)
	if err != nil {
		return sendEngineError(c, err)
	}
	return SendSuccess(c, http.StatusOK, snapshot)
}

// SetPage moves to another page and returns the reloaded snapshot.
func (h *ViewHandler) SetPage(c echo.Context) error {
	var req PageRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apperrors.ValidationInvalidFormat)
	}
	if err := c.Validate(&req); err != nil {
		return sendEngineError(c, err)
	}

	snapshot, err := h.controller.SetPage(c.Request().Context(), req.Page)
	if err != nil {
		return sendEngineError(c, err)
	}
	return SendSuccess(c, http.StatusOK, snapshot)
}

// Refresh re-runs the current query.
func (h *ViewHandler) Refresh(c echo.Context) error {
	snapshot, err := h.controller.Refresh(c.Request().Context())
	if err != nil {
		return sendEngineError(c, err)
	}
	return SendSuccess(c, http.StatusOK, snapshot)
}

// ExportCSV streams the current filtered view as a CSV attachment.
func (h *ViewHandler) ExportCSV(c echo.Context) error {
	if h.controller.Snapshot().State == models.ViewStateIdle {
		return sendEngineError(c, services.ErrNothingToExport)
	}

	c.Response().Header().Set(echo.HeaderContentType, "text/csv; charset=utf-8")
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="transakcje.csv"`)
	c.Response().WriteHeader(http.StatusOK)

	rows, err := h.controller.ExportCurrentView(c.Response())
	if err != nil {
		// headers are gone; the best we can do is log and drop the connection
		c.Logger().Errorf("csv export failed after %d rows: %v", rows, err)
		return err
	}
	return nil
}

func (r FilterRequest) toCriteria() (models.FilterCriteria, error) {
	criteria := models.FilterCriteria{
		Type:       r.Type,
		CategoryID: r.CategoryID,
		Sort:       r.Sort,
	}
	if r.StartDate != "" {
		start, err := models.ParseDate(r.StartDate)
		if err != nil {
			return models.FilterCriteria{}, fmt.Errorf("start_date: %w", err)
		}
		criteria.StartDate = &start
	}
	if r.EndDate != "" {
		end, err := models.ParseDate(r.EndDate)
		if err != nil {
			return models.FilterCriteria{}, fmt.Errorf("end_date: %w", err)
		}
		criteria.EndDate = &end
	}
	return criteria, nil
}
