package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"finledger/internal/dto"
	apperrors "finledger/internal/errors"
	"finledger/internal/models"
	"finledger/internal/repositories"
	"finledger/internal/services"
)

// CategoryHandler creates categories through the view controller and exposes
// the server-ordered category statistics listing.
type CategoryHandler struct {
	controller services.ViewControllerInterface
	repo       repositories.LedgerRepositoryInterface
}

func NewCategoryHandler(controller services.ViewControllerInterface, repo repositories.LedgerRepositoryInterface) *CategoryHandler {
	return &CategoryHandler{controller: controller, repo: repo}
}

func (h *CategoryHandler) Create(c echo.Context) error {
	var req dto.CreateCategoryRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apperrors.ValidationInvalidFormat)
	}
	if err := c.Validate(&req); err != nil {
		return sendEngineError(c, err)
	}

	snapshot, err := h.controller.CreateCategory(c.Request().Context(), req)
	if err != nil {
		return sendEngineError(c, err)
	}
	return SendSuccess(c, http.StatusCreated, snapshot)
}

// Stats proxies the category statistics listing with its server-side ordering.
func (h *CategoryHandler) Stats(c echo.Context) error {
	orderBy := c.QueryParam("order_by")
	direction := c.QueryParam("direction")
	if orderBy != "" && !models.IsValidCategoryOrder(orderBy) {
		return SendError(c, apperrors.ValidationInvalidSort)
	}
	if direction != "" && !models.IsValidDirection(direction) {
		return SendError(c, apperrors.ValidationInvalidSort)
	}

	stats, err := h.repo.ListCategoryStats(c.Request().Context(), orderBy, direction)
	if err != nil {
		return sendEngineError(c, err)
	}
	return SendSuccess(c, http.StatusOK, stats)
}
