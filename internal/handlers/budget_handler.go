package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"finledger/internal/dto"
	apperrors "finledger/internal/errors"
	"finledger/internal/services"
)

// BudgetHandler forwards budget mutations through the view controller.
type BudgetHandler struct {
	controller services.ViewControllerInterface
}

func NewBudgetHandler(controller services.ViewControllerInterface) *BudgetHandler {
	return &BudgetHandler{controller: controller}
}

func (h *BudgetHandler) Create(c echo.Context) error {
	var req dto.CreateBudgetRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apperrors.ValidationInvalidFormat)
	}
	if err := c.Validate(&req); err != nil {
		return sendEngineError(c, err)
	}

	snapshot, err := h.controller.CreateBudget(c.Request().Context(), req)
	if err != nil {
		return sendEngineError(c, err)
	}
	return SendSuccess(c, http.StatusCreated, snapshot)
}

func (h *BudgetHandler) Delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return SendError(c, apperrors.ValidationInvalidFormat)
	}

	snapshot, err := h.controller.DeleteBudget(c.Request().Context(), id)
	if err != nil {
		return sendEngineError(c, err)
	}
	return SendSuccess(c, http.StatusOK, snapshot)
}
