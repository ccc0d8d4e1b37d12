package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"finledger/internal/dto"
	apperrors "finledger/internal/errors"
	"finledger/internal/services"
)

// TransactionHandler forwards ledger entry mutations through the view
// controller, so every change comes back as a fresh snapshot.
type TransactionHandler struct {
	controller services.ViewControllerInterface
}

func NewTransactionHandler(controller services.ViewControllerInterface) *TransactionHandler {
	return &TransactionHandler{controller: controller}
}

func (h *TransactionHandler) Create(c echo.Context) error {
	var req dto.CreateTransactionRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apperrors.ValidationInvalidFormat)
	}
	if err := c.Validate(&req); err != nil {
		return sendEngineError(c, err)
	}

	snapshot, err := h.controller.CreateTransaction(c.Request().Context(), req)
	if err != nil {
		return sendEngineError(c, err)
	}
	return SendSuccess(c, http.StatusCreated, snapshot)
}

func (h *TransactionHandler) Update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return SendError(c, apperrors.ValidationInvalidFormat)
	}

	var req dto.UpdateTransactionRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apperrors.ValidationInvalidFormat)
	}
	if err := c.Validate(&req); err != nil {
		return sendEngineError(c, err)
	}

	snapshot, err := h.controller.UpdateTransaction(c.Request().Context(), id, req)
	if err != nil {
		return sendEngineError(c, err)
	}
	return SendSuccess(c, http.StatusOK, snapshot)
}

func (h *TransactionHandler) Delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return SendError(c, apperrors.ValidationInvalidFormat)
	}

	snapshot, err := h.controller.DeleteTransaction(c.Request().Context(), id)
	if err != nil {
		return sendEngineError(c, err)
	}
	return SendSuccess(c, http.StatusOK, snapshot)
}

func parseID(c echo.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}
