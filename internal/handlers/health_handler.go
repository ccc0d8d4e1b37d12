package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"finledger/internal/repositories"
)

// HealthCheckHandler reports the engine's own liveness and the reachability of
// the remote ledger service.
type HealthCheckHandler struct {
	repo repositories.LedgerRepositoryInterface
}

func NewHealthCheckHandler(repo repositories.LedgerRepositoryInterface) *HealthCheckHandler {
	return &HealthCheckHandler{repo: repo}
}

// HealthStatus is the health endpoint payload.
type HealthStatus struct {
	Status    string    `json:"status"`
	Ledger    string    `json:"ledger"`
	Timestamp time.Time `json:"timestamp"`
}

func (h *HealthCheckHandler) HealthCheck(c echo.Context) error {
	status := HealthStatus{
		Status:    "ok",
		Ledger:    "ok",
		Timestamp: time.Now().UTC(),
	}

	if err := h.repo.Ping(c.Request().Context()); err != nil {
		status.Status = "degraded"
		status.Ledger = "unreachable"
		return c.JSON(http.StatusServiceUnavailable, status)
	}
	return c.JSON(http.StatusOK, status)
}
