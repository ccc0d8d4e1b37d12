package handlers

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	apperrors "finledger/internal/errors"
	"finledger/internal/services"
	"finledger/internal/validation"
)

// sendEngineError maps an engine failure onto the error taxonomy. Remote errors
// keep their classification so the caller sees what the upstream actually did.
func sendEngineError(c echo.Context, err error) error {
	var validationErrors validator.ValidationErrors
	switch {
	case errors.As(err, &validationErrors):
		return SendValidationError(c, validation.FormatErrors(err)...)
	case errors.Is(err, services.ErrCircuitBreakerOpen):
		return SendError(c, apperrors.SystemServiceUnavailable)
	case errors.Is(err, services.ErrInvalidSortKey):
		return SendError(c, apperrors.ValidationInvalidSort)
	case errors.Is(err, services.ErrNothingToExport):
		return SendError(c, apperrors.ValidationGeneral, apperrors.WithMessage("no loaded view to export"))
	}

	if remoteErr, ok := apperrors.AsRemoteError(err); ok {
		return SendError(c, remoteErr.Code, apperrors.WithMessage(remoteErr.Message))
	}
	return SendSystemError(c, err)
}
