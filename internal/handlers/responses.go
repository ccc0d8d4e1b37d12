package handlers

import (
	"github.com/labstack/echo/v4"

	apperrors "finledger/internal/errors"
)

// SuccessResponse is the standard success envelope
type SuccessResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
}

// SendSuccess sends a success envelope with the given payload
func SendSuccess(c echo.Context, status int, data interface{}) error {
	return c.JSON(status, SuccessResponse{Success: true, Data: data})
}

// SendError sends a standardized error envelope for the given code
func SendError(c echo.Context, code apperrors.ErrorCode, opts ...apperrors.Option) error {
	opts = append(opts, apperrors.WithTraceID(getTraceID(c)))
	response := apperrors.NewErrorResponse(code, opts...)
	return c.JSON(apperrors.GetHTTPStatus(code), response)
}

// SendValidationError sends a VALIDATION_001 envelope with field details
func SendValidationError(c echo.Context, details ...string) error {
	return SendError(c, apperrors.ValidationGeneral, apperrors.WithDetails(details...))
}

// SendSystemError sends a SYSTEM_001 envelope without leaking internals
func SendSystemError(c echo.Context, err error) error {
	c.Logger().Error(err)
	return SendError(c, apperrors.SystemInternalError)
}

func getTraceID(c echo.Context) string {
	if traceID, ok := c.Get("trace_id").(string); ok {
		return traceID
	}
	return c.Response().Header().Get(echo.HeaderXRequestID)
}
