package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "finledger/internal/errors"
)

// CustomHTTPErrorHandler converts any error that escapes a handler into the
// standard error envelope. Handlers normally respond themselves; this is the
// safety net for echo-level failures (unknown routes, method mismatches,
// oversized bodies, recovered panics).
func CustomHTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status := http.StatusInternalServerError
	code := apperrors.SystemInternalError
	message := ""

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		status = httpErr.Code
		code = mapHTTPStatus(httpErr.Code)
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}
	} else {
		slog.Error("unhandled error",
			"method", c.Request().Method,
			"path", c.Request().URL.Path,
			"error", err)
	}

	opts := []apperrors.Option{}
	if message != "" {
		opts = append(opts, apperrors.WithMessage(message))
	}
	if traceID, ok := c.Get("trace_id").(string); ok {
		opts = append(opts, apperrors.WithTraceID(traceID))
	}

	response := apperrors.NewErrorResponse(code, opts...)
	if jsonErr := c.JSON(status, response); jsonErr != nil {
		slog.Error("failed to write error response", "error", jsonErr)
	}
}

// mapHTTPStatus picks the envelope code for an echo-level status. The original
// status is preserved on the wire; this only labels the body.
func mapHTTPStatus(status int) apperrors.ErrorCode {
	switch {
	case status == http.StatusTooManyRequests:
		return apperrors.SystemRateLimitExceeded
	case status == http.StatusServiceUnavailable:
		return apperrors.SystemServiceUnavailable
	case status >= http.StatusBadRequest && status < http.StatusInternalServerError:
		return apperrors.ValidationGeneral
	default:
		return apperrors.SystemInternalError
	}
}
