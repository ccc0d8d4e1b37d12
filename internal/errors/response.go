package errors

import (
	"net/http"
	"time"
)

// ErrorResponse is the standard error envelope returned by the HTTP facade
type ErrorResponse struct {
	Success bool        `json:"success"`
	Error   ErrorDetail `json:"error"`
}

// ErrorDetail contains the structured error information
type ErrorDetail struct {
	Code      ErrorCode `json:"code"`
	Message   string    `json:"message"`
	Details   []string  `json:"details,omitempty"`
	Timestamp time.Time `json:"timestamp"`
	TraceID   string    `json:"trace_id,omitempty"`
}

// Option customizes an ErrorResponse during construction
type Option func(*ErrorResponse)

// WithMessage overrides the default message for the error code
func WithMessage(message string) Option {
	return func(r *ErrorResponse) {
		if message != "" {
			r.Error.Message = message
		}
	}
}

// WithDetails attaches field-level detail strings
func WithDetails(details ...string) Option {
	return func(r *ErrorResponse) {
		r.Error.Details = append(r.Error.Details, details...)
	}
}

// WithTraceID attaches the request trace identifier
func WithTraceID(traceID string) Option {
	return func(r *ErrorResponse) {
		r.Error.TraceID = traceID
	}
}

// NewErrorResponse creates an error envelope for the given code
func NewErrorResponse(code ErrorCode, opts ...Option) *ErrorResponse {
	response := &ErrorResponse{
		Success: false,
		Error: ErrorDetail{
			Code:      code,
			Message:   GetErrorMessage(code),
			Timestamp: time.Now().UTC(),
		},
	}
	for _, opt := range opts {
		opt(response)
	}
	return response
}

// NewValidationError creates a VALIDATION_001 envelope with field details
func NewValidationError(details ...string) *ErrorResponse {
	return NewErrorResponse(ValidationGeneral, WithDetails(details...))
}

// GetHTTPStatus maps an error code to its HTTP status. Remote codes surface the
// remote outcome to the facade caller; unreachable and malformed upstreams are a
// bad gateway from the caller's point of view.
func GetHTTPStatus(code ErrorCode) int {
	switch code {
	case ValidationGeneral, ValidationRequiredField, ValidationInvalidFormat,
		ValidationInvalidDate, ValidationInvalidSort,
		TransactionInvalidAmount, TransactionInvalidType, BudgetInvalidMonth:
		return http.StatusBadRequest
	case TransactionNotFound, CategoryNotFound, BudgetNotFound, RemoteNotFound:
		return http.StatusNotFound
	case RemoteAuthFailed:
		return http.StatusUnauthorized
	case RemoteRejected:
		return http.StatusUnprocessableEntity
	case RemoteRateLimited:
		return http.StatusBadGateway
	case RemoteUnavailable, RemoteBadResponse:
		return http.StatusBadGateway
	case SystemServiceUnavailable:
		return http.StatusServiceUnavailable
	case SystemRateLimitExceeded:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}
