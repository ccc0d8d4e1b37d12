package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// RemoteError is a failure reported by (or while reaching) the remote ledger
// service. The engine performs no retries: the error is classified, surfaced to
// the caller unmodified, and the last good view stays visible.
type RemoteError struct {
	Code       ErrorCode
	StatusCode int
	Message    string
}

func (e *RemoteError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("[%s] %s (http %d)", e.Code, e.Message, e.StatusCode)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// NotFound reports whether the remote said the resource does not exist.
func (e *RemoteError) NotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// NewRemoteError classifies an HTTP error status from the ledger service.
func NewRemoteError(statusCode int, message string) *RemoteError {
	code := RemoteRejected
	switch {
	case statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden:
		code = RemoteAuthFailed
	case statusCode == http.StatusNotFound:
		code = RemoteNotFound
	case statusCode == http.StatusTooManyRequests:
		code = RemoteRateLimited
	case statusCode >= http.StatusInternalServerError:
		code = RemoteUnavailable
	}
	if message == "" {
		message = GetErrorMessage(code)
	}
	return &RemoteError{Code: code, StatusCode: statusCode, Message: message}
}

// NewRemoteTransportError classifies a failure that happened before any HTTP
// status was received (connection refused, timeout, cancelled context).
func NewRemoteTransportError(err error) *RemoteError {
	return &RemoteError{Code: RemoteUnavailable, Message: err.Error()}
}

// NewRemoteDecodeError classifies a response body the client could not coerce
// into its typed schema.
func NewRemoteDecodeError(err error) *RemoteError {
	return &RemoteError{Code: RemoteBadResponse, Message: err.Error()}
}

// AsRemoteError unwraps a RemoteError when one is present in the chain.
func AsRemoteError(err error) (*RemoteError, bool) {
	var remoteErr *RemoteError
	if errors.As(err, &remoteErr) {
		return remoteErr, true
	}
	return nil, false
}
