package errors

// ErrorCode represents a standardized error code used throughout the engine
type ErrorCode string

// Validation error codes (VALIDATION_xxx)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationInvalidDate   ErrorCode = "VALIDATION_004"
	ValidationInvalidSort   ErrorCode = "VALIDATION_005"
)

// Transaction error codes (TRANSACTION_xxx)
const (
	TransactionNotFound      ErrorCode = "TRANSACTION_001"
	TransactionInvalidAmount ErrorCode = "TRANSACTION_002"
	TransactionInvalidType   ErrorCode = "TRANSACTION_003"
)

// Category error codes (CATEGORY_xxx)
const (
	CategoryNotFound ErrorCode = "CATEGORY_001"
)

// Budget error codes (BUDGET_xxx)
const (
	BudgetNotFound     ErrorCode = "BUDGET_001"
	BudgetInvalidMonth ErrorCode = "BUDGET_002"
)

// Remote ledger service error codes (REMOTE_xxx)
const (
	RemoteUnavailable ErrorCode = "REMOTE_001"
	RemoteAuthFailed  ErrorCode = "REMOTE_002"
	RemoteBadResponse ErrorCode = "REMOTE_003"
	RemoteNotFound    ErrorCode = "REMOTE_004"
	RemoteRejected    ErrorCode = "REMOTE_005"
	RemoteRateLimited ErrorCode = "REMOTE_006"
)

// System error codes (SYSTEM_xxx)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemServiceUnavailable ErrorCode = "SYSTEM_002"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_003"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationInvalidDate:   "Invalid calendar date",
	ValidationInvalidSort:   "Invalid sort key",

	TransactionNotFound:      "Transaction not found",
	TransactionInvalidAmount: "Transaction amount is invalid",
	TransactionInvalidType:   "Transaction type must be income or expense",

	CategoryNotFound: "Category not found",

	BudgetNotFound:     "Budget not found",
	BudgetInvalidMonth: "Budget month must be the first day of a month",

	RemoteUnavailable: "Ledger service is unreachable",
	RemoteAuthFailed:  "Ledger service rejected the access token",
	RemoteBadResponse: "Ledger service returned a malformed response",
	RemoteNotFound:    "Requested resource does not exist on the ledger service",
	RemoteRejected:    "Ledger service rejected the request",
	RemoteRateLimited: "Ledger service rate limit reached",

	SystemInternalError:      "Internal system error",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemRateLimitExceeded:  "Rate limit exceeded",
}

// GetErrorMessage returns the default message for an error code
func GetErrorMessage(code ErrorCode) string {
	if message, exists := errorMessages[code]; exists {
		return message
	}
	return "Unknown error"
}

// IsValidErrorCode checks whether the given code is part of the taxonomy
func IsValidErrorCode(code ErrorCode) bool {
	_, exists := errorMessages[code]
	return exists
}
