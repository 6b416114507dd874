package errors

import "fmt"

// ErrorType represents different types of errors that can occur while
// talking to the provider.
type ErrorType string

const (
	ErrorTypeNetwork    ErrorType = "network"
	ErrorTypeQuota      ErrorType = "quota"       // per-minute limit, HTTP 429
	ErrorTypeDailyQuota ErrorType = "daily_quota" // daily limit, HTTP 430
	ErrorTypeBadRequest ErrorType = "bad_request" // HTTP 400
	ErrorTypeDecode     ErrorType = "decode"
	ErrorTypeNotFound   ErrorType = "not_found"
	ErrorTypeConfig     ErrorType = "config"
	ErrorTypeChecksum   ErrorType = "checksum"
	ErrorTypeUnknown    ErrorType = "unknown"
)

// Error represents a provider API error with type information.
type Error struct {
	Type    ErrorType
	Message string
	Code    int
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s error (code %d): %s", e.Type, e.Code, e.Message)
}

// New creates a typed error.
func New(errorType ErrorType, code int, format string, args ...interface{}) *Error {
	return &Error{
		Type:    errorType,
		Message: fmt.Sprintf(format, args...),
		Code:    code,
	}
}

// IsRetryable checks if an error type should be retried. Only the
// per-minute quota error is retryable; the daily quota and everything
// else fail the call immediately.
func IsRetryable(errorType ErrorType) bool {
	return errorType == ErrorTypeQuota
}
