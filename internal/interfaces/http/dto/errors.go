package dto

import "net/http"

// Domain error codes surfaced over HTTP
const (
	// ErrCodeNotFound is used when an item id resolves to no document
	ErrCodeNotFound = "NOT_FOUND"
	// ErrCodeValidationFailed is used for field-level validation failures
	ErrCodeValidationFailed = "VALIDATION_FAILED"
	// ErrCodeConnectionFailed is used when the document store is unreachable
	ErrCodeConnectionFailed = "CONNECTION_FAILED"
	// ErrCodeStore is used for any other persistence failure
	ErrCodeStore = "STORE_ERROR"
	// ErrCodeBadRequest is used for malformed request bodies
	ErrCodeBadRequest = "BAD_REQUEST"
	// ErrCodeInternal is used when the error type is unknown
	ErrCodeInternal = "INTERNAL_ERROR"
)

// ErrorCodeHTTPStatus maps error codes to HTTP status codes
var ErrorCodeHTTPStatus = map[string]int{
	ErrCodeNotFound:         http.StatusNotFound,
	ErrCodeValidationFailed: http.StatusBadRequest,
	ErrCodeBadRequest:       http.StatusBadRequest,
	ErrCodeConnectionFailed: http.StatusInternalServerError,
	ErrCodeStore:            http.StatusInternalServerError,
	ErrCodeInternal:         http.StatusInternalServerError,
}

// GetHTTPStatus returns the HTTP status code for an error code.
// Returns 500 Internal Server Error if the error code is not found.
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}
