package shared

// DomainError represents a domain-level error
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrNotFound         = NewDomainError("NOT_FOUND", "Item not found")
	ErrValidationFailed = NewDomainError("VALIDATION_FAILED", "Validation failed")
	ErrConnectionFailed = NewDomainError("CONNECTION_FAILED", "Database connection failed")
	ErrStore            = NewDomainError("STORE_ERROR", "Database operation failed")
)
