package dto

import "time"

// ErrorResponse is the error envelope: a single error message plus
// optional field-level details. Internal store error text is never
// placed here.
type ErrorResponse struct {
	Error   string        `json:"error"`
	Details []FieldDetail `json:"details,omitempty"`
}

// FieldDetail names one invalid field
type FieldDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// SuccessResponse acknowledges a mutation with no body to return
type SuccessResponse struct {
	Success bool `json:"success"`
}

// HealthResponse reports store connectivity and round-trip latency
type HealthResponse struct {
	Status    string    `json:"status"`
	LatencyMs int64     `json:"latencyMs"`
	Timestamp time.Time `json:"timestamp"`
}

// HealthErrorResponse reports a failed connectivity check
type HealthErrorResponse struct {
	Error     string    `json:"error"`
	Timestamp time.Time `json:"timestamp"`
}

// NewErrorResponse creates an error response
func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{Error: message}
}

// NewValidationErrorResponse creates an error response carrying
// field-level details
func NewValidationErrorResponse(message string, details []FieldDetail) ErrorResponse {
	return ErrorResponse{Error: message, Details: details}
}

// NewSuccessResponse creates a success acknowledgement
func NewSuccessResponse() SuccessResponse {
	return SuccessResponse{Success: true}
}
