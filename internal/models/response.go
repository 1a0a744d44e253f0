package models

// Envelope status values
const (
	StatusSuccess = "success"
	StatusFail    = "fail"
)

// APIResponse is the uniform envelope returned by every use-case. Data
// carries the payload on success, Error carries the failure detail (a
// plain string or a structured value) on failure.
type APIResponse struct {
	Data    any    `json:"data"`
	Status  string `json:"status"`
	Message string `json:"message"`
	Error   any    `json:"error"`
}

// Success builds a success envelope
func Success(data any, message string) *APIResponse {
	return &APIResponse{
		Data:    data,
		Status:  StatusSuccess,
		Message: message,
	}
}

// Fail builds a failure envelope
func Fail(message string, errDetail any) *APIResponse {
	return &APIResponse{
		Status:  StatusFail,
		Message: message,
		Error:   errDetail,
	}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp int64  `json:"timestamp"`
}

// ErrorResponse represents an error response from the routing layer
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}
