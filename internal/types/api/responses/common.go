package responses

// ErrorResponse represents a standard error response
type ErrorResponse struct {
	Error         string `json:"error"`
	CorrelationID string `json:"correlation_id,omitempty"`
}

// HealthResponse is returned by the health check
type HealthResponse struct {
	Status string `json:"status"`
}
